package seeders

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ledkino.pl/configs"
	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
)

// SeedAdminUser zakłada pierwsze konto administratora na podstawie
// ADMIN_EMAIL/ADMIN_PASSWORD. Gdy konto już istnieje, nic nie robi,
// seeder musi być idempotentny.
func SeedAdminUser(db *gorm.DB) error {
	email := configs.GetEnv("ADMIN_EMAIL", "admin@ledkino.pl")
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if password == "" {
		return errors.New("ADMIN_PASSWORD jest wymagane do seedowania konta administratora")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		configslog.SLog.Infof("Konto administratora %s już istnieje, pomijam", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        email,
		Name:         configs.GetEnv("ADMIN_NAME", "Administrator"),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	configslog.SLog.Infof("Założono konto administratora %s", email)
	return nil
}
