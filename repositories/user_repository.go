package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ledkino.pl/configs"
	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
)

// IUserRepository operacje bazodanowe na kontach użytkowników.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// UserRepository implementuje IUserRepository na GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository tworzy repozytorium na globalnym połączeniu.
func NewUserRepository() IUserRepository {
	return &UserRepository{db: configs.GetDB()}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create zakłada konto użytkownika.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.getDB(ctx).Create(user).Error; err != nil {
		configslog.Log.Error("UserRepository.Create: błąd DB", zap.String("email", user.Email), zap.Error(err))
		return err
	}
	return nil
}

// FindByID zwraca użytkownika po ID.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.getDB(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindByEmail zwraca użytkownika po adresie e-mail (unikalny).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.getDB(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: błąd DB", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindAll zwraca wszystkie konta, najstarsze najpierw.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.getDB(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		configslog.Log.Error("UserRepository.FindAll: błąd DB", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// Update zapisuje zmiany w koncie.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == 0 {
		return errors.New("nieprawidłowy rekord użytkownika")
	}
	if err := r.getDB(ctx).Save(user).Error; err != nil {
		configslog.Log.Error("UserRepository.Update: błąd DB", zap.Uint("id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

// Delete usuwa konto.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		configslog.Log.Error("UserRepository.Delete: błąd DB", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
