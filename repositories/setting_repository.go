package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ledkino.pl/configs"
	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
)

// ISettingRepository operacje na ustawieniach strony.
type ISettingRepository interface {
	FindAll(ctx context.Context) ([]models.Setting, error)
	FindByKey(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
}

// SettingRepository implementuje ISettingRepository na GORM.
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository tworzy repozytorium na globalnym połączeniu.
func NewSettingRepository() ISettingRepository {
	return &SettingRepository{db: configs.GetDB()}
}

func (r *SettingRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll zwraca wszystkie ustawienia.
func (r *SettingRepository) FindAll(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.getDB(ctx).Order("key ASC").Find(&settings).Error; err != nil {
		configslog.Log.Error("SettingRepository.FindAll: błąd DB", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

// FindByKey zwraca ustawienie po kluczu.
func (r *SettingRepository) FindByKey(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.getDB(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SettingRepository.FindByKey: błąd DB", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &setting, nil
}

// Upsert zapisuje ustawienie atomowo po kluczu (ON CONFLICT).
func (r *SettingRepository) Upsert(ctx context.Context, setting *models.Setting) error {
	if setting == nil || setting.Key == "" {
		return errors.New("ustawienie bez klucza")
	}
	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		configslog.Log.Error("SettingRepository.Upsert: błąd DB", zap.String("key", setting.Key), zap.Error(err))
		return err
	}
	return nil
}
