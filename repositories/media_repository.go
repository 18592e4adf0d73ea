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

// IMediaRepository operacje na metadanych biblioteki mediów.
type IMediaRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) error
	FindByID(ctx context.Context, id uint) (*models.MediaAsset, error)
	FindAll(ctx context.Context) ([]models.MediaAsset, error)
	Update(ctx context.Context, asset *models.MediaAsset) error
	Delete(ctx context.Context, id uint) error
}

// MediaRepository implementuje IMediaRepository na GORM.
type MediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository tworzy repozytorium na globalnym połączeniu.
func NewMediaRepository() IMediaRepository {
	return &MediaRepository{db: configs.GetDB()}
}

func (r *MediaRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create zapisuje metadane wgranego pliku.
func (r *MediaRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	if asset == nil || asset.ObjectKey == "" {
		return errors.New("plik bez klucza obiektu")
	}
	if err := r.getDB(ctx).Create(asset).Error; err != nil {
		configslog.Log.Error("MediaRepository.Create: błąd DB", zap.String("object_key", asset.ObjectKey), zap.Error(err))
		return err
	}
	return nil
}

// FindByID zwraca metadane pliku po ID.
func (r *MediaRepository) FindByID(ctx context.Context, id uint) (*models.MediaAsset, error) {
	var asset models.MediaAsset
	err := r.getDB(ctx).First(&asset, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("MediaRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &asset, nil
}

// FindAll zwraca bibliotekę, najnowsze najpierw.
func (r *MediaRepository) FindAll(ctx context.Context) ([]models.MediaAsset, error) {
	var assets []models.MediaAsset
	if err := r.getDB(ctx).Order("created_at DESC").Find(&assets).Error; err != nil {
		configslog.Log.Error("MediaRepository.FindAll: błąd DB", zap.Error(err))
		return nil, err
	}
	return assets, nil
}

// Update zapisuje zmiany metadanych (w praktyce tylko alt text).
func (r *MediaRepository) Update(ctx context.Context, asset *models.MediaAsset) error {
	if asset == nil || asset.ID == 0 {
		return errors.New("nieprawidłowy rekord pliku")
	}
	if err := r.getDB(ctx).Save(asset).Error; err != nil {
		configslog.Log.Error("MediaRepository.Update: błąd DB", zap.Uint("id", asset.ID), zap.Error(err))
		return err
	}
	return nil
}

// Delete usuwa metadane pliku.
func (r *MediaRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.MediaAsset{}, id)
	if result.Error != nil {
		configslog.Log.Error("MediaRepository.Delete: błąd DB", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
