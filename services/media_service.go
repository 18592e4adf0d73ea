package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
	"ledkino.pl/pkg/osstorage"
	"ledkino.pl/repositories"
)

// MediaServiceError błędy biblioteki mediów.
type MediaServiceError string

func (e MediaServiceError) Error() string { return string(e) }

const (
	ErrMediaNotFound     MediaServiceError = "plik nie istnieje"
	ErrMediaInvalidInput MediaServiceError = "nieprawidłowy plik"
	ErrMediaTooLarge     MediaServiceError = "plik jest za duży (limit 10 MB)"
	ErrMediaBadMimeType  MediaServiceError = "dozwolone są tylko obrazy (JPEG, PNG, WebP)"
	ErrMediaUploadFailed MediaServiceError = "nie udało się zapisać pliku"
)

// maxUploadSize limit rozmiaru wgrywanego obrazu.
const maxUploadSize = 10 << 20

var allowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// IMediaService biblioteka obrazów: upload do object storage + metadane w DB.
type IMediaService interface {
	List(ctx context.Context) ([]models.MediaAsset, error)
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, altText string) (*models.MediaAsset, error)
	UpdateAlt(ctx context.Context, id uint, altText string) (*models.MediaAsset, error)
	Delete(ctx context.Context, id uint) error
}

// MediaService implementuje IMediaService.
type MediaService struct {
	repo    repositories.IMediaRepository
	storage osstorage.ObjectStorage
}

// NewMediaService tworzy serwis mediów na wskazanym storage.
func NewMediaService(storage osstorage.ObjectStorage) IMediaService {
	return &MediaService{
		repo:    repositories.NewMediaRepository(),
		storage: storage,
	}
}

// List zwraca bibliotekę, najnowsze najpierw.
func (s *MediaService) List(ctx context.Context) ([]models.MediaAsset, error) {
	return s.repo.FindAll(ctx)
}

// Upload waliduje plik, zapisuje bajty pod wygenerowanym kluczem i dopisuje
// metadane. Gdy zapis metadanych zawiedzie, obiekt jest sprzątany ze storage.
func (s *MediaService) Upload(ctx context.Context, fileHeader *multipart.FileHeader, altText string) (*models.MediaAsset, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return nil, ErrMediaInvalidInput
	}
	if fileHeader.Size > maxUploadSize {
		return nil, ErrMediaTooLarge
	}
	mimeType := fileHeader.Header.Get("Content-Type")
	if !allowedImageMimeTypes[mimeType] {
		return nil, ErrMediaBadMimeType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaInvalidInput, err)
	}
	defer file.Close()

	key := osstorage.GenerateKey(fileHeader.Filename)
	if err := s.storage.Put(key, io.LimitReader(file, maxUploadSize), mimeType); err != nil {
		configslog.Log.Error("MediaService.Upload: zapis do storage nie powiódł się",
			zap.String("object_key", key), zap.Error(err))
		return nil, ErrMediaUploadFailed
	}

	asset := &models.MediaAsset{
		ObjectKey: key,
		FileName:  fileHeader.Filename,
		URL:       s.storage.PublicURL(key),
		Size:      fileHeader.Size,
		MimeType:  mimeType,
		AltText:   altText,
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		if delErr := s.storage.Delete(key); delErr != nil {
			configslog.Log.Error("MediaService.Upload: sprzątanie obiektu nie powiodło się",
				zap.String("object_key", key), zap.Error(delErr))
		}
		return nil, ErrMediaUploadFailed
	}

	configslog.Log.Info("Wgrano plik do biblioteki",
		zap.Uint("id", asset.ID), zap.String("object_key", key), zap.Int64("size", asset.Size))
	return asset, nil
}

// UpdateAlt zmienia tekst alternatywny obrazu.
func (s *MediaService) UpdateAlt(ctx context.Context, id uint, altText string) (*models.MediaAsset, error) {
	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	asset.AltText = altText
	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// Delete usuwa metadane i obiekt. Usunięcie ze storage jest best-effort,
// osierocony obiekt to mniejsze zło niż martwy rekord wskazujący donikąd.
func (s *MediaService) Delete(ctx context.Context, id uint) error {
	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMediaNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(asset.ObjectKey); err != nil {
		configslog.Log.Error("MediaService.Delete: obiekt nie został usunięty ze storage",
			zap.String("object_key", asset.ObjectKey), zap.Error(err))
	}
	return nil
}
