package services

import (
	"context"
	"errors"

	"ledkino.pl/models"
	"ledkino.pl/repositories"
)

// SettingServiceError błędy obsługi ustawień strony.
type SettingServiceError string

func (e SettingServiceError) Error() string { return string(e) }

const (
	ErrSettingNotFound     SettingServiceError = "ustawienie nie istnieje"
	ErrSettingInvalidInput SettingServiceError = "nieprawidłowy klucz ustawienia"
)

// ISettingService płaskie ustawienia strony (SEO, dane kontaktowe).
type ISettingService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}

// SettingService implementuje ISettingService.
type SettingService struct {
	repo repositories.ISettingRepository
}

// NewSettingService tworzy serwis ustawień.
func NewSettingService() ISettingService {
	return &SettingService{repo: repositories.NewSettingRepository()}
}

// GetAll zwraca wszystkie ustawienia jako mapę klucz→wartość.
func (s *SettingService) GetAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}
	return out, nil
}

// Get zwraca wartość jednego ustawienia.
func (s *SettingService) Get(ctx context.Context, key string) (string, error) {
	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrSettingNotFound
		}
		return "", err
	}
	return setting.Value, nil
}

// Upsert zapisuje ustawienie po kluczu.
func (s *SettingService) Upsert(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrSettingInvalidInput
	}
	return s.repo.Upsert(ctx, &models.Setting{Key: key, Value: value})
}
