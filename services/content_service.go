package services

import (
	"context"
	"encoding/json"
	"errors"

	"ledkino.pl/models"
	"ledkino.pl/repositories"
)

// ContentServiceError błędy obsługi treści strony.
type ContentServiceError string

func (e ContentServiceError) Error() string { return string(e) }

const (
	ErrContentNotFound     ContentServiceError = "sekcja nie istnieje"
	ErrContentInvalidInput ContentServiceError = "nieprawidłowe dane sekcji"
)

// IContentService sekcje strony głównej: odczyt wszystkich, jednej i zapis.
type IContentService interface {
	GetAll(ctx context.Context) ([]models.ContentSection, error)
	GetBySection(ctx context.Context, section string) (*models.ContentSection, error)
	Upsert(ctx context.Context, section string, data json.RawMessage) (*models.ContentSection, error)
}

// ContentService implementuje IContentService.
type ContentService struct {
	repo repositories.IContentRepository
}

// NewContentService tworzy serwis treści.
func NewContentService() IContentService {
	return &ContentService{repo: repositories.NewContentRepository()}
}

// GetAll zwraca wszystkie sekcje.
func (s *ContentService) GetAll(ctx context.Context) ([]models.ContentSection, error) {
	return s.repo.FindAll(ctx)
}

// GetBySection zwraca jedną sekcję po nazwie.
func (s *ContentService) GetBySection(ctx context.Context, section string) (*models.ContentSection, error) {
	content, err := s.repo.FindBySection(ctx, section)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return content, nil
}

// Upsert zapisuje blob sekcji. Struktura danych jest nieprzezroczysta,
// wymagamy jedynie poprawnego JSON-a.
func (s *ContentService) Upsert(ctx context.Context, section string, data json.RawMessage) (*models.ContentSection, error) {
	if section == "" {
		return nil, ErrContentInvalidInput
	}
	if !json.Valid(data) {
		return nil, ErrContentInvalidInput
	}
	content := &models.ContentSection{Section: section, Data: data}
	if err := s.repo.Upsert(ctx, content); err != nil {
		return nil, err
	}
	return s.GetBySection(ctx, section)
}
