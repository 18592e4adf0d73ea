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

// IContentRepository operacje na sekcjach treści strony.
type IContentRepository interface {
	FindAll(ctx context.Context) ([]models.ContentSection, error)
	FindBySection(ctx context.Context, section string) (*models.ContentSection, error)
	Upsert(ctx context.Context, content *models.ContentSection) error
}

// ContentRepository implementuje IContentRepository na GORM.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository tworzy repozytorium na globalnym połączeniu.
func NewContentRepository() IContentRepository {
	return &ContentRepository{db: configs.GetDB()}
}

func (r *ContentRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll zwraca wszystkie sekcje.
func (r *ContentRepository) FindAll(ctx context.Context) ([]models.ContentSection, error) {
	var sections []models.ContentSection
	if err := r.getDB(ctx).Order("section ASC").Find(&sections).Error; err != nil {
		configslog.Log.Error("ContentRepository.FindAll: błąd DB", zap.Error(err))
		return nil, err
	}
	return sections, nil
}

// FindBySection zwraca jedną sekcję po nazwie.
func (r *ContentRepository) FindBySection(ctx context.Context, section string) (*models.ContentSection, error) {
	var content models.ContentSection
	err := r.getDB(ctx).Where("section = ?", section).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ContentRepository.FindBySection: błąd DB", zap.String("section", section), zap.Error(err))
		return nil, err
	}
	return &content, nil
}

// Upsert zapisuje sekcję atomowo po unikalnej nazwie (ON CONFLICT).
// Zastępuje to sekwencję "sprawdź czy istnieje, potem insert albo update";
// Postgres daje atomowy prymityw, więc z niego korzystamy.
func (r *ContentRepository) Upsert(ctx context.Context, content *models.ContentSection) error {
	if content == nil || content.Section == "" {
		return errors.New("sekcja bez nazwy")
	}
	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(content).Error
	if err != nil {
		configslog.Log.Error("ContentRepository.Upsert: błąd DB", zap.String("section", content.Section), zap.Error(err))
		return err
	}
	return nil
}
