package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ledkino.pl/configs"
	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
	"ledkino.pl/pkg/polishsearch"
	"ledkino.pl/pkg/queryparams"
)

// ISubmissionRepository operacje bazodanowe na zgłoszeniach.
type ISubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	FindByID(ctx context.Context, id uint) (*models.Submission, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Submission, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.SubmissionStatus) error
	Delete(ctx context.Context, id uint) error
}

// SubmissionRepository implementuje ISubmissionRepository na GORM.
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository tworzy repozytorium na globalnym połączeniu.
func NewSubmissionRepository() ISubmissionRepository {
	return &SubmissionRepository{db: configs.GetDB()}
}

func (r *SubmissionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create zapisuje nowe zgłoszenie.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission == nil {
		return errors.New("puste zgłoszenie")
	}
	if err := r.getDB(ctx).Create(submission).Error; err != nil {
		configslog.Log.Error("SubmissionRepository.Create: błąd DB", zap.Error(err))
		return err
	}
	return nil
}

// FindByID zwraca zgłoszenie po ID.
func (r *SubmissionRepository) FindByID(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	err := r.getDB(ctx).First(&submission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SubmissionRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &submission, nil
}

// submissionSortColumns kolumny dozwolone w sortowaniu listy. Wszystko spoza
// białej listy wraca do domyślnego created_at.
var submissionSortColumns = map[string]string{
	"created_at":    "submissions.created_at",
	"status":        "submissions.status",
	"last_name":     "submissions.last_name",
	"audience_size": "submissions.audience_size",
}

func submissionOrderClause(params queryparams.ListParams) string {
	column, ok := submissionSortColumns[params.SortBy]
	if !ok {
		column = "submissions.created_at"
	}
	direction := "DESC"
	if params.OrderBy == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

// applySubmissionFilters składa filtr statusu i wyszukiwanie w jedno zapytanie.
// Wyszukiwanie działa po imieniu, nazwisku i e-mailu łącznie (OR), bez
// rozróżniania wielkości liter i polskich diakrytyków.
func applySubmissionFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	if params.Status != "" && params.Status != "all" {
		query = query.Where("submissions.status = ?", params.Status)
	}
	if params.Search != "" {
		firstSQL, firstArgs := polishsearch.SQLFilter("submissions.first_name", params.Search)
		lastSQL, lastArgs := polishsearch.SQLFilter("submissions.last_name", params.Search)
		emailSQL, emailArgs := polishsearch.SQLFilter("submissions.email", params.Search)
		args := append(append(firstArgs, lastArgs...), emailArgs...)
		query = query.Where("("+firstSQL+" OR "+lastSQL+" OR "+emailSQL+")", args...)
	}
	return query
}

// FindAllPaginated zwraca zgłoszenia wg filtrów i sortowania,
// domyślnie najnowsze najpierw.
func (r *SubmissionRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Submission, int64, error) {
	var (
		submissions []models.Submission
		totalCount  int64
	)
	query := applySubmissionFilters(r.getDB(ctx).Model(&models.Submission{}), params)

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("SubmissionRepository.FindAllPaginated: błąd count", zap.Error(err))
		return nil, 0, err
	}
	err := query.
		Order(submissionOrderClause(params)).
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&submissions).Error
	if err != nil {
		configslog.Log.Error("SubmissionRepository.FindAllPaginated: błąd DB", zap.Error(err))
		return nil, 0, err
	}
	return submissions, totalCount, nil
}

// UpdateStatus nadpisuje status bez żadnych warunków na stan bieżący.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id uint, status models.SubmissionStatus) error {
	result := r.getDB(ctx).Model(&models.Submission{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		configslog.Log.Error("SubmissionRepository.UpdateStatus: błąd DB", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete usuwa zgłoszenie. Odpowiedzi celowo nie są usuwane kaskadowo.
func (r *SubmissionRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Submission{}, id)
	if result.Error != nil {
		configslog.Log.Error("SubmissionRepository.Delete: błąd DB", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
