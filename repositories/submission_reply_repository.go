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

// ISubmissionReplyRepository operacje na historii odpowiedzi.
// Odpowiedzi są niemutowalne, tylko zapis i odczyt.
type ISubmissionReplyRepository interface {
	Create(ctx context.Context, reply *models.SubmissionReply) error
	FindBySubmissionID(ctx context.Context, submissionID uint) ([]models.SubmissionReply, error)
}

// SubmissionReplyRepository implementuje ISubmissionReplyRepository na GORM.
type SubmissionReplyRepository struct {
	db *gorm.DB
}

// NewSubmissionReplyRepository tworzy repozytorium na globalnym połączeniu.
func NewSubmissionReplyRepository() ISubmissionReplyRepository {
	return &SubmissionReplyRepository{db: configs.GetDB()}
}

func (r *SubmissionReplyRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create zapisuje kopię audytową wysłanej odpowiedzi.
func (r *SubmissionReplyRepository) Create(ctx context.Context, reply *models.SubmissionReply) error {
	if reply == nil || reply.SubmissionID == 0 {
		return errors.New("odpowiedź bez zgłoszenia")
	}
	if err := r.getDB(ctx).Create(reply).Error; err != nil {
		configslog.Log.Error("SubmissionReplyRepository.Create: błąd DB",
			zap.Uint("submission_id", reply.SubmissionID), zap.Error(err))
		return err
	}
	return nil
}

// FindBySubmissionID zwraca historię odpowiedzi, najnowsze najpierw.
func (r *SubmissionReplyRepository) FindBySubmissionID(ctx context.Context, submissionID uint) ([]models.SubmissionReply, error) {
	var replies []models.SubmissionReply
	err := r.getDB(ctx).
		Where("submission_id = ?", submissionID).
		Order("created_at DESC").
		Find(&replies).Error
	if err != nil {
		configslog.Log.Error("SubmissionReplyRepository.FindBySubmissionID: błąd DB",
			zap.Uint("submission_id", submissionID), zap.Error(err))
		return nil, err
	}
	return replies, nil
}
