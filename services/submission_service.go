package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
	"ledkino.pl/pkg/queryparams"
	"ledkino.pl/repositories"
)

// SubmissionServiceError błędy domenowe obsługi zgłoszeń.
type SubmissionServiceError string

func (e SubmissionServiceError) Error() string { return string(e) }

const (
	ErrSubmissionNotFound       SubmissionServiceError = "zgłoszenie nie istnieje"
	ErrSubmissionInvalidInput   SubmissionServiceError = "nieprawidłowe dane zgłoszenia"
	ErrSubmissionInvalidStatus  SubmissionServiceError = "nieprawidłowy status zgłoszenia"
	ErrSubmissionCreateFailed   SubmissionServiceError = "nie udało się zapisać zgłoszenia"
	ErrSubmissionReplyFailed    SubmissionServiceError = "nie udało się wysłać odpowiedzi"
	ErrSubmissionSenderNotFound SubmissionServiceError = "konto wysyłającego nie istnieje"
)

// ISubmissionService cykl życia zapytania ofertowego: przyjęcie z formularza,
// lista z filtrami, zmiany statusu, odpowiedzi z kopią audytową.
type ISubmissionService interface {
	Create(ctx context.Context, submission *models.Submission) (*models.Submission, error)
	List(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetByID(ctx context.Context, id uint) (*models.Submission, error)
	UpdateStatus(ctx context.Context, id uint, status models.SubmissionStatus) (*models.Submission, error)
	Delete(ctx context.Context, id uint) error
	Reply(ctx context.Context, id uint, senderUserID uint, subject, message string) (*models.SubmissionReply, error)
	ListReplies(ctx context.Context, id uint) ([]models.SubmissionReply, error)
}

// SubmissionService implementuje ISubmissionService.
type SubmissionService struct {
	repo      repositories.ISubmissionRepository
	replyRepo repositories.ISubmissionReplyRepository
	userRepo  repositories.IUserRepository
	mailer    IMailerService
}

// NewSubmissionService tworzy serwis z domyślnymi zależnościami.
func NewSubmissionService() ISubmissionService {
	return &SubmissionService{
		repo:      repositories.NewSubmissionRepository(),
		replyRepo: repositories.NewSubmissionReplyRepository(),
		userRepo:  repositories.NewUserRepository(),
		mailer:    NewMailerService(),
	}
}

// ValidateSubmission sprawdza pola wymagane przy przyjęciu zgłoszenia.
func ValidateSubmission(s *models.Submission) error {
	if s == nil {
		return ErrSubmissionInvalidInput
	}
	if s.FirstName == "" || s.LastName == "" || s.Email == "" || s.Phone == "" || s.Message == "" {
		return fmt.Errorf("%w: imię, nazwisko, e-mail, telefon i wiadomość są wymagane", ErrSubmissionInvalidInput)
	}
	if !s.EventType.Valid() {
		return fmt.Errorf("%w: nieznany rodzaj wydarzenia %q", ErrSubmissionInvalidInput, s.EventType)
	}
	if s.AudienceSize <= 0 {
		return fmt.Errorf("%w: liczba widzów musi być dodatnia", ErrSubmissionInvalidInput)
	}
	return nil
}

// Create przyjmuje zgłoszenie z publicznego formularza: zapis ze statusem NEW
// i wyliczonym pakietem, a następnie powiadomienia e-mail w tle. Niedostarczone
// powiadomienie nigdy nie wycofuje zapisu ani nie psuje odpowiedzi dla klienta.
func (s *SubmissionService) Create(ctx context.Context, submission *models.Submission) (*models.Submission, error) {
	if err := ValidateSubmission(submission); err != nil {
		return nil, err
	}

	submission.Status = models.SubmissionStatusNew
	submission.EstimatedLevel = models.EstimateLevel(submission.AudienceSize)

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, ErrSubmissionCreateFailed
	}
	configslog.Log.Info("Przyjęto nowe zgłoszenie",
		zap.Uint("id", submission.ID),
		zap.String("event_type", string(submission.EventType)),
		zap.Int("audience_size", submission.AudienceSize))

	// Powiadomienia idą w tle, formularz nie czeka na SMTP.
	notified := *submission
	go func(sub models.Submission) {
		if err := s.mailer.SendLeadNotification(&sub); err != nil {
			configslog.Log.Error("Powiadomienia o zgłoszeniu nie wyszły w komplecie",
				zap.Uint("submission_id", sub.ID), zap.Error(err))
		}
	}(notified)

	return submission, nil
}

// List zwraca zgłoszenia wg filtrów (status, szukana fraza), najnowsze najpierw.
func (s *SubmissionService) List(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.Status != "all" && !models.SubmissionStatus(params.Status).Valid() {
		return nil, ErrSubmissionInvalidStatus
	}

	submissions, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: submissions,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetByID zwraca jedno zgłoszenie.
func (s *SubmissionService) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	submission, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

// UpdateStatus nadpisuje status. Zbiór statusów jest płaski, każde przejście
// jest dozwolone, walidujemy wyłącznie przynależność do enum.
func (s *SubmissionService) UpdateStatus(ctx context.Context, id uint, status models.SubmissionStatus) (*models.Submission, error) {
	if !status.Valid() {
		return nil, ErrSubmissionInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete usuwa zgłoszenie. Historia odpowiedzi świadomie zostaje w tabeli.
func (s *SubmissionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}
	configslog.Log.Info("Usunięto zgłoszenie", zap.Uint("id", id))
	return nil
}

// Reply wysyła odpowiedź do klienta i zapisuje jej kopię w historii.
//
// Kolejność jest istotna i celowa:
//  1. wysyłka e-maila: gdy się nie powiedzie, operacja kończy się błędem
//     i nic nie zostaje zapisane;
//  2. po udanej wysyłce: automatyczne przejście NEW → CONTACTED (jedyna
//     warunkowa zmiana statusu w systemie) i dopisanie kopii do historii.
//     Błędy w tym kroku są logowane, ale operacja raportuje sukces;
//     z punktu widzenia firmy liczy się dostarczony e-mail, wpis w historii
//     jest wygodą audytową.
func (s *SubmissionService) Reply(ctx context.Context, id uint, senderUserID uint, subject, message string) (*models.SubmissionReply, error) {
	if subject == "" || message == "" {
		return nil, fmt.Errorf("%w: temat i treść są wymagane", ErrSubmissionInvalidInput)
	}

	submission, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sender, err := s.userRepo.FindByID(ctx, senderUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSubmissionSenderNotFound
		}
		return nil, err
	}

	if err := s.mailer.SendReply(submission.Email, subject, message); err != nil {
		configslog.Log.Error("Wysyłka odpowiedzi nie powiodła się",
			zap.Uint("submission_id", id), zap.Error(err))
		return nil, ErrSubmissionReplyFailed
	}

	if submission.Status == models.SubmissionStatusNew {
		if err := s.repo.UpdateStatus(ctx, id, models.SubmissionStatusContacted); err != nil {
			configslog.Log.Error("Automatyczna zmiana statusu po odpowiedzi nie powiodła się",
				zap.Uint("submission_id", id), zap.Error(err))
		}
	}

	reply := &models.SubmissionReply{
		SubmissionID: id,
		Subject:      subject,
		Message:      message,
		SentByID:     sender.ID,
		SentByName:   sender.DisplayName(),
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		// E-mail już dotarł do klienta, brak wpisu audytowego nie może
		// zamienić udanej operacji w błąd.
		configslog.Log.Error("Zapis kopii odpowiedzi nie powiódł się",
			zap.Uint("submission_id", id), zap.Error(err))
	}

	configslog.Log.Info("Wysłano odpowiedź do klienta",
		zap.Uint("submission_id", id), zap.Uint("sender_id", sender.ID))
	return reply, nil
}

// ListReplies zwraca historię odpowiedzi, najnowsze najpierw.
func (s *SubmissionService) ListReplies(ctx context.Context, id uint) ([]models.SubmissionReply, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.replyRepo.FindBySubmissionID(ctx, id)
}
