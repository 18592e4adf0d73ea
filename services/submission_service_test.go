package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledkino.pl/models"
	"ledkino.pl/pkg/polishsearch"
	"ledkino.pl/pkg/queryparams"
	"ledkino.pl/repositories"
)

// --- atrapy zależności ---

type fakeSubmissionRepo struct {
	mu          sync.Mutex
	ops         *opLog
	submissions map[uint]*models.Submission
	nextID      uint
	statusErr   error
}

func newFakeSubmissionRepo(ops *opLog) *fakeSubmissionRepo {
	return &fakeSubmissionRepo{ops: ops, submissions: map[uint]*models.Submission{}, nextID: 1}
}

func (f *fakeSubmissionRepo) Create(_ context.Context, s *models.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.nextID
	f.nextID++
	s.CreatedAt = time.Now()
	copied := *s
	f.submissions[s.ID] = &copied
	f.ops.add("submission.create")
	return nil
}

func (f *fakeSubmissionRepo) FindByID(_ context.Context, id uint) (*models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.submissions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSubmissionRepo) FindAllPaginated(_ context.Context, params queryparams.ListParams) ([]models.Submission, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Submission
	for _, s := range f.submissions {
		if params.Status != "all" && string(s.Status) != params.Status {
			continue
		}
		if params.Search != "" &&
			!polishsearch.Contains(s.FirstName, params.Search) &&
			!polishsearch.Contains(s.LastName, params.Search) &&
			!polishsearch.Contains(s.Email, params.Search) {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSubmissionRepo) UpdateStatus(_ context.Context, id uint, status models.SubmissionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return f.statusErr
	}
	s, ok := f.submissions[id]
	if !ok {
		return repositories.ErrNotFound
	}
	s.Status = status
	f.ops.add("status:" + string(status))
	return nil
}

func (f *fakeSubmissionRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.submissions[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.submissions, id)
	return nil
}

type fakeReplyRepo struct {
	mu        sync.Mutex
	ops       *opLog
	replies   []models.SubmissionReply
	createErr error
	nextID    uint
}

func newFakeReplyRepo(ops *opLog) *fakeReplyRepo {
	return &fakeReplyRepo{ops: ops, nextID: 1}
}

func (f *fakeReplyRepo) Create(_ context.Context, reply *models.SubmissionReply) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	reply.ID = f.nextID
	f.nextID++
	reply.CreatedAt = time.Now()
	f.replies = append(f.replies, *reply)
	f.ops.add("reply.create")
	return nil
}

func (f *fakeReplyRepo) FindBySubmissionID(_ context.Context, submissionID uint) ([]models.SubmissionReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SubmissionReply
	for i := len(f.replies) - 1; i >= 0; i-- {
		if f.replies[i].SubmissionID == submissionID {
			out = append(out, f.replies[i])
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if f.nextID == 0 {
		f.nextID = uint(len(f.users)) + 1
	}
	u.ID = f.nextID
	f.nextID++
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeMailer struct {
	ops          *opLog
	sendErr      error
	notified     chan *models.Submission
	sentReplies  []string
	replySubject string
}

func newFakeMailer(ops *opLog) *fakeMailer {
	return &fakeMailer{ops: ops, notified: make(chan *models.Submission, 4)}
}

func (f *fakeMailer) SendLeadNotification(s *models.Submission) error {
	f.notified <- s
	return nil
}

func (f *fakeMailer) SendReply(toEmail, subject, message string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.ops.add("mail.send")
	f.sentReplies = append(f.sentReplies, toEmail)
	f.replySubject = subject
	return nil
}

// opLog rejestruje kolejność efektów ubocznych między atrapami.
type opLog struct {
	mu  sync.Mutex
	ops []string
}

func (l *opLog) add(op string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ops = append(l.ops, op)
}

func (l *opLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.ops...)
}

func newTestService() (*SubmissionService, *fakeSubmissionRepo, *fakeReplyRepo, *fakeMailer, *opLog) {
	ops := &opLog{}
	repo := newFakeSubmissionRepo(ops)
	replyRepo := newFakeReplyRepo(ops)
	userRepo := &fakeUserRepo{users: map[uint]*models.User{
		7: {BaseModel: models.BaseModel{ID: 7}, Email: "kasia@ledkino.pl", Name: "Kasia", Role: models.RoleEditor, IsActive: true},
	}}
	mailer := newFakeMailer(ops)
	svc := &SubmissionService{repo: repo, replyRepo: replyRepo, userRepo: userRepo, mailer: mailer}
	return svc, repo, replyRepo, mailer, ops
}

func validSubmission() *models.Submission {
	return &models.Submission{
		FirstName:    "Anna",
		LastName:     "Nowak",
		Email:        "anna@example.com",
		Phone:        "+48 600 100 200",
		EventType:    models.EventTypeCorporate,
		AudienceSize: 300,
		WantsPopcorn: true,
		Message:      "Szukamy kina na piknik firmowy.",
	}
}

// --- Create ---

func TestCreateSetsStatusNewAndEstimatedLevel(t *testing.T) {
	svc, _, _, mailer, _ := newTestService()

	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, models.SubmissionStatusNew, created.Status)
	assert.Equal(t, "Pakiet Standard", created.EstimatedLevel)
	assert.NotZero(t, created.ID)

	// Powiadomienia idą w tle, ale muszą zostać podjęte.
	select {
	case notified := <-mailer.notified:
		assert.Equal(t, created.ID, notified.ID)
		assert.Equal(t, "Event Firmowy", notified.EventType.Label())
	case <-time.After(time.Second):
		t.Fatal("powiadomienie o nowym zgłoszeniu nie zostało wysłane")
	}
}

func TestCreateGeneratesDistinctIDs(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	seen := map[uint]bool{}
	for i := 0; i < 5; i++ {
		created, err := svc.Create(context.Background(), validSubmission())
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "ID %d powtórzyło się", created.ID)
		seen[created.ID] = true
	}
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	cases := map[string]func(*models.Submission){
		"brak imienia":     func(s *models.Submission) { s.FirstName = "" },
		"brak nazwiska":    func(s *models.Submission) { s.LastName = "" },
		"brak e-maila":     func(s *models.Submission) { s.Email = "" },
		"brak telefonu":    func(s *models.Submission) { s.Phone = "" },
		"brak wiadomości":  func(s *models.Submission) { s.Message = "" },
		"zły typ eventu":   func(s *models.Submission) { s.EventType = "garden" },
		"zerowa widownia":  func(s *models.Submission) { s.AudienceSize = 0 },
		"ujemna widownia":  func(s *models.Submission) { s.AudienceSize = -5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			sub := validSubmission()
			mutate(sub)
			_, err := svc.Create(context.Background(), sub)
			assert.ErrorIs(t, err, ErrSubmissionInvalidInput)
		})
	}
}

// --- UpdateStatus ---

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	svc, repo, _, _, _ := newTestService()
	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	// Płaski zbiór statusów: każde przejście jest legalne, także "wstecz".
	sequence := []models.SubmissionStatus{
		models.SubmissionStatusClosed,
		models.SubmissionStatusNew,
		models.SubmissionStatusContacted,
		models.SubmissionStatusInProgress,
		models.SubmissionStatusNew,
	}
	for _, status := range sequence {
		updated, err := svc.UpdateStatus(context.Background(), created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, models.SubmissionStatusNew, stored.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.UpdateStatus(context.Background(), 1, "ARCHIVED")
	assert.ErrorIs(t, err, ErrSubmissionInvalidStatus)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.UpdateStatus(context.Background(), 999, models.SubmissionStatusClosed)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

// --- Delete ---

func TestDeleteRemovesSubmissionAndKeepsReplies(t *testing.T) {
	svc, _, replyRepo, _, _ := newTestService()
	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	_, err = svc.Reply(context.Background(), created.ID, 7, "Oferta", "Dzień dobry...")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	// Zgłoszenia nie ma na liście...
	result, err := svc.List(context.Background(), queryparams.DefaultListParams("created_at"))
	require.NoError(t, err)
	assert.Empty(t, result.Data)

	// ...ale kopia odpowiedzi celowo została.
	orphaned, err := replyRepo.FindBySubmissionID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, orphaned, 1)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	assert.ErrorIs(t, svc.Delete(context.Background(), 12345), ErrSubmissionNotFound)
}

// --- Reply ---

func TestReplyOnNewTransitionsToContactedThenAppends(t *testing.T) {
	svc, repo, replyRepo, mailer, ops := newTestService()
	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	reply, err := svc.Reply(context.Background(), created.ID, 7, "Oferta", "Dzień dobry,\nprzesyłamy wycenę.")
	require.NoError(t, err)

	assert.Equal(t, "Kasia", reply.SentByName)
	assert.Equal(t, []string{"anna@example.com"}, mailer.sentReplies)
	assert.Equal(t, "Oferta", mailer.replySubject)

	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, models.SubmissionStatusContacted, stored.Status)
	assert.Len(t, replyRepo.replies, 1)

	// Kolejność efektów: wysyłka → zmiana statusu → wpis w historii.
	recorded := ops.snapshot()
	assert.Equal(t, []string{"submission.create", "mail.send", "status:CONTACTED", "reply.create"}, recorded)
}

func TestReplyOnNonNewKeepsStatus(t *testing.T) {
	svc, repo, replyRepo, _, _ := newTestService()
	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), created.ID, models.SubmissionStatusClosed)
	require.NoError(t, err)

	// Odpowiedź na zamknięte zgłoszenie jest dozwolona i nie rusza statusu.
	_, err = svc.Reply(context.Background(), created.ID, 7, "Jeszcze jedno", "Dosyłamy załącznik.")
	require.NoError(t, err)

	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, models.SubmissionStatusClosed, stored.Status)
	assert.Len(t, replyRepo.replies, 1)
}

func TestReplySendFailureWritesNothing(t *testing.T) {
	svc, repo, replyRepo, mailer, _ := newTestService()
	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	mailer.sendErr = errors.New("smtp: connection refused")
	_, err = svc.Reply(context.Background(), created.ID, 7, "Oferta", "Dzień dobry...")
	assert.ErrorIs(t, err, ErrSubmissionReplyFailed)

	// Bez udanej wysyłki: zero wpisów w historii i status bez zmian.
	assert.Empty(t, replyRepo.replies)
	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, models.SubmissionStatusNew, stored.Status)
}

func TestReplyHistoryAppendFailureStillSucceeds(t *testing.T) {
	svc, repo, replyRepo, _, _ := newTestService()
	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	replyRepo.createErr = errors.New("zerwane połączenie z bazą")
	_, err = svc.Reply(context.Background(), created.ID, 7, "Oferta", "Dzień dobry...")

	// E-mail dotarł, operacja raportuje sukces mimo braku wpisu audytowego.
	require.NoError(t, err)
	assert.Empty(t, replyRepo.replies)
	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, models.SubmissionStatusContacted, stored.Status)
}

func TestReplyRejectsEmptySubjectOrMessage(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.Reply(context.Background(), 1, 7, "", "treść")
	assert.ErrorIs(t, err, ErrSubmissionInvalidInput)
	_, err = svc.Reply(context.Background(), 1, 7, "temat", "")
	assert.ErrorIs(t, err, ErrSubmissionInvalidInput)
}

func TestReplyUnknownSubmissionOrSender(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.Reply(context.Background(), 404, 7, "Oferta", "Dzień dobry...")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)

	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)
	_, err = svc.Reply(context.Background(), created.ID, 999, "Oferta", "Dzień dobry...")
	assert.ErrorIs(t, err, ErrSubmissionSenderNotFound)
}

// --- ListReplies ---

func TestListRepliesReturnsNewestFirst(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		_, err := svc.Reply(context.Background(), created.ID, 7,
			fmt.Sprintf("Oferta %d", i), "Dzień dobry...")
		require.NoError(t, err)
	}

	replies, err := svc.ListReplies(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, replies, 3)
	assert.Equal(t, "Oferta 3", replies[0].Subject)
	assert.Equal(t, "Oferta 1", replies[2].Subject)
}

func TestListRepliesUnknownSubmission(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.ListReplies(context.Background(), 404)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

// --- List ---

func TestListFiltersByStatus(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	first, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), first.ID, models.SubmissionStatusClosed)
	require.NoError(t, err)

	params := queryparams.DefaultListParams("created_at")
	params.Status = "NEW"
	result, err := svc.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.TotalItems)

	params.Status = "all"
	result, err = svc.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Meta.TotalItems)
}

func TestListSearchMatchesNameOrEmailAcrossStatuses(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	byName := validSubmission()
	byName.FirstName = "Łukasz"
	byName.LastName = "Żółty"
	byName.Email = "lukasz@example.pl"
	created, err := svc.Create(context.Background(), byName)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), created.ID, models.SubmissionStatusClosed)
	require.NoError(t, err)

	byEmail := validSubmission()
	byEmail.FirstName = "Piotr"
	byEmail.LastName = "Kowalski"
	byEmail.Email = "zolty.piotr@example.pl"
	_, err = svc.Create(context.Background(), byEmail)
	require.NoError(t, err)

	other := validSubmission()
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	// Fraza bez diakrytyków trafia w nazwisko z diakrytykami i w e-mail,
	// niezależnie od statusu (OR po trzech polach).
	params := queryparams.DefaultListParams("created_at")
	params.Search = "ZOLTY"
	result, err := svc.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Meta.TotalItems)

	// Status i szukana fraza składają się koniunkcyjnie.
	params.Status = "CLOSED"
	result, err = svc.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.TotalItems)
	matched := result.Data.([]models.Submission)
	require.Len(t, matched, 1)
	assert.Equal(t, "Żółty", matched[0].LastName)

	// Imię też jest przeszukiwane.
	params = queryparams.DefaultListParams("created_at")
	params.Search = "łUkAsZ"
	result, err = svc.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.TotalItems)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	params := queryparams.DefaultListParams("created_at")
	params.Status = "SPAM"
	_, err := svc.List(context.Background(), params)
	assert.ErrorIs(t, err, ErrSubmissionInvalidStatus)
}
