package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledkino.pl/models"
	"ledkino.pl/pkg/queryparams"
)

// Fragment WHERE wspólny dla count i select: status plus wyszukiwanie
// po trzech polach naraz, po obu stronach znormalizowane przez translate().
const submissionSearchWhere = `submissions.status = $1 AND (` +
	`translate(lower(submissions.first_name), 'ąćęłńóśźż', 'acelnoszz') LIKE $2 OR ` +
	`translate(lower(submissions.last_name), 'ąćęłńóśźż', 'acelnoszz') LIKE $3 OR ` +
	`translate(lower(submissions.email), 'ąćęłńóśźż', 'acelnoszz') LIKE $4)`

func TestSubmissionRepositoryListComposesStatusAndSearch(t *testing.T) {
	gdb, mock := newMockedDB(t)
	repo := &SubmissionRepository{db: gdb}

	params := queryparams.DefaultListParams("created_at")
	params.Status = "NEW"
	params.Search = "Żółty"

	// Termin z diakrytykami trafia do argumentów już znormalizowany.
	wantLike := "%zolty%"
	mock.ExpectQuery(regexp.QuoteMeta(submissionSearchWhere)).
		WithArgs("NEW", wantLike, wantLike, wantLike).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(submissionSearchWhere) + `(.+)` +
		regexp.QuoteMeta(`ORDER BY submissions.created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "status"}).
			AddRow(3, "Jan", "Żółty", "jan@example.pl", "NEW"))

	submissions, total, err := repo.FindAllPaginated(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, submissions, 1)
	assert.Equal(t, "Żółty", submissions[0].LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepositoryListWithoutSearchSkipsLikeClauses(t *testing.T) {
	gdb, mock := newMockedDB(t)
	repo := &SubmissionRepository{db: gdb}

	params := queryparams.DefaultListParams("created_at")

	mock.ExpectQuery(`SELECT count(.+) FROM "submissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY submissions.created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, total, err := repo.FindAllPaginated(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionOrderClauseWhitelist(t *testing.T) {
	cases := map[string]struct {
		sortBy  string
		orderBy string
		want    string
	}{
		"domyślne":           {"created_at", "desc", "submissions.created_at DESC"},
		"rosnąco":            {"last_name", "asc", "submissions.last_name ASC"},
		"status":             {"status", "desc", "submissions.status DESC"},
		"spoza białej listy": {"password_hash", "desc", "submissions.created_at DESC"},
		"pusta kolumna":      {"", "asc", "submissions.created_at ASC"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			params := queryparams.ListParams{SortBy: tc.sortBy, OrderBy: tc.orderBy}
			assert.Equal(t, tc.want, submissionOrderClause(params))
		})
	}
}

func TestSubmissionRepositoryUpdateStatusNotFound(t *testing.T) {
	gdb, mock := newMockedDB(t)
	repo := &SubmissionRepository{db: gdb}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "submissions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 42, models.SubmissionStatusClosed)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
