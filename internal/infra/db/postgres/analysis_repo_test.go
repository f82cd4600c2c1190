package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

var columns = []string{"id", "client", "text_body", "is_scam", "verdict", "confidence", "backend", "created_at"}

func newMockRepo(t *testing.T) (*AnalysisRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAnalysisRepository(db), mock
}

func TestSaveUpsertsRecord(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analysis_history") + `[\s\S]*ON CONFLICT \(id\) DO UPDATE`).
		WithArgs("rec-1", "-", "reset your password", true, "Phishing", 94.0, "stub", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &domain.Record{
		ID:         "rec-1",
		Text:       "reset your password",
		IsScam:     true,
		Type:       "Phishing",
		Confidence: 94,
		Backend:    "stub",
		CreatedAt:  created,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDefaultsCreatedAt(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analysis_history")).
		WithArgs("rec-2", "web", "hi", false, "None", 98.0, "-", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &domain.Record{ID: "rec-2", Client: "web", Text: "hi", Type: "None", Confidence: 98})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRestoresDashedFields(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM analysis_history") + `\s+WHERE id=\$1`).
		WithArgs("rec-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("rec-1", "-", "win crypto", true, "Spam / Fraud", 88.0, "-", created))

	rec, err := repo.Get(context.Background(), "rec-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, domain.RecordID("rec-1"), rec.ID)
	assert.Empty(t, rec.Client)
	assert.Empty(t, rec.Backend)
	assert.Equal(t, "Spam / Fraud", rec.Type)
	assert.Equal(t, 88.0, rec.Confidence)
	assert.Equal(t, created, rec.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMissingReturnsNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM analysis_history")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(columns))

	rec, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, rec)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateUsesLimitOffset(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC") + `\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("a", "web", "t1", false, "None", 98.0, "stub", created).
			AddRow("b", "web", "t2", true, "Phishing", 94.0, "stub", created))

	out, err := repo.Paginate(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, domain.RecordID("b"), out[1].ID)
	assert.True(t, out[1].IsScam)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateDefaults(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(columns))

	out, err := repo.Paginate(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM analysis_history")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
