package postgres

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts or updates an analysis record
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Record) error {
	const q = `
INSERT INTO analysis_history
  (id, client, text_body, is_scam, verdict, confidence, backend, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO UPDATE SET
  is_scam=EXCLUDED.is_scam,
  verdict=EXCLUDED.verdict,
  confidence=EXCLUDED.confidence,
  backend=EXCLUDED.backend;
`
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, q,
		a.ID, stringOrDash(a.Client), a.Text, a.IsScam, stringOrDash(a.Type),
		a.Confidence, stringOrDash(a.Backend), createdAt,
	)
	return err
}

// Get returns one record, or nil when it does not exist
func (r *AnalysisRepository) Get(ctx context.Context, id domain.RecordID) (*domain.Record, error) {
	const q = `
SELECT id, client, text_body, is_scam, verdict, confidence, backend, created_at
FROM analysis_history
WHERE id=$1
LIMIT 1;`
	a, err := scanRecord(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

// Paginate returns a page of analysis records ordered by created_at desc
func (r *AnalysisRepository) Paginate(ctx context.Context, page, pageSize int) ([]*domain.Record, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, client, text_body, is_scam, verdict, confidence, backend, created_at
FROM analysis_history
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2;
`
	rows, err := r.db.QueryContext(ctx, q, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		a, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnalysisRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analysis_history;`).Scan(&n)
	return n, err
}

func scanRecord(row interface{ Scan(dest ...any) error }) (*domain.Record, error) {
	var a domain.Record
	if err := row.Scan(&a.ID, &a.Client, &a.Text, &a.IsScam, &a.Type, &a.Confidence, &a.Backend, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Client = dashToEmpty(a.Client)
	a.Backend = dashToEmpty(a.Backend)
	return &a, nil
}
