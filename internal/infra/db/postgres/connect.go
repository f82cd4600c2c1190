package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS analysis_history (
  id          TEXT             PRIMARY KEY,
  client      TEXT             NOT NULL,
  text_body   TEXT             NOT NULL,
  is_scam     BOOLEAN          NOT NULL,
  verdict     TEXT             NOT NULL,
  confidence  DOUBLE PRECISION NOT NULL,
  backend     TEXT             NOT NULL,
  created_at  TIMESTAMPTZ      NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_history_created ON analysis_history (created_at);`

// EnsureSchema creates the history table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
