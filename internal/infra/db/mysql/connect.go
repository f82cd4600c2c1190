package mysql

import (
	"context"
	"database/sql"
	_ "github.com/go-sql-driver/mysql"
	"time"
)

func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	// test ping
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
  id          VARCHAR(36)   NOT NULL PRIMARY KEY,
  client      VARCHAR(128)  NOT NULL,
  text_body   MEDIUMTEXT    NOT NULL,
  is_scam     BOOLEAN       NOT NULL,
  verdict     VARCHAR(64)   NOT NULL,
  confidence  DOUBLE        NOT NULL,
  backend     VARCHAR(32)   NOT NULL,
  created_at  DATETIME(6)   NOT NULL,
  INDEX idx_analysis_history_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

// EnsureSchema creates the history table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
