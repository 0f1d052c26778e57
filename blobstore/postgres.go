package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	body       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS documents_name_idx ON documents (name, id DESC);`

// PostgresStore keeps document versions in a jsonb table.
type PostgresStore struct {
	db  *sql.DB
	log *zap.Logger
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB, log *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, log: log}
}

func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, documentsSchema); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (p *PostgresStore) Get(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE name = $1 ORDER BY id DESC LIMIT 1`, name,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", name, err)
	}
	return body, nil
}

// Put replaces the stored versions inside one transaction.
func (p *PostgresStore) Put(ctx context.Context, name string, body []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (name, body) VALUES ($1, $2::jsonb)`, name, string(body),
	); err != nil {
		return fmt.Errorf("insert %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	replaced, _ := res.RowsAffected()
	p.log.Debug("document stored", zap.String("name", name), zap.Int64("replaced", replaced))
	return nil
}
