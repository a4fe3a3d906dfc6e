package documents

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGStore implements TextStore using Postgres.
type PGStore struct {
	DB *sql.DB
}

// Put inserts a new document text record. Duplicate tokens are rejected by
// the primary key so an issued token can never be remapped.
func (s *PGStore) Put(ctx context.Context, token, text string) error {
	const query = `
INSERT INTO document_texts (token, content, created_at)
VALUES ($1, $2, $3)`

	_, err := s.DB.ExecContext(ctx, query, token, text, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrTokenExists
		}
		return err
	}
	return nil
}

// Get returns the text stored under token.
func (s *PGStore) Get(ctx context.Context, token string) (string, error) {
	const query = `
SELECT content
FROM document_texts
WHERE token = $1`

	var content string
	err := s.DB.QueryRowContext(ctx, query, token).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUnknownToken
	}
	if err != nil {
		return "", err
	}
	return content, nil
}
