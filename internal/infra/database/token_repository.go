package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// TokenRepository keeps the token in a small key/value table so several
// console instances can share one login.
type TokenRepository struct {
	DB *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

func (r *TokenRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS client_kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create client_kv: %w", err)
	}
	return nil
}

func (r *TokenRepository) Get(ctx context.Context) (string, error) {
	query := `SELECT value FROM client_kv WHERE key = $1`

	var token string
	err := r.DB.QueryRowContext(ctx, query, TokenKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

func (r *TokenRepository) Set(ctx context.Context, token string) error {
	query := `
		INSERT INTO client_kv (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.DB.ExecContext(ctx, query, TokenKey, token); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Delete(ctx context.Context) error {
	query := `DELETE FROM client_kv WHERE key = $1`
	if _, err := r.DB.ExecContext(ctx, query, TokenKey); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}
