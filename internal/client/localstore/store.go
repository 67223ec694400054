// Package localstore persists small pieces of client state (the auth
// token, the signed-in user's name) in a local SQLite database so a
// session survives restarts.
package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/carekeeper/internal/client/localstore/migrations"
	"github.com/dmitrijs2005/carekeeper/internal/dbx"
)

const (
	keyAuthToken = "auth_token"
	keyUserName  = "user_name"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn, applies
// migrations and returns a ready Store. The returned *sql.DB is owned by
// the caller and should be closed on shutdown.
func Open(ctx context.Context, dsn string) (*Store, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local database: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return New(db), db, nil
}

func get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

// Token returns the persisted bearer token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := get(ctx, s.db, keyAuthToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// UserName returns the cached display name of the signed-in user. It is
// advisory only; the profile endpoint remains the source of truth.
func (s *Store) UserName(ctx context.Context) (string, error) {
	v, err := get(ctx, s.db, keyUserName)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SaveSession stores the token and user name in one transaction so a
// crash between the writes cannot leave a token without its name or
// vice versa.
func (s *Store) SaveSession(ctx context.Context, token, name string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyAuthToken, []byte(token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUserName, []byte(name))
	})
}

// SaveUserName refreshes the cached display name, e.g. after a profile
// update.
func (s *Store) SaveUserName(ctx context.Context, name string) error {
	return set(ctx, s.db, keyUserName, []byte(name))
}

// ClearSession removes the token and user name in one transaction.
func (s *Store) ClearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := del(ctx, tx, keyAuthToken); err != nil {
			return err
		}
		return del(ctx, tx, keyUserName)
	})
}
