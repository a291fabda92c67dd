// Package storage persists the login session (token and username) between
// runs, so the app can restore a session at startup without asking for
// credentials again. It is a small key/value table in a local sqlite file.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hackorsnooze/snooze/internal/dbx"
)

const (
	keyToken    = "token"
	keyUsername = "username"
)

// Session is the persisted credential pair. Empty fields mean no session.
type Session struct {
	Token    string
	Username string
}

// Valid reports whether the session carries both a token and a username.
func (s Session) Valid() bool {
	return s.Token != "" && s.Username != ""
}

// Store reads and writes the persisted session.
type Store interface {
	// Session returns the stored session, or a zero Session when none exists.
	Session(ctx context.Context) (Session, error)

	// SaveSession replaces the stored session atomically.
	SaveSession(ctx context.Context, s Session) error

	// Clear removes any stored session.
	Clear(ctx context.Context) error
}

// SQLiteStore is the sqlite-backed Store.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Session(ctx context.Context) (Session, error) {
	token, err := get(ctx, s.db, keyToken)
	if err != nil {
		return Session{}, err
	}
	username, err := get(ctx, s.db, keyUsername)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Username: username}, nil
}

// SaveSession writes both keys in one transaction so a restored session is
// never half of one login and half of another.
func (s *SQLiteStore) SaveSession(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, sess.Token); err != nil {
			return err
		}
		return set(ctx, tx, keyUsername, sess.Username)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
