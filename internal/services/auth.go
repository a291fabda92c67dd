// Package services contains the application services of the client: the
// auth/session service and the story service. Services talk to the API
// through the api.Client interface and keep the in-memory model in sync
// with confirmed server state.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/logging"
	"github.com/hackorsnooze/snooze/internal/models"
	"github.com/hackorsnooze/snooze/internal/storage"
)

// ErrEmptyCredentials is returned when a signup or login field is blank.
var ErrEmptyCredentials = errors.New("credentials must not be empty")

// AuthService manages the user's identity and session.
//
// Contract:
//   - Signup / Login: authenticate against the server; on success persist
//     the session locally and return the user. Auth failures propagate.
//   - Restore: speculative session restore at startup. Soft-fails: any
//     failure (no stored session, expired token, server down) yields
//     (nil, nil), never an error.
//   - Logout: drop the persisted session.
type AuthService interface {
	Signup(ctx context.Context, username, password, name string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  storage.Store
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store storage.Store, logger logging.Logger) AuthService {
	return &authService{client: client, store: store, logger: logger}
}

func (a *authService) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	if username == "" || password == "" || name == "" {
		return nil, ErrEmptyCredentials
	}

	user, err := a.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	a.persistSession(ctx, user)
	return user, nil
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.persistSession(ctx, user)
	return user, nil
}

// persistSession saves the token/username pair for later Restore. A storage
// failure only costs the user a future automatic login, so it is logged
// rather than failing the authentication that already succeeded.
func (a *authService) persistSession(ctx context.Context, user *models.User) {
	sess := storage.Session{Token: user.LoginToken, Username: user.Username}
	if err := a.store.SaveSession(ctx, sess); err != nil {
		a.logger.Warn(ctx, "could not persist session", "error", err.Error())
	}
}

func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	sess, err := a.store.Session(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not read stored session", "error", err.Error())
		return nil, nil
	}
	if !sess.Valid() {
		return nil, nil
	}

	user, err := a.client.GetUser(ctx, sess.Token, sess.Username)
	if err != nil {
		a.logger.Warn(ctx, "stored session rejected", "username", sess.Username, "error", err.Error())
		return nil, nil
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
