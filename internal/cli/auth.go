package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, full name, and password, and creates a
// new account. On success the new user becomes the current user and the
// story list is re-rendered with markers.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter your full name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, username, password, name)
	if err != nil {
		return a.fail(ctx, "signup failed", err)
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return a.List(ctx)
}

// Login prompts for credentials and authenticates. On success the user
// becomes the current user and the story list is re-rendered with markers.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, password)
	if err != nil {
		return a.fail(ctx, "login failed", err)
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	return a.List(ctx)
}

// Logout clears the persisted session and drops the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.fail(ctx, "logout failed", err)
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
