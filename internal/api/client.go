// Package api is the transport boundary to the Hack-or-Snooze REST API:
// a Client interface consumed by the service layer, a net/http
// implementation, and the sentinel errors the rest of the client matches on.
package api

import (
	"context"

	"github.com/hackorsnooze/snooze/internal/models"
)

// NewStory holds the user-supplied fields of a story submission.
// StoryID, submitter and timestamp are assigned by the server.
type NewStory struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// Client defines the remote operations the application needs.
//
// All methods honor context cancellation. Methods taking a token require it
// to be a valid bearer credential; the server rejects the call otherwise.
type Client interface {
	// Stories fetches the full story collection in server order. No auth.
	Stories(ctx context.Context) ([]models.Story, error)

	// CreateStory submits a new story and returns the server-confirmed record.
	CreateStory(ctx context.Context, token string, story NewStory) (models.Story, error)

	// DeleteStory removes a story owned by the token's user and returns the
	// server's confirmation message.
	DeleteStory(ctx context.Context, token, storyID string) (string, error)

	// Signup registers a new account and returns the user with LoginToken set.
	Signup(ctx context.Context, username, password, name string) (*models.User, error)

	// Login authenticates and returns the user with LoginToken set.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// GetUser re-fetches the profile of username using a previously issued
	// token. The returned user has LoginToken set to that token.
	GetUser(ctx context.Context, token, username string) (*models.User, error)

	// AddFavorite marks storyID as a favorite of the token's user and
	// returns the server's confirmation message.
	AddFavorite(ctx context.Context, token, username, storyID string) (string, error)

	// RemoveFavorite unmarks storyID as a favorite of the token's user and
	// returns the server's confirmation message.
	RemoveFavorite(ctx context.Context, token, username, storyID string) (string, error)
}
