// Package models defines the client-side data model: a single story, the
// ordered story list shown to the user, and the authenticated user with
// their favorites and own stories.
package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ErrMalformedURL is returned when a story URL cannot be parsed as an
// absolute URL. Callers should use errors.Is to match it.
var ErrMalformedURL = errors.New("malformed story url")

// Story is one user-submitted link record. All fields come verbatim from the
// API; StoryID and CreatedAt are server-assigned. A Story is never mutated
// after construction.
type Story struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Hostname parses the story URL and returns its hostname component.
// The URL must be absolute; anything else fails with ErrMalformedURL.
func (s Story) Hostname() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, s.URL)
	}
	if !u.IsAbs() || u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, s.URL)
	}
	return u.Hostname(), nil
}
