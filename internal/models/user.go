package models

import "time"

// User represents the currently authenticated user: profile data, the
// stories they submitted, the stories they favorited, and the opaque bearer
// token required on every authenticated API call.
//
// Favorites and OwnStories are independent copies built from API payloads.
// They may reference the same logical stories as a StoryList, but there is
// no shared identity; renderers re-derive markers by StoryID lookup.
type User struct {
	Username   string
	Name       string
	CreatedAt  time.Time
	Favorites  []Story
	OwnStories []Story
	LoginToken string
}

// IsFavorite reports whether the user has favorited the story with the
// given id.
func (u *User) IsFavorite(storyID string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// AddFavorite appends s to the user's favorites. Favorites never hold two
// entries with the same StoryID, so adding an already-present story is a
// no-op.
func (u *User) AddFavorite(s Story) {
	if u.IsFavorite(s.StoryID) {
		return
	}
	u.Favorites = append(u.Favorites, s)
}

// RemoveFavorite deletes the favorite with the given id, reporting whether
// it was present.
func (u *User) RemoveFavorite(storyID string) bool {
	for i, s := range u.Favorites {
		if s.StoryID == storyID {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			return true
		}
	}
	return false
}

// Owns reports whether the story with the given id was submitted by this
// user, which grants delete rights.
func (u *User) Owns(storyID string) bool {
	for _, s := range u.OwnStories {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// AddOwnStory appends s to the user's own stories.
func (u *User) AddOwnStory(s Story) {
	u.OwnStories = append(u.OwnStories, s)
}

// RemoveOwnStory deletes the own story with the given id, reporting whether
// it was present.
func (u *User) RemoveOwnStory(storyID string) bool {
	for i, s := range u.OwnStories {
		if s.StoryID == storyID {
			u.OwnStories = append(u.OwnStories[:i], u.OwnStories[i+1:]...)
			return true
		}
	}
	return false
}
