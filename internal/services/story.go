package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/logging"
	"github.com/hackorsnooze/snooze/internal/models"
)

var (
	// ErrNotLoggedIn is returned by mutating operations called without an
	// authenticated user.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrToggleInFlight is returned when a favorite toggle is requested for
	// a story whose previous toggle has not completed yet.
	ErrToggleInFlight = errors.New("favorite toggle already in flight")

	// ErrNotOwner is returned when deleting a story the user did not submit.
	ErrNotOwner = errors.New("story not owned by user")
)

// StoryService implements the story operations: fetching the list,
// submitting, deleting, and favorite toggling.
//
// Local state (the StoryList and the user's Favorites/OwnStories) is only
// mutated after the server confirms the operation; a failed call leaves
// everything untouched. Two concurrent mutations on the same list or user
// are otherwise not serialized, except for the per-story favorite guard.
type StoryService interface {
	// Load fetches the full story collection and returns it in server order.
	Load(ctx context.Context) (*models.StoryList, error)

	// Add submits a new story. On success the confirmed story is prepended
	// to list, appended to user.OwnStories, and returned.
	Add(ctx context.Context, user *models.User, list *models.StoryList, story api.NewStory) (models.Story, error)

	// Delete removes one of the user's own stories, locally and remotely,
	// and returns the server's confirmation message.
	Delete(ctx context.Context, user *models.User, list *models.StoryList, storyID string) (string, error)

	// ToggleFavorite favorites the story if it is not in user.Favorites,
	// and unfavorites it otherwise. Returns the server's confirmation
	// message. A second toggle for the same story while one is outstanding
	// fails with ErrToggleInFlight.
	ToggleFavorite(ctx context.Context, user *models.User, story models.Story) (string, error)
}

type storyService struct {
	client api.Client
	logger logging.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewStoryService constructs a StoryService bound to the given API client.
func NewStoryService(client api.Client, logger logging.Logger) StoryService {
	return &storyService{
		client:   client,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}
}

func (s *storyService) Load(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.client.Stories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stories: %w", err)
	}
	return models.NewStoryList(stories), nil
}

func (s *storyService) Add(ctx context.Context, user *models.User, list *models.StoryList, story api.NewStory) (models.Story, error) {
	if user == nil || user.LoginToken == "" {
		return models.Story{}, ErrNotLoggedIn
	}

	created, err := s.client.CreateStory(ctx, user.LoginToken, story)
	if err != nil {
		return models.Story{}, fmt.Errorf("create story: %w", err)
	}

	list.Prepend(created)
	user.AddOwnStory(created)
	s.logger.Info(ctx, "story created", "story_id", created.StoryID)
	return created, nil
}

func (s *storyService) Delete(ctx context.Context, user *models.User, list *models.StoryList, storyID string) (string, error) {
	if user == nil || user.LoginToken == "" {
		return "", ErrNotLoggedIn
	}
	if !user.Owns(storyID) {
		return "", ErrNotOwner
	}

	msg, err := s.client.DeleteStory(ctx, user.LoginToken, storyID)
	if err != nil {
		return "", fmt.Errorf("delete story: %w", err)
	}

	list.Remove(storyID)
	user.RemoveOwnStory(storyID)
	user.RemoveFavorite(storyID)
	s.logger.Info(ctx, "story deleted", "story_id", storyID)
	return msg, nil
}

// acquireToggle marks storyID as having a toggle in flight. It reports false
// when one is already outstanding.
func (s *storyService) acquireToggle(storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[storyID]; busy {
		return false
	}
	s.inflight[storyID] = struct{}{}
	return true
}

func (s *storyService) releaseToggle(storyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, storyID)
}

func (s *storyService) ToggleFavorite(ctx context.Context, user *models.User, story models.Story) (string, error) {
	if user == nil || user.LoginToken == "" {
		return "", ErrNotLoggedIn
	}

	if !s.acquireToggle(story.StoryID) {
		return "", ErrToggleInFlight
	}
	defer s.releaseToggle(story.StoryID)

	if user.IsFavorite(story.StoryID) {
		msg, err := s.client.RemoveFavorite(ctx, user.LoginToken, user.Username, story.StoryID)
		if err != nil {
			return "", fmt.Errorf("remove favorite: %w", err)
		}
		user.RemoveFavorite(story.StoryID)
		return msg, nil
	}

	msg, err := s.client.AddFavorite(ctx, user.LoginToken, user.Username, story.StoryID)
	if err != nil {
		return "", fmt.Errorf("add favorite: %w", err)
	}
	user.AddFavorite(story)
	return msg, nil
}
