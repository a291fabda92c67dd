package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/models"
)

// Reload re-fetches the story collection from the API and renders it.
func (a *App) Reload(ctx context.Context) error {
	list, err := a.stories.Load(ctx)
	if err != nil {
		return a.fail(ctx, "stories failed to load", err)
	}
	a.list = list
	return a.List(ctx)
}

// List renders the loaded story list. Numeric arguments to fav/delete refer
// to the lines of the most recently rendered view.
func (a *App) List(ctx context.Context) error {
	if a.list == nil {
		return a.Reload(ctx)
	}
	a.view = a.list.Stories
	renderStories(a.out, a.view, a.user)
	return nil
}

// Favorites renders the current user's favorites.
func (a *App) Favorites(ctx context.Context) error {
	if a.user == nil {
		fmt.Fprintln(a.out, "Log in to see favorites.")
		return nil
	}
	a.view = a.user.Favorites
	if len(a.view) == 0 {
		fmt.Fprintln(a.out, "No favorites added!")
		return nil
	}
	renderStories(a.out, a.view, a.user)
	return nil
}

// Mine renders the stories submitted by the current user.
func (a *App) Mine(ctx context.Context) error {
	if a.user == nil {
		fmt.Fprintln(a.out, "Log in to see your stories.")
		return nil
	}
	a.view = a.user.OwnStories
	if len(a.view) == 0 {
		fmt.Fprintln(a.out, "No stories submitted yet!")
		return nil
	}
	renderStories(a.out, a.view, a.user)
	return nil
}

// Submit prompts for the fields of a new story and creates it. On success
// the list is re-rendered with the new story at the top.
func (a *App) Submit(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Author", a.out)
	if err != nil {
		return err
	}
	storyURL, err := getSimpleText(a.reader, "URL", a.out)
	if err != nil {
		return err
	}

	if a.list == nil {
		a.list = models.NewStoryList(nil)
	}
	ns := api.NewStory{Title: title, Author: author, URL: storyURL}
	if _, err := a.stories.Add(ctx, a.user, a.list, ns); err != nil {
		return a.fail(ctx, "submit failed", err)
	}

	return a.List(ctx)
}

// Favorite toggles favorite status for the story at the given position in
// the last rendered view and prints the server's confirmation.
func (a *App) Favorite(ctx context.Context, arg string) error {
	story, err := a.storyAt(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	msg, err := a.stories.ToggleFavorite(ctx, a.user, story)
	if err != nil {
		return a.fail(ctx, "favorite toggle failed", err)
	}

	fmt.Fprintln(a.out, msg)
	return a.List(ctx)
}

// Delete removes one of the current user's own stories by its position in
// the last rendered view.
func (a *App) Delete(ctx context.Context, arg string) error {
	story, err := a.storyAt(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if a.list == nil {
		a.list = models.NewStoryList(nil)
	}
	msg, err := a.stories.Delete(ctx, a.user, a.list, story.StoryID)
	if err != nil {
		return a.fail(ctx, "delete failed", err)
	}

	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	return a.List(ctx)
}

// storyAt resolves a 1-based position argument against the last rendered
// view.
func (a *App) storyAt(arg string) (models.Story, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.view) {
		return models.Story{}, fmt.Errorf("no story at position %q; run 'list' first", arg)
	}
	return a.view[n-1], nil
}
