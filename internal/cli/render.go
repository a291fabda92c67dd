package cli

import (
	"fmt"
	"io"

	"github.com/hackorsnooze/snooze/internal/models"
)

const (
	markFavorite    = "★"
	markNotFavorite = "☆"
)

// renderStories writes one numbered line per story, mirroring what the web
// UI renders: favorite marker, title, hostname, author, submitter, and a
// "(yours)" tag on stories the user may delete.
//
// Markers are re-derived by story id on every render; stories and the
// user's favorites are independent copies, so object identity means nothing.
func renderStories(w io.Writer, stories []models.Story, user *models.User) {
	if len(stories) == 0 {
		fmt.Fprintln(w, "No stories to show.")
		return
	}

	for i, s := range stories {
		host, err := s.Hostname()
		if err != nil {
			host = "invalid url"
		}

		marker := ""
		if user != nil {
			if user.IsFavorite(s.StoryID) {
				marker = markFavorite + " "
			} else {
				marker = markNotFavorite + " "
			}
		}

		yours := ""
		if user != nil && user.Owns(s.StoryID) {
			yours = " (yours)"
		}

		fmt.Fprintf(w, "%2d. %s%s (%s) by %s [posted by %s]%s\n",
			i+1, marker, s.Title, host, s.Author, s.Username, yours)
	}
}
