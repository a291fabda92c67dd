package models

// StoryList holds the ordered collection of stories currently loaded for
// display. Insertion order is display order; new submissions go to the front.
//
// The list reflects the last successful fetch plus locally applied additions
// and removals; it is not kept in sync with changes made elsewhere.
type StoryList struct {
	Stories []Story
}

// NewStoryList wraps stories in a StoryList, preserving their order.
func NewStoryList(stories []Story) *StoryList {
	return &StoryList{Stories: stories}
}

// Len returns the number of stories in the list.
func (l *StoryList) Len() int {
	return len(l.Stories)
}

// Prepend inserts s at the front of the list.
func (l *StoryList) Prepend(s Story) {
	l.Stories = append([]Story{s}, l.Stories...)
}

// Find returns the story with the given id, if present.
func (l *StoryList) Find(storyID string) (Story, bool) {
	for _, s := range l.Stories {
		if s.StoryID == storyID {
			return s, true
		}
	}
	return Story{}, false
}

// Remove deletes the story with the given id, preserving the order of the
// remaining stories. It reports whether the story was present.
func (l *StoryList) Remove(storyID string) bool {
	for i, s := range l.Stories {
		if s.StoryID == storyID {
			l.Stories = append(l.Stories[:i], l.Stories[i+1:]...)
			return true
		}
	}
	return false
}
