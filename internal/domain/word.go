package domain

import "time"

// Word is one catalog entry. The catalog is filled by migrations and is
// read-only at runtime, so values are shared freely across sessions.
type Word struct {
	ID          int64
	CategoryID  int64
	Title       string
	Translation string
}

// Prompt returns the word's term in the display direction.
func (w Word) Prompt(d Direction) string {
	if d == SourceToTarget {
		return w.Title
	}
	return w.Translation
}

// Answer returns the word's term in the direction opposite to the prompt.
func (w Word) Answer(d Direction) string {
	if d == SourceToTarget {
		return w.Translation
	}
	return w.Title
}

// WordPair is a simplified version for display
type WordPair struct {
	Word        string
	Translation string
}

// StudyEntry ties a word to a user's personal study list.
// At most one entry exists per (user, word) pair.
type StudyEntry struct {
	ID      int64
	WordID  int64
	UserID  int64
	DueDate time.Time
}
