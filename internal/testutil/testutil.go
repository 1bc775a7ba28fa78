package testutil

import (
	"math/rand"
	"time"

	"lexicards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand creates a deterministic random source for tests
func NewTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTestWord creates a test word
func NewTestWord(id, categoryID int64, title, translation string) domain.Word {
	return domain.Word{
		ID:          id,
		CategoryID:  categoryID,
		Title:       title,
		Translation: translation,
	}
}

// AnimalWords returns a small single-category catalog for generator tests
func AnimalWords(categoryID int64) []domain.Word {
	return []domain.Word{
		NewTestWord(1, categoryID, "cat", "кот"),
		NewTestWord(2, categoryID, "dog", "собака"),
		NewTestWord(3, categoryID, "fox", "лиса"),
		NewTestWord(4, categoryID, "bear", "медведь"),
		NewTestWord(5, categoryID, "wolf", "волк"),
	}
}

// Midnight truncates a moment to the start of its day
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
