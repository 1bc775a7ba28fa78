package repository

import (
	"errors"
	"time"

	"lexicards/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// WordRepository defines read access to the word catalog
type WordRepository interface {
	GetWord(wordID int64) (*domain.Word, error)
	FindWordID(term string, direction domain.Direction) (int64, error)
	WordsInCategory(categoryID int64) ([]domain.Word, error)
	DistinctCategories() ([]int64, error)
}

// UserRepository defines user registry operations
type UserRepository interface {
	FindUserID(chatID int64) (int64, error)
	CreateUser(chatID int64, direction domain.Direction) error
	SetDirection(chatID int64, direction domain.Direction) error
	AllUsers() (map[int64]domain.Direction, error)
}

// StudyRepository defines per-user study list operations
type StudyRepository interface {
	UpsertEntry(userID, wordID int64, due time.Time) error
	DeleteEntry(userID, wordID int64) error
	HasEntry(userID, wordID int64) (bool, error)
	// EntriesDueBefore returns, per chat, the word ids whose due date is
	// strictly before the given day.
	EntriesDueBefore(day time.Time) (map[int64][]int64, error)
	WordsForUser(userID int64) ([]domain.WordPair, error)
}
