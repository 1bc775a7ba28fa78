package testutil

import (
	"time"

	"lexicards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) GetWord(wordID int64) (*domain.Word, error) {
	args := m.Called(wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindWordID(term string, direction domain.Direction) (int64, error) {
	args := m.Called(term, direction)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) WordsInCategory(categoryID int64) ([]domain.Word, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) DistinctCategories() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserID(chatID int64) (int64, error) {
	args := m.Called(chatID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CreateUser(chatID int64, direction domain.Direction) error {
	args := m.Called(chatID, direction)
	return args.Error(0)
}

func (m *MockUserRepository) SetDirection(chatID int64, direction domain.Direction) error {
	args := m.Called(chatID, direction)
	return args.Error(0)
}

func (m *MockUserRepository) AllUsers() (map[int64]domain.Direction, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Direction), args.Error(1)
}

// MockStudyRepository is a mock for StudyRepository
type MockStudyRepository struct {
	mock.Mock
}

func (m *MockStudyRepository) UpsertEntry(userID, wordID int64, due time.Time) error {
	args := m.Called(userID, wordID, due)
	return args.Error(0)
}

func (m *MockStudyRepository) DeleteEntry(userID, wordID int64) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockStudyRepository) HasEntry(userID, wordID int64) (bool, error) {
	args := m.Called(userID, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudyRepository) EntriesDueBefore(day time.Time) (map[int64][]int64, error) {
	args := m.Called(day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]int64), args.Error(1)
}

func (m *MockStudyRepository) WordsForUser(userID int64) ([]domain.WordPair, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}
