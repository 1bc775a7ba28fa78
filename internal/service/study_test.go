package service

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"lexicards/internal/cache"
	"lexicards/internal/domain"
	"lexicards/internal/repository"
	"lexicards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	return cache.New(filepath.Join(t.TempDir(), "cache.json"), 1000, testutil.NewTestLogger())
}

func TestStudyService_Add(t *testing.T) {
	tests := []struct {
		name          string
		alreadyListed bool
		expectAdded   bool
	}{
		{
			name:          "new word is added with due date three days out",
			alreadyListed: false,
			expectAdded:   true,
		},
		{
			name:          "duplicate add is a no-op",
			alreadyListed: true,
			expectAdded:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			userRepo := new(testutil.MockUserRepository)
			studyRepo := new(testutil.MockStudyRepository)

			wordRepo.On("FindWordID", "cat", domain.SourceToTarget).Return(int64(10), nil)
			userRepo.On("FindUserID", int64(100)).Return(int64(1), nil)
			studyRepo.On("HasEntry", int64(1), int64(10)).Return(tt.alreadyListed, nil)

			now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
			if !tt.alreadyListed {
				studyRepo.On("UpsertEntry", int64(1), int64(10), mock.MatchedBy(func(due time.Time) bool {
					return due.Equal(now.AddDate(0, 0, 3))
				})).Return(nil)
			}

			svc := NewStudyService(wordRepo, userRepo, studyRepo, newTestCache(t), testutil.NewTestLogger())
			svc.now = func() time.Time { return now }

			added, err := svc.Add(100, "cat", domain.SourceToTarget)
			require.NoError(t, err)
			assert.Equal(t, tt.expectAdded, added)

			studyRepo.AssertExpectations(t)
		})
	}
}

func TestStudyService_Remove(t *testing.T) {
	tests := []struct {
		name          string
		listed        bool
		expectRemoved bool
	}{
		{
			name:          "listed word is removed",
			listed:        true,
			expectRemoved: true,
		},
		{
			name:          "missing word is a no-op",
			listed:        false,
			expectRemoved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			userRepo := new(testutil.MockUserRepository)
			studyRepo := new(testutil.MockStudyRepository)

			wordRepo.On("FindWordID", "кот", domain.TargetToSource).Return(int64(10), nil)
			userRepo.On("FindUserID", int64(100)).Return(int64(1), nil)
			studyRepo.On("HasEntry", int64(1), int64(10)).Return(tt.listed, nil)
			if tt.listed {
				studyRepo.On("DeleteEntry", int64(1), int64(10)).Return(nil)
			}

			svc := NewStudyService(wordRepo, userRepo, studyRepo, newTestCache(t), testutil.NewTestLogger())

			removed, err := svc.Remove(100, "кот", domain.TargetToSource)
			require.NoError(t, err)
			assert.Equal(t, tt.expectRemoved, removed)

			studyRepo.AssertExpectations(t)
		})
	}
}

func TestStudyService_LookupsAreMemoized(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	userRepo := new(testutil.MockUserRepository)
	studyRepo := new(testutil.MockStudyRepository)

	// Each lookup may hit the store only once across repeated calls.
	wordRepo.On("FindWordID", "cat", domain.SourceToTarget).Return(int64(10), nil).Once()
	userRepo.On("FindUserID", int64(100)).Return(int64(1), nil).Once()
	studyRepo.On("HasEntry", int64(1), int64(10)).Return(false, nil)

	svc := NewStudyService(wordRepo, userRepo, studyRepo, newTestCache(t), testutil.NewTestLogger())

	for i := 0; i < 3; i++ {
		_, err := svc.Contains(100, "cat", domain.SourceToTarget)
		require.NoError(t, err)
	}

	wordRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestStudyService_DirectionKeysDoNotCollide(t *testing.T) {
	// The same spelling can resolve to different words per direction.
	wordRepo := new(testutil.MockWordRepository)
	userRepo := new(testutil.MockUserRepository)
	studyRepo := new(testutil.MockStudyRepository)

	wordRepo.On("FindWordID", "лук", domain.TargetToSource).Return(int64(10), nil).Once()
	wordRepo.On("FindWordID", "лук", domain.SourceToTarget).Return(int64(20), nil).Once()
	userRepo.On("FindUserID", int64(100)).Return(int64(1), nil)
	studyRepo.On("HasEntry", int64(1), int64(10)).Return(false, nil)
	studyRepo.On("HasEntry", int64(1), int64(20)).Return(false, nil)

	svc := NewStudyService(wordRepo, userRepo, studyRepo, newTestCache(t), testutil.NewTestLogger())

	_, err := svc.Contains(100, "лук", domain.TargetToSource)
	require.NoError(t, err)
	_, err = svc.Contains(100, "лук", domain.SourceToTarget)
	require.NoError(t, err)

	wordRepo.AssertExpectations(t)
	studyRepo.AssertExpectations(t)
}

func TestStudyService_AddUnknownWord(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	userRepo := new(testutil.MockUserRepository)
	studyRepo := new(testutil.MockStudyRepository)

	wordRepo.On("FindWordID", "ghost", domain.SourceToTarget).Return(int64(0), repository.ErrNotFound)

	svc := NewStudyService(wordRepo, userRepo, studyRepo, newTestCache(t), testutil.NewTestLogger())

	_, err := svc.Add(100, "ghost", domain.SourceToTarget)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStudyService_List(t *testing.T) {
	pairs := []domain.WordPair{
		{Word: "cat", Translation: "кот"},
		{Word: "dog", Translation: "собака"},
	}

	tests := []struct {
		name      string
		mockPairs []domain.WordPair
		mockError error
		expectErr bool
	}{
		{
			name:      "words listed",
			mockPairs: pairs,
		},
		{
			name:      "empty list",
			mockPairs: []domain.WordPair{},
		},
		{
			name:      "database error",
			mockError: fmt.Errorf("db error"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			userRepo := new(testutil.MockUserRepository)
			studyRepo := new(testutil.MockStudyRepository)

			userRepo.On("FindUserID", int64(100)).Return(int64(1), nil)
			if tt.expectErr {
				studyRepo.On("WordsForUser", int64(1)).Return(nil, tt.mockError)
			} else {
				studyRepo.On("WordsForUser", int64(1)).Return(tt.mockPairs, nil)
			}

			svc := NewStudyService(wordRepo, userRepo, studyRepo, newTestCache(t), testutil.NewTestLogger())

			got, err := svc.List(100)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mockPairs, got)
		})
	}
}
