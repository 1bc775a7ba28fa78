package service

import (
	"strconv"
	"time"

	"lexicards/internal/cache"
	"lexicards/internal/domain"
	"lexicards/internal/repository"

	"go.uber.org/zap"
)

// reviewIntervalDays is the number of days a study-list word is pushed out
// after being added or presented.
const reviewIntervalDays = 3

// StudyService manages each user's personal study list. Word and user id
// resolutions go through the lookup cache: both are immutable identity
// mappings and sit on the hot path of every add, remove and list request.
type StudyService struct {
	words  repository.WordRepository
	users  repository.UserRepository
	study  repository.StudyRepository
	lookup *cache.Cache
	now    func() time.Time
	logger *zap.Logger
}

// NewStudyService creates a new study list service
func NewStudyService(
	words repository.WordRepository,
	users repository.UserRepository,
	study repository.StudyRepository,
	lookup *cache.Cache,
	logger *zap.Logger,
) *StudyService {
	return &StudyService{
		words:  words,
		users:  users,
		study:  study,
		lookup: lookup,
		now:    time.Now,
		logger: logger,
	}
}

// Add puts a displayed word on the user's study list with an initial due
// date three days out. Adding a word already on the list is a no-op;
// the returned flag reports whether anything changed.
func (s *StudyService) Add(chatID int64, term string, direction domain.Direction) (bool, error) {
	wordID, userID, err := s.resolve(chatID, term, direction)
	if err != nil {
		return false, err
	}

	exists, err := s.study.HasEntry(userID, wordID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	due := s.now().AddDate(0, 0, reviewIntervalDays)
	if err := s.study.UpsertEntry(userID, wordID, due); err != nil {
		return false, err
	}

	s.logger.Info("Word added to study list",
		zap.Int64("chat_id", chatID),
		zap.String("term", term),
		zap.Time("due", due),
	)
	return true, nil
}

// Remove takes a displayed word off the user's study list. Removing a word
// that is not on the list is a no-op.
func (s *StudyService) Remove(chatID int64, term string, direction domain.Direction) (bool, error) {
	wordID, userID, err := s.resolve(chatID, term, direction)
	if err != nil {
		return false, err
	}

	exists, err := s.study.HasEntry(userID, wordID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.study.DeleteEntry(userID, wordID); err != nil {
		return false, err
	}

	s.logger.Info("Word removed from study list",
		zap.Int64("chat_id", chatID),
		zap.String("term", term),
	)
	return true, nil
}

// Contains checks whether a displayed word is on the user's study list
func (s *StudyService) Contains(chatID int64, term string, direction domain.Direction) (bool, error) {
	wordID, userID, err := s.resolve(chatID, term, direction)
	if err != nil {
		return false, err
	}
	return s.study.HasEntry(userID, wordID)
}

// List returns the term-translation pairs on the user's study list
func (s *StudyService) List(chatID int64) ([]domain.WordPair, error) {
	userID, err := cachedUserID(s.lookup, s.users, chatID)
	if err != nil {
		return nil, err
	}
	return s.study.WordsForUser(userID)
}

func (s *StudyService) resolve(chatID int64, term string, direction domain.Direction) (wordID, userID int64, err error) {
	wordID, err = cachedWordID(s.lookup, s.words, term, direction)
	if err != nil {
		return 0, 0, err
	}
	userID, err = cachedUserID(s.lookup, s.users, chatID)
	if err != nil {
		return 0, 0, err
	}
	return wordID, userID, nil
}

// cachedWordID resolves a displayed term to its word id through the lookup
// cache. The key carries the direction so the same spelling in both
// languages cannot collide.
func cachedWordID(c *cache.Cache, words repository.WordRepository, term string, direction domain.Direction) (int64, error) {
	return c.GetOrCompute(string(direction)+":"+term, func() (int64, error) {
		return words.FindWordID(term, direction)
	})
}

// cachedUserID resolves a chat id to the internal user id through the
// lookup cache.
func cachedUserID(c *cache.Cache, users repository.UserRepository, chatID int64) (int64, error) {
	return c.GetOrCompute("chat:"+strconv.FormatInt(chatID, 10), func() (int64, error) {
		return users.FindUserID(chatID)
	})
}
