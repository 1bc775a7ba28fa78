package service

import (
	"math/rand"
	"time"

	"lexicards/internal/cache"
	"lexicards/internal/repository"

	"go.uber.org/zap"
)

// ReviewScheduler decides which study-list words are due for review and
// moves their due dates forward after each exposure. Due dates only ever
// move forward.
type ReviewScheduler struct {
	study  repository.StudyRepository
	users  repository.UserRepository
	lookup *cache.Cache
	rng    *rand.Rand
	now    func() time.Time
	logger *zap.Logger
}

// NewReviewScheduler creates a new review scheduler
func NewReviewScheduler(
	study repository.StudyRepository,
	users repository.UserRepository,
	lookup *cache.Cache,
	rng *rand.Rand,
	logger *zap.Logger,
) *ReviewScheduler {
	return &ReviewScheduler{
		study:  study,
		users:  users,
		lookup: lookup,
		rng:    rng,
		now:    time.Now,
		logger: logger,
	}
}

// DuePlan returns, per chat, the word ids whose due date lies strictly
// before today.
func (s *ReviewScheduler) DuePlan() (map[int64][]int64, error) {
	return s.study.EntriesDueBefore(s.today())
}

// PickDue selects one word uniformly at random among a user's due words
func (s *ReviewScheduler) PickDue(wordIDs []int64) int64 {
	return wordIDs[s.rng.Intn(len(wordIDs))]
}

// Postpone moves a study entry's due date to today plus three days.
// Called at presentation time: merely being shown resets the clock, so a
// word is not re-notified every day while a reply is pending.
func (s *ReviewScheduler) Postpone(chatID, wordID int64) error {
	userID, err := cachedUserID(s.lookup, s.users, chatID)
	if err != nil {
		return err
	}

	due := s.today().AddDate(0, 0, reviewIntervalDays)
	if err := s.study.UpsertEntry(userID, wordID, due); err != nil {
		return err
	}

	s.logger.Info("Study entry postponed",
		zap.Int64("chat_id", chatID),
		zap.Int64("word_id", wordID),
		zap.Time("due", due),
	)
	return nil
}

// today truncates the current moment to the start of its day
func (s *ReviewScheduler) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
