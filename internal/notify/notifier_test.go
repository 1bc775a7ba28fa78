package notify

import (
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"lexicards/internal/cache"
	"lexicards/internal/service"
	"lexicards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// fakeSender records reminder recipients and can fail for chosen chats.
type fakeSender struct {
	sent    []int64
	failFor map[int64]error
}

func (f *fakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	chat, err := strconv.ParseInt(to.Recipient(), 10, 64)
	if err != nil {
		return nil, err
	}
	f.sent = append(f.sent, chat)
	if sendErr := f.failFor[chat]; sendErr != nil {
		return nil, sendErr
	}
	return &tele.Message{}, nil
}

func newTestNotifier(t *testing.T, bot Sender, studyRepo *testutil.MockStudyRepository) *Notifier {
	t.Helper()
	logger := testutil.NewTestLogger()
	lookup := cache.New(filepath.Join(t.TempDir(), "cache.json"), 100, logger)
	scheduler := service.NewReviewScheduler(
		studyRepo, new(testutil.MockUserRepository), lookup, testutil.NewTestRand(1), logger)

	n, err := NewNotifier(bot, scheduler, "19:00", logger)
	require.NoError(t, err)
	return n
}

func TestNotify_RemindsEveryChatWithDueWords(t *testing.T) {
	studyRepo := new(testutil.MockStudyRepository)
	studyRepo.On("EntriesDueBefore", mock.Anything).Return(map[int64][]int64{
		100: {1, 2},
		200: {3},
	}, nil)

	bot := &fakeSender{}
	n := newTestNotifier(t, bot, studyRepo)

	n.notify()

	assert.ElementsMatch(t, []int64{100, 200}, bot.sent)
	studyRepo.AssertExpectations(t)
}

func TestNotify_SkipsTickOnPlanError(t *testing.T) {
	studyRepo := new(testutil.MockStudyRepository)
	studyRepo.On("EntriesDueBefore", mock.Anything).
		Return(map[int64][]int64(nil), fmt.Errorf("db down"))

	bot := &fakeSender{}
	n := newTestNotifier(t, bot, studyRepo)

	n.notify()

	assert.Empty(t, bot.sent)
}

func TestNotify_ContinuesPastSendFailure(t *testing.T) {
	studyRepo := new(testutil.MockStudyRepository)
	studyRepo.On("EntriesDueBefore", mock.Anything).Return(map[int64][]int64{
		100: {1},
		200: {2},
		300: {3},
	}, nil)

	bot := &fakeSender{failFor: map[int64]error{200: fmt.Errorf("blocked by user")}}
	n := newTestNotifier(t, bot, studyRepo)

	n.notify()

	// The failed chat does not stop the remaining reminders.
	assert.ElementsMatch(t, []int64{100, 200, 300}, bot.sent)
}

func TestNextFire(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		at       string
		expected time.Time
	}{
		{
			name:     "later today",
			now:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			at:       "19:00",
			expected: time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
		},
		{
			name:     "already passed, tomorrow",
			now:      time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC),
			at:       "19:00",
			expected: time.Date(2024, 5, 2, 19, 0, 0, 0, time.UTC),
		},
		{
			name:     "exactly at trigger time goes to tomorrow",
			now:      time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
			at:       "19:00",
			expected: time.Date(2024, 5, 2, 19, 0, 0, 0, time.UTC),
		},
		{
			name:     "midnight trigger",
			now:      time.Date(2024, 5, 1, 0, 0, 1, 0, time.UTC),
			at:       "00:00",
			expected: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextFire(tt.now, tt.at))
		})
	}
}

func TestNewNotifier_ValidatesTriggerTime(t *testing.T) {
	logger := testutil.NewTestLogger()

	_, err := NewNotifier(nil, nil, "19:00", logger)
	assert.NoError(t, err)

	_, err = NewNotifier(nil, nil, "25:99", logger)
	assert.Error(t, err)

	_, err = NewNotifier(nil, nil, "evening", logger)
	assert.Error(t, err)
}
