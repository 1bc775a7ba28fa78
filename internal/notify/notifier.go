package notify

import (
	"context"
	"fmt"
	"time"

	"lexicards/internal/handler"
	"lexicards/internal/service"

	"github.com/samber/lo"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender is the part of the bot the notifier needs.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Notifier sends a daily review reminder to every chat holding at least one
// due study entry. A failed tick is logged and skipped; there is no catch-up
// for ticks missed while the process was down.
type Notifier struct {
	bot       Sender
	scheduler *service.ReviewScheduler
	at        string // wall-clock trigger, "15:04" layout
	logger    *zap.Logger
}

// NewNotifier creates a notifier firing daily at the given wall-clock time
func NewNotifier(bot Sender, scheduler *service.ReviewScheduler, at string, logger *zap.Logger) (*Notifier, error) {
	if _, err := time.Parse("15:04", at); err != nil {
		return nil, fmt.Errorf("invalid notification time %q: %w", at, err)
	}
	return &Notifier{
		bot:       bot,
		scheduler: scheduler,
		at:        at,
		logger:    logger,
	}, nil
}

// Run blocks until the context is canceled, firing once per day
func (n *Notifier) Run(ctx context.Context) {
	for {
		next := nextFire(time.Now(), n.at)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			n.logger.Info("Review notifier stopped")
			return
		case <-timer.C:
			n.notify()
		}
	}
}

// notify sends one reminder per chat with due words
func (n *Notifier) notify() {
	plan, err := n.scheduler.DuePlan()
	if err != nil {
		n.logger.Error("Skipping reminder tick", zap.Error(err))
		return
	}
	if len(plan) == 0 {
		n.logger.Info("No due study entries today")
		return
	}

	message := "Пришло время повторить слово из Вашего списка \U0001F556"
	for _, chatID := range lo.Keys(plan) {
		if _, err := n.bot.Send(tele.ChatID(chatID), message, handler.ReadyMarkup()); err != nil {
			n.logger.Warn("Failed to send review reminder",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
	}

	n.logger.Info("Review reminders sent", zap.Int("chats", len(plan)))
}

// nextFire returns the next occurrence of the wall-clock time at, strictly
// after now.
func nextFire(now time.Time, at string) time.Time {
	t, _ := time.Parse("15:04", at)
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
