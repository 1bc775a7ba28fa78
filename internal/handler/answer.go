package handler

import (
	"strings"

	"lexicards/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

type verdict int

const (
	verdictNoSession verdict = iota
	verdictOffOptions
	verdictCorrect
	verdictWrong
)

// classify maps an inbound answer to a state-machine transition. A missing
// session means the card context was lost (restart or never initialized).
func classify(sess *session.Session, text string) verdict {
	switch {
	case sess == nil:
		return verdictNoSession
	case !sess.Contains(text):
		return verdictOffOptions
	case sess.IsCorrect(text):
		return verdictCorrect
	default:
		return verdictWrong
	}
}

// handleAnswer validates free text against the active card.
// A correct answer advances to a new card; a wrong answer re-shows the same
// prompt; text outside the option set leaves the session untouched.
func (h *Handler) handleAnswer(c tele.Context) error {
	chatID := c.Chat().ID
	text := strings.TrimSpace(c.Text())

	sess, _ := h.registry.Session(chatID)

	switch classify(sess, text) {
	case verdictNoSession:
		h.logger.Warn("Answer without active card", zap.Int64("chat_id", chatID))
		if err := c.Send("Простите, уснул \U0001F4A4 , продолжаем..."); err != nil {
			return err
		}
		return h.handleCards(c)

	case verdictOffOptions:
		if err := c.Send("Выберите пожалуйста ответ из предложенных вариантов \U0001F9CF"); err != nil {
			return err
		}
		return c.Send(sess.Prompt)

	case verdictCorrect:
		if err := c.Send(h.winPhrase()); err != nil {
			return err
		}
		return h.handleCards(c)

	default:
		if err := c.Send(h.losePhrase()); err != nil {
			return err
		}
		// The learner retries the same card.
		return c.Send(sess.Prompt)
	}
}
