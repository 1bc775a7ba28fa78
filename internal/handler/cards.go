package handler

import (
	"errors"
	"fmt"
	"strings"

	"lexicards/internal/card"
	"lexicards/internal/domain"
	"lexicards/internal/repository"
	"lexicards/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const fallbackMessage = "Произошла ошибка. Попробуйте позже."

// handleCards handles /cards and the "next card" button: a fresh on-demand
// card in the user's stored direction.
func (h *Handler) handleCards(c tele.Context) error {
	chatID := c.Chat().ID
	direction := h.users.Direction(chatID)

	crd, err := h.cards.Random(direction)
	if err != nil {
		h.logger.Error("Failed to generate card",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		if errors.Is(err, card.ErrInsufficientPool) {
			return c.Send("Словарь пока слишком мал для карточек \U0001F573")
		}
		return c.Send(fallbackMessage)
	}

	return h.showCard(c, crd, false)
}

// handleScheduled handles the "Поехали! 🚀" button of a review reminder:
// one due word is drawn for this chat and its due date is moved out at
// presentation time.
func (h *Handler) handleScheduled(c tele.Context) error {
	chatID := c.Chat().ID

	plan, err := h.scheduler.DuePlan()
	if err != nil {
		h.logger.Error("Failed to load due plan", zap.Error(err))
		return c.Send(fallbackMessage)
	}

	due := plan[chatID]
	if len(due) == 0 {
		// Nothing left to review, fall back to a regular card.
		if err := c.Send("На сегодня всё повторено \U00002705"); err != nil {
			return err
		}
		return h.handleCards(c)
	}

	wordID := h.scheduler.PickDue(due)
	crd, err := h.cards.ForWord(wordID)
	if err != nil {
		h.logger.Error("Failed to generate scheduled card",
			zap.Int64("chat_id", chatID),
			zap.Int64("word_id", wordID),
			zap.Error(err),
		)
		return c.Send(fallbackMessage)
	}

	if err := h.showCard(c, crd, true); err != nil {
		return err
	}

	// Postponing at presentation time keeps the word off tomorrow's
	// reminder even if the user never answers.
	if err := h.scheduler.Postpone(chatID, wordID); err != nil {
		h.logger.Error("Failed to postpone study entry",
			zap.Int64("chat_id", chatID),
			zap.Int64("word_id", wordID),
			zap.Error(err),
		)
	}
	return nil
}

// showCard records the card in the session registry and sends the prompt
// with the answer-option keyboard.
func (h *Handler) showCard(c tele.Context, crd *domain.Card, scheduled bool) error {
	chatID := c.Chat().ID
	prompt := renderPrompt(crd)

	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := optionRows(markup, crd.Options)
	rows = append(rows, markup.Row(btnNext))

	if scheduled {
		// A scheduled word is on the list by definition.
		rows = append(rows, markup.Row(btnRemove))
	} else {
		listed, err := h.study.Contains(chatID, crd.Prompt, crd.Direction)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			h.logger.Error("Failed to check study list",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
		if listed {
			rows = append(rows, markup.Row(btnRemove))
		} else {
			rows = append(rows, markup.Row(btnAdd))
		}
		if crd.Direction == domain.SourceToTarget {
			rows = append(rows, markup.Row(btnUserWords, btnToRussian))
		} else {
			rows = append(rows, markup.Row(btnUserWords, btnToEnglish))
		}
	}
	markup.Reply(rows...)

	h.registry.SetSession(chatID, &session.Session{
		TargetWord: crd.Prompt,
		Expected:   crd.Answer,
		Options:    crd.Options,
		Prompt:     prompt,
		Direction:  crd.Direction,
	})

	return c.Send(prompt, markup)
}

// handleAdd puts the current card's word on the study list
func (h *Handler) handleAdd(c tele.Context) error {
	chatID := c.Chat().ID

	sess, ok := h.registry.Session(chatID)
	if !ok {
		if err := c.Send("Простите, сплю на ходу \U0001F634"); err != nil {
			return err
		}
		return h.handleCards(c)
	}

	added, err := h.study.Add(chatID, sess.TargetWord, sess.Direction)
	if err != nil {
		return h.recoverLostContext(c, err)
	}
	if !added {
		// Already on the list, nothing to do.
		return h.handleCards(c)
	}

	if err := c.Send("Запомните, а то забудете! \U0001F9D0"); err != nil {
		return err
	}
	pair := fmt.Sprintf("%s \U00002194 %s", strings.ToUpper(sess.TargetWord), sess.Expected)
	if err := c.Send(pair); err != nil {
		return err
	}
	if err := c.Send("Слово добавлено в персональный список, " +
		"я пришлю уведомление когда придет \U000023F0 его повторить"); err != nil {
		return err
	}
	return h.handleCards(c)
}

// handleRemove takes the current card's word off the study list
func (h *Handler) handleRemove(c tele.Context) error {
	chatID := c.Chat().ID

	sess, ok := h.registry.Session(chatID)
	if !ok {
		if err := c.Send("Извиняюсь, отвлекся \U0001F648"); err != nil {
			return err
		}
		return h.handleCards(c)
	}

	removed, err := h.study.Remove(chatID, sess.TargetWord, sess.Direction)
	if err != nil {
		return h.recoverLostContext(c, err)
	}
	if removed {
		notice := fmt.Sprintf("Слово %s удалено из Вашего персонального списка! \U0001F4A9",
			strings.ToUpper(sess.TargetWord))
		if err := c.Send(notice); err != nil {
			return err
		}
	}
	return h.handleCards(c)
}

// handleToggle flips the card direction and deals a card in the new one
func (h *Handler) handleToggle(c tele.Context) error {
	chatID := c.Chat().ID

	if _, err := h.users.ToggleDirection(chatID); err != nil {
		h.logger.Error("Failed to toggle direction",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return c.Send(fallbackMessage)
	}
	return h.handleCards(c)
}

// handleUserWords lists the user's study list
func (h *Handler) handleUserWords(c tele.Context) error {
	chatID := c.Chat().ID

	pairs, err := h.study.List(chatID)
	if err != nil {
		h.logger.Error("Failed to list study words",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return c.Send(fallbackMessage)
	}

	if len(pairs) == 0 {
		return c.Send("В настоящий момент Ваш персональный список пуст \U0001F573")
	}

	if err := c.Send("Изучаемые Вами слова: \U0001F4D6"); err != nil {
		return err
	}
	return c.Send(formatWordList(pairs), tele.ModeMarkdown)
}

// recoverLostContext turns a lost word/user mapping into a friendly notice
// plus a fresh card instead of a dead chat.
func (h *Handler) recoverLostContext(c tele.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		h.logger.Warn("Lost card context, reissuing",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		if sendErr := c.Send("Извиняюсь, отвлекся \U0001F648"); sendErr != nil {
			return sendErr
		}
		return h.handleCards(c)
	}

	h.logger.Error("Study list operation failed",
		zap.Int64("chat_id", c.Chat().ID),
		zap.Error(err),
	)
	return c.Send(fallbackMessage)
}

// renderPrompt prefixes the displayed term with its language flag
func renderPrompt(crd *domain.Card) string {
	if crd.Direction == domain.SourceToTarget {
		return "\U0001F1EC\U0001F1E7 " + strings.ToUpper(crd.Prompt)
	}
	return "\U0001F1F7\U0001F1FA " + strings.ToUpper(crd.Prompt)
}

// optionRows lays the four answer options out two per row
func optionRows(markup *tele.ReplyMarkup, options []string) []tele.Row {
	var rows []tele.Row
	for i := 0; i < len(options); i += 2 {
		if i+1 < len(options) {
			rows = append(rows, markup.Row(markup.Text(options[i]), markup.Text(options[i+1])))
		} else {
			rows = append(rows, markup.Row(markup.Text(options[i])))
		}
	}
	return rows
}
