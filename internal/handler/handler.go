package handler

import (
	"math/rand"

	"lexicards/internal/card"
	"lexicards/internal/service"
	"lexicards/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	users     *service.UserService
	study     *service.StudyService
	scheduler *service.ReviewScheduler
	cards     *card.Generator
	registry  *session.Registry
	rng       *rand.Rand
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	users *service.UserService,
	study *service.StudyService,
	scheduler *service.ReviewScheduler,
	cards *card.Generator,
	registry *session.Registry,
	rng *rand.Rand,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		users:     users,
		study:     study,
		scheduler: scheduler,
		cards:     cards,
		registry:  registry,
		rng:       rng,
		logger:    logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/cards", h.handleCards)

	// Reply keyboard buttons
	h.bot.Handle(&BtnReady, h.handleScheduled)
	h.bot.Handle(&btnNext, h.handleCards)
	h.bot.Handle(&btnAdd, h.handleAdd)
	h.bot.Handle(&btnRemove, h.handleRemove)
	h.bot.Handle(&btnUserWords, h.handleUserWords)
	h.bot.Handle(&btnToEnglish, h.handleToggle)
	h.bot.Handle(&btnToRussian, h.handleToggle)

	// Everything else is treated as a card answer
	h.bot.Handle(tele.OnText, h.handleAnswer)
}

// Reply keyboard buttons. BtnReady is exported: the review notifier attaches
// it to the daily reminder message.
var (
	BtnReady     = tele.Btn{Text: "Поехали! \U0001F680"}
	btnNext      = tele.Btn{Text: "Следующее \U000023E9"}
	btnAdd       = tele.Btn{Text: "Добавить \U00002795"}
	btnRemove    = tele.Btn{Text: "Удалить \U0001F5D1"}
	btnUserWords = tele.Btn{Text: "Ваши слова \U0001F9E0"}
	btnToEnglish = tele.Btn{Text: "\U0001F1F7\U0001F1FA Сменить \U0001F1EC\U0001F1E7"}
	btnToRussian = tele.Btn{Text: "\U0001F1EC\U0001F1E7 Сменить \U0001F1F7\U0001F1FA"}
)

// ReadyMarkup returns the keyboard attached to review reminders
func ReadyMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(BtnReady))
	return markup
}
