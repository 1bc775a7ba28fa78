package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("User started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	greeting := "Доброго времени суток! \U0001F44B\n" +
		"Я - бот \U0001F916, обучающий английскому лексикону \U0001F468\U0000200D\U0001F393"
	if err := c.Send(greeting); err != nil {
		return err
	}

	faq := "Для получения информации \U0001F4AC\nвведите /help\n" +
		"Для начала обучения \U0001F4DA\nвведите /cards\n" +
		"или просто используйте кнопки \U0001F447"

	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text("/cards")),
		markup.Row(markup.Text("/help")),
	)
	return c.Send(faq, markup)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	help := "Обучение проходит в формате теста - я предлагаю \U0001F1EC\U0001F1E7 слово, " +
		"Ваша задача выбрать его перевод на \U0001F1F7\U0001F1FA (или наоборот, язык " +
		"отображения карточек Вы выбираете сами - \U0001F4CCСменить) из четырех вариантов.\n" +
		"Незнакомое слово можно добавить (\U0001F4CCДобавить) в персональный список. " +
		"При наличии слов в списке я буду присылать уведомления для их повторения: " +
		"одно случайное слово раз в день, не чаще одного раза в 4 дня для каждого слова. " +
		"Слово из списка можно удалить (\U0001F4CCУдалить), а весь список посмотреть " +
		"по кнопке \U0001F4CCВаши слова.\n" +
		"Давайте уже начнем! \U0001F609"

	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text("/cards")))
	return c.Send(help, markup)
}
