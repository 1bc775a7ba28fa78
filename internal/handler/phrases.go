package handler

// Fixed pools of acknowledgment phrases, one drawn at random per answer.
var winPhrases = []string{
	"Да, Вы правы \U0001F44D",
	"Так держать \U0001F44F",
	"Точно! \U0001F4AA",
	"Прекрасно \U0001F973",
	"В точку \U0001F4AF",
	"Верно \U00002705",
}

var losePhrases = []string{
	"К сожалению нет \U0001F648",
	"Ответ неверный \U0000274C",
	"Не расстраивайтесь, попробуйте еще раз \U0001F9DE",
	"Почти угадали \U0001F40C",
	"Тут даже я бы ошибся \U0001F937",
	"Сосредоточьтесь \U0001F9A5",
}

func (h *Handler) winPhrase() string {
	return winPhrases[h.rng.Intn(len(winPhrases))]
}

func (h *Handler) losePhrase() string {
	return losePhrases[h.rng.Intn(len(losePhrases))]
}
