package middleware

import (
	"lexicards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RegisterUser makes sure the sender has a user row and a session registry
// entry before any handler runs. Users are created on first contact.
func RegisterUser(users *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Chat() == nil {
				return next(c)
			}

			if err := users.EnsureUser(c.Chat().ID); err != nil {
				logger.Error("Failed to register user in middleware",
					zap.Int64("chat_id", c.Chat().ID),
					zap.Error(err),
				)
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			return next(c)
		}
	}
}
