package service

import (
	"lexicards/internal/domain"
	"lexicards/internal/repository"
	"lexicards/internal/session"

	"go.uber.org/zap"
)

// UserService handles user registration and display-direction preferences.
// The session registry is kept in step with the users table on every change.
type UserService struct {
	users    repository.UserRepository
	registry *session.Registry
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepository, registry *session.Registry, logger *zap.Logger) *UserService {
	return &UserService{
		users:    users,
		registry: registry,
		logger:   logger,
	}
}

// EnsureUser registers a chat on first contact with the default direction
func (s *UserService) EnsureUser(chatID int64) error {
	if s.registry.Known(chatID) {
		return nil
	}

	if err := s.users.CreateUser(chatID, domain.DefaultDirection); err != nil {
		return err
	}
	s.registry.Register(chatID, domain.DefaultDirection)

	s.logger.Info("New user registered", zap.Int64("chat_id", chatID))
	return nil
}

// Direction returns the chat's stored card direction
func (s *UserService) Direction(chatID int64) domain.Direction {
	return s.registry.Direction(chatID)
}

// ToggleDirection flips the chat's card direction and persists the change
func (s *UserService) ToggleDirection(chatID int64) (domain.Direction, error) {
	next := s.registry.ToggleDirection(chatID)
	if err := s.users.SetDirection(chatID, next); err != nil {
		// Keep the registry and the store consistent.
		s.registry.ToggleDirection(chatID)
		return "", err
	}
	return next, nil
}
