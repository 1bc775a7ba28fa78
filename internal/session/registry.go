package session

import (
	"sync"

	"lexicards/internal/domain"
)

// Session holds the card currently shown in a chat: the displayed term, the
// expected answer, the full option set and the rendered prompt. It is
// overwritten by the next card and never persisted; losing it on restart is
// acceptable.
type Session struct {
	TargetWord string
	Expected   string
	Options    []string
	Prompt     string
	Direction  domain.Direction
}

// Contains reports whether text is one of the card's answer options.
func (s *Session) Contains(text string) bool {
	for _, opt := range s.Options {
		if opt == text {
			return true
		}
	}
	return false
}

// IsCorrect reports whether text matches the expected answer.
func (s *Session) IsCorrect(text string) bool {
	return text == s.Expected
}

type chatState struct {
	direction domain.Direction
	session   *Session
}

// Registry is the in-memory directory of per-chat state: the stored card
// direction and the active card session. It is seeded from the user table at
// startup and updated on every registration and toggle.
type Registry struct {
	mu    sync.RWMutex
	chats map[int64]*chatState
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{chats: make(map[int64]*chatState)}
}

// Seed loads known chats and their directions, replacing prior entries
func (r *Registry) Seed(users map[int64]domain.Direction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for chatID, direction := range users {
		r.chats[chatID] = &chatState{direction: direction}
	}
}

// Known reports whether a chat has been registered
func (r *Registry) Known(chatID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.chats[chatID]
	return ok
}

// Register adds a chat with its direction preference
func (r *Registry) Register(chatID int64, direction domain.Direction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chats[chatID]; !ok {
		r.chats[chatID] = &chatState{direction: direction}
	}
}

// Direction returns the chat's stored direction, defaulting for unknown chats
func (r *Registry) Direction(chatID int64) domain.Direction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.chats[chatID]; ok {
		return st.direction
	}
	return domain.DefaultDirection
}

// ToggleDirection flips the chat's direction and returns the new value
func (r *Registry) ToggleDirection(chatID int64) domain.Direction {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.chats[chatID]
	if !ok {
		st = &chatState{direction: domain.DefaultDirection}
		r.chats[chatID] = st
	}
	st.direction = st.direction.Toggle()
	return st.direction
}

// Session returns the chat's active card session, if any
func (r *Registry) Session(chatID int64) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.chats[chatID]; ok && st.session != nil {
		return st.session, true
	}
	return nil, false
}

// SetSession stores the card shown to a chat, replacing any prior one
func (r *Registry) SetSession(chatID int64, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.chats[chatID]
	if !ok {
		st = &chatState{direction: domain.DefaultDirection}
		r.chats[chatID] = st
	}
	st.session = s
}
