package domain

import "time"

// User represents a bot user. Users are created on first contact with the
// default card direction; the direction changes only by explicit toggle.
type User struct {
	ID        int64
	ChatID    int64
	Direction Direction
	CreatedAt time.Time
}

// Card is one quiz unit: a prompt term plus four candidate answers,
// exactly one of which is correct.
type Card struct {
	WordID    int64
	Prompt    string
	Answer    string
	Options   []string
	Direction Direction
}
