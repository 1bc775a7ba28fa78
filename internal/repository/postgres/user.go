package postgres

import (
	"database/sql"

	"lexicards/internal/domain"
	"lexicards/internal/repository"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindUserID resolves a chat id to the internal user id
func (r *UserRepo) FindUserID(chatID int64) (int64, error) {
	var id int64
	query := `SELECT id FROM users WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

// CreateUser registers a chat on first contact. Repeated calls are no-ops.
func (r *UserRepo) CreateUser(chatID int64, direction domain.Direction) error {
	query := `
		INSERT INTO users (chat_id, direction)
		VALUES ($1, $2)
		ON CONFLICT (chat_id) DO NOTHING
	`
	_, err := r.db.Exec(query, chatID, string(direction))
	return err
}

// SetDirection stores the user's preferred card direction
func (r *UserRepo) SetDirection(chatID int64, direction domain.Direction) error {
	query := `UPDATE users SET direction = $1 WHERE chat_id = $2`
	_, err := r.db.Exec(query, string(direction), chatID)
	return err
}

// AllUsers returns every registered chat with its stored direction.
// Used to seed the in-memory session registry at startup.
func (r *UserRepo) AllUsers() (map[int64]domain.Direction, error) {
	query := `SELECT chat_id, direction FROM users`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make(map[int64]domain.Direction)
	for rows.Next() {
		var chatID int64
		var direction string
		if err := rows.Scan(&chatID, &direction); err != nil {
			return nil, err
		}
		users[chatID] = domain.ParseDirection(direction)
	}

	return users, rows.Err()
}
