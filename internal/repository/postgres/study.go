package postgres

import (
	"database/sql"
	"time"

	"lexicards/internal/domain"
)

// StudyRepo implements repository.StudyRepository
type StudyRepo struct {
	db *sql.DB
}

// NewStudyRepo creates a new study list repository
func NewStudyRepo(db *sql.DB) *StudyRepo {
	return &StudyRepo{db: db}
}

// UpsertEntry adds a word to a user's study list or moves its due date.
// The (user_id, word_id) pair is unique, so an existing entry is updated.
func (r *StudyRepo) UpsertEntry(userID, wordID int64, due time.Time) error {
	query := `
		INSERT INTO study (user_id, word_id, due_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, word_id)
		DO UPDATE SET due_date = EXCLUDED.due_date
	`
	_, err := r.db.Exec(query, userID, wordID, due)
	return err
}

// DeleteEntry removes a word from a user's study list
func (r *StudyRepo) DeleteEntry(userID, wordID int64) error {
	query := `DELETE FROM study WHERE user_id = $1 AND word_id = $2`
	_, err := r.db.Exec(query, userID, wordID)
	return err
}

// HasEntry checks whether a word is already on a user's study list
func (r *StudyRepo) HasEntry(userID, wordID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM study WHERE user_id = $1 AND word_id = $2)`
	err := r.db.QueryRow(query, userID, wordID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// EntriesDueBefore returns, grouped by chat id, the word ids whose due date
// is strictly before the given day
func (r *StudyRepo) EntriesDueBefore(day time.Time) (map[int64][]int64, error) {
	query := `
		SELECT u.chat_id, s.word_id
		FROM study s
		JOIN users u ON u.id = s.user_id
		WHERE s.due_date < $1
	`

	rows, err := r.db.Query(query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plan := make(map[int64][]int64)
	for rows.Next() {
		var chatID, wordID int64
		if err := rows.Scan(&chatID, &wordID); err != nil {
			return nil, err
		}
		plan[chatID] = append(plan[chatID], wordID)
	}

	return plan, rows.Err()
}

// WordsForUser returns the term-translation pairs on a user's study list
func (r *StudyRepo) WordsForUser(userID int64) ([]domain.WordPair, error) {
	query := `
		SELECT w.title, w.translation
		FROM study s
		JOIN words w ON w.id = s.word_id
		WHERE s.user_id = $1
		ORDER BY w.title
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []domain.WordPair
	for rows.Next() {
		var p domain.WordPair
		if err := rows.Scan(&p.Word, &p.Translation); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return pairs, rows.Err()
}
