package postgres

import (
	"database/sql"

	"lexicards/internal/domain"
	"lexicards/internal/repository"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// GetWord returns a catalog word by id
func (r *WordRepo) GetWord(wordID int64) (*domain.Word, error) {
	var w domain.Word
	query := `SELECT id, category_id, title, translation FROM words WHERE id = $1`
	err := r.db.QueryRow(query, wordID).Scan(&w.ID, &w.CategoryID, &w.Title, &w.Translation)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// FindWordID resolves a displayed term back to its word id.
// The term is matched against the column the given direction displays.
// Translations are not unique, so the lowest id wins to keep the
// resolution stable across calls.
func (r *WordRepo) FindWordID(term string, direction domain.Direction) (int64, error) {
	query := `SELECT id FROM words WHERE title = $1 ORDER BY id LIMIT 1`
	if direction == domain.TargetToSource {
		query = `SELECT id FROM words WHERE translation = $1 ORDER BY id LIMIT 1`
	}

	var id int64
	err := r.db.QueryRow(query, term).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

// WordsInCategory returns all words sharing a grammatical category
func (r *WordRepo) WordsInCategory(categoryID int64) ([]domain.Word, error) {
	query := `
		SELECT id, category_id, title, translation
		FROM words
		WHERE category_id = $1
	`

	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.CategoryID, &w.Title, &w.Translation); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// DistinctCategories returns the ids of all categories that have words
func (r *WordRepo) DistinctCategories() ([]int64, error) {
	query := `SELECT DISTINCT category_id FROM words ORDER BY category_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
