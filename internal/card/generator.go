package card

import (
	"errors"
	"fmt"
	"math/rand"

	"lexicards/internal/domain"
	"lexicards/internal/repository"
)

// ErrInsufficientPool is returned when a category holds fewer than three
// other words to draw distractors from. A card is always four options, never
// fewer.
var ErrInsufficientPool = errors.New("not enough words in category")

const optionCount = 4

// Generator builds quiz cards from the word catalog: one target word plus
// three distractors of the same grammatical category, shuffled.
type Generator struct {
	words repository.WordRepository
	rng   *rand.Rand
}

// NewGenerator creates a card generator. The random source is injected so
// tests can supply fixed seeds.
func NewGenerator(words repository.WordRepository, rng *rand.Rand) *Generator {
	return &Generator{words: words, rng: rng}
}

// Random builds an on-demand card: a random category, a random target word
// in it, displayed in the given direction.
func (g *Generator) Random(direction domain.Direction) (*domain.Card, error) {
	categories, err := g.words.DistinctCategories()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("empty catalog: %w", ErrInsufficientPool)
	}

	categoryID := categories[g.rng.Intn(len(categories))]
	pool, err := g.words.WordsInCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("load category %d: %w", categoryID, err)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("category %d is empty: %w", categoryID, ErrInsufficientPool)
	}

	target := pool[g.rng.Intn(len(pool))]
	return g.assemble(target, pool, direction)
}

// ForWord builds a scheduled-review card for a specific word. The display
// direction is chosen uniformly at random per card.
func (g *Generator) ForWord(wordID int64) (*domain.Card, error) {
	target, err := g.words.GetWord(wordID)
	if err != nil {
		return nil, fmt.Errorf("load word %d: %w", wordID, err)
	}

	pool, err := g.words.WordsInCategory(target.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("load category %d: %w", target.CategoryID, err)
	}

	direction := domain.SourceToTarget
	if g.rng.Intn(2) == 1 {
		direction = domain.TargetToSource
	}

	return g.assemble(*target, pool, direction)
}

// assemble draws three distractors for the target from the pool and shuffles
// the four answer options. The expected answer is always present exactly
// once; distractor terms are pairwise distinct.
func (g *Generator) assemble(target domain.Word, pool []domain.Word, direction domain.Direction) (*domain.Card, error) {
	answer := target.Answer(direction)

	seen := map[string]struct{}{answer: {}}
	candidates := make([]domain.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID == target.ID {
			continue
		}
		term := w.Answer(direction)
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		candidates = append(candidates, w)
	}

	if len(candidates) < optionCount-1 {
		return nil, fmt.Errorf("category %d has %d alternatives: %w",
			target.CategoryID, len(candidates), ErrInsufficientPool)
	}

	options := make([]string, 0, optionCount)
	for _, i := range g.rng.Perm(len(candidates))[:optionCount-1] {
		options = append(options, candidates[i].Answer(direction))
	}
	options = append(options, answer)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.Card{
		WordID:    target.ID,
		Prompt:    target.Prompt(direction),
		Answer:    answer,
		Options:   options,
		Direction: direction,
	}, nil
}
