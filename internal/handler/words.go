package handler

import (
	"fmt"
	"strings"

	"lexicards/internal/domain"

	"github.com/samber/lo"
)

// formatWordList renders study list pairs as a monospace two-column block
func formatWordList(pairs []domain.WordPair) string {
	lines := lo.Map(pairs, func(p domain.WordPair, _ int) string {
		return fmt.Sprintf("%10s \U0001F501 %-10s", strings.ToUpper(p.Word), p.Translation)
	})
	return "`" + strings.Join(lines, "\n") + "`"
}
