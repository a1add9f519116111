// Package selection derives the per-article link sets: related articles
// from the loaded collection and further reading from a static pool.
package selection

import "github.com/vimldn/invis/models"

// DefaultRelatedCount is how many related articles an article page shows
const DefaultRelatedCount = 3

// Related returns up to limit articles other than current: those in the
// same category first, then the rest, each group in collection order
func Related(all []models.Article, current models.Article, limit int) []models.Article {
	related := make([]models.Article, 0, limit)
	if limit <= 0 {
		return related
	}

	for _, a := range all {
		if len(related) == limit {
			return related
		}
		if a.Slug != current.Slug && a.Category == current.Category {
			related = append(related, a)
		}
	}

	for _, a := range all {
		if len(related) == limit {
			break
		}
		if a.Slug != current.Slug && a.Category != current.Category {
			related = append(related, a)
		}
	}

	return related
}
