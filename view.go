package invis

import (
	"errors"
	"fmt"

	"github.com/vimldn/invis/content"
	"github.com/vimldn/invis/models"
	"github.com/vimldn/invis/selection"
)

// ErrArticleNotFound is returned when no article has the requested slug
var ErrArticleNotFound = errors.New("article not found")

// DefaultBanner returns the consultation banner copy
func DefaultBanner() models.Banner {
	return models.Banner{
		Eyebrow:  "Free Consultation",
		Headline: "Ready to Start Your Invisalign Journey?",
		Body:     "Get matched with a specialist provider near you. No obligation, no cost.",
		Action:   "Book Free Consultation",
	}
}

// ViewOptions holds the static inputs of an article view
type ViewOptions struct {
	Pool           selection.Pool
	Banner         models.Banner
	RelatedCount   int
	FurtherReading int
}

// DefaultViewOptions returns the site's article view settings
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		Pool:           selection.DefaultPool(),
		Banner:         DefaultBanner(),
		RelatedCount:   selection.DefaultRelatedCount,
		FurtherReading: selection.DefaultFurtherReadingCount,
	}
}

// ArticleView is everything the single-article page renders
type ArticleView struct {
	Article        models.Article       `json:"article"`
	Before         string               `json:"before_html"`
	After          string               `json:"after_html"`
	HasBanner      bool                 `json:"has_banner"`
	Banner         *models.Banner       `json:"banner,omitempty"`
	Related        []models.Article     `json:"related"`
	FurtherReading []models.ReadingLink `json:"further_reading"`
}

// BuildArticleView finds slug in the article-variant collection and derives
// its banner split, related articles and further reading. When the content
// has no split point Before holds all of it and no banner is set.
func BuildArticleView(all []models.Article, slug string, opts ViewOptions) (*ArticleView, error) {
	var found *models.Article
	for i := range all {
		if all[i].Slug == slug {
			found = &all[i]
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrArticleNotFound, slug)
	}

	before, after := content.SplitForBanner(found.CleanedHTML)
	view := &ArticleView{
		Article:        *found,
		Before:         before,
		After:          after,
		HasBanner:      after != "",
		Related:        selection.Related(all, *found, opts.RelatedCount),
		FurtherReading: opts.Pool.Pick(found.Slug, opts.FurtherReading),
	}
	if view.HasBanner {
		banner := opts.Banner
		view.Banner = &banner
	}
	return view, nil
}
