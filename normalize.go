package invis

import (
	"strings"

	"github.com/vimldn/invis/content"
	"github.com/vimldn/invis/models"
	"github.com/vimldn/invis/slug"
)

// Variant names the page context a collection is loaded for
type Variant int

const (
	// VariantListing feeds the blog index: last image as card image,
	// future-dated articles hidden
	VariantListing Variant = iota
	// VariantArticle feeds the single-article page: first image as hero,
	// cleaned HTML, every article visible for cross-linking
	VariantArticle
)

func (v Variant) String() string {
	switch v {
	case VariantListing:
		return "listing"
	case VariantArticle:
		return "article"
	default:
		return "unknown"
	}
}

// NormalizeOptions controls per-variant differences of Normalize
type NormalizeOptions struct {
	Schedule  Schedule
	Image     content.ImagePolicy
	CleanHTML bool // Populate Article.CleanedHTML
}

// OptionsFor returns the normalization settings of a page variant
func OptionsFor(variant Variant, schedule Schedule) NormalizeOptions {
	if variant == VariantArticle {
		return NormalizeOptions{Schedule: schedule, Image: content.FirstImage, CleanHTML: true}
	}
	return NormalizeOptions{Schedule: schedule, Image: content.LastImage}
}

// Normalize builds the article collection from parsed rows in one ordered
// pass. Rows without a title are dropped before they get an index, so
// indices are dense over the titled rows. Slugs are unique within the
// returned collection.
func Normalize(rows []models.RawRow, opts NormalizeOptions) []models.Article {
	image := opts.Image
	if image == nil {
		image = content.FirstImage
	}

	registry := slug.NewRegistry()
	articles := make([]models.Article, 0, len(rows))

	for _, row := range rows {
		title := row.Get(models.ColumnTitle)
		if strings.TrimSpace(title) == "" {
			continue
		}

		index := len(articles)
		html := row.Get(models.ColumnContent)

		article := models.Article{
			Title:           title,
			ContentHTML:     html,
			Category:        row.Get(models.ColumnCategory),
			Slug:            registry.MakeUnique(slug.Base(row.Get(models.ColumnSlug), title)),
			MetaTitle:       row.Get(models.ColumnMetaTitle),
			MetaDescription: row.Get(models.ColumnMetaDescription),
			SchemaMarkup:    row.Get(models.ColumnSchemaMarkup),
			Status:          row.Get(models.ColumnStatus),
			FurtherReading:  row.Get(models.ColumnFurtherReading),
			PublishDate:     opts.Schedule.DateFor(index),
			Index:           index,
			FeaturedImage:   image(content.ExtractImageURLs(html)),
		}
		if opts.CleanHTML {
			article.CleanedHTML = content.EnsureParagraphs(content.CleanArticleHTML(html))
		}

		articles = append(articles, article)
	}

	return articles
}
