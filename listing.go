package invis

import (
	"strings"

	"github.com/vimldn/invis/content"
	"github.com/vimldn/invis/models"
)

// Blog index settings
const (
	PostsPerPage  = 6
	ExcerptLength = 120
)

// ListingEntry is one card on the blog index
type ListingEntry struct {
	models.Article
	Excerpt string `json:"excerpt"`
}

// Listing is one page of the blog index
type Listing struct {
	Query      string         `json:"query"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
	Posts      []ListingEntry `json:"posts"`
}

// BuildListing filters published articles by title and returns the
// requested page. Pages start at 1; a page past the end is empty.
func BuildListing(published []models.Article, query string, page int) Listing {
	q := strings.TrimSpace(query)
	if page < 1 {
		page = 1
	}

	var matched []models.Article
	for _, a := range published {
		if content.ContainsFold(a.Title, q) {
			matched = append(matched, a)
		}
	}

	listing := Listing{
		Query:      q,
		Page:       page,
		Total:      len(matched),
		TotalPages: (len(matched) + PostsPerPage - 1) / PostsPerPage,
		Posts:      []ListingEntry{},
	}

	start := (page - 1) * PostsPerPage
	if start >= len(matched) {
		return listing
	}
	end := min(start+PostsPerPage, len(matched))

	for _, a := range matched[start:end] {
		listing.Posts = append(listing.Posts, ListingEntry{
			Article: a,
			Excerpt: content.Excerpt(a.ContentHTML, ExcerptLength),
		})
	}
	return listing
}
