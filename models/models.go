package models

import "time"

// CSV column names of the articles resource
const (
	ColumnTitle           = "Article Title"
	ColumnContent         = "Article Content"
	ColumnCategory        = "wp_category"
	ColumnSlug            = "Slug"
	ColumnMetaTitle       = "Meta Title"
	ColumnMetaDescription = "Meta Description"
	ColumnSchemaMarkup    = "Schema Markup"
	ColumnStatus          = "Status"
	ColumnFurtherReading  = "Further Reading" // optional
)

// RawRow is one CSV record keyed by header name
type RawRow map[string]string

// Get returns the value of a column, or "" if the row lacks it
func (r RawRow) Get(column string) string {
	if r == nil {
		return ""
	}
	return r[column]
}

// Article is the normalized form of a titled CSV row
type Article struct {
	Title           string    `json:"title"`
	ContentHTML     string    `json:"content_html"`
	Category        string    `json:"category"`
	Slug            string    `json:"slug"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	SchemaMarkup    string    `json:"schema_markup,omitempty"`
	Status          string    `json:"status,omitempty"`
	FurtherReading  string    `json:"further_reading,omitempty"`
	PublishDate     time.Time `json:"publish_date"`
	Index           int       `json:"index"`                    // Position in the filtered row sequence
	FeaturedImage   string    `json:"featured_image,omitempty"` // Empty when the content has no images
	CleanedHTML     string    `json:"cleaned_html,omitempty"`   // Only populated for the single-article view
}

// ReadingLink is an external link offered as further reading
type ReadingLink struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Banner is the promotional copy spliced into long-form articles
type Banner struct {
	Eyebrow  string `json:"eyebrow"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
	Action   string `json:"action"`
}

// Region groups the cities served in one part of the country
type Region struct {
	Name   string   `json:"name" yaml:"name"`
	Cities []string `json:"cities" yaml:"cities"`
}

// Service describes one treatment landing page
type Service struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Color       string `json:"color" yaml:"color"`
}

// FAQ is a single question/answer pair
type FAQ struct {
	Question string `json:"q" yaml:"q"`
	Answer   string `json:"a" yaml:"a"`
}

// Lead is the payload accepted by the lead intake endpoint.
// Field names follow the spreadsheet script's expectations.
type Lead struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location"`
	Treatment string `json:"treatment,omitempty"`
	Page      string `json:"page"`
	Source    string `json:"source"`
}
