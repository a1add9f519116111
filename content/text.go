package content

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
)

var anyTagPattern = regexp.MustCompile(`<[^>]*>`)

// PlainText returns the text of an HTML fragment with all markup removed
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return anyTagPattern.ReplaceAllString(html, "")
	}
	return doc.Text()
}

// Excerpt returns the first limit characters of the fragment's text,
// followed by "..." when the text was cut
func Excerpt(html string, limit int) string {
	text := []rune(PlainText(html))
	if limit < 0 || len(text) <= limit {
		return string(text)
	}
	return string(text[:limit]) + "..."
}

// ContainsFold reports whether needle occurs in s, ignoring case.
// An empty needle matches everything.
func ContainsFold(s, needle string) bool {
	if needle == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(needle))
}
