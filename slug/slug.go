package slug

import (
	"regexp"
	"strconv"
	"strings"
)

// Fallback is used whenever a title or base produces an empty slug
const Fallback = "post"

var (
	quoteChars  = regexp.MustCompile(`['"]`)
	nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Slugify creates a URL-friendly slug from an article title
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))

	// Apostrophes vanish instead of splitting words ("don't" -> "dont")
	s = quoteChars.ReplaceAllString(s, "")

	// Collapse everything else to single hyphens
	s = nonAlnumRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return Fallback
	}
	return s
}

// Base returns the slug base for a row: the authored slug if present,
// otherwise the slugified title
func Base(authored, title string) string {
	if s := strings.TrimSpace(authored); s != "" {
		return s
	}
	return Slugify(title)
}

// Registry tracks slugs already handed out during one normalization pass
type Registry struct {
	used map[string]struct{}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{used: make(map[string]struct{})}
}

// MakeUnique registers and returns base, or base-2, base-3, ... if taken.
// The result depends on call order.
func (r *Registry) MakeUnique(base string) string {
	if base == "" {
		base = Fallback
	}
	if r.used == nil {
		r.used = make(map[string]struct{})
	}

	candidate := base
	for n := 2; r.Has(candidate); n++ {
		candidate = base + "-" + strconv.Itoa(n)
	}

	r.used[candidate] = struct{}{}
	return candidate
}

// Has reports whether a slug was already handed out
func (r *Registry) Has(s string) bool {
	_, ok := r.used[s]
	return ok
}

// Len returns the number of registered slugs
func (r *Registry) Len() int {
	return len(r.used)
}

// ForName builds the routing slug for a static name such as a city:
// lower-cased with whitespace runs replaced by single hyphens.
// Punctuation is kept ("King's Lynn" -> "king's-lynn").
func ForName(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}
