// Package content holds the pattern-based HTML transforms applied to
// article bodies. Nothing here builds a DOM: inputs are CSV cells that may be
// fragments or malformed markup, and every function returns best-effort
// output instead of an error.
package content

import "regexp"

var (
	imgSrcPattern = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["'][^>]*>`)

	// The query string is matched but left out of the captured URL
	bareImagePattern = regexp.MustCompile(`(?i)(https?://[^\s"']+\.(?:png|jpe?g|webp|gif))(?:\?[^\s"']*)?`)
)

// ExtractImageURLs returns img src values followed by bare image URLs found
// in the text, deduplicated in first-occurrence order
func ExtractImageURLs(html string) []string {
	var found []string
	for _, m := range imgSrcPattern.FindAllStringSubmatch(html, -1) {
		found = append(found, m[1])
	}
	for _, m := range bareImagePattern.FindAllStringSubmatch(html, -1) {
		found = append(found, m[1])
	}

	seen := make(map[string]struct{}, len(found))
	urls := make([]string, 0, len(found))
	for _, u := range found {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	return urls
}

// ImagePolicy picks the featured image from the extracted URLs.
// It returns "" when there is nothing to pick.
type ImagePolicy func(urls []string) string

// FirstImage is the hero-image policy of the single-article view
func FirstImage(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// LastImage is the card-image policy of the blog listing
func LastImage(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return urls[len(urls)-1]
}
