package content

import (
	"regexp"
	"strings"
)

var (
	h2OpenPattern      = regexp.MustCompile(`(?i)<h2[\s>]`)
	sectionOpenPattern = regexp.MustCompile(`(?i)<h[23][\s>]`)
)

const (
	paragraphClose     = "</p>"
	fallbackParagraphs = 3
)

// SplitForBanner finds where the CTA banner goes inside an article body.
//
// The preferred point is just before the first h2/h3 that follows the first
// h2, i.e. after the opening section. Failing that, the body is split after
// the third closing </p>, as long as something follows it. When neither
// applies the whole body is returned as before and after is empty, meaning
// no banner should be rendered.
func SplitForBanner(html string) (before, after string) {
	if html == "" {
		return "", ""
	}

	if first := h2OpenPattern.FindStringIndex(html); first != nil {
		rest := html[first[1]:]
		if next := sectionOpenPattern.FindStringIndex(rest); next != nil {
			at := first[1] + next[0]
			return html[:at], html[at:]
		}
	}

	pos, count := 0, 0
	for count < fallbackParagraphs {
		idx := strings.Index(html[pos:], paragraphClose)
		if idx == -1 {
			break
		}
		pos += idx + len(paragraphClose)
		count++
	}
	if count == fallbackParagraphs && pos < len(html) {
		return html[:pos], html[pos:]
	}

	return html, ""
}
