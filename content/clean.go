package content

import (
	"regexp"
	"strings"
)

var (
	boldTagPattern    = regexp.MustCompile(`(?i)</?(strong|b)\b[^>]*>`)
	styleAttrPattern  = regexp.MustCompile(`(?i)\sstyle=["'][^"']*["']`)
	sizeAttrPattern   = regexp.MustCompile(`(?i)\s(width|height)=["'][^"']*["']`)
	blockTagPattern   = regexp.MustCompile(`(?i)<\s*(?:p|h[1-6]|ul|ol|table|blockquote|pre)\b`)
	doubleBreak       = regexp.MustCompile(`(?i)<br\s*/?>\s*<br\s*/?>`)
	blankLinePattern  = regexp.MustCompile(`\n\s*\n+`)
	lineBreakReplacer = strings.NewReplacer("\n", "<br/>")
)

// CleanArticleHTML removes bold tags (keeping their text), inline styles and
// width/height attributes
func CleanArticleHTML(html string) string {
	h := boldTagPattern.ReplaceAllString(html, "")
	h = styleAttrPattern.ReplaceAllString(h, "")
	h = sizeAttrPattern.ReplaceAllString(h, "")
	return h
}

// EnsureParagraphs wraps plain-text content in <p> blocks. Content that
// already has block-level markup is returned trimmed but otherwise untouched.
func EnsureParagraphs(html string) string {
	h := strings.TrimSpace(html)
	if h == "" {
		return ""
	}

	if blockTagPattern.MatchString(h) {
		return h
	}

	if parts := splitNonEmpty(doubleBreak, h); len(parts) > 1 {
		return wrapParagraphs(parts)
	}

	if parts := splitNonEmpty(blankLinePattern, h); len(parts) > 1 {
		return wrapParagraphs(parts)
	}

	return wrapParagraphs([]string{h})
}

func splitNonEmpty(sep *regexp.Regexp, s string) []string {
	var parts []string
	for _, p := range sep.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func wrapParagraphs(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString("<p>")
		b.WriteString(lineBreakReplacer.Replace(p))
		b.WriteString("</p>")
	}
	return b.String()
}
