// Package normalize cleans raw scraped text before sentiment scoring.
package normalize

import (
	"regexp"
	"strings"
)

var (
	reURL        = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://\S+`)
	reEntity     = regexp.MustCompile(`&#?[a-zA-Z0-9]+;`)
	reNoise      = regexp.MustCompile(`[^\w\s,.!?'-]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Clean strips URL tokens, HTML entities, and non-linguistic characters,
// then collapses whitespace runs and trims. Pure and idempotent: cleaning
// already-clean text returns it unchanged, and input that is empty or
// entirely noise yields the empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = reURL.ReplaceAllString(text, " ")
	text = reEntity.ReplaceAllString(text, " ")
	text = reNoise.ReplaceAllString(text, " ")
	text = reWhitespace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
