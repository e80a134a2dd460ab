// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips markup from user-supplied text before it is
// stored. Mentorship request messages are plain text: every tag is removed
// and script/style bodies are dropped.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText removes all HTML from s and returns the trimmed text. Entities
// bluemonday escapes on output are decoded again, since the result is
// stored as text and encoded by the JSON layer.
func PlainText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
