package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// The API stores and serves plain text, so user input is stripped of all
// markup rather than filtered.
var textPolicy = bluemonday.StrictPolicy()

// CleanText strips HTML from user-supplied free text and trims whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}
