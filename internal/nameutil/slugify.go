package nameutil

import (
	"regexp"
	"strings"
)

var nonAlnumRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single dash. Leading and trailing dashes are trimmed.
func Slugify(s string) string {
	s = nonAlnumRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// CommandName returns the CLI spelling of a method name
// ("word_get_examples" → "word-get-examples").
func CommandName(method string) string {
	return Slugify(method)
}

// MethodName maps a CLI spelling back to a method name. It accepts both
// dashed and underscored forms.
func MethodName(command string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(command)), "-", "_")
}
