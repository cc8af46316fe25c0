package nameutil

import (
	"regexp"
	"strings"
)

var (
	placeholderRe   = regexp.MustCompile(`\{\w+\}`)
	underscoreRunRe = regexp.MustCompile(`_+`)
	camelWordRe     = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	camelBoundaryRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// Normalize turns an endpoint path template and HTTP verb into a method name.
//
// Placeholders are dropped, "/" and "." become separators, the verb is
// inserted after the first path component and the result is un-camelled:
//
//	Normalize("/word.{format}/{word}/examples", "GET")            → "word_get_examples"
//	Normalize("/user.{format}/{username}/wordOfTheDayList", "GET") → "user_get_word_of_the_day_list"
//	Normalize("/wordList.{format}/{id}", "DELETE")                → "word_list_delete"
func Normalize(path, verb string) string {
	p := RemovePlaceholders(path)
	p = strings.NewReplacer("/", "_", ".", "_").Replace(p)
	p = strings.Trim(p, "_")

	components := Componentize(p)
	parts := make([]string, 0, len(components)+1)
	parts = append(parts, components[0], strings.ToLower(verb))
	parts = append(parts, components[1:]...)

	return UncamelCase(strings.Join(parts, "_"))
}

// UncamelCase converts camelCase words to lower snake_case. Existing
// underscores are left alone.
func UncamelCase(s string) string {
	s = camelWordRe.ReplaceAllString(s, "${1}_${2}")
	s = camelBoundaryRe.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// RemovePlaceholders strips every {name} token from a path template.
func RemovePlaceholders(path string) string {
	return placeholderRe.ReplaceAllString(path, "")
}

// Componentize splits s on runs of underscores.
func Componentize(s string) []string {
	return underscoreRunRe.Split(s, -1)
}
