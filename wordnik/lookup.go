package wordnik

import (
	"context"
	"sort"
	"strings"
)

// RelationTypes are the relation types accepted by Related.
var RelationTypes = []string{"synonym", "antonym", "form", "equivalent", "hyponym", "variant"}

// Related fetches words related to word, restricted to the given relation
// types when any are given.
func (c *Client) Related(ctx context.Context, word string, types ...string) (*Response, error) {
	for _, t := range types {
		if !isRelationType(t) {
			return nil, &InvalidRelationTypeError{Type: t}
		}
	}
	params := map[string]any{}
	if len(types) > 0 {
		params["relationshipTypes"] = strings.Join(types, ",")
	}
	return c.Call(ctx, "word_get_related", []string{word}, params)
}

func isRelationType(t string) bool {
	for _, r := range RelationTypes {
		if r == t {
			return true
		}
	}
	return false
}

type lookup struct {
	method    string
	takesWord bool
	params    map[string]any
}

var lookups = map[string]lookup{
	"word":            {method: "word_get", takesWord: true},
	"definitions":     {method: "word_get_definitions", takesWord: true},
	"frequency":       {method: "word_get_frequency", takesWord: true},
	"examples":        {method: "word_get_examples", takesWord: true},
	"suggest":         {method: "word_get", takesWord: true, params: map[string]any{"includeSuggestions": "true"}},
	"word_of_the_day": {method: "words_get_word_of_the_day"},
	"random_word":     {method: "words_get_random_word"},
	"phrases":         {method: "word_get_phrases", takesWord: true, params: map[string]any{"limit": 10}},
	"related":         {method: "word_get_related", takesWord: true},
	"punctuation":     {method: "word_get_punctuation_factor", takesWord: true},
}

// LookupChoices returns the canned lookups accepted by Lookup, sorted.
func LookupChoices() []string {
	out := make([]string, 0, len(lookups))
	for k := range lookups {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LookupTakesWord reports whether the canned lookup needs a word.
func LookupTakesWord(choice string) bool {
	return lookups[choice].takesWord
}

// Lookup runs a canned lookup. word is ignored by the choices that take
// none, word_of_the_day and random_word.
func (c *Client) Lookup(ctx context.Context, choice, word string) (*Response, error) {
	l, ok := lookups[choice]
	if !ok {
		return nil, &InvalidValueError{Name: "choice", Value: choice, Allowed: LookupChoices()}
	}

	var args []string
	if l.takesWord {
		if word == "" {
			return nil, &MissingParametersError{Names: []string{"word"}}
		}
		args = []string{word}
	}

	params := make(map[string]any, len(l.params))
	for k, v := range l.params {
		params[k] = v
	}
	return c.Call(ctx, l.method, args, params)
}
