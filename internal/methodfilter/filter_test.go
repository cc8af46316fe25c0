package methodfilter

import (
	"strings"
	"testing"
)

type method struct {
	Name    string
	Summary string
}

func nameOf(m method) string { return m.Name }

// ---------------------------------------------------------------------------
// ParseList tests
// ---------------------------------------------------------------------------

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic comma separated",
			input: "word_get, word_get_examples, words_get_search",
			want:  []string{"word_get", "word_get_examples", "words_get_search"},
		},
		{
			name:  "deduplication preserves order",
			input: "word_get, word_get_audio, word_get",
			want:  []string{"word_get", "word_get_audio"},
		},
		{
			name:  "trim whitespace and skip empty",
			input: "  a , b ,  ",
			want:  []string{"a", "b"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseList(tc.input)
			if !strSliceEqual(got, tc.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Filter: include mode
// ---------------------------------------------------------------------------

func TestFilterInclude(t *testing.T) {
	all := []method{
		{Name: "word_get"},
		{Name: "word_get_examples"},
		{Name: "word_get_definitions"},
		{Name: "words_get_search"},
	}

	t.Run("include subset keeps include order", func(t *testing.T) {
		got, err := Filter(all, nameOf, []string{"words_get_search", "word_get"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"words_get_search", "word_get"}
		if !namesEqual(got, want) {
			t.Errorf("got %v, want %v", names(got), want)
		}
	})

	t.Run("include unknown method lists available", func(t *testing.T) {
		_, err := Filter(all, nameOf, []string{"x"}, nil)
		if err == nil {
			t.Fatal("expected error for unknown method")
		}
		if !strings.Contains(err.Error(), "method 'x' not found") {
			t.Errorf("error should mention method not found, got: %v", err)
		}
		if !strings.Contains(err.Error(), "Available methods:") {
			t.Errorf("error should list available methods, got: %v", err)
		}
		if strings.Contains(err.Error(), "Did you mean") {
			t.Errorf("no suggestion expected for a distant name, got: %v", err)
		}
	})

	t.Run("include with close match suggests method", func(t *testing.T) {
		_, err := Filter(all, nameOf, []string{"word_get_exampels"}, nil)
		if err == nil {
			t.Fatal("expected error for misspelled method")
		}
		if !strings.Contains(err.Error(), "Did you mean 'word_get_examples'?") {
			t.Errorf("error should suggest word_get_examples, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// Filter: exclude mode
// ---------------------------------------------------------------------------

func TestFilterExclude(t *testing.T) {
	all := []method{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}

	t.Run("exclude subset", func(t *testing.T) {
		got, err := Filter(all, nameOf, nil, []string{"c", "d"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !namesEqual(got, []string{"a", "b"}) {
			t.Errorf("got %v, want [a b]", names(got))
		}
	})

	t.Run("exclude all errors", func(t *testing.T) {
		_, err := Filter(all[:2], nameOf, nil, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error when all methods excluded")
		}
		if !strings.Contains(err.Error(), "all methods excluded") {
			t.Errorf("error should mention all methods excluded, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// Filter: edge cases
// ---------------------------------------------------------------------------

func TestFilterBothIncludeAndExclude(t *testing.T) {
	_, err := Filter([]method(nil), nameOf, []string{"a"}, []string{"b"})
	if err == nil {
		t.Fatal("expected error when both include and exclude provided")
	}
	if !strings.Contains(err.Error(), "cannot be used together") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestFilterNoFilter(t *testing.T) {
	all := []method{{Name: "a"}, {Name: "b"}}
	got, err := Filter(all, nameOf, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !namesEqual(got, []string{"a", "b"}) {
		t.Errorf("expected all methods returned, got %v", names(got))
	}
}

// ---------------------------------------------------------------------------
// LevenshteinDistance / Suggest tests
// ---------------------------------------------------------------------------

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"word_get", "wrod_get", 2},
		{"word_get_audio", "word_get_audi", 1},
	}

	for _, tc := range tests {
		t.Run(tc.a+"_vs_"+tc.b, func(t *testing.T) {
			if got := LevenshteinDistance(tc.a, tc.b); got != tc.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	available := []string{"word_get_audio", "word_get_examples", "words_get_search"}

	t.Run("close match returns suggestion", func(t *testing.T) {
		if got := Suggest("word_get_audoi", available); got != "word_get_audio" {
			t.Errorf("Suggest returned %q, want %q", got, "word_get_audio")
		}
	})

	t.Run("far match returns empty", func(t *testing.T) {
		if got := Suggest("zzzzzzzzzzzzz", available); got != "" {
			t.Errorf("Suggest returned %q, want empty string", got)
		}
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func names(ms []method) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

func namesEqual(ms []method, want []string) bool {
	return strSliceEqual(names(ms), want)
}
