package cmd

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/wordnik/wordnik-go/internal/endpoint"
	"github.com/wordnik/wordnik-go/internal/transport"
	"github.com/wordnik/wordnik-go/wordnik"
)

// ---------------------------------------------------------------------------
// parseBatchCall
// ---------------------------------------------------------------------------

func TestParseBatchCall(t *testing.T) {
	call, err := parseBatchCall("cat/definitions?limit=2&partOfSpeech=noun")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if call.Word != "cat" || call.Resource != "definitions" {
		t.Errorf("got word=%q resource=%q", call.Word, call.Resource)
	}
	if call.Params["limit"] != "2" || call.Params["partOfSpeech"] != "noun" {
		t.Errorf("unexpected params %v", call.Params)
	}
}

func TestParseBatchCall_NoQuery(t *testing.T) {
	call, err := parseBatchCall("dog/examples")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if call.Params != nil {
		t.Errorf("expected nil params, got %v", call.Params)
	}
}

func TestParseBatchCall_Invalid(t *testing.T) {
	for _, s := range []string{"cat", "/definitions", "cat/", "cat/definitions?%zz"} {
		if _, err := parseBatchCall(s); err == nil {
			t.Errorf("parseBatchCall(%q): expected error", s)
		}
	}
}

// ---------------------------------------------------------------------------
// Output
// ---------------------------------------------------------------------------

func TestValidateOutput(t *testing.T) {
	if err := validateOutput("json", outputRaw, outputJSON); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := validateOutput("toml", outputRaw, outputJSON)
	if err == nil || !strings.Contains(err.Error(), "raw, json") {
		t.Errorf("expected error listing choices, got %v", err)
	}
}

func TestPrintResponse_RawJSONIsIndented(t *testing.T) {
	var buf bytes.Buffer
	resp := &wordnik.Response{Format: "json", Raw: []byte(`{"word":"cat"}`)}
	if err := printResponse(&buf, resp, outputRaw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "{\n  \"word\": \"cat\"\n}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintResponse_RawXMLAsReceived(t *testing.T) {
	var buf bytes.Buffer
	resp := &wordnik.Response{Format: "xml", Raw: []byte("<word>cat</word>\n")}
	if err := printResponse(&buf, resp, outputRaw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<word>cat</word>\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrintResponse_YAMLFromXML(t *testing.T) {
	var buf bytes.Buffer
	node := &transport.XMLNode{
		Name:     "wordObject",
		Children: []*transport.XMLNode{{Name: "word", Text: "cat"}},
	}
	resp := &wordnik.Response{Format: "xml", Value: node}
	if err := printResponse(&buf, resp, outputYAML); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "wordObject:\n  word: cat\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintRequest_MasksCredentials(t *testing.T) {
	req := &wordnik.Request{
		Method: "GET",
		Path:   "/word.json/cat/definitions",
		Query:  url.Values{"limit": {"2"}},
		Header: http.Header{},
	}
	req.Header.Set("api_key", "abcdefgh")
	req.Header.Set("auth_token", "xy")

	var buf bytes.Buffer
	printRequest(&buf, req, "https://api.wordnik.com/v4")
	out := buf.String()

	if !strings.HasPrefix(out, "GET https://api.wordnik.com/v4/word.json/cat/definitions?limit=2\n") {
		t.Errorf("unexpected request line in %q", out)
	}
	if strings.Contains(out, "abcdefgh") {
		t.Errorf("api key leaked: %q", out)
	}
	if !strings.Contains(out, "abcd****") {
		t.Errorf("expected masked api key in %q", out)
	}
	if !strings.Contains(out, ": ****\n") {
		t.Errorf("expected fully masked short token in %q", out)
	}
}

// ---------------------------------------------------------------------------
// Method filtering
// ---------------------------------------------------------------------------

func TestFilterMethods(t *testing.T) {
	methods := []wordnik.Method{
		{Name: "word_get", Operation: endpoint.Operation{}},
		{Name: "word_get_examples"},
		{Name: "words_get_random_word"},
	}

	got, err := filterMethods(methods, "word_get_examples", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := methodNames(got); len(names) != 1 || names[0] != "word_get_examples" {
		t.Errorf("include: got %v", names)
	}

	got, err = filterMethods(methods, "", "word_get")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := methodNames(got); len(names) != 2 {
		t.Errorf("exclude: got %v", names)
	}

	if _, err := filterMethods(methods, "word_get_exampels", ""); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestSortMethods(t *testing.T) {
	methods := []wordnik.Method{{Name: "words_search"}, {Name: "account_get"}, {Name: "word_get"}}
	sortMethods(methods)
	names := methodNames(methods)
	if strings.Join(names, ",") != "account_get,word_get,words_search" {
		t.Errorf("got %v", names)
	}
}
