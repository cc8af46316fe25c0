package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wordnik/wordnik-go/internal/endpoint"
	"github.com/wordnik/wordnik-go/internal/preset"
)

func examplesOp() endpoint.Operation {
	return endpoint.Operation{
		Path:    "/word.{format}/{word}/examples",
		Verb:    endpoint.GET,
		Summary: "Returns examples for a word",
		Parameters: []endpoint.Parameter{
			{Name: "word", Location: endpoint.LocationPath, Required: true, DataType: "string"},
			{Name: "limit", Location: endpoint.LocationQuery, DataType: "int", Default: float64(5), Description: "Maximum number of results"},
			{Name: "useCanonical", Location: endpoint.LocationQuery, DataType: "string", AllowedValues: []string{"false", "true"}},
			{Name: "api_key", Location: endpoint.LocationHeader, DataType: "string"},
		},
	}
}

func wordOfTheDayListOp() endpoint.Operation {
	return endpoint.Operation{
		Path: "/user.{format}/{username}/wordOfTheDayList/{permalink}",
		Verb: endpoint.GET,
		Parameters: []endpoint.Parameter{
			{Name: "username", Location: endpoint.LocationPath, Required: true, DataType: "string"},
			{Name: "permalink", Location: endpoint.LocationPath, Required: true, DataType: "string"},
			{Name: "auth_token", Location: endpoint.LocationHeader, Required: true, DataType: "string"},
		},
	}
}

// funcDecls parses src and returns its top-level functions by name.
func funcDecls(t *testing.T, src []byte) map[string]*ast.FuncDecl {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "wrappers.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	out := make(map[string]*ast.FuncDecl)
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			out[fn.Name.Name] = fn
		}
	}
	return out
}

func TestGenerateProducesValidGo(t *testing.T) {
	ctx := GenerateContext{
		Package:        "dict",
		WordnikVersion: "test",
		Methods: []MethodDef{
			NewMethodDef("word_get_examples", examplesOp()),
			NewMethodDef("user_get_word_of_the_day_list", wordOfTheDayListOp()),
		},
	}

	src, err := Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := string(src)

	if !strings.HasPrefix(out, "// Code generated by wordnik generate; DO NOT EDIT.") {
		t.Errorf("missing generated header:\n%s", out)
	}
	if !strings.Contains(out, "package dict") {
		t.Errorf("missing package clause")
	}
	if strings.Contains(out, "encoding/json") {
		t.Errorf("json import should only appear with presets")
	}

	funcs := funcDecls(t, src)
	examples, ok := funcs["WordGetExamples"]
	if !ok {
		t.Fatalf("WordGetExamples not generated:\n%s", out)
	}
	// ctx, c, word, params
	if n := examples.Type.Params.NumFields(); n != 4 {
		t.Errorf("WordGetExamples has %d params, want 4", n)
	}
	list, ok := funcs["UserGetWordOfTheDayList"]
	if !ok {
		t.Fatalf("UserGetWordOfTheDayList not generated")
	}
	if n := list.Type.Params.NumFields(); n != 5 {
		t.Errorf("UserGetWordOfTheDayList has %d params, want 5", n)
	}

	for _, want := range []string{
		`c.Call(ctx, "word_get_examples", []string{word}, params)`,
		`c.Call(ctx, "user_get_word_of_the_day_list", []string{username, permalink}, params)`,
		"//   - limit: Maximum number of results (default 5)",
		"//   - useCanonical: (false|true)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "api_key") || strings.Contains(out, "auth_token") {
		t.Errorf("credential params should not be documented:\n%s", out)
	}
}

func TestGenerateWithHiddenPresets(t *testing.T) {
	ctx := GenerateContext{
		Package: "dict",
		Methods: []MethodDef{NewMethodDef("word_get_examples", examplesOp())},
		Presets: &preset.Config{
			Mode:   preset.ModeHidden,
			Global: preset.Set{Params: preset.Params{"limit": 3}},
		},
	}

	src, err := Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := string(src)

	funcs := funcDecls(t, src)
	if _, ok := funcs["withPresets"]; !ok {
		t.Errorf("withPresets helper not generated:\n%s", out)
	}
	if !strings.Contains(out, `params = withPresets("{\"limit\":3}", params)`) {
		t.Errorf("presets not applied:\n%s", out)
	}
	if strings.Contains(out, "//   - limit") {
		t.Errorf("hidden preset should not be documented:\n%s", out)
	}
}

func TestGenerateWithDefaultPresets(t *testing.T) {
	ctx := GenerateContext{
		Package: "dict",
		Methods: []MethodDef{NewMethodDef("word_get_examples", examplesOp())},
		Presets: &preset.Config{
			Mode:    preset.ModeDefault,
			Methods: map[string]preset.Set{"word_get_examples": {Params: preset.Params{"limit": float64(7)}}},
		},
	}

	src, err := Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(string(src), "//   - limit: Maximum number of results (preset 7)") {
		t.Errorf("default-mode preset not documented:\n%s", src)
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(GenerateContext{Package: "bad-name", Methods: []MethodDef{NewMethodDef("word_get_examples", examplesOp())}}); err == nil {
		t.Error("expected error for invalid package name")
	}
	if _, err := Generate(GenerateContext{Package: "dict"}); err == nil {
		t.Error("expected error for no methods")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "wrappers.go")
	ctx := GenerateContext{Package: "gen", Methods: []MethodDef{NewMethodDef("word_get_examples", examplesOp())}}
	if err := WriteFile(ctx, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	funcDecls(t, data)
}

func TestTemplateFunctions(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{"funcName underscore", func() string { return toFuncName("word_get_examples") }, "WordGetExamples"},
		{"funcName dash", func() string { return toFuncName("word-get") }, "WordGet"},
		{"argName simple", func() string { return toArgName("word") }, "word"},
		{"argName snake", func() string { return toArgName("word_list_id") }, "wordListId"},
		{"argName keyword", func() string { return toArgName("type") }, "typeArg"},
		{"argName reserved", func() string { return toArgName("params") }, "paramsArg"},
		{"defaultLit int", func() string { return defaultValueLiteral("int", float64(5)) }, "5"},
		{"defaultLit string", func() string { return defaultValueLiteral("string", "x") }, `"x"`},
		{"defaultLit nil", func() string { return defaultValueLiteral("int", nil) }, ""},
		{"enumDesc", func() string { return hasEnumDesc("Use canonical", []string{"false", "true"}) }, "Use canonical (false|true)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn()
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
