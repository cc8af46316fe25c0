package codegen

import (
	"encoding/json"
	"fmt"
	"go/token"
	"strings"
	"text/template"

	"github.com/wordnik/wordnik-go/internal/preset"
)

var fileTemplate = template.Must(template.New("wrappers.go").Funcs(template.FuncMap{
	"funcName":      toFuncName,
	"argName":       toArgName,
	"quote":         quoteStr,
	"hasEnumDesc":   hasEnumDesc,
	"defaultLit":    defaultValueLiteral,
	"presetMerged":  presetMergedJSON,
	"presetSkip":    presetSkipParam,
	"presetDefault": presetDefaultLiteral,
	"comment":       commentText,
}).Parse(fileTemplateSource))

const fileTemplateSource = `// Code generated by wordnik generate; DO NOT EDIT.
// wordnik version: {{.WordnikVersion}}

package {{.Package}}

import (
	"context"
{{- if .Presets}}
	"encoding/json"
{{- end}}

	"github.com/wordnik/wordnik-go/wordnik"
)
{{$presets := .Presets}}
{{- if $presets}}
func withPresets(raw string, params map[string]any) map[string]any {
	merged := map[string]any{}
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &merged)
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}
{{end}}
{{- range .Methods}}
{{- $method := .}}
// {{funcName .Name}} calls {{.Name}} ({{.Verb}} {{.Path}}).
{{- if .Summary}}
//
// {{comment .Summary}}
{{- end}}
{{- $shown := false}}
{{- range .Options}}
{{- if not (presetSkip $presets $method.Name .Name)}}
{{- if not $shown}}
//
// Params:
{{- $shown = true}}
{{- end}}
//   - {{.Name}}{{if .Required}} (required){{end}}: {{comment (hasEnumDesc .Description .EnumValues)}}
{{- with presetDefault $presets $method.Name .Name .GoType}} (preset {{.}}){{else}}{{with defaultLit .GoType .DefaultValue}} (default {{.}}){{end}}{{end}}
{{- end}}
{{- end}}
func {{funcName .Name}}(ctx context.Context, c *wordnik.Client{{range .PathParams}}, {{argName .Name}} string{{end}}, params map[string]any) (*wordnik.Response, error) {
{{- with presetMerged $presets .Name}}
	params = withPresets({{.}}, params)
{{- end}}
	return c.Call(ctx, {{quote .Name}}, []string{ {{- range $i, $p := .PathParams}}{{if $i}}, {{end}}{{argName $p.Name}}{{end -}} }, params)
}
{{end}}`

func quoteStr(s string) string {
	return fmt.Sprintf("%q", s)
}

func commentText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func defaultValueLiteral(goType string, defaultValue any) string {
	if defaultValue == nil {
		return ""
	}
	switch goType {
	case "string":
		if s, ok := defaultValue.(string); ok {
			return fmt.Sprintf("%q", s)
		}
	case "int":
		switch n := defaultValue.(type) {
		case float64:
			return fmt.Sprintf("%d", int(n))
		case int:
			return fmt.Sprintf("%d", n)
		}
	case "float64":
		if f, ok := defaultValue.(float64); ok {
			return fmt.Sprintf("%g", f)
		}
	case "bool":
		if b, ok := defaultValue.(bool); ok {
			return fmt.Sprintf("%t", b)
		}
	}
	return fmt.Sprintf("%v", defaultValue)
}

// toFuncName converts a method name to an exported Go identifier:
// "word_get_examples" → "WordGetExamples".
func toFuncName(name string) string {
	out := make([]byte, 0, len(name))
	upper := true
	for _, c := range name {
		if c == '-' || c == '_' {
			upper = true
			continue
		}
		if upper {
			if c >= 'a' && c <= 'z' {
				c = c - 32
			}
			upper = false
		}
		out = append(out, byte(c))
	}
	return string(out)
}

var reservedArgs = map[string]bool{"ctx": true, "c": true, "params": true, "context": true, "wordnik": true}

// toArgName converts a path parameter to a parameter identifier that does
// not clash with keywords or the wrapper's own parameters.
func toArgName(name string) string {
	out := make([]byte, 0, len(name))
	upper := false
	for _, c := range name {
		if c == '-' || c == '_' {
			upper = true
			continue
		}
		if upper {
			if c >= 'a' && c <= 'z' {
				c = c - 32
			}
			upper = false
		}
		out = append(out, byte(c))
	}
	arg := string(out)
	if token.IsKeyword(arg) || reservedArgs[arg] || !token.IsIdentifier(arg) {
		arg += "Arg"
	}
	return arg
}

func hasEnumDesc(desc string, enums []string) string {
	if len(enums) == 0 {
		return desc
	}
	return desc + " (" + strings.Join(enums, "|") + ")"
}

// presetMergedJSON returns the merged presets of a method as a Go string
// literal holding JSON, or "" when there are none.
func presetMergedJSON(cfg *preset.Config, method string) string {
	if cfg == nil {
		return ""
	}
	merged := cfg.Merge(method)
	if len(merged) == 0 {
		return ""
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%q", string(data))
}

// presetSkipParam reports whether a param is preset in hidden mode and so
// left out of the wrapper's documentation.
func presetSkipParam(cfg *preset.Config, method, name string) bool {
	return cfg.Hidden(method, name)
}

// presetDefaultLiteral returns the preset value of a param in default mode.
func presetDefaultLiteral(cfg *preset.Config, method, name, goType string) string {
	if cfg == nil || cfg.Mode != preset.ModeDefault {
		return ""
	}
	val, ok := cfg.Merge(method)[name]
	if !ok {
		return ""
	}
	return defaultValueLiteral(goType, val)
}
