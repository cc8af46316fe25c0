package codegen

import (
	"github.com/wordnik/wordnik-go/internal/preset"
	"github.com/wordnik/wordnik-go/internal/schema"
)

// GenerateContext holds all data needed to generate a wrapper file.
type GenerateContext struct {
	Package        string         // Go package name of the generated file
	WordnikVersion string         // wordnik version for the header comment
	Methods        []MethodDef    // Methods to wrap, in output order
	Presets        *preset.Config // Optional presets baked into the wrappers
}

// MethodDef represents a single method for code generation.
type MethodDef struct {
	Name        string          // Method name (e.g., "word_get_examples")
	Summary     string          // One-line description
	Verb        string          // HTTP verb
	Path        string          // Path template
	PathParams  []schema.Option // Positional arguments, in template order
	Options     []schema.Option // Everything passed through the params map
}
