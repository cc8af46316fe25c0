package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"

	"github.com/wordnik/wordnik-go/internal/auth"
	"github.com/wordnik/wordnik-go/internal/endpoint"
	"github.com/wordnik/wordnik-go/internal/schema"
)

// NewMethodDef describes the wrapper for one method. Credential params are
// left out since the client injects them.
func NewMethodDef(name string, op endpoint.Operation) MethodDef {
	def := MethodDef{
		Name:    name,
		Summary: op.Summary,
		Verb:    string(op.Verb),
		Path:    op.Path,
	}
	for _, o := range schema.Options(op, isCredential) {
		if o.Location == endpoint.LocationPath {
			def.PathParams = append(def.PathParams, o)
			continue
		}
		def.Options = append(def.Options, o)
	}
	return def
}

func isCredential(name string) bool {
	return name == auth.APIKeyParam || name == auth.AuthTokenParam
}

// Generate renders one Go source file with a wrapper function per method.
// The output is gofmt-formatted.
func Generate(ctx GenerateContext) ([]byte, error) {
	if !token.IsIdentifier(ctx.Package) {
		return nil, fmt.Errorf("invalid package name %q", ctx.Package)
	}
	if len(ctx.Methods) == 0 {
		return nil, fmt.Errorf("no methods to generate")
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}

// WriteFile generates the wrappers and writes them to path, creating parent
// directories as needed.
func WriteFile(ctx GenerateContext, path string) error {
	src, err := Generate(ctx)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
