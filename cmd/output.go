package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wordnik/wordnik-go/internal/transport"
	"github.com/wordnik/wordnik-go/wordnik"
)

const (
	outputRaw  = "raw"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(output string, allowed ...string) error {
	for _, a := range allowed {
		if output == a {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q: must be one of %s", output, strings.Join(allowed, ", "))
}

// printResponse writes resp in the requested output form. Raw JSON bodies
// are indented; XML bodies are printed as received.
func printResponse(w io.Writer, resp *wordnik.Response, output string) error {
	switch output {
	case outputYAML:
		value := resp.Value
		if node, ok := value.(*transport.XMLNode); ok {
			value = map[string]any{node.Name: node.Map()}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case outputJSON:
		value := resp.Value
		if node, ok := value.(*transport.XMLNode); ok {
			value = map[string]any{node.Name: node.Map()}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	default:
		if resp.Format == outputJSON {
			var buf bytes.Buffer
			if err := json.Indent(&buf, resp.Raw, "", "  "); err == nil {
				buf.WriteByte('\n')
				_, err = w.Write(buf.Bytes())
				return err
			}
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(string(resp.Raw), "\n"))
		return err
	}
}

// printRequest writes a dry-run description of req. Credentials are masked.
func printRequest(w io.Writer, req *wordnik.Request, baseURL string) {
	fmt.Fprintf(w, "%s %s\n", req.Method, req.URL(baseURL))

	names := make([]string, 0, len(req.Header))
	for k := range req.Header {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		v := strings.Join(req.Header[k], ",")
		if isSecretHeader(k) {
			v = mask(v)
		}
		fmt.Fprintf(w, "%s: %s\n", k, v)
	}
	if req.ContentType != "" {
		fmt.Fprintf(w, "Content-Type: %s\n", req.ContentType)
	}
	if len(req.Body) > 0 {
		fmt.Fprintf(w, "\n%s\n", req.Body)
	}
}

func isSecretHeader(name string) bool {
	switch strings.ToLower(name) {
	case "api_key", "auth_token", "authorization":
		return true
	}
	return false
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}
