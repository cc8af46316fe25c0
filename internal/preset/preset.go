// Package preset holds default parameter values applied to method calls:
// global ones for every method plus per-method ones.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode controls whether preset params are still exposed to callers of the
// generated surfaces (MCP tools, generated wrappers).
type Mode string

const (
	ModeHidden  Mode = "hidden"  // Params are fixed and not offered as inputs.
	ModeDefault Mode = "default" // Params are offered as inputs with the preset as default.
)

// Params is a set of parameter values keyed by name.
type Params map[string]any

// Set is a group of preset params.
type Set struct {
	Params Params `json:"params" yaml:"params"`
}

// Config is the top-level presets file, in JSON or YAML.
type Config struct {
	Mode    Mode           `json:"mode" yaml:"mode"`
	Global  Set            `json:"global" yaml:"global"`
	Methods map[string]Set `json:"methods" yaml:"methods"`
}

// Load reads and validates a presets file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: reading config: %w", err)
	}

	var cfg Config
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "{") {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("preset: parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Mode == "" {
		c.Mode = ModeHidden
	}
	if err := checkMode(c.Mode); err != nil {
		return err
	}

	if hasEmptyKey(c.Global.Params) {
		return fmt.Errorf("preset: global params contain an empty param name")
	}
	for method, s := range c.Methods {
		if hasEmptyKey(s.Params) {
			return fmt.Errorf("preset: method %q params contain an empty param name", method)
		}
	}
	return nil
}

func checkMode(m Mode) error {
	switch m {
	case ModeHidden, ModeDefault:
		return nil
	default:
		return fmt.Errorf("preset: unknown mode %q (must be %q or %q)", m, ModeHidden, ModeDefault)
	}
}

func hasEmptyKey(p Params) bool {
	_, ok := p[""]
	return ok
}

// Merge returns the presets for a method: global params overridden by the
// method's own.
func (c *Config) Merge(method string) Params {
	merged := make(Params, len(c.Global.Params))
	for k, v := range c.Global.Params {
		merged[k] = v
	}
	for k, v := range c.Methods[method].Params {
		merged[k] = v
	}
	return merged
}

// Apply layers caller params over the presets for method. The caller always
// wins. A nil Config returns params unchanged.
func (c *Config) Apply(method string, params map[string]any) map[string]any {
	if c == nil {
		return params
	}
	out := map[string]any(c.Merge(method))
	for k, v := range params {
		out[k] = v
	}
	return out
}

// Hidden reports whether name is a preset for method that must not be
// exposed as an input.
func (c *Config) Hidden(method, name string) bool {
	if c == nil || c.Mode != ModeHidden {
		return false
	}
	_, ok := c.Merge(method)[name]
	return ok
}

// ParamNames returns the preset param names for a method, sorted.
func (c *Config) ParamNames(method string) []string {
	merged := c.Merge(method)
	names := make([]string, 0, len(merged))
	for k := range merged {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// parseValue decodes raw as JSON when it is valid JSON and keeps it as a
// string otherwise, so --set limit=5 yields a number and --set word=cat a
// string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// ParseSetEntries parses --set key=value entries. Each entry is split on
// the first '='.
func ParseSetEntries(entries []string) (Params, error) {
	params := make(Params, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("preset: invalid --set %q: expected key=value", entry)
		}
		if key == "" {
			return nil, fmt.Errorf("preset: invalid --set %q: empty key", entry)
		}
		params[key] = parseValue(value)
	}
	return params, nil
}

// ParseSetMethodEntries parses --set-method method.key=value entries into
// per-method params.
func ParseSetMethodEntries(entries []string) (map[string]Params, error) {
	out := make(map[string]Params)
	for _, entry := range entries {
		method, rest, ok := strings.Cut(entry, ".")
		if !ok {
			return nil, fmt.Errorf("preset: invalid --set-method %q: expected method.key=value", entry)
		}
		if method == "" {
			return nil, fmt.Errorf("preset: invalid --set-method %q: empty method name", entry)
		}
		key, value, ok := strings.Cut(rest, "=")
		if !ok {
			return nil, fmt.Errorf("preset: invalid --set-method %q: expected method.key=value", entry)
		}
		if key == "" {
			return nil, fmt.Errorf("preset: invalid --set-method %q: empty key", entry)
		}
		if out[method] == nil {
			out[method] = make(Params)
		}
		out[method][key] = parseValue(value)
	}
	return out, nil
}

// MergeOverrides layers command-line --set / --set-method / mode overrides
// over cfg, which may be nil. cfg is not modified and the result is never
// nil.
func MergeOverrides(cfg *Config, globalSets, methodSets []string, modeOverride string) (*Config, error) {
	merged := Config{Mode: ModeHidden}
	if cfg != nil {
		merged.Mode = cfg.Mode
		merged.Global.Params = cfg.Global.Params.clone()
		merged.Methods = make(map[string]Set, len(cfg.Methods))
		for name, s := range cfg.Methods {
			merged.Methods[name] = Set{Params: s.Params.clone()}
		}
	}
	if merged.Mode == "" {
		merged.Mode = ModeHidden
	}

	globals, err := ParseSetEntries(globalSets)
	if err != nil {
		return nil, err
	}
	if merged.Global.Params == nil {
		merged.Global.Params = make(Params)
	}
	for k, v := range globals {
		merged.Global.Params[k] = v
	}

	perMethod, err := ParseSetMethodEntries(methodSets)
	if err != nil {
		return nil, err
	}
	if merged.Methods == nil {
		merged.Methods = make(map[string]Set)
	}
	for name, params := range perMethod {
		s := merged.Methods[name]
		if s.Params == nil {
			s.Params = make(Params)
		}
		for k, v := range params {
			s.Params[k] = v
		}
		merged.Methods[name] = s
	}

	if modeOverride != "" {
		if err := checkMode(Mode(modeOverride)); err != nil {
			return nil, err
		}
		merged.Mode = Mode(modeOverride)
	}

	return &merged, nil
}

func (p Params) clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
