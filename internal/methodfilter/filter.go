// Package methodfilter selects synthesized methods by name for the CLI,
// code generator and MCP server.
package methodfilter

import (
	"fmt"
	"strings"
)

// ParseList splits a comma-separated string into a deduplicated, trimmed
// list of names. Empty entries are dropped; the first occurrence wins.
func ParseList(csv string) []string {
	var result []string
	seen := make(map[string]struct{})

	for _, p := range strings.Split(csv, ",") {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result
}

// Filter applies include or exclude filtering to items, identified by
// nameOf.
//
//   - include and exclude together is an error.
//   - Include keeps the named items in include order. An unknown name is an
//     error that lists what exists and suggests the closest match.
//   - Exclude drops the named items; excluding everything is an error.
//   - With neither, items is returned unchanged.
func Filter[T any](items []T, nameOf func(T) string, include, exclude []string) ([]T, error) {
	if len(include) > 0 && len(exclude) > 0 {
		return nil, fmt.Errorf("--include and --exclude cannot be used together")
	}
	if len(include) == 0 && len(exclude) == 0 {
		return items, nil
	}

	byName := make(map[string]T, len(items))
	available := make([]string, 0, len(items))
	for _, it := range items {
		n := nameOf(it)
		byName[n] = it
		available = append(available, n)
	}

	if len(include) > 0 {
		result := make([]T, 0, len(include))
		for _, name := range include {
			it, ok := byName[name]
			if !ok {
				return nil, NotFoundError(name, available)
			}
			result = append(result, it)
		}
		return result, nil
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	var result []T
	for _, it := range items {
		if _, drop := skip[nameOf(it)]; !drop {
			result = append(result, it)
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("all methods excluded, nothing left")
	}
	return result, nil
}

// NotFoundError builds the error reported for an unknown method name.
func NotFoundError(name string, available []string) error {
	msg := fmt.Sprintf("method '%s' not found. Available methods: %s", name, strings.Join(available, ", "))
	if suggestion := Suggest(name, available); suggestion != "" {
		msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
	}
	return fmt.Errorf("%s", msg)
}
