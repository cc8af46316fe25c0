package schema

import (
	"sort"

	"github.com/wordnik/wordnik-go/internal/endpoint"
)

// Options returns the caller-facing inputs of op, one per parameter.
//
// Sort order: required options first, then path parameters in template
// order, then alphabetical by FlagName.
//
// The format placeholder is never an option. Parameters for which skip
// returns true are left out; callers use it for credentials injected by the
// client and for hidden presets. skip may be nil.
func Options(op endpoint.Operation, skip func(name string) bool) []Option {
	pathOrder := make(map[string]int)
	for i, name := range op.Placeholders() {
		pathOrder[name] = i
	}

	options := make([]Option, 0, len(op.Parameters))
	for _, p := range op.Parameters {
		if p.Name == endpoint.FormatPlaceholder {
			continue
		}
		if skip != nil && skip(p.Name) {
			continue
		}

		opt := Option{
			Name:         p.Name,
			FlagName:     ToFlagName(p.Name),
			Description:  p.Description,
			Required:     p.Required,
			GoType:       mapDataType(p.DataType),
			DefaultValue: p.Default,
			Location:     p.Location,
		}
		if p.Location == endpoint.LocationBody {
			opt.GoType = "string"
		}
		if len(p.AllowedValues) > 0 {
			opt.EnumValues = append([]string(nil), p.AllowedValues...)
		}
		options = append(options, opt)
	}

	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i], options[j]
		if a.Required != b.Required {
			return a.Required
		}
		ai, aPath := pathOrder[a.Name]
		bi, bPath := pathOrder[b.Name]
		aPath = aPath && a.Location == endpoint.LocationPath
		bPath = bPath && b.Location == endpoint.LocationPath
		if aPath != bPath {
			return aPath
		}
		if aPath {
			return ai < bi
		}
		return a.FlagName < b.FlagName
	})

	return options
}
