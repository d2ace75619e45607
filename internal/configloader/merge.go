package configloader

import (
	"slices"

	"github.com/yaklabco/varedit/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Delimiters.Open != "" {
		result.Delimiters.Open = override.Delimiters.Open
	}
	if override.Delimiters.Close != "" {
		result.Delimiters.Close = override.Delimiters.Close
	}
	if override.Catalog != "" {
		result.Catalog = override.Catalog
	}
	if override.Match != "" {
		result.Match = override.Match
	}
	if override.IndexPolicy != "" {
		result.IndexPolicy = override.IndexPolicy
	}
	if override.FormatName != "" {
		result.FormatName = override.FormatName
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	if override.Dropdown.MaxHeight != 0 {
		result.Dropdown.MaxHeight = override.Dropdown.MaxHeight
	}
	if override.Dropdown.MinWidth != 0 {
		result.Dropdown.MinWidth = override.Dropdown.MinWidth
	}
	if override.Dropdown.MaxWidth != 0 {
		result.Dropdown.MaxWidth = override.Dropdown.MaxWidth
	}

	if override.Suggestions != nil {
		result.Suggestions = slices.Clone(override.Suggestions)
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
