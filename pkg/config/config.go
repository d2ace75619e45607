// Package config defines the varedit configuration types.
// These are plain data structures; discovery and merging live in the loader.
package config

import (
	"errors"
	"fmt"

	"github.com/yaklabco/varedit/pkg/decoration"
	"github.com/yaklabco/varedit/pkg/placeholder"
	"github.com/yaklabco/varedit/pkg/suggest"
)

// Flavor specifies the markdown flavor used by the render bridge.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid reports whether f is a known flavor.
func (f Flavor) IsValid() bool {
	return f == FlavorCommonMark || f == FlavorGFM
}

// OutputFormat specifies how commands print results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid reports whether f is a known output format.
func (f OutputFormat) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// DropdownConfig bounds the suggestion list printed by the CLI, in cells.
type DropdownConfig struct {
	MaxHeight int `yaml:"max_height" toml:"max_height"`
	MinWidth  int `yaml:"min_width" toml:"min_width"`
	MaxWidth  int `yaml:"max_width" toml:"max_width"`
}

// Config is the root configuration structure for varedit.
type Config struct {
	// Delimiters mark placeholders in the text.
	Delimiters placeholder.Delimiters `yaml:"delimiters" toml:"delimiters"`

	// Catalog is the path of a YAML or TOML suggestion catalog.
	// Relative paths are resolved against the file that set them.
	Catalog string `yaml:"catalog,omitempty" toml:"catalog,omitempty"`

	// Suggestions are inline catalog items, listed after the catalog file's.
	Suggestions []suggest.Item `yaml:"suggestions,omitempty" toml:"suggestions,omitempty"`

	// Match selects the suggestion matcher ("substring" or "fuzzy").
	Match suggest.MatchMode `yaml:"match" toml:"match"`

	// IndexPolicy controls the highlighted suggestion on query changes.
	IndexPolicy suggest.IndexPolicy `yaml:"index_policy" toml:"index_policy"`

	// FormatName is the inline format used to highlight placeholders.
	FormatName string `yaml:"format_name" toml:"format_name"`

	// Flavor selects the markdown flavor for render.
	Flavor Flavor `yaml:"flavor" toml:"flavor"`

	// Dropdown bounds the suggestion list.
	Dropdown DropdownConfig `yaml:"dropdown" toml:"dropdown"`

	// CLI-level options (not persisted to config files).

	// Color controls colored output.
	Color ColorMode `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with the default settings.
func NewConfig() *Config {
	return &Config{
		Delimiters:  placeholder.DefaultDelimiters(),
		Match:       suggest.MatchSubstring,
		IndexPolicy: suggest.ResetAlways,
		FormatName:  decoration.DefaultFormat,
		Flavor:      FlavorCommonMark,
		Dropdown: DropdownConfig{
			MaxHeight: 10,
			MinWidth:  20,
			MaxWidth:  60,
		},
		Color:  ColorAuto,
		Format: FormatText,
	}
}

// Validate reports every problem in c. Each error wraps
// placeholder.ErrInvalidConfiguration.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(msg string) {
		errs = append(errs, fmt.Errorf("%w: %s", placeholder.ErrInvalidConfiguration, msg))
	}

	if err := c.Delimiters.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !c.Match.IsValid() {
		invalid(fmt.Sprintf("match must be %q or %q, got %q", suggest.MatchSubstring, suggest.MatchFuzzy, c.Match))
	}
	if !c.IndexPolicy.IsValid() {
		invalid(fmt.Sprintf("index_policy must be %q or %q, got %q", suggest.ResetAlways, suggest.PreserveOnEmptyReopen, c.IndexPolicy))
	}
	if c.FormatName == "" {
		invalid("format_name must not be empty")
	}
	if !c.Flavor.IsValid() {
		invalid(fmt.Sprintf("flavor must be %q or %q, got %q", FlavorCommonMark, FlavorGFM, c.Flavor))
	}
	if c.Dropdown.MaxHeight < 1 {
		invalid(fmt.Sprintf("dropdown.max_height must be positive, got %d", c.Dropdown.MaxHeight))
	}
	if c.Dropdown.MinWidth < 0 || c.Dropdown.MaxWidth < c.Dropdown.MinWidth {
		invalid(fmt.Sprintf("dropdown widths must satisfy 0 <= min_width <= max_width, got %d and %d",
			c.Dropdown.MinWidth, c.Dropdown.MaxWidth))
	}
	if c.Color != "" && !c.Color.IsValid() {
		invalid(fmt.Sprintf("color must be auto, always or never, got %q", c.Color))
	}
	if c.Format != "" && !c.Format.IsValid() {
		invalid(fmt.Sprintf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format))
	}
	if err := suggest.Catalog(c.Suggestions).Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: suggestions: %w", placeholder.ErrInvalidConfiguration, err))
	}

	return errors.Join(errs...)
}

// Items returns the catalog file's items followed by the inline suggestions.
func (c *Config) Items() (suggest.Catalog, error) {
	var items suggest.Catalog
	if c.Catalog != "" {
		loaded, err := suggest.LoadCatalog(c.Catalog)
		if err != nil {
			return nil, err
		}
		items = append(items, loaded...)
	}
	items = append(items, c.Suggestions...)
	if err := items.Validate(); err != nil {
		return nil, err
	}
	return items, nil
}
