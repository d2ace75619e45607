package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/varedit/pkg/config"
	"github.com/yaklabco/varedit/pkg/placeholder"
	"github.com/yaklabco/varedit/pkg/suggest"
)

// envVarPrefix is the prefix for all varedit environment variables.
const envVarPrefix = "VAREDIT_"

// envSetter applies one environment value to a config.
type envSetter func(cfg *config.Config, value string) error

// envMappings maps environment variable names (without prefix) to setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envSetter{
	"OPEN":        func(c *config.Config, v string) error { c.Delimiters.Open = v; return nil },
	"CLOSE":       func(c *config.Config, v string) error { c.Delimiters.Close = v; return nil },
	"CATALOG":     func(c *config.Config, v string) error { c.Catalog = v; return nil },
	"MATCH":       func(c *config.Config, v string) error { c.Match = suggest.MatchMode(v); return nil },
	"FORMAT_NAME": func(c *config.Config, v string) error { c.FormatName = v; return nil },
	"FLAVOR":      func(c *config.Config, v string) error { c.Flavor = config.Flavor(v); return nil },
	"COLOR":       func(c *config.Config, v string) error { c.Color = config.ColorMode(v); return nil },
	"FORMAT":      func(c *config.Config, v string) error { c.Format = config.OutputFormat(v); return nil },
	"INDEX_POLICY": func(c *config.Config, v string) error {
		c.IndexPolicy = suggest.IndexPolicy(v)
		return nil
	},
	"DROPDOWN_MAX_HEIGHT": intSetter(func(c *config.Config) *int { return &c.Dropdown.MaxHeight }),
	"DROPDOWN_MIN_WIDTH":  intSetter(func(c *config.Config) *int { return &c.Dropdown.MinWidth }),
	"DROPDOWN_MAX_WIDTH":  intSetter(func(c *config.Config) *int { return &c.Dropdown.MaxWidth }),
}

func intSetter(field func(*config.Config) *int) envSetter {
	return func(cfg *config.Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		*field(cfg) = n
		return nil
	}
}

// LoadFromEnv applies VAREDIT_* overrides to cfg. lookup defaults to
// os.LookupEnv when nil.
func LoadFromEnv(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for suffix, set := range envMappings {
		envVar := envVarPrefix + suffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}
		if err := set(cfg, value); err != nil {
			return fmt.Errorf("%w: %s: %w", placeholder.ErrInvalidConfiguration, envVar, err)
		}
	}

	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"VAREDIT_OPEN":                "Opening placeholder delimiter",
		"VAREDIT_CLOSE":               "Closing placeholder delimiter",
		"VAREDIT_CATALOG":             "Suggestion catalog file",
		"VAREDIT_MATCH":               "Suggestion matcher: substring or fuzzy",
		"VAREDIT_INDEX_POLICY":        "Highlight policy: reset or preserve",
		"VAREDIT_FORMAT_NAME":         "Inline format name for highlights",
		"VAREDIT_FLAVOR":              "Markdown flavor: commonmark or gfm",
		"VAREDIT_COLOR":               "Color output: auto, always or never",
		"VAREDIT_FORMAT":              "Output format: text or json",
		"VAREDIT_DROPDOWN_MAX_HEIGHT": "Maximum suggestion rows",
		"VAREDIT_DROPDOWN_MIN_WIDTH":  "Minimum suggestion list width",
		"VAREDIT_DROPDOWN_MAX_WIDTH":  "Maximum suggestion list width",
	}
}
