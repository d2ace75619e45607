package config

import (
	"fmt"
	"strings"
)

// Template formats understood by GenerateTemplate.
const (
	TemplateYAML = "yaml"
	TemplateTOML = "toml"
)

// GenerateTemplate returns a commented configuration file holding the defaults.
func GenerateTemplate(format string) ([]byte, error) {
	defaults := NewConfig()

	var b strings.Builder
	switch format {
	case TemplateYAML, "":
		writeYAMLTemplate(&b, defaults)
	case TemplateTOML:
		writeTOMLTemplate(&b, defaults)
	default:
		return nil, fmt.Errorf("unsupported template format %q (want %s or %s)", format, TemplateYAML, TemplateTOML)
	}

	return []byte(b.String()), nil
}

func writeYAMLTemplate(b *strings.Builder, d *Config) {
	fmt.Fprintf(b, "# varedit configuration\n\n")
	fmt.Fprintf(b, "# Markers around a template variable.\n")
	fmt.Fprintf(b, "delimiters:\n  open: %q\n  close: %q\n\n", d.Delimiters.Open, d.Delimiters.Close)
	fmt.Fprintf(b, "# Suggestion catalog file (YAML or TOML), relative to this file.\n")
	fmt.Fprintf(b, "# catalog: variables.yml\n\n")
	fmt.Fprintf(b, "# Inline suggestions, listed after the catalog file's.\n")
	fmt.Fprintf(b, "suggestions:\n")
	fmt.Fprintf(b, "  - value: first_name\n    label: First name\n    description: Recipient's first name\n\n")
	fmt.Fprintf(b, "# How typed text filters suggestions: substring or fuzzy.\n")
	fmt.Fprintf(b, "match: %s\n\n", d.Match)
	fmt.Fprintf(b, "# Highlight after a query change: reset or preserve.\n")
	fmt.Fprintf(b, "index_policy: %s\n\n", d.IndexPolicy)
	fmt.Fprintf(b, "# Inline format used to highlight placeholders.\n")
	fmt.Fprintf(b, "format_name: %s\n\n", d.FormatName)
	fmt.Fprintf(b, "# Markdown flavor for render: commonmark or gfm.\n")
	fmt.Fprintf(b, "flavor: %s\n\n", d.Flavor)
	fmt.Fprintf(b, "# Suggestion list bounds, in terminal cells.\n")
	fmt.Fprintf(b, "dropdown:\n  max_height: %d\n  min_width: %d\n  max_width: %d\n",
		d.Dropdown.MaxHeight, d.Dropdown.MinWidth, d.Dropdown.MaxWidth)
}

func writeTOMLTemplate(b *strings.Builder, d *Config) {
	fmt.Fprintf(b, "# varedit configuration\n\n")
	fmt.Fprintf(b, "# How typed text filters suggestions: substring or fuzzy.\n")
	fmt.Fprintf(b, "match = %q\n", d.Match)
	fmt.Fprintf(b, "# Highlight after a query change: reset or preserve.\n")
	fmt.Fprintf(b, "index_policy = %q\n", d.IndexPolicy)
	fmt.Fprintf(b, "format_name = %q\n", d.FormatName)
	fmt.Fprintf(b, "flavor = %q\n", d.Flavor)
	fmt.Fprintf(b, "# catalog = \"variables.toml\"\n\n")
	fmt.Fprintf(b, "[delimiters]\nopen = %q\nclose = %q\n\n", d.Delimiters.Open, d.Delimiters.Close)
	fmt.Fprintf(b, "[dropdown]\nmax_height = %d\nmin_width = %d\nmax_width = %d\n\n",
		d.Dropdown.MaxHeight, d.Dropdown.MinWidth, d.Dropdown.MaxWidth)
	fmt.Fprintf(b, "[[suggestions]]\nvalue = \"first_name\"\nlabel = \"First name\"\n")
	fmt.Fprintf(b, "description = \"Recipient's first name\"\n")
}
