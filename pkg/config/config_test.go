package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/varedit/pkg/config"
	"github.com/yaklabco/varedit/pkg/placeholder"
	"github.com/yaklabco/varedit/pkg/suggest"
)

func TestNewConfig_IsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.NewConfig().Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantMsg string
	}{
		{
			name:    "empty open delimiter",
			mutate:  func(c *config.Config) { c.Delimiters.Open = "" },
			wantMsg: "open",
		},
		{
			name:    "unknown match mode",
			mutate:  func(c *config.Config) { c.Match = "regex" },
			wantMsg: "match",
		},
		{
			name:    "unknown index policy",
			mutate:  func(c *config.Config) { c.IndexPolicy = "sticky" },
			wantMsg: "index_policy",
		},
		{
			name:    "empty format name",
			mutate:  func(c *config.Config) { c.FormatName = "" },
			wantMsg: "format_name",
		},
		{
			name:    "unknown flavor",
			mutate:  func(c *config.Config) { c.Flavor = "wiki" },
			wantMsg: "flavor",
		},
		{
			name:    "inverted dropdown widths",
			mutate:  func(c *config.Config) { c.Dropdown.MinWidth, c.Dropdown.MaxWidth = 50, 10 },
			wantMsg: "dropdown widths",
		},
		{
			name:    "unknown color",
			mutate:  func(c *config.Config) { c.Color = "rainbow" },
			wantMsg: "color",
		},
		{
			name: "duplicate suggestion",
			mutate: func(c *config.Config) {
				c.Suggestions = []suggest.Item{{Value: "a"}, {Value: "a"}}
			},
			wantMsg: "repeated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, placeholder.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Match = "regex"
	cfg.Flavor = "wiki"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match")
	assert.Contains(t, err.Error(), "flavor")
}

func TestItems(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "vars.yml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - value: first_name\n"), 0o600))

	cfg := config.NewConfig()
	cfg.Catalog = path
	cfg.Suggestions = []suggest.Item{{Value: "company"}}

	items, err := cfg.Items()
	require.NoError(t, err)
	assert.Equal(t, []string{"first_name", "company"}, items.Values())

	cfg.Suggestions = []suggest.Item{{Value: "first_name"}}
	_, err = cfg.Items()
	require.ErrorIs(t, err, suggest.ErrInvalidCatalog)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	for _, format := range []string{config.TemplateYAML, config.TemplateTOML} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			data, err := config.GenerateTemplate(format)
			require.NoError(t, err)

			cfg, err := config.Parse("template."+format, data)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			defaults := config.NewConfig()
			assert.Equal(t, defaults.Delimiters, cfg.Delimiters)
			assert.Equal(t, defaults.Match, cfg.Match)
			assert.Equal(t, defaults.IndexPolicy, cfg.IndexPolicy)
			assert.Equal(t, defaults.Dropdown, cfg.Dropdown)
			assert.Equal(t, []string{"first_name"}, suggest.Catalog(cfg.Suggestions).Values())
		})
	}

	_, err := config.GenerateTemplate("ini")
	require.Error(t, err)
}
