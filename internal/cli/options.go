package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/varedit/internal/configloader"
	"github.com/yaklabco/varedit/internal/logging"
	"github.com/yaklabco/varedit/internal/ui/pretty"
	"github.com/yaklabco/varedit/pkg/config"
	"github.com/yaklabco/varedit/pkg/editor"
	"github.com/yaklabco/varedit/pkg/suggest"
)

// fallbackViewport is used when stdout is not a terminal.
//
//nolint:gochecknoglobals // Immutable default viewport
var fallbackViewport = editor.Size{Width: 80, Height: 24}

// configFlags are the config overrides shared by the editing commands.
type configFlags struct {
	open    string
	closing string
	catalog string
	match   string
	format  string
}

func (f *configFlags) register(cmd *cobra.Command, withFormat bool) {
	cmd.Flags().StringVar(&f.open, "open", "", "opening delimiter (default \"{{\")")
	cmd.Flags().StringVar(&f.closing, "close", "", "closing delimiter (default \"}}\")")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "suggestion catalog file (YAML, TOML or JSON)")
	cmd.Flags().StringVar(&f.match, "match", "", "suggestion matcher: substring, fuzzy")
	if withFormat {
		cmd.Flags().StringVar(&f.format, "format", "text", "output format: text, json")
	}
}

// cliConfig builds the flag layer. Unset flags stay zero so lower layers win.
func (f *configFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{
		Catalog: f.catalog,
		Match:   suggest.MatchMode(f.match),
	}
	cfg.Delimiters.Open = f.open
	cfg.Delimiters.Close = f.closing
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}

	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cfg.Color = config.ColorMode(color)
	}

	return cfg, nil
}

// loadConfig resolves the configuration for cmd from every layer.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	isolated, err := cmd.Flags().GetBool("isolated")
	if err != nil {
		return nil, fmt.Errorf("get isolated flag: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath:        configPath,
		IgnoreUserConfig:    isolated,
		IgnoreProjectConfig: isolated,
		IgnoreEnv:           isolated,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	logger.Debug("configuration loaded",
		logging.FieldPaths, result.LoadedFrom,
		logging.FieldDelimiters, result.Config.Delimiters.String(),
		logging.FieldMatch, result.Config.Match,
	)

	return result.Config, nil
}

// newSession opens a Session over text with the resolved configuration.
func newSession(logger *log.Logger, cfg *config.Config, buf *editor.Buffer) (*editor.Session, suggest.Catalog, error) {
	items, err := cfg.Items()
	if err != nil {
		return nil, nil, fmt.Errorf("load suggestions: %w", err)
	}
	logger.Debug("suggestions loaded", logging.FieldCatalog, cfg.Catalog, logging.FieldItems, len(items))

	limits := editor.CellLimits()
	limits.MaxHeight = cfg.Dropdown.MaxHeight
	limits.MinWidth = cfg.Dropdown.MinWidth
	limits.MaxWidth = cfg.Dropdown.MaxWidth

	session, err := editor.NewSession(buf,
		editor.WithDelimiters(cfg.Delimiters),
		editor.WithCatalog(items),
		editor.WithMatcher(suggest.NewMatcher(cfg.Match)),
		editor.WithIndexPolicy(cfg.IndexPolicy),
		editor.WithFormatName(cfg.FormatName),
		editor.WithDropdown(limits),
		editor.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("start session: %w", err)
	}
	return session, items, nil
}

func stylesFor(cfg *config.Config, w io.Writer) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), w))
}

// viewportSize returns the terminal size of w in cells.
func viewportSize(w io.Writer) editor.Size {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackViewport
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return fallbackViewport
	}
	return editor.Size{Width: width, Height: height}
}
