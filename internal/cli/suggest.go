package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/varedit/internal/logging"
	"github.com/yaklabco/varedit/internal/ui/pretty"
	"github.com/yaklabco/varedit/pkg/caret"
	"github.com/yaklabco/varedit/pkg/config"
	"github.com/yaklabco/varedit/pkg/editor"
	"github.com/yaklabco/varedit/pkg/reporter"
	"github.com/yaklabco/varedit/pkg/suggest"
)

// suggestOutput is the JSON output of suggest.
type suggestOutput struct {
	Context  caret.Context  `json:"context"`
	Items    []suggest.Item `json:"items"`
	Selected int            `json:"selected"`
}

type suggestFlags struct {
	configFlags
	caret int
}

func newSuggestCommand() *cobra.Command {
	flags := &suggestFlags{}

	cmd := &cobra.Command{
		Use:   "suggest --caret N <file>",
		Short: "Show the suggestions for a caret position",
		Long: `Resolve the placeholder context at a byte offset and print the
suggestion dropdown an editor would open there.

The dropdown is placed below the caret and kept within the terminal.

Examples:
  varedit suggest --caret 8 letter.txt
  varedit suggest --caret 8 --catalog vars.yml --match fuzzy letter.txt`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args[0], flags)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().IntVar(&flags.caret, "caret", -1, "caret byte offset (default end of file)")

	return cmd
}

func runSuggest(cmd *cobra.Command, path string, flags *suggestFlags) error {
	logger := logging.FromContext(cmd.Context())

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	buf := editor.NewBuffer(string(content))
	session, _, err := newSession(logger, cfg, buf)
	if err != nil {
		return err
	}
	defer session.Close()

	if flags.caret >= 0 {
		buf.SetCaret(flags.caret, 0)
	}

	out := cmd.OutOrStdout()
	view := session.Dropdown(viewportSize(out))
	logger.Debug("resolved caret",
		logging.FieldCaret, view.Context.Caret,
		logging.FieldState, view.Context.State,
		logging.FieldQuery, view.Context.Query,
	)

	if cfg.Format == config.FormatJSON {
		result := suggestOutput{Context: view.Context, Items: view.Items, Selected: view.Selected}
		if result.Items == nil {
			result.Items = []suggest.Item{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}

	writeSuggestText(out, stylesFor(cfg, out), path, buf.Text(), view)
	return nil
}

func writeSuggestText(out io.Writer, styles *pretty.Styles, path, text string, view editor.View) {
	ctx := view.Context
	idx := reporter.NewLineIndex(text)
	line, col := idx.Position(ctx.Caret)
	source, start := idx.Line(line)

	_, _ = fmt.Fprintf(out, "%s  %s", styles.FormatLocation(path, line, col), ctx.State)
	if ctx.Active() {
		_, _ = fmt.Fprintf(out, " %q", ctx.Query)
	}
	_, _ = fmt.Fprintln(out)

	_, _ = fmt.Fprintln(out, styles.SourceLine.Render(source))
	_, _ = fmt.Fprintln(out, styles.FormatCaret(source, ctx.Caret-start))

	switch {
	case !ctx.Active():
		_, _ = fmt.Fprintln(out, styles.Dim.Render("caret is not inside a placeholder"))
	case !view.Open:
		_, _ = fmt.Fprintln(out, styles.Dim.Render("no matching suggestions"))
	default:
		list := styles.RenderDropdown(view.Items, view.Selected, view.Size)
		_, _ = fmt.Fprintln(out, pretty.Indent(list, view.Position.Left))
	}
}
