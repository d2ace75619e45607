package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/varedit/internal/logging"
	"github.com/yaklabco/varedit/pkg/config"
	"github.com/yaklabco/varedit/pkg/markdown"
)

const (
	renderToHTML     = "html"
	renderToMarkdown = "markdown"
)

type renderFlags struct {
	configFlags
	to     string
	flavor string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [--to html|markdown] <file>",
		Short: "Convert template markdown to HTML and back",
		Long: `Convert between markdown and HTML while keeping placeholders intact.

Markdown placeholders become <span class="template-variable"> elements and
such spans turn back into placeholders. Use "-" to read standard input.

Examples:
  varedit render letter.md
  varedit render --flavor gfm letter.md
  varedit render --to markdown letter.html`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVar(&flags.to, "to", renderToHTML, "output: html, markdown")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "markdown flavor: commonmark, gfm")

	return cmd
}

func runRender(cmd *cobra.Command, path string, flags *renderFlags) error {
	logger := logging.FromContext(cmd.Context())

	if flags.to != renderToHTML && flags.to != renderToMarkdown {
		return fmt.Errorf("%w: --to must be %s or %s, got %q", ErrUsage, renderToHTML, renderToMarkdown, flags.to)
	}

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}
	cliCfg.Flavor = config.Flavor(flags.flavor)
	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	src, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	conv, err := markdown.New(
		markdown.WithFlavor(string(cfg.Flavor)),
		markdown.WithDelimiters(cfg.Delimiters),
		markdown.WithClassName(cfg.FormatName),
	)
	if err != nil {
		return fmt.Errorf("create converter: %w", err)
	}

	var rendered string
	if flags.to == renderToHTML {
		rendered, err = conv.ToHTML(src)
	} else {
		rendered, err = conv.FromHTML(src)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	logger.Debug("rendered", logging.FieldPath, path, logging.FieldFlavor, conv.Flavor(), logging.FieldBytes, len(rendered))

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprint(out, rendered)
	if !strings.HasSuffix(rendered, "\n") {
		_, _ = fmt.Fprintln(out)
	}
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(content), nil
}
