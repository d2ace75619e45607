package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/varedit/internal/logging"
	"github.com/yaklabco/varedit/pkg/edit"
	"github.com/yaklabco/varedit/pkg/editor"
	"github.com/yaklabco/varedit/pkg/fsutil"
	"github.com/yaklabco/varedit/pkg/suggest"
)

// maxHints is the number of "did you mean" values offered.
const maxHints = 3

var (
	// ErrUnknownValue is returned when the value is not in the catalog.
	ErrUnknownValue = errors.New("unknown suggestion value")

	// ErrNoPlaceholder is returned when the caret is outside any placeholder.
	ErrNoPlaceholder = errors.New("caret is not inside a placeholder")
)

type completeFlags struct {
	configFlags
	caret int
	value string
	write bool
	diff  bool
}

func newCompleteCommand() *cobra.Command {
	flags := &completeFlags{}

	cmd := &cobra.Command{
		Use:   "complete --caret N --value V <file>",
		Short: "Complete the placeholder at a caret position",
		Long: `Accept a catalog value for the placeholder at the caret, the way an
editor does when a suggestion is chosen. An unterminated placeholder gets its
closing delimiter.

The result is printed unless --write or --diff is given. --write replaces
the file atomically and fails if the file changed in the meantime.

Examples:
  varedit complete --caret 8 --value first_name letter.txt
  varedit complete --caret 8 --value first_name --diff letter.txt
  varedit complete --caret 8 --value first_name --write letter.txt`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(cmd, args[0], flags)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().IntVar(&flags.caret, "caret", -1, "caret byte offset (default end of file)")
	cmd.Flags().StringVar(&flags.value, "value", "", "catalog value to insert")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff instead of the result")

	return cmd
}

func runComplete(cmd *cobra.Command, path string, flags *completeFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if flags.value == "" {
		return fmt.Errorf("%w: --value is required", ErrUsage)
	}

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	content, snap, err := fsutil.Read(ctx, path)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}
	original := string(content)

	buf := editor.NewBuffer(original)
	session, items, err := newSession(logger, cfg, buf)
	if err != nil {
		return err
	}
	defer session.Close()

	item, ok := items.Lookup(flags.value)
	if !ok {
		return unknownValueError(items, flags.value)
	}

	if flags.caret >= 0 {
		buf.SetCaret(flags.caret, 0)
	}
	if !session.Context().Active() {
		return fmt.Errorf("%w: offset %d", ErrNoPlaceholder, buf.Caret())
	}

	if err := session.Accept(item); err != nil {
		return fmt.Errorf("complete %s: %w", path, err)
	}
	result := session.Value()
	logger.Debug("completed placeholder",
		logging.FieldValue, item.Value,
		logging.FieldCaret, buf.Caret(),
		logging.FieldBytes, len(result)-len(original),
	)

	out := cmd.OutOrStdout()
	if flags.diff {
		styles := stylesFor(cfg, out)
		_, _ = fmt.Fprint(out, styles.ColorizeDiff(edit.Unified(path, original, result)))
	}

	if flags.write {
		if err := fsutil.WriteBack(ctx, snap, []byte(result)); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("completed placeholder", logging.FieldPath, path, logging.FieldValue, item.Value)
		return nil
	}

	if !flags.diff {
		_, _ = fmt.Fprint(out, result)
	}
	return nil
}

func unknownValueError(items suggest.Catalog, value string) error {
	hints := suggest.Closest(items, value, maxHints)
	if len(hints) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownValue, value)
	}
	return fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownValue, value, strings.Join(hints, ", "))
}
