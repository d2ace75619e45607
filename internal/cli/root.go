// Package cli provides the Cobra command structure for varedit.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/varedit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root varedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var isolated bool

	rootCmd := &cobra.Command{
		Use:   "varedit",
		Short: "Find, suggest and complete {{placeholder}} variables in templates",
		Long: `varedit works with template text that contains {{placeholder}} variables.

It lists the placeholders in a file, shows the suggestion dropdown an editor
would open at a caret position, completes a placeholder with a catalog value,
and converts template markdown to HTML and back without breaking variables.
Delimiters, the suggestion catalog and the matcher are configurable.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&isolated, "isolated", false,
		"ignore discovered config files and VAREDIT_* variables")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newSuggestCommand())
	rootCmd.AddCommand(newCompleteCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// ErrUsage marks errors caused by invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// exactArgs is cobra.ExactArgs with errors that map to ExitInvalidUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
