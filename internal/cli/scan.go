package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/varedit/internal/logging"
	"github.com/yaklabco/varedit/pkg/reporter"
	"github.com/yaklabco/varedit/pkg/runner"
)

type scanFlags struct {
	configFlags
	exclude    []string
	extensions []string
	jobs       int
	noContext  bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "List the placeholders in template files",
		Long: `List every placeholder in the given files and directories.

Directories are walked recursively for template files (.md, .txt, .html,
.tmpl and similar); hidden entries are skipped. Text output shows each
source line with its placeholders highlighted. JSON output lists byte
offsets and 1-based line and column numbers.

Examples:
  varedit scan letter.txt
  varedit scan --format json templates/
  varedit scan --exclude 'vendor/**' --ext .md .
  varedit scan --open '${' --close '}' config.tmpl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "file extensions to scan in directories")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "concurrent workers (default number of CPUs)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "do not print source lines")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	result, err := runner.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   flags.extensions,
		ExcludeGlobs: flags.exclude,
		Jobs:         flags.jobs,
		Delimiters:   cfg.Delimiters,
	})
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	logger.Debug("scan finished",
		logging.FieldFiles, len(result.Files),
		logging.FieldPlaceholders, result.Stats.PlaceholdersTotal,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      cfg.Format,
		Color:       string(cfg.Color),
		ShowContext: !flags.noContext,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	var errs []error
	for _, file := range result.Files {
		if file.Error != nil {
			errs = append(errs, file.Error)
		}
	}
	return errors.Join(errs...)
}
