package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/varedit/internal/ui/pretty"
	"github.com/yaklabco/varedit/pkg/runner"
)

// contextIndent is the indentation of source lines under their placeholders.
const contextIndent = 4

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to scan."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path),
				r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)))
			continue
		}
		total += r.reportFile(path, file)
	}

	if r.opts.ShowSummary {
		stats := result.Stats
		fmt.Fprintln(r.bw, r.styles.Dim.Render(fmt.Sprintf("%d placeholders (%d names) in %d of %d files",
			stats.PlaceholdersTotal, len(result.Names()), stats.FilesWithPlaceholders, stats.FilesScanned)))
	}

	return total, nil
}

// reportFile prints each placeholder's location and name, followed by its
// highlighted source line once per line.
func (r *TextReporter) reportFile(path string, file runner.FileOutcome) int {
	idx := NewLineIndex(file.Content)

	for i, span := range file.Spans {
		line, col := idx.Position(span.Start)
		name := strings.TrimSpace(span.Inner)
		if name == "" {
			name = r.styles.Dim.Render("(empty)")
		}
		fmt.Fprintf(r.bw, "%s  %s\n", r.styles.FormatLocation(path, line, col), name)

		if !r.opts.ShowContext {
			continue
		}
		if i+1 < len(file.Spans) {
			if next, _ := idx.Position(file.Spans[i+1].Start); next == line {
				continue
			}
		}
		text, start := idx.Line(line)
		fmt.Fprintln(r.bw, pretty.Indent(r.styles.HighlightLine(text, start, file.Spans), contextIndent))
	}

	return len(file.Spans)
}
