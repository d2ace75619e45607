package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yaklabco/varedit/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Files   []JSONFile  `json:"files"`
	Names   []string    `json:"names"`
	Summary JSONSummary `json:"summary"`
}

// JSONFile holds the placeholders of one file.
type JSONFile struct {
	Path         string            `json:"path"`
	Placeholders []JSONPlaceholder `json:"placeholders"`
	Error        string            `json:"error,omitempty"`
}

// JSONPlaceholder is one placeholder with byte offsets and 1-based position.
type JSONPlaceholder struct {
	Name   string `json:"name"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesScanned          int `json:"filesScanned"`
	FilesWithPlaceholders int `json:"filesWithPlaceholders"`
	FilesErrored          int `json:"filesErrored"`
	Placeholders          int `json:"placeholders"`
	EmptyPlaceholders     int `json:"emptyPlaceholders"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := JSONOutput{Files: []JSONFile{}, Names: []string{}}
	if result != nil {
		output.Names = append(output.Names, result.Names()...)
		output.Summary = JSONSummary{
			FilesScanned:          result.Stats.FilesScanned,
			FilesWithPlaceholders: result.Stats.FilesWithPlaceholders,
			FilesErrored:          result.Stats.FilesErrored,
			Placeholders:          result.Stats.PlaceholdersTotal,
			EmptyPlaceholders:     result.Stats.PlaceholdersEmptyNamed,
		}
		for _, file := range result.Files {
			output.Files = append(output.Files, r.convertFile(file))
		}
	}

	enc := json.NewEncoder(r.bw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return 0, fmt.Errorf("encode json: %w", err)
	}
	return output.Summary.Placeholders, nil
}

func (r *JSONReporter) convertFile(file runner.FileOutcome) JSONFile {
	out := JSONFile{
		Path:         displayPath(file.Path, r.opts.WorkingDir),
		Placeholders: make([]JSONPlaceholder, 0, len(file.Spans)),
	}
	if file.Error != nil {
		out.Error = file.Error.Error()
		return out
	}

	idx := NewLineIndex(file.Content)
	for _, span := range file.Spans {
		line, col := idx.Position(span.Start)
		out.Placeholders = append(out.Placeholders, JSONPlaceholder{
			Name:   strings.TrimSpace(span.Inner),
			Start:  span.Start,
			End:    span.End,
			Line:   line,
			Column: col,
		})
	}
	return out
}
