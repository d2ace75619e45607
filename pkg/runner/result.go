package runner

import (
	"sort"
	"strings"

	"github.com/yaklabco/varedit/pkg/placeholder"
)

// FileOutcome is the scan result for one file.
type FileOutcome struct {
	Path string

	// Content is the text the spans index into.
	Content string

	Spans []placeholder.Span

	// Error is set when the file could not be read.
	Error error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered        int
	FilesScanned           int
	FilesErrored           int
	FilesWithPlaceholders  int
	PlaceholdersTotal      int
	PlaceholdersEmptyNamed int
}

// Result is the outcome of Run.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome
	Stats Stats
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesScanned++
	r.Stats.PlaceholdersTotal += len(outcome.Spans)
	if len(outcome.Spans) > 0 {
		r.Stats.FilesWithPlaceholders++
	}
	for _, span := range outcome.Spans {
		if strings.TrimSpace(span.Inner) == "" {
			r.Stats.PlaceholdersEmptyNamed++
		}
	}
}

// Names returns every distinct non-empty placeholder name, sorted.
func (r *Result) Names() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, file := range r.Files {
		for _, span := range file.Spans {
			if name := strings.TrimSpace(span.Inner); name != "" {
				seen[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasErrors reports whether any file failed to scan.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}
