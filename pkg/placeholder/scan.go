package placeholder

import (
	"regexp"
	"strings"
)

// Span is one placeholder occurrence. Start and End are half-open byte
// offsets covering both delimiters; Inner is the text strictly between them.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Inner string `json:"inner"`
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset lies within [Start, End).
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Scanner finds placeholders for a fixed delimiter pair.
// The zero value is not usable; create one with NewScanner.
type Scanner struct {
	delims  Delimiters
	pattern *regexp.Regexp
}

// NewScanner compiles a matcher for delims.
func NewScanner(delims Delimiters) (*Scanner, error) {
	if err := delims.Validate(); err != nil {
		return nil, err
	}

	// Lazy match: the first closing delimiter after an opening one ends the span.
	expr := regexp.QuoteMeta(delims.Open) + `(.*?)` + regexp.QuoteMeta(delims.Close)

	return &Scanner{
		delims:  delims,
		pattern: regexp.MustCompile(expr),
	}, nil
}

// Delimiters returns the pair this scanner matches.
func (s *Scanner) Delimiters() Delimiters {
	return s.delims
}

// Scan returns all placeholders in text, sorted by Start and non-overlapping.
// The result is never nil.
func (s *Scanner) Scan(text string) []Span {
	matches := s.pattern.FindAllStringSubmatchIndex(text, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{
			Start: m[0],
			End:   m[1],
			Inner: text[m[2]:m[3]],
		})
	}
	return spans
}

// Scan is a convenience wrapper that builds a Scanner for delims and scans text.
// Invalid delimiters yield no spans.
func Scan(text string, delims Delimiters) []Span {
	scanner, err := NewScanner(delims)
	if err != nil {
		return []Span{}
	}
	return scanner.Scan(text)
}

// Names returns the unique, whitespace-trimmed inner names found in text,
// in order of first occurrence. Empty placeholders are skipped.
func Names(text string, delims Delimiters) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, span := range Scan(text, delims) {
		name := strings.TrimSpace(span.Inner)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// InnerRange returns the half-open byte range of the inner text, given the
// delimiters the span was scanned with.
func (s Span) InnerRange(delims Delimiters) (int, int) {
	return s.Start + len(delims.Open), s.End - len(delims.Close)
}
