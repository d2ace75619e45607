// Package langdetect guesses the info string for fenced code blocks that
// arrive without one, such as code pasted into a rich-text editor.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates limits the enry classifier to languages that commonly
// show up in templated documents.
//
//nolint:gochecknoglobals // read-only lookup table
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Ruby",
	"SQL", "JSON", "YAML", "HTML", "CSS", "Markdown",
}

// fenceAliases maps enry language names to conventional fence tags.
//
//nolint:gochecknoglobals // read-only lookup table
var fenceAliases = map[string]string{
	"Shell":      "bash",
	"JavaScript": "js",
	"TypeScript": "ts",
}

type hint struct {
	tag   string
	match func(code, trimmed string) bool
}

// hints run before the classifier; the first match wins.
//
//nolint:gochecknoglobals // read-only lookup table
var hints = []hint{
	{"go", func(_, trimmed string) bool {
		return strings.HasPrefix(trimmed, "package ")
	}},
	{"html", func(_, trimmed string) bool {
		lower := strings.ToLower(trimmed)
		return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
	}},
	{"json", func(_, trimmed string) bool {
		return (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
			strings.Contains(trimmed, `"`) && !strings.Contains(trimmed, "{{")
	}},
	{"sql", func(_, trimmed string) bool {
		upper := strings.ToUpper(trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"python", func(code, _ string) bool {
		return (strings.Contains(code, "def ") && strings.Contains(code, "):")) ||
			strings.Contains(code, "__name__")
	}},
	{"yaml", func(code, _ string) bool {
		return yamlKeys(code) >= 2
	}},
}

// FenceTag returns a fence info string for code, or "" when the language
// cannot be told with confidence.
func FenceTag(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang([]byte(code)); safe {
		return fenceName(lang)
	}

	for _, h := range hints {
		if h.match(code, trimmed) {
			return h.tag
		}
	}

	if lang, safe := enry.GetLanguageByClassifier([]byte(code), classifierCandidates); safe && lang != "" {
		return fenceName(lang)
	}

	return ""
}

func fenceName(lang string) string {
	if alias, ok := fenceAliases[lang]; ok {
		return alias
	}
	return strings.ToLower(lang)
}

// yamlKeys counts lines shaped like "key: value" or "- item".
func yamlKeys(code string) int {
	n := 0
	for line := range strings.Lines(code) {
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, "- "):
			n++
		case strings.Contains(line, ": ") && !strings.ContainsAny(line, "({\""):
			n++
		}
	}
	return n
}
