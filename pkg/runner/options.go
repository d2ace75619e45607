// Package runner scans many template files for placeholders concurrently.
package runner

import "github.com/yaklabco/varedit/pkg/placeholder"

// Options controls a multi-file scan.
type Options struct {
	// Paths are files or directories to scan. Defaults to the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and glob patterns.
	// Defaults to the process working directory.
	WorkingDir string

	// Extensions selects the files picked up while walking directories
	// (lowercase, with leading dot). Files named explicitly are always scanned.
	// Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files and directories, relative to WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks walks into symlinked directories.
	FollowSymlinks bool

	// Jobs is the number of concurrent workers. 0 or negative means NumCPU.
	Jobs int

	// Delimiters mark the placeholders to find.
	Delimiters placeholder.Delimiters
}

// DefaultExtensions returns the template file extensions scanned by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".txt", ".html", ".htm", ".tmpl", ".tpl"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
