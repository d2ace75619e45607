package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/varedit/pkg/fsutil"
	"github.com/yaklabco/varedit/pkg/placeholder"
	"github.com/yaklabco/varedit/pkg/suggest"
)

// Exit codes for varedit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates the command ran but could not do what was asked.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration or catalog errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, placeholder.ErrInvalidConfiguration), errors.Is(err, suggest.ErrInvalidCatalog):
		return ExitConfigError
	case errors.As(err, &pathErr), errors.Is(err, fsutil.ErrModified), errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitFailure
	}
}
