package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/varedit/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	Format config.OutputFormat

	// Color controls colorized output: "auto", "always" or "never".
	Color string

	// ShowContext prints the highlighted source line under its placeholders.
	ShowContext bool

	// ShowSummary prints aggregate counts after the files.
	ShowSummary bool

	// WorkingDir makes paths inside it relative. Empty keeps paths as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.FormatText,
		Color:       string(config.ColorAuto),
		ShowContext: true,
		ShowSummary: true,
	}
}
