package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/varedit/pkg/runner"
)

// makeTree creates files (slash-separated, relative to dir) with content.
func makeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func relPaths(t *testing.T, dir string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"letter.txt":          "",
		"docs/guide.md":       "",
		"docs/page.html":      "",
		"src/main.go":         "",
		".hidden.md":          "",
		".git/config.md":      "",
		"vendor/pkg/doc.md":   "",
		"templates/mail.tmpl": "",
		"data.json":           "",
	})

	tests := []struct {
		name    string
		opts    runner.Options
		want    []string
		wantErr bool
	}{
		{
			name: "walks default extensions",
			opts: runner.Options{},
			want: []string{"docs/guide.md", "docs/page.html", "letter.txt", "templates/mail.tmpl", "vendor/pkg/doc.md"},
		},
		{
			name: "excludes globs",
			opts: runner.Options{ExcludeGlobs: []string{"vendor/**", "*.html"}},
			want: []string{"docs/guide.md", "letter.txt", "templates/mail.tmpl"},
		},
		{
			name: "custom extensions",
			opts: runner.Options{Extensions: []string{".go"}},
			want: []string{"src/main.go"},
		},
		{
			name: "explicit file bypasses extensions",
			opts: runner.Options{Paths: []string{"data.json", "docs"}},
			want: []string{"data.json", "docs/guide.md", "docs/page.html"},
		},
		{
			name: "duplicates collapse",
			opts: runner.Options{Paths: []string{"docs", "docs/guide.md"}},
			want: []string{"docs/guide.md", "docs/page.html"},
		},
		{
			name: "double star prefix",
			opts: runner.Options{Paths: []string{"docs", "vendor"}, ExcludeGlobs: []string{"**/doc.md"}},
			want: []string{"docs/guide.md", "docs/page.html"},
		},
		{
			name:    "missing path",
			opts:    runner.Options{Paths: []string{"nope"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts
			opts.WorkingDir = dir

			files, err := runner.Discover(context.Background(), opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, relPaths(t, dir, files))
		})
	}
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}
