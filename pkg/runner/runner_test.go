package runner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/varedit/pkg/placeholder"
	"github.com/yaklabco/varedit/pkg/runner"
)

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"a.md":     "Hi {{first_name}} and {{ last_name }}",
		"b.txt":    "Dear {{first_name}}, {{}}",
		"c.html":   "<p>no variables</p>",
		"sub/d.md": "{{city}}",
	})

	for _, jobs := range []int{1, 4} {
		result, err := runner.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: jobs})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.md", "b.txt", "c.html", "sub/d.md"}, relPaths(t, dir, paths(result)))
		assert.Equal(t, runner.Stats{
			FilesDiscovered:        4,
			FilesScanned:           4,
			FilesWithPlaceholders:  3,
			PlaceholdersTotal:      5,
			PlaceholdersEmptyNamed: 1,
		}, result.Stats)
		assert.Equal(t, []string{"city", "first_name", "last_name"}, result.Names())
		assert.False(t, result.HasErrors())

		first := result.Files[0]
		require.Len(t, first.Spans, 2)
		assert.Equal(t, "{{first_name}}", first.Content[first.Spans[0].Start:first.Spans[0].End])
	}
}

func TestRun_CustomDelimiters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.tmpl": "${name} {{ignored}}"})

	result, err := runner.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Delimiters: placeholder.Delimiters{Open: "${", Close: "}"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, result.Names())
}

func TestRun_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := runner.Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Empty(t, result.Names())
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.md": "{{x}}"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func paths(result *runner.Result) []string {
	out := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		out = append(out, f.Path)
	}
	return out
}
