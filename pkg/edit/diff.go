package edit

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified renders a unified diff between original and modified for path.
// Returns an empty string when the two are equal.
func Unified(path, original, modified string) string {
	if original == modified {
		return ""
	}

	edits := myers.ComputeEdits(span.URIFromPath(path), original, modified)
	unified := gotextdiff.ToUnified("a/"+path, "b/"+path, original, edits)

	return fmt.Sprint(unified)
}
