package export

import (
	"encoding/json"
	"io"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// WriteJSON writes the tree as indented JSON.
func WriteJSON(w io.Writer, tree *rendering.RenderedTree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tree); err != nil {
		return &ExportError{Format: FormatJSON, Message: "failed to encode tree", Cause: err}
	}
	return nil
}
