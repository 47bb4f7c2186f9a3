// Package json provides a JSON export handler for biosedit.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/setting"
)

// Handler implements format.Handler for JSON.
type Handler struct{}

// New creates a new JSON handler.
func New() *Handler {
	return &Handler{}
}

// Export writes settings as a JSON array of objects.
// Object keys keep a fixed order (see format.Record).
func (h *Handler) Export(settings []*setting.Setting, opts format.ExportOptions) ([]byte, error) {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}

	records := make([]*orderedmap.OrderedMap, len(settings))
	for i, s := range settings {
		records[i] = format.Record(s)
	}

	data, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize JSON: %w", err)
	}
	// Add trailing newline
	return append(data, '\n'), nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
