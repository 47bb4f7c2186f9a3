// Package format provides interfaces and implementations for exporting settings in other formats.
package format

import "github.com/thirteen37/biosedit/internal/setting"

// ExportOptions configures export behavior.
type ExportOptions struct {
	Indent  string // Indentation string (e.g., "  " or "\t")
	Verbose bool   // Include content lines (plaintext only)
}

// Handler defines the interface for export format handlers.
type Handler interface {
	// Export renders settings in order.
	Export(settings []*setting.Setting, opts ExportOptions) ([]byte, error)
}
