// Package plaintext provides a human-readable export handler for biosedit.
package plaintext

import (
	"strings"

	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/setting"
)

// Handler implements format.Handler as a detail listing, one block per
// setting separated by blank lines.
type Handler struct{}

// New creates a new plaintext handler.
func New() *Handler {
	return &Handler{}
}

// Export writes a detail block per setting:
//
//	Setup Question: Above 4G Decoding
//	Help String: Enables or Disables 64bit capable Devices
//	Token: 0E
//	Offset: 0B8D
//	Width: 01
//	BIOS Default: [00]Disabled
//	Options:
//	  (*) [01]Enabled
//	  ( ) [00]Disabled
func (h *Handler) Export(settings []*setting.Setting, opts format.ExportOptions) ([]byte, error) {
	var sb strings.Builder
	for i, s := range settings {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeDetails(&sb, s, opts)
	}
	return []byte(sb.String()), nil
}

// Details renders the detail block of a single setting.
func Details(s *setting.Setting, opts format.ExportOptions) string {
	var sb strings.Builder
	writeDetails(&sb, s, opts)
	return sb.String()
}

func writeDetails(sb *strings.Builder, s *setting.Setting, opts format.ExportOptions) {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}

	sb.WriteString("Setup Question: " + s.SetupQuestion + "\n")
	sb.WriteString("Help String: " + s.HelpString + "\n")
	sb.WriteString("Token: " + s.Token + "\n")
	sb.WriteString("Offset: " + s.Offset + "\n")
	sb.WriteString("Width: " + s.Width + "\n")
	if s.BIOSDefault != nil {
		sb.WriteString("BIOS Default: " + *s.BIOSDefault + "\n")
	}
	if s.Value != nil && *s.Value != "" {
		sb.WriteString("Value: " + *s.Value + "\n")
	}

	if len(s.Options) > 0 {
		sb.WriteString("Options:\n")
		for i, opt := range s.Options {
			mark := "( )"
			if i == s.ActiveOption {
				mark = "(*)"
			}
			sb.WriteString(indent + mark + " " + opt + "\n")
		}
	}

	if opts.Verbose && len(s.Content) > 0 {
		sb.WriteString("Content:\n")
		for _, line := range s.Content {
			sb.WriteString(indent + line + "\n")
		}
	}
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
