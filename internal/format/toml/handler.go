// Package toml provides a TOML export handler for biosedit.
package toml

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/setting"
)

// Handler implements format.Handler for TOML.
type Handler struct{}

// New creates a new TOML handler.
func New() *Handler {
	return &Handler{}
}

// tomlDocument is the exported layout: one [[setting]] table per setting.
type tomlDocument struct {
	Settings []tomlSetting `toml:"setting,omitempty"`
}

type tomlSetting struct {
	SetupQuestion string   `toml:"setup_question"`
	HelpString    string   `toml:"help_string"`
	Token         string   `toml:"token"`
	Offset        string   `toml:"offset"`
	Width         string   `toml:"width"`
	BIOSDefault   *string  `toml:"bios_default,omitempty"`
	Options       []string `toml:"options,omitempty"`
	ActiveOption  *int     `toml:"active_option,omitempty"`
	Value         *string  `toml:"value,omitempty"`
}

// Export writes settings as an array of tables.
// Fields keep declaration order; BurntSushi/toml only sorts map keys.
func (h *Handler) Export(settings []*setting.Setting, opts format.ExportOptions) ([]byte, error) {
	doc := tomlDocument{Settings: make([]tomlSetting, 0, len(settings))}
	for _, s := range settings {
		ts := tomlSetting{
			SetupQuestion: s.SetupQuestion,
			HelpString:    s.HelpString,
			Token:         s.Token,
			Offset:        s.Offset,
			Width:         s.Width,
			BIOSDefault:   s.BIOSDefault,
			Value:         s.Value,
		}
		if len(s.Options) > 0 {
			ts.Options = s.Options
			if s.HasActive() {
				active := s.ActiveOption
				ts.ActiveOption = &active
			}
		}
		doc.Settings = append(doc.Settings, ts)
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if opts.Indent != "" {
		encoder.Indent = opts.Indent
	}
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to serialize TOML: %w", err)
	}

	return buf.Bytes(), nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
