// Package ini provides an INI export handler for biosedit.
package ini

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/setting"
	"gopkg.in/ini.v1"
)

// Handler implements format.Handler for INI files.
type Handler struct{}

// New creates a new INI handler.
func New() *Handler {
	return &Handler{}
}

// Export writes one section per setting, named by its key string
// ("question||token||offset"). Settings without a complete key are named
// by their question alone; a repeated name gets a "#n" suffix.
//
// Keys: question, help, token, offset, width, default, option.N, active, value.
func (h *Handler) Export(settings []*setting.Setting, opts format.ExportOptions) ([]byte, error) {
	cfg := ini.Empty()

	seen := make(map[string]int)
	for _, s := range settings {
		name := s.SetupQuestion
		if k := s.Key(); k.Valid() {
			name = k.String()
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s#%d", name, n)
		}

		section, err := cfg.NewSection(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create section %q: %w", name, err)
		}

		keys := [][2]string{
			{"question", s.SetupQuestion},
			{"help", s.HelpString},
			{"token", s.Token},
			{"offset", s.Offset},
			{"width", s.Width},
		}
		if s.BIOSDefault != nil {
			keys = append(keys, [2]string{"default", *s.BIOSDefault})
		}
		for i, opt := range s.Options {
			keys = append(keys, [2]string{"option." + strconv.Itoa(i), opt})
		}
		if len(s.Options) > 0 && s.HasActive() {
			keys = append(keys, [2]string{"active", strconv.Itoa(s.ActiveOption)})
		}
		if s.Value != nil {
			keys = append(keys, [2]string{"value", *s.Value})
		}

		for _, kv := range keys {
			if _, err := section.NewKey(kv[0], kv[1]); err != nil {
				return nil, fmt.Errorf("failed to create key %q: %w", kv[0], err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize INI: %w", err)
	}

	return buf.Bytes(), nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
