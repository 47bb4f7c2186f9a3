// Package config provides edit file handling for biosedit.
//
// An edit file is a batch of changes to apply to a dump, written as TOML
// (the default) or JSON (".json" extension):
//
//	[[edit]]
//	question = "Above 4G Decoding"
//	token = "0E"
//	offset = "0B8D"
//	select = "Enabled"
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/thirteen37/biosedit/internal/setting"
)

// EditConfig represents an edit file.
type EditConfig struct {
	// Edits are applied in order.
	Edits []Edit `json:"edits" toml:"edit"`
}

// Edit is one change to one setting. Exactly one of Option, Select and
// Value must be set.
type Edit struct {
	Question string `json:"question" toml:"question"`
	Token    string `json:"token" toml:"token"`
	Offset   string `json:"offset" toml:"offset"`

	// Option is the index of the option to activate.
	Option *int `json:"option,omitempty" toml:"option,omitempty"`
	// Select activates an option by text or label.
	Select string `json:"select,omitempty" toml:"select,omitempty"`
	// Value replaces the free-form value.
	Value *string `json:"value,omitempty" toml:"value,omitempty"`
}

// NewEdit returns an edit addressed at k.
func NewEdit(k setting.Key) Edit {
	return Edit{Question: k.Question, Token: k.Token, Offset: k.Offset}
}

// Key returns the identity of the edited setting.
func (e Edit) Key() setting.Key {
	return setting.Key{
		Question: strings.TrimSpace(e.Question),
		Token:    strings.TrimSpace(e.Token),
		Offset:   strings.TrimSpace(e.Offset),
	}
}

// Validate checks that the edit names a setting and exactly one change.
func (e Edit) Validate() error {
	if !e.Key().Valid() {
		return fmt.Errorf("edit %q: question, token and offset are required", e.Question)
	}
	n := 0
	if e.Option != nil {
		n++
	}
	if e.Select != "" {
		n++
	}
	if e.Value != nil {
		n++
	}
	if n != 1 {
		return fmt.Errorf("edit %q: exactly one of option, select and value must be set", e.Question)
	}
	if e.Value != nil {
		if err := setting.ValidValue(*e.Value); err != nil {
			return fmt.Errorf("edit %q: %w", e.Question, err)
		}
	}
	return nil
}

// Apply validates the edit and performs it on s.
func (e Edit) Apply(s *setting.Setting) error {
	if err := e.Validate(); err != nil {
		return err
	}
	switch {
	case e.Option != nil:
		return s.SetActiveOption(*e.Option)
	case e.Select != "":
		return s.SelectOption(e.Select)
	case e.Value != nil:
		s.SetValue(*e.Value)
		return nil
	}
	return fmt.Errorf("edit %q: nothing to change", e.Question)
}

// Change describes the change in words, e.g. `option 1` or `value "7"`.
func (e Edit) Change() string {
	switch {
	case e.Option != nil:
		return fmt.Sprintf("option %d", *e.Option)
	case e.Select != "":
		return fmt.Sprintf("select %q", e.Select)
	case e.Value != nil:
		return fmt.Sprintf("value %q", *e.Value)
	}
	return "none"
}

// Snapshot records the current choice of each setting as an edit.
// Settings without a valid key or without a choice are skipped.
func Snapshot(settings []*setting.Setting) *EditConfig {
	cfg := &EditConfig{}
	for _, s := range settings {
		k := s.Key()
		if !k.Valid() {
			continue
		}
		e := NewEdit(k)
		switch {
		case s.HasActive():
			e.Select = s.Options[s.ActiveOption]
		case len(s.Options) == 0 && s.Value != nil:
			v := *s.Value
			e.Value = &v
		default:
			continue
		}
		cfg.Edits = append(cfg.Edits, e)
	}
	return cfg
}

// isJSON reports whether filename selects the JSON encoding.
func isJSON(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".json")
}

// Load reads an EditConfig from a file.
func Load(filename string) (*EditConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read edit file: %w", err)
	}

	var cfg EditConfig
	if isJSON(filename) {
		err = json.Unmarshal(data, &cfg)
	} else {
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse edit file: %w", err)
	}

	for _, e := range cfg.Edits {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}

	return &cfg, nil
}

// Save writes the EditConfig to a file.
func (c *EditConfig) Save(filename string) error {
	var data []byte
	if isJSON(filename) {
		b, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal edit file: %w", err)
		}
		data = append(b, '\n')
	} else {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("failed to marshal edit file: %w", err)
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write edit file: %w", err)
	}

	return nil
}

// Find returns the edit for k.
func (c *EditConfig) Find(k setting.Key) (Edit, bool) {
	for _, e := range c.Edits {
		if e.Key() == k {
			return e, true
		}
	}
	return Edit{}, false
}

// AddEdit adds an edit, replacing any earlier edit of the same setting.
// Returns false if an identical edit already exists.
func (c *EditConfig) AddEdit(e Edit) bool {
	for i, existing := range c.Edits {
		if existing.Key() != e.Key() {
			continue
		}
		if existing.Change() == e.Change() {
			return false
		}
		c.Edits[i] = e
		return true
	}
	c.Edits = append(c.Edits, e)
	return true
}

// RemoveEdit removes the edit of the setting k.
// Returns true if the edit was removed, false if it wasn't found.
func (c *EditConfig) RemoveEdit(k setting.Key) bool {
	for i, existing := range c.Edits {
		if existing.Key() == k {
			c.Edits = append(c.Edits[:i], c.Edits[i+1:]...)
			return true
		}
	}
	return false
}
