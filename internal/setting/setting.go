// Package setting provides the in-memory model of a BIOS setup question.
package setting

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// NoOption is the ActiveOption of a setting with no marked option.
const NoOption = -1

var (
	// ErrIndex is returned when an option index is out of range.
	ErrIndex = errors.New("option index out of range")
	// ErrNotFound is returned when a setting or option cannot be located.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous is returned when a label matches more than one option.
	ErrAmbiguous = errors.New("ambiguous")
	// ErrInvalidValue is returned for a value that cannot be written on a
	// single Value line.
	ErrInvalidValue = errors.New("invalid value")
)

// Setting is one "Setup Question" block of a SCEWIN dump.
type Setting struct {
	SetupQuestion string
	HelpString    string
	Token         string
	Offset        string
	Width         string

	// BIOSDefault is nil unless the block has a "BIOS Default" line.
	BIOSDefault *string

	// Options holds the enumerated choices in order of appearance.
	Options []string

	// ActiveOption indexes Options, or is NoOption.
	ActiveOption int

	// Value is the free-form value; nil when the block has none.
	Value *string

	// Content collects lines that matched no known tag.
	Content []string
}

// New returns an empty setting for the given question.
func New(question string) *Setting {
	return &Setting{
		SetupQuestion: question,
		Options:       []string{},
		ActiveOption:  NoOption,
		Content:       []string{},
	}
}

// Key returns the identity triple of the setting.
func (s *Setting) Key() Key {
	return Key{
		Question: strings.TrimSpace(s.SetupQuestion),
		Token:    strings.TrimSpace(s.Token),
		Offset:   strings.TrimSpace(s.Offset),
	}
}

// Finalize applies the collapse rule: a single unmarked option becomes the value.
func (s *Setting) Finalize() {
	if s.Options == nil {
		s.Options = []string{}
	}
	if len(s.Options) == 1 && s.ActiveOption == NoOption {
		v := s.Options[0]
		s.Value = &v
		s.Options = []string{}
	}
}

// HasActive reports whether ActiveOption points at an existing option.
func (s *Setting) HasActive() bool {
	return s.ActiveOption >= 0 && s.ActiveOption < len(s.Options)
}

// SetActiveOption marks options[i] as the selected choice.
func (s *Setting) SetActiveOption(i int) error {
	if i < 0 || i >= len(s.Options) {
		return fmt.Errorf("%q: index %d not in [0, %d): %w", s.SetupQuestion, i, len(s.Options), ErrIndex)
	}
	s.ActiveOption = i
	return nil
}

// ValidValue checks that text survives a write and reload as a Value line:
// it must not break the line or start a comment.
func ValidValue(text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("%q: line break: %w", text, ErrInvalidValue)
	}
	if strings.Contains(text, "//") {
		return fmt.Errorf("%q: contains the comment marker //: %w", text, ErrInvalidValue)
	}
	return nil
}

// SetValue replaces the free-form value.
func (s *Setting) SetValue(text string) {
	s.Value = &text
}

// SelectOption activates the option whose text or label equals label.
// The full text ("[01]Enabled") is matched exactly first; otherwise the
// label after the bracketed index ("Enabled") is compared case-insensitively.
func (s *Setting) SelectOption(label string) error {
	label = strings.TrimSpace(label)
	for i, opt := range s.Options {
		if opt == label {
			return s.SetActiveOption(i)
		}
	}

	match := NoOption
	for i, opt := range s.Options {
		if strings.EqualFold(OptionLabel(opt), label) {
			if match != NoOption {
				return fmt.Errorf("%q: option %q: %w", s.SetupQuestion, label, ErrAmbiguous)
			}
			match = i
		}
	}
	if match == NoOption {
		return fmt.Errorf("%q: option %q: %w", s.SetupQuestion, label, ErrNotFound)
	}
	return s.SetActiveOption(match)
}

// OptionLabel strips the leading bracketed index from an option text.
func OptionLabel(opt string) string {
	if strings.HasPrefix(opt, "[") {
		if end := strings.Index(opt, "]"); end >= 0 {
			return strings.TrimSpace(opt[end+1:])
		}
	}
	return opt
}

// DisplayValue summarizes the current choice for list views.
func (s *Setting) DisplayValue() string {
	switch {
	case len(s.Options) > 0 && s.HasActive():
		return s.Options[s.ActiveOption]
	case len(s.Options) > 0:
		return strings.Join(s.Options, ", ")
	case s.Value != nil:
		return *s.Value
	}
	return ""
}

// SameOptions reports whether s and o list the same options with the same
// active marker.
func (s *Setting) SameOptions(o *Setting) bool {
	return slices.Equal(s.Options, o.Options) && s.active() == o.active()
}

// SameChoice reports whether s and o hold the same options, marker and value.
func (s *Setting) SameChoice(o *Setting) bool {
	if !s.SameOptions(o) {
		return false
	}
	if s.Value == nil || o.Value == nil {
		return s.Value == o.Value
	}
	return *s.Value == *o.Value
}

// active returns ActiveOption, or NoOption when it is out of range.
func (s *Setting) active() int {
	if s.HasActive() {
		return s.ActiveOption
	}
	return NoOption
}

// Clone returns a deep copy of s.
func (s *Setting) Clone() *Setting {
	c := *s
	c.Options = append([]string{}, s.Options...)
	c.Content = append([]string{}, s.Content...)
	if s.BIOSDefault != nil {
		d := *s.BIOSDefault
		c.BIOSDefault = &d
	}
	if s.Value != nil {
		v := *s.Value
		c.Value = &v
	}
	return &c
}
