package scewin

import (
	"regexp"
	"strings"

	"github.com/thirteen37/biosedit/internal/setting"
)

// optionEntryRegex finds option entries: "*?[index]" at the start of the
// text or after whitespace.
var optionEntryRegex = regexp.MustCompile(`(^|\s)(\*?)\[([^\]]+)\]`)

// Parse converts the lines of a dump into settings, in order of appearance.
// Malformed lines never fail the parse: they are kept as content or dropped.
func Parse(lines []string) []*setting.Setting {
	var (
		settings []*setting.Setting
		current  *setting.Setting
	)

	finalize := func() {
		if current != nil {
			current.Finalize()
			settings = append(settings, current)
		}
	}

	for _, raw := range lines {
		line := StripComment(raw)
		if line == "" {
			continue
		}

		kind, rest := Classify(line)
		if kind == KindSetupQuestion {
			finalize()
			current = setting.New(rest)
			continue
		}
		// Nothing before the first question belongs to a setting.
		if current == nil {
			continue
		}

		switch kind {
		case KindHelpString:
			current.HelpString = rest
		case KindToken:
			current.Token = rest
		case KindOffset:
			current.Offset = rest
		case KindWidth:
			current.Width = rest
		case KindBIOSDefault:
			def := rest
			current.BIOSDefault = &def
		case KindOptions, KindOptionLine:
			addOptions(current, rest)
		case KindValue:
			current.SetValue(rest)
		default:
			current.Content = append(current.Content, line)
		}
	}
	finalize()

	return settings
}

// addOptions appends the options found in text to s, updating the active
// marker when one of them is starred.
func addOptions(s *setting.Setting, text string) {
	opts, active := ParseOptions(text)
	if active != setting.NoOption {
		s.ActiveOption = len(s.Options) + active
	}
	s.Options = append(s.Options, opts...)
}

// ParseOptions extracts the option entries of one line of an Options block.
// It returns the entries and the index of the starred one, or
// setting.NoOption. The last star wins when several are present.
func ParseOptions(text string) ([]string, int) {
	text = strings.TrimSpace(text)
	active := setting.NoOption

	matches := optionEntryRegex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		clean := strings.TrimSpace(strings.TrimLeft(text, "*"))
		if clean == "" {
			return nil, active
		}
		if strings.HasPrefix(text, "*") {
			active = 0
		}
		return []string{clean}, active
	}

	opts := make([]string, 0, len(matches))
	for i, m := range matches {
		start, bracket := m[4], m[5]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][4]
		}
		if bracket > start {
			active = len(opts)
		}
		opts = append(opts, strings.TrimSpace(text[bracket:end]))
	}
	return opts, active
}
