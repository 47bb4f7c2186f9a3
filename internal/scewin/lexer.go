// Package scewin reads and rewrites SCEWIN BIOS setup dumps.
//
// A dump is a sequence of "Setup Question" blocks:
//
//	Setup Question	= Above 4G Decoding
//	Help String	= Enables or Disables 64bit capable Devices
//	Token	=0E	// Do NOT change this line
//	Offset	=0B8D
//	Width	=01
//	BIOS Default	=[00]Disabled
//	Options	=[01]Enabled	// Move "*" to the desired Option
//	         *[00]Disabled
//
// Parse turns the lines into settings; Serialize writes mutated settings
// back into the original lines, touching only option blocks and value lines.
package scewin

import (
	"regexp"
	"strings"
)

// Kind is the syntactic kind of a logical line.
type Kind int

const (
	// KindContent is any line matching no known tag.
	KindContent Kind = iota
	KindSetupQuestion
	KindHelpString
	KindToken
	KindOffset
	KindWidth
	KindBIOSDefault
	KindOptions
	KindValue
	// KindOptionLine is a bracketed option continuing an Options block.
	KindOptionLine
)

var kindNames = [...]string{
	KindContent:       "content",
	KindSetupQuestion: "setup question",
	KindHelpString:    "help string",
	KindToken:         "token",
	KindOffset:        "offset",
	KindWidth:         "width",
	KindBIOSDefault:   "bios default",
	KindOptions:       "options",
	KindValue:         "value",
	KindOptionLine:    "option line",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// tags are tried in order; the first match wins.
var tags = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindSetupQuestion, regexp.MustCompile(`(?i)^Setup\s+Question\s*=\s*(.*)$`)},
	{KindHelpString, regexp.MustCompile(`(?i)^Help\s+String\s*=\s*(.*)$`)},
	{KindToken, regexp.MustCompile(`(?i)^Token\s*=\s*(.*)$`)},
	{KindOffset, regexp.MustCompile(`(?i)^Offset\s*=\s*(.*)$`)},
	{KindWidth, regexp.MustCompile(`(?i)^Width\s*=\s*(.*)$`)},
	{KindBIOSDefault, regexp.MustCompile(`(?i)^BIOS\s+Default\s*=\s*(.*)$`)},
	{KindOptions, regexp.MustCompile(`(?i)^Options\s*=\s*(.*)$`)},
	{KindValue, regexp.MustCompile(`(?i)^Value\s*=\s*(.*)$`)},
}

// optionLineRegex matches a bracket continuation line. Parser and
// serializer share it so both see the same Options block.
var optionLineRegex = regexp.MustCompile(`^\**\[.*?\]`)

const commentMarker = "//"

// StripComment removes a trailing // comment and surrounding whitespace.
func StripComment(raw string) string {
	if i := strings.Index(raw, commentMarker); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

// Classify returns the kind of a logical (comment-stripped, trimmed) line
// and, for tagged lines, the trimmed text after the '='.
func Classify(logical string) (Kind, string) {
	for _, t := range tags {
		if m := t.re.FindStringSubmatch(logical); m != nil {
			return t.kind, strings.TrimSpace(m[1])
		}
	}
	if optionLineRegex.MatchString(logical) {
		return KindOptionLine, logical
	}
	return KindContent, logical
}

// IsBlockContinuation reports whether a logical line continues an Options
// block.
func IsBlockContinuation(logical string) bool {
	return optionLineRegex.MatchString(logical)
}

// isCommentOnly reports whether raw holds a comment and nothing else.
func isCommentOnly(raw string) bool {
	return StripComment(raw) == "" && strings.TrimSpace(raw) != ""
}

// splitComment splits a raw line into its body and its "//" comment,
// returning the whitespace that separated them.
func splitComment(raw string) (body, sep, comment string) {
	i := strings.Index(raw, commentMarker)
	if i < 0 {
		return raw, "", ""
	}
	body = strings.TrimRight(raw[:i], " \t")
	return body, raw[len(body):i], raw[i:]
}

// leadingSpace returns the whitespace prefix of s.
func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
