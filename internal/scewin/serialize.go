package scewin

import (
	"slices"
	"strings"

	"github.com/thirteen37/biosedit/internal/setting"
)

// continuationIndent aligns option lines under "Options\t=".
const continuationIndent = "         "

// Result is the outcome of a Rewrite.
type Result struct {
	// Lines is the rewritten dump.
	Lines []string
	// OptionBlocks counts replaced Options blocks.
	OptionBlocks int
	// ValueLines counts replaced Value lines.
	ValueLines int
	// Unmatched counts complete identity triples in the source with no
	// corresponding setting.
	Unmatched int
	// Written lists the settings whose lines were replaced, in file order.
	Written []setting.Key
}

// Serialize writes the current state of settings back into a copy of
// original. Only Options blocks and Value lines of matched settings change.
func Serialize(original []string, settings []*setting.Setting) []string {
	return Rewrite(original, settings).Lines
}

// Rewrite is Serialize with counts of what changed.
//
// Settings are located by identity (question, token, offset), not by
// position. A setting is resolved when its Offset line is seen after its
// question and token; until then lines pass through unchanged.
//
// An Options block is replaced only when the setting's options or marker
// differ from what original parses to, so an unedited setting keeps its
// lines even where the block layout is irregular.
func Rewrite(original []string, settings []*setting.Setting) Result {
	idx := setting.NewIndex(settings)
	loaded := setting.NewIndex(Parse(original))
	res := Result{Lines: make([]string, 0, len(original))}

	var (
		question, token, offset string
		current                 *setting.Setting
	)

	for i := 0; i < len(original); {
		raw := original[i]
		line := StripComment(raw)
		if line == "" {
			res.Lines = append(res.Lines, raw)
			i++
			continue
		}

		kind, rest := Classify(line)
		switch kind {
		case KindSetupQuestion:
			question, token, offset = rest, "", ""
			current = nil
		case KindToken:
			token = rest
		case KindOffset:
			offset = rest
			if question != "" && token != "" && offset != "" {
				s, ok := idx.Lookup(setting.Key{Question: question, Token: token, Offset: offset})
				if !ok {
					res.Unmatched++
				}
				current = s
			}
		case KindOptions:
			if current == nil {
				break
			}
			end := blockEnd(original, i)
			block := original[i:end]
			if len(current.Options) > 0 && optionsChanged(loaded, current) && !blockMatches(block, current) {
				res.Lines = append(res.Lines, formatOptions(block, current)...)
				res.OptionBlocks++
				res.Written = append(res.Written, current.Key())
			} else {
				res.Lines = append(res.Lines, block...)
			}
			i = end
			continue
		case KindValue:
			if current == nil || current.Value == nil {
				break
			}
			if v := *current.Value; v != "" && v != rest && setting.ValidValue(v) == nil {
				res.Lines = append(res.Lines, formatValue(raw, v))
				res.ValueLines++
				res.Written = append(res.Written, current.Key())
				i++
				continue
			}
		}

		res.Lines = append(res.Lines, raw)
		i++
	}

	return res
}

// blockEnd returns the index after the Options block starting at line i.
// The block takes in following bracket lines and any comment-only lines
// between them; a blank or tagged line ends it.
func blockEnd(original []string, i int) int {
	end := i + 1
	for j := i + 1; j < len(original); j++ {
		switch raw := original[j]; {
		case IsBlockContinuation(StripComment(raw)):
			end = j + 1
		case isCommentOnly(raw):
		default:
			return end
		}
	}
	return end
}

// optionsChanged reports whether s differs from the setting parsed from
// the source under the same key.
func optionsChanged(loaded *setting.Index, s *setting.Setting) bool {
	before, ok := loaded.Lookup(s.Key())
	return !ok || !s.SameOptions(before)
}

// blockMatches reports whether block already encodes the options and
// active marker of s.
func blockMatches(block []string, s *setting.Setting) bool {
	var (
		opts   []string
		active = setting.NoOption
	)
	for i, raw := range block {
		text := StripComment(raw)
		if i == 0 {
			_, text = Classify(text)
		}
		o, a := ParseOptions(text)
		if a != setting.NoOption {
			active = len(opts) + a
		}
		opts = append(opts, o...)
	}

	want := setting.NoOption
	if s.HasActive() {
		want = s.ActiveOption
	}
	return active == want && slices.Equal(opts, s.Options)
}

// formatOptions renders the options of s as a replacement for block.
// The first line keeps the original label, spacing and comment; later
// lines reuse the original continuation indent where there is one.
// Comment-only lines inside the block stay where they were.
func formatOptions(block []string, s *setting.Setting) []string {
	var slots []string
	for _, raw := range block {
		if !isCommentOnly(raw) {
			slots = append(slots, raw)
		}
	}

	body, sep, comment := splitComment(slots[0])
	label := body
	if eq := strings.Index(body, "="); eq >= 0 {
		label = body[:eq+1] + leadingSpace(body[eq+1:])
	}

	indent := continuationIndent
	switch {
	case len(slots) > 1:
		indent = leadingSpace(slots[1])
	case !strings.Contains(label, "\t"):
		indent = strings.Repeat(" ", len(label))
	}

	rendered := make([]string, 0, len(s.Options))
	for i, opt := range s.Options {
		mark := ""
		if i == s.ActiveOption {
			mark = "*"
		}

		if i == 0 {
			line := label + mark + opt
			if comment != "" {
				if sep == "" {
					sep = "\t"
				}
				line += sep + comment
			}
			rendered = append(rendered, line)
			continue
		}

		prefix, suffix := indent, ""
		if i < len(slots) {
			b, sp, c := splitComment(slots[i])
			prefix = leadingSpace(b)
			if c != "" {
				suffix = sp + c
			}
		}
		rendered = append(rendered, prefix+mark+opt+suffix)
	}

	out := make([]string, 0, len(block)+len(rendered))
	next := 0
	for _, raw := range block {
		switch {
		case isCommentOnly(raw):
			out = append(out, raw)
		case next < len(rendered):
			out = append(out, rendered[next])
			next++
		}
	}
	return append(out, rendered[next:]...)
}

// formatValue rewrites a Value line as "Value\t=<v>", keeping its
// indentation and comment.
func formatValue(raw, v string) string {
	_, _, comment := splitComment(raw)
	line := leadingSpace(raw) + "Value\t=" + v
	if comment != "" {
		line += "\t" + comment
	}
	return line
}
