// Package document loads and saves SCEWIN dump files.
//
// Dumps are written by Windows tools in the legacy "ANSI" code page, so
// files are decoded from Windows-1252 on load and encoded back on save.
// Line endings (CRLF or LF) and a missing final newline are preserved.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/thirteen37/biosedit/internal/logger"
	"github.com/thirteen37/biosedit/internal/scewin"
	"github.com/thirteen37/biosedit/internal/setting"
)

var (
	// ErrDecode is returned when file bytes are not valid text in the
	// document encoding.
	ErrDecode = errors.New("cannot decode text")
	// ErrEncode is returned when a value cannot be represented in the
	// document encoding.
	ErrEncode = errors.New("cannot encode text")
	// ErrNoDocument is returned when saving a session with nothing loaded.
	ErrNoDocument = errors.New("no document loaded")
	// ErrUnwritable is returned for a change that has no Options block or
	// Value line in the dump to hold it.
	ErrUnwritable = errors.New("no Options block or Value line to write the change to")
)

// FileError records a failed read or write.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Option configures Load and Decode.
type Option func(*options)

type options struct {
	enc encoding.Encoding
}

// WithEncoding overrides the Windows-1252 file encoding.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.enc = enc
	}
}

func buildOptions(opts []Option) options {
	o := options{enc: charmap.Windows1252}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Document is a loaded dump: the original lines and the settings parsed
// from them. Lines is never modified; callers mutate Settings.
type Document struct {
	Path     string
	Lines    []string
	Settings []*setting.Setting

	index        *setting.Index
	loaded       *setting.Index
	eol          string
	finalNewline bool
	enc          encoding.Encoding
}

// Load reads and parses the dump at path.
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	o := buildOptions(opts)
	data, err := io.ReadAll(transform.NewReader(f, o.enc.NewDecoder()))
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}

	doc, err := newDocument(string(data), o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path

	logger.L.Debug("loaded dump", "path", path, "lines", len(doc.Lines), "settings", len(doc.Settings))
	return doc, nil
}

// Decode parses a dump held in memory.
func Decode(data []byte, opts ...Option) (*Document, error) {
	o := buildOptions(opts)
	text, err := o.enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return newDocument(string(text), o)
}

func newDocument(text string, o options) (*Document, error) {
	if i := strings.IndexRune(text, utf8.RuneError); i >= 0 {
		line := strings.Count(text[:i], "\n") + 1
		return nil, fmt.Errorf("%w: invalid byte sequence on line %d", ErrDecode, line)
	}

	doc := &Document{
		eol:          "\n",
		finalNewline: strings.HasSuffix(text, "\n"),
		enc:          o.enc,
	}
	if strings.Contains(text, "\r\n") {
		doc.eol = "\r\n"
	}

	if text != "" {
		lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		for i, l := range lines {
			lines[i] = strings.TrimSuffix(l, "\r")
		}
		doc.Lines = lines
	}

	doc.Settings = scewin.Parse(doc.Lines)
	doc.index = setting.NewIndex(doc.Settings)
	doc.loaded = setting.NewIndex(scewin.Parse(doc.Lines))
	return doc, nil
}

// Encode serializes the current settings into file bytes.
func (d *Document) Encode() ([]byte, error) {
	res := scewin.Rewrite(d.Lines, d.Settings)
	logger.L.Debug("rewrote dump",
		"optionBlocks", res.OptionBlocks,
		"valueLines", res.ValueLines,
		"unmatched", res.Unmatched)

	var sb strings.Builder
	for i, l := range res.Lines {
		if i > 0 {
			sb.WriteString(d.eol)
		}
		sb.WriteString(l)
	}
	if d.finalNewline && len(res.Lines) > 0 {
		sb.WriteString(d.eol)
	}

	data, err := d.enc.NewEncoder().String(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return []byte(data), nil
}

// Unwritten returns the keys of settings that differ from the loaded dump
// but that a save would leave unchanged on disk. A value set on a setting
// with no Value line is one such change.
func (d *Document) Unwritten(settings []*setting.Setting) []setting.Key {
	res := scewin.Rewrite(d.Lines, settings)
	written := make(map[setting.Key]bool, len(res.Written))
	for _, k := range res.Written {
		written[k] = true
	}

	var keys []setting.Key
	for _, s := range settings {
		k := s.Key()
		before, ok := d.loaded.Lookup(k)
		if !ok || written[k] || s.SameChoice(before) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Save writes the document to path. The target is replaced atomically, so
// a failed save leaves any existing file untouched.
func (d *Document) Save(path string) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	logger.L.Debug("saved dump", "path", path, "bytes", len(data))
	return nil
}

// Find returns the setting with key k.
func (d *Document) Find(k setting.Key) (*setting.Setting, bool) {
	return d.index.Lookup(k)
}

// Resolve finds a setting by key string ("question||token||offset") or,
// failing that, by a setup question that is unique in the document.
func (d *Document) Resolve(ref string) (*setting.Setting, error) {
	if k, err := setting.ParseKey(ref); err == nil {
		if s, ok := d.Find(k); ok {
			return s, nil
		}
		return nil, fmt.Errorf("setting %s: %w", k, setting.ErrNotFound)
	}

	var found *setting.Setting
	for _, s := range d.Settings {
		if !strings.EqualFold(s.SetupQuestion, strings.TrimSpace(ref)) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("setting %q: %w, use question||token||offset", ref, setting.ErrAmbiguous)
		}
		found = s
	}
	if found == nil {
		return nil, fmt.Errorf("setting %q: %w", ref, setting.ErrNotFound)
	}
	return found, nil
}

// Filter returns the settings whose question contains query, ignoring case.
// An empty query returns every setting.
func (d *Document) Filter(query string) []*setting.Setting {
	query = strings.ToLower(query)
	var out []*setting.Setting
	for _, s := range d.Settings {
		if strings.Contains(strings.ToLower(s.SetupQuestion), query) {
			out = append(out, s)
		}
	}
	return out
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path.
func writeFileAtomic(path string, data []byte) error {
	perm := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}
