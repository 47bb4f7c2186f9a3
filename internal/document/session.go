package document

// Session holds the single open document of an editing shell.
// Opening a new file discards the previous document only once the new
// one has loaded.
type Session struct {
	doc  *Document
	opts []Option
}

// NewSession returns an empty session; opts apply to every Open.
func NewSession(opts ...Option) *Session {
	return &Session{opts: opts}
}

// Open loads path and makes it the current document. On failure the
// current document is kept.
func (s *Session) Open(path string) error {
	doc, err := Load(path, s.opts...)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// Document returns the current document, or nil.
func (s *Session) Document() *Document {
	return s.doc
}

// Save writes the current document to path, or back to its own path when
// path is empty.
func (s *Session) Save(path string) error {
	if s.doc == nil {
		return ErrNoDocument
	}
	if path == "" {
		path = s.doc.Path
	}
	return s.doc.Save(path)
}
