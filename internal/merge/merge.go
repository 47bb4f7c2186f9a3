// Package merge applies batches of edits to parsed settings.
package merge

import (
	"errors"
	"fmt"

	"github.com/thirteen37/biosedit/internal/config"
	"github.com/thirteen37/biosedit/internal/setting"
)

// Report describes the outcome of Apply.
type Report struct {
	// Applied lists the edits performed, in order.
	Applied []config.Edit
	// Missing lists edits whose setting is not in the document.
	Missing []config.Edit
	// Failed holds the errors of edits that were rejected by their setting.
	Failed []error
}

// Err returns every missing and failed edit as one error, or nil.
func (r Report) Err() error {
	var errs []error
	for _, e := range r.Missing {
		errs = append(errs, fmt.Errorf("setting %s: %w", e.Key(), setting.ErrNotFound))
	}
	errs = append(errs, r.Failed...)
	return errors.Join(errs...)
}

// Apply performs edits on settings in place.
//
// Algorithm:
//  1. Index settings by identity
//  2. For each edit:
//     - If its setting is missing, record it and continue
//     - Otherwise apply it; a rejected edit leaves the setting unchanged
func Apply(settings []*setting.Setting, edits []config.Edit) Report {
	idx := setting.NewIndex(settings)

	var r Report
	for _, e := range edits {
		s, ok := idx.Lookup(e.Key())
		if !ok {
			r.Missing = append(r.Missing, e)
			continue
		}
		if err := e.Apply(s); err != nil {
			r.Failed = append(r.Failed, err)
			continue
		}
		r.Applied = append(r.Applied, e)
	}
	return r
}

// Preview applies edits to a deep copy of settings, leaving the originals
// untouched.
func Preview(settings []*setting.Setting, edits []config.Edit) ([]*setting.Setting, Report) {
	result := deepCopy(settings)
	return result, Apply(result, edits)
}

// deepCopy clones every setting.
func deepCopy(settings []*setting.Setting) []*setting.Setting {
	result := make([]*setting.Setting, len(settings))
	for i, s := range settings {
		result[i] = s.Clone()
	}
	return result
}
