package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/thirteen37/biosedit/internal/config"
	"github.com/thirteen37/biosedit/internal/document"
	"github.com/thirteen37/biosedit/internal/merge"
	"github.com/thirteen37/biosedit/internal/setting"
)

// loadDump loads the dump at path.
func loadDump(path string) (*document.Document, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dump: %w", err)
	}
	return doc, nil
}

// saveDump writes doc to out, or back to its own file when out is empty.
func saveDump(doc *document.Document, out string) (string, error) {
	if out == "" {
		out = doc.Path
	}
	if err := doc.Save(out); err != nil {
		return "", fmt.Errorf("failed to save dump: %w", err)
	}
	return out, nil
}

// changeFlags are the mutually exclusive flags describing one change.
type changeFlags struct {
	option int
	sel    string
	value  string
}

func (f *changeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.option, "option", "n", 0, "Index of the option to activate")
	cmd.Flags().StringVarP(&f.sel, "select", "s", "", "Option to activate, by text or label")
	cmd.Flags().StringVar(&f.value, "value", "", "New free-form value")
	cmd.MarkFlagsMutuallyExclusive("option", "select", "value")
	cmd.MarkFlagsOneRequired("option", "select", "value")
}

// edit builds the edit for k from the flags set on cmd.
func (f *changeFlags) edit(cmd *cobra.Command, k setting.Key) config.Edit {
	e := config.NewEdit(k)
	switch {
	case cmd.Flags().Changed("option"):
		n := f.option
		e.Option = &n
	case cmd.Flags().Changed("select"):
		e.Select = f.sel
	default:
		v := f.value
		e.Value = &v
	}
	return e
}

// describeError adds a hint to lookup errors.
func describeError(err error) error {
	if errors.Is(err, setting.ErrNotFound) {
		return fmt.Errorf("%w (see `biosedit list`)", err)
	}
	return err
}

// rejectUnwritten moves edits that a save would not write from Applied to
// Failed.
func rejectUnwritten(doc *document.Document, settings []*setting.Setting, r *merge.Report) {
	for _, k := range doc.Unwritten(settings) {
		r.Applied = slices.DeleteFunc(r.Applied, func(e config.Edit) bool {
			return e.Key() == k
		})
		r.Failed = append(r.Failed, fmt.Errorf("setting %s: %w", k, document.ErrUnwritable))
	}
}
