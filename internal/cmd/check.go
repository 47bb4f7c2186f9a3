package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <dump>",
		Short: "Verify that a dump survives an unmodified round trip",
		Long: `Parse a dump and write it back without changes, in memory, and compare
the result with the file byte for byte.

Arguments:
  dump  SCEWIN dump file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read dump: %w", err)
			}
			doc, err := loadDump(args[0])
			if err != nil {
				return err
			}
			rewritten, err := doc.Encode()
			if err != nil {
				return err
			}

			if !bytes.Equal(original, rewritten) {
				return fmt.Errorf("round trip differs from %s at line %d", args[0], firstDiffLine(original, rewritten))
			}

			unmatched := 0
			for _, s := range doc.Settings {
				if !s.Key().Valid() {
					unmatched++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d lines, %d settings (%d without token or offset)\n",
				len(doc.Lines), len(doc.Settings), unmatched)
			return nil
		},
	}
	return cmd
}

// firstDiffLine returns the 1-based line of the first differing byte.
func firstDiffLine(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return bytes.Count(a[:i], []byte("\n")) + 1
}
