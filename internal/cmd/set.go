package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirteen37/biosedit/internal/document"
	"github.com/thirteen37/biosedit/internal/logger"
)

func newSetCmd() *cobra.Command {
	var (
		change  changeFlags
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "set <dump> <setting>",
		Short: "Change the active option or value of one setting",
		Long: `Change one setting and write the dump back.

Only the Options block or Value line of the setting is rewritten; every
other line is kept byte for byte. Without --output the dump is replaced.

Arguments:
  dump     SCEWIN dump file
  setting  Setup question, or "question||token||offset"

Example:
  biosedit set nvram.txt "Above 4G Decoding" --select Enabled
  biosedit set nvram.txt "PCIE Target Link Speed" --value 3 -o patched.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDump(args[0])
			if err != nil {
				return err
			}
			s, err := doc.Resolve(args[1])
			if err != nil {
				return describeError(err)
			}
			if !s.Key().Valid() {
				return fmt.Errorf("setting %q has no token or offset and cannot be written back", s.SetupQuestion)
			}

			e := change.edit(cmd, s.Key())
			if err := e.Apply(s); err != nil {
				return err
			}
			if keys := doc.Unwritten(doc.Settings); len(keys) > 0 {
				return fmt.Errorf("setting %s: %w, nothing written", keys[0], document.ErrUnwritable)
			}
			logger.L.Debug("applied edit", "setting", s.Key().String(), "change", e.Change())

			out, err := saveDump(doc, outFile)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", s.SetupQuestion, s.DisplayValue(), out)
			return nil
		},
	}

	change.register(cmd)
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write to this file instead of replacing the dump")
	return cmd
}
