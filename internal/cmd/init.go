package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirteen37/biosedit/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		outFile string
		search  string
	)

	cmd := &cobra.Command{
		Use:   "init <dump>",
		Short: "Create an edit file from the current choices of a dump",
		Long: `Record the active option or value of every setting of a dump in a new
edit file. Trim it down to the settings you care about and apply it to
other dumps with "biosedit apply".

The file is written as TOML, or as JSON when --out ends in .json.

Example:
  biosedit init nvram.txt --out gaming.toml --search "c-state"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDump(args[0])
			if err != nil {
				return err
			}

			cfg := config.Snapshot(doc.Filter(search))
			if err := cfg.Save(outFile); err != nil {
				return fmt.Errorf("failed to save edits: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s (%d edits)\n", outFile, len(cfg.Edits))
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Edit file to create (required)")
	cmd.Flags().StringVar(&search, "search", "", "Only record settings whose question contains this text")
	cmd.MarkFlagRequired("out")
	return cmd
}
