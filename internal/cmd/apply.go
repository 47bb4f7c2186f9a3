package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirteen37/biosedit/internal/config"
	"github.com/thirteen37/biosedit/internal/logger"
	"github.com/thirteen37/biosedit/internal/merge"
)

func newApplyCmd() *cobra.Command {
	var (
		outFile string
		strict  bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "apply <dump> <edits>",
		Short: "Apply an edit file to a dump",
		Long: `Apply every edit of an edit file (TOML, or JSON by extension) to a dump
and write it back.

Edits naming settings that are not in the dump are reported and skipped,
unless --strict is given, in which case nothing is written.

Arguments:
  dump   SCEWIN dump file
  edits  Edit file (see "biosedit init")

Example:
  biosedit apply nvram.txt gaming.toml -o nvram-gaming.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDump(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.Load(args[1])
			if err != nil {
				return fmt.Errorf("failed to load edits: %w", err)
			}

			if dryRun {
				preview, report := merge.Preview(doc.Settings, cfg.Edits)
				rejectUnwritten(doc, preview, &report)
				printReport(cmd, report)
				return nil
			}

			report := merge.Apply(doc.Settings, cfg.Edits)
			rejectUnwritten(doc, doc.Settings, &report)
			for _, e := range report.Applied {
				logger.L.Debug("applied edit", "setting", e.Key().String(), "change", e.Change())
			}
			for _, e := range report.Missing {
				logger.L.Warn("setting not found", "setting", e.Key().String())
			}
			for _, err := range report.Failed {
				logger.L.Warn("edit rejected", "error", err)
			}
			if err := report.Err(); err != nil && strict {
				return fmt.Errorf("edits not applied: %w", err)
			}

			out, err := saveDump(doc, outFile)
			if err != nil {
				return err
			}
			printReport(cmd, report)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write to this file instead of replacing the dump")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail without writing if any edit cannot be applied")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	return cmd
}

func printReport(cmd *cobra.Command, r merge.Report) {
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d edits, %d missing, %d rejected\n",
		len(r.Applied), len(r.Missing), len(r.Failed))
}
