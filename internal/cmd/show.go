package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/format/plaintext"
)

func newShowCmd() *cobra.Command {
	var content bool

	cmd := &cobra.Command{
		Use:   "show <dump> <setting>",
		Short: "Show the details of one setting",
		Long: `Show the metadata, value and options of one setting.

Arguments:
  dump     SCEWIN dump file
  setting  Setup question, or "question||token||offset"

Example:
  biosedit show nvram.txt "Above 4G Decoding"`,
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

			fmt.Fprint(cmd.OutOrStdout(), plaintext.Details(s, format.ExportOptions{Verbose: content}))
			if k := s.Key(); k.Valid() {
				fmt.Fprintf(cmd.OutOrStdout(), "Key: %s\n", k)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&content, "content", false, "Also show unrecognized lines")
	return cmd
}
