package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list <dump>",
		Short: "List settings and their current values",
		Long: `List every setting of a dump with its current choice.

Arguments:
  dump  SCEWIN dump file (e.g., nvram.txt)

Example:
  biosedit list nvram.txt --search "above 4g"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDump(args[0])
			if err != nil {
				return err
			}

			settings := doc.Filter(search)
			out := cmd.OutOrStdout()
			if len(settings) == 0 {
				fmt.Fprintln(out, "No settings found")
				return nil
			}

			r := lipgloss.NewRenderer(out)
			questionStyle := r.NewStyle().Bold(true)
			valueStyle := r.NewStyle().Foreground(lipgloss.Color("6"))

			width := 0
			for _, s := range settings {
				width = max(width, lipgloss.Width(s.SetupQuestion))
			}
			for _, s := range settings {
				fmt.Fprintf(out, "%s  %s\n",
					questionStyle.Width(width).Render(s.SetupQuestion),
					valueStyle.Render(s.DisplayValue()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only list settings whose question contains this text")
	return cmd
}
