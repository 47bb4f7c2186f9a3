package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/format/ini"
	"github.com/thirteen37/biosedit/internal/format/json"
	"github.com/thirteen37/biosedit/internal/format/plaintext"
	"github.com/thirteen37/biosedit/internal/format/toml"
)

// handlerFor returns the export handler for a format name.
func handlerFor(name string) (format.Handler, error) {
	switch name {
	case "json":
		return json.New(), nil
	case "toml":
		return toml.New(), nil
	case "ini":
		return ini.New(), nil
	case "text", "txt":
		return plaintext.New(), nil
	}
	return nil, fmt.Errorf("unknown format %q (want json, toml, ini or text)", name)
}

func newExportCmd() *cobra.Command {
	var (
		formatName string
		outFile    string
		search     string
		content    bool
	)

	cmd := &cobra.Command{
		Use:   "export <dump>",
		Short: "Export the settings of a dump as JSON, TOML, INI or text",
		Long: `Export the parsed settings of a dump in another format.

Arguments:
  dump  SCEWIN dump file

Example:
  biosedit export nvram.txt --format json -o settings.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := handlerFor(formatName)
			if err != nil {
				return err
			}
			doc, err := loadDump(args[0])
			if err != nil {
				return err
			}

			data, err := handler.Export(doc.Filter(search), format.ExportOptions{Verbose: content})
			if err != nil {
				return err
			}

			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "text", "Output format (json, toml, ini, text)")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&search, "search", "", "Only export settings whose question contains this text")
	cmd.Flags().BoolVar(&content, "content", false, "Include unrecognized lines (text format)")
	return cmd
}
