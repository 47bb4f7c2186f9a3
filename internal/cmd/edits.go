package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/thirteen37/biosedit/internal/config"
	"github.com/thirteen37/biosedit/internal/setting"
)

// loadOrCreateEdits loads an edit file, or returns an empty one if the
// file does not exist yet.
func loadOrCreateEdits(path string) (*config.EditConfig, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &config.EditConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load edits: %w", err)
	}
	return cfg, nil
}

func newAddEditCmd() *cobra.Command {
	var change changeFlags

	cmd := &cobra.Command{
		Use:   "add-edit <edits> <key>",
		Short: "Add an edit to an edit file",
		Long: `Add or replace the edit of one setting in an edit file. The file is
created if it does not exist.

Arguments:
  edits  Edit file (TOML, or JSON by extension)
  key    Setting key "question||token||offset" (see "biosedit show")

Example:
  biosedit add-edit gaming.toml 'Above 4G Decoding||0E||0B8D' --select Enabled`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := setting.ParseKey(args[1])
			if err != nil {
				return err
			}
			cfg, err := loadOrCreateEdits(args[0])
			if err != nil {
				return err
			}

			e := change.edit(cmd, k)
			if !cfg.AddEdit(e) {
				fmt.Fprintf(cmd.OutOrStdout(), "Edit %s already exists\n", k)
				return nil
			}
			if err := cfg.Save(args[0]); err != nil {
				return fmt.Errorf("failed to save edits: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added edit %s: %s\n", k, e.Change())
			return nil
		},
	}

	change.register(cmd)
	return cmd
}

func newRemoveEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-edit <edits> <key>",
		Short: "Remove an edit from an edit file",
		Long: `Remove the edit of one setting from an edit file.

Arguments:
  edits  Edit file
  key    Setting key "question||token||offset"

Example:
  biosedit remove-edit gaming.toml 'Above 4G Decoding||0E||0B8D'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := setting.ParseKey(args[1])
			if err != nil {
				return err
			}
			cfg, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load edits: %w", err)
			}

			if !cfg.RemoveEdit(k) {
				fmt.Fprintf(cmd.OutOrStdout(), "Edit %s not found\n", k)
				return nil
			}
			if err := cfg.Save(args[0]); err != nil {
				return fmt.Errorf("failed to save edits: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed edit %s\n", k)
			return nil
		},
	}
}

func newEditsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edits <edits>",
		Short: "List the edits of an edit file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load edits: %w", err)
			}

			if len(cfg.Edits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No edits configured")
				return nil
			}
			for _, e := range cfg.Edits {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", e.Key(), e.Change())
			}
			return nil
		},
	}
}
