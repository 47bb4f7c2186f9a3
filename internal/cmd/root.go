// Package cmd provides the CLI commands for biosedit.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thirteen37/biosedit/internal/logger"
)

// newRootCmd builds the command tree. Flags are bound per tree so that
// tests can execute commands repeatedly.
func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "biosedit",
		Short: "Edit SCEWIN BIOS setup dumps",
		Long: `biosedit reads BIOS setup dumps exported by AMI SCEWIN (nvram.txt),
changes selected options and values, and writes the file back with every
other line, comment and spacing left exactly as it was.

Settings are addressed either by their setup question, when it is unique,
or by the key "question||token||offset".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logger.Options{Writer: cmd.ErrOrStderr(), Verbose: verbose})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddEditCmd())
	rootCmd.AddCommand(newRemoveEditCmd())
	rootCmd.AddCommand(newEditsCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "biosedit: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command tree with args.
func run(args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
