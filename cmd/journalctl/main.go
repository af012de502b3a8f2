// Command journalctl is the operator tool for the journal server.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/weekjournal/internal/buildinfo"
	"github.com/spf13/cobra"
)

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "journalctl",
		Short:         "Operator tool for the week journal server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	})
	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
