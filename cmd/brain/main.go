package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/secondbrain/internal/cli"
	"github.com/example/secondbrain/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "brain",
		Short:   "secondbrain - inbox capture and classification",
		Version: version.String(),
		Long: `secondbrain captures raw notes into an inbox and files them into
people, projects, ideas, and admin ledgers using a prefix router with a
local-model fallback.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.InboxCmd())
	rootCmd.AddCommand(cli.ProcessCmd())
	rootCmd.AddCommand(cli.ReviewCmd())
	rootCmd.AddCommand(cli.LogCmd())

	// Ledger browsing
	rootCmd.AddCommand(cli.PeopleCmd())
	rootCmd.AddCommand(cli.ProjectsCmd())
	rootCmd.AddCommand(cli.IdeasCmd())
	rootCmd.AddCommand(cli.AdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
