package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command of the directory CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Company and services directory API",
		Long: `directory serves the company and services directory HTTP API and
manages its PostgreSQL schema. Configuration is read from the environment.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
