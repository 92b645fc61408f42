package main

import (
	"os"

	"github.com/spf13/cobra"

	"myra/internal/interfaces/cli/migrate"
	"myra/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "myra",
		Short: "MyRA - range use plan service",
		Long:  `MyRA serves range use plans for Crown grazing agreements: the plan tree, its versioning and amendment workflow, and zone administration.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
