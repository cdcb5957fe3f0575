package main

import (
	"os"

	"github.com/spf13/cobra"

	"billu/internal/interfaces/cli/migrate"
	"billu/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "billu",
		Short: "Billu - repair distribution back office",
		Long:  `Billu is the Navratna Distributors back-office service: repair tickets, technician compensation, and the operator API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
