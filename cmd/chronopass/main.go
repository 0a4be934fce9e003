package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Ttaiwl/chronopass/internal/interfaces/cli/migrate"
	"github.com/Ttaiwl/chronopass/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chronopass",
		Short: "Chronopass - block-height subscription engine",
		Long:  `Chronopass issues, renews and transfers time-bounded access passes priced per tier and measured in block heights.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
