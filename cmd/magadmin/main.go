package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tcworld/magadmin/internal/interfaces/cli/admin"
	"github.com/tcworld/magadmin/internal/interfaces/cli/migrate"
	"github.com/tcworld/magadmin/internal/interfaces/cli/seed"
	"github.com/tcworld/magadmin/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "magadmin",
		Short: "Magazine subscription administration backend",
		Long:  `magadmin serves the subscription admin API and ships migration, seeding and account tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
