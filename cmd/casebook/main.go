package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/casebook/internal/cli"
	"github.com/example/casebook/internal/version"
	"github.com/example/casebook/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "casebook",
		Short:   "casebook - a moderated catalogue of AI use cases",
		Version: version.String(),
		Long: `casebook collects AI use cases from the team. Anyone can browse approved
use cases and submit new ones; administrators review submissions and
file them under categories.`,
		SilenceUsage: true,
	}

	// Public commands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.BrowseCmd())
	rootCmd.AddCommand(cli.SubmitCmd())
	rootCmd.AddCommand(cli.CategoriesCmd())

	// Administration
	rootCmd.AddCommand(cli.AdminCmd())

	// Interfaces
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.TUICmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); closeErr != nil {
		fmt.Fprintln(os.Stderr, closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
