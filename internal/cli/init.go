package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/casebook/internal/config"
	"github.com/example/casebook/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the casebook database",
		Long: `Initialize the casebook database with the required schema and write
~/.casebook/config.yaml if it does not exist yet.

Examples:
  casebook init
  casebook init --seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}

			cfg, err := config.Load(home)
			if err != nil {
				return err
			}

			if _, err := os.Stat(config.Path(home)); errors.Is(err, fs.ErrNotExist) {
				if err := config.Save(home, cfg); err != nil {
					return err
				}
				fmt.Printf("✓ Config written to %s\n", config.Path(home))
			}

			fmt.Printf("Initializing casebook database at %s\n", cfg.DBPath)

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()

			fmt.Println("✓ Database initialized successfully")

			if seed {
				var n int
				if err := database.QueryRow("SELECT (SELECT COUNT(*) FROM submissions) + (SELECT COUNT(*) FROM categories)").Scan(&n); err != nil {
					return fmt.Errorf("failed to inspect database: %w", err)
				}
				if n > 0 {
					fmt.Println("Database already has data; skipping fixtures")
				} else {
					if err := db.SeedFixtures(database); err != nil {
						return fmt.Errorf("failed to seed fixtures: %w", err)
					}
					fmt.Println("✓ Fixtures loaded")
				}
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  casebook browse")
			fmt.Println("  casebook tui")

			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Load example categories and submissions into an empty database")

	return cmd
}
