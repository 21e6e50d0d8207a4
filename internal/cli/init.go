package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/secondbrain/internal/config"
	"github.com/example/secondbrain/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the secondbrain database and config",
		Long:  `Initialize ~/.secondbrain with the database schema, a default config file, and an empty alias table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}

			fmt.Printf("Initializing secondbrain at %s\n", dir)

			cfg, err := config.Load(dir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if _, err := os.Stat(filepath.Join(dir, "config.json")); os.IsNotExist(err) {
				if err := config.Save(dir, cfg); err != nil {
					return err
				}
				fmt.Println("✓ Default config written to config.json")
			} else {
				fmt.Println("✓ Config already present")
			}

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()
			fmt.Println("✓ Database initialized")

			if err := initAliases(cfg.AliasesPath); err != nil {
				return fmt.Errorf("failed to initialize aliases: %w", err)
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  brain inbox add \"call mom about dinner\"")
			fmt.Println("  brain process")

			return nil
		},
	}
}

// initAliases writes an empty alias table unless one already exists.
func initAliases(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Println("✓ Alias table already present")
		return nil
	}

	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		return err
	}
	fmt.Println("✓ Empty alias table created at aliases.json")
	return nil
}
