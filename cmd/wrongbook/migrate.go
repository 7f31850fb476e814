package main

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wrongbook-app/wrongbook/internal/database"
	"github.com/wrongbook-app/wrongbook/schemas"
)

func newMigrateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			paths, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
			if err != nil {
				return fmt.Errorf("fs.Glob(migrations) > %w", err)
			}
			sort.Strings(paths)

			for _, path := range paths {
				content, err := fs.ReadFile(schemas.Migrations, path)
				if err != nil {
					return fmt.Errorf("fs.ReadFile(%s) > %w", path, err)
				}
				if _, err := db.ExecContext(cmd.Context(), string(content)); err != nil {
					return fmt.Errorf("db.ExecContext(%s) > %w", path, err)
				}
				fmt.Printf("Applied %s\n", path)
			}
			return nil
		},
	}

	return command
}
