package commands

import (
	"fmt"

	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/repository/sqlite"
	"github.com/FrancisEgan/TodoApp/internal/log"
	"github.com/spf13/cobra"
)

func Migrate(store *sqlite.Repository) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			err := log.WithSpinner("Migrating database schema...", func() error {
				return store.InitSchema()
			})
			if err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}

			return nil
		},
	}
}
