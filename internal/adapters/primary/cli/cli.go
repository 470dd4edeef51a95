package cli

import (
	"github.com/FrancisEgan/TodoApp/internal/adapters/primary/cli/commands"
	httpadapter "github.com/FrancisEgan/TodoApp/internal/adapters/primary/http"
	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/repository/sqlite"
	"github.com/FrancisEgan/TodoApp/internal/config"
	"github.com/FrancisEgan/TodoApp/internal/core/app"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Command creates and returns the root CLI command.
func Command(i do.Injector) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:  "todoapp",
		Long: `A per-user task list service.`,
	}

	appInstance := do.MustInvoke[*app.App](i)
	cfg := do.MustInvoke[*config.Config](i)
	server := do.MustInvoke[*httpadapter.Server](i)
	store := do.MustInvoke[*sqlite.Repository](i)

	cmd.AddCommand(
		commands.Serve(cfg, server),
		commands.Migrate(store),
		commands.Tasks(appInstance),
	)

	return cmd, nil
}
