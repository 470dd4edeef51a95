package commands

import (
	"context"
	"fmt"

	"github.com/FrancisEgan/TodoApp/internal/core/app"
	"github.com/FrancisEgan/TodoApp/internal/core/domain"
	"github.com/FrancisEgan/TodoApp/internal/format/ascii"
	"github.com/FrancisEgan/TodoApp/internal/log"
	"github.com/spf13/cobra"
)

func Tasks(appInstance *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks <email>",
		Short: "List a user's active tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return showTasks(appInstance, args[0])
		},
	}
}

func showTasks(appInstance *app.App, email string) error {
	ctx := context.Background()

	var (
		user  *domain.User
		tasks []domain.Task
	)
	err := log.WithSpinner("Fetching tasks...", func() error {
		u, err := appInstance.UserByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		list, err := appInstance.ListTasks(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		user = u
		tasks = list

		return nil
	})
	if err != nil {
		return err
	}

	formatted, err := ascii.FormatTasks(user, tasks)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(formatted)

	return nil
}
