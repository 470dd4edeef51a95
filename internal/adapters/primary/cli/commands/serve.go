package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/FrancisEgan/TodoApp/internal/adapters/primary/http"
	"github.com/FrancisEgan/TodoApp/internal/config"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func Serve(cfg *config.Config, server *httpadapter.Server) *cobra.Command {
	var openBrowser bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServer(cfg, server, openBrowser)
		},
	}

	cmd.Flags().BoolVar(&openBrowser, "open", false, "open the web client in the browser")

	return cmd
}

func runServer(cfg *config.Config, server *httpadapter.Server, openBrowser bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Listening on %s\n", server.Addr())

	if openBrowser {
		if err := open.Run(cfg.VerifyBaseURL); err != nil {
			fmt.Printf("Warning: failed to open browser: %v\n", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
