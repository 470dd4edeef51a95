package adapters

import (
	"log"
	"os"

	"github.com/FrancisEgan/TodoApp/internal/adapters/primary/cli"
	httpadapter "github.com/FrancisEgan/TodoApp/internal/adapters/primary/http"
	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/cache"
	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/mailer"
	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/password"
	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/repository/cached"
	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/repository/sqlite"
	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/token"
	"github.com/FrancisEgan/TodoApp/internal/config"
	"github.com/FrancisEgan/TodoApp/internal/core/app"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var PrimaryPackage = do.Package(
	do.Lazy[*cobra.Command](cli.Command),
	do.Lazy[*httpadapter.Server](NewHTTPServer),
)

var SecondaryPackage = do.Package(
	do.Lazy[*sqlite.Repository](NewSQLiteRepository),
	do.Lazy[cache.TaskCache](NewTaskCache),
	do.Lazy[app.Repository](NewRepository),
	do.Lazy[app.TokenService](NewTokenService),
	do.Lazy[app.PasswordHasher](NewPasswordHasher),
	do.Lazy[app.Mailer](NewMailer),
)

// NewSQLiteRepository opens the durable store.
func NewSQLiteRepository(i do.Injector) (*sqlite.Repository, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return sqlite.New(cfg.DBPath)
}

// NewTaskCache creates the per-user task list cache.
func NewTaskCache(i do.Injector) (cache.TaskCache, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return cache.NewInMemoryTaskCache(cfg.CacheTTL), nil
}

// NewRepository creates a repository adapter that implements app.Repository.
// It wraps the SQLite repository with the task list cache for performance.
func NewRepository(i do.Injector) (app.Repository, error) {
	store := do.MustInvoke[*sqlite.Repository](i)
	taskCache := do.MustInvoke[cache.TaskCache](i)

	return cached.NewRepository(store, taskCache), nil
}

// NewTokenService creates the JWT token service.
func NewTokenService(i do.Injector) (app.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return token.New(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL), nil
}

// NewPasswordHasher creates the argon2id password hasher.
func NewPasswordHasher(_ do.Injector) (app.PasswordHasher, error) {
	return password.NewHasher(), nil
}

// NewMailer creates the verification mailer.
func NewMailer(i do.Injector) (app.Mailer, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return mailer.NewLogMailer(log.New(os.Stdout, "[mailer] ", log.LstdFlags), cfg.VerifyBaseURL), nil
}

// NewHTTPServer creates a new HTTP server.
func NewHTTPServer(i do.Injector) (*httpadapter.Server, error) {
	appInstance := do.MustInvoke[*app.App](i)
	cfg := do.MustInvoke[*config.Config](i)

	return httpadapter.NewServer(cfg.Addr, appInstance), nil
}
