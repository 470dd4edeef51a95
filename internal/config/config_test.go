package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TODO_JWT_SECRET", "secret")

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "todo.db", cfg.DBPath)
		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, "todoapp", cfg.JWTIssuer)
		assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, 2*time.Hour, cfg.CacheTTL)
		assert.Equal(t, "http://localhost:5173", cfg.VerifyBaseURL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TODO_JWT_SECRET", "secret")
		t.Setenv("TODO_ADDR", ":9090")
		t.Setenv("TODO_DB_PATH", "/tmp/todo-test.db")
		t.Setenv("TODO_JWT_TTL", "15m")
		t.Setenv("TODO_CACHE_TTL", "30m")

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "/tmp/todo-test.db", cfg.DBPath)
		assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
		assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("TODO_JWT_SECRET", "")

		_, err := New()
		assert.Error(t, err)
	})
}
