package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "inkwell", cfg.MongoDB)
	require.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DB", "blog_test")
	t.Setenv("JWT_SECRET", "super-secret")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "blog_test", cfg.MongoDB)
	require.Equal(t, "super-secret", cfg.JWTSecret)
}
