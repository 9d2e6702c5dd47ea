package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("ENVIRONMENT", "")

	cfg := LoadConfig()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, ":8080", cfg.Addr())
	require.Empty(t, cfg.PostgresDSN)
	require.Equal(t, "local", cfg.Environment)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_DSN", " postgres://test ")
	t.Setenv("ENVIRONMENT", "staging")

	cfg := LoadConfig()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres://test", cfg.PostgresDSN)
	require.Equal(t, "staging", cfg.Environment)
}
