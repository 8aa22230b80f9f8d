package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.AppAddr)
	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.Equal(t, 5*time.Second, cfg.DB.QueryTimeout)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("APP_ADDR", ":8080")
	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("HTTP_RATE_LIMIT_RPS", "1.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.DB.QueryTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 1.5, cfg.HTTP.RateLimitRPS)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDB_WithoutSecrets(t *testing.T) {
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	t.Setenv("DB_QUERY_TIMEOUT", "750ms")

	db, err := LoadDB()
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, db.QueryTimeout)
	assert.Contains(t, db.DSN, "bookreview")
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DB_DSN=from_file\n"), 0o644))

	t.Setenv("DB_DSN", "from_env")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
}
