package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/sites/default/files", cfg.Files.PublicPath)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BASE_URL", "https://shop.example.com")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("port: \"9090\"\ndatabase_url: postgres://localhost/shop\nfiles:\n  dir: /var/files\nauth:\n  access_ttl: 5m\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/shop", cfg.DatabaseURL)
	assert.Equal(t, "/var/files", cfg.Files.Dir)
	assert.Equal(t, "/sites/default/files", cfg.Files.PublicPath)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, "https://shop.example.com", cfg.BaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "owner@example.com", cfg.Admin.Email)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "lots")
	_, err := Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.Error(t, cfg.Validate(), "database url missing")

	cfg.DatabaseURL = "postgres://localhost/shop"
	require.NoError(t, cfg.Validate())

	cfg.Env = "production"
	require.Error(t, cfg.Validate(), "dev secret in production")

	cfg.Auth.JWTSecret = "s3cret"
	require.NoError(t, cfg.Validate())
}
