package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequired sets the variables Load insists on.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/eats")
	t.Setenv("TOKEN_SECRET", "s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 25, cfg.Restaurants.PageSize)
	assert.Equal(t, 5, cfg.Auth.LoginRate)
	assert.Zero(t, cfg.Auth.TokenTTL)
	assert.False(t, cfg.MailEnabled())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	setRequired(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: "9000"
auth:
  tokenTTL: 24h
restaurants:
  pageSize: 10
mail:
  apiKey: key
  domain: mg.example.com
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("RESTAURANTS_PAGE_SIZE", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 3, cfg.Restaurants.PageSize)
	assert.True(t, cfg.MailEnabled())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing secret", map[string]string{"TOKEN_SECRET": ""}, "missing token secret"},
		{"missing dsn", map[string]string{"DATABASE_URL": ""}, "missing database DSN"},
		{"bad page size", map[string]string{"RESTAURANTS_PAGE_SIZE": "0"}, "pageSize"},
		{"mail without domain", map[string]string{"MAILGUN_API_KEY": "k"}, "Mailgun domain"},
		{"tracing without endpoint", map[string]string{"ENABLE_TRACING": "true"}, "OTLP endpoint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	setRequired(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.ErrorContains(t, err, "read config")
}
