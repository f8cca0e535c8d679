package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/pkg/config"
)

func TestLoad_DefaultsWithSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "showroom-os", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "unit-test-secret", cfg.JWT.Secret)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "demo", cfg.Auth.Mode)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 10, cfg.AI.TimeoutSeconds)
}

func TestLoad_MissingJWTSecretFailsAtStartup(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_RejectsUnknownAuthMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("AUTH_MODE", "ldap")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_MODE")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("AUTH_MODE", "credentials")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AI_PROVIDER", "anthropic")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "credentials", cfg.Auth.Mode)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
}
