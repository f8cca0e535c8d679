package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups application configuration (read via Viper from env and optionally a file).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	JWT  JWTConfig
	Auth AuthConfig
	AI   AIConfig
	Seed SeedConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig JWT settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// AuthConfig selects the credential-verification backend.
// "demo" accepts any credentials (showroom demo behavior);
// "credentials" verifies bcrypt hashes against the user store.
type AuthConfig struct {
	Mode string
}

// AIConfig settings for the external advisory service.
// Provider is "gemini" or "anthropic".
type AIConfig struct {
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	TimeoutSeconds  int // per-request budget applied by the advisory session
}

// SeedConfig optional JSON file overriding the embedded catalog/booking seed.
type SeedConfig struct {
	File string
}

// Load reads configuration from environment variables (and optionally a file).
// Env vars take priority. Expected names: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional: .env file in the working directory
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore error if absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "showroom-os"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "showroom-os"),
		},
		Auth: AuthConfig{
			Mode: getString(v, "AUTH_MODE", "demo"),
		},
		AI: AIConfig{
			Provider:        getString(v, "AI_PROVIDER", "gemini"),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			TimeoutSeconds:  getInt(v, "AI_TIMEOUT_SECONDS", 10),
		},
		Seed: SeedConfig{
			File: getString(v, "SEED_FILE", ""),
		},
	}

	if cfg.Auth.Mode != "demo" && cfg.Auth.Mode != "credentials" {
		return nil, fmt.Errorf("config: AUTH_MODE must be demo or credentials, got %q", cfg.Auth.Mode)
	}
	// Every session is a signed JWT; a missing secret must stop the server at
	// startup, not surface as a 500 on the first login.
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
