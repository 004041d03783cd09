package config

import (
	"os"
	"strings"
)

// Config holds all application configuration values
type Config struct {
	SupabaseURL     string
	SupabaseAnonKey string
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	AllowedOrigins  []string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		SupabaseURL:     firstEnv("SUPABASE_URL", "VITE_SUPABASE_URL"),
		SupabaseAnonKey: firstEnv("SUPABASE_ANON_KEY", "VITE_SUPABASE_ANON_KEY"),
		Port:            envOrDefault("PORT", "8080"),
		GinMode:         envOrDefault("GIN_MODE", "debug"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		AllowedOrigins:  splitList(envOrDefault("ALLOWED_ORIGINS", "*")),
	}
}

// IsSupabaseConfigured reports whether both the service URL and the access
// key are present. When false every save runs in mock mode.
func (c *Config) IsSupabaseConfigured() bool {
	return c != nil && c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func envOrDefault(key, fallback string) string {
	if value := firstEnv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
