// Package config provides environment-backed configuration for the journal
// service.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. Everything is sourced from the
// environment (a .env file is loaded by main before this runs).
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	GeminiAPIKey   string
	AllowedOrigins []string
	LogLevel       string
}

// Load reads configuration from the environment with sane defaults. The
// Mongo URI has no default on purpose; the caller decides whether its absence
// is fatal.
func Load() Config {
	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("DB_NAME", "trade_journal")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	return Config{
		Port:           v.GetString("PORT"),
		MongoURI:       v.GetString("MONGODB_URI"),
		DBName:         v.GetString("DB_NAME"),
		GeminiAPIKey:   strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		AllowedOrigins: strings.Split(v.GetString("ALLOWED_ORIGINS"), ","),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}
}
