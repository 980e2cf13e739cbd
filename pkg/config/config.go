package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Database (optional catalog store; empty disables it)
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL     string `mapstructure:"REDIS_URL"`
	CacheEnabled bool   `mapstructure:"CACHE_ENABLED"`
	CacheTTL     int    `mapstructure:"CACHE_TTL_SECONDS"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Engine
	SolverWorkers int `mapstructure:"SOLVER_WORKERS"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8084")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("CACHE_TTL_SECONDS", 30)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("SOLVER_WORKERS", 4)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; environment variables and defaults suffice
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Viper reads comma-separated env values as a single string
	if len(cfg.CorsOrigins) == 1 && strings.Contains(cfg.CorsOrigins[0], ",") {
		cfg.CorsOrigins = strings.Split(cfg.CorsOrigins[0], ",")
	}

	if cfg.SolverWorkers < 1 {
		cfg.SolverWorkers = 1
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
