package config

import (
	"os"
	"time"
)

type ServerConfig struct {
	Port        string
	MetricsPort string
	PprofPort   string
	Mode        string
}

type PlannerConfig struct {
	CacheTTL time.Duration
}

type Config struct {
	Server  ServerConfig
	Planner PlannerConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("SERVER_PORT", "8091"),
			MetricsPort: getEnvOrDefault("METRICS_PORT", "9092"),
			PprofPort:   getEnvOrDefault("PPROF_PORT", "6060"),
			Mode:        getEnvOrDefault("GIN_MODE", "release"),
		},
		Planner: PlannerConfig{
			CacheTTL: getDurationOrDefault("PLAN_CACHE_TTL", 5*time.Minute),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
