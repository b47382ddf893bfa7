package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig is a DTO used exclusively for environment lookups. No
// env-default tags: unset variables keep their zero value so values from
// earlier stages survive.
type EnvConfig struct {
	APIBaseURL          string        `env:"TASKPILOT_API_BASE_URL"`
	OnlineCheckInterval time.Duration `env:"TASKPILOT_ONLINE_CHECK_INTERVAL"`
	DatabasePath        string        `env:"TASKPILOT_DB_PATH"`
	LogLevel            string        `env:"TASKPILOT_LOG_LEVEL"`
	LogFormat           string        `env:"TASKPILOT_LOG_FORMAT"`
}

// parseEnv overlays Config with values from TASKPILOT_* environment
// variables. Intervals accept time.ParseDuration strings like "45s".
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.OnlineCheckInterval != 0 {
		cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogFormat != "" {
		cfg.LogFormat = ec.LogFormat
	}
}
