package config

import (
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/taskpilot/internal/filex"
)

// Config holds runtime settings for the TaskPilot CLI.
//
// Fields:
//   - APIBaseURL: root URL of the backend REST API.
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - DatabasePath: sqlite file for local state; relative paths resolve
//     against the user's data directory.
//   - LogLevel, LogFormat: log verbosity and encoding.
type Config struct {
	APIBaseURL          string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	LogLevel            string
	LogFormat           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.OnlineCheckInterval = 30 * time.Second
	c.DatabasePath = "taskpilot.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// ResolveDatabasePath returns DatabasePath anchored in the user's data
// directory when it is relative, creating the directory if needed.
func (c *Config) ResolveDatabasePath() (string, error) {
	if filepath.IsAbs(c.DatabasePath) {
		return c.DatabasePath, nil
	}

	dir, err := filex.AppDataDir("taskpilot")
	if err != nil {
		return "", err
	}
	return filex.ResolveInDir(dir, c.DatabasePath), nil
}
