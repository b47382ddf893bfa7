// Package config loads runtime configuration for the TaskPilot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. TASKPILOT_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-i int      online status check interval (seconds)
//	-d string   path to the local database file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "online_check_interval": "30s",
//	  "database_path": "taskpilot.db"
//	}
//
// # Environment
//
//	TASKPILOT_API_BASE_URL            base URL of the backend API
//	TASKPILOT_ONLINE_CHECK_INTERVAL   probe interval, e.g. "45s"
//	TASKPILOT_DB_PATH                 local database file
//	TASKPILOT_LOG_LEVEL               debug, info, warn or error
//	TASKPILOT_LOG_FORMAT              text or json
//
// Primary API
//
//   - type Config                     — holds the runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
