package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g., REMOTE_SERVER_URL).
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.antigone
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/antigone.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// BasePath is the URL prefix for every API route.
	// Env: BASE_PATH (default: /AntigoneApp)
	BasePath string `envconfig:"BASE_PATH" default:"/AntigoneApp"`

	// TotalLines is the number of lines in the text.
	// Env: TOTAL_LINES (default: 1353)
	TotalLines int `envconfig:"TOTAL_LINES" default:"1353"`

	// CORSOrigins is a comma-separated list of allowed origins.
	// Env: CORS_ORIGINS (default: *)
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`

	// MaxConcurrentRequests caps in-flight API requests.
	// Env: MAX_CONCURRENT_REQUESTS (default: 64)
	MaxConcurrentRequests int `envconfig:"MAX_CONCURRENT_REQUESTS" default:"64"`

	// RequestTimeout is the per-request deadline in seconds.
	// Env: REQUEST_TIMEOUT (default: 30)
	RequestTimeout float64 `envconfig:"REQUEST_TIMEOUT" default:"30"`

	// Remote configures remote server connection.
	Remote RemoteEnv `envconfig:"REMOTE"`
}

// RemoteEnv holds environment configuration for remote server.
type RemoteEnv struct {
	// ServerURL is the remote server URL including the base path.
	// Env: REMOTE_SERVER_URL
	ServerURL string `envconfig:"SERVER_URL"`

	// Timeout is the request timeout in seconds.
	// Env: REMOTE_TIMEOUT (default: 15)
	Timeout float64 `envconfig:"TIMEOUT" default:"15"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "ANTIGONE" would require ANTIGONE_DATA_DIR instead of DATA_DIR.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	cfg = applyOption(cfg, WithBasePath(e.BasePath))
	cfg = applyOption(cfg, WithTotalLines(e.TotalLines))
	if e.CORSOrigins != "" {
		cfg = applyOption(cfg, WithCORSOrigins(ParseList(e.CORSOrigins)))
	}
	cfg = applyOption(cfg, WithMaxConcurrentRequests(e.MaxConcurrentRequests))
	cfg = applyOption(cfg, WithRequestTimeout(seconds(e.RequestTimeout)))

	if e.Remote.IsConfigured() {
		cfg = applyOption(cfg, WithRemoteConfig(e.Remote.ToRemoteConfig()))
	}

	return cfg
}

// Normalize trims whitespace from string fields.
func (e EnvConfig) Normalize() EnvConfig {
	e.Host = strings.TrimSpace(e.Host)
	e.DataDir = strings.TrimSpace(e.DataDir)
	e.DBURL = strings.TrimSpace(e.DBURL)
	e.LogLevel = strings.TrimSpace(e.LogLevel)
	e.LogFormat = strings.TrimSpace(e.LogFormat)
	e.BasePath = strings.TrimSpace(e.BasePath)
	e.Remote.ServerURL = strings.TrimSpace(e.Remote.ServerURL)
	return e
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// IsConfigured returns true if remote server URL is configured.
func (r RemoteEnv) IsConfigured() bool {
	return r.ServerURL != ""
}

// ToRemoteConfig converts RemoteEnv to RemoteConfig.
func (r RemoteEnv) ToRemoteConfig() RemoteConfig {
	return NewRemoteConfig().
		WithServerURL(r.ServerURL).
		WithTimeout(seconds(r.Timeout))
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
