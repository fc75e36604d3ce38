// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultHost                  = "0.0.0.0"
	DefaultPort                  = 8080
	DefaultLogLevel              = "INFO"
	DefaultBasePath              = "/AntigoneApp"
	DefaultTotalLines            = 1353
	DefaultMaxConcurrentRequests = 64
	DefaultRequestTimeout        = 30 * time.Second
	DefaultRemoteTimeout         = 15 * time.Second
	DefaultDatabaseFile          = "antigone.db"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// RemoteConfig configures the connection to a remote antigone server.
type RemoteConfig struct {
	serverURL string
	timeout   time.Duration
}

// NewRemoteConfig creates a new RemoteConfig with defaults.
func NewRemoteConfig() RemoteConfig {
	return RemoteConfig{timeout: DefaultRemoteTimeout}
}

// ServerURL returns the remote server URL, including the base path.
func (r RemoteConfig) ServerURL() string { return r.serverURL }

// Timeout returns the per-request timeout.
func (r RemoteConfig) Timeout() time.Duration { return r.timeout }

// IsConfigured returns true if a server URL is set.
func (r RemoteConfig) IsConfigured() bool { return r.serverURL != "" }

// WithServerURL returns a copy with the server URL set.
func (r RemoteConfig) WithServerURL(url string) RemoteConfig {
	r.serverURL = strings.TrimRight(url, "/")
	return r
}

// WithTimeout returns a copy with the timeout set. Non-positive values are ignored.
func (r RemoteConfig) WithTimeout(d time.Duration) RemoteConfig {
	if d > 0 {
		r.timeout = d
	}
	return r
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	host                  string
	port                  int
	dataDir               string
	dbURL                 string
	logLevel              string
	logFormat             LogFormat
	basePath              string
	totalLines            int
	corsOrigins           []string
	maxConcurrentRequests int
	requestTimeout        time.Duration
	remote                RemoteConfig
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".antigone"
	}
	return filepath.Join(home, ".antigone")
}

// PrepareDataDir creates the data directory if it does not exist and returns it.
func PrepareDataDir(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dataDir, nil
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:                  DefaultHost,
		port:                  DefaultPort,
		dataDir:               dataDir,
		dbURL:                 "sqlite:///" + filepath.Join(dataDir, DefaultDatabaseFile),
		logLevel:              DefaultLogLevel,
		logFormat:             LogFormatPretty,
		basePath:              DefaultBasePath,
		totalLines:            DefaultTotalLines,
		corsOrigins:           []string{"*"},
		maxConcurrentRequests: DefaultMaxConcurrentRequests,
		requestTimeout:        DefaultRequestTimeout,
		remote:                NewRemoteConfig(),
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// BasePath returns the URL prefix every API route is mounted under.
func (c AppConfig) BasePath() string { return c.basePath }

// TotalLines returns the number of lines in the text.
func (c AppConfig) TotalLines() int { return c.totalLines }

// CORSOrigins returns the allowed cross-origin request origins.
func (c AppConfig) CORSOrigins() []string {
	origins := make([]string, len(c.corsOrigins))
	copy(origins, c.corsOrigins)
	return origins
}

// MaxConcurrentRequests returns the in-flight request limit.
func (c AppConfig) MaxConcurrentRequests() int { return c.maxConcurrentRequests }

// RequestTimeout returns the per-request processing deadline.
func (c AppConfig) RequestTimeout() time.Duration { return c.requestTimeout }

// Remote returns the remote config.
func (c AppConfig) Remote() RemoteConfig { return c.remote }

// IsRemote returns true if running against a remote server.
func (c AppConfig) IsRemote() bool {
	return c.remote.IsConfigured()
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		// Keep the default database next to the data directory.
		if c.dbURL == "" || strings.HasSuffix(c.dbURL, DefaultDatabaseFile) {
			c.dbURL = "sqlite:///" + filepath.Join(dir, DefaultDatabaseFile)
		}
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithBasePath sets the API base path. A leading slash is added and a
// trailing one removed; "/" and "" mount at the root.
func WithBasePath(path string) AppConfigOption {
	return func(c *AppConfig) { c.basePath = NormalizeBasePath(path) }
}

// WithTotalLines sets the number of lines in the text.
func WithTotalLines(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.totalLines = n
		}
	}
}

// WithCORSOrigins sets the allowed origins.
func WithCORSOrigins(origins []string) AppConfigOption {
	return func(c *AppConfig) {
		c.corsOrigins = make([]string, len(origins))
		copy(c.corsOrigins, origins)
	}
}

// WithMaxConcurrentRequests sets the in-flight request limit.
func WithMaxConcurrentRequests(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.maxConcurrentRequests = n
		}
	}
}

// WithRequestTimeout sets the per-request deadline.
func WithRequestTimeout(d time.Duration) AppConfigOption {
	return func(c *AppConfig) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

// WithRemoteConfig sets the remote config.
func WithRemoteConfig(r RemoteConfig) AppConfigOption {
	return func(c *AppConfig) { c.remote = r }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("data_dir", c.dataDir),
		slog.String("log_level", c.logLevel),
		slog.String("db_url", c.maskedDBURL()),
		slog.String("base_path", c.basePath),
		slog.Int("total_lines", c.totalLines),
		slog.Int("max_concurrent_requests", c.maxConcurrentRequests),
		slog.Duration("request_timeout", c.requestTimeout),
	}
}

func (c AppConfig) maskedDBURL() string {
	if c.dbURL == "" {
		return "(default)"
	}
	if strings.HasPrefix(c.dbURL, "sqlite:") {
		return c.dbURL
	}
	return "postgres://***@***"
}

// NormalizeBasePath returns path with a single leading slash and no
// trailing slash. The root path normalizes to "".
func NormalizeBasePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}
	return "/" + path
}

// ParseList parses a comma-separated list, dropping blank entries.
func ParseList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
