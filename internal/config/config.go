package config

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct{ v *viper.Viper }

func New() *Config {
	vv := viper.New()
	vv.AutomaticEnv()
	return &Config{v: vv}
}

// ReadSourcesFile loads the YAML sources file at path into this config.
// Keys in the file are overridden by environment variables of the same name.
func (c *Config) ReadSourcesFile(path string) error {
	c.v.SetConfigFile(path)
	c.v.SetConfigType("yaml")
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read sources file %s: %w", path, err)
	}
	slog.Debug("sources file loaded", "path", c.v.ConfigFileUsed())
	return nil
}

// GetSourcesFile returns the sources file path from env var SOURCES_FILE; defaults to sources.yaml.
func (c *Config) GetSourcesFile() string {
	if p := c.v.GetString("SOURCES_FILE"); p != "" {
		return p
	}
	return "sources.yaml"
}

func (c *Config) GetGitHubToken() string {
	if t := c.v.GetString("GITHUB_TOKEN"); t != "" {
		return t
	}
	return c.v.GetString("GH_TOKEN")
}

// GetGitHubBaseURL returns the GitHub API base URL override from GITHUB_API_URL.
// Empty means the public API.
func (c *Config) GetGitHubBaseURL() string { return c.v.GetString("GITHUB_API_URL") }

// GetAddr returns the listen address from ADDR, else HOST and PORT
// (defaults localhost and 8080).
func (c *Config) GetAddr() string {
	if a := c.v.GetString("ADDR"); a != "" {
		return a
	}
	port := c.v.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	host := c.v.GetString("HOST")
	if host == "" {
		host = "localhost"
	}
	return host + ":" + port
}

// GetHTTPTimeout returns the per-request timeout for external fetches.
// Reads duration from env var HTTP_TIMEOUT; defaults to 15s.
func (c *Config) GetHTTPTimeout() time.Duration {
	const def = 15 * time.Second
	if v := c.v.GetString("HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

// GetLoadConcurrency returns how many items a load pass fetches at once.
// Reads LOAD_CONCURRENCY; defaults to 1 (sequential).
func (c *Config) GetLoadConcurrency() int {
	if n := c.v.GetInt("LOAD_CONCURRENCY"); n > 0 {
		return n
	}
	return 1
}

// GetContentFile returns the content snapshot path from CONTENT_FILE; defaults to content.json.
func (c *Config) GetContentFile() string {
	if p := c.v.GetString("CONTENT_FILE"); p != "" {
		return p
	}
	return "content.json"
}

// GetProfileFile returns the profile data path from PROFILE_FILE; defaults to data.yaml.
func (c *Config) GetProfileFile() string {
	if p := c.v.GetString("PROFILE_FILE"); p != "" {
		return p
	}
	return "data.yaml"
}

// GetOGDir returns the directory social-preview images are written to.
func (c *Config) GetOGDir() string {
	if p := c.v.GetString("OG_DIR"); p != "" {
		return p
	}
	return "public/og"
}

func (c *Config) GetServiceName() string {
	if n := c.v.GetString("OTEL_SERVICE_NAME"); n != "" {
		return n
	}
	return "portfolio"
}

// GetServiceVersion returns SERVICE_VERSION, else the main module version
// from the build info, else "dev".
func (c *Config) GetServiceVersion() string {
	if v := c.v.GetString("SERVICE_VERSION"); v != "" {
		return v
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

// GetLogFormat returns "json" when LOG_FORMAT asks for it, else "text".
func (c *Config) GetLogFormat() string {
	if strings.EqualFold(c.v.GetString("LOG_FORMAT"), "json") {
		return "json"
	}
	return "text"
}

// GetTelemetryEnabled reports whether an OTLP endpoint is configured.
func (c *Config) GetTelemetryEnabled() bool {
	return c.v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		c.v.GetString("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != ""
}

func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

// GetLogLevel returns the log level from env var LOG_LEVEL mapped to slog.Level.
// Recognized values: debug, info (default), warn|warning, error.
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToLower(c.v.GetString("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OnLogLevelChange calls fn with the slog.Level whenever it changes.
// The initial call is made immediately.
func (c *Config) OnLogLevelChange(fn func(slog.Level)) {
	apply := func() { fn(c.GetLogLevel()) }
	apply()
	c.v.OnConfigChange(func(e fsnotify.Event) { apply() })
}

// Watch reloads the sources file on change for the life of the process, so
// a LOG_LEVEL key in it takes effect without a restart.
func (c *Config) Watch() {
	if c.v.ConfigFileUsed() == "" {
		return
	}
	c.v.WatchConfig()
}
