package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/quizdeck/internal/site"
)

// Config holds all application configuration.
type Config struct {
	Web WebConfig
	Log LogConfig

	// StartPath is the path the terminal client opens. Default: "/".
	StartPath string
}

// WebConfig configures the HTML front end.
type WebConfig struct {
	Addr    string // Default: ":8080"
	TLSCert string // Optional. Requires TLSKey.
	TLSKey  string // Optional. Requires TLSCert.

	// HTTP3 additionally serves HTTP/3 over QUIC on the same port.
	// Requires TLS.
	HTTP3 bool

	// ShutdownTimeout bounds graceful shutdown. Default: 5s.
	ShutdownTimeout time.Duration
}

// TLS reports whether a certificate pair is configured.
func (w WebConfig) TLS() bool {
	return w.TLSCert != "" && w.TLSKey != ""
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string // debug, info, warn, error. Default: "info"
	Format string // text or json. Default: "text"
	File   string // Optional. Log destination instead of stderr.
}

var (
	// ErrMissingValue is returned for required settings left empty.
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidValue is returned for settings outside their allowed set.
	ErrInvalidValue = errors.New("invalid value")
)

// ConfigError describes a setting that failed validation.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Web: WebConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		StartPath: site.RootPath,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Malformed values are reported by Validate.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("QUIZDECK_ADDR"); v != "" {
		cfg.Web.Addr = v
	}
	if v := os.Getenv("QUIZDECK_TLS_CERT"); v != "" {
		cfg.Web.TLSCert = v
	}
	if v := os.Getenv("QUIZDECK_TLS_KEY"); v != "" {
		cfg.Web.TLSKey = v
	}
	if v := os.Getenv("QUIZDECK_HTTP3"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, &ConfigError{Field: "QUIZDECK_HTTP3", Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
		}
		cfg.Web.HTTP3 = b
	}
	if v := os.Getenv("QUIZDECK_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, &ConfigError{Field: "QUIZDECK_SHUTDOWN_TIMEOUT", Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
		}
		cfg.Web.ShutdownTimeout = d
	}

	if v := os.Getenv("QUIZDECK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("QUIZDECK_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv("QUIZDECK_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	if v := os.Getenv("QUIZDECK_START_PATH"); v != "" {
		cfg.StartPath = v
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.Web.Addr == "" {
		return &ConfigError{Field: "web.addr", Err: ErrMissingValue}
	}
	if (c.Web.TLSCert == "") != (c.Web.TLSKey == "") {
		return &ConfigError{Field: "web.tls", Err: fmt.Errorf("%w: certificate and key must be set together", ErrMissingValue)}
	}
	if c.Web.HTTP3 && !c.Web.TLS() {
		return &ConfigError{Field: "web.http3", Err: fmt.Errorf("%w: HTTP/3 requires TLS", ErrInvalidValue)}
	}
	if c.Web.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "web.shutdown_timeout", Err: fmt.Errorf("%w: must be positive", ErrInvalidValue)}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Err: fmt.Errorf("%w: %q", ErrInvalidValue, c.Log.Level)}
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return &ConfigError{Field: "log.format", Err: fmt.Errorf("%w: %q", ErrInvalidValue, c.Log.Format)}
	}

	if !strings.HasPrefix(c.StartPath, "/") {
		return &ConfigError{Field: "start_path", Err: fmt.Errorf("%w: %q is not absolute", ErrInvalidValue, c.StartPath)}
	}
	return nil
}
