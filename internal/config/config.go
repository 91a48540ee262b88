// Package config loads critpath settings from a TOML file.
//
// A missing file is not an error: [Load] returns [DefaultConfig] and command
// line flags override whatever the file sets.
//
//	[server]
//	addr = ":8080"
//	max_body_bytes = 1048576
//	max_nodes = 10000
//	read_timeout = "10s"
//	cache_dir = "/var/cache/critpath"
//	cache_backend = "sqlite"   # or "file", or "redis" with redis_url
//
//	[schedule]
//	jobs = 4
//	format = "table"
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/critpath/pkg/errors"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "critpath.toml"

// Config holds all file-backed settings.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr         string   `toml:"addr"`           // Listen address (default ":8080")
	LogLevel     string   `toml:"log_level"`      // debug, info, warn, error
	MaxBodyBytes int64    `toml:"max_body_bytes"` // Request body limit
	MaxNodes     int      `toml:"max_nodes"`      // Largest project size accepted
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	Detailed     bool     `toml:"detailed"`  // Detailed labels in /schedule/dot
	CacheDir     string   `toml:"cache_dir"` // Rendered artifact cache, empty disables
	CacheTTL     Duration `toml:"cache_ttl"`
	CacheBackend string   `toml:"cache_backend"` // file, sqlite, redis
	RedisURL     string   `toml:"redis_url"`     // Used by the redis backend
}

// CacheEnabled reports whether rendered artifacts are cached. The file and
// sqlite backends need a cache_dir; redis needs only its URL.
func (c ServerConfig) CacheEnabled() bool {
	if c.CacheBackend == "redis" {
		return c.RedisURL != ""
	}
	return c.CacheDir != ""
}

// ScheduleConfig holds defaults for the schedule command.
type ScheduleConfig struct {
	Jobs   int    `toml:"jobs"`   // Files scheduled concurrently, 0 = unlimited
	Format string `toml:"format"` // table, json, csv
}

// Duration is a time.Duration that decodes from strings such as "10s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			LogLevel:     "info",
			MaxBodyBytes: 1 << 20,
			MaxNodes:     10000,
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
			CacheTTL:     Duration{7 * 24 * time.Hour},
			CacheBackend: "file",
		},
		Schedule: ScheduleConfig{
			Jobs:   4,
			Format: "table",
		},
	}
}

// Load reads the TOML file at path on top of [DefaultConfig]. A missing file
// yields the defaults; keys the file sets but Config does not know are
// rejected.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "server.addr must not be empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if c.Server.MaxNodes <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_nodes must be positive, got %d", c.Server.MaxNodes)
	}
	switch c.Server.CacheBackend {
	case "file", "sqlite":
	case "redis":
		if c.Server.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidInput, "server.redis_url is required for the redis cache backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "server.cache_backend %q is not one of file, sqlite, redis", c.Server.CacheBackend)
	}
	if c.Server.CacheEnabled() && c.Server.CacheTTL.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.cache_ttl must be positive when caching is enabled")
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "server.log_level %q is not one of debug, info, warn, error", c.Server.LogLevel)
	}
	if c.Schedule.Jobs < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "schedule.jobs must not be negative, got %d", c.Schedule.Jobs)
	}
	switch c.Schedule.Format {
	case "table", "json", "csv":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "schedule.format %q is not one of table, json, csv", c.Schedule.Format)
	}
	return nil
}
