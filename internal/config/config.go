// Package config assembles the service configuration from defaults, an
// optional YAML file and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"article-service/internal/infra/db"
	pkgconfig "article-service/pkg/config"
)

// Config is the complete service configuration.
type Config struct {
	Database db.Config     `yaml:"database"`
	HTTP     HTTPConfig    `yaml:"http"`
	Log      LogConfig     `yaml:"log"`
	Tracing  TracingConfig `yaml:"tracing"`
	Version  string        `yaml:"version"`
}

// HTTPConfig configures the listener and per-request limits.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig configures the OpenTelemetry tracer provider.
type TracingConfig struct {
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Database: db.Config{
			Driver: db.DriverPostgres,
			Pool:   db.DefaultConnectionConfig(),
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			RequestTimeout:  10 * time.Second,
			MaxBodyBytes:    1 << 20,
			ShutdownTimeout: 5 * time.Second,
		},
		Log:     LogConfig{Level: "info", Format: "json"},
		Tracing: TracingConfig{SampleRatio: 1.0},
		Version: "dev",
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment are consulted.
// The path parameter is expected to come from a trusted source (flag or env).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is provided by the operator, not request input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.Database.Driver = pkgconfig.GetEnvString("DATABASE_DRIVER", c.Database.Driver)
	c.Database.DSN = pkgconfig.GetEnvString("DATABASE_URL", c.Database.DSN)
	c.Database.Pool.MaxOpenConns = pkgconfig.GetEnvInt("DB_MAX_OPEN_CONNS", c.Database.Pool.MaxOpenConns)
	c.Database.Pool.MaxIdleConns = pkgconfig.GetEnvInt("DB_MAX_IDLE_CONNS", c.Database.Pool.MaxIdleConns)
	c.Database.Pool.ConnMaxLifetime = pkgconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", c.Database.Pool.ConnMaxLifetime)
	c.Database.Pool.ConnMaxIdleTime = pkgconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.Database.Pool.ConnMaxIdleTime)

	c.HTTP.Addr = pkgconfig.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.RequestTimeout = pkgconfig.GetEnvDuration("HTTP_REQUEST_TIMEOUT", c.HTTP.RequestTimeout)
	c.HTTP.MaxBodyBytes = pkgconfig.GetEnvInt64("HTTP_MAX_BODY_BYTES", c.HTTP.MaxBodyBytes)
	c.HTTP.ShutdownTimeout = pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)

	c.Log.Level = pkgconfig.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = pkgconfig.GetEnvString("LOG_FORMAT", c.Log.Format)
	c.Tracing.SampleRatio = pkgconfig.GetEnvFloat("TRACING_SAMPLE_RATIO", c.Tracing.SampleRatio)
	c.Version = pkgconfig.GetEnvString("VERSION", c.Version)
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var errs []error

	if _, err := db.DriverName(c.Database.Driver); err != nil {
		errs = append(errs, err)
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("DATABASE_URL not set"))
	}
	pool := c.Database.Pool
	if pool.MaxOpenConns < 0 || pool.MaxIdleConns < 0 {
		errs = append(errs, errors.New("pool sizes must be non-negative"))
	}
	if pool.MaxOpenConns > 0 && pool.MaxIdleConns > pool.MaxOpenConns {
		errs = append(errs, fmt.Errorf("max idle conns (%d) exceeds max open conns (%d)",
			pool.MaxIdleConns, pool.MaxOpenConns))
	}
	if err := pkgconfig.ValidateNonNegativeDuration(pool.ConnMaxLifetime); err != nil {
		errs = append(errs, fmt.Errorf("conn max lifetime: %w", err))
	}
	if err := pkgconfig.ValidateNonNegativeDuration(pool.ConnMaxIdleTime); err != nil {
		errs = append(errs, fmt.Errorf("conn max idle time: %w", err))
	}

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http addr is required"))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.HTTP.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("request timeout: %w", err))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.HTTP.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("shutdown timeout: %w", err))
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("max body bytes must be positive, got %d", c.HTTP.MaxBodyBytes))
	}
	if err := pkgconfig.ValidateRange(c.Tracing.SampleRatio, 0, 1); err != nil {
		errs = append(errs, fmt.Errorf("tracing sample ratio: %w", err))
	}

	return errors.Join(errs...)
}
