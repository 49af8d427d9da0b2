// Package config provides the run configuration of the simulator, with
// defaults that can be overridden from a YAML or TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/qirsim/api"
	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/report"
	"github.com/sarchlab/qirsim/statevec"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config holds everything a run can be tuned with.
type Config struct {
	Qubits        int     `yaml:"qubits" toml:"qubits"`
	Shots         int     `yaml:"shots" toml:"shots"`
	Seed          uint64  `yaml:"seed" toml:"seed"`
	MaxSteps      int     `yaml:"max_steps" toml:"max_steps"`
	Threshold     float64 `yaml:"threshold" toml:"threshold"`
	BulkThreshold float64 `yaml:"bulk_threshold" toml:"bulk_threshold"`
	Format        string  `yaml:"format" toml:"format"`
	Jobs          int     `yaml:"jobs" toml:"jobs"`
	LogLevel      string  `yaml:"log_level" toml:"log_level"`
	Tick          bool    `yaml:"tick" toml:"tick"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Qubits:        10,
		Shots:         1,
		Threshold:     report.PrintThreshold,
		BulkThreshold: report.BulkThreshold,
		Format:        report.FormatTable,
		Jobs:          runtime.GOMAXPROCS(0),
		LogLevel:      "warn",
	}
}

// Load reads a configuration file on top of the defaults. The file type is
// taken from the extension.
func Load(path string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: unsupported config file %q", ErrInvalid, path)
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.Qubits < 1 || c.Qubits > statevec.MaxQubits {
		return fmt.Errorf("%w: qubits must be between 1 and %d, got %d",
			ErrInvalid, statevec.MaxQubits, c.Qubits)
	}

	if c.Shots < 1 {
		return fmt.Errorf("%w: shots must be positive, got %d", ErrInvalid, c.Shots)
	}

	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must not be negative", ErrInvalid)
	}

	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be positive, got %d", ErrInvalid, c.Jobs)
	}

	if !report.IsFormat(c.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseLevel converts a level name to a slog level. "trace" is the level the
// packages of this module log their traces at.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "trace":
		return qir.LevelTrace, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, name)
	}
}

// SlogLevel returns the configured log level, falling back to warn.
func (c Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}

	return level
}

// DriverBuilder returns a driver builder set up from the configuration.
func (c Config) DriverBuilder() api.DriverBuilder {
	b := api.NewDriverBuilder().
		WithQubits(c.Qubits).
		WithMaxSteps(c.MaxSteps).
		WithJobs(c.Jobs).
		WithThreshold(c.BulkThreshold).
		WithTickEngine(c.Tick)

	if c.Seed != 0 {
		b = b.WithSeed(c.Seed)
	}

	return b
}
