package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/qirsim/config"
)

// loadConfig reads the configuration file, if any, and applies the flags
// the user set on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("qubits") {
		cfg.Qubits, _ = flags.GetInt("qubits")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if f := flags.Lookup("shots"); f != nil && f.Changed {
		cfg.Shots, _ = flags.GetInt("shots")
	}
	if f := flags.Lookup("seed"); f != nil && f.Changed {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if f := flags.Lookup("max-steps"); f != nil && f.Changed {
		cfg.MaxSteps, _ = flags.GetInt("max-steps")
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Format, _ = flags.GetString("format")
	}
	if f := flags.Lookup("jobs"); f != nil && f.Changed {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if f := flags.Lookup("tick"); f != nil && f.Changed {
		cfg.Tick, _ = flags.GetBool("tick")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	setupLogging(cfg)

	return cfg, nil
}

func setupLogging(cfg config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	slog.SetDefault(slog.New(handler))
}
