// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the bimapbench driver.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gaissmai/bimap/internal/workload"
)

// ErrInvalid is returned by [Config.Validate].
var ErrInvalid = errors.New("config: invalid")

// DefaultPaths are searched in order by Load with an empty path.
var DefaultPaths = []string{"configs/bimapbench.yaml", "bimapbench.yaml"}

type Config struct {
	Workload    WorkloadConfig `yaml:"workload"`
	VerifyEvery int            `yaml:"verify_every"` // 0 disables invariant checks
	Log         LogConfig      `yaml:"log"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

type WorkloadConfig struct {
	Seed       uint64    `yaml:"seed"`
	Operations int       `yaml:"operations"`
	KeySpace   int       `yaml:"key_space"`
	RightKeys  string    `yaml:"right_keys"` // uuid or int
	Mix        MixConfig `yaml:"mix"`
}

type MixConfig struct {
	Insert    int `yaml:"insert"`
	Erase     int `yaml:"erase"`
	Find      int `yaml:"find"`
	OrDefault int `yaml:"or_default"`
	Clone     int `yaml:"clone"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // serve /metrics if not empty, e.g. :2112
}

// Default returns the configuration used for missing values.
func Default() *Config {
	return &Config{
		Workload: WorkloadConfig{
			Seed:       42,
			Operations: 100_000,
			KeySpace:   10_000,
			RightKeys:  workload.RightUUID,
			Mix: MixConfig{
				Insert:    40,
				Erase:     20,
				Find:      25,
				OrDefault: 10,
				Clone:     5,
			},
		},
		VerifyEvery: 1000,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration at path over the defaults.
// With an empty path the DefaultPaths are tried, no file found is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, p := range DefaultPaths {
			data, err := os.ReadFile(p)
			if err != nil {
				continue
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return cfg, fmt.Errorf("config: %s: %w", p, err)
			}
			break
		}
		applyDefaults(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Workload.Operations <= 0 {
		cfg.Workload.Operations = def.Workload.Operations
	}
	if cfg.Workload.KeySpace <= 0 {
		cfg.Workload.KeySpace = def.Workload.KeySpace
	}
	if cfg.Workload.RightKeys == "" {
		cfg.Workload.RightKeys = def.Workload.RightKeys
	}
	if cfg.VerifyEvery < 0 {
		cfg.VerifyEvery = 0
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}

// Validate reports an error wrapping [ErrInvalid] for values
// that have no sensible default.
func (c *Config) Validate() error {
	if err := c.Workload.Generator().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Generator returns the workload generator configuration.
func (w WorkloadConfig) Generator() workload.Config {
	return workload.Config{
		Seed:      w.Seed,
		KeySpace:  w.KeySpace,
		RightKeys: w.RightKeys,
		Mix: workload.Mix{
			Insert:    w.Mix.Insert,
			Erase:     w.Mix.Erase,
			Find:      w.Mix.Find,
			OrDefault: w.Mix.OrDefault,
			Clone:     w.Mix.Clone,
		},
	}
}

// SlogLevel parses the level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}
