// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gaissmai/bimap/internal/config"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := new(rootFlags)

	root := &cobra.Command{
		Use:           "bimapbench",
		Short:         "Random workloads against a bijective map",
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"YAML config file, default: "+fmt.Sprint(config.DefaultPaths))

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newDumpCmd(flags))

	return root
}

// loadConfig loads and validates the config, overrides are applied in between.
func loadConfig(path string, override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a text or json logger writing to w.
func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	lvl, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
