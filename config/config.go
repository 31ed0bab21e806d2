//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of bobdoc.
//
// bobdoc is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2026-present Detlef Stern
//-----------------------------------------------------------------------------

// Package config provides the configuration of bobdoc.
//
// The configuration is read from a TOML file, by default ".bobdoc.toml" in
// the current directory. Command line flags override the values of the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"zettelstore.de/bobdoc/diagram"
	"zettelstore.de/bobdoc/document"
	"zettelstore.de/bobdoc/logger"
)

// DefaultFile is the name of the configuration file, if no other is given.
const DefaultFile = ".bobdoc.toml"

// Keys of the configuration file. They are also used as names of command
// line flags.
const (
	KeyStrokeWidth = "stroke-width"
	KeyFontFamily  = "font-family"
	KeyFontSize    = "font-size"
	KeyCellWidth   = "cell-width"
	KeyCellHeight  = "cell-height"
	KeyTabSize     = "tab-size"
	KeySplit       = "split"
	KeyCacheDir    = "cache-dir"
	KeyJobs        = "jobs"
	KeyLogLevel    = "log-level"
)

// Config stores all configuration values.
type Config struct {
	StrokeWidth float64 `toml:"stroke-width"`
	FontFamily  string  `toml:"font-family"`
	FontSize    float64 `toml:"font-size"`
	CellWidth   int     `toml:"cell-width"`
	CellHeight  int     `toml:"cell-height"`
	TabSize     int     `toml:"tab-size"`
	Split       string  `toml:"split"`     // "line" or "none"
	CacheDir    string  `toml:"cache-dir"` // empty: cache only in memory
	Jobs        int     `toml:"jobs"`      // number of files processed in parallel
	LogLevel    string  `toml:"log-level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	s := diagram.DefaultSettings()
	return &Config{
		StrokeWidth: s.StrokeWidth,
		FontFamily:  s.FontFamily,
		FontSize:    s.FontSize,
		CellWidth:   s.CellWidth,
		CellHeight:  s.CellHeight,
		TabSize:     s.TabSize,
		Split:       document.SplitModeLine,
		Jobs:        runtime.NumCPU(),
		LogLevel:    logger.InfoLevel.String(),
	}
}

// Load reads the configuration file. Values not given in the file keep
// their default value. If optional is true, a missing file is not an error.
func Load(name string, optional bool) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(name, cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("unable to read configuration %q: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("configuration %q: unknown keys %s", name, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks all values and returns an error for every invalid one.
func (cfg *Config) Validate() error {
	var errs []error
	check := func(ok bool, key string, val any) {
		if !ok {
			errs = append(errs, fmt.Errorf("invalid value for %s: %v", key, val))
		}
	}
	check(cfg.StrokeWidth > 0, KeyStrokeWidth, cfg.StrokeWidth)
	check(strings.TrimSpace(cfg.FontFamily) != "", KeyFontFamily, cfg.FontFamily)
	check(cfg.FontSize > 0, KeyFontSize, cfg.FontSize)
	check(cfg.CellWidth > 0, KeyCellWidth, cfg.CellWidth)
	check(cfg.CellHeight > 0, KeyCellHeight, cfg.CellHeight)
	check(cfg.TabSize > 0, KeyTabSize, cfg.TabSize)
	check(document.GetSplitFunc(cfg.Split) != nil, KeySplit, cfg.Split)
	check(cfg.Jobs > 0, KeyJobs, cfg.Jobs)
	check(logger.ParseLevel(cfg.LogLevel) != logger.NoLevel, KeyLogLevel, cfg.LogLevel)
	return errors.Join(errs...)
}

// Settings returns the settings for rendering diagrams.
func (cfg *Config) Settings() diagram.Settings {
	return diagram.Settings{
		StrokeWidth: cfg.StrokeWidth,
		FontFamily:  cfg.FontFamily,
		FontSize:    cfg.FontSize,
		CellWidth:   cfg.CellWidth,
		CellHeight:  cfg.CellHeight,
		TabSize:     cfg.TabSize,
	}
}

// Level returns the log level.
func (cfg *Config) Level() logger.Level { return logger.ParseLevel(cfg.LogLevel) }

// SplitFunc returns the function to split documents into fragments.
func (cfg *Config) SplitFunc() document.SplitFunc { return document.GetSplitFunc(cfg.Split) }

// Write writes the configuration in TOML format.
func (cfg *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}
