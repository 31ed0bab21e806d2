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

// Package cmd provides the commands of the bobdoc program.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"zettelstore.de/bobdoc/config"
	"zettelstore.de/bobdoc/logger"
)

const (
	flagConfig   = "config"
	flagInPlace  = "in-place"
	flagOutput   = "output"
	flagLabel    = "label"
	stdinName    = "<stdin>"
	loggerPrefix = "bobdoc"
)

func init() {
	RegisterCommand(Command{
		Name:  "version",
		Short: "Print version information",
		Func: func(env *Env, _ []string) (int, error) {
			fmt.Fprintln(env.Stdout, env.Version.String())
			return 0, nil
		},
		Check: cobra.NoArgs,
	})
	RegisterCommand(Command{
		Name:  "config",
		Short: "Print the effective configuration",
		Func:  cmdConfig,
		Check: cobra.NoArgs,
	})
	RegisterCommand(Command{
		Name:  "transform",
		Args:  "[file...]",
		Short: "Replace diagram blocks in Markdown files by embedded SVG images",
		Func:  cmdTransform,
		Flags: func(fs *pflag.FlagSet) {
			fs.BoolP(flagInPlace, "i", false, "rewrite the files in place")
			fs.StringP(flagOutput, "o", "", "write the result to this file instead of stdout")
		},
	})
	RegisterCommand(Command{
		Name:  "html",
		Args:  "[file...]",
		Short: "Convert Markdown files to HTML with embedded diagrams",
		Func:  cmdHTML,
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagOutput, "o", "", "write the result to this file instead of stdout")
		},
	})
	RegisterCommand(Command{
		Name:  "render",
		Args:  "[file]",
		Short: "Render an ASCII-art diagram to SVG",
		Func:  cmdRender,
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagLabel, "l", "", "label of the diagram, used as title")
			fs.StringP(flagOutput, "o", "", "write the SVG to this file instead of stdout")
		},
		Check: cobra.MaximumNArgs(1),
	})
	RegisterCommand(Command{
		Name:  "watch",
		Args:  "dir",
		Short: "Transform Markdown files of a directory whenever they change",
		Func:  cmdWatch,
		Check: cobra.ExactArgs(1),
	})
}

func cmdConfig(env *Env, _ []string) (int, error) {
	if err := env.Config.Write(env.Stdout); err != nil {
		return 1, err
	}
	return 0, nil
}

func addConfigFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringP(flagConfig, "c", config.DefaultFile, "configuration file")
	fs.Float64(config.KeyStrokeWidth, def.StrokeWidth, "stroke width of lines, in pixel")
	fs.String(config.KeyFontFamily, def.FontFamily, "font family of texts")
	fs.Float64(config.KeyFontSize, def.FontSize, "font size of texts, in pixel")
	fs.Int(config.KeyCellWidth, def.CellWidth, "width of a character cell, in pixel")
	fs.Int(config.KeyCellHeight, def.CellHeight, "height of a character cell, in pixel")
	fs.Int(config.KeyTabSize, def.TabSize, "tab stops of diagrams")
	fs.String(config.KeySplit, def.Split, `split documents into fragments: "line" or "none"`)
	fs.String(config.KeyCacheDir, def.CacheDir, "directory to store rendered diagrams")
	fs.IntP(config.KeyJobs, "j", def.Jobs, "number of files processed in parallel")
	fs.String(config.KeyLogLevel, def.LogLevel, "log level: trace, debug, info, warn, error")
}

// getConfig reads the configuration file and applies all command line flags
// that were set explicitly.
func getConfig(fs *pflag.FlagSet) (*config.Config, error) {
	configFile, err := fs.GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configFile, !fs.Changed(flagConfig))
	if err != nil {
		return nil, err
	}
	fs.Visit(func(flg *pflag.Flag) {
		switch flg.Name {
		case config.KeyStrokeWidth:
			cfg.StrokeWidth, _ = fs.GetFloat64(flg.Name)
		case config.KeyFontFamily:
			cfg.FontFamily = flg.Value.String()
		case config.KeyFontSize:
			cfg.FontSize, _ = fs.GetFloat64(flg.Name)
		case config.KeyCellWidth:
			cfg.CellWidth, _ = fs.GetInt(flg.Name)
		case config.KeyCellHeight:
			cfg.CellHeight, _ = fs.GetInt(flg.Name)
		case config.KeyTabSize:
			cfg.TabSize, _ = fs.GetInt(flg.Name)
		case config.KeySplit:
			cfg.Split = flg.Value.String()
		case config.KeyCacheDir:
			cfg.CacheDir = flg.Value.String()
		case config.KeyJobs:
			cfg.Jobs, _ = fs.GetInt(flg.Name)
		case config.KeyLogLevel:
			cfg.LogLevel = flg.Value.String()
		}
	})
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func executeCommand(env *Env, command Command, fs *pflag.FlagSet, args []string) (int, error) {
	cfg, err := getConfig(fs)
	if err != nil {
		return 2, err
	}
	env.Config = cfg
	env.Log = logger.New(logger.NewLogWriterAdapter(env.Stderr), loggerPrefix).SetLevel(cfg.Level())
	env.Flags = fs
	env.Log.Trace().Str("command", command.Name).Int("args", len(args)).Msg("start")
	return command.Func(env, args)
}

func newRootCommand(env *Env, exitCode *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "bobdoc",
		Short:         "Render ASCII-art diagrams in Markdown documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addConfigFlags(root.PersistentFlags())
	for _, name := range List() {
		command, _ := Get(name)
		use := command.Name
		if command.Args != "" {
			use += " " + command.Args
		}
		cc := &cobra.Command{
			Use:   use,
			Short: command.Short,
			Args:  command.Check,
			RunE: func(cc *cobra.Command, args []string) error {
				env.Ctx = cc.Context()
				code, err := executeCommand(env, command, cc.Flags(), args)
				*exitCode = code
				return err
			},
		}
		if command.Flags != nil {
			command.Flags(cc.Flags())
		}
		root.AddCommand(cc)
	}
	return root
}

// Execute runs the command line given by args and returns the exit code.
func Execute(ctx context.Context, version config.Version, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env := &Env{
		Ctx:     ctx,
		Version: version,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
	}
	exitCode := 0
	root := newRootCommand(env, &exitCode)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", root.Name(), err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}

// Main is the real entrypoint of the bobdoc program.
func Main(progName, buildVersion string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := Execute(ctx, config.NewVersion(progName, buildVersion), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
