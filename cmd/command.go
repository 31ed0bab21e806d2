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

package cmd

import (
	"context"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"zettelstore.de/bobdoc/cache"
	"zettelstore.de/bobdoc/config"
	"zettelstore.de/bobdoc/diagram"
	"zettelstore.de/bobdoc/logger"
)

// Command stores information about commands / sub-commands.
type Command struct {
	Name  string               // command name as it appears on the command line
	Args  string               // description of the arguments, for the usage line
	Short string               // one line description
	Func  CommandFunc          // function that executes a command
	Flags func(*pflag.FlagSet) // function to set up command specific flags
	Check cobra.PositionalArgs // validates the number of arguments
}

// CommandFunc is the function that executes the command. It returns the
// exit code of the program and an error to be reported.
type CommandFunc func(env *Env, args []string) (int, error)

// Env is the environment of a running command.
type Env struct {
	Ctx     context.Context
	Config  *config.Config
	Log     *logger.Logger
	Version config.Version
	Flags   *pflag.FlagSet
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer

	embedder *diagram.Embedder
}

// Embedder returns the diagram embedder, configured by the environment.
func (env *Env) Embedder() *diagram.Embedder {
	if env.embedder == nil {
		c := cache.New(env.Config.CacheDir, env.Log.Clone().Str("module", "cache").Child())
		env.embedder = diagram.New(
			nil, env.Config.Settings(), c, env.Log.Clone().Str("module", "diagram").Child())
	}
	return env.embedder
}

var commands = make(map[string]Command)

// RegisterCommand registers the given command.
func RegisterCommand(cmd Command) {
	if cmd.Name == "" || cmd.Func == nil {
		panic("Required command values missing")
	}
	if _, ok := commands[cmd.Name]; ok {
		panic("Command already registered: " + cmd.Name)
	}
	commands[cmd.Name] = cmd
}

// Get returns the command identified by the given name and a bool to signal
// success.
func Get(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered command names.
func List() []string {
	result := make([]string, 0, len(commands))
	for name := range commands {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
