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
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

func cmdWatch(env *Env, args []string) (int, error) {
	if err := watchDir(env, args[0], nil); err != nil {
		return 1, err
	}
	return 0, nil
}

func isMarkdownFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// watchDir transforms all Markdown files of the directory in place, and
// again whenever one of them is written. Errors of single files are only
// logged, because they are often fixed by the next write. The function
// returns when the context of the environment is done. Ready is called after
// the watcher is set up.
func watchDir(env *Env, dir string, ready func()) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err = watcher.Add(absDir); err != nil {
		return err
	}

	conv := transformFunc(env)
	process := func(name string) {
		log := env.Log.Clone().Str("file", name).Child()
		src, err := os.ReadFile(name)
		if err != nil {
			log.Warn().Err(err).Msg("unable to read file")
			return
		}
		dst, err := conv(name, src)
		if err != nil {
			log.Warn().Err(err).Msg("unable to transform file")
			return
		}
		updated, err := writeBack(&converted{name: name, src: src, dst: dst})
		if err != nil {
			log.Error().Err(err).Msg("unable to write file")
		} else if updated {
			log.Info().Msg("file updated")
		}
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && isMarkdownFile(entry.Name()) {
			process(filepath.Join(absDir, entry.Name()))
		}
	}
	env.Log.Info().Str("dir", absDir).Msg("watching")
	if ready != nil {
		ready()
	}

	for {
		select {
		case <-env.Ctx.Done():
			env.Log.Debug().Str("dir", absDir).Msg("stop watching")
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			env.Log.Warn().Err(err).Msg("watch error")
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			env.Log.Trace().Str("name", ev.Name).Str("op", ev.Op.String()).Msg("file event")
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !isMarkdownFile(ev.Name) {
				continue
			}
			if fi, err := os.Lstat(ev.Name); err != nil || !fi.Mode().IsRegular() {
				continue
			}
			process(ev.Name)
		}
	}
}
