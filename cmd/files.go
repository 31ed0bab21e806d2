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
	"bytes"
	"errors"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// convertFunc converts the content of a named source.
type convertFunc func(name string, src []byte) ([]byte, error)

type converted struct {
	name string
	src  []byte
	dst  []byte
}

func (c *converted) changed() bool { return !bytes.Equal(c.src, c.dst) }

// convertFiles reads and converts all files in parallel. The result has the
// same order as the names.
func convertFiles(env *Env, names []string, conv convertFunc) ([]converted, error) {
	result := make([]converted, len(names))
	g, ctx := errgroup.WithContext(env.Ctx)
	g.SetLimit(env.Config.Jobs)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			dst, err := conv(name, src)
			if err != nil {
				return err
			}
			result[i] = converted{name: name, src: src, dst: dst}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

var errTerminal = errors.New("refusing to read from a terminal, give a file name or redirect stdin")

// readStdin reads all input of stdin, but not if stdin is an interactive
// terminal.
func readStdin(env *Env) ([]byte, error) {
	if f, ok := env.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errTerminal
	}
	return io.ReadAll(env.Stdin)
}

// convertInput converts the named files or stdin and writes the results to
// stdout or to the file given by the output flag.
func convertInput(env *Env, names []string, conv convertFunc) (int, error) {
	output, _ := env.Flags.GetString(flagOutput)
	var chunks [][]byte
	if len(names) == 0 {
		src, err := readStdin(env)
		if err != nil {
			return 2, err
		}
		dst, err := conv(stdinName, src)
		if err != nil {
			return 1, err
		}
		chunks = [][]byte{dst}
	} else {
		results, err := convertFiles(env, names, conv)
		if err != nil {
			return 1, err
		}
		chunks = make([][]byte, len(results))
		for i := range results {
			chunks[i] = results[i].dst
		}
	}

	if output == "" {
		for _, chunk := range chunks {
			if _, err := env.Stdout.Write(chunk); err != nil {
				return 1, err
			}
		}
		return 0, nil
	}
	if err := os.WriteFile(output, bytes.Join(chunks, nil), 0o644); err != nil {
		return 1, err
	}
	env.Log.Info().Str("file", output).Msg("output written")
	return 0, nil
}

// writeBack stores the new content of a file, keeping its permissions. It
// returns false if the content did not change.
func writeBack(c *converted) (bool, error) {
	if !c.changed() {
		return false, nil
	}
	fi, err := os.Stat(c.name)
	if err != nil {
		return false, err
	}
	return true, os.WriteFile(c.name, c.dst, fi.Mode().Perm())
}
