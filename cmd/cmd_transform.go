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
	"errors"

	"zettelstore.de/bobdoc/document"
	"zettelstore.de/bobdoc/fence"
	"zettelstore.de/bobdoc/markdown"
)

// transformFunc returns the function that replaces all diagram blocks of a
// Markdown document.
func transformFunc(env *Env) convertFunc {
	emb := env.Embedder()
	split := env.Config.SplitFunc()
	return func(name string, src []byte) ([]byte, error) {
		diagrams := 0
		counter := fence.EmbedderFunc(func(source, label string) (string, error) {
			diagrams++
			return emb.Embed(source, label)
		})
		text, err := document.Concat(split(name, src), counter)
		if err != nil {
			return nil, err
		}
		env.Log.Debug().Str("file", name).Int("diagrams", diagrams).Msg("transformed")
		return []byte(text), nil
	}
}

func cmdTransform(env *Env, args []string) (int, error) {
	inPlace, _ := env.Flags.GetBool(flagInPlace)
	output, _ := env.Flags.GetString(flagOutput)
	conv := transformFunc(env)
	if !inPlace {
		if output != "" && len(args) > 1 {
			return 2, errors.New("output file needs at most one input file")
		}
		return convertInput(env, args, conv)
	}

	if output != "" || len(args) == 0 {
		return 2, errors.New("in-place transformation needs files and no output file")
	}
	results, err := convertFiles(env, args, conv)
	if err != nil {
		return 1, err
	}
	for i := range results {
		updated, err := writeBack(&results[i])
		if err != nil {
			return 1, err
		}
		if updated {
			env.Log.Info().Str("file", results[i].name).Msg("file updated")
		}
	}
	return 0, nil
}

func cmdHTML(env *Env, args []string) (int, error) {
	emb := env.Embedder()
	return convertInput(env, args, func(_ string, src []byte) ([]byte, error) {
		return markdown.ToHTML(src, emb)
	})
}

func cmdRender(env *Env, args []string) (int, error) {
	label, _ := env.Flags.GetString(flagLabel)
	emb := env.Embedder()
	return convertInput(env, args, func(_ string, src []byte) ([]byte, error) {
		return emb.Render(string(src), label)
	})
}
