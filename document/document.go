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

// Package document runs the diagram scanner over all fragments of a
// document.
package document

import (
	"bytes"
	"strconv"
	"strings"

	"zettelstore.de/bobdoc/fence"
)

// Fragment is a piece of documentation text, together with its origin.
type Fragment struct {
	Text string
	Pos  fence.Position // nil, if the text was synthesized
}

// LinePos is the position of a fragment within a named source.
type LinePos struct {
	Name string
	Line int // starting with 1; 0 if the fragment is the whole source
}

func (p LinePos) String() string {
	if p.Line <= 0 {
		return p.Name
	}
	return p.Name + ":" + strconv.Itoa(p.Line)
}

// Transform replaces all diagram blocks of the fragments by images.
//
// An unchanged fragment is returned as it is, including its position. A
// changed fragment loses its position, and a fragment that consisted only
// of diagram lines is removed.
func Transform(frags []Fragment, emb fence.Embedder) ([]Fragment, error) {
	st := fence.NewState(emb)
	result := make([]Fragment, 0, len(frags))
	for _, frag := range frags {
		switch out := st.Step(frag.Text, frag.Pos); out.Kind {
		case fence.Passthrough:
			result = append(result, frag)
		case fence.Fragment:
			result = append(result, Fragment{Text: out.Text})
		}
	}
	if err := st.Finalize(); err != nil {
		return nil, err
	}
	return result, nil
}

// Concat transforms the fragments and concatenates the result.
func Concat(frags []Fragment, emb fence.Embedder) (string, error) {
	result, err := Transform(frags, emb)
	if err != nil {
		return "", err
	}
	return Join(result), nil
}

// Join concatenates the texts of all fragments.
func Join(frags []Fragment) string {
	n := 0
	for _, frag := range frags {
		n += len(frag.Text)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, frag := range frags {
		sb.WriteString(frag.Text)
	}
	return sb.String()
}

// SplitLines returns one fragment per line of the source. Each fragment
// keeps its line terminator, so that Join restores the source.
func SplitLines(name string, src []byte) []Fragment {
	result := make([]Fragment, 0, bytes.Count(src, []byte{'\n'})+1)
	for line := 1; len(src) > 0; line++ {
		end := len(src)
		if pos := bytes.IndexByte(src, '\n'); pos >= 0 {
			end = pos + 1
		}
		result = append(result, Fragment{Text: string(src[:end]), Pos: LinePos{name, line}})
		src = src[end:]
	}
	return result
}

// SplitNone returns the whole source as a single fragment.
func SplitNone(name string, src []byte) []Fragment {
	return []Fragment{{Text: string(src), Pos: LinePos{Name: name}}}
}

// Split mode names, as used in the configuration.
const (
	SplitModeLine = "line"
	SplitModeNone = "none"
)

// SplitFunc splits a source into fragments.
type SplitFunc func(name string, src []byte) []Fragment

// GetSplitFunc returns the split function for the given mode, or nil if the
// mode is unknown.
func GetSplitFunc(mode string) SplitFunc {
	switch mode {
	case SplitModeLine:
		return SplitLines
	case SplitModeNone:
		return SplitNone
	}
	return nil
}
