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

// Package fence detects diagram blocks in a sequence of documentation text
// fragments and replaces them with embedded images.
//
// A diagram block is a fenced code block whose info string is "svgbob" or
// starts with "svgbob,". Everything else, including ordinary fenced blocks,
// is left untouched. A block may span several fragments; the scanner keeps
// the open block in its State between calls to Step.
package fence

import (
	"regexp"
	"strconv"
	"strings"
)

// Embedder turns the source of a diagram into text that replaces the
// diagram block.
type Embedder interface {
	// Embed renders the diagram source. Label is the text after "svgbob,",
	// or the empty string.
	Embed(source, label string) (string, error)
}

// EmbedderFunc is an adapter to use an ordinary function as an Embedder.
type EmbedderFunc func(source, label string) (string, error)

// Embed calls f(source, label).
func (f EmbedderFunc) Embed(source, label string) (string, error) { return f(source, label) }

// Position identifies where a fragment comes from, e.g. a file name and a
// line number. It is only used to report errors.
type Position interface {
	String() string
}

// OutcomeKind states how a fragment was processed.
type OutcomeKind uint8

// Constants for OutcomeKind.
const (
	Passthrough OutcomeKind = iota // Fragment is unchanged
	Fragment                       // Fragment is replaced by a new text
	Empty                          // Fragment is suppressed
)

func (k OutcomeKind) String() string {
	switch k {
	case Passthrough:
		return "Passthrough"
	case Fragment:
		return "Fragment"
	case Empty:
		return "Empty"
	}
	return "OutcomeKind(" + strconv.Itoa(int(k)) + ")"
}

// Outcome is the result of processing one fragment.
//
// For Passthrough, Text is the original fragment, not a copy. For Fragment,
// Text is the new text. It is empty for Empty.
type Outcome struct {
	Kind OutcomeKind
	Text string
}

// State is the scanner state for one document. It must be used by one
// goroutine only, feeding all fragments in source order.
type State struct {
	embedder Embedder
	open     *openBlock
	err      error
}

type openBlock struct {
	marker  string
	capture *capture // nil for ordinary fenced blocks
	origin  Position
}

type capture struct {
	content strings.Builder
	label   string
}

// NewState creates a scanner state that renders diagrams with the given
// embedder.
func NewState(emb Embedder) *State {
	return &State{embedder: emb}
}

var fenceRE = regexp.MustCompile("^( {0,3}(?:`{3,}|~{3,}))\\s*(.*?)\\s*$")

const (
	diagramLang   = "svgbob"
	diagramPrefix = diagramLang + ","
)

type lineAction uint8

const (
	keepLine lineAction = iota
	dropLine
	replaceLine
)

// Step processes the next fragment of the document.
//
// Lines are separated by '\n'. A final '\n' does not start another line, but
// the empty fragment consists of one empty line.
func (s *State) Step(fragment string, pos Position) Outcome {
	// While out is nil, nothing was changed so far.
	var out *strings.Builder
	passthrough := s.open == nil || s.open.capture == nil
	begin := func(i int) {
		if out == nil {
			out = new(strings.Builder)
			if passthrough {
				out.WriteString(fragment[:i])
			}
		}
		passthrough = false
	}

	for start := 0; ; {
		end, next := len(fragment), -1
		if k := strings.IndexByte(fragment[start:], '\n'); k >= 0 {
			end = start + k
			next = end + 1
		}
		line := fragment[start:end]

		switch text, action := s.scanLine(line, pos); action {
		case keepLine:
			if out != nil {
				out.WriteString(line)
				if next >= 0 {
					out.WriteByte('\n')
				}
			}
		case dropLine:
			begin(start)
		case replaceLine:
			begin(start)
			out.WriteString(text)
			if next >= 0 {
				out.WriteByte('\n')
			}
		}

		if next < 0 || next == len(fragment) {
			break
		}
		start = next
	}

	if out == nil {
		if passthrough {
			return Outcome{Kind: Passthrough, Text: fragment}
		}
		return Outcome{Kind: Empty}
	}
	if out.Len() == 0 {
		return Outcome{Kind: Empty}
	}
	return Outcome{Kind: Fragment, Text: out.String()}
}

func (s *State) scanLine(line string, pos Position) (string, lineAction) {
	if blk := s.open; blk != nil {
		if line == blk.marker {
			s.open = nil
			if blk.capture == nil {
				return "", keepLine
			}
			return s.embed(blk), replaceLine
		}
		if c := blk.capture; c != nil {
			c.content.WriteString(removeIndent(line, blk.marker))
			c.content.WriteByte('\n')
			return "", dropLine
		}
		return "", keepLine
	}

	m := fenceRE.FindStringSubmatch(line)
	if m == nil {
		return "", keepLine
	}
	blk := &openBlock{marker: m[1], origin: pos}
	s.open = blk
	if lang := m[2]; lang == diagramLang || strings.HasPrefix(lang, diagramPrefix) {
		label := ""
		if len(lang) > len(diagramPrefix) {
			label = strings.TrimSpace(lang[len(diagramPrefix):])
		}
		blk.capture = &capture{label: label}
		return "", dropLine
	}
	return "", keepLine
}

func (s *State) embed(blk *openBlock) string {
	source := strings.TrimSuffix(blk.capture.content.String(), "\n")
	text, err := s.embedder.Embed(source, blk.capture.label)
	if err != nil {
		if s.err == nil {
			s.err = &RenderError{At: blk.origin, Err: err}
		}
		return ""
	}
	return text
}

// removeIndent strips the indentation of the fence marker from a line. Only
// spaces and tabs that match the marker at the same position are removed.
func removeIndent(line, marker string) string {
	for len(line) > 0 && len(marker) > 0 && line[0] == marker[0] && (marker[0] == ' ' || marker[0] == '\t') {
		line, marker = line[1:], marker[1:]
	}
	return line
}

// Finalize must be called once after the last fragment. It reports an
// unclosed diagram block, or the first diagram that could not be rendered.
// An unclosed ordinary fenced block is not an error.
func (s *State) Finalize() error {
	blk := s.open
	s.open = nil
	if blk != nil && blk.capture != nil {
		return &UnclosedDiagramBlockError{At: blk.origin}
	}
	return s.err
}
