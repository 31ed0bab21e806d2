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

// Package markdown renders Markdown to HTML, where diagram blocks become
// inline SVG images.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmParser "github.com/yuin/goldmark/parser"
	gmRenderer "github.com/yuin/goldmark/renderer"
	gmText "github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"zettelstore.de/bobdoc/diagram"
)

// DiagramRenderer returns the SVG document of a diagram.
type DiagramRenderer interface {
	Render(source, label string) ([]byte, error)
}

// Extension is a goldmark extension that renders fenced code blocks with
// info string "svgbob" or "svgbob,<label>" as images.
type Extension struct {
	renderer DiagramRenderer
}

// NewExtension creates a new extension that uses the given renderer.
func NewExtension(r DiagramRenderer) *Extension { return &Extension{renderer: r} }

// Extend adds the extension to the given goldmark instance.
func (e *Extension) Extend(md gm.Markdown) {
	md.Parser().AddOptions(
		gmParser.WithASTTransformers(
			util.Prioritized(&transformer{}, 100),
		),
	)
	md.Renderer().AddOptions(
		gmRenderer.WithNodeRenderers(
			util.Prioritized(&nodeRenderer{ext: e}, 100),
		),
	)
}

// ToHTML converts the Markdown source to HTML.
func ToHTML(src []byte, r DiagramRenderer) ([]byte, error) {
	md := gm.New(gm.WithExtensions(NewExtension(r)))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var kindDiagram = gmAst.NewNodeKind("DiagramBlock")

// diagramBlock replaces a fenced code block that contains a diagram.
type diagramBlock struct {
	gmAst.BaseBlock
	source string
	label  string
}

func (*diagramBlock) Kind() gmAst.NodeKind { return kindDiagram }
func (*diagramBlock) IsRaw() bool          { return true }

func (n *diagramBlock) Dump(source []byte, level int) {
	gmAst.DumpHelper(n, source, level, map[string]string{"Label": n.label}, nil)
}

const (
	diagramLang   = "svgbob"
	diagramPrefix = diagramLang + ","
)

// diagramInfo returns the label of a diagram block, and whether the info
// string denotes a diagram.
func diagramInfo(info string) (string, bool) {
	info = strings.TrimSpace(info)
	if info == diagramLang {
		return "", true
	}
	if label, found := strings.CutPrefix(info, diagramPrefix); found {
		return strings.TrimSpace(label), true
	}
	return "", false
}

type transformer struct{}

func (*transformer) Transform(doc *gmAst.Document, reader gmText.Reader, _ gmParser.Context) {
	src := reader.Source()
	var blocks []*gmAst.FencedCodeBlock
	gmAst.Walk(doc, func(node gmAst.Node, entering bool) (gmAst.WalkStatus, error) {
		if fb, ok := node.(*gmAst.FencedCodeBlock); ok && entering && fb.Info != nil {
			blocks = append(blocks, fb)
		}
		return gmAst.WalkContinue, nil
	})

	for _, fb := range blocks {
		label, ok := diagramInfo(string(fb.Info.Segment.Value(src)))
		if !ok {
			continue
		}
		var sb strings.Builder
		lines := fb.Lines()
		for i := range lines.Len() {
			line := lines.At(i)
			sb.Write(line.Value(src))
		}
		blk := &diagramBlock{
			source: strings.TrimSuffix(sb.String(), "\n"),
			label:  label,
		}
		parent := fb.Parent()
		parent.ReplaceChild(parent, fb, blk)
	}
}

type nodeRenderer struct {
	ext *Extension
}

func (r *nodeRenderer) RegisterFuncs(reg gmRenderer.NodeRendererFuncRegisterer) {
	reg.Register(kindDiagram, r.renderDiagram)
}

func (r *nodeRenderer) renderDiagram(w util.BufWriter, _ []byte, node gmAst.Node, entering bool) (gmAst.WalkStatus, error) {
	if !entering {
		return gmAst.WalkContinue, nil
	}
	blk := node.(*diagramBlock)
	svg, err := r.ext.renderer.Render(blk.source, blk.label)
	if err != nil {
		if blk.label != "" {
			return gmAst.WalkStop, fmt.Errorf("diagram %q: %w", blk.label, err)
		}
		return gmAst.WalkStop, fmt.Errorf("diagram: %w", err)
	}
	w.WriteString(`<p><img src="`)
	w.WriteString(diagram.DataURI(svg))
	w.WriteString(`" alt="`)
	w.Write(util.EscapeHTML([]byte(blk.label)))
	w.WriteString("\"></p>\n")
	return gmAst.WalkSkipChildren, nil
}
