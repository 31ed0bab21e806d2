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

// Package diagram renders ASCII-art diagrams into inline SVG images.
package diagram

import (
	"encoding/base64"
	"regexp"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"zettelstore.de/bobdoc/cache"
	"zettelstore.de/bobdoc/draw"
	"zettelstore.de/bobdoc/logger"
	"zettelstore.de/bobdoc/strfun"
)

// Settings control the rendering of a diagram.
type Settings = draw.Settings

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() Settings { return draw.DefaultSettings() }

// Renderer converts ASCII art into an SVG document.
type Renderer interface {
	Render(source string, s Settings) ([]byte, error)
}

// RendererFunc is an adapter to use an ordinary function as a Renderer.
type RendererFunc func(source string, s Settings) ([]byte, error)

// Render calls f(source, s).
func (f RendererFunc) Render(source string, s Settings) ([]byte, error) { return f(source, s) }

// DefaultRenderer is the built-in ASCII art renderer.
var DefaultRenderer Renderer = RendererFunc(draw.Render)

// Embedder renders diagrams and packs them into Markdown image references.
type Embedder struct {
	renderer Renderer
	settings Settings
	cache    *cache.Cache
	log      *logger.Logger
}

// New creates an embedder. A nil renderer means DefaultRenderer. The cache
// and the logger may be nil.
func New(r Renderer, s Settings, c *cache.Cache, log *logger.Logger) *Embedder {
	if r == nil {
		r = DefaultRenderer
	}
	return &Embedder{renderer: r, settings: s, cache: c, log: log}
}

// Settings returns the settings used for rendering.
func (e *Embedder) Settings() Settings { return e.settings }

// Embed renders the diagram and returns a Markdown image that contains the
// SVG as a data URI.
func (e *Embedder) Embed(source, label string) (string, error) {
	svg, err := e.Render(source, label)
	if err != nil {
		return "", err
	}
	return "![](" + DataURI(svg) + ")", nil
}

// Render returns the SVG document of the diagram. Every text element has a
// textLength attribute, so that the text fits the monospace grid, whatever
// font the viewer uses.
func (e *Embedder) Render(source, label string) ([]byte, error) {
	source = norm.NFC.String(source)
	s := e.settings
	s.Label = label

	var key cache.Digest
	if e.cache != nil {
		key = cacheKey(source, &s)
		if svg, found := e.cache.Get(key); found {
			e.log.Debug().Str("key", key.String()).Msg("diagram found in cache")
			return svg, nil
		}
	}

	svg, err := e.renderer.Render(source, s)
	if err != nil {
		e.log.Debug().Str("label", label).Err(err).Msg("unable to render diagram")
		return nil, err
	}
	svg = FixTextLength(svg, s.CellWidth)
	e.log.Debug().Str("label", label).Int("bytes", len(svg)).Msg("diagram rendered")
	if e.cache != nil {
		e.cache.Put(key, svg)
	}
	return svg, nil
}

func cacheKey(source string, s *Settings) cache.Digest {
	return cache.Key(
		strconv.FormatFloat(s.StrokeWidth, 'g', -1, 64),
		s.FontFamily,
		strconv.FormatFloat(s.FontSize, 'g', -1, 64),
		strconv.Itoa(s.CellWidth),
		strconv.Itoa(s.CellHeight),
		strconv.Itoa(s.TabSize),
		s.Label,
		source,
	)
}

var textRE = regexp.MustCompile(`<text([^>]*)>([^<]*)</text>`)

// FixTextLength adds a textLength attribute to every text element of the
// SVG document. Its value is the display width of the text, measured in
// cells of the given width.
func FixTextLength(svg []byte, cellWidth int) []byte {
	matches := textRE.FindAllSubmatchIndex(svg, -1)
	if len(matches) == 0 {
		return svg
	}
	result := make([]byte, 0, len(svg)+len(matches)*20)
	last := 0
	for _, m := range matches {
		attrs, text := svg[m[2]:m[3]], svg[m[4]:m[5]]
		width := float32(strfun.XMLTextWidth(string(text))) * float32(cellWidth)

		result = append(result, svg[last:m[0]]...)
		result = append(result, "<text"...)
		result = append(result, attrs...)
		result = append(result, ` textLength="`...)
		result = strconv.AppendFloat(result, float64(width), 'f', -1, 32)
		result = append(result, `">`...)
		result = append(result, text...)
		result = append(result, "</text>"...)
		last = m[1]
	}
	return append(result, svg[last:]...)
}

// DataURI returns the SVG as a base64 encoded data URI.
func DataURI(svg []byte) string {
	const prefix = "data:image/svg+xml;base64,"
	buf := make([]byte, len(prefix)+base64.StdEncoding.EncodedLen(len(svg)))
	copy(buf, prefix)
	base64.StdEncoding.Encode(buf[len(prefix):], svg)
	return string(buf)
}
