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

// Package draw renders ASCII drawings as SVG.
//
// Lines, boxes, arrows and diagonals made of the characters
// "- = | : + . ' / \ < > ^ v x *" become paths, everything else becomes text.
package draw

import "errors"

// Settings control the rendering of a drawing.
type Settings struct {
	StrokeWidth float64 // width of lines, in pixel
	FontFamily  string  // CSS font family list for texts
	FontSize    float64 // in pixel
	CellWidth   int     // width of one character cell, in pixel
	CellHeight  int     // height of one character cell, in pixel
	TabSize     int     // tabs are expanded to multiples of this value
	Label       string  // optional label, becomes title and id of the image
}

// Default values for settings.
const (
	DefaultStrokeWidth = 1.0
	DefaultFontFamily  = "'Source Code Pro','Andale Mono','Segoe UI Mono','Dejavu Sans Mono',monospace"
	DefaultFontSize    = 14.0
	DefaultCellWidth   = 8
	DefaultCellHeight  = 16
	DefaultTabSize     = 8
)

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() Settings {
	return Settings{
		StrokeWidth: DefaultStrokeWidth,
		FontFamily:  DefaultFontFamily,
		FontSize:    DefaultFontSize,
		CellWidth:   DefaultCellWidth,
		CellHeight:  DefaultCellHeight,
		TabSize:     DefaultTabSize,
	}
}

// ErrInvalidSettings is returned if cell sizes are not positive.
var ErrInvalidSettings = errors.New("cell width and height must be positive")

// Render parses the ASCII drawing and returns it as an SVG document.
func Render(src string, s Settings) ([]byte, error) {
	if s.CellWidth < 1 || s.CellHeight < 1 {
		return nil, ErrInvalidSettings
	}
	if s.TabSize < 1 {
		s.TabSize = DefaultTabSize
	}
	c, err := newCanvas([]byte(src), s.TabSize)
	if err != nil {
		return nil, err
	}
	return canvasToSVG(c, &s), nil
}
