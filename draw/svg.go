//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of bobdoc.
//
// bobdoc is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// This file was originally created by the ASCIIToSVG contributors under an MIT
// license, but later changed to fulfil the needs of Zettelstore and bobdoc.
// The following statements affects the original code as found on
// https://github.com/asciitosvg/asciitosvg (Commit:
// ca82a5ce41e2190a05e07af6e8b3ea4e3256a283, 2020-11-20):
//
// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Detlef Stern
//-----------------------------------------------------------------------------

package draw

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"zettelstore.de/bobdoc/strfun"
)

const pathTag = "<path d=\"%s\"%s />"

// canvasToSVG renders the supplied canvas to SVG, based on the supplied settings.
func canvasToSVG(c *canvas, s *Settings) []byte {
	siz := c.size()
	scaleX, scaleY := s.CellWidth, s.CellHeight
	width, height := (siz.X+1)*scaleX, (siz.Y+1)*scaleY

	b := bytes.Buffer{}
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d"`,
		width, height, width, height)
	if s.Label != "" {
		if slug := strfun.Slugify(s.Label); slug != "" {
			fmt.Fprintf(&b, ` id="%s"`, slug)
		}
	}
	io.WriteString(&b, ">")
	if s.Label != "" {
		io.WriteString(&b, "<title>")
		strfun.XMLEscape(&b, s.Label)
		io.WriteString(&b, "</title>")
	}
	if c.hasStartMarker || c.hasEndMarker {
		writeMarkers(&b, c)
	}

	// 3 passes, first closed paths, then open paths, then text.
	writeClosedPaths(&b, c, s)
	writeOpenPaths(&b, c, s)
	writeTexts(&b, c, s)
	io.WriteString(&b, "</svg>")
	return b.Bytes()
}

func writeMarkers(w io.Writer, c *canvas) {
	io.WriteString(w, "<defs>")
	if c.hasStartMarker {
		io.WriteString(w, `<marker id="iPointer" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="8" markerHeight="8" orient="auto"><path d="M 10 0 L 10 10 L 0 5 z" /></marker>`)
	}
	if c.hasEndMarker {
		io.WriteString(w, `<marker id="Pointer" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="8" markerHeight="8" orient="auto"><path d="M 0 0 L 10 5 L 0 10 z" /></marker>`)
	}
	io.WriteString(w, "</defs>")
}

func writeClosedPaths(w io.Writer, c *canvas, s *Settings) {
	fmt.Fprintf(w, "<g class=\"closed\" stroke=\"#000\" stroke-width=\"%g\" fill=\"none\">", s.StrokeWidth)
	for _, obj := range c.objects() {
		if !obj.isClosedPath() {
			continue
		}
		opts := ""
		if obj.IsDashed() {
			opts = " stroke-dasharray=\"5 5\""
		}
		fmt.Fprintf(w, pathTag, flatten(obj.Points(), s)+"Z", opts)
	}
	io.WriteString(w, "</g>")
}

func writeOpenPaths(w io.Writer, c *canvas, s *Settings) {
	fmt.Fprintf(w, "<g class=\"lines\" stroke=\"#000\" stroke-width=\"%g\" fill=\"none\">", s.StrokeWidth)
	for _, obj := range c.objects() {
		if !obj.isOpenPath() {
			continue
		}
		points := obj.Points()
		for _, p := range points {
			switch p.hint {
			case dot:
				sp := scale(p, s)
				fmt.Fprintf(w, "<circle cx=\"%g\" cy=\"%g\" r=\"3\" fill=\"#000\" />", sp.X, sp.Y)
			case tick:
				const tickTag = "<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" />"

				sp := scale(p, s)
				fmt.Fprintf(w, tickTag, sp.X-4, sp.Y-4, sp.X+4, sp.Y+4)
				fmt.Fprintf(w, tickTag, sp.X+4, sp.Y-4, sp.X-4, sp.Y+4)
			}
		}

		opts := ""
		if obj.IsDashed() {
			opts += " stroke-dasharray=\"5 5\""
		}
		if points[0].hint == startMarker {
			opts += " marker-start=\"url(#iPointer)\""
		}
		if points[len(points)-1].hint == endMarker {
			opts += " marker-end=\"url(#Pointer)\""
		}
		fmt.Fprintf(w, pathTag, strings.TrimSpace(flatten(points, s)), opts)
	}
	io.WriteString(w, "</g>")
}

func writeTexts(w io.Writer, c *canvas, s *Settings) {
	io.WriteString(w, "<g class=\"text\" stroke=\"none\" fill=\"#000\" style=\"font-family:")
	strfun.XMLEscape(w, s.FontFamily)
	fmt.Fprintf(w, ";font-size:%gpx\">", s.FontSize)
	for _, obj := range c.objects() {
		if !obj.IsText() {
			continue
		}
		p := obj.Points()[0]
		x := float64(p.x * s.CellWidth)
		y := (float64(p.y) + .75) * float64(s.CellHeight)
		fmt.Fprintf(w, "<text x=\"%g\" y=\"%g\">", x, y)
		strfun.XMLEscape(w, string(obj.Text()))
		io.WriteString(w, "</text>")
	}
	io.WriteString(w, "</g>")
}

type scaledPoint struct {
	X    float64
	Y    float64
	Hint renderHint
}

func scale(p point, s *Settings) scaledPoint {
	return scaledPoint{
		X:    (float64(p.x) + .5) * float64(s.CellWidth),
		Y:    (float64(p.y) + .5) * float64(s.CellHeight),
		Hint: p.hint,
	}
}

func flatten(points []point, s *Settings) string {
	var result strings.Builder
	r := float64(min(s.CellWidth, s.CellHeight)) / 2

	// Scaled start point, and previous point (which is always initially the start point).
	sp := scale(points[0], s)
	pp := sp

	for i, cp := range points {
		p := scale(cp, s)

		// Our start point is represented by a single moveto command (unless the start point
		// is a rounded corner) as the shape will be closed with the Z command automatically
		// if we have a closed polygon. If our start point is a rounded corner, we have to go
		// ahead and draw that curve.
		if i == 0 {
			if cp.hint == roundedCorner {
				fmt.Fprintf(&result, "M %g %g Q %g %g %g %g ", p.X, p.Y+r, p.X, p.Y, p.X+r, p.Y)
				continue
			}

			fmt.Fprintf(&result, "M %g %g ", p.X, p.Y)
			continue
		}

		// If this point has a rounded corner, we need to calculate the curve. This algorithm
		// only works when the shapes are drawn in a clockwise manner.
		if cp.hint == roundedCorner {
			// The control point is always the original corner.
			cx := p.X
			cy := p.Y

			sx, sy, ex, ey := 0., 0., 0., 0.

			// We need to know the next point to determine which way to turn.
			var np scaledPoint
			if i == len(points)-1 {
				np = sp
			} else {
				np = scale(points[i+1], s)
			}

			if pp.X == p.X {
				// If we're on the same vertical axis, our starting X coordinate is
				// the same as the control point coordinate
				sx = p.X

				// Offset start point from control point in the proper direction.
				if pp.Y < p.Y {
					sy = p.Y - r
				} else {
					sy = p.Y + r
				}

				ey = p.Y
				// Offset endpoint from control point in the proper direction.
				if np.X < p.X {
					ex = p.X - r
				} else {
					ex = p.X + r
				}
			} else if pp.Y == p.Y {
				// Horizontal decisions mirror vertical's above.
				sy = p.Y
				if pp.X < p.X {
					sx = p.X - r
				} else {
					sx = p.X + r
				}
				ex = p.X
				if np.Y <= p.Y {
					ey = p.Y - r
				} else {
					ey = p.Y + r
				}
			}

			fmt.Fprintf(&result, "L %g %g Q %g %g %g %g ", sx, sy, cx, cy, ex, ey)
		} else {
			fmt.Fprintf(&result, "L %g %g ", p.X, p.Y)
		}

		pp = p
	}

	return result.String()
}
