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

package strfun

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellCond computes display widths independent of the locale of the process.
// Ambiguous characters are narrow, as in most monospace fonts.
var cellCond = func() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}()

// RuneWidth returns the number of monospace cells the rune occupies: 2 for
// wide and fullwidth characters, 0 for combining and control characters, 1
// otherwise.
func RuneWidth(r rune) int { return cellCond.RuneWidth(r) }

// Width returns the number of monospace cells the string occupies.
func Width(s string) int { return cellCond.StringWidth(s) }

// XMLTextWidth returns the display width of an XML-escaped string.
//
// Every character reference counts as exactly one cell. Only escapes that
// replace a single-width character are supported, like the ones produced by
// XMLEscape.
func XMLTextWidth(s string) int {
	width := 0
	for {
		k := strings.IndexByte(s, '&')
		if k < 0 {
			break
		}
		width += Width(s[:k]) + 1
		s = s[k:]
		if semi := strings.IndexByte(s, ';'); semi >= 0 {
			s = s[semi+1:]
		} else {
			s = ""
		}
	}
	return width + Width(s)
}
