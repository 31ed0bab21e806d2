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

import "unicode"

// char is a single cell of the diagram grid.
type char rune

// wideTail marks the second cell occupied by a wide rune.
const wideTail = char(-1)

func (c char) isSpace() bool { return c != wideTail && unicode.IsSpace(rune(c)) }

// isPathStart reports whether a path may begin at this cell. Paths are
// searched from the top left, so only left or up arrows can start a path.
func (c char) isPathStart() bool {
	return (c.isCorner() || c.isHorizontal() || c.isVertical() ||
		c.isArrowHorizontalLeft() || c.isArrowVerticalUp() || c.isDiagonal()) &&
		!c.isTick() && !c.isDot()
}

func (c char) isCorner() bool        { return c == '.' || c == '\'' || c == '+' }
func (c char) isRoundedCorner() bool { return c == '.' || c == '\'' }

func (c char) isDashedHorizontal() bool { return c == '=' }
func (c char) isHorizontal() bool {
	return c.isDashedHorizontal() || c.isTick() || c.isDot() || c == '-'
}

func (c char) isDashedVertical() bool { return c == ':' }
func (c char) isVertical() bool {
	return c.isDashedVertical() || c.isTick() || c.isDot() || c == '|'
}

func (c char) isDashed() bool { return c.isDashedHorizontal() || c.isDashedVertical() }

func (c char) isArrowHorizontalLeft() bool { return c == '<' }
func (c char) isArrowHorizontal() bool     { return c.isArrowHorizontalLeft() || c == '>' }
func (c char) isArrowVerticalUp() bool     { return c == '^' }
func (c char) isArrowVertical() bool       { return c.isArrowVerticalUp() || c == 'v' }
func (c char) isArrow() bool               { return c.isArrowHorizontal() || c.isArrowVertical() }

func (c char) isDiagonalNorthEast() bool { return c == '/' }
func (c char) isDiagonalNorthWest() bool { return c == '\\' }
func (c char) isDiagonal() bool          { return c.isDiagonalNorthEast() || c.isDiagonalNorthWest() }

func (c char) isTick() bool { return c == 'x' }
func (c char) isDot() bool  { return c == '*' }

// isTextStart reports whether a text may begin at this cell. Texts are
// searched after all paths are found, so every printable cell that is not
// part of a path becomes text.
func (c char) isTextStart() bool {
	return c != wideTail && !c.isSpace() && unicode.IsPrint(rune(c))
}

func (c char) isTextCont() bool { return c == wideTail || unicode.IsPrint(rune(c)) }

func (c char) canHorizontal() bool {
	return c.isHorizontal() || c.isCorner() || c.isArrowHorizontal()
}

func (c char) canVertical() bool {
	return c.isVertical() || c.isCorner() || c.isArrowVertical()
}

// canDiagonalFrom reports whether a diagonal path may proceed from the cell
// "from" to this cell.
func (c char) canDiagonalFrom(from char) bool {
	if from.isArrowVertical() || from.isCorner() {
		return c.isDiagonal()
	}
	if from.isDiagonal() {
		return c.isDiagonal() || c.isCorner() || c.isArrowVertical() || c.isHorizontal() || c.isVertical()
	}
	return false
}
