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
	"reflect"
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	t.Parallel()
	data := []struct {
		input     []string
		strings   []string
		texts     []string
		points    [][]point
		allPoints bool
	}{
		// 0 Small box
		{
			[]string{
				"+-+",
				"| |",
				"+-+",
			},
			[]string{"Path{[(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2) (0,1)]}"},
			[]string{""},
			[][]point{{{x: 0, y: 0}, {x: 2, y: 0}, {x: 2, y: 2}, {x: 0, y: 2}}},
			false,
		},

		// 1 Tight box
		{
			[]string{
				"++",
				"++",
			},
			[]string{"Path{[(0,0) (1,0) (1,1) (0,1)]}"},
			[]string{""},
			[][]point{
				{
					{x: 0, y: 0}, {x: 1, y: 0}, {x: 1, y: 1}, {x: 0, y: 1},
				},
			},
			false,
		},

		// 2 Indented box
		{
			[]string{
				"",
				" +-+",
				" | |",
				" +-+",
			},
			[]string{"Path{[(1,1) (2,1) (3,1) (3,2) (3,3) (2,3) (1,3) (1,2)]}"},
			[]string{""},
			[][]point{{{x: 1, y: 1}, {x: 3, y: 1}, {x: 3, y: 3}, {x: 1, y: 3}}},
			false,
		},

		// 3 Free flow text
		{
			[]string{
				"",
				" foo bar ",
				"b  baz   bee",
			},
			[]string{"Text{(1,1) \"foo bar\"}", "Text{(0,2) \"b  baz\"}", "Text{(9,2) \"bee\"}"},
			[]string{"foo bar", "b  baz", "bee"},
			[][]point{
				{{x: 1, y: 1}, {x: 7, y: 1}},
				{{x: 0, y: 2}, {x: 5, y: 2}},
				{{x: 9, y: 2}, {x: 11, y: 2}},
			},
			false,
		},

		// 4 Text in a box
		{
			[]string{
				"+--+",
				"|Hi|",
				"+--+",
			},
			[]string{"Path{[(0,0) (1,0) (2,0) (3,0) (3,1) (3,2) (2,2) (1,2) (0,2) (0,1)]}", "Text{(1,1) \"Hi\"}"},
			[]string{"", "Hi"},
			[][]point{
				{{x: 0, y: 0}, {x: 3, y: 0}, {x: 3, y: 2}, {x: 0, y: 2}},
				{{x: 1, y: 1}, {x: 2, y: 1}},
			},
			false,
		},

		// 5 Inner boxes
		{
			[]string{
				"+-----+",
				"|     |",
				"| +-+ |",
				"| | | |",
				"| +-+ |",
				"|     |",
				"+-----+",
			},
			[]string{
				"Path{[(0,0) (1,0) (2,0) (3,0) (4,0) (5,0) (6,0) (6,1) (6,2) (6,3) (6,4) (6,5) (6,6) (5,6) (4,6) (3,6) (2,6) (1,6) (0,6) (0,5) (0,4) (0,3) (0,2) (0,1)]}",
				"Path{[(2,2) (3,2) (4,2) (4,3) (4,4) (3,4) (2,4) (2,3)]}",
			},
			[]string{"", ""},
			[][]point{
				{{x: 0, y: 0}, {x: 6, y: 0}, {x: 6, y: 6}, {x: 0, y: 6}},
				{{x: 2, y: 2}, {x: 4, y: 2}, {x: 4, y: 4}, {x: 2, y: 4}},
			},
			false,
		},

		// 6 Indented box with tab
		{
			[]string{
				"",
				"\t+-+",
				"\t| |",
				"\t+-+",
			},
			[]string{"Path{[(9,1) (10,1) (11,1) (11,2) (11,3) (10,3) (9,3) (9,2)]}"},
			[]string{""},
			[][]point{{{x: 9, y: 1}, {x: 11, y: 1}, {x: 11, y: 3}, {x: 9, y: 3}}},
			false,
		},

		// 7 Diagonal lines with arrows
		{
			[]string{
				"^          ^",
				" \\        /",
				"  \\      /",
				"   \\    /",
				"    v  v",
			},
			[]string{"Path{[(0,0) (1,1) (2,2) (3,3) (4,4)]}", "Path{[(11,0) (10,1) (9,2) (8,3) (7,4)]}"},
			[]string{"", ""},
			[][]point{
				{{x: 0, y: 0, hint: 2}, {x: 4, y: 4, hint: 3}},
				{{x: 11, y: 0, hint: 2}, {x: 7, y: 4, hint: 3}},
			},
			false,
		},

		// 8 Ticks and dots in lines.
		{
			[]string{
				" ------x----->",
				"",
				" <-----*------",
			},
			[]string{"Path{[(1,0) (2,0) (3,0) (4,0) (5,0) (6,0) (7,0) (8,0) (9,0) (10,0) (11,0) (12,0) (13,0)]}", "Path{[(1,2) (2,2) (3,2) (4,2) (5,2) (6,2) (7,2) (8,2) (9,2) (10,2) (11,2) (12,2) (13,2)]}"},
			[]string{"", ""},
			[][]point{
				{
					{x: 1, y: 0}, {x: 2, y: 0}, {x: 3, y: 0}, {x: 4, y: 0},
					{x: 5, y: 0}, {x: 6, y: 0}, {x: 7, y: 0, hint: 4}, {x: 8, y: 0},
					{x: 9, y: 0}, {x: 10, y: 0}, {x: 11, y: 0}, {x: 12, y: 0},
					{x: 13, y: 0, hint: 3},
				},
				{
					{x: 1, y: 2, hint: 2}, {x: 2, y: 2}, {x: 3, y: 2}, {x: 4, y: 2},
					{x: 5, y: 2}, {x: 6, y: 2}, {x: 7, y: 2, hint: 5}, {x: 8, y: 2},
					{x: 9, y: 2}, {x: 10, y: 2}, {x: 11, y: 2}, {x: 12, y: 2},
					{x: 13, y: 2},
				},
			},
			true,
		},

		// 9 URL
		{
			[]string{
				"github.com/foo/bar",
			},
			[]string{"Text{(0,0) \"github.com/foo/bar\"}"},
			[]string{"github.com/foo/bar"},
			[][]point{{{x: 0, y: 0}, {x: 17, y: 0}}},
			false,
		},

		// 10 Wide characters occupy two cells
		{
			[]string{
				"+----+",
				"|漢字|",
				"+----+",
			},
			[]string{"Path{[(0,0) (1,0) (2,0) (3,0) (4,0) (5,0) (5,1) (5,2) (4,2) (3,2) (2,2) (1,2) (0,2) (0,1)]}", "Text{(1,1) \"漢字\"}"},
			[]string{"", "漢字"},
			[][]point{
				{{x: 0, y: 0}, {x: 5, y: 0}, {x: 5, y: 2}, {x: 0, y: 2}},
				{{x: 1, y: 1}, {x: 4, y: 1}},
			},
			false,
		},
	}
	for i, line := range data {
		c, err := newCanvas([]byte(strings.Join(line.input, "\n")), 9)
		if err != nil {
			t.Fatalf("Test %d: error creating canvas: %s", i, err)
		}
		objs := c.objects()
		if line.strings != nil {
			if got := getStrings(objs); !reflect.DeepEqual(line.strings, got) {
				t.Errorf("%d: expected %q, but got %q", i, line.strings, got)
			}
		}
		if line.texts != nil {
			if got := getTexts(objs); !reflect.DeepEqual(line.texts, got) {
				t.Errorf("%d: expected %q, but got %q", i, line.texts, got)
			}
		}
		if line.points != nil {
			if !line.allPoints {
				if got := getCorners(objs); !reflect.DeepEqual(line.points, got) {
					t.Errorf("%d: expected %v, but got %v", i, line.points, got)
				}
			} else {
				if got := getPoints(objs); !reflect.DeepEqual(line.points, got) {
					t.Errorf("%d: expected %v, but got %v", i, line.points, got)
				}
			}
		}
	}
}

func TestNewCanvasInvalidUTF8(t *testing.T) {
	t.Parallel()
	if _, err := newCanvas([]byte("+-+\n\xff\n"), 8); err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}

func TestExpandLine(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		tab int
		exp string
	}{
		{"", 8, ""},
		{"abc   ", 8, "abc"},
		{"\tx", 4, "    x"},
		{"ab\tx", 4, "ab  x"},
		{"abcd\tx", 4, "abcd    x"},
		{"a\r", 8, "a"},
	}
	for i, tc := range testcases {
		row := expandLine([]byte(tc.in), tc.tab)
		var sb strings.Builder
		for _, ch := range row {
			sb.WriteRune(rune(ch))
		}
		if got := sb.String(); got != tc.exp {
			t.Errorf("%d: expandLine(%q, %d) == %q, but got %q", i, tc.in, tc.tab, tc.exp, got)
		}
	}

	row := expandLine([]byte("a漢b"), 8)
	if exp := []char{'a', '漢', wideTail, 'b'}; !reflect.DeepEqual(row, exp) {
		t.Errorf("wide rune: expected %v, but got %v", exp, row)
	}
}

func TestPointsToCorners(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       []point
		expected []point
		closed   bool
	}{
		{
			[]point{{x: 0, y: 0}, {x: 1, y: 0}},
			[]point{{x: 0, y: 0}, {x: 1, y: 0}},
			false,
		},
		{
			[]point{{x: 0, y: 0}, {x: 1, y: 0}, {x: 2, y: 0}},
			[]point{{x: 0, y: 0}, {x: 2, y: 0}},
			false,
		},
		{
			[]point{{x: 0, y: 0}, {x: 1, y: 0}, {x: 1, y: 1}},
			[]point{{x: 0, y: 0}, {x: 1, y: 0}, {x: 1, y: 1}},
			false,
		},
		{
			[]point{
				{x: 0, y: 0}, {x: 1, y: 0}, {x: 2, y: 0}, {x: 2, y: 1}, {x: 2, y: 2},
				{x: 1, y: 2}, {x: 0, y: 2}, {x: 0, y: 1},
			},
			[]point{{x: 0, y: 0}, {x: 2, y: 0}, {x: 2, y: 2}, {x: 0, y: 2}},
			true,
		},
		{
			[]point{{x: 0, y: 0}, {x: 1, y: 0}, {x: 1, y: 1}, {x: 0, y: 1}},
			[]point{{x: 0, y: 0}, {x: 1, y: 0}, {x: 1, y: 1}, {x: 0, y: 1}},
			false,
		},
	}
	for i, line := range data {
		p, c := pointsToCorners(line.in)
		if !reflect.DeepEqual(line.expected, p) {
			t.Errorf("%d: expected %v, but got %v", i, line.expected, p)
		}
		if line.closed != c {
			t.Errorf("%d: expected close == %v, but got %v", i, line.closed, c)
		}
	}
}

func getPoints(objs []*object) [][]point {
	out := [][]point{}
	for _, obj := range objs {
		out = append(out, obj.Points())
	}
	return out
}

func getTexts(objs []*object) []string {
	out := []string{}
	for _, obj := range objs {
		t := obj.Text()
		if !obj.IsText() {
			out = append(out, "")
		} else if len(t) > 0 {
			out = append(out, string(t))
		} else {
			panic("failed")
		}
	}
	return out
}

func getStrings(objs []*object) []string {
	out := []string{}
	for _, obj := range objs {
		out = append(out, obj.String())
	}
	return out
}

func getCorners(objs []*object) [][]point {
	out := make([][]point, len(objs))
	for i, obj := range objs {
		out[i] = obj.Corners()
	}
	return out
}
