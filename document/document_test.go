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

package document_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"zettelstore.de/bobdoc/document"
	"zettelstore.de/bobdoc/fence"
)

var testEmbedder = fence.EmbedderFunc(func(source, _ string) (string, error) {
	return "<" + source + ">", nil
})

func TestSplitLines(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp []document.Fragment
	}{
		{"", []document.Fragment{}},
		{"a", []document.Fragment{{"a", document.LinePos{"f", 1}}}},
		{"a\n\nb\n", []document.Fragment{
			{"a\n", document.LinePos{"f", 1}},
			{"\n", document.LinePos{"f", 2}},
			{"b\n", document.LinePos{"f", 3}},
		}},
	}
	for i, tc := range testcases {
		got := document.SplitLines("f", []byte(tc.src))
		if diff := cmp.Diff(tc.exp, got); diff != "" {
			t.Errorf("%d: fragments differ (-want +got):\n%s", i, diff)
		}
		if joined := document.Join(got); joined != tc.src {
			t.Errorf("%d: Join should restore %q, but got %q", i, tc.src, joined)
		}
	}
}

func TestTransform(t *testing.T) {
	t.Parallel()
	src := "# Title\n```svgbob\n+-+\n```\ntext\n"
	got, err := document.Transform(document.SplitLines("doc.md", []byte(src)), testEmbedder)
	if err != nil {
		t.Fatal(err)
	}
	exp := []document.Fragment{
		{"# Title\n", document.LinePos{"doc.md", 1}},
		{"<+-+>\n", nil},
		{"text\n", document.LinePos{"doc.md", 5}},
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Errorf("fragments differ (-want +got):\n%s", diff)
	}
}

func TestConcatSplitModes(t *testing.T) {
	t.Parallel()
	docs := []string{
		"no diagram at all\n",
		"```svgbob\nA\n```\n",
		"intro\n  ```svgbob,Label\n    x\n  ```\n```go\n```svgbob\n```\nend",
	}
	for i, doc := range docs {
		lines, err := document.Concat(document.SplitLines("x", []byte(doc)), testEmbedder)
		if err != nil {
			t.Errorf("%d: unexpected error %v", i, err)
			continue
		}
		whole, err := document.Concat(document.SplitNone("x", []byte(doc)), testEmbedder)
		if err != nil {
			t.Errorf("%d: unexpected error %v", i, err)
			continue
		}
		if lines != whole {
			t.Errorf("%d: line mode %q differs from whole mode %q", i, lines, whole)
		}
	}
}

func TestTransformUnclosed(t *testing.T) {
	t.Parallel()
	_, err := document.Transform(document.SplitLines("u.md", []byte("a\n```svgbob\nX\n")), testEmbedder)
	var ue *fence.UnclosedDiagramBlockError
	if !errors.As(err, &ue) {
		t.Fatalf("expected unclosed diagram block, but got %v", err)
	}
	if got := ue.At.String(); got != "u.md:2" {
		t.Errorf("expected position u.md:2, but got %q", got)
	}
}

func TestLinePos(t *testing.T) {
	t.Parallel()
	if got := (document.LinePos{Name: "a.md"}).String(); got != "a.md" {
		t.Errorf("expected a.md, but got %q", got)
	}
	if got := (document.LinePos{"a.md", 7}).String(); got != "a.md:7" {
		t.Errorf("expected a.md:7, but got %q", got)
	}
}

func TestGetSplitFunc(t *testing.T) {
	t.Parallel()
	for i, mode := range []string{document.SplitModeLine, document.SplitModeNone} {
		if document.GetSplitFunc(mode) == nil {
			t.Errorf("%d: no split function for %q", i, mode)
		}
	}
	if document.GetSplitFunc("word") != nil {
		t.Error("unknown mode must not have a split function")
	}
}
