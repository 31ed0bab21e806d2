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

package diagram_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"zettelstore.de/bobdoc/cache"
	"zettelstore.de/bobdoc/diagram"
	"zettelstore.de/bobdoc/fence"
)

const imgPrefix = "![](data:image/svg+xml;base64,"

func decodeImage(t *testing.T, img string) string {
	t.Helper()
	if !strings.HasPrefix(img, imgPrefix) || !strings.HasSuffix(img, ")") {
		t.Fatalf("not an embedded SVG image: %q", img)
	}
	data, err := base64.StdEncoding.DecodeString(img[len(imgPrefix) : len(img)-1])
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestFixTextLength(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		svg       string
		cellWidth int
		exp       string
	}{
		{"<svg></svg>", 8, "<svg></svg>"},
		{`<text x="0">abc</text>`, 8, `<text x="0" textLength="24">abc</text>`},
		{`<text x="0" y="12">ab&amp;漢</text><g/><text>x</text>`, 8,
			`<text x="0" y="12" textLength="40">ab&amp;漢</text><g/><text textLength="8">x</text>`},
		{`<text>&#x6F22;ab</text>`, 10, `<text textLength="30">&#x6F22;ab</text>`},
		{`<text></text>`, 8, `<text textLength="0"></text>`},
		{`<text><tspan>x</tspan></text>`, 8, `<text><tspan>x</tspan></text>`},
	}
	for i, tc := range testcases {
		if got := string(diagram.FixTextLength([]byte(tc.svg), tc.cellWidth)); got != tc.exp {
			t.Errorf("%d: expected %q, but got %q", i, tc.exp, got)
		}
	}
}

func TestDataURI(t *testing.T) {
	t.Parallel()
	if got, exp := diagram.DataURI([]byte("<svg/>")), "data:image/svg+xml;base64,PHN2Zy8+"; got != exp {
		t.Errorf("expected %q, but got %q", exp, got)
	}
}

type recordRenderer struct {
	calls    int
	source   string
	settings diagram.Settings
}

func (rr *recordRenderer) Render(source string, s diagram.Settings) ([]byte, error) {
	rr.calls++
	rr.source = source
	rr.settings = s
	return []byte("<svg><text>" + source + "</text></svg>"), nil
}

func TestEmbed(t *testing.T) {
	t.Parallel()
	rr := &recordRenderer{}
	emb := diagram.New(rr, diagram.DefaultSettings(), nil, nil)
	img, err := emb.Embed("e\u0301", "Label")
	if err != nil {
		t.Fatal(err)
	}
	if got, exp := decodeImage(t, img), "<svg><text textLength=\"8\">\u00e9</text></svg>"; got != exp {
		t.Errorf("expected %q, but got %q", exp, got)
	}
	if rr.source != "\u00e9" {
		t.Errorf("source must be NFC normalized, but got %q", rr.source)
	}
	exp := diagram.DefaultSettings()
	exp.Label = "Label"
	if rr.settings != exp {
		t.Errorf("expected settings %+v, but got %+v", exp, rr.settings)
	}
	if emb.Settings().Label != "" {
		t.Error("label must not change the settings of the embedder")
	}
}

func TestEmbedCache(t *testing.T) {
	t.Parallel()
	rr := &recordRenderer{}
	emb := diagram.New(rr, diagram.DefaultSettings(), cache.New("", nil), nil)
	first, err := emb.Embed("A", "")
	if err != nil {
		t.Fatal(err)
	}
	second, _ := emb.Embed("A", "")
	if first != second {
		t.Errorf("cached result %q differs from %q", second, first)
	}
	if rr.calls != 1 {
		t.Errorf("expected one call of renderer, but got %d", rr.calls)
	}
	emb.Embed("A", "other label")
	emb.Embed("B", "")
	if rr.calls != 3 {
		t.Errorf("expected three calls of renderer, but got %d", rr.calls)
	}
}

func TestEmbedError(t *testing.T) {
	t.Parallel()
	errRender := errors.New("render failed")
	c := cache.New("", nil)
	emb := diagram.New(diagram.RendererFunc(func(string, diagram.Settings) ([]byte, error) {
		return nil, errRender
	}), diagram.DefaultSettings(), c, nil)
	if _, err := emb.Embed("A", ""); !errors.Is(err, errRender) {
		t.Errorf("expected render error, but got %v", err)
	}
	if c.Len() != 0 {
		t.Error("failed rendering must not be cached")
	}
}

func TestEmbedDefaultRenderer(t *testing.T) {
	t.Parallel()
	emb := diagram.New(nil, diagram.DefaultSettings(), nil, nil)
	img, err := emb.Embed("+------+\n| 漢字 |\n+------+  note", "Box")
	if err != nil {
		t.Fatal(err)
	}
	svg := decodeImage(t, img)
	if !strings.HasPrefix(svg, "<svg ") || !strings.Contains(svg, "<title>Box</title>") {
		t.Errorf("unexpected SVG document %q", svg)
	}
	texts, lengths := strings.Count(svg, "<text "), strings.Count(svg, "textLength=")
	if texts != 2 || lengths != texts {
		t.Errorf("expected 2 texts with textLength, but got %d texts and %d lengths", texts, lengths)
	}
	for _, exp := range []string{`textLength="32">漢字</text>`, `textLength="32">note</text>`} {
		if !strings.Contains(svg, exp) {
			t.Errorf("%q not found in %q", exp, svg)
		}
	}
}

func TestScannerWithEmbedder(t *testing.T) {
	t.Parallel()
	emb := diagram.New(nil, diagram.DefaultSettings(), nil, nil)
	for i, frags := range [][]string{
		{"```svgbob\nA\n```\n"},
		{"```svgbob\n", "A\n", "```\n"},
	} {
		st := fence.NewState(emb)
		var sb strings.Builder
		for _, f := range frags {
			sb.WriteString(st.Step(f, nil).Text)
		}
		if err := st.Finalize(); err != nil {
			t.Errorf("%d: unexpected error %v", i, err)
		}
		got := sb.String()
		if strings.Contains(got, "```") {
			t.Errorf("%d: fence lines found in %q", i, got)
		}
		if !strings.HasSuffix(got, ")\n") {
			t.Errorf("%d: expected embedded image, but got %q", i, got)
			continue
		}
		if svg := decodeImage(t, got[:len(got)-1]); !strings.Contains(svg, `textLength="8">A</text>`) {
			t.Errorf("%d: text A not found in %q", i, svg)
		}
	}
}
