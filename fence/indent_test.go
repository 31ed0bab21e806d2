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

package fence

import "testing"

func TestRemoveIndent(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		line   string
		marker string
		exp    string
	}{
		{"      X", "    ```", "  X"},
		{"X", "    ```", "X"},
		{"  X", "```", "  X"},
		{"\tX", "\t```", "X"},
		{"\t X", " ```", "\t X"},
		{" \tX", "  ```", "\tX"},
		{"   ", "   ```", ""},
		{"", "  ```", ""},
	}
	for i, tc := range testcases {
		if got := removeIndent(tc.line, tc.marker); got != tc.exp {
			t.Errorf("%d: removeIndent(%q, %q) == %q, but got %q", i, tc.line, tc.marker, tc.exp, got)
		}
	}
}

func TestCapturedContent(t *testing.T) {
	t.Parallel()
	var source string
	st := NewState(EmbedderFunc(func(src, _ string) (string, error) {
		source = src
		return "IMG", nil
	}))
	st.Step("   ```svgbob\n", nil)
	st.Step("      X\n", nil)
	st.Step("  Y\n", nil)
	if st.open == nil || st.open.capture == nil {
		t.Fatal("diagram block not open")
	}
	if got, exp := st.open.capture.content.String(), "   X\nY\n"; got != exp {
		t.Errorf("expected captured content %q, but got %q", exp, got)
	}
	if got := st.Step("   ```", nil); got.Kind != Fragment || got.Text != "IMG" {
		t.Errorf("expected Fragment IMG, but got %v %q", got.Kind, got.Text)
	}
	if source != "   X\nY" {
		t.Errorf("expected source %q, but got %q", "   X\nY", source)
	}
}
