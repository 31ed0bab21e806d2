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

package strfun_test

import (
	"testing"

	"zettelstore.de/bobdoc/strfun"
)

func TestXMLEscape(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		exp string
	}{
		{"", ""},
		{"abc", "abc"},
		{`<a href='x'>&"`, "&lt;a href=&apos;x&apos;&gt;&amp;&quot;"},
		{"a\tb", "a&#9;b"},
		{"a\000b", "a\uFFFDb"},
		{"漢<字", "漢&lt;字"},
	}
	for i, tc := range testcases {
		got := strfun.XMLEscapeString(tc.in)
		if got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", i, tc.in, tc.exp, got)
		}
	}
}
