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

package tools_test

import (
	"slices"
	"testing"

	"zettelstore.de/bobdoc/tools"
)

func TestFailedTestLines(t *testing.T) {
	t.Parallel()
	out := "ok  \tzettelstore.de/bobdoc/fence\t0.01s\n" +
		"?   \tzettelstore.de/bobdoc/cmd/bobdoc\t[no test files]\n" +
		"--- FAIL: TestStep (0.00s)\n" +
		"FAIL\tzettelstore.de/bobdoc/draw\t0.02s\n"
	exp := []string{"--- FAIL: TestStep (0.00s)", "FAIL\tzettelstore.de/bobdoc/draw\t0.02s"}
	if got := tools.FailedTestLines(out); !slices.Equal(got, exp) {
		t.Errorf("expected %q, but got %q", exp, got)
	}
	if got := tools.FailedTestLines("ok\tx\n"); len(got) != 0 {
		t.Errorf("expected no lines, but got %q", got)
	}
}

func TestFindExecStrict(t *testing.T) {
	t.Parallel()
	const missing = "bobdoc-no-such-program"
	if path, err := tools.FindExecStrict(missing, false); path != "" || err != nil {
		t.Errorf("missing optional program: expected no path and no error, but got %q, %v", path, err)
	}
	if path, err := tools.FindExecStrict(missing, true); path != "" || err == nil {
		t.Errorf("missing program for release: expected error, but got %q, %v", path, err)
	}
}
