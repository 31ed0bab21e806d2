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

// Package main is the starting point for the bobdoc command.
package main

import "zettelstore.de/bobdoc/cmd"

// Version variable. Will be filled by build process.
var buildVersion = ""

func main() {
	cmd.Main("bobdoc", buildVersion)
}
