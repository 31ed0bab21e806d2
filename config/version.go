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

package config

import (
	"os"
	"runtime"
)

// Version describes the running program.
type Version struct {
	Prog      string // Name of the software
	Build     string // Representation of build process
	Hostname  string // Host name a reported by the kernel
	GoVersion string // Version of go
	Os        string // GOOS
	Arch      string // GOARCH
}

// NewVersion collects the version data of the running program.
func NewVersion(progName, buildVersion string) Version {
	version := Version{
		Prog:      progName,
		Build:     buildVersion,
		GoVersion: runtime.Version(),
		Os:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	if buildVersion == "" {
		version.Build = "unknown"
	}
	if hn, err := os.Hostname(); err == nil {
		version.Hostname = hn
	} else {
		version.Hostname = "*unknown host*"
	}
	return version
}

func (v Version) String() string {
	return v.Prog + " (" + v.Build + "/" + v.GoVersion + ") running on " +
		v.Hostname + " (" + v.Os + "/" + v.Arch + ")"
}
