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

// Package tools provides functions used by the development tools of bobdoc.
package tools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// EnvDirectProxy fetches modules directly from their origin.
var EnvDirectProxy = []string{"GOPROXY=direct"}

// Verbose enables logging of all executed commands.
var Verbose bool

// ExecuteCommand runs the named program and returns its standard output.
func ExecuteCommand(env []string, name string, arg ...string) (string, error) {
	LogCommand("EXEC", env, name, arg)
	var out strings.Builder
	cmd := PrepareCommand(env, name, arg, nil, &out, os.Stderr)
	err := cmd.Run()
	return out.String(), err
}

// PrepareCommand creates a command. A non-empty env is added to the
// environment of the current process.
func PrepareCommand(env []string, name string, arg []string, in io.Reader, stdout, stderr io.Writer) *exec.Cmd {
	if len(env) > 0 {
		env = append(env, os.Environ()...)
	}
	cmd := exec.Command(name, arg...)
	cmd.Env = env
	cmd.Stdin = in
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd
}

// LogCommand writes the command line to stderr, if Verbose is set.
func LogCommand(exec string, env []string, name string, arg []string) {
	if Verbose {
		for i, e := range env {
			fmt.Fprintf(os.Stderr, "ENV%d %v\n", i+1, e)
		}
		fmt.Fprintln(os.Stderr, exec, name, arg)
	}
}

// Check runs the tests and all static checkers. Some checkers are only
// mandatory for a release.
func Check(forRelease bool) error {
	if err := CheckGoTest("./..."); err != nil {
		return err
	}
	if err := runChecker("go vet", "go", "vet", "./..."); err != nil {
		return err
	}
	if err := runOptional(forRelease, "shadow", "-strict", "./..."); err != nil {
		return err
	}
	if err := runChecker("staticcheck", "staticcheck", "./..."); err != nil {
		return err
	}
	if err := runOptional(forRelease, "unparam", "./..."); err != nil {
		return err
	}
	if forRelease {
		return runChecker("govulncheck", "govulncheck", "./...")
	}
	return nil
}

// CheckGoTest runs the unit tests of the given package pattern and prints
// only the lines of failing packages.
func CheckGoTest(pkg string, testParams ...string) error {
	args := append([]string{"test", pkg}, testParams...)
	out, err := ExecuteCommand(EnvDirectProxy, "go", args...)
	if err != nil {
		for _, line := range FailedTestLines(out) {
			fmt.Fprintln(os.Stderr, line)
		}
	}
	return err
}

// FailedTestLines returns all lines of a "go test" output that do not
// report a passing package or a package without tests.
func FailedTestLines(out string) []string {
	var result []string
	for _, line := range strings.Split(out, "\n") {
		if line == "" || strings.HasPrefix(line, "ok") || strings.HasPrefix(line, "?") {
			continue
		}
		result = append(result, line)
	}
	return result
}

func runChecker(what, name string, arg ...string) error {
	out, err := ExecuteCommand(nil, name, arg...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Some %s problems found\n", what)
		if len(out) > 0 {
			fmt.Fprintln(os.Stderr, out)
		}
	}
	return err
}

func runOptional(forRelease bool, name string, arg ...string) error {
	path, err := FindExecStrict(name, forRelease)
	if path == "" {
		return err
	}
	return runChecker(name, path, arg...)
}

// FindExec returns the path of an installed program, or the empty string.
func FindExec(cmd string) string {
	if path, err := exec.LookPath(cmd); err == nil {
		return path
	}
	return ""
}

// FindExecStrict is like FindExec, but a missing program is an error for a
// release.
func FindExecStrict(cmd string, forRelease bool) (string, error) {
	path := FindExec(cmd)
	if path != "" || !forRelease {
		return path, nil
	}
	return "", errors.New("command '" + cmd + "' not installed, but required for release")
}
