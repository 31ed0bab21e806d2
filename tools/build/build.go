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

// Package main provides a command to check, build and release the software.
package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"zettelstore.de/bobdoc/tools"
)

const mainPackage = "zettelstore.de/bobdoc/cmd/bobdoc"

func readVersionFile() (string, error) {
	content, err := os.ReadFile("VERSION")
	if err != nil {
		return "", err
	}
	return strings.TrimFunc(string(content), func(r rune) bool {
		return r <= ' '
	}), nil
}

func getVersion() string {
	base, err := readVersionFile()
	if err != nil {
		base = "dev"
	}
	return base
}

func getReleaseVersion() string {
	base := getVersion()
	if strings.HasSuffix(base, "dev") {
		return base[:len(base)-3] + "preview-" + time.Now().Local().Format("20060102")
	}
	return base
}

func doBuild(env []string, version, target string) error {
	env = append(env, "CGO_ENABLED=0")
	out, err := tools.ExecuteCommand(
		env,
		"go", "build",
		"-trimpath",
		"-ldflags", fmt.Sprintf("-X main.buildVersion=%v -w", version),
		"-o", target,
		mainPackage,
	)
	if err != nil {
		return err
	}
	if len(out) > 0 {
		fmt.Println(out)
	}
	return nil
}

func cmdRelease() error {
	if err := tools.Check(true); err != nil {
		return err
	}
	base := getReleaseVersion()
	releases := []struct {
		arch string
		os   string
		env  []string
		name string
	}{
		{"amd64", "linux", nil, "bobdoc"},
		{"arm64", "linux", nil, "bobdoc"},
		{"arm", "linux", []string{"GOARM=6"}, "bobdoc"},
		{"amd64", "darwin", nil, "bobdoc"},
		{"arm64", "darwin", nil, "bobdoc"},
		{"amd64", "windows", nil, "bobdoc.exe"},
	}
	for _, rel := range releases {
		env := append([]string{}, rel.env...)
		env = append(env, "GOARCH="+rel.arch, "GOOS="+rel.os)
		env = append(env, tools.EnvDirectProxy...)
		binName := filepath.Join("releases", rel.name)
		if err := doBuild(env, base, binName); err != nil {
			return err
		}
		zipName := fmt.Sprintf("bobdoc-%v-%v-%v.zip", base, rel.os, rel.arch)
		if err := createReleaseZip(binName, filepath.Join("releases", zipName), rel.name); err != nil {
			return err
		}
		if err := os.Remove(binName); err != nil {
			return err
		}
	}
	return nil
}

func createReleaseZip(binName, zipName, fileName string) error {
	zipFile, err := os.OpenFile(zipName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer zipFile.Close()
	zw := zip.NewWriter(zipFile)
	defer zw.Close()
	if err = addFileToZip(zw, binName, fileName); err != nil {
		return err
	}
	if _, err = os.Stat("LICENSE.txt"); err == nil {
		return addFileToZip(zw, "LICENSE.txt", "LICENSE.txt")
	}
	return nil
}

func addFileToZip(zw *zip.Writer, path, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return err
	}
	fh, err := zip.FileInfoHeader(stat)
	if err != nil {
		return err
	}
	fh.Name = name
	fh.Method = zip.Deflate
	w, err := zw.CreateHeader(fh)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, file)
	return err
}

func cmdClean() error {
	for _, dir := range []string{"bin", "releases"} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	out, err := tools.ExecuteCommand(nil, "go", "clean", "./...")
	if err != nil {
		return err
	}
	if len(out) > 0 {
		fmt.Println(out)
	}
	return nil
}

func cmdDevtools() error {
	for _, pack := range []string{
		"golang.org/x/tools/go/analysis/passes/shadow/cmd/shadow@latest",
		"mvdan.cc/unparam@latest",
		"honnef.co/go/tools/cmd/staticcheck@latest",
		"golang.org/x/vuln/cmd/govulncheck@latest",
	} {
		out, err := tools.ExecuteCommand(nil, "go", "install", pack)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to install package", pack)
			if len(out) > 0 {
				fmt.Fprintln(os.Stderr, out)
			}
			return err
		}
	}
	return nil
}

func main() {
	var release bool
	root := &cobra.Command{
		Use:          "build",
		Short:        "Development tool for bobdoc",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&tools.Verbose, "verbose", "v", false, "verbose output")
	check := &cobra.Command{
		Use:   "check",
		Short: "Run the unit tests and all static checkers",
		RunE:  func(*cobra.Command, []string) error { return tools.Check(release) },
	}
	check.Flags().BoolVarP(&release, "release", "r", false, "apply the checks needed for a release")
	root.AddCommand(
		&cobra.Command{
			Use:   "build",
			Short: "Build the software for the local computer",
			RunE: func(*cobra.Command, []string) error {
				return doBuild(tools.EnvDirectProxy, getVersion(), filepath.Join("bin", "bobdoc"))
			},
		},
		check,
		&cobra.Command{
			Use:   "clean",
			Short: "Remove all build artifacts",
			RunE:  func(*cobra.Command, []string) error { return cmdClean() },
		},
		&cobra.Command{
			Use:   "devtools",
			Short: "Install the static checkers",
			RunE:  func(*cobra.Command, []string) error { return cmdDevtools() },
		},
		&cobra.Command{
			Use:   "release",
			Short: "Create ZIP files of the software for various platforms",
			RunE:  func(*cobra.Command, []string) error { return cmdRelease() },
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current version of the software",
			Run:   func(*cobra.Command, []string) { fmt.Print(getVersion()) },
		},
	)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
