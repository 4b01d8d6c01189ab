// Copyright 2025 The morphdict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/morphdict/go-morphdict/metadata"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeValidationError is the exit code for a metadata validation
	// failure.
	ExitCodeValidationError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrMdutil is a parent error for all command errors.
var ErrMdutil = errors.New("mdutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrMdutil)

// ErrValidation indicates one or more metadata files failed validation.
var ErrValidation = fmt.Errorf("%w: validation failed", ErrMdutil)

//nolint:gochecknoinits // init needed for the global HelpFlag.
func init() {
	// Replace the built-in help flag with an unguessable hidden name so the
	// root command's -h handling doesn't swallow command arguments.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newMdutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Inspect morphological dictionary metadata.",
		Description: strings.Join([]string{
			"Morphological dictionary metadata utility written in Go.",
			"http://github.com/morphdict/go-morphdict",
		}, "\n"),
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2025 The morphdict Authors",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			showCommand,
			validateCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	if _, err := fmt.Fprintln(c.App.Writer, info.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrMdutil, err)
	}
	return nil
}

// resolveMetadata loads and resolves the metadata for the given path. The
// path may name the metadata file itself or the dictionary it accompanies.
func resolveMetadata(path string) (*metadata.Metadata, error) {
	if !strings.EqualFold(filepath.Ext(path), metadata.Extension) {
		base := strings.TrimSuffix(strings.TrimSuffix(path, ".dz"), ".gz")
		path = metadata.Path(base)
	}
	raw, err := metadata.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return metadata.Resolve(raw)
}
