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
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "Validate dictionary metadata",
	ArgsUsage: "FILE...",
	Description: strings.Join([]string{
		"Validate the metadata of one or more dictionaries.",
		"Each FILE may be a .dict payload or its .info companion.",
	}, "\n"),
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrMdutil)
		}

		failed := 0
		for _, path := range c.Args().Slice() {
			if _, err := resolveMetadata(path); err != nil {
				failed++
				fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(c.App.Writer, "%s: ok\n", path)
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d file(s)", ErrValidation, failed)
		}
		return nil
	},
}
