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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/morphdict/go-morphdict/metadata"
)

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "Show resolved dictionary metadata",
	ArgsUsage: "FILE",
	Description: strings.Join([]string{
		"Show the resolved metadata for a dictionary.",
		"FILE may be a .dict payload or its .info companion.",
	}, "\n"),
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrMdutil)
		}

		m, err := resolveMetadata(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}

		attrs := m.AllAttributes()
		tbl := table.New("ATTRIBUTE", "VALUE").WithWriter(c.App.Writer)
		for _, key := range metadata.Keys() {
			if value, ok := attrs[key]; ok {
				tbl.AddRow(key.String(), value)
			}
		}
		tbl.Print()

		fmt.Fprintln(c.App.Writer)
		fmt.Fprintf(c.App.Writer, "Separator byte: 0x%02X\n", m.Separator())
		fmt.Fprintf(c.App.Writer, "Encoder:        %v\n", m.EncoderType())
		fmt.Fprintf(c.App.Writer, "Locale:         %v\n", m.Locale())

		return nil
	},
}
