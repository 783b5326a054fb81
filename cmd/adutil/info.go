// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	appledict "github.com/ianlewis/go-appledict"
)

var infoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print container metadata",
	Description: `Print metadata about a dictionary body container.

Metadata is read from the container header without decompressing any
entry data.`,
	Action: func(c *cli.Context) error {
		d, err := appledict.Open(c.String("dictionary"), nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAdutil, err)
		}
		defer d.Close()

		t := table.New("Field", "Value").WithWriter(c.App.Writer)
		t.AddRow("Path", d.Path())
		t.AddRow("Version", d.Version())
		t.AddRow("Records", d.WordCount())
		t.AddRow("Blocks", d.BlockCount())
		t.Print()

		return nil
	},
}
