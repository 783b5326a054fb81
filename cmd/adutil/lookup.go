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
	"os"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	appledict "github.com/ianlewis/go-appledict"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up words",
	ArgsUsage: "[WORD...]",
	Description: `Look up words and print their definitions.

Definitions are printed as plain text. Use --output to write an HTML
report instead.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write an HTML report to `FILE`",
			Aliases: []string{"o"},
		},
	},
	Action: func(c *cli.Context) error {
		words := c.Args().Slice()
		if len(words) == 0 {
			return fmt.Errorf("%w: no words given", ErrFlagParse)
		}

		d, err := appledict.Open(c.String("dictionary"), nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAdutil, err)
		}
		defer d.Close()

		// Failed lookups are reported and do not abort the batch.
		var results []*appledict.LookupResult
		failed := 0
		for _, word := range words {
			result, err := d.Lookup(word)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed++
				continue
			}
			if result.Empty() {
				fmt.Fprintf(os.Stderr, "no entry for %q\n", word)
				continue
			}
			results = append(results, result)
		}

		if output := c.String("output"); output != "" {
			if err := writeReport(output, results); err != nil {
				return fmt.Errorf("%w: %w", ErrAdutil, err)
			}
		} else {
			printResults(results)
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d of %d words", ErrLookup, failed, len(words))
		}
		return nil
	},
}

func printResults(results []*appledict.LookupResult) {
	for _, result := range results {
		for _, e := range result.Entries() {
			title := e.Word()
			if e.Redirected() {
				title = fmt.Sprintf("%s (from %s)", e.Word(), result.Word())
			}
			fmt.Println(title)
			fmt.Println()
			fmt.Println(html2text.HTML2Text(string(e.Data())))
			fmt.Println()
		}
	}
}
