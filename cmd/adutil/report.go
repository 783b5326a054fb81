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
	"path/filepath"
	"strings"

	appledict "github.com/ianlewis/go-appledict"
)

const reportHeader = `<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Words</title>
  <link rel="stylesheet" href="DefaultStyle.css">
  <link rel="stylesheet" href="CustomStyle.css">
</head>
`

// customCSS styles the per-entry wrapper divs. Entry markup itself is
// styled by the dictionary's own DefaultStyle.css, which ships next to
// the body container and can be copied next to the report.
const customCSS = `.div-entry {
    border-top: 2px solid black;
    padding-bottom: 50px;
}
`

// writeReport writes looked-up entries as an HTML document. Entry markup
// is embedded verbatim; it is a well-formed XML fragment rendered by the
// dictionary stylesheets.
func writeReport(path string, results []*appledict.LookupResult) error {
	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteString("<body>\n")
	for _, result := range results {
		for _, e := range result.Entries() {
			b.WriteString(`<div class="div-entry">` + "\n")
			b.Write(e.Data())
			b.WriteString("\n</div>\n")
		}
	}
	b.WriteString("</body>\n</html>\n")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	cssPath := filepath.Join(dir, "CustomStyle.css")
	if err := os.WriteFile(cssPath, []byte(customCSS), 0o644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}

	return nil
}
