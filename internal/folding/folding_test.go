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

package folding_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-appledict/internal/folding"
)

// TestKey tests the key folding chain.
func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase unchanged",
			input:    "handle",
			expected: "handle",
		},
		{
			name:     "case folded",
			input:    "Handle",
			expected: "handle",
		},
		{
			name:     "diacritics stripped",
			input:    "café",
			expected: "cafe",
		},
		{
			name:     "decomposed diacritics stripped",
			input:    "cafe\u0301",
			expected: "cafe",
		},
		{
			name:     "german sharp s",
			input:    "grüßen",
			expected: "grussen",
		},
		{
			name:     "whitespace folded",
			input:    "  status \t quo ",
			expected: "status quo",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			folded, _, err := transform.String(folding.Key(), test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}

			if diff := cmp.Diff(test.expected, folded); diff != "" {
				t.Fatalf("Key (-want, +got):\n%s", diff)
			}
		})
	}
}
