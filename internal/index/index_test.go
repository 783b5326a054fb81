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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pair struct {
	key string
	ord int
}

func (p pair) String() string {
	return p.key
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []pair
		query    string
		expected []pair
	}{
		{
			name:     "single result",
			index:    []pair{{"foo", 0}, {"bar", 1}, {"baz", 2}, {"bar", 3}},
			query:    "foo",
			expected: []pair{{"foo", 0}},
		},
		{
			name:     "multiple results",
			index:    []pair{{"foo", 0}, {"bar", 1}, {"baz", 2}, {"bar", 3}},
			query:    "bar",
			expected: []pair{{"bar", 1}, {"bar", 3}},
		},
		{
			name:     "no results",
			index:    []pair{{"foo", 0}, {"bar", 1}, {"baz", 2}, {"bar", 3}},
			query:    "none",
			expected: nil,
		},
		{
			name:     "empty index",
			index:    nil,
			query:    "foo",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(test.index, strings.Compare)

			if diff := cmp.Diff(test.expected, index.Search(test.query), cmp.AllowUnexported(pair{})); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestIndex_Search_stable tests that equal keys are returned in source
// order.
func TestIndex_Search_stable(t *testing.T) {
	t.Parallel()

	var values []pair
	for i := 0; i < 32; i++ {
		values = append(values, pair{"dup", i})
		values = append(values, pair{"other", i})
	}

	index := NewIndex(values, strings.Compare)

	result := index.Search("dup")
	if len(result) != 32 {
		t.Fatalf("Search: expected 32 results, got %d", len(result))
	}
	for i, p := range result {
		if p.ord != i {
			t.Fatalf("Search: result %d has ord %d; source order not preserved", i, p.ord)
		}
	}
}
