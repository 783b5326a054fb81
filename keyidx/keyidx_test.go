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

package keyidx_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-appledict/internal/layout"
	"github.com/ianlewis/go-appledict/internal/testutil"
	"github.com/ianlewis/go-appledict/keyidx"
	"github.com/ianlewis/go-appledict/toc"
)

func buildIndex(t *testing.T, recs []*testutil.Rec, opts *testutil.ContainerOptions) (*keyidx.Index, error) {
	t.Helper()

	b := testutil.MakeContainer(t, recs, opts)
	r := layout.NewReader(b)

	tc, err := toc.Parse(r)
	if err != nil {
		t.Fatalf("toc.Parse: %v", err)
	}

	return keyidx.New(r, tc, nil)
}

// TestIndex_Lookup tests folded exact-match lookups.
func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	recs := []*testutil.Rec{
		{
			Key:  "handle",
			Kind: keyidx.Definition,
			Data: []byte("<entry>noun</entry>"),
		},
		{
			Key:   "handle",
			Kind:  keyidx.Definition,
			Data:  []byte("<entry>verb</entry>"),
			Block: 1,
		},
		{
			Key:  "café",
			Kind: keyidx.Definition,
			Data: []byte("<entry>a small restaurant</entry>"),
		},
		{
			Key:    "handles",
			Kind:   keyidx.Redirect,
			Target: "handle",
		},
	}

	tests := []struct {
		name         string
		query        string
		expectedKeys []string
	}{
		{
			name:         "exact match",
			query:        "handle",
			expectedKeys: []string{"handle", "handle"},
		},
		{
			name:         "case folded",
			query:        "Handle",
			expectedKeys: []string{"handle", "handle"},
		},
		{
			name:         "diacritics folded",
			query:        "cafe",
			expectedKeys: []string{"café"},
		},
		{
			name:         "redirect record",
			query:        "handles",
			expectedKeys: []string{"handles"},
		},
		{
			name:         "absent key",
			query:        "missing",
			expectedKeys: nil,
		},
	}

	index, err := buildIndex(t, recs, nil)
	if err != nil {
		t.Fatalf("keyidx.New: %v", err)
	}

	if got, want := index.Len(), len(recs); got != want {
		t.Fatalf("Len: expected %d, got %d", want, got)
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			records, err := index.Lookup(test.query)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}

			var keys []string
			for _, r := range records {
				keys = append(keys, r.Key)
			}

			if diff := cmp.Diff(test.expectedKeys, keys); diff != "" {
				t.Fatalf("Lookup (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestIndex_Lookup_order tests that records with equal keys are returned
// in container order.
func TestIndex_Lookup_order(t *testing.T) {
	t.Parallel()

	// Senses of "bank" interleaved with other keys; container order of the
	// senses is noun, verb, noun.
	recs := []*testutil.Rec{
		{Key: "aardvark", Kind: keyidx.Definition, Data: []byte("<entry>1</entry>")},
		{Key: "bank", Kind: keyidx.Definition, Data: []byte("<entry>river bank</entry>")},
		{Key: "zebra", Kind: keyidx.Definition, Data: []byte("<entry>2</entry>")},
		{Key: "Bank", Kind: keyidx.Definition, Data: []byte("<entry>to bank</entry>"), Block: 1},
		{Key: "bank", Kind: keyidx.Definition, Data: []byte("<entry>money bank</entry>"), Block: 1},
	}

	index, err := buildIndex(t, recs, nil)
	if err != nil {
		t.Fatalf("keyidx.New: %v", err)
	}

	records, err := index.Lookup("bank")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	var locators []keyidx.Locator
	for _, r := range records {
		locators = append(locators, r.Locator)
	}

	// "Bank" folds to "bank" and is part of the match. Container order is
	// the river bank sense, the verb, then the money bank sense.
	expected := []keyidx.Locator{
		{BlockID: 0, BlockOff: 21, Length: 30},
		{BlockID: 1, BlockOff: 0, Length: 27},
		{BlockID: 1, BlockOff: 27, Length: 30},
	}
	if diff := cmp.Diff(expected, locators); diff != "" {
		t.Fatalf("Lookup (-want, +got):\n%s", diff)
	}
}

// TestNew_malformed tests structural validation during index build.
func TestNew_malformed(t *testing.T) {
	t.Parallel()

	recs := []*testutil.Rec{
		{
			Key:  "house",
			Kind: keyidx.Definition,
			Data: []byte("<entry>a building for living in</entry>"),
		},
	}

	tests := []struct {
		name string
		recs []*testutil.Rec
		opts *testutil.ContainerOptions
	}{
		{
			name: "record count mismatch",
			recs: recs,
			opts: &testutil.ContainerOptions{RecordCountDelta: 1},
		},
		{
			name: "trailing junk in region",
			recs: recs,
			opts: &testutil.ContainerOptions{ExtraIndexBytes: []byte{0xff, 0xff, 0xff}},
		},
		{
			name: "record addresses missing block",
			recs: []*testutil.Rec{
				{
					Key:          "house",
					Kind:         keyidx.Definition,
					Data:         []byte("<entry>x</entry>"),
					BlockIDDelta: 7,
				},
			},
		},
		{
			name: "locator exceeds block size",
			recs: []*testutil.Rec{
				{
					Key:                "house",
					Kind:               keyidx.Definition,
					Data:               []byte("<entry>x</entry>"),
					LocatorLengthDelta: 1,
				},
			},
		},
		{
			name: "invalid record kind",
			recs: []*testutil.Rec{
				{
					Key:  "house",
					Kind: keyidx.Kind(9),
					Data: []byte("<entry>x</entry>"),
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := buildIndex(t, test.recs, test.opts)
			if !errors.Is(err, keyidx.ErrMalformedIndex) {
				t.Fatalf("keyidx.New: expected %v, got %v", keyidx.ErrMalformedIndex, err)
			}
		})
	}
}
