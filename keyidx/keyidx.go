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

package keyidx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-appledict/internal/folding"
	"github.com/ianlewis/go-appledict/internal/index"
	"github.com/ianlewis/go-appledict/internal/layout"
	"github.com/ianlewis/go-appledict/toc"
)

// ErrMalformedIndex indicates that the key index region does not match
// the structure declared by the container header.
var ErrMalformedIndex = errors.New("malformed index")

type foldedRecord struct {
	folded string
	record *Record
}

func (r *foldedRecord) String() string {
	return r.folded
}

// Options are options for building the key index.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (case
	// folding, diacritic folding, whitespace folding) on keys and queries.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for an Index.
var DefaultOptions = &Options{
	Folder: folding.Key,
}

// Index is the in-memory key index. It maps folded lookup keys to the
// records that address entry payloads in the container body. The Index is
// read-only after New and safe for concurrent lookups.
type Index struct {
	// index is sorted by the folded key. Records with equal folded keys
	// keep container order.
	index *index.Index[*foldedRecord]

	// foldTransformer performs folding on keys and queries.
	foldTransformer func() transform.Transformer
}

// New builds the key index by walking the container's index region. It
// fails if the region does not contain exactly the record count declared
// by the header or if any record addresses a byte range outside its
// block.
func New(r *layout.Reader, t *toc.TOC, options *Options) (*Index, error) {
	if options == nil {
		options = DefaultOptions
	}

	idx := Index{
		foldTransformer: DefaultOptions.Folder,
	}
	if options.Folder != nil {
		idx.foldTransformer = options.Folder
	}

	region, err := r.Slice(t.IndexOff(), t.IndexLen())
	if err != nil {
		return nil, fmt.Errorf("%w: index region: %w", ErrMalformedIndex, err)
	}

	var records []*foldedRecord
	s := NewScanner(bytes.NewReader(region))
	for s.Scan() {
		record := s.Record()

		if err := validateLocator(t, record); err != nil {
			return nil, err
		}

		folded, _, err := transform.String(idx.foldTransformer(), record.Key)
		if err != nil {
			return nil, fmt.Errorf("folding key %q: %w", record.Key, err)
		}

		records = append(records, &foldedRecord{
			folded: folded,
			record: record,
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning key index: %w", err)
	}

	if uint32(len(records)) != t.RecordCount() {
		return nil, fmt.Errorf("%w: header declares %d records, region holds %d",
			ErrMalformedIndex, t.RecordCount(), len(records))
	}

	idx.index = index.NewIndex(records, strings.Compare)

	return &idx, nil
}

// validateLocator checks a record's locator against the block table so
// the entry decoder can trust index-supplied ranges.
func validateLocator(t *toc.TOC, record *Record) error {
	if record.Kind != Definition && record.Kind != Redirect {
		return fmt.Errorf("%w: key %q: invalid record kind %d", ErrMalformedIndex, record.Key, uint8(record.Kind))
	}

	desc, err := t.Block(record.Locator.BlockID)
	if err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrMalformedIndex, record.Key, err)
	}

	end := uint64(record.Locator.BlockOff) + uint64(record.Locator.Length)
	if end > uint64(desc.RawSize) {
		return fmt.Errorf("%w: key %q: entry [%d, %d) exceeds block %d size %d",
			ErrMalformedIndex, record.Key, record.Locator.BlockOff, end,
			record.Locator.BlockID, desc.RawSize)
	}
	return nil
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	return idx.index.Len()
}

// Lookup performs a folded exact-match query of the index. Matching
// records are returned in container order. An absent key returns an empty
// result, not an error.
func (idx *Index) Lookup(key string) ([]*Record, error) {
	folded, _, err := transform.String(idx.foldTransformer(), key)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", key, err)
	}

	var records []*Record
	for _, r := range idx.index.Search(folded) {
		records = append(records, r.record)
	}

	return records, nil
}
