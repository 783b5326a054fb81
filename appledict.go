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

package appledict

import (
	"fmt"
	"os"
	"slices"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-appledict/body"
	"github.com/ianlewis/go-appledict/internal/layout"
	"github.com/ianlewis/go-appledict/keyidx"
	"github.com/ianlewis/go-appledict/toc"
)

// defaultMaxRedirectDepth bounds redirect chains. Legitimate chains in
// fixture containers are one hop; eight is generous while still failing
// malformed data quickly.
const defaultMaxRedirectDepth = 8

// Options are options for opening a dictionary.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding on
	// keys and queries. Defaults to the folding used by the container's
	// own key generation (case, diacritic, and whitespace folding).
	Folder func() transform.Transformer

	// MaxRedirectDepth is the maximum number of redirect hops followed
	// during a lookup before the lookup fails with ErrRedirectLoop.
	MaxRedirectDepth int
}

// DefaultOptions is the default options for a Dictionary.
var DefaultOptions = &Options{
	MaxRedirectDepth: defaultMaxRedirectDepth,
}

// Dictionary is an opened body container. The Dictionary and its index
// are immutable after Open and safe for concurrent lookups.
type Dictionary struct {
	path string

	toc   *toc.TOC
	index *keyidx.Index
	body  *body.Body

	maxRedirectDepth int
}

// Open opens the body container at the given path.
func Open(path string, options *Options) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	d, err := New(b, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	d.path = path

	return d, nil
}

// New reads a body container from b. The Dictionary borrows b for its
// lifetime; callers must not mutate it afterwards.
func New(b []byte, options *Options) (*Dictionary, error) {
	if options == nil {
		options = DefaultOptions
	}

	maxDepth := options.MaxRedirectDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxRedirectDepth
	}

	r := layout.NewReader(b)

	t, err := toc.Parse(r)
	if err != nil {
		return nil, err
	}

	index, err := keyidx.New(r, t, &keyidx.Options{
		Folder: options.Folder,
	})
	if err != nil {
		return nil, err
	}

	return &Dictionary{
		toc:              t,
		index:            index,
		body:             body.New(r, t),
		maxRedirectDepth: maxDepth,
	}, nil
}

// Path returns the path the dictionary was opened from. It is empty for
// dictionaries created with New.
func (d *Dictionary) Path() string {
	return d.path
}

// WordCount returns the number of key index records.
func (d *Dictionary) WordCount() int {
	return d.index.Len()
}

// BlockCount returns the number of compressed entry blocks.
func (d *Dictionary) BlockCount() uint32 {
	return d.toc.BlockCount()
}

// Version returns the container format version.
func (d *Dictionary) Version() uint16 {
	return d.toc.Version()
}

// Lookup looks up all entries for the given word. The word is folded and
// matched exactly; matching entries are returned in container order with
// redirects resolved to their terminal definitions. An absent word
// returns an empty result, not an error. A returned error is local to
// this lookup and leaves the Dictionary usable.
func (d *Dictionary) Lookup(word string) (*LookupResult, error) {
	records, err := d.index.Lookup(word)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", word, err)
	}

	entries, err := d.collect(records, nil)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", word, err)
	}

	return &LookupResult{
		word:    word,
		entries: entries,
	}, nil
}

// collect decodes the given records, following redirects. chain holds the
// redirecting keys traversed so far.
func (d *Dictionary) collect(records []*keyidx.Record, chain []string) ([]*Entry, error) {
	var entries []*Entry
	for _, record := range records {
		e, err := d.body.Entry(record.Locator)
		if err != nil {
			return nil, fmt.Errorf("decoding entry for %q: %w", record.Key, err)
		}

		if e.Kind != record.Kind {
			return nil, fmt.Errorf("%w: entry for %q is a %v, index record is a %v",
				ErrCorruptBlock, record.Key, e.Kind, record.Kind)
		}

		switch record.Kind {
		case keyidx.Definition:
			entries = append(entries, &Entry{
				word:  record.Key,
				data:  e.Data,
				chain: chain,
			})
		case keyidx.Redirect:
			sub, err := d.redirect(record.Key, e.Target(), chain)
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
		}
	}

	return entries, nil
}

// redirect follows one redirect hop from key to target.
func (d *Dictionary) redirect(key, target string, chain []string) ([]*Entry, error) {
	if len(chain) >= d.maxRedirectDepth {
		return nil, fmt.Errorf("%w: %q after %d hops", ErrRedirectLoop, key, len(chain))
	}

	records, err := d.index.Lookup(target)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q redirects to %q", ErrRedirectMissing, key, target)
	}

	return d.collect(records, append(slices.Clip(chain), key))
}

// Close releases the container buffer. The Dictionary must not be used
// after Close.
func (d *Dictionary) Close() error {
	d.toc = nil
	d.index = nil
	d.body = nil
	return nil
}
