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

package body

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/sync/singleflight"

	"github.com/ianlewis/go-appledict/internal/layout"
	"github.com/ianlewis/go-appledict/keyidx"
	"github.com/ianlewis/go-appledict/toc"
)

var (
	// ErrCorruptBlock indicates that a block's zlib stream could not be
	// decompressed or that its decompressed size does not match the size
	// declared in the block table.
	ErrCorruptBlock = errors.New("corrupt block")

	// ErrTruncatedEntry indicates that an entry payload is shorter than
	// its declared length.
	ErrTruncatedEntry = errors.New("truncated entry")
)

// Entry is a decoded entry payload.
type Entry struct {
	// Kind is the payload kind, mirroring the index record kind.
	Kind keyidx.Kind

	// Data is the payload data: the opaque markup fragment for definition
	// entries, or the target key bytes for redirect entries.
	Data []byte
}

// Target returns the redirect target key. It is only meaningful for
// redirect entries.
func (e *Entry) Target() string {
	return string(e.Data)
}

// Body reads entry payloads out of the container's compressed blocks.
//
// Blocks are decompressed lazily on first reference and cached for the
// lifetime of the Body. The cache has no eviction; the block count is
// bounded by the container size, not by query volume. Concurrent first
// accesses to the same block are deduplicated so each block is
// decompressed at most once.
type Body struct {
	r *layout.Reader
	t *toc.TOC

	mu    sync.RWMutex
	cache map[uint32][]byte

	// group deduplicates concurrent decompression of the same block.
	group singleflight.Group

	// decompressions counts completed block decompressions.
	decompressions atomic.Uint64
}

// New returns a new Body reading blocks described by t from r.
func New(r *layout.Reader, t *toc.TOC) *Body {
	return &Body{
		r:     r,
		t:     t,
		cache: map[uint32][]byte{},
	}
}

// Block returns the decompressed contents of the given block. The
// returned slice is shared and must be treated as read-only.
func (b *Body) Block(id uint32) ([]byte, error) {
	// Fast path.
	b.mu.RLock()
	raw, ok := b.cache[id]
	b.mu.RUnlock()
	if ok {
		return raw, nil
	}

	result, err, _ := b.group.Do(strconv.FormatUint(uint64(id), 10), func() (any, error) {
		// Double-check: another goroutine may have cached the block
		// between our cache check and acquiring the singleflight lock.
		b.mu.RLock()
		raw, ok := b.cache[id]
		b.mu.RUnlock()
		if ok {
			return raw, nil
		}

		raw, err := b.decompress(id)
		if err != nil {
			return nil, err
		}

		b.mu.Lock()
		b.cache[id] = raw
		b.mu.Unlock()

		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	raw, _ = result.([]byte)
	return raw, nil
}

// decompress inflates the block's zlib stream and validates the result
// against the declared decompressed size.
func (b *Body) decompress(id uint32) ([]byte, error) {
	desc, err := b.t.Block(id)
	if err != nil {
		return nil, err
	}

	comp, err := b.r.Slice(desc.DataOff, uint64(desc.CompSize))
	if err != nil {
		return nil, fmt.Errorf("%w: block %d: %w", ErrCorruptBlock, id, err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(comp))
	if err != nil {
		return nil, fmt.Errorf("%w: block %d: %w", ErrCorruptBlock, id, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: block %d: %w", ErrCorruptBlock, id, err)
	}

	if uint64(len(raw)) != uint64(desc.RawSize) {
		return nil, fmt.Errorf("%w: block %d: declared %d bytes, got %d",
			ErrCorruptBlock, id, desc.RawSize, len(raw))
	}

	b.decompressions.Add(1)

	return raw, nil
}

// Decompressions returns the number of block decompressions performed.
// With the cache this is at most the number of distinct blocks
// referenced, regardless of lookup concurrency.
func (b *Body) Decompressions() uint64 {
	return b.decompressions.Load()
}

// Entry decodes the entry payload addressed by the given locator.
func (b *Body) Entry(loc keyidx.Locator) (*Entry, error) {
	block, err := b.Block(loc.BlockID)
	if err != nil {
		return nil, err
	}

	end := uint64(loc.BlockOff) + uint64(loc.Length)
	if end > uint64(len(block)) {
		return nil, fmt.Errorf("%w: entry [%d, %d) exceeds block %d size %d",
			ErrTruncatedEntry, loc.BlockOff, end, loc.BlockID, len(block))
	}
	raw := block[loc.BlockOff:end]

	if len(raw) < layout.PayloadHeaderSize {
		return nil, fmt.Errorf("%w: %d byte entry in block %d", ErrTruncatedEntry, len(raw), loc.BlockID)
	}

	kind := keyidx.Kind(raw[0])
	dataLen := layout.ByteOrder.Uint32(raw[1:])
	if uint64(layout.PayloadHeaderSize)+uint64(dataLen) > uint64(len(raw)) {
		return nil, fmt.Errorf("%w: entry declares %d bytes, %d available",
			ErrTruncatedEntry, dataLen, len(raw)-layout.PayloadHeaderSize)
	}

	return &Entry{
		Kind: kind,
		Data: raw[layout.PayloadHeaderSize : layout.PayloadHeaderSize+dataLen],
	}, nil
}
