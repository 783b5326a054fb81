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

package toc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ianlewis/go-appledict/internal/layout"
)

// ErrMalformedHeader indicates that the container header or block table
// could not be validated.
var ErrMalformedHeader = errors.New("malformed header")

// BlockDescriptor describes one compressed entry block.
type BlockDescriptor struct {
	// DataOff is the offset of the block's zlib stream in the container.
	DataOff uint64

	// CompSize is the size of the zlib stream in bytes.
	CompSize uint32

	// RawSize is the declared decompressed size of the block.
	RawSize uint32
}

// TOC is the container's table of contents: the fixed header and the
// block descriptor table. It is read-only after Parse.
type TOC struct {
	version     uint16
	flags       uint16
	indexOff    uint64
	indexLen    uint64
	recordCount uint32
	blocks      []BlockDescriptor
}

// Parse reads and validates the container header and block table. All
// decoded offsets are checked against the container size so later stages
// can trust them.
func Parse(r *layout.Reader) (*TOC, error) {
	hdr, err := r.Slice(0, layout.HeaderSize)
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrMalformedHeader, err)
	}

	if !bytes.Equal(hdr[layout.HeaderMagicOff:layout.HeaderMagicOff+4], []byte(layout.Magic)) {
		return nil, fmt.Errorf("%w: bad magic data", ErrMalformedHeader)
	}

	t := &TOC{
		version:     layout.ByteOrder.Uint16(hdr[layout.HeaderVersionOff:]),
		flags:       layout.ByteOrder.Uint16(hdr[layout.HeaderFlagsOff:]),
		indexOff:    layout.ByteOrder.Uint64(hdr[layout.HeaderIndexOffOff:]),
		indexLen:    layout.ByteOrder.Uint64(hdr[layout.HeaderIndexLenOff:]),
		recordCount: layout.ByteOrder.Uint32(hdr[layout.HeaderRecordCountOff:]),
	}

	if t.version != layout.Version {
		return nil, fmt.Errorf("%w: invalid version: %d", ErrMalformedHeader, t.version)
	}

	if _, err := r.Slice(t.indexOff, t.indexLen); err != nil {
		return nil, fmt.Errorf("%w: index region: %w", ErrMalformedHeader, err)
	}

	blockCount := layout.ByteOrder.Uint32(hdr[layout.HeaderBlockCountOff:])
	blockTableOff := layout.ByteOrder.Uint64(hdr[layout.HeaderBlockTableOff:])

	table, err := r.Slice(blockTableOff, uint64(blockCount)*layout.BlockDescSize)
	if err != nil {
		return nil, fmt.Errorf("%w: block table: %w", ErrMalformedHeader, err)
	}

	t.blocks = make([]BlockDescriptor, blockCount)
	for i := range t.blocks {
		d := table[i*layout.BlockDescSize:]
		t.blocks[i] = BlockDescriptor{
			DataOff:  layout.ByteOrder.Uint64(d[0:]),
			CompSize: layout.ByteOrder.Uint32(d[8:]),
			RawSize:  layout.ByteOrder.Uint32(d[12:]),
		}
		if _, err := r.Slice(t.blocks[i].DataOff, uint64(t.blocks[i].CompSize)); err != nil {
			return nil, fmt.Errorf("%w: block %d data: %w", ErrMalformedHeader, i, err)
		}
	}

	return t, nil
}

// Version returns the container format version.
func (t *TOC) Version() uint16 {
	return t.version
}

// IndexOff returns the offset of the key index region.
func (t *TOC) IndexOff() uint64 {
	return t.indexOff
}

// IndexLen returns the length of the key index region.
func (t *TOC) IndexLen() uint64 {
	return t.indexLen
}

// RecordCount returns the declared number of key index records.
func (t *TOC) RecordCount() uint32 {
	return t.recordCount
}

// BlockCount returns the number of compressed entry blocks.
func (t *TOC) BlockCount() uint32 {
	return uint32(len(t.blocks))
}

// Block returns the descriptor for the given block ID.
func (t *TOC) Block(id uint32) (BlockDescriptor, error) {
	if id >= uint32(len(t.blocks)) {
		return BlockDescriptor{}, fmt.Errorf("%w: no block %d", layout.ErrOutOfRange, id)
	}
	return t.blocks[id], nil
}
