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

// Package testutil builds synthetic body containers for tests.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/ianlewis/go-appledict/internal/layout"
	"github.com/ianlewis/go-appledict/keyidx"
)

// Rec describes one key index record and its entry payload.
type Rec struct {
	// Key is the lookup key.
	Key string

	// Kind is the record kind.
	Kind keyidx.Kind

	// Data is the definition markup for definition records.
	Data []byte

	// Target is the target key for redirect records.
	Target string

	// Block assigns the record's payload to a block. Records sharing a
	// Block value are concatenated into the same block.
	Block int

	// DeclaredDataLenDelta is added to the data length declared in the
	// payload header without changing the payload. Used to produce
	// truncated entries.
	DeclaredDataLenDelta int

	// LocatorLengthDelta is added to the entry length stored in the index
	// record. Used to produce locators exceeding their block.
	LocatorLengthDelta int

	// BlockIDDelta is added to the block ID stored in the index record.
	// Used to produce records addressing missing blocks.
	BlockIDDelta int
}

// ContainerOptions are knobs for building malformed containers.
type ContainerOptions struct {
	// Magic overrides the container magic.
	Magic string

	// Version overrides the container format version.
	Version uint16

	// RecordCountDelta is added to the record count declared in the
	// header.
	RecordCountDelta int

	// ExtraIndexBytes is junk appended to the index region and covered by
	// the declared region length.
	ExtraIndexBytes []byte

	// RawSizeDelta is added to block 0's declared decompressed size.
	RawSizeDelta int

	// TruncateBlock truncates block 0's compressed stream.
	TruncateBlock bool
}

func (o *ContainerOptions) magic() string {
	if o != nil && o.Magic != "" {
		return o.Magic
	}
	return layout.Magic
}

func (o *ContainerOptions) version() uint16 {
	if o != nil && o.Version != 0 {
		return o.Version
	}
	return layout.Version
}

// Payload returns the encoded entry payload for the record.
func (r *Rec) Payload() []byte {
	data := r.Data
	if r.Kind == keyidx.Redirect {
		data = []byte(r.Target)
	}

	b := make([]byte, layout.PayloadHeaderSize, layout.PayloadHeaderSize+len(data))
	b[0] = byte(r.Kind)
	layout.ByteOrder.PutUint32(b[1:], uint32(len(data)+r.DeclaredDataLenDelta))
	return append(b, data...)
}

// MakeRecord returns the encoded key index record.
func MakeRecord(key string, kind keyidx.Kind, loc keyidx.Locator) []byte {
	b := make([]byte, layout.RecordKeyLenSize, layout.RecordKeyLenSize+len(key)+layout.RecordFixedSize)
	layout.ByteOrder.PutUint16(b, uint16(len(key)))
	b = append(b, key...)
	b = append(b, byte(kind))
	b = layout.ByteOrder.AppendUint32(b, loc.BlockID)
	b = layout.ByteOrder.AppendUint32(b, loc.BlockOff)
	b = layout.ByteOrder.AppendUint32(b, loc.Length)
	return b
}

// MakeContainer builds a container holding the given records in order.
func MakeContainer(t *testing.T, recs []*Rec, opts *ContainerOptions) []byte {
	t.Helper()

	blockCount := 0
	for _, r := range recs {
		if r.Block+1 > blockCount {
			blockCount = r.Block + 1
		}
	}

	// Lay out payloads and build locators.
	rawBlocks := make([][]byte, blockCount)
	locators := make([]keyidx.Locator, len(recs))
	for i, r := range recs {
		payload := r.Payload()
		locators[i] = keyidx.Locator{
			BlockID:  uint32(r.Block + r.BlockIDDelta),
			BlockOff: uint32(len(rawBlocks[r.Block])),
			Length:   uint32(len(payload) + r.LocatorLengthDelta),
		}
		rawBlocks[r.Block] = append(rawBlocks[r.Block], payload...)
	}

	// Compress blocks.
	compBlocks := make([][]byte, blockCount)
	for i, raw := range rawBlocks {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			t.Fatalf("compressing block %d: %v", i, err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("compressing block %d: %v", i, err)
		}
		compBlocks[i] = buf.Bytes()
	}
	if opts != nil && opts.TruncateBlock && blockCount > 0 {
		compBlocks[0] = compBlocks[0][:len(compBlocks[0])/2]
	}

	// Index region.
	var region []byte
	for i, r := range recs {
		region = append(region, MakeRecord(r.Key, r.Kind, locators[i])...)
	}
	if opts != nil {
		region = append(region, opts.ExtraIndexBytes...)
	}

	// Assemble: header, block table, index region, block data.
	blockTableOff := uint64(layout.HeaderSize)
	indexOff := blockTableOff + uint64(blockCount*layout.BlockDescSize)
	dataOff := indexOff + uint64(len(region))

	recordCount := len(recs)
	if opts != nil {
		recordCount += opts.RecordCountDelta
	}

	hdr := make([]byte, layout.HeaderSize)
	copy(hdr[layout.HeaderMagicOff:], opts.magic())
	layout.ByteOrder.PutUint16(hdr[layout.HeaderVersionOff:], opts.version())
	layout.ByteOrder.PutUint64(hdr[layout.HeaderIndexOffOff:], indexOff)
	layout.ByteOrder.PutUint64(hdr[layout.HeaderIndexLenOff:], uint64(len(region)))
	layout.ByteOrder.PutUint32(hdr[layout.HeaderRecordCountOff:], uint32(recordCount))
	layout.ByteOrder.PutUint32(hdr[layout.HeaderBlockCountOff:], uint32(blockCount))
	layout.ByteOrder.PutUint64(hdr[layout.HeaderBlockTableOff:], blockTableOff)

	var table []byte
	off := dataOff
	for i, comp := range compBlocks {
		rawSize := len(rawBlocks[i])
		if i == 0 && opts != nil {
			rawSize += opts.RawSizeDelta
		}
		table = layout.ByteOrder.AppendUint64(table, off)
		table = layout.ByteOrder.AppendUint32(table, uint32(len(comp)))
		table = layout.ByteOrder.AppendUint32(table, uint32(rawSize))
		off += uint64(len(comp))
	}

	b := hdr
	b = append(b, table...)
	b = append(b, region...)
	for _, comp := range compBlocks {
		b = append(b, comp...)
	}

	return b
}

// MakeTempContainer writes a container to a temporary file and returns
// the file. The file is removed when the test completes.
func MakeTempContainer(t *testing.T, recs []*Rec, opts *ContainerOptions) *os.File {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "*.Body.data")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.Write(MakeContainer(t, recs, opts)); err != nil {
		t.Fatal(err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	return f
}
