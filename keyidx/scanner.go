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
	"bufio"
	"fmt"
	"io"

	"github.com/ianlewis/go-appledict/internal/layout"
)

// Kind is the kind of a key index record.
type Kind uint8

const (
	// Definition records address a markup payload owned by the key.
	Definition = Kind(0)

	// Redirect records address a payload naming another key that owns the
	// definition.
	Redirect = Kind(1)
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Definition:
		return "definition"
	case Redirect:
		return "redirect"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Locator addresses one entry payload inside a compressed block.
type Locator struct {
	// BlockID identifies the owning block.
	BlockID uint32

	// BlockOff is the entry offset within the decompressed block.
	BlockOff uint32

	// Length is the entry length within the decompressed block, including
	// the payload header.
	Length uint32
}

// Record is a key index record.
type Record struct {
	// Key is the lookup key as stored in the container.
	Key string

	// Kind is the record kind.
	Kind Kind

	// Locator addresses the record's entry payload.
	Locator Locator
}

// Scanner scans the key index region from start to end, one record at a
// time.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner returns a new key index scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
	s.s.Split(splitRecord)
	return s
}

// Scan advances to the next index record. It returns false when the scan
// stops, either by reaching the end of the region or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Record returns the current index record.
func (s *Scanner) Record() *Record {
	b := s.s.Bytes()
	keyLen := int(layout.ByteOrder.Uint16(b))
	tail := b[layout.RecordKeyLenSize+keyLen:]
	return &Record{
		Key:  string(b[layout.RecordKeyLenSize : layout.RecordKeyLenSize+keyLen]),
		Kind: Kind(tail[0]),
		Locator: Locator{
			BlockID:  layout.ByteOrder.Uint32(tail[1:]),
			BlockOff: layout.ByteOrder.Uint32(tail[5:]),
			Length:   layout.ByteOrder.Uint32(tail[9:]),
		},
	}
}

// splitRecord splits one variable-width record off the index region. A
// partial record at the end of the region is an error rather than a short
// token; the region length must be an exact record boundary.
func splitRecord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if len(data) >= layout.RecordKeyLenSize {
		keyLen := int(layout.ByteOrder.Uint16(data))
		tokenSize := layout.RecordKeyLenSize + keyLen + layout.RecordFixedSize
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}

	if atEOF {
		return 0, nil, fmt.Errorf("%w: %d byte partial record", ErrMalformedIndex, len(data))
	}

	// Request more data.
	return 0, nil, nil
}
