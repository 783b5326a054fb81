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

package layout

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a read beyond the end of the container.
var ErrOutOfRange = errors.New("out of range")

// Reader is a bounds-checked view over the container's raw bytes. Every
// read is absolute-offset and the Reader holds no position state, so it is
// safe for concurrent use.
type Reader struct {
	b []byte
}

// NewReader returns a Reader over b. The Reader borrows b; callers must
// not mutate it afterwards.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Size returns the container size in bytes.
func (r *Reader) Size() uint64 {
	return uint64(len(r.b))
}

// Slice returns the n bytes starting at off. The returned slice aliases
// the underlying buffer and must be treated as read-only.
func (r *Reader) Slice(off, n uint64) ([]byte, error) {
	end := off + n
	if end < off || end > uint64(len(r.b)) {
		return nil, fmt.Errorf("%w: [%d, %d) of %d bytes", ErrOutOfRange, off, end, len(r.b))
	}
	return r.b[off:end], nil
}

// Uint16 reads a 16-bit field at off.
func (r *Reader) Uint16(off uint64) (uint16, error) {
	b, err := r.Slice(off, 2)
	if err != nil {
		return 0, err
	}
	return ByteOrder.Uint16(b), nil
}

// Uint32 reads a 32-bit field at off.
func (r *Reader) Uint32(off uint64) (uint32, error) {
	b, err := r.Slice(off, 4)
	if err != nil {
		return 0, err
	}
	return ByteOrder.Uint32(b), nil
}

// Uint64 reads a 64-bit field at off.
func (r *Reader) Uint64(off uint64) (uint64, error) {
	b, err := r.Slice(off, 8)
	if err != nil {
		return 0, err
	}
	return ByteOrder.Uint64(b), nil
}
