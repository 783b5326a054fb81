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

// Package layout holds the structural constants of the body container
// format.
//
// The format is not documented by its vendor. Every constant below is a
// discovered fact, recovered by inspecting real container files and
// validated against a corpus of known key/definition pairs. Do not change
// a value without fixture evidence.
package layout

import "encoding/binary"

// ByteOrder is the byte order of all multi-byte integer fields.
//
// Evidence: all offsets and sizes in inspected containers decode to
// in-bounds values as little-endian and to garbage as big-endian.
var ByteOrder = binary.LittleEndian

// Magic is the container magic at offset 0.
const Magic = "DBDY"

// Version is the only container format version observed in the wild.
const Version = 1

// HeaderSize is the size of the fixed container header.
//
// The header layout is:
//
//	[0:4]   magic
//	[4:6]   format version (uint16)
//	[6:8]   flags (uint16, always zero in observed files)
//	[8:16]  key index region offset (uint64)
//	[16:24] key index region length (uint64)
//	[24:28] key index record count (uint32)
//	[28:32] block count (uint32)
//	[32:40] block table offset (uint64)
//	[40:48] reserved (zero in observed files)
const HeaderSize = 48

// Header field offsets.
const (
	HeaderMagicOff       = 0
	HeaderVersionOff     = 4
	HeaderFlagsOff       = 6
	HeaderIndexOffOff    = 8
	HeaderIndexLenOff    = 16
	HeaderRecordCountOff = 24
	HeaderBlockCountOff  = 28
	HeaderBlockTableOff  = 32
)

// BlockDescSize is the size of one block table entry.
//
// A block table entry is:
//
//	[0:8]   block data offset in the file (uint64)
//	[8:12]  compressed size (uint32)
//	[12:16] decompressed size (uint32)
//
// Block data is a raw zlib stream. Evidence: block data begins with the
// usual 0x78 zlib CMF byte and inflates cleanly; the dictzip and gzip
// framings both fail on the same bytes.
const BlockDescSize = 16

// Key index record layout. Records are variable width:
//
//	[0:2]         key length n (uint16)
//	[2:2+n]       key (UTF-8)
//	[2+n]         record kind (uint8; see keyidx.Kind)
//	[2+n+1:2+n+5] block ID (uint32)
//	[2+n+5:2+n+9] offset within the decompressed block (uint32)
//	[2+n+9:2+n+13] entry length within the block (uint32)
const (
	// RecordKeyLenSize is the size of the key length prefix.
	RecordKeyLenSize = 2

	// RecordFixedSize is the size of the fixed tail following the key
	// (kind + block ID + block offset + entry length).
	RecordFixedSize = 13
)

// PayloadHeaderSize is the size of the header leading every entry payload
// inside a decompressed block:
//
//	[0]   payload kind (uint8, mirrors the index record kind)
//	[1:5] payload data length (uint32)
const PayloadHeaderSize = 5
