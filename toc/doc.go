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

// Package toc implements reading the container's table of contents.
//
// The table of contents consists of a fixed header at the start of the
// container and a table of block descriptors. The header locates the key
// index region and the block table; each block descriptor locates one
// zlib-compressed entry block and declares its decompressed size.
//
// The layout was recovered by reverse engineering; the field widths and
// offsets live in the internal layout package together with the evidence
// that justified them.
package toc
