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

// Package body implements reading the container's compressed entry
// blocks.
//
// The body is a sequence of zlib-compressed blocks, each holding
// concatenated entry payloads. An entry payload starts with a small
// header declaring its kind and data length, followed by either an
// opaque markup fragment (definition) or a target key (redirect).
// Blocks are decompressed lazily and cached; the cache is safe for
// concurrent lookups.
package body
