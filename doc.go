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

// Package appledict implements a read-only reader for the binary body
// container used by macOS Dictionary Services assets (the Body.data
// file bundled with dictionaries such as the New Oxford American
// Dictionary) in pure Go.
//
// The container format is proprietary and undocumented; the layout
// implemented here was recovered by reverse engineering and is validated
// against a corpus of known key/definition pairs. A container has three
// regions:
//
//  1. A fixed header and block table locating everything else.
//  2. A key index region mapping lookup keys to entry locators. A key may
//     have several records (one per sense), and a record is either a
//     definition or a redirect pointing at another key.
//  3. A sequence of zlib-compressed blocks holding entry payloads.
//     Definition payloads are opaque XML-like markup fragments that
//     callers render themselves.
//
// Lookups fold case, diacritics, and whitespace, resolve redirects to
// their terminal definitions, and preserve the container's entry order.
package appledict
