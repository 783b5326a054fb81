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

// Package keyidx implements reading the container's key index region.
//
// The index region is a packed sequence of variable-width records. Each
// record holds a lookup key, a record kind (definition or redirect), and
// a locator addressing the record's entry payload inside one of the
// compressed body blocks.
//
// Keys are not unique. A word with several parts of speech has one record
// per sense, and the container order of those records is meaningful for
// presentation, so lookups preserve it.
package keyidx
