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

package appledict

// Entry is a resolved definition entry.
type Entry struct {
	word  string
	data  []byte
	chain []string
}

// Word returns the key that owns the definition. For entries reached via
// redirect this is the terminal key, not the queried word.
func (e *Entry) Word() string {
	return e.word
}

// Data returns the definition markup. The markup is an opaque, XML-like
// rich text fragment; callers embed or render it as-is.
func (e *Entry) Data() []byte {
	return e.data
}

// Redirected reports whether the entry was reached via one or more
// redirect records.
func (e *Entry) Redirected() bool {
	return len(e.chain) > 0
}

// Chain returns the redirecting keys traversed to reach the entry, in
// traversal order, starting with the queried record's key. It is empty
// for entries reached directly.
func (e *Entry) Chain() []string {
	return e.chain
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	return e.word + "\n" + string(e.data)
}

// LookupResult is the ordered result of a single word lookup.
type LookupResult struct {
	word    string
	entries []*Entry
}

// Word returns the queried word.
func (r *LookupResult) Word() string {
	return r.word
}

// Entries returns the resolved entries in container order. An absent word
// yields zero entries.
func (r *LookupResult) Entries() []*Entry {
	return r.entries
}

// Empty reports whether the lookup found no entries.
func (r *LookupResult) Empty() bool {
	return len(r.entries) == 0
}
