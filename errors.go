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

import (
	"errors"

	"github.com/ianlewis/go-appledict/body"
	"github.com/ianlewis/go-appledict/internal/layout"
	"github.com/ianlewis/go-appledict/keyidx"
	"github.com/ianlewis/go-appledict/toc"
)

// Errors returned while opening a container are fatal; the container
// cannot be used. Errors returned from Lookup are local to that query and
// do not affect the Dictionary or other lookups.
var (
	// ErrOutOfRange indicates a read beyond the end of the container.
	ErrOutOfRange = layout.ErrOutOfRange

	// ErrMalformedHeader indicates an invalid container header or block
	// table.
	ErrMalformedHeader = toc.ErrMalformedHeader

	// ErrMalformedIndex indicates an invalid key index region.
	ErrMalformedIndex = keyidx.ErrMalformedIndex

	// ErrCorruptBlock indicates an entry block that could not be
	// decompressed or whose contents disagree with the key index.
	ErrCorruptBlock = body.ErrCorruptBlock

	// ErrTruncatedEntry indicates an entry payload shorter than its
	// declared length.
	ErrTruncatedEntry = body.ErrTruncatedEntry

	// ErrRedirectLoop indicates a redirect chain that exceeded the
	// maximum redirect depth.
	ErrRedirectLoop = errors.New("redirect loop")

	// ErrRedirectMissing indicates a redirect whose target key has no
	// index record.
	ErrRedirectMissing = errors.New("redirect target missing")
)
