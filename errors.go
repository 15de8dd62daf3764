// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package chars

import "github.com/SnellerInc/chars/internal/engine"

// ErrorKind is the closed set of ways a transcode operation can fail.
// Numeric values are not part of the API contract; the partition of
// inputs into kinds is. ErrorKind is an alias for
// internal/engine.ErrorKind.
type ErrorKind = engine.ErrorKind

const (
	// None means no error occurred.
	None = engine.None
	// TooShort means a UTF-8 continuation byte was required but the
	// input ended, or the next byte was not a continuation byte. A
	// missing or wrong low surrogate is reported as Surrogate instead.
	TooShort = engine.TooShort
	// TooLong means a stray UTF-8 continuation byte was found where a
	// leading byte was expected.
	TooLong = engine.TooLong
	// TooLarge means the code point exceeds what the target encoding
	// can represent.
	TooLarge = engine.TooLarge
	// Overlong means a UTF-8 sequence encoded its code point using
	// more bytes than the minimal encoding requires.
	Overlong = engine.Overlong
	// Surrogate means a lone or mis-ordered UTF-16 surrogate half was
	// found, or a UTF-32/UTF-8 code point fell in the surrogate range
	// 0xD800-0xDFFF.
	Surrogate = engine.Surrogate
	// HeaderBits means a UTF-8 leading byte had an invalid top-bit
	// pattern (0b11111xxx).
	HeaderBits = engine.HeaderBits
)
