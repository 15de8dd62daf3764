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

// Package chars implements a transcoder between LATIN-1, UTF-8 (both
// unsigned-byte and signed-char element views), UTF-16LE, UTF-16BE and
// UTF-32. Validate reports whether a buffer already conforms to a tag;
// Length computes the exact output size a conversion needs; Convert
// performs the conversion. All three dispatch to whichever of the two
// backends (internal/scalar, internal/icelake) the running CPU
// supports; both backends share internal/engine's per-unit state
// machines, so their output is identical on every input regardless of
// which one ran.
package chars

import (
	"github.com/SnellerInc/chars/internal/icelake"
	"github.com/SnellerInc/chars/internal/scalar"
)

var icelakeAvailable = icelake.Available()

// Validate reports whether data, interpreted as tag, is entirely
// well-formed. On failure the returned ValidateResult's InputConsumed
// is the number of leading code units that were well-formed.
func Validate(tag Tag, data []byte) ValidateResult {
	if icelakeAvailable {
		return icelake.Validate(tag, data)
	}
	return scalar.Validate(tag, data)
}

// Length returns the exact number of outTag code units that Convert
// will write for well-formed data under inTag. Calling Length on
// malformed input, or input whose code points outTag cannot represent,
// is not meaningful; validate first if that isn't already known.
func Length(inTag, outTag Tag, data []byte) int {
	if icelakeAvailable {
		return icelake.Length(inTag, outTag, data)
	}
	return scalar.Length(inTag, outTag, data)
}

// Convert transcodes in, interpreted as inTag, into out, interpreted
// as outTag, following policy. out must be at least Length(inTag,
// outTag, in) bytes (scaled by outTag.UnitSize()) to guarantee Convert
// never runs out of room on well-formed input. Convert does not check
// the size of out: a shorter out makes it panic with an index out of
// range once a write passes the end, except between Utf8 and
// Utf8Char, where the copy stops at len(out) without reporting an
// error and OutputWritten counts the bytes copied.
func Convert(inTag, outTag Tag, policy Policy, in, out []byte) ConvertResult {
	if icelakeAvailable {
		return icelake.Convert(inTag, outTag, policy, in, out)
	}
	return scalar.Convert(inTag, outTag, policy, in, out)
}
