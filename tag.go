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

// Tag identifies one of the five text encodings the transcoder matrix
// covers. Utf8 and Utf8Char decode and encode identically; they differ
// only in the element type a caller uses at the boundary. Tag is an
// alias for internal/engine.Tag so the scalar and icelake backends
// share one definition with the public API.
type Tag = engine.Tag

const (
	Latin1   = engine.Latin1
	Utf8     = engine.Utf8
	Utf8Char = engine.Utf8Char
	Utf16LE  = engine.Utf16LE
	Utf16BE  = engine.Utf16BE
	Utf32    = engine.Utf32
)
