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

// Package engine holds the shared type surface and the per-unit state
// machines that both the scalar and vector (icelake) backends
// instantiate. Nothing here is backend-specific; scalar and icelake
// drive these same decode/encode functions over different block
// shapes, which is what makes their outputs bit-identical by
// construction rather than by coincidence.
package engine

// Tag identifies one of the five text encodings the transcoder matrix
// covers. It mirrors the public github.com/SnellerInc/chars.Tag
// one-for-one; the facade package type-aliases it.
type Tag uint8

const (
	Latin1 Tag = iota
	Utf8
	Utf8Char
	Utf16LE
	Utf16BE
	Utf32
)

func (t Tag) String() string {
	switch t {
	case Latin1:
		return "LATIN1"
	case Utf8:
		return "UTF-8"
	case Utf8Char:
		return "UTF-8(char)"
	case Utf16LE:
		return "UTF-16LE"
	case Utf16BE:
		return "UTF-16BE"
	case Utf32:
		return "UTF-32"
	default:
		return "Tag(?)"
	}
}

// UnitSize returns the width, in bytes, of one code unit.
func (t Tag) UnitSize() int {
	switch t {
	case Latin1, Utf8, Utf8Char:
		return 1
	case Utf16LE, Utf16BE:
		return 2
	case Utf32:
		return 4
	default:
		return 0
	}
}

// IsUTF8 reports whether t is one of the two UTF-8 boundary
// representations.
func (t Tag) IsUTF8() bool {
	return t == Utf8 || t == Utf8Char
}

// IsUTF16 reports whether t is one of the two UTF-16 byte orders.
func (t Tag) IsUTF16() bool {
	return t == Utf16LE || t == Utf16BE
}

// bigEndian reports the byte order to use when loading/storing a
// UTF-16 code unit for t. Only meaningful when t.IsUTF16().
func (t Tag) bigEndian() bool {
	return t == Utf16BE
}
