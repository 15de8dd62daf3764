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

package engine

import "encoding/binary"

// EncodeOne writes one code point as unit-indexed output according to
// tag, starting at unit index unit of out. It returns the number of
// output code units written and the error kind resulting from the
// target-specific rejection rules of spec.md §4.1 ("Target-specific
// rejections"). When checked is false (Policy AssumeValid) those
// rejection checks are skipped; the caller is trusted to have sized
// and validated the conversion via Length.
func EncodeOne(tag Tag, cp int32, out []byte, unit int, checked bool) (advance int, err ErrorKind) {
	switch tag {
	case Latin1:
		return encodeLatin1(cp, out, unit, checked)
	case Utf8, Utf8Char:
		return encodeUTF8(cp, out, unit)
	case Utf16LE:
		return encodeUTF16(cp, out, unit, false, checked)
	case Utf16BE:
		return encodeUTF16(cp, out, unit, true, checked)
	case Utf32:
		return encodeUTF32(cp, out, unit, checked)
	default:
		return 0, HeaderBits
	}
}

func encodeLatin1(cp int32, out []byte, unit int, checked bool) (int, ErrorKind) {
	if checked && cp > 0xFF {
		return 0, TooLarge
	}
	out[unit] = byte(cp)
	return 1, None
}

// encodeUTF8 always chooses the minimal encoding length for cp, per
// spec.md §4.1 "Encoding (writer side)". UTF-8 has no separate target
// rejection: any code point a checked decode can produce (<= 0x10FFFF,
// outside the surrogate range) is representable.
func encodeUTF8(cp int32, out []byte, unit int) (int, ErrorKind) {
	switch {
	case cp < 0x80:
		out[unit] = byte(cp)
		return 1, None
	case cp < 0x800:
		out[unit] = 0xC0 | byte(cp>>6)
		out[unit+1] = 0x80 | byte(cp&0x3F)
		return 2, None
	case cp < 0x10000:
		out[unit] = 0xE0 | byte(cp>>12)
		out[unit+1] = 0x80 | byte((cp>>6)&0x3F)
		out[unit+2] = 0x80 | byte(cp&0x3F)
		return 3, None
	default:
		out[unit] = 0xF0 | byte(cp>>18)
		out[unit+1] = 0x80 | byte((cp>>12)&0x3F)
		out[unit+2] = 0x80 | byte((cp>>6)&0x3F)
		out[unit+3] = 0x80 | byte(cp&0x3F)
		return 4, None
	}
}

func encodeUTF16(cp int32, out []byte, unit int, bigEndian bool, checked bool) (int, ErrorKind) {
	if checked {
		if cp > MaxCodePoint {
			return 0, TooLarge
		}
		if InSurrogateRange(cp) {
			return 0, Surrogate
		}
	}
	off := unit * 2
	if cp < 0x10000 {
		storeU16(out, off, uint16(cp), bigEndian)
		return 1, None
	}
	v := cp - 0x10000
	hi := uint16(0xD800 + (v >> 10))
	lo := uint16(0xDC00 + (v & 0x3FF))
	storeU16(out, off, hi, bigEndian)
	storeU16(out, off+2, lo, bigEndian)
	return 2, None
}

func encodeUTF32(cp int32, out []byte, unit int, checked bool) (int, ErrorKind) {
	if checked {
		if cp > MaxCodePoint {
			return 0, TooLarge
		}
		if InSurrogateRange(cp) {
			return 0, Surrogate
		}
	}
	binary.LittleEndian.PutUint32(out[unit*4:], uint32(cp))
	return 1, None
}

func storeU16(out []byte, off int, v uint16, bigEndian bool) {
	if bigEndian {
		binary.BigEndian.PutUint16(out[off:], v)
	} else {
		binary.LittleEndian.PutUint16(out[off:], v)
	}
}
