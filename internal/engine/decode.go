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

// DecodeOne reads one code point starting at unit index unit of data,
// which is interpreted according to tag. It returns the decoded code
// point, the number of input code units consumed (even on error, so a
// caller can resynchronize at the next unit), and the error kind.
//
// When checked is false the caller asserts data is well-formed from
// unit onward (Policy AssumeValid); all range and bounds checks below
// that point are skipped and the return values are unspecified if that
// assertion does not hold, though DecodeOne itself never reads past
// len(data).
func DecodeOne(tag Tag, data []byte, unit int, checked bool) (cp int32, advance int, err ErrorKind) {
	switch tag {
	case Latin1:
		return decodeLatin1(data, unit)
	case Utf8, Utf8Char:
		return decodeUTF8(data, unit, checked)
	case Utf16LE:
		return decodeUTF16(data, unit, false, checked)
	case Utf16BE:
		return decodeUTF16(data, unit, true, checked)
	case Utf32:
		return decodeUTF32(data, unit, checked)
	default:
		return 0, 0, HeaderBits
	}
}

func decodeLatin1(data []byte, unit int) (int32, int, ErrorKind) {
	return int32(data[unit]), 1, None
}

// decodeUTF8 implements the leading-byte state machine of spec.md
// §4.1/§4.4, grounded on scalar_1.cpp's check_byte_{1,2,3,4}/do_write
// family: the reported advance is always the sequence length implied
// by the leading byte, even when validation subsequently fails, which
// is how the reference resynchronizes after an error.
func decodeUTF8(data []byte, unit int, checked bool) (int32, int, ErrorKind) {
	b0 := data[unit]
	n := len(data)

	switch {
	case b0 < 0x80:
		return int32(b0), 1, None

	case b0&0xE0 == 0xC0: // 110xxxxx
		if unit+1 >= n {
			return 0, 2, TooShort
		}
		b1 := data[unit+1]
		if checked && b1&0xC0 != 0x80 {
			return 0, 2, TooShort
		}
		cp := (int32(b0&0x1F) << 6) | int32(b1&0x3F)
		if checked && cp < 0x80 {
			return cp, 2, Overlong
		}
		return cp, 2, None

	case b0&0xF0 == 0xE0: // 1110xxxx
		if unit+2 >= n {
			return 0, 3, TooShort
		}
		b1, b2 := data[unit+1], data[unit+2]
		if checked && (b1&0xC0 != 0x80 || b2&0xC0 != 0x80) {
			return 0, 3, TooShort
		}
		cp := (int32(b0&0x0F) << 12) | (int32(b1&0x3F) << 6) | int32(b2&0x3F)
		if checked {
			if cp < 0x800 {
				return cp, 3, Overlong
			}
			if InSurrogateRange(cp) {
				return cp, 3, Surrogate
			}
		}
		return cp, 3, None

	case b0&0xF8 == 0xF0: // 11110xxx
		if unit+3 >= n {
			return 0, 4, TooShort
		}
		b1, b2, b3 := data[unit+1], data[unit+2], data[unit+3]
		if checked && (b1&0xC0 != 0x80 || b2&0xC0 != 0x80 || b3&0xC0 != 0x80) {
			return 0, 4, TooShort
		}
		cp := (int32(b0&0x07) << 18) | (int32(b1&0x3F) << 12) | (int32(b2&0x3F) << 6) | int32(b3&0x3F)
		if checked {
			if cp < 0x10000 {
				return cp, 4, Overlong
			}
			if cp > MaxCodePoint {
				return cp, 4, TooLarge
			}
		}
		return cp, 4, None

	case b0&0xC0 == 0x80: // stray continuation byte
		return 0, 1, TooLong

	default: // 11111xxx
		return 0, 1, HeaderBits
	}
}

// decodeUTF16 implements the surrogate-pair state machine of spec.md
// §4.1/§4.4, grounded on scalar_1.cpp's utf16::do_validate. bigEndian
// selects the byte order the 2-byte units are loaded with.
func decodeUTF16(data []byte, unit int, bigEndian bool, checked bool) (int32, int, ErrorKind) {
	off := unit * 2
	u := loadU16(data, off, bigEndian)

	if u&0xF800 != 0xD800 {
		return int32(u), 1, None
	}

	// Surrogate half. A high surrogate starts a pair; a low surrogate
	// on its own is always an error.
	if checked && u-0xD800 > 0x3FF {
		// low surrogate appearing without a preceding high surrogate
		return 0, 1, Surrogate
	}

	if off+3 >= len(data) {
		// Truncated pair: per spec.md §4.1 this is Surrogate, not
		// TooShort, regardless of policy — §9's open question is
		// resolved by always bounds-checking the next unit.
		return 0, 1, Surrogate
	}

	v := loadU16(data, off+2, bigEndian)
	if checked && v-0xDC00 > 0x3FF {
		return 0, 1, Surrogate
	}

	cp := ((int32(u) - 0xD800) << 10) + (int32(v) - 0xDC00) + 0x10000
	return cp, 2, None
}

func decodeUTF32(data []byte, unit int, checked bool) (int32, int, ErrorKind) {
	cp := int32(binary.LittleEndian.Uint32(data[unit*4:]))
	if checked {
		if cp < 0 || cp > MaxCodePoint {
			return cp, 1, TooLarge
		}
		if InSurrogateRange(cp) {
			return cp, 1, Surrogate
		}
	}
	return cp, 1, None
}

func loadU16(data []byte, off int, bigEndian bool) uint16 {
	if bigEndian {
		return binary.BigEndian.Uint16(data[off:])
	}
	return binary.LittleEndian.Uint16(data[off:])
}
