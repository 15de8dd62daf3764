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

import "github.com/SnellerInc/chars/utf8"

// Length returns the exact number of output code units required to
// transcode a well-formed input from inTag to outTag, per spec.md
// §4.2. Length is defined only for well-formed input whose code
// points are all representable in outTag; passing malformed input, or
// input that overflows outTag, yields an unspecified (but in-bounds
// to compute) result — see spec.md §9's open question and DESIGN.md.
func Length(inTag, outTag Tag, data []byte) int {
	inUnits := len(data) / inTag.UnitSize()

	// UTF-8 <-> UTF-8(char) is a memcpy: same unit count.
	if inTag.IsUTF8() && outTag.IsUTF8() {
		return inUnits
	}

	switch inTag {
	case Latin1:
		switch outTag {
		case Utf8, Utf8Char:
			extra := 0
			for _, b := range data {
				if b >= 0x80 {
					extra++
				}
			}
			return inUnits + extra
		default: // Utf16LE, Utf16BE, Utf32: one Latin-1 byte is always one unit
			return inUnits
		}

	case Utf8, Utf8Char:
		switch outTag {
		case Latin1, Utf32:
			return utf8.ValidStringLength(data)
		case Utf16LE, Utf16BE:
			return utf8.Utf16UnitCount(data)
		}

	case Utf16LE, Utf16BE:
		bigEndian := inTag == Utf16BE
		switch outTag {
		case Latin1, Utf32:
			return inUnits - lowSurrogateCount(data, bigEndian)
		case Utf16LE, Utf16BE:
			return inUnits
		case Utf8, Utf8Char:
			return utf16ToUTF8ByteLen(data, bigEndian)
		}

	case Utf32:
		switch outTag {
		case Latin1, Utf16LE, Utf16BE:
			if outTag == Latin1 {
				return inUnits
			}
			return inUnits + countSupplementary(data)
		case Utf8, Utf8Char:
			return utf32ToUTF8ByteLen(data)
		}
	}
	return inUnits
}

func lowSurrogateCount(data []byte, bigEndian bool) int {
	units := len(data) / 2
	count := 0
	for i := 0; i < units; i++ {
		u := loadU16(data, i*2, bigEndian)
		if u&0xFC00 == 0xDC00 {
			count++
		}
	}
	return count
}

func countSupplementary(data []byte) int {
	units := len(data) / 4
	count := 0
	for i := 0; i < units; i++ {
		cp, _, _ := decodeUTF32(data, i, false)
		if cp >= 0x10000 {
			count++
		}
	}
	return count
}

func utf16ToUTF8ByteLen(data []byte, bigEndian bool) int {
	units := len(data) / 2
	total := 0
	for i := 0; i < units; i++ {
		cp, advance, _ := decodeUTF16(data, i, bigEndian, false)
		total += utf8Width(cp)
		i += advance - 1
	}
	return total
}

func utf32ToUTF8ByteLen(data []byte) int {
	units := len(data) / 4
	total := 0
	for i := 0; i < units; i++ {
		cp, _, _ := decodeUTF32(data, i, false)
		total += utf8Width(cp)
	}
	return total
}

func utf8Width(cp int32) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	default:
		return 4
	}
}
