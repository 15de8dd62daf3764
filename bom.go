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

// bomEntry pairs a byte-order-mark sequence with the tag it signals.
// Longer marks are listed before shorter ones that are a prefix of
// them (UTF-32LE's mark starts with UTF-16LE's) so SniffBOM checks the
// more specific match first.
var bomTable = []struct {
	mark []byte
	tag  Tag
}{
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, Utf32}, // UTF-32BE
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, Utf32}, // UTF-32LE
	{[]byte{0xEF, 0xBB, 0xBF}, Utf8},
	{[]byte{0xFE, 0xFF}, Utf16BE},
	{[]byte{0xFF, 0xFE}, Utf16LE},
}

// SniffBOM reports the encoding signaled by a byte-order mark at the
// start of data, and how many bytes the mark occupies. It does not
// strip the mark or otherwise touch data; a caller that wants the mark
// excluded from conversion slices it off using the returned length.
// SniffBOM never returns Utf8Char (the mark itself can't distinguish
// the two UTF-8 element views) or Latin1 (Latin-1 has no BOM
// convention).
//
// SniffBOM's coverage is deliberately limited to the table above: it
// is the "simple BOM sniff" spec.md calls out as in scope, not a
// heuristic content-based encoding detector.
func SniffBOM(data []byte) (tag Tag, length int, ok bool) {
	for _, entry := range bomTable {
		if len(data) >= len(entry.mark) && hasPrefix(data, entry.mark) {
			return entry.tag, len(entry.mark), true
		}
	}
	return 0, 0, false
}

func hasPrefix(data, mark []byte) bool {
	for i, b := range mark {
		if data[i] != b {
			return false
		}
	}
	return true
}
