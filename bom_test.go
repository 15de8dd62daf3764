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

import "testing"

func TestSniffBOM(t *testing.T) {
	cases := []struct {
		name   string
		data   []byte
		tag    Tag
		length int
		ok     bool
	}{
		{"utf8", []byte{0xEF, 0xBB, 0xBF, 'a'}, Utf8, 3, true},
		{"utf16le", []byte{0xFF, 0xFE, 'a', 0x00}, Utf16LE, 2, true},
		{"utf16be", []byte{0xFE, 0xFF, 0x00, 'a'}, Utf16BE, 2, true},
		{"utf32be", []byte{0x00, 0x00, 0xFE, 0xFF, 'a'}, Utf32, 4, true},
		{"utf32le", []byte{0xFF, 0xFE, 0x00, 0x00, 'a'}, Utf32, 4, true},
		{"none", []byte("plain ascii"), 0, 0, false},
		{"empty", nil, 0, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tag, length, ok := SniffBOM(c.data)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if !ok {
				return
			}
			if tag != c.tag || length != c.length {
				t.Fatalf("got (%s, %d), want (%s, %d)", tag, length, c.tag, c.length)
			}
		})
	}
}

func TestSniffBOMPrefersUTF32OverUTF16LE(t *testing.T) {
	// The UTF-32LE mark (FF FE 00 00) is a superset of the UTF-16LE
	// mark (FF FE): the longer, more specific match must win.
	data := []byte{0xFF, 0xFE, 0x00, 0x00}
	tag, length, ok := SniffBOM(data)
	if !ok || tag != Utf32 || length != 4 {
		t.Fatalf("got (%s, %d, %v), want (UTF-32, 4, true)", tag, length, ok)
	}
}
