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

import "testing"

func TestASCIIMask8AllClean(t *testing.T) {
	data := []byte("abcdefgh")
	if mask := ASCIIMask8(data, 0); mask != 0 {
		t.Fatalf("got mask %#02x, want 0", mask)
	}
}

func TestASCIIMask8FlagsHighBitLanes(t *testing.T) {
	data := []byte{'a', 'b', 0x80, 'd', 'e', 0xFF, 'g', 'h'}
	mask := ASCIIMask8(data, 0)
	want := uint8(1<<2 | 1<<5)
	if mask != want {
		t.Fatalf("got mask %#02x, want %#02x", mask, want)
	}
}

func TestBMPMask8FlagsSurrogateLanes(t *testing.T) {
	// 8 little-endian UTF-16 units; unit 3 is a high surrogate D83D.
	data := make([]byte, 16)
	for i := 0; i < 8; i++ {
		data[i*2] = 'a'
		data[i*2+1] = 0x00
	}
	data[3*2] = 0x3D
	data[3*2+1] = 0xD8
	mask := BMPMask8(data, 0, false)
	if mask != 1<<3 {
		t.Fatalf("got mask %#02x, want %#02x", mask, uint8(1<<3))
	}
}

func TestTrailingZeros8(t *testing.T) {
	cases := []struct {
		mask uint8
		want int
	}{
		{0, 8},
		{0x01, 0},
		{0x02, 1},
		{0x80, 7},
		{0xFF, 0},
	}
	for _, c := range cases {
		if got := TrailingZeros8(c.mask); got != c.want {
			t.Errorf("TrailingZeros8(%#02x) = %d, want %d", c.mask, got, c.want)
		}
	}
}

func TestLeadingZeros8(t *testing.T) {
	cases := []struct {
		mask uint8
		want int
	}{
		{0, 8},
		{0x80, 0},
		{0x40, 1},
		{0x01, 7},
		{0xFF, 0},
	}
	for _, c := range cases {
		if got := LeadingZeros8(c.mask); got != c.want {
			t.Errorf("LeadingZeros8(%#02x) = %d, want %d", c.mask, got, c.want)
		}
	}
}
