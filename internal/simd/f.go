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

package simd

func VPXORQ(a, b, r *Vec64x8) {
	for i := range *r {
		r[i] = a[i] ^ b[i]
	}
}

func VSHUFI64X2(imm uint8, a, b, r *Vec64x8) {
	i0 := imm & 0x03
	i1 := (imm >> 2) & 0x03
	i2 := (imm >> 4) & 0x03
	i3 := (imm >> 6) & 0x03

	t := Vec64x8{
		b[i0*2], b[i0*2+1],
		b[i1*2], b[i1*2+1],
		a[i2*2], a[i2*2+1],
		a[i3*2], a[i3*2+1],
	}
	*r = t
}

func VPTERNLOGQ(imm uint8, a, b, r *Vec64x8) {
	var t Vec64x8
	for i := range *r {
		for j := 0; j < 64; j++ {
			idx := (((r[i] >> j) & 0x01) << 2) | (((b[i] >> j) & 0x01) << 1) | ((a[i] >> j) & 0x01)
			t[i] |= (uint64((imm>>idx)&0x01) << j)
		}
	}
	*r = t
}

func VMOVDQA64(a, r *Vec64x8) {
	*r = *a
}

// LoadVec8x64Z reads up to 64 bytes of data starting at offset into a
// Vec8x64, honoring a 64-bit lane mask k the way AVX-512's masked load
// instruction does: lane i of the result holds data[offset+i] when bit
// i of k is set and offset+i is in range, zero otherwise. This is the
// bounds-checked replacement for the teacher's unsafe.Pointer-based
// VMOVDQU8Z: the transcoder always operates on Go slices, never raw
// memory, so every load goes through ordinary slice indexing.
func LoadVec8x64Z(data []byte, offset int, k uint64) Vec8x64 {
	var r Vec8x64
	n := len(data)
	for i := 0; i < 64; i++ {
		if (k>>i)&1 == 0 {
			continue
		}
		pos := offset + i
		if pos < 0 || pos >= n {
			continue
		}
		r[i] = data[pos]
	}
	return r
}

// LoadVec8x64 reads a full 64-byte block starting at offset. The
// caller must ensure offset+64 <= len(data); use LoadVec8x64Z for a
// block that may run past the end of data (the tail of input).
func LoadVec8x64(data []byte, offset int) Vec8x64 {
	var r Vec8x64
	copy(r[:], data[offset:offset+64])
	return r
}
