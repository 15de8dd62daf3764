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

// Package icelake is the 64-byte-block vector backend, named for the
// Ice Lake microarchitecture that introduced the AVX-512 feature set
// it targets. Its block classifier is built on internal/simd's
// intrinsic emulation; any block it cannot classify as entirely clean
// falls back to internal/engine's per-unit state machine, the same one
// internal/scalar drives, so the two backends are bit-identical by
// construction (spec.md §8 "backend equivalence").
package icelake

import "golang.org/x/sys/cpu"

// Available reports whether the running CPU has the AVX-512 feature
// set this backend assumes. Callers that want the portable scalar
// backend regardless of CPU should use internal/scalar directly
// instead of checking this.
func Available() bool {
	return cpu.X86.HasAVX512F &&
		cpu.X86.HasAVX512BW &&
		cpu.X86.HasAVX512VL
}
