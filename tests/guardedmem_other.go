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

//go:build !(linux && amd64)

package tests

// GuardMemory on platforms without the linux/amd64 mmap-based guard
// page falls back to a plain copy; it still exercises the exact same
// data layout (user bytes at the end of the slice) so call sites don't
// need a build-tag of their own, but it cannot catch an off-the-end
// access the way the guarded variant can.
func GuardMemory(userdata []byte) (*GuardedMemory, error) {
	gm := &GuardedMemory{Data: make([]byte, len(userdata))}
	copy(gm.Data, userdata)
	return gm, nil
}

// Free is a no-op on the fallback path; there is no mapping to undo.
func (gm *GuardedMemory) Free() error {
	return nil
}
