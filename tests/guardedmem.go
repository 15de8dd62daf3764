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

package tests

// GuardedMemory holds user data placed at the end of a page, with the
// following page unmapped so an off-the-end read or write faults
// immediately instead of silently hitting whatever memory happens to
// follow. Tests use this to confirm the icelake backend's 64-byte
// block loads never read past a buffer's declared length, something a
// plain slice-bounds test can't catch once a load is expressed in
// terms of a fixed-size array copy.
type GuardedMemory struct {
	Data   []byte
	mapped []byte
}
