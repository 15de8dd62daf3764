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

import "github.com/SnellerInc/chars/internal/engine"

// ValidateResult reports the outcome of Validate. InputConsumed counts
// input code units, not bytes: for a byte-oriented encoding (Latin1,
// Utf8, Utf8Char) units and bytes coincide, but for Utf16LE/Utf16BE a
// unit is 2 bytes and for Utf32 a unit is 4 bytes. ValidateResult is an
// alias for internal/engine.ValidateResult.
type ValidateResult = engine.ValidateResult

// ConvertResult reports the outcome of Convert. ConvertResult is an
// alias for internal/engine.ConvertResult.
type ConvertResult = engine.ConvertResult
