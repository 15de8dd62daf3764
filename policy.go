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

// Policy selects how Convert treats malformed input. Policy is an
// alias for internal/engine.Policy.
type Policy = engine.Policy

const (
	// Default stops at the first malformed unit and returns the
	// prefix counts.
	Default = engine.Default
	// AssumeValid skips all per-unit validation. The caller asserts
	// the input was already validated; if that assertion is false,
	// the output and returned counts are unspecified, but Convert
	// never reads or writes out of bounds provided the output buffer
	// was sized from Length.
	AssumeValid = engine.AssumeValid
	// ZeroOrProcessed returns a ConvertResult with OutputWritten == 0
	// on any error, or the total output written on success.
	ZeroOrProcessed = engine.ZeroOrProcessed
	// ReturnResult is synonymous with Default; it exists only for
	// source compatibility with callers that distinguish the two
	// names.
	ReturnResult = engine.ReturnResult
)
