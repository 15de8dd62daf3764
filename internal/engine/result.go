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

// ValidateResult reports the outcome of a validation walk.
// InputConsumed is a count of input code units, not bytes: for a
// byte-oriented encoding (Latin1, Utf8, Utf8Char) units and bytes
// coincide, but for Utf16LE/Utf16BE a unit is 2 bytes and for Utf32 a
// unit is 4 bytes.
type ValidateResult struct {
	Error         ErrorKind
	InputConsumed int
}

// Ok reports whether the input was entirely well-formed.
func (r ValidateResult) Ok() bool {
	return r.Error == None
}

// ConvertResult reports the outcome of a conversion walk.
type ConvertResult struct {
	Error         ErrorKind
	InputConsumed int
	OutputWritten int
}

// Ok reports whether the whole input was converted without error.
func (r ConvertResult) Ok() bool {
	return r.Error == None
}

// Policy selects how a conversion walk treats malformed input.
type Policy uint8

const (
	Default Policy = iota
	AssumeValid
	ZeroOrProcessed
	ReturnResult
)

func (p Policy) String() string {
	switch p {
	case Default:
		return "Default"
	case AssumeValid:
		return "AssumeValid"
	case ZeroOrProcessed:
		return "ZeroOrProcessed"
	case ReturnResult:
		return "ReturnResult"
	default:
		return "Policy(?)"
	}
}

// Checked reports whether decode/encode steps must run their
// validation checks under p.
func (p Policy) Checked() bool {
	return p != AssumeValid
}
