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

// Validate walks data, which is interpreted per tag, and reports the
// first malformed unit. This is the reference walk both backends must
// agree with (spec.md §8 "Validator/converter agreement").
func Validate(tag Tag, data []byte) ValidateResult {
	units := len(data) / tag.UnitSize()
	unit := 0
	for unit < units {
		_, advance, err := DecodeOne(tag, data, unit, true)
		if err != None {
			return ValidateResult{Error: err, InputConsumed: unit}
		}
		unit += advance
	}
	return ValidateResult{Error: None, InputConsumed: unit}
}

// Drive performs the generic decode/encode walk shared by both
// backends: decode one code point from in at the current unit under
// inTag, then encode it to out under outTag, advancing both cursors.
// It is the per-unit reference semantics; the scalar and icelake
// backends differ only in how many units they process per iteration
// of their own outer loop before falling back to Drive (or a routine
// built from the same DecodeOne/EncodeOne primitives) for the
// non-fast-path remainder.
func Drive(inTag, outTag Tag, policy Policy, in []byte, out []byte) ConvertResult {
	if inTag.IsUTF8() && outTag.IsUTF8() {
		return driveUTF8Memcpy(policy, in, out)
	}

	checked := policy.Checked()
	inUnits := len(in) / inTag.UnitSize()

	inUnit, outUnit := 0, 0
	for inUnit < inUnits {
		cp, inAdvance, err := DecodeOne(inTag, in, inUnit, checked)
		if err != None {
			return finishConvert(policy, err, inUnit, outUnit)
		}
		outAdvance, err := EncodeOne(outTag, cp, out, outUnit, checked)
		if err != None {
			return finishConvert(policy, err, inUnit, outUnit)
		}
		inUnit += inAdvance
		outUnit += outAdvance
	}
	return finishConvert(policy, None, inUnit, outUnit)
}

// driveUTF8Memcpy implements spec.md §3's "Utf8 and Utf8Char differ
// only in element signedness; conversions between them are a memcpy
// after validation" and §9's "thin wrapper whose only effect is the
// boundary element type."
func driveUTF8Memcpy(policy Policy, in, out []byte) ConvertResult {
	if policy == AssumeValid {
		n := copy(out, in)
		return finishConvert(policy, None, n, n)
	}
	res := Validate(Utf8, in)
	n := copy(out, in[:res.InputConsumed])
	return finishConvert(policy, res.Error, res.InputConsumed, n)
}

func finishConvert(policy Policy, err ErrorKind, inputConsumed, outputWritten int) ConvertResult {
	if policy == ZeroOrProcessed && err != None {
		return ConvertResult{Error: err, InputConsumed: inputConsumed, OutputWritten: 0}
	}
	return ConvertResult{Error: err, InputConsumed: inputConsumed, OutputWritten: outputWritten}
}
