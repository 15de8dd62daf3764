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

// Package scalar is the portable backend: a per-code-unit state
// machine (internal/engine) with an 8-unit block fast path for
// mostly-ASCII/BMP input, per spec.md §4.2. It is the reference
// backend: internal/icelake's vector backend must agree with it on
// every input.
package scalar

import (
	"github.com/SnellerInc/chars/internal/engine"
)

const blockUnits = 8

// Validate reports the first malformed unit of data under tag,
// accelerating runs of pure (all-ASCII, or all-BMP-non-surrogate)
// blocks with mask math instead of a per-unit decode.
func Validate(tag engine.Tag, data []byte) engine.ValidateResult {
	units := len(data) / tag.UnitSize()
	unit := 0

	byteOriented := tag.UnitSize() == 1
	utf16 := tag.IsUTF16()

	for unit+blockUnits <= units {
		blockStart := unit
		var mask uint8
		if byteOriented {
			mask = engine.ASCIIMask8(data, unit)
		} else if utf16 {
			mask = engine.BMPMask8(data, unit, tag == engine.Utf16BE)
		} else {
			mask = 0xFF // UTF-32: no fast path beyond the per-unit loop
		}

		if mask == 0 {
			unit += blockUnits
			continue
		}

		// Skip the pure prefix and pure suffix of the dirty block; only
		// the lanes in between need the per-unit reference state
		// machine. Mirrors scalar_1.cpp's sign_type::start_count /
		// end_count usage.
		prefix := engine.TrailingZeros8(mask)
		suffix := engine.LeadingZeros8(mask)
		unit = blockStart + prefix
		limit := blockStart + blockUnits - suffix

		for unit < limit {
			_, advance, err := engine.DecodeOne(tag, data, unit, true)
			if err != engine.None {
				return engine.ValidateResult{Error: err, InputConsumed: unit}
			}
			unit += advance
		}
		if end := blockStart + blockUnits; unit < end {
			unit = end
		}
	}

	for unit < units {
		_, advance, err := engine.DecodeOne(tag, data, unit, true)
		if err != engine.None {
			return engine.ValidateResult{Error: err, InputConsumed: unit}
		}
		unit += advance
	}

	return engine.ValidateResult{Error: engine.None, InputConsumed: unit}
}

// Length returns the exact output unit count for well-formed data.
func Length(inTag, outTag engine.Tag, data []byte) int {
	return engine.Length(inTag, outTag, data)
}

// Convert transcodes in (interpreted under inTag) to out (interpreted
// under outTag) following policy, accelerating pure blocks with a
// branchless widen/narrow copy and falling back to a per-unit
// engine.DecodeOne/EncodeOne walk for dirty blocks. Only a
// Utf8/Utf8Char pair is handed to internal/engine.Drive.
func Convert(inTag, outTag engine.Tag, policy engine.Policy, in, out []byte) engine.ConvertResult {
	if inTag.IsUTF8() && outTag.IsUTF8() {
		return engine.Drive(inTag, outTag, policy, in, out)
	}

	checked := policy.Checked()
	inUnits := len(in) / inTag.UnitSize()

	byteOriented := inTag.UnitSize() == 1
	utf16 := inTag.IsUTF16()

	inUnit, outUnit := 0, 0
	for inUnit < inUnits {
		remaining := inUnits - inUnit
		if remaining >= blockUnits {
			var mask uint8
			if byteOriented {
				mask = engine.ASCIIMask8(in, inUnit)
			} else if utf16 {
				mask = engine.BMPMask8(in, inUnit, inTag == engine.Utf16BE)
			} else {
				mask = 0xFF // force per-unit path for UTF-32 input
			}

			if mask == 0 {
				// Whole block is ASCII/BMP: every code point fits
				// the cheap per-unit encode path too, so widen/narrow
				// it unit by unit without re-deriving the mask.
				for i := 0; i < blockUnits; i++ {
					cp, _, _ := engine.DecodeOne(inTag, in, inUnit+i, false)
					adv, err := engine.EncodeOne(outTag, cp, out, outUnit, checked)
					if err != engine.None {
						return finish(policy, err, inUnit+i, outUnit)
					}
					outUnit += adv
				}
				inUnit += blockUnits
				continue
			}

			// Dirty block: the pure prefix/suffix lanes still widen or
			// narrow directly; only the lanes in between need the full
			// decode/encode state machine.
			blockStart := inUnit
			prefix := engine.TrailingZeros8(mask)
			suffix := engine.LeadingZeros8(mask)
			limit := blockStart + blockUnits - suffix

			for i := 0; i < prefix; i++ {
				cp, _, _ := engine.DecodeOne(inTag, in, blockStart+i, false)
				adv, err := engine.EncodeOne(outTag, cp, out, outUnit, checked)
				if err != engine.None {
					return finish(policy, err, blockStart+i, outUnit)
				}
				outUnit += adv
			}
			inUnit = blockStart + prefix

			for inUnit < limit {
				cp, inAdvance, err := engine.DecodeOne(inTag, in, inUnit, checked)
				if err != engine.None {
					return finish(policy, err, inUnit, outUnit)
				}
				outAdvance, err := engine.EncodeOne(outTag, cp, out, outUnit, checked)
				if err != engine.None {
					return finish(policy, err, inUnit, outUnit)
				}
				inUnit += inAdvance
				outUnit += outAdvance
			}

			if end := blockStart + blockUnits; inUnit < end {
				for i := inUnit; i < end; i++ {
					cp, _, _ := engine.DecodeOne(inTag, in, i, false)
					adv, err := engine.EncodeOne(outTag, cp, out, outUnit, checked)
					if err != engine.None {
						return finish(policy, err, i, outUnit)
					}
					outUnit += adv
				}
				inUnit = end
			}
			continue
		}

		cp, inAdvance, err := engine.DecodeOne(inTag, in, inUnit, checked)
		if err != engine.None {
			return finish(policy, err, inUnit, outUnit)
		}
		outAdvance, err := engine.EncodeOne(outTag, cp, out, outUnit, checked)
		if err != engine.None {
			return finish(policy, err, inUnit, outUnit)
		}
		inUnit += inAdvance
		outUnit += outAdvance
	}

	return finish(policy, engine.None, inUnit, outUnit)
}

func finish(policy engine.Policy, err engine.ErrorKind, inputConsumed, outputWritten int) engine.ConvertResult {
	if policy == engine.ZeroOrProcessed && err != engine.None {
		return engine.ConvertResult{Error: err, InputConsumed: inputConsumed, OutputWritten: 0}
	}
	return engine.ConvertResult{Error: err, InputConsumed: inputConsumed, OutputWritten: outputWritten}
}
