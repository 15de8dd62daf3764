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

package icelake

import (
	"github.com/SnellerInc/chars/internal/engine"
	"github.com/SnellerInc/chars/internal/simd"
)

// Validate reports the first malformed unit of data under tag,
// classifying whole 64-byte blocks at a time and falling back to
// internal/engine's per-unit state machine for any block (or tail)
// that isn't provably clean.
func Validate(tag engine.Tag, data []byte) engine.ValidateResult {
	units := len(data) / tag.UnitSize()
	byteOriented := tag.UnitSize() == 1
	utf16 := tag.IsUTF16()
	unit := 0

	for {
		unitBytes := unit * tag.UnitSize()
		if !byteOriented && !utf16 {
			break // UTF-32 has no vector fast path; per-unit loop handles it
		}
		if unitBytes+blockBytes > len(data) {
			break
		}

		block := simd.LoadVec8x64(data, unitBytes)

		blockStart := unit
		var blockUnits, prefix, suffix int
		if byteOriented {
			mask := asciiMask64(block)
			if mask == 0 {
				unit += 64
				continue
			}
			blockUnits = 64
			prefix = trailingZeros64(mask)
			suffix = leadingZeros64(mask)
		} else {
			mask := bmpMask32(block, tag == engine.Utf16BE)
			if mask == 0 {
				unit += 32
				continue
			}
			blockUnits = 32
			prefix = trailingZeros32(mask)
			suffix = leadingZeros32(mask)
		}

		// Skip the pure prefix and pure suffix of the dirty block; only
		// the lanes in between need the per-unit reference state
		// machine.
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
// Length has no vector fast path of its own; it shares
// internal/engine's formulas, which already run in a single pass over
// the input.
func Length(inTag, outTag engine.Tag, data []byte) int {
	return engine.Length(inTag, outTag, data)
}

// Convert transcodes in (interpreted under inTag) to out (interpreted
// under outTag) following policy, classifying whole blocks of the
// input with the same masks Validate uses and falling back to
// internal/engine's per-unit decode/encode for any block that isn't
// provably clean.
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
		inUnitBytes := inUnit * inTag.UnitSize()
		blockUnits := 0
		var mask uint64

		if byteOriented && inUnitBytes+blockBytes <= len(in) {
			block := simd.LoadVec8x64(in, inUnitBytes)
			mask = asciiMask64(block)
			blockUnits = 64
		} else if utf16 && inUnitBytes+blockBytes <= len(in) {
			block := simd.LoadVec8x64(in, inUnitBytes)
			mask = uint64(bmpMask32(block, inTag == engine.Utf16BE))
			blockUnits = 32
		}

		if blockUnits != 0 && mask == 0 {
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

		if blockUnits != 0 {
			// Dirty block: the pure prefix/suffix lanes still widen or
			// narrow directly; only the lanes in between need the full
			// decode/encode state machine.
			blockStart := inUnit
			var prefix, suffix int
			if byteOriented {
				prefix = trailingZeros64(mask)
				suffix = leadingZeros64(mask)
			} else {
				prefix = trailingZeros32(uint32(mask))
				suffix = leadingZeros32(uint32(mask))
			}
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
