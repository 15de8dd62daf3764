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

package scalar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SnellerInc/chars/internal/engine"
)

func TestValidateASCIIRunLongerThanOneBlock(t *testing.T) {
	data := []byte(strings.Repeat("x", 37)) // not a multiple of 8, crosses several blocks
	res := Validate(engine.Utf8, data)
	if !res.Ok() || res.InputConsumed != len(data) {
		t.Fatalf("got %+v", res)
	}
}

func TestValidateDirtyByteInsideBlock(t *testing.T) {
	data := []byte("abc\xC0\x80defghij") // overlong NUL at offset 3
	res := Validate(engine.Utf8, data)
	if res.Ok() || res.Error != engine.Overlong || res.InputConsumed != 3 {
		t.Fatalf("got %+v", res)
	}
}

func TestValidateErrorAtVeryLastUnit(t *testing.T) {
	data := append([]byte(strings.Repeat("x", 16)), 0x80) // stray continuation byte at the tail
	res := Validate(engine.Utf8, data)
	if res.Ok() || res.Error != engine.TooLong || res.InputConsumed != 16 {
		t.Fatalf("got %+v", res)
	}
}

func TestValidateUTF16MixedBMPAndSurrogate(t *testing.T) {
	// 8 BMP units followed by one well-formed surrogate pair.
	data := make([]byte, 0, 20)
	for i := 0; i < 8; i++ {
		data = append(data, 'a', 0x00)
	}
	data = append(data, 0x3D, 0xD8, 0x00, 0xDE) // U+1F600
	res := Validate(engine.Utf16LE, data)
	if !res.Ok() || res.InputConsumed != 10 {
		t.Fatalf("got %+v", res)
	}
}

func TestConvertLatin1ToUTF8BlockBoundary(t *testing.T) {
	in := []byte(strings.Repeat("a", 9) + "\xE9") // ASCII block then a non-ASCII tail byte
	out := make([]byte, engine.Length(engine.Latin1, engine.Utf8, in))
	res := Convert(engine.Latin1, engine.Utf8, engine.Default, in, out)
	if !res.Ok() {
		t.Fatalf("got %+v", res)
	}
	want := append([]byte(strings.Repeat("a", 9)), 0xC3, 0xA9)
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x, want %x", out, want)
	}
}

func TestConvertReportsErrorPositionInsideBlock(t *testing.T) {
	in := []byte("abcdefgh\xC0\x80ij")
	out := make([]byte, len(in))
	res := Convert(engine.Utf8, engine.Utf8Char, engine.Default, in, out)
	if res.Ok() || res.Error != engine.Overlong || res.InputConsumed != 8 {
		t.Fatalf("got %+v", res)
	}
}

func TestLengthDelegatesToEngine(t *testing.T) {
	in := []byte{'A', 0xE9}
	if got := Length(engine.Latin1, engine.Utf8, in); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
