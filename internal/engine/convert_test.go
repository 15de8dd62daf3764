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

import (
	"bytes"
	"testing"
)

func TestValidateOkInput(t *testing.T) {
	res := Validate(Utf8, []byte("hello, world"))
	if !res.Ok() || res.InputConsumed != 12 {
		t.Fatalf("got %+v", res)
	}
}

func TestValidateReportsFirstError(t *testing.T) {
	data := []byte("ab\xC0\x80cd")
	res := Validate(Utf8, data)
	if res.Ok() || res.Error != Overlong || res.InputConsumed != 2 {
		t.Fatalf("got %+v", res)
	}
}

func TestDriveLatin1ToUTF8(t *testing.T) {
	in := []byte{'A', 0xE9}
	out := make([]byte, 3)
	res := Drive(Latin1, Utf8, Default, in, out)
	if !res.Ok() || res.InputConsumed != 2 || res.OutputWritten != 3 {
		t.Fatalf("got %+v", res)
	}
	if !bytes.Equal(out, []byte{'A', 0xC3, 0xA9}) {
		t.Fatalf("got %x", out)
	}
}

func TestDriveUTF8ToUTF8CharMemcpy(t *testing.T) {
	in := []byte("hello")
	out := make([]byte, len(in))
	res := Drive(Utf8, Utf8Char, Default, in, out)
	if !res.Ok() || res.OutputWritten != len(in) || !bytes.Equal(out, in) {
		t.Fatalf("got %+v out=%q", res, out)
	}
}

func TestDriveStopsAtFirstErrorUnderDefault(t *testing.T) {
	in := []byte("ab\xC0\x80cd")
	out := make([]byte, len(in))
	res := Drive(Utf8, Utf8Char, Default, in, out)
	if res.Ok() || res.Error != Overlong || res.InputConsumed != 2 || res.OutputWritten != 2 {
		t.Fatalf("got %+v", res)
	}
}

func TestDriveZeroOrProcessedZeroesOutputOnError(t *testing.T) {
	in := []byte("ab\xC0\x80cd")
	out := make([]byte, len(in))
	res := Drive(Utf8, Utf8Char, ZeroOrProcessed, in, out)
	if res.Ok() || res.OutputWritten != 0 {
		t.Fatalf("got %+v", res)
	}
}

func TestDriveAssumeValidSkipsChecks(t *testing.T) {
	// An overlong sequence is value-range malformed, not a bounds
	// violation, so AssumeValid on the Utf8->Utf32 path should pass it
	// through rather than report Overlong.
	in := []byte{0xC0, 0x80}
	out := make([]byte, 4)
	res := Drive(Utf8, Utf32, AssumeValid, in, out)
	if !res.Ok() {
		t.Fatalf("got %+v, want Ok under AssumeValid", res)
	}
}

func TestPolicyCheckedMatrix(t *testing.T) {
	cases := []struct {
		p    Policy
		want bool
	}{
		{Default, true},
		{AssumeValid, false},
		{ZeroOrProcessed, true},
		{ReturnResult, true},
	}
	for _, c := range cases {
		if got := c.p.Checked(); got != c.want {
			t.Errorf("%s.Checked() = %v, want %v", c.p, got, c.want)
		}
	}
}
