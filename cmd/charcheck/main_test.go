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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SnellerInc/chars"
)

func TestParseTag(t *testing.T) {
	cases := map[string]chars.Tag{
		"latin1":   chars.Latin1,
		"utf8":     chars.Utf8,
		"utf8char": chars.Utf8Char,
		"utf16le":  chars.Utf16LE,
		"utf16be":  chars.Utf16BE,
		"utf32":    chars.Utf32,
	}
	for name, want := range cases {
		got, err := parseTag(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: got %s, want %s", name, got, want)
		}
	}
	if _, err := parseTag("bogus"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]chars.Policy{
		"":                chars.Default,
		"default":         chars.Default,
		"assumevalid":     chars.AssumeValid,
		"zeroorprocessed": chars.ZeroOrProcessed,
		"returnresult":    chars.ReturnResult,
	}
	for name, want := range cases {
		got, err := parsePolicy(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: got %s, want %s", name, got, want)
		}
	}
	if _, err := parsePolicy("bogus"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestRunOneConvertsFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.latin1")
	out := filepath.Join(dir, "out.utf8")

	if err := os.WriteFile(in, []byte("caf\xE9"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runOne("latin1", "utf8", "default", in, out, false); err != nil {
		t.Fatalf("runOne: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "caf\xC3\xA9" {
		t.Fatalf("got %q", got)
	}
}

func TestRunOneValidateOnlyReportsError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.utf8")
	if err := os.WriteFile(in, []byte{0xC0, 0x80}, 0644); err != nil {
		t.Fatal(err)
	}

	err := runOne("utf8", "utf8", "default", in, "-", true)
	if err == nil {
		t.Fatal("expected validation error")
	}
}
