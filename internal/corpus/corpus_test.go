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

package corpus

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	text := []byte("quite long string with the Polish word 'żółw' - a turtle, repeated. " +
		"quite long string with the Polish word 'żółw' - a turtle, repeated.")

	compressed, err := Compress(text, nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(compressed) == 0 {
		t.Fatal("Compress returned empty output")
	}

	got, err := Decompress(compressed, nil)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, text) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestLoaderDecompresses(t *testing.T) {
	text := []byte("loader smoke test")
	compressed, err := Compress(text, nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	loader := NewLoader(func(name string) ([]byte, error) {
		if name != "sample.zst" {
			return nil, errors.New("unknown sample")
		}
		return compressed, nil
	})

	got, err := loader.Load("sample.zst")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, text) {
		t.Fatalf("got %q, want %q", got, text)
	}
}

func TestLoaderWrapsOpenError(t *testing.T) {
	loader := NewLoader(func(name string) ([]byte, error) {
		return nil, errors.New("missing")
	})
	_, err := loader.Load("missing.zst")
	if err == nil {
		t.Fatal("expected error")
	}
}
