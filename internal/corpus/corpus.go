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

// Package corpus loads zstd-compressed UTF-8 text samples through a
// caller-supplied open function. The package bundles no samples of its
// own. It wraps github.com/klauspost/compress/zstd the way
// compr.Compression/Decompression wraps it for Sneller's columnar
// blocks: Decompress and Loader on the read side, and Compress for
// producing compressed samples.
package corpus

import (
	"fmt"
	"runtime"

	"github.com/klauspost/compress/zstd"
)

var decoder *zstd.Decoder

func init() {
	d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		panic(err)
	}
	decoder = d
}

// Decompress expands a zstd frame produced by Compress (or any
// conforming encoder) into dst, growing it as needed.
func Decompress(src, dst []byte) ([]byte, error) {
	return decoder.DecodeAll(src, dst)
}

// Compress appends the zstd-compressed form of src to dst. Corpus
// fixtures are compressed once when authored and committed compressed,
// so unlike Decompress this isn't on any hot path; a fresh encoder per
// call keeps the package free of mutable shared state.
func Compress(src, dst []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(src, dst), nil
}

// Sample is one named, decompressed text fixture.
type Sample struct {
	Name string
	Tag  string // language/script tag, e.g. "ja", "ar", "emoji"
	Text []byte // well-formed UTF-8
}

// Loader reads zstd-compressed corpus files through the open function
// given to NewLoader.
type Loader struct {
	open func(name string) ([]byte, error)
}

// NewLoader builds a Loader around a function that returns the raw
// (compressed) bytes of a named fixture, so callers can back it with
// embed.FS, os.ReadFile, or a test double without this package
// depending on either.
func NewLoader(open func(name string) ([]byte, error)) *Loader {
	return &Loader{open: open}
}

// Load reads the compressed fixture named name and returns its
// decompressed text.
func (l *Loader) Load(name string) ([]byte, error) {
	raw, err := l.open(name)
	if err != nil {
		return nil, fmt.Errorf("corpus: %s: %w", name, err)
	}
	return Decompress(raw, nil)
}
