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

package tests

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Spec is a parsed test fixture: a set of "##Key: value" tags and a
// list of "---"-delimited sections, each a list of non-blank,
// non-comment lines. Golden conversion-matrix fixtures use the tags
// for the tag pair and policy under test, and the sections for the
// input bytes and the expected output/error.
type Spec struct {
	Tags     map[string]string
	Sections [][]string
}

var tagPrefix = []byte("##")

// ReadSpec parses r the same way ParseTestcase splits a file on "---"
// lines, additionally pulling "##Key: value" lines out into Tags
// instead of leaving them as section content. A line starting with a
// single "#" is a plain comment and is dropped entirely; blank lines
// are dropped too.
func ReadSpec(r io.Reader) (Spec, error) {
	spec := Spec{Tags: map[string]string{}}
	spec.Sections = append(spec.Sections, nil)

	rd := bufio.NewReader(r)
	section := 0

	for {
		line, pre, err := rd.ReadLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Spec{}, err
		}
		if pre {
			return Spec{}, fmt.Errorf("tests: line too long to fit the read buffer: %q", line)
		}

		switch {
		case bytes.HasPrefix(line, sepdash):
			section++
			spec.Sections = append(spec.Sections, nil)

		case bytes.HasPrefix(line, tagPrefix):
			key, value, ok := splitTag(line[len(tagPrefix):])
			if !ok {
				return Spec{}, fmt.Errorf("tests: malformed tag line %q", line)
			}
			spec.Tags[key] = value

		case len(line) == 0:
			// blank

		case line[0] == '#':
			// comment

		default:
			spec.Sections[section] = append(spec.Sections[section], string(line))
		}
	}

	return spec, nil
}

func splitTag(line []byte) (key, value string, ok bool) {
	idx := bytes.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(string(line[:idx])))
	value = strings.TrimSpace(string(line[idx+1:]))
	return key, value, true
}
