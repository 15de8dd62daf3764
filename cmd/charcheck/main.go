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

// Command charcheck validates and transcodes text between LATIN-1,
// UTF-8, UTF-16LE, UTF-16BE and UTF-32 from the command line, either
// as a single -from/-to conversion or as a batch of conversions
// described by a -job manifest.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/SnellerInc/chars"
)

var (
	dashFrom    string
	dashTo      string
	dashPolicy  string
	dashIn      string
	dashOut     string
	dashJob     string
	dashValOnly bool
)

func init() {
	flag.StringVar(&dashFrom, "from", "utf8", "source encoding: latin1, utf8, utf8char, utf16le, utf16be, utf32")
	flag.StringVar(&dashTo, "to", "utf8", "target encoding (same set as -from)")
	flag.StringVar(&dashPolicy, "policy", "default", "error policy: default, assumevalid, zeroorprocessed")
	flag.StringVar(&dashIn, "in", "-", "input file, or - for stdin")
	flag.StringVar(&dashOut, "out", "-", "output file, or - for stdout")
	flag.StringVar(&dashJob, "job", "", "YAML manifest describing a batch of conversions; overrides -from/-to/-in/-out")
	flag.BoolVar(&dashValOnly, "validate", false, "only validate -in under -from; do not convert")
}

func main() {
	flag.Parse()

	var err error
	if dashJob != "" {
		err = runJob(dashJob)
	} else {
		err = runOne(dashFrom, dashTo, dashPolicy, dashIn, dashOut, dashValOnly)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runOne(from, to, policyName, in, out string, validateOnly bool) error {
	fromTag, err := parseTag(from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	toTag, err := parseTag(to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}
	policy, err := parsePolicy(policyName)
	if err != nil {
		return fmt.Errorf("-policy: %w", err)
	}

	data, err := readAll(in)
	if err != nil {
		return err
	}

	if validateOnly {
		res := chars.Validate(fromTag, data)
		if !res.Ok() {
			return fmt.Errorf("invalid at unit %d: %s", res.InputConsumed, res.Error)
		}
		fmt.Fprintln(os.Stderr, "ok")
		return nil
	}

	n := chars.Length(fromTag, toTag, data)
	outBuf := make([]byte, n*toTag.UnitSize())
	result := chars.Convert(fromTag, toTag, policy, data, outBuf)
	if !result.Ok() {
		return fmt.Errorf("conversion failed at input unit %d: %s", result.InputConsumed, result.Error)
	}

	return writeAll(out, outBuf[:result.OutputWritten*toTag.UnitSize()])
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeAll(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func parseTag(name string) (chars.Tag, error) {
	switch name {
	case "latin1":
		return chars.Latin1, nil
	case "utf8":
		return chars.Utf8, nil
	case "utf8char":
		return chars.Utf8Char, nil
	case "utf16le":
		return chars.Utf16LE, nil
	case "utf16be":
		return chars.Utf16BE, nil
	case "utf32":
		return chars.Utf32, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", name)
	}
}

func parsePolicy(name string) (chars.Policy, error) {
	switch name {
	case "default", "":
		return chars.Default, nil
	case "assumevalid":
		return chars.AssumeValid, nil
	case "zeroorprocessed":
		return chars.ZeroOrProcessed, nil
	case "returnresult":
		return chars.ReturnResult, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", name)
	}
}
