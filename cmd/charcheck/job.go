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
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// manifest describes a batch of conversions to run in sequence. It is
// parsed with sigs.k8s.io/yaml, which round-trips through
// encoding/json so the same struct tags double as the JSON schema.
type manifest struct {
	Jobs []jobSpec `json:"jobs"`
}

type jobSpec struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Policy   string `json:"policy,omitempty"`
	In       string `json:"in"`
	Out      string `json:"out"`
	Validate bool   `json:"validate,omitempty"`
}

func runJob(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for i, j := range m.Jobs {
		if err := runOne(j.From, j.To, j.Policy, j.In, j.Out, j.Validate); err != nil {
			return fmt.Errorf("job %d (%s -> %s): %w", i, j.From, j.To, err)
		}
	}
	return nil
}
