// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package fixture loads YAML-described flow analysis cases for tests.
//
// A fixture file holds a list of cases:
//
//	cases:
//	  - name: shadowed read
//	    code: |
//	      STORE_FAST x
//	      LOAD_FAST x
//	    reads: []
//	    writes: [x]
//
// The start and stop fields take a label of the listing or an index; start
// defaults to the first instruction. A non-empty error field names the
// expected failure instead of a result.
package fixture

import (
	"errors"
	"os"
	"strconv"
	"testing"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/flowscan/flow"
	"fillmore-labs.com/flowscan/listing"
)

// Case is a single analysis case.
type Case struct {
	Name   string   `yaml:"name"`
	Code   string   `yaml:"code"`
	Start  string   `yaml:"start,omitempty"`
	Stop   string   `yaml:"stop,omitempty"`
	Reads  []string `yaml:"reads"`
	Writes []string `yaml:"writes"`
	Error  string   `yaml:"error,omitempty"`
}

type file struct {
	Cases []Case `yaml:"cases"`
}

// Load decodes the fixture file at path. Unknown fields are rejected.
func Load(tb testing.TB, path string) []Case {
	tb.Helper()

	f, err := os.Open(path)
	if err != nil {
		tb.Fatalf("Can't open fixture: %v", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var cases file
	if err := dec.Decode(&cases); err != nil {
		tb.Fatalf("Can't decode fixture %s: %v", path, err)
	}

	return cases.Cases
}

// Errors maps the names used in the error field to the errors they denote.
var Errors = map[string]error{
	"invalid-target": flow.ErrInvalidTarget,
	"invalid-range":  flow.ErrInvalidRange,
}

// Program parses the listing of c.
func (c Case) Program(tb testing.TB) *listing.Program {
	tb.Helper()

	p, err := listing.Parse(c.Code)
	if err != nil {
		tb.Fatalf("Can't parse listing of %q: %v", c.Name, err)
	}

	return p
}

// Query resolves the start index and the options of c against p.
func (c Case) Query(tb testing.TB, p *listing.Program) (start int, opts flow.Options) {
	tb.Helper()

	start = resolve(tb, p, c.Start, 0)

	if c.Stop != "" {
		opts = append(opts, flow.WithStop(resolve(tb, p, c.Stop, -1)))
	}

	return start, opts
}

// WantError returns the expected error of c, or nil.
func (c Case) WantError(tb testing.TB) error {
	tb.Helper()

	if c.Error == "" {
		return nil
	}

	err, ok := Errors[c.Error]
	if !ok {
		tb.Fatalf("Unknown error %q in %q", c.Error, c.Name)

		return errors.ErrUnsupported
	}

	return err
}

func resolve(tb testing.TB, p *listing.Program, ref string, def int) int {
	tb.Helper()

	if ref == "" {
		return def
	}

	if i, err := strconv.Atoi(ref); err == nil {
		return i
	}

	i, err := p.Index(ref)
	if err != nil {
		tb.Fatalf("Can't resolve %q: %v", ref, err)
	}

	return i
}
