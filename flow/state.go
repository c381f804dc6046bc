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

package flow

import (
	"golang.org/x/tools/container/intsets"

	"fillmore-labs.com/flowscan/internal/nameset"
)

// state is the analysis state of a single path.
//
// A state is owned by exactly one path. It is cloned whenever two paths
// diverge and never shared between them.
type state struct {
	reads   nameset.Set    // Names read before being written on this path
	writes  nameset.Set    // Names written on this path
	visited intsets.Sparse // Instruction indices processed on this path
}

// clone returns a deep copy of s.
func (s *state) clone() *state {
	c := &state{
		reads:  s.reads.Clone(),
		writes: s.writes.Clone(),
	}
	c.visited.Copy(&s.visited)

	return c
}

// read records a load of name, unless the name was already written on this path.
func (s *state) read(name string) {
	if s.writes.Has(name) {
		return
	}

	s.reads.Add(name)
}

// write records a store or delete of name.
func (s *state) write(name string) {
	s.writes.Add(name)
}

// visit marks index i as processed and reports whether it was seen before.
func (s *state) visit(i int) (seen bool) {
	return !s.visited.Insert(i)
}

// merge combines the results of two branches.
//
// Reads and writes are united. The visited set of the result is empty:
// a merged state always ends its walk, so no path continues from it.
func merge(taken, notTaken *state) *state {
	return &state{
		reads:  taken.reads.Union(&notTaken.reads),
		writes: taken.writes.Union(&notTaken.writes),
	}
}
