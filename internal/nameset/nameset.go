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

// Package nameset provides an insertion-ordered set of names.
package nameset

import (
	"iter"
	"slices"
)

// Set is an ordered, duplicate-free collection of names.
//
// Names keep their first insertion position. The zero value is an empty set
// ready to use. A Set must be copied with [Set.Clone], not by assignment.
type Set struct {
	names []string
	index map[string]struct{}
}

// Of returns a new set containing names in order, dropping duplicates.
func Of(names ...string) Set {
	var s Set
	for _, name := range names {
		s.Add(name)
	}

	return s
}

// Add inserts name and reports whether it was not already present.
func (s *Set) Add(name string) bool {
	if _, ok := s.index[name]; ok {
		return false
	}

	if s.index == nil {
		s.index = make(map[string]struct{})
	}

	s.index[name] = struct{}{}
	s.names = append(s.names, name)

	return true
}

// Has reports whether name is in the set.
func (s *Set) Has(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Len returns the number of names.
func (s *Set) Len() int { return len(s.names) }

// Clone returns an independent copy of s.
func (s *Set) Clone() Set {
	if len(s.names) == 0 {
		return Set{}
	}

	index := make(map[string]struct{}, len(s.index))
	for name := range s.index {
		index[name] = struct{}{}
	}

	return Set{names: slices.Clone(s.names), index: index}
}

// Union returns a new set with the names of s followed by the names of t not in s.
func (s *Set) Union(t *Set) Set {
	u := s.Clone()
	for _, name := range t.names {
		u.Add(name)
	}

	return u
}

// All yields the names in insertion order.
func (s *Set) All() iter.Seq[string] {
	return slices.Values(s.names)
}

// Names returns a copy of the names in insertion order.
// The result is non-nil, even for an empty set.
func (s *Set) Names() []string {
	return append(make([]string, 0, len(s.names)), s.names...)
}
