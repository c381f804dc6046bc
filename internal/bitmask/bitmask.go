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

package bitmask

import (
	"iter"
	"math/bits"
)

// Set is a set of small enumeration values, stored as a bit mask.
// The zero value is the empty set.
type Set[E ~uint8] struct {
	value uint64
}

// Of creates a new typed [Set] containing the specified elements.
func Of[E ~uint8](elems ...E) Set[E] {
	var s Set[E]
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Add inserts e into the set. Values of 64 and above are ignored.
func (s *Set[E]) Add(e E) {
	if e >= 64 {
		return
	}

	s.value |= 1 << e
}

// Remove deletes e from the set.
func (s *Set[E]) Remove(e E) {
	if e >= 64 {
		return
	}

	s.value &^= 1 << e
}

// Has reports whether e is an element of the set.
func (s Set[E]) Has(e E) bool {
	return e < 64 && s.value&(1<<e) != 0
}

// Union returns the set of elements in s or t.
func (s Set[E]) Union(t Set[E]) Set[E] {
	return Set[E]{value: s.value | t.value}
}

// Len returns the number of elements in the set.
func (s Set[E]) Len() int {
	return bits.OnesCount64(s.value)
}

// All yields the elements of the set in ascending order.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := s.value; v != 0; v &= v - 1 {
			if !yield(E(bits.TrailingZeros64(v))) {
				return
			}
		}
	}
}
