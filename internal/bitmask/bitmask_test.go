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

package bitmask_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/flowscan/internal/bitmask"
)

type color uint8

const (
	red color = iota
	green
	blue
	big color = 70
)

func TestSet(t *testing.T) {
	t.Parallel()

	s := Of(red, blue)

	if !s.Has(red) || !s.Has(blue) {
		t.Errorf("Expected red and blue in %v", slices.Collect(s.All()))
	}

	if s.Has(green) {
		t.Error("Unexpected green")
	}

	s.Add(big)
	if got, want := s.Len(), 2; got != want {
		t.Errorf("Got %d elements, expected %d", got, want)
	}

	s.Remove(red)
	if s.Has(red) {
		t.Error("Expected red to be removed")
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	u := Of(red).Union(Of(blue, green))

	if got, want := slices.Collect(u.All()), []color{red, green, blue}; !slices.Equal(got, want) {
		t.Errorf("Got %v, expected %v", got, want)
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	var s Set[color]

	if s.Len() != 0 {
		t.Errorf("Expected empty set, got %d elements", s.Len())
	}

	for e := range s.All() {
		t.Errorf("Unexpected element %d", e)
	}
}
