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

package nameset_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/flowscan/internal/nameset"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	var s Set

	if !s.Add("x") {
		t.Error("Expected first insertion of x to succeed")
	}

	if s.Add("x") {
		t.Error("Expected second insertion of x to be rejected")
	}

	s.Add("y")

	if got, want := s.Names(), []string{"x", "y"}; !slices.Equal(got, want) {
		t.Errorf("Got %q, expected %q", got, want)
	}

	if !s.Has("y") || s.Has("z") {
		t.Errorf("Wrong membership in %q", s.Names())
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	s := Of("a", "b")
	c := s.Clone()
	c.Add("c")

	if s.Has("c") {
		t.Error("Clone shares storage with original")
	}

	if got, want := c.Len(), 3; got != want {
		t.Errorf("Got %d names, expected %d", got, want)
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		a, b []string
		want []string
	}{
		{"empty", nil, nil, []string{}},
		{"left", []string{"x"}, nil, []string{"x"}},
		{"right", nil, []string{"y"}, []string{"y"}},
		{"overlap", []string{"x", "y"}, []string{"z", "x"}, []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, b := Of(tt.a...), Of(tt.b...)
			u := a.Union(&b)

			if got := u.Names(); !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}

			if got, want := a.Len(), len(tt.a); got != want {
				t.Errorf("Union modified its receiver: %d names, expected %d", got, want)
			}
		})
	}
}

func TestOfDuplicates(t *testing.T) {
	t.Parallel()

	s := Of("x", "y", "x")

	if got, want := slices.Collect(s.All()), []string{"x", "y"}; !slices.Equal(got, want) {
		t.Errorf("Got %q, expected %q", got, want)
	}
}
