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

package flow_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/flowscan/flow"
)

func TestAnalyzeAll(t *testing.T) {
	t.Parallel()

	code := []Instruction{
		load("it"),
		branch(6),
		store("i"),
		load("acc"),
		store("acc"),
		jump(1),
		load("acc"),
		ret(),
	}

	starts := make([]int, len(code)+1)
	for i := range starts {
		starts[i] = i
	}

	for _, limit := range [...]int{0, 1, 3} {
		got, err := AnalyzeAll(t.Context(), code, starts, WithConcurrency(limit))
		if err != nil {
			t.Fatalf("AnalyzeAll failed: %v", err)
		}

		if len(got) != len(starts) {
			t.Fatalf("Got %d results, expected %d", len(got), len(starts))
		}

		for i, start := range starts {
			want, err := Analyze(t.Context(), code, start)
			if err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}

			if diff := cmp.Diff(want, got[i]); diff != "" {
				t.Errorf("Result %d with limit %d differs from Analyze (-want +got):\n%s", i, limit, diff)
			}
		}
	}
}

func TestAnalyzeAllError(t *testing.T) {
	t.Parallel()

	code := []Instruction{load("x"), jump(9)}

	got, err := AnalyzeAll(t.Context(), code, []int{0, 1}, WithConcurrency(1))
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("Expected error %v, got %v", ErrInvalidTarget, err)
	}

	if got != nil {
		t.Errorf("Expected no results, got %+v", got)
	}
}

func TestAnalyzeAllStop(t *testing.T) {
	t.Parallel()

	code := []Instruction{load("a"), load("b"), load("c")}

	got, err := AnalyzeAll(t.Context(), code, []int{0, 1, 2}, WithStop(2))
	if err != nil {
		t.Fatalf("AnalyzeAll failed: %v", err)
	}

	want := []Result{
		{Reads: []string{"a", "b"}, Writes: []string{}},
		{Reads: []string{"b"}, Writes: []string{}},
		{Reads: []string{}, Writes: []string{}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AnalyzeAll() mismatch (-want +got):\n%s", diff)
	}
}
