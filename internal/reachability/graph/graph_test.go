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

package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/flowscan/internal/reachability/graph"
	"fillmore-labs.com/flowscan/opcode"
)

type instr struct {
	op     opcode.Category
	target int
}

type code []instr

func (c code) Len() int { return len(c) }

func (c code) At(i int) (opcode.Category, int) { return c[i].op, c[i].target }

func TestBuildGraph(t *testing.T) {
	t.Parallel()

	var (
		other  = instr{opcode.Other, -1}
		ret    = instr{opcode.Return, -1}
		jump   = func(to int) instr { return instr{opcode.UnconditionalJump, to} }
		branch = func(to int) instr { return instr{opcode.ConditionalJump, to} }
	)

	tests := [...]struct {
		name string
		code code
		want []BlockInterval
	}{
		{
			name: "empty",
		},
		{
			name: "straight_line",
			code: code{other, other, ret},
			want: []BlockInterval{{Start: 0, End: 3, Successors: []int{}}},
		},
		{
			name: "if_else",
			code: code{branch(3), other, jump(4), other, ret},
			want: []BlockInterval{
				{Start: 0, End: 1, Successors: []int{2, 1}},
				{Start: 1, End: 3, Successors: []int{3}},
				{Start: 3, End: 4, Successors: []int{3}},
				{Start: 4, End: 5, Successors: []int{}},
			},
		},
		{
			name: "jump_to_next",
			code: code{branch(1), other},
			want: []BlockInterval{
				{Start: 0, End: 1, Successors: []int{1}},
				{Start: 1, End: 2, Successors: []int{}},
			},
		},
		{
			name: "self_loop",
			code: code{other, jump(0)},
			want: []BlockInterval{{Start: 0, End: 2, Successors: []int{0}}},
		},
		{
			name: "invalid_target",
			code: code{jump(7), other},
			want: []BlockInterval{
				{Start: 0, End: 1, Successors: []int{}},
				{Start: 1, End: 2, Successors: []int{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildGraph(t.Context(), tt.code)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildGraph() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	bi := BlockInterval{Start: 2, End: 4}

	for i, want := range [...]int{1, 1, 0, 0, -1} {
		if got := bi.Compare(i); got != want {
			t.Errorf("Got %d for index %d, expected %d", got, i, want)
		}
	}
}
