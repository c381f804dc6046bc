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
	"context"
	"fmt"

	"fillmore-labs.com/flowscan/internal/reachability"
	"fillmore-labs.com/flowscan/opcode"
)

// Graph answers reachability queries between instruction indices.
//
// A Graph reuses internal buffers between queries and is not safe for concurrent use.
type Graph struct {
	g *reachability.Graph
}

// NewGraph builds the control-flow graph of code.
// It fails with [ErrInvalidTarget] if any jump targets an index outside code.
func NewGraph(ctx context.Context, code []Instruction) (*Graph, error) {
	for i, in := range code {
		if in.Op.IsJump() && !validTarget(in.Target, len(code)) {
			return nil, fmt.Errorf("%w: instruction %d (%s) in sequence of length %d", ErrInvalidTarget, i, in, len(code))
		}
	}

	return &Graph{g: reachability.NewGraph(ctx, sequence(code))}, nil
}

// Reachable reports whether the instruction at index to can execute after
// the instruction at index from. ok is false when either index lies outside
// the sequence.
func (g *Graph) Reachable(from, to int) (reachable, ok bool) {
	return g.g.Reachable(from, to)
}

// Blocks returns the number of basic blocks of the graph.
func (g *Graph) Blocks() int {
	return g.g.Blocks()
}

func validTarget(target, n int) bool {
	return target >= 0 && target < n
}

// sequence adapts an instruction slice to the control-flow view of the graph builder.
type sequence []Instruction

func (s sequence) Len() int { return len(s) }

func (s sequence) At(i int) (op opcode.Category, target int) {
	return s[i].Op, s[i].Target
}
