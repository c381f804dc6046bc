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

package graph

import (
	"context"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/flowscan/internal/reachability/block"
	"fillmore-labs.com/flowscan/opcode"
)

// Code is the control-flow view of an instruction sequence.
type Code interface {
	// Len returns the number of instructions.
	Len() int

	// At returns the category and jump target of the instruction at index i.
	At(i int) (op opcode.Category, target int)
}

// BlockInterval represents a range of instructions with successor block indices for control-flow analysis.
type BlockInterval struct {
	Start, End int   // The instruction index range [Start, End) of the block.
	Successors []int // Indices of successor blocks in the intervals slice.
}

// Compare returns whether the index i is within the interval, before or after.
func (bi BlockInterval) Compare(i int) int {
	switch {
	case bi.End <= i:
		return -1

	case bi.Start > i:
		return 1

	default:
		return 0
	}
}

// BuildGraph constructs control-flow graph intervals for the given instruction sequence.
// Jumps to targets outside the sequence contribute no edge.
func BuildGraph(ctx context.Context, code Code) []BlockInterval {
	if code.Len() == 0 {
		return nil
	}

	defer trace.StartRegion(ctx, "Graph").End()

	blocks := traverse(code)

	return buildIntervals(blocks)
}

// buildIntervals creates a list of block intervals from the CFG blocks.
func buildIntervals(blocks []*block.Block) []BlockInterval {
	// Build index map: maps each block to its position in the sorted slice
	idxMap := make(map[*block.Block]int, len(blocks))
	for i, blk := range blocks {
		idxMap[blk] = i
	}

	intervals := make([]BlockInterval, len(blocks))
	for i, blk := range blocks {
		successors := make([]int, 0, 2)

		for _, succ := range [...]*block.Block{blk.Successor1, blk.Successor2} {
			if succ == nil {
				continue
			}

			idx := idxMap[succ]
			if slices.Contains(successors, idx) { // jump to the fall-through block
				continue
			}

			successors = append(successors, idx)
		}

		intervals[i] = BlockInterval{
			Start:      blk.Start,
			End:        blk.End,
			Successors: successors,
		}
	}

	return intervals
}
