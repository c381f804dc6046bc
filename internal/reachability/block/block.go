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

package block

// Block represents a [basic Block] of an instruction sequence in the [control-flow graph].
// It is a run of instructions with a single entry and exit point.
// It tracks its index range and its successor blocks.
//
// [basic Block]: https://en.wikipedia.org/wiki/Basic_block
// [control-flow graph]: https://en.wikipedia.org/wiki/Control-flow_graph
type Block struct {
	Start, End int // The instruction index range [Start, End)

	// The successors.
	//
	// For jumps, Successor1 is the jump target.
	// For conditional jumps, Successor2 is the fall-through block.
	// For blocks that don't end in a jump, Successor1 is the fall-through block.
	Successor1, Successor2 *Block
}

func (b *Block) isEmpty() bool {
	return b.End <= b.Start
}

func (b *Block) cmp(a *Block) int {
	return b.Start - a.Start
}

// Add extends the block to include the instruction at index i.
func (b *Block) Add(i int) {
	if b.isEmpty() {
		b.Start = i
	}

	b.End = i + 1
}

// Link sets the successors of a block.
//
// taken is the jump target, or nil when the block does not end in a jump.
// next is the fall-through block, or nil when control does not fall through.
//
//	jump ----> taken
//	  |
//	  v
//	next
func (b *Block) Link(taken, next *Block) {
	if taken == nil {
		b.Successor1, b.Successor2 = next, nil
		return
	}

	b.Successor1, b.Successor2 = taken, next
}
