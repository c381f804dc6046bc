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

import "fillmore-labs.com/flowscan/internal/reachability/block"

// builder splits an instruction sequence into basic blocks.
type builder struct {
	block.Factory

	code   Code
	starts map[int]*block.Block // Leader index to the block it starts
}

func traverse(code Code) []*block.Block {
	b := builder{
		code:   code,
		starts: make(map[int]*block.Block),
	}

	b.findLeaders()
	b.fill()

	blocks := b.All()
	for _, blk := range blocks {
		b.link(blk)
	}

	return blocks
}

// findLeaders starts a block at the first instruction, at every jump target
// and after every jump or return.
func (b *builder) findLeaders() {
	b.leader(0)

	for i := range b.code.Len() {
		switch op, target := b.code.At(i); {
		case op.IsJump():
			b.leader(target)
			b.leader(i + 1)

		case op.IsReturn():
			b.leader(i + 1)
		}
	}
}

func (b *builder) leader(i int) {
	if i < 0 || i >= b.code.Len() {
		return
	}

	if _, ok := b.starts[i]; ok {
		return
	}

	b.starts[i] = b.New(i)
}

// fill assigns every instruction to the block of its closest preceding leader.
func (b *builder) fill() {
	var current *block.Block
	for i := range b.code.Len() {
		if next, ok := b.starts[i]; ok {
			current = next
		}

		current.Add(i)
	}
}

// link sets the successors of blk according to its last instruction.
func (b *builder) link(blk *block.Block) {
	next := b.starts[blk.End] // nil at the end of the sequence

	switch op, target := b.code.At(blk.End - 1); {
	case op.IsUnconditional():
		blk.Link(b.starts[target], nil)

	case op.IsConditional():
		blk.Link(b.starts[target], next)

	case op.IsReturn():
		blk.Link(nil, nil)

	default:
		blk.Link(nil, next)
	}
}
