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
	"strconv"

	"fillmore-labs.com/flowscan/opcode"
)

// NoTarget is the [Instruction.Target] of instructions that are not jumps.
const NoTarget = -1

// Instruction is one decoded operation of an analyzed sequence.
//
// The position of an instruction in its slice is its index; jump targets
// refer to these positions.
type Instruction struct {
	Op     opcode.Category // The instruction category.
	Name   string          // The symbolic name for loads, stores and deletes.
	Target int             // The index branched to for jumps, [NoTarget] otherwise.
}

// Named returns a load, store or delete of name.
func Named(op opcode.Category, name string) Instruction {
	return Instruction{Op: op, Name: name, Target: NoTarget}
}

// Jump returns a jump of category op to the instruction at index target.
func Jump(op opcode.Category, target int) Instruction {
	return Instruction{Op: op, Target: target}
}

// Plain returns an instruction of category op without name or target.
func Plain(op opcode.Category) Instruction {
	return Instruction{Op: op, Target: NoTarget}
}

// String returns a short textual form, e.g. "local-load x" or "conditional-jump @4".
func (in Instruction) String() string {
	switch {
	case in.Op.HasName():
		return in.Op.String() + " " + in.Name

	case in.Op.HasTarget():
		return in.Op.String() + " @" + strconv.Itoa(in.Target)

	default:
		return in.Op.String()
	}
}
