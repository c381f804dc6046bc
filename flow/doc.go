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

// Package flow computes which named storage slots are read before being
// written, and which are written at all, along every control path of an
// instruction sequence.
//
// # Overview
//
// A tracing compiler that falls back to an interpreter at some resumption
// point must know which variables the remaining code depends on. [Analyze]
// walks forward from that point, forking at every jump and merging the
// results of both branches:
//
//	code := []flow.Instruction{
//	    flow.Jump(opcode.ConditionalJump, 2), // 0
//	    flow.Named(opcode.LocalStore, "x"),   // 1
//	    flow.Named(opcode.LocalLoad, "y"),    // 2
//	}
//
//	res, err := flow.Analyze(ctx, code, 0)
//	// res.Reads  == [y]
//	// res.Writes == [x]
//
// # Semantics
//
//   - A load counts as a read only if no store or delete of the same name
//     precedes it on the same path.
//   - Stores and deletes always count as writes. A delete is never a read.
//   - An unconditional jump does not fall through; a conditional jump
//     explores both the taken and the fall-through branch.
//   - A path ends at a return, at the stop index, at the end of the
//     sequence, or when it reaches an instruction it has already visited.
//
// # Concurrency
//
// Analyses share nothing but the instruction slice, which is never modified.
// Independent queries may run in parallel; [AnalyzeAll] does so with a
// bounded number of goroutines.
package flow
