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

// Package listing builds instruction sequences from a textual listing.
//
// A listing has one instruction per line. A line may start with a label
// followed by a colon; the label names the instruction on that line or, if
// the line has no instruction, the next one. Jump operands are labels or
// absolute indices prefixed with '@'. A '#' starts a comment.
//
//	loop:
//	    LOAD_FAST x
//	    POP_JUMP_IF_FALSE done
//	    JUMP_BACKWARD loop
//	done:
//	    RETURN_VALUE
//
// Mnemonics are classified with [opcode.Classify]. A category name in angle
// brackets selects a category directly:
//
//	<name-load> x
//	<conditional-jump> @0
package listing
