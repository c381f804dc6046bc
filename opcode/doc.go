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

// Package opcode classifies instructions into the closed set of categories
// the flow analysis distinguishes.
//
// # Categories
//
// Every instruction belongs to exactly one [Category]. Loads, stores and
// deletes carry a symbolic name and target one of four storage scopes
// ([Local], [Free], [Name], [Global]). Jumps carry a target index. Returns end
// a path. Everything else is [Other].
//
// # Mnemonics
//
// [Classify] maps CPython bytecode mnemonics to categories, so a listing
// produced by the dis module can be fed to the analysis directly:
//
//	opcode.Classify("LOAD_FAST")          // LocalLoad
//	opcode.Classify("POP_JUMP_IF_FALSE")  // ConditionalJump
//	opcode.Classify("BINARY_ADD")         // Other
package opcode
