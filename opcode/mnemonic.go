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

package opcode

import "strings"

// mnemonics maps CPython bytecode mnemonics (3.8 through 3.13) to categories.
// Mnemonics not listed here are [Other].
var mnemonics = map[string]Category{
	"LOAD_FAST":           LocalLoad,
	"LOAD_FAST_CHECK":     LocalLoad,
	"LOAD_FAST_AND_CLEAR": LocalLoad,
	"STORE_FAST":          LocalStore,
	"DELETE_FAST":         LocalDelete,

	"LOAD_DEREF":                FreeLoad,
	"LOAD_CLOSURE":              FreeLoad,
	"LOAD_CLASSDEREF":           FreeLoad,
	"LOAD_FROM_DICT_OR_DEREF":   FreeLoad,
	"STORE_DEREF":               FreeStore,
	"DELETE_DEREF":              FreeDelete,
	"LOAD_NAME":                 NameLoad,
	"STORE_NAME":                NameStore,
	"DELETE_NAME":               NameDelete,
	"LOAD_GLOBAL":               GlobalLoad,
	"LOAD_FROM_DICT_OR_GLOBALS": GlobalLoad,
	"STORE_GLOBAL":              GlobalStore,
	"DELETE_GLOBAL":             GlobalDelete,

	"JUMP":                       UnconditionalJump,
	"JUMP_NO_INTERRUPT":          UnconditionalJump,
	"JUMP_FORWARD":               UnconditionalJump,
	"JUMP_ABSOLUTE":              UnconditionalJump,
	"JUMP_BACKWARD":              UnconditionalJump,
	"JUMP_BACKWARD_NO_INTERRUPT": UnconditionalJump,

	"POP_JUMP_IF_FALSE":             ConditionalJump,
	"POP_JUMP_IF_TRUE":              ConditionalJump,
	"POP_JUMP_IF_NONE":              ConditionalJump,
	"POP_JUMP_IF_NOT_NONE":          ConditionalJump,
	"POP_JUMP_FORWARD_IF_FALSE":     ConditionalJump,
	"POP_JUMP_FORWARD_IF_TRUE":      ConditionalJump,
	"POP_JUMP_FORWARD_IF_NONE":      ConditionalJump,
	"POP_JUMP_FORWARD_IF_NOT_NONE":  ConditionalJump,
	"POP_JUMP_BACKWARD_IF_FALSE":    ConditionalJump,
	"POP_JUMP_BACKWARD_IF_TRUE":     ConditionalJump,
	"POP_JUMP_BACKWARD_IF_NONE":     ConditionalJump,
	"POP_JUMP_BACKWARD_IF_NOT_NONE": ConditionalJump,
	"JUMP_IF_FALSE_OR_POP":          ConditionalJump,
	"JUMP_IF_TRUE_OR_POP":           ConditionalJump,
	"JUMP_IF_NOT_EXC_MATCH":         ConditionalJump,
	"JUMP_IF_NOT_EG_MATCH":          ConditionalJump,
	"FOR_ITER":                      ConditionalJump,
	"SEND":                          ConditionalJump,
	"SETUP_FINALLY":                 ConditionalJump,
	"SETUP_WITH":                    ConditionalJump,
	"SETUP_ASYNC_WITH":              ConditionalJump,
	"SETUP_CLEANUP":                 ConditionalJump,

	"RETURN_VALUE": Return,
	"RETURN_CONST": Return,
}

// Classify returns the category of a CPython bytecode mnemonic.
// Matching ignores case; unknown mnemonics are [Other].
func Classify(opname string) Category {
	if c, ok := mnemonics[opname]; ok {
		return c
	}

	return mnemonics[strings.ToUpper(opname)]
}

// Known reports whether opname is a mnemonic with a category other than [Other].
func Known(opname string) bool {
	return Classify(opname) != Other
}
