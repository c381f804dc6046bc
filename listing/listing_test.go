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

package listing_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/flowscan/flow"
	. "fillmore-labs.com/flowscan/listing"
	"fillmore-labs.com/flowscan/opcode"
)

func TestParse(t *testing.T) {
	t.Parallel()

	const src = `
# while n: n -= 1
loop:
    LOAD_FAST n              # 0
    POP_JUMP_IF_FALSE done   # 1
    LOAD_FAST n
    LOAD_CONST 1
    INPLACE_SUBTRACT
    STORE_FAST n
    JUMP_ABSOLUTE loop       # 6
done: <return>               # 7
`

	p, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []flow.Instruction{
		flow.Named(opcode.LocalLoad, "n"),
		flow.Jump(opcode.ConditionalJump, 7),
		flow.Named(opcode.LocalLoad, "n"),
		flow.Plain(opcode.Other),
		flow.Plain(opcode.Other),
		flow.Named(opcode.LocalStore, "n"),
		flow.Jump(opcode.UnconditionalJump, 0),
		flow.Plain(opcode.Return),
	}

	if diff := cmp.Diff(want, p.Code); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(map[string]int{"loop": 0, "done": 7}, p.Labels); diff != "" {
		t.Errorf("Labels mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want error
	}{
		{"unknown_label", "JUMP_FORWARD nowhere", ErrUnknownLabel},
		{"duplicate_label", "a: NOP\na: NOP", ErrDuplicateLabel},
		{"missing_name", "LOAD_FAST", ErrMissingOperand},
		{"missing_target", "POP_JUMP_IF_TRUE", ErrMissingOperand},
		{"bad_index", "JUMP_FORWARD @x", ErrInvalidOperand},
		{"index_past_end", "JUMP_FORWARD @1", ErrInvalidOperand},
		{"label_past_end", "JUMP_FORWARD end\nend:", ErrInvalidOperand},
		{"unterminated_category", "<local-load x", ErrInvalidOperand},
		{"unknown_category", "<local-loads> x", opcode.ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse(tt.src); !errors.Is(err, tt.want) {
				t.Errorf("Expected error %v, got %v", tt.want, err)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	p := MustParse("start: LOAD_FAST x\nRETURN_VALUE")

	tests := [...]struct {
		ref     string
		want    int
		wantErr error
	}{
		{"start", 0, nil},
		{"@1", 1, nil},
		{"@2", 2, nil},
		{"@3", 0, ErrInvalidOperand},
		{"@-1", 0, ErrInvalidOperand},
		{"end", 0, ErrUnknownLabel},
	}

	for _, tt := range tests {
		got, err := p.Index(tt.ref)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Expected error %v for %q, got %v", tt.wantErr, tt.ref, err)

			continue
		}

		if got != tt.want {
			t.Errorf("Got index %d for %q, expected %d", got, tt.ref, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	code := []flow.Instruction{
		flow.Named(opcode.NameLoad, "x"),
		flow.Jump(opcode.ConditionalJump, 0),
		flow.Plain(opcode.Other),
	}

	p, err := Parse(Format(code))
	if err != nil {
		t.Fatalf("Can't parse formatted listing: %v", err)
	}

	if diff := cmp.Diff(code, p.Code); diff != "" {
		t.Errorf("Format() did not preserve code (-want +got):\n%s", diff)
	}
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic")
		}
	}()

	_ = MustParse("JUMP_FORWARD nowhere")
}
