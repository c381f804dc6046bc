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

package listing

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/flowscan/flow"
	"fillmore-labs.com/flowscan/opcode"
)

// Program is a parsed listing.
type Program struct {
	Code   []flow.Instruction // The instruction sequence, jump targets resolved
	Labels map[string]int     // Label name to instruction index
}

// Index returns the instruction index of a label or of an '@'-prefixed index.
func (p *Program) Index(ref string) (int, error) {
	if idx, ok := strings.CutPrefix(ref, "@"); ok {
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i > len(p.Code) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, ref)
		}

		return i, nil
	}

	i, ok := p.Labels[ref]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, ref)
	}

	return i, nil
}

// fixup is a jump whose label is resolved after all labels are known.
type fixup struct {
	index int
	label string
	line  int
}

// Parse reads a listing and resolves its jump targets.
func Parse(src string) (*Program, error) {
	p := &Program{Labels: make(map[string]int)}

	var fixups []fixup

	sc := bufio.NewScanner(strings.NewReader(src))
	for line := 1; sc.Scan(); line++ {
		text, _, _ := strings.Cut(sc.Text(), "#")

		text, err := p.label(strings.TrimSpace(text), line)
		if err != nil {
			return nil, err
		}

		if text == "" {
			continue
		}

		in, ref, err := parseInstruction(text, line)
		if err != nil {
			return nil, err
		}

		if ref != "" {
			fixups = append(fixups, fixup{index: len(p.Code), label: ref, line: line})
		}

		p.Code = append(p.Code, in)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	for _, f := range fixups {
		target, err := p.Index(f.label)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", f.line, err)
		}

		if target >= len(p.Code) {
			return nil, fmt.Errorf("line %d: %w: jump past end to %q", f.line, ErrInvalidOperand, f.label)
		}

		p.Code[f.index].Target = target
	}

	return p, nil
}

// MustParse is like [Parse] but panics if the listing cannot be parsed.
func MustParse(src string) *Program {
	p, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return p
}

// label records a leading "name:" of text and returns the remainder.
func (p *Program) label(text string, line int) (string, error) {
	name, rest, ok := strings.Cut(text, ":")
	if !ok || name == "" || strings.ContainsAny(name, " \t<") {
		return text, nil
	}

	if _, dup := p.Labels[name]; dup {
		return "", fmt.Errorf("line %d: %w: %q", line, ErrDuplicateLabel, name)
	}

	p.Labels[name] = len(p.Code)

	return strings.TrimSpace(rest), nil
}

// parseInstruction parses a single instruction. For jumps, ref is the unresolved target operand.
func parseInstruction(text string, line int) (in flow.Instruction, ref string, err error) {
	fields := strings.Fields(text)
	mnemonic, operand := fields[0], ""
	if len(fields) > 1 {
		operand = fields[1]
	}

	op, err := category(mnemonic)
	if err != nil {
		return flow.Instruction{}, "", fmt.Errorf("line %d: %w", line, err)
	}

	switch {
	case op.HasName():
		if operand == "" {
			return flow.Instruction{}, "", fmt.Errorf("line %d: %w for %s", line, ErrMissingOperand, mnemonic)
		}

		return flow.Named(op, operand), "", nil

	case op.HasTarget():
		if operand == "" {
			return flow.Instruction{}, "", fmt.Errorf("line %d: %w for %s", line, ErrMissingOperand, mnemonic)
		}

		return flow.Jump(op, flow.NoTarget), operand, nil

	default:
		return flow.Plain(op), "", nil
	}
}

// category classifies a mnemonic or an angle-bracketed category name.
func category(mnemonic string) (opcode.Category, error) {
	name, ok := strings.CutPrefix(mnemonic, "<")
	if !ok {
		return opcode.Classify(mnemonic), nil
	}

	name, ok = strings.CutSuffix(name, ">")
	if !ok {
		return opcode.Other, fmt.Errorf("%w: %q", ErrInvalidOperand, mnemonic)
	}

	return opcode.ParseCategory(name)
}

// Format renders code as a listing that [Parse] accepts.
// Jump targets are written as '@'-prefixed indices.
func Format(code []flow.Instruction) string {
	var b strings.Builder

	for i, in := range code {
		fmt.Fprintf(&b, "<%s>", in.Op)

		switch {
		case in.Op.HasName():
			b.WriteString(" " + in.Name)

		case in.Op.HasTarget():
			b.WriteString(" @" + strconv.Itoa(in.Target))
		}

		fmt.Fprintf(&b, " # %d\n", i)
	}

	return b.String()
}
