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
	"context"
	"fmt"
	"runtime/trace"
	"slices"
)

// Result holds the names used along all paths from a start index.
//
// Both lists are duplicate-free and in order of first occurrence; the order
// carries no further meaning.
type Result struct {
	// Reads are names read on some path before any write to them on that path.
	Reads []string

	// Writes are names written on any path.
	Writes []string
}

// IsRead reports whether name is in r.Reads.
func (r Result) IsRead(name string) bool { return slices.Contains(r.Reads, name) }

// IsWritten reports whether name is in r.Writes.
func (r Result) IsWritten(name string) bool { return slices.Contains(r.Writes, name) }

// Analyze computes the names read before being written and the names written
// along every path through code starting at index start.
//
// A path ends at a return, at the stop index configured with [WithStop], at
// the end of code, or at an instruction already visited on that path.
//
// Analyze fails with [ErrInvalidRange] if start or stop lie outside code, and
// with [ErrInvalidTarget] if a reachable jump targets an index outside code.
// In both cases no partial result is returned.
func Analyze(ctx context.Context, code []Instruction, start int, opts ...Option) (Result, error) {
	c := makeConfig(opts)

	return c.analyze(ctx, code, start)
}

func (c *config) analyze(ctx context.Context, code []Instruction, start int) (Result, error) {
	defer trace.StartRegion(ctx, "Analyze").End()

	end := c.end(len(code))
	if end > len(code) {
		return Result{}, fmt.Errorf("%w: stop %d in sequence of length %d", ErrInvalidRange, end, len(code))
	}

	if start < 0 || start > len(code) {
		return Result{}, fmt.Errorf("%w: start %d in sequence of length %d", ErrInvalidRange, start, len(code))
	}

	w := newWalker(ctx, code, end, c.logger)

	s, err := w.walk(new(state), start)
	if err != nil {
		return Result{}, err
	}

	return Result{Reads: s.reads.Names(), Writes: s.writes.Names()}, nil
}
