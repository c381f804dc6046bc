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
	"log/slog"
)

// walker explores all paths of an instruction sequence from a start index.
type walker struct {
	ctx  context.Context
	code []Instruction
	end  int // Exclusive upper bound of the walk

	logger *slog.Logger
	debug  bool // Whether debug records are emitted
}

func newWalker(ctx context.Context, code []Instruction, end int, logger *slog.Logger) *walker {
	return &walker{
		ctx:    ctx,
		code:   code,
		end:    end,
		logger: logger,
		debug:  logger.Enabled(ctx, slog.LevelDebug),
	}
}

// walk follows a single path from start, taking ownership of s.
// It returns the terminal state of the path, or the merged state of both branches at the first jump.
func (w *walker) walk(s *state, start int) (*state, error) {
	for i := start; i < w.end; i++ {
		if s.visit(i) {
			w.log("cycle", slog.Int("index", i))

			return s, nil
		}

		in := w.code[i]

		switch op := in.Op; {
		case op.IsRead():
			s.read(in.Name)

		case op.IsWrite():
			s.write(in.Name)

		case op.IsJump():
			return w.branch(s, i, in)

		case op.IsReturn():
			return s, nil
		}
	}

	return s, nil
}

// branch forks s at the jump in at index i and merges the terminal states of both branches.
// An unconditional jump has no fall-through branch; it contributes an empty state.
func (w *walker) branch(s *state, i int, in Instruction) (*state, error) {
	target := in.Target
	if !validTarget(target, len(w.code)) {
		return nil, fmt.Errorf("%w: instruction %d (%s) in sequence of length %d", ErrInvalidTarget, i, in, len(w.code))
	}

	w.log("fork", slog.Int("index", i), slog.Int("target", target), slog.Bool("conditional", in.Op.IsConditional()))

	fallThrough := new(state)
	if in.Op.IsConditional() {
		fallThrough = s.clone()
	}

	taken, err := w.walk(s, target)
	if err != nil {
		return nil, err
	}

	notTaken := fallThrough
	if in.Op.IsConditional() {
		if notTaken, err = w.walk(fallThrough, i+1); err != nil {
			return nil, err
		}
	}

	merged := merge(taken, notTaken)

	w.log("merge", slog.Int("index", i), slog.Int("reads", merged.reads.Len()), slog.Int("writes", merged.writes.Len()))

	return merged, nil
}

func (w *walker) log(msg string, attrs ...slog.Attr) {
	if !w.debug {
		return
	}

	w.logger.LogAttrs(w.ctx, slog.LevelDebug, msg, attrs...)
}
