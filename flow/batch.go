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

	"golang.org/x/sync/errgroup"
)

// AnalyzeAll runs [Analyze] for every index in starts and returns the results in the same order.
//
// Queries run in parallel, bounded by [WithConcurrency]. The first failing
// query cancels the remaining ones and its error is returned.
func AnalyzeAll(ctx context.Context, code []Instruction, starts []int, opts ...Option) ([]Result, error) {
	c := makeConfig(opts)

	ctx, task := trace.NewTask(ctx, "AnalyzeAll")
	defer task.End()

	results := make([]Result, len(starts))

	g, ctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}

	for i, start := range starts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := c.analyze(ctx, code, start)
			if err != nil {
				return fmt.Errorf("query %d at index %d: %w", i, start, err)
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
