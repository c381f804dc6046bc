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
	"log/slog"
	"runtime"
)

// config holds the settings of a single [Analyze] or [AnalyzeAll] call.
type config struct {
	// stop is the exclusive upper bound of the walk; negative means the end of the sequence.
	stop int

	// logger receives debug records for forks, merges and cycle breaks.
	logger *slog.Logger

	// concurrency bounds the number of parallel queries in [AnalyzeAll].
	concurrency int
}

// makeConfig returns a [config] with overriding [Options] applied.
func makeConfig(opts Options) *config {
	c := defaultConfig()
	opts.apply(c)

	return c
}

// defaultConfig initializes and returns a new config with default values.
func defaultConfig() *config {
	return &config{
		stop:        -1,
		logger:      slog.New(slog.DiscardHandler),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// end returns the effective exclusive upper bound of a walk over n instructions.
func (c *config) end(n int) int {
	if c.stop < 0 {
		return n
	}

	return c.stop
}
