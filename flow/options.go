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

import "log/slog"

// Option configures an [Analyze] or [AnalyzeAll] call.
type Option interface {
	apply(c *config)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(c *config) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(c)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithStop is an [Option] to end every path before the instruction at index stop.
// A negative stop walks to the end of the sequence.
func WithStop(stop int) Option { return stopOption{stop: stop} }

type stopOption struct{ stop int }

func (o stopOption) apply(c *config) {
	c.stop = o.stop
}

func (o stopOption) LogAttr() slog.Attr {
	return slog.Int("stop", o.stop)
}

// WithLogger is an [Option] to receive debug records of the walk.
// A nil logger discards them.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(c *config) {
	if o.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
		return
	}

	c.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// WithConcurrency is an [Option] to bound the number of queries [AnalyzeAll] runs in parallel.
// Values below one mean no limit.
func WithConcurrency(n int) Option { return concurrencyOption{n: n} }

type concurrencyOption struct{ n int }

func (o concurrencyOption) apply(c *config) {
	c.concurrency = o.n
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.n)
}
