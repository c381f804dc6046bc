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

// Settings represents analysis configuration kept in JSON or YAML files.
type Settings struct {
	// Stop ends every path before the instruction at this index.
	Stop *int `json:"stop,omitzero" yaml:"stop,omitempty"`
	// Concurrency bounds the number of parallel queries.
	Concurrency *int `json:"concurrency,omitzero" yaml:"concurrency,omitempty"`
}

// Options converts [Settings] into a list of [Option].
// It applies settings only when explicitly set (non-nil).
func (s Settings) Options() Options {
	var opts Options

	opts = appendOption(opts, s.Stop, WithStop)
	opts = appendOption(opts, s.Concurrency, WithConcurrency)

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts Options, value *T, constructor func(T) Option) Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
