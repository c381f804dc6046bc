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

import "errors"

var (
	// ErrInvalidTarget is returned when a jump's target lies outside the instruction sequence.
	// This indicates a defect in the code that built the sequence, not in the analyzed program.
	ErrInvalidTarget = errors.New("jump target out of range")

	// ErrInvalidRange is returned when the start or stop index lies outside the instruction sequence.
	ErrInvalidRange = errors.New("index out of range")
)
