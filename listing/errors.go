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

import "errors"

var (
	// ErrUnknownLabel is returned when a jump refers to a label that is never defined.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrDuplicateLabel is returned when a label is defined more than once.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrMissingOperand is returned when a load, store, delete or jump has no operand.
	ErrMissingOperand = errors.New("missing operand")

	// ErrInvalidOperand is returned for malformed operands and jump indices outside the listing.
	ErrInvalidOperand = errors.New("invalid operand")
)
