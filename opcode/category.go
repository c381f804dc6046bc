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

package opcode

import (
	"fmt"

	"fillmore-labs.com/flowscan/internal/bitmask"
)

// Category is the classification of an instruction.
type Category uint8

//go:generate go tool stringer -type Category -linecomment
const (
	// Other is any instruction without effect on named storage or control flow.
	Other Category = iota // other

	LocalLoad   // local-load
	LocalStore  // local-store
	LocalDelete // local-delete

	FreeLoad   // free-load
	FreeStore  // free-store
	FreeDelete // free-delete

	NameLoad   // name-load
	NameStore  // name-store
	NameDelete // name-delete

	GlobalLoad   // global-load
	GlobalStore  // global-store
	GlobalDelete // global-delete

	// UnconditionalJump always branches to its target.
	UnconditionalJump // unconditional-jump

	// ConditionalJump either branches to its target or falls through.
	ConditionalJump // conditional-jump

	// Return terminates the current path.
	Return // return
)

const numCategories = Return + 1

// Scope is the storage scope targeted by a named instruction.
type Scope uint8

//go:generate go tool stringer -type Scope -linecomment
const (
	NoScope Scope = iota // none
	Local                // local
	Free                 // free
	Name                 // name
	Global               // global
)

var (
	loads   = bitmask.Of(LocalLoad, FreeLoad, NameLoad, GlobalLoad)
	stores  = bitmask.Of(LocalStore, FreeStore, NameStore, GlobalStore)
	deletes = bitmask.Of(LocalDelete, FreeDelete, NameDelete, GlobalDelete)
	jumps   = bitmask.Of(UnconditionalJump, ConditionalJump)

	// writes are stores and deletes. A delete never counts as a read.
	writes = stores.Union(deletes)
	named  = loads.Union(writes)
)

// IsLoad reports whether c loads a named value.
func (c Category) IsLoad() bool { return loads.Has(c) }

// IsStore reports whether c stores a named value.
func (c Category) IsStore() bool { return stores.Has(c) }

// IsDelete reports whether c deletes a named value.
func (c Category) IsDelete() bool { return deletes.Has(c) }

// IsRead reports whether c reads named storage. Only loads are reads.
func (c Category) IsRead() bool { return loads.Has(c) }

// IsWrite reports whether c writes named storage: stores and deletes.
func (c Category) IsWrite() bool { return writes.Has(c) }

// HasName reports whether instructions of category c carry a symbolic name.
func (c Category) HasName() bool { return named.Has(c) }

// IsJump reports whether c is a conditional or unconditional jump.
func (c Category) IsJump() bool { return jumps.Has(c) }

// HasTarget reports whether instructions of category c carry a jump target.
func (c Category) HasTarget() bool { return c.IsJump() }

// IsConditional reports whether c is a conditional jump.
func (c Category) IsConditional() bool { return c == ConditionalJump }

// IsUnconditional reports whether c is an unconditional jump.
func (c Category) IsUnconditional() bool { return c == UnconditionalJump }

// IsReturn reports whether c terminates the current path.
func (c Category) IsReturn() bool { return c == Return }

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool { return c < numCategories }

// Scope returns the storage scope of a named category, or [NoScope].
func (c Category) Scope() Scope {
	switch c {
	case LocalLoad, LocalStore, LocalDelete:
		return Local

	case FreeLoad, FreeStore, FreeDelete:
		return Free

	case NameLoad, NameStore, NameDelete:
		return Name

	case GlobalLoad, GlobalStore, GlobalDelete:
		return Global

	default:
		return NoScope
	}
}

// Categories returns all defined categories in declaration order.
func Categories() []Category {
	cs := make([]Category, 0, numCategories)
	for c := range numCategories {
		cs = append(cs, c)
	}

	return cs
}

// ParseCategory returns the category printed as s by [Category.String].
func ParseCategory(s string) (Category, error) {
	for c := range numCategories {
		if c.String() == s {
			return c, nil
		}
	}

	return Other, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
