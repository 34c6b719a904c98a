// Copyright Genomesim Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package genome models a circular genome undergoing transposition.  A genome
// is a circular sequence of symbols into which transposable elements (TEs) can
// be inserted, copied to new offsets and disabled.  Two backing
// representations are provided, one over a mutable slice and one over a
// circular doubly-linked list; both satisfy the Genome interface and are
// observably identical for any valid operation sequence, differing only in
// the asymptotic cost of insertion.
package genome

import (
	"errors"
	"fmt"
	"slices"

	"github.com/genomesim/go-transposon/pkg/util"
)

// Symbol is a single position of the genome sequence.
type Symbol byte

const (
	// Empty marks a position not occupied by any transposable element.
	Empty Symbol = '-'
	// ActiveTE marks a position inside a currently active transposable element.
	ActiveTE Symbol = 'A'
	// DisabledTE marks a position inside a disabled transposable element.
	// Disabled elements are never removed from the sequence.
	DisabledTE Symbol = 'x'
)

// TEID identifies a transposable element within a single genome instance.
// Identifiers start at 1, increase strictly with every successful insertion,
// and are never reused (disabling an element retires its identifier
// permanently).  Identifiers carry no meaning across genome instances.
type TEID uint

// ErrInvalidSize indicates a genome was constructed with a negative length.
var ErrInvalidSize = errors.New("invalid genome size")

// ErrPositionOutOfRange indicates an insertion position outside the current
// genome, i.e. outside [0, Len()).  The genome is left unmodified.
var ErrPositionOutOfRange = errors.New("position outside genome")

// Genome is the contract shared by all backing representations.  The genome
// is circular: index arithmetic on offsets wraps modulo the current length,
// and the position after the last is position 0.
type Genome interface {
	// InsertTE inserts a transposable element of the given length immediately
	// before the current occupant of pos, and returns its identifier.  Any
	// active element whose recorded range covers pos, when pos currently
	// holds an active symbol, is disabled (it has been overwritten).  Every
	// surviving element recorded beyond pos has its position advanced by
	// length, since the sequence grew ahead of it.  Fails with
	// ErrPositionOutOfRange when pos >= Len(), leaving the genome untouched.
	InsertTE(pos uint, length uint) (TEID, error)

	// CopyTE copies an active transposable element to a new position, offset
	// symbols away from its current one.  The offset may be negative, and
	// wraps around the circular sequence in either direction.  The result is
	// empty when te is not an active element, in which case the genome is
	// left unmodified.
	CopyTE(te TEID, offset int) util.Option[TEID]

	// DisableTE disables an active transposable element, overwriting its
	// occupied range with DisabledTE symbols and retiring its identifier.
	// Disabling an element which is not active does nothing.
	DisableTE(te TEID)

	// ActiveTEs returns the identifiers of all active transposable elements,
	// in ascending order.
	ActiveTEs() []TEID

	// Len returns the current length of the genome sequence.
	Len() uint

	// String renders the sequence left-to-right from logical position 0, one
	// character per position.  The rendering is linear; circularity means the
	// character after the last is adjacent to the first.
	String() string
}

// Kind selects a backing representation at construction time.
type Kind uint8

const (
	// SliceBacked genomes store the sequence in a directly-indexable slice.
	// Insertion shifts the tail of the slice, costing O(n).
	SliceBacked Kind = iota
	// RingBacked genomes store the sequence in a circular doubly-linked
	// list.  Insertion at position p costs O(p) to walk plus O(length) to
	// splice, with no shifting.
	RingBacked
)

func (k Kind) String() string {
	switch k {
	case SliceBacked:
		return "slice"
	case RingBacked:
		return "ring"
	}
	//
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind parses a backing representation name, as used on the command line.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "slice":
		return SliceBacked, nil
	case "ring":
		return RingBacked, nil
	}
	//
	return 0, fmt.Errorf("unknown genome backing %q", name)
}

// New constructs an empty genome of the given size over the chosen backing
// representation.
func New(kind Kind, n int) (Genome, error) {
	switch kind {
	case SliceBacked:
		return NewSliceGenome(n)
	case RingBacked:
		return NewRingGenome(n)
	}
	//
	return nil, fmt.Errorf("unknown genome backing (%d)", uint8(kind))
}

// teRecord tracks where an active transposable element currently sits in the
// sequence.  Records are owned by the genome which issued them and shift as
// later insertions grow the sequence ahead of them.
type teRecord struct {
	start  uint
	length uint
}

// sortedIDs returns the keys of an active element table in ascending order.
// Both representations hand out identifiers in this order, making the result
// deterministic within (and, as it happens, across) representations.
func sortedIDs(tes map[TEID]teRecord) []TEID {
	ids := make([]TEID, 0, len(tes))
	//
	for id := range tes {
		ids = append(ids, id)
	}
	//
	slices.Sort(ids)
	//
	return ids
}

// wrap maps an offset position onto the circle [0, n), wrapping negative
// positions backward.
func wrap(pos int, n uint) uint {
	m := pos % int(n)
	if m < 0 {
		m += int(n)
	}
	//
	return uint(m)
}
