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
package genome

import (
	"fmt"
	"slices"

	"github.com/genomesim/go-transposon/pkg/util"
)

// SliceGenome implements the Genome contract over a mutable slice of symbols.
// Positional access is O(1); insertion shifts the tail of the slice and is
// therefore O(n).
type SliceGenome struct {
	symbols []Symbol
	// Active transposable elements, keyed by identifier.
	active map[TEID]teRecord
	// Next identifier to issue.  Owned by this instance; identifiers are
	// never shared across genomes.
	nextID TEID
}

var _ Genome = &SliceGenome{}

// NewSliceGenome constructs a slice-backed genome of the given size, with all
// positions empty.  Fails with ErrInvalidSize when n is negative; n == 0 is a
// degenerate but legal empty circle.
func NewSliceGenome(n int) (*SliceGenome, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	//
	symbols := make([]Symbol, n)
	for i := range symbols {
		symbols[i] = Empty
	}
	//
	return &SliceGenome{
		symbols: symbols,
		active:  make(map[TEID]teRecord),
		nextID:  1,
	}, nil
}

// InsertTE implementation for the Genome interface.
func (g *SliceGenome) InsertTE(pos uint, length uint) (TEID, error) {
	if pos >= g.Len() {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrPositionOutOfRange, pos, g.Len())
	}
	// Disable any active element being overwritten by this insertion.  The
	// collision test uses the pre-insertion symbol at pos.
	if g.symbols[pos] == ActiveTE {
		for _, id := range sortedIDs(g.active) {
			if t := g.active[id]; t.start <= pos && pos <= t.start+t.length {
				g.DisableTE(id)
			}
		}
	}
	// Shift every surviving element recorded beyond pos, since length new
	// symbols are about to be inserted ahead of it.
	for id, t := range g.active {
		if t.start > pos {
			t.start += length
			g.active[id] = t
		}
	}
	// Splice the new run into the sequence.
	run := make([]Symbol, length)
	for i := range run {
		run[i] = ActiveTE
	}
	//
	g.symbols = slices.Insert(g.symbols, int(pos), run...)
	// Record the new element.
	id := g.nextID
	g.nextID++
	g.active[id] = teRecord{start: pos, length: length}
	//
	return id, nil
}

// CopyTE implementation for the Genome interface.
func (g *SliceGenome) CopyTE(te TEID, offset int) util.Option[TEID] {
	t, ok := g.active[te]
	if !ok {
		return util.None[TEID]()
	}
	//
	pos := wrap(int(t.start)+offset, g.Len())
	//
	id, err := g.InsertTE(pos, t.length)
	if err != nil {
		// Unreachable: wrap keeps pos inside the genome.
		panic(err)
	}
	//
	return util.Some(id)
}

// DisableTE implementation for the Genome interface.
func (g *SliceGenome) DisableTE(te TEID) {
	t, ok := g.active[te]
	if !ok {
		return
	}
	//
	for i := t.start; i < t.start+t.length; i++ {
		g.symbols[i] = DisabledTE
	}
	// The identifier is retired, never reissued.
	delete(g.active, te)
}

// ActiveTEs implementation for the Genome interface.
func (g *SliceGenome) ActiveTEs() []TEID {
	return sortedIDs(g.active)
}

// Len implementation for the Genome interface.
func (g *SliceGenome) Len() uint {
	return uint(len(g.symbols))
}

func (g *SliceGenome) String() string {
	bytes := make([]byte, len(g.symbols))
	//
	for i, s := range g.symbols {
		bytes[i] = byte(s)
	}
	//
	return string(bytes)
}
