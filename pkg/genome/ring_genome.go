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
	"strings"

	"github.com/genomesim/go-transposon/pkg/util"
	"github.com/genomesim/go-transposon/pkg/util/collection/ring"
)

// RingGenome implements the Genome contract over a circular doubly-linked
// list of symbols.  Reaching position p costs O(p), but splicing new symbols
// in is O(1) per symbol, so insertion never shifts the rest of the sequence.
type RingGenome struct {
	symbols *ring.List[Symbol]
	// Active transposable elements, keyed by identifier.
	active map[TEID]teRecord
	// Next identifier to issue.  Owned by this instance; identifiers are
	// never shared across genomes.
	nextID TEID
}

var _ Genome = &RingGenome{}

// NewRingGenome constructs a list-backed genome of the given size, with all
// positions empty.  Fails with ErrInvalidSize when n is negative; n == 0 is a
// degenerate but legal empty circle.
func NewRingGenome(n int) (*RingGenome, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	//
	seq := make([]Symbol, n)
	for i := range seq {
		seq[i] = Empty
	}
	//
	return &RingGenome{
		symbols: ring.FromSlice(seq),
		active:  make(map[TEID]teRecord),
		nextID:  1,
	}, nil
}

// InsertTE implementation for the Genome interface.
func (g *RingGenome) InsertTE(pos uint, length uint) (TEID, error) {
	if pos >= g.Len() {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrPositionOutOfRange, pos, g.Len())
	}
	// Locate the link to splice after: the predecessor of pos, which for
	// pos == 0 is the anchor.
	ref := g.symbols.Anchor()
	if pos > 0 {
		ref = g.symbols.Position(pos)
	}
	// Disable any active element being overwritten by this insertion.  The
	// collision test uses the pre-insertion symbol at pos, i.e. the
	// successor of ref.
	if ref.Next().Value() == ActiveTE {
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
	for i := uint(0); i < length; i++ {
		ref = g.symbols.InsertAfter(ref, ActiveTE)
	}
	// Record the new element.
	id := g.nextID
	g.nextID++
	g.active[id] = teRecord{start: pos, length: length}
	//
	return id, nil
}

// CopyTE implementation for the Genome interface.
func (g *RingGenome) CopyTE(te TEID, offset int) util.Option[TEID] {
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
func (g *RingGenome) DisableTE(te TEID) {
	t, ok := g.active[te]
	if !ok {
		return
	}
	// Walk to the first link of the element, then paint its whole range.
	// Inserted runs never straddle the seam at position 0, so the walk
	// stays within the current revolution.
	link := g.symbols.Position(t.start + 1)
	for i := uint(0); i < t.length; i++ {
		link.SetValue(DisabledTE)
		link = link.Next()
	}
	// The identifier is retired, never reissued.
	delete(g.active, te)
}

// ActiveTEs implementation for the Genome interface.
func (g *RingGenome) ActiveTEs() []TEID {
	return sortedIDs(g.active)
}

// Len implementation for the Genome interface.
func (g *RingGenome) Len() uint {
	return g.symbols.Len()
}

func (g *RingGenome) String() string {
	var builder strings.Builder
	//
	for it := g.symbols.Iter(); it.HasNext(); {
		builder.WriteByte(byte(it.Next()))
	}
	//
	return builder.String()
}
