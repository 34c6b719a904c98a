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
package sim

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"

	"github.com/genomesim/go-transposon/pkg/genome"
)

// Stats summarises a completed simulation run.
type Stats struct {
	// Operations applied.
	Ops uint
	// Fresh insertions performed.
	Inserted uint
	// Copies which found an active source.
	Copied uint
	// Copies whose source was inactive (absent results).
	CopyMisses uint
	// Disables which actually retired an active element.
	Disabled uint
	// Final genome length.
	Length uint
	// Active elements remaining at the end.
	Active uint
	// Final per-symbol totals.
	EmptySymbols    uint
	ActiveSymbols   uint
	DisabledSymbols uint
	// Mask of positions currently inside an active element.
	Coverage *bitset.BitSet
}

// CoveredFraction reports the fraction of the final sequence occupied by
// active transposable elements.
func (s Stats) CoveredFraction() float64 {
	if s.Length == 0 {
		return 0
	}
	//
	return float64(s.Coverage.Count()) / float64(s.Length)
}

// Run constructs a genome of the chosen backing and applies the given script
// to it, returning the final genome alongside summary statistics.  Scripts
// read from files may carry invalid insertion positions; the first failing
// operation aborts the run.
func Run(kind genome.Kind, script Script) (genome.Genome, Stats, error) {
	var stats Stats
	//
	g, err := genome.New(kind, int(script.Size))
	if err != nil {
		return nil, stats, err
	}
	//
	for i, op := range script.Ops {
		if err := apply(g, op, &stats); err != nil {
			return g, stats, fmt.Errorf("step %d (%s): %w", i, op, err)
		}
		//
		stats.Ops++
	}
	//
	stats.finalise(g)
	//
	return g, stats, nil
}

func apply(g genome.Genome, op Op, stats *Stats) error {
	switch op.Kind {
	case OpInsert:
		id, err := g.InsertTE(op.Pos, op.Length)
		if err != nil {
			return err
		}
		//
		log.Debugf("%s => id %d, length %d", op, id, g.Len())
		//
		stats.Inserted++
	case OpCopy:
		if id := g.CopyTE(op.TE, op.Offset); id.HasValue() {
			log.Debugf("%s => id %d, length %d", op, id.Unwrap(), g.Len())
			//
			stats.Copied++
		} else {
			log.Debugf("%s => absent", op)
			//
			stats.CopyMisses++
		}
	case OpDisable:
		if slices.Contains(g.ActiveTEs(), op.TE) {
			stats.Disabled++
		}
		//
		g.DisableTE(op.TE)
		//
		log.Debugf("%s", op)
	default:
		return fmt.Errorf("unknown operation kind (%d)", uint8(op.Kind))
	}
	//
	return nil
}

func (s *Stats) finalise(g genome.Genome) {
	rendered := g.String()
	//
	s.Length = g.Len()
	s.Active = uint(len(g.ActiveTEs()))
	s.Coverage = bitset.New(uint(len(rendered)))
	//
	for i := 0; i < len(rendered); i++ {
		switch genome.Symbol(rendered[i]) {
		case genome.Empty:
			s.EmptySymbols++
		case genome.ActiveTE:
			s.ActiveSymbols++
			s.Coverage.Set(uint(i))
		case genome.DisabledTE:
			s.DisabledSymbols++
		}
	}
}
