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
	"testing"

	"github.com/genomesim/go-transposon/pkg/genome"
)

func Test_Equivalence_01(t *testing.T) {
	check_Equivalence(t, DefaultScriptConfig(), 50)
}

func Test_Equivalence_02(t *testing.T) {
	// A tiny genome with long elements forces frequent collisions.
	check_Equivalence(t, ScriptConfig{
		Size:          3,
		Ops:           50,
		MaxLength:     4,
		InsertWeight:  2,
		CopyWeight:    4,
		DisableWeight: 2,
	}, 50)
}

func Test_Equivalence_03(t *testing.T) {
	// Copy-heavy traffic exercises wraparound in both directions.
	check_Equivalence(t, ScriptConfig{
		Size:          20,
		Ops:           200,
		MaxLength:     3,
		InsertWeight:  1,
		CopyWeight:    6,
		DisableWeight: 1,
	}, 20)
}

func Test_Run_01(t *testing.T) {
	script := Script{
		Size: 5,
		Ops: []Op{
			{Kind: OpInsert, Pos: 0, Length: 2},
			{Kind: OpCopy, TE: 1, Offset: 3},
			{Kind: OpDisable, TE: 1},
			{Kind: OpCopy, TE: 1, Offset: 1},
		},
	}
	//
	for _, kind := range []genome.Kind{genome.SliceBacked, genome.RingBacked} {
		t.Run(kind.String(), func(t *testing.T) {
			g, stats, err := Run(kind, script)
			if err != nil {
				t.Fatalf("unexpected run error: %v", err)
			}
			//
			if rendered := g.String(); rendered != "xx-AA----" {
				t.Errorf("expected \"xx-AA----\", got %q", rendered)
			}
			//
			checkStat(t, "ops", stats.Ops, 4)
			checkStat(t, "inserted", stats.Inserted, 1)
			checkStat(t, "copied", stats.Copied, 1)
			checkStat(t, "copy misses", stats.CopyMisses, 1)
			checkStat(t, "disabled", stats.Disabled, 1)
			checkStat(t, "length", stats.Length, 9)
			checkStat(t, "active", stats.Active, 1)
			checkStat(t, "empty symbols", stats.EmptySymbols, 5)
			checkStat(t, "active symbols", stats.ActiveSymbols, 2)
			checkStat(t, "disabled symbols", stats.DisabledSymbols, 2)
			//
			if fraction := stats.CoveredFraction(); fraction != 2.0/9.0 {
				t.Errorf("expected coverage 2/9, got %f", fraction)
			}
		})
	}
}

func Test_Run_02(t *testing.T) {
	// An invalid insertion position aborts the run.
	script := Script{Size: 2, Ops: []Op{{Kind: OpInsert, Pos: 2, Length: 1}}}
	//
	if _, _, err := Run(genome.SliceBacked, script); err == nil {
		t.Errorf("expected run to fail")
	}
}

func Test_Run_03(t *testing.T) {
	// Length is monotonic: it only ever grows, by exactly the run inserted.
	script := RandomScript(DefaultScriptConfig(), 3)
	//
	g, err := genome.New(genome.RingBacked, int(script.Size))
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	//
	length := g.Len()
	//
	for i, op := range script.Ops {
		var stats Stats
		//
		if err := apply(g, op, &stats); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		//
		switch {
		case op.Kind == OpInsert && g.Len() != length+op.Length && stats.Inserted == 1:
			t.Fatalf("step %d: expected length %d, got %d", i, length+op.Length, g.Len())
		case op.Kind == OpDisable && g.Len() != length:
			t.Fatalf("step %d: disable changed the length", i)
		case g.Len() < length:
			t.Fatalf("step %d: length shrank from %d to %d", i, length, g.Len())
		}
		//
		length = g.Len()
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Equivalence(t *testing.T, cfg ScriptConfig, seeds uint64) {
	for seed := uint64(0); seed < seeds; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			if err := CheckEquivalence(RandomScript(cfg, seed)); err != nil {
				t.Errorf("representations diverged: %v", err)
			}
		})
	}
}

func checkStat(t *testing.T, name string, got uint, expected uint) {
	if got != expected {
		t.Errorf("expected %d %s, got %d", expected, name, got)
	}
}
