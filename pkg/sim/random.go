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
	"math/rand/v2"

	"github.com/genomesim/go-transposon/pkg/genome"
)

// ScriptConfig shapes randomly generated scripts.
type ScriptConfig struct {
	// Initial genome size.
	Size uint
	// Number of operations to generate.
	Ops uint
	// Largest transposable element length an insertion may use.
	MaxLength uint
	// Relative weights of the three operations.
	InsertWeight  uint
	CopyWeight    uint
	DisableWeight uint
}

// DefaultScriptConfig returns a configuration which produces a lively mix of
// insertions, copies and disables over a mid-sized genome.
func DefaultScriptConfig() ScriptConfig {
	return ScriptConfig{
		Size:          50,
		Ops:           100,
		MaxLength:     5,
		InsertWeight:  4,
		CopyWeight:    3,
		DisableWeight: 1,
	}
}

// RandomScript generates a deterministic pseudo-random script for the given
// seed.  Generated operations are always applicable: insertion positions stay
// inside the evolving genome, while copy and disable targets are drawn from
// previously issued identifiers (some of which may have been disabled since,
// deliberately exercising the absent-copy and no-op paths).  A zero-size
// genome admits no operations, so its script is empty.
func RandomScript(cfg ScriptConfig, seed uint64) Script {
	var (
		r      = rand.New(rand.NewPCG(seed, 0))
		script = Script{Size: cfg.Size}
		issued []genome.TEID
	)
	// Track the evolving genome so that generated positions remain valid.
	scratch, err := genome.NewSliceGenome(int(cfg.Size))
	if err != nil {
		panic(err)
	}
	//
	if cfg.Size == 0 {
		return script
	}
	// Elements are at least one symbol long.
	if cfg.MaxLength == 0 {
		cfg.MaxLength = 1
	}
	//
	total := cfg.InsertWeight + cfg.CopyWeight + cfg.DisableWeight
	//
	for i := uint(0); i < cfg.Ops; i++ {
		var op Op
		//
		choice := r.UintN(total)
		//
		switch {
		// Copies and disables need a previously issued element, so the
		// opening operations are always insertions.
		case choice < cfg.InsertWeight || len(issued) == 0:
			op = Op{
				Kind:   OpInsert,
				Pos:    r.UintN(scratch.Len()),
				Length: 1 + r.UintN(cfg.MaxLength),
			}
		case choice < cfg.InsertWeight+cfg.CopyWeight:
			n := int(scratch.Len())
			op = Op{
				Kind:   OpCopy,
				TE:     issued[r.UintN(uint(len(issued)))],
				Offset: r.IntN(2*n+1) - n,
			}
		default:
			op = Op{
				Kind: OpDisable,
				TE:   issued[r.UintN(uint(len(issued)))],
			}
		}
		//
		script.Ops = append(script.Ops, op)
		// Replay onto the scratch genome to learn the new length and any
		// identifiers issued.
		switch op.Kind {
		case OpInsert:
			id, err := scratch.InsertTE(op.Pos, op.Length)
			if err != nil {
				panic(err)
			}
			//
			issued = append(issued, id)
		case OpCopy:
			if id := scratch.CopyTE(op.TE, op.Offset); id.HasValue() {
				issued = append(issued, id.Unwrap())
			}
		case OpDisable:
			scratch.DisableTE(op.TE)
		}
	}
	//
	return script
}
