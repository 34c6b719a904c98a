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
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/genomesim/go-transposon/pkg/genome"
)

func Test_Script_Parse_01(t *testing.T) {
	script, err := ParseScript(strings.NewReader(`
# a comment
genome 5

insert 0 2
copy 1 -3
disable 1
`))
	//
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	//
	expected := Script{
		Size: 5,
		Ops: []Op{
			{Kind: OpInsert, Pos: 0, Length: 2},
			{Kind: OpCopy, TE: 1, Offset: -3},
			{Kind: OpDisable, TE: 1},
		},
	}
	//
	if !reflect.DeepEqual(script, expected) {
		t.Errorf("expected %v, got %v", expected, script)
	}
}

func Test_Script_Parse_02(t *testing.T) {
	// The size directive must come first.
	checkParseFails(t, "insert 0 2\n")
	checkParseFails(t, "")
}

func Test_Script_Parse_03(t *testing.T) {
	checkParseFails(t, "genome x\n")
	checkParseFails(t, "genome 5\ninsert 0\n")
	checkParseFails(t, "genome 5\ncopy 1\n")
	checkParseFails(t, "genome 5\ndisable\n")
	checkParseFails(t, "genome 5\nsplice 0 1\n")
	checkParseFails(t, "genome 5\ninsert a b\n")
}

func Test_Script_Parse_04(t *testing.T) {
	file, err := os.Open("testdata/sample.script")
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	//
	defer file.Close()
	//
	script, err := ParseScript(file)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	//
	g, _, err := Run(genome.RingBacked, script)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	//
	if rendered := g.String(); rendered != "xx-AA----" {
		t.Errorf("expected \"xx-AA----\", got %q", rendered)
	}
}

func Test_Script_RoundTrip_01(t *testing.T) {
	script := RandomScript(DefaultScriptConfig(), 7)
	//
	var buffer strings.Builder
	if _, err := script.WriteTo(&buffer); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	//
	parsed, err := ParseScript(strings.NewReader(buffer.String()))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	//
	if !reflect.DeepEqual(script, parsed) {
		t.Errorf("round trip changed the script")
	}
}

func Test_Script_Random_01(t *testing.T) {
	// Generation is deterministic for a fixed seed.
	cfg := DefaultScriptConfig()
	//
	if !reflect.DeepEqual(RandomScript(cfg, 42), RandomScript(cfg, 42)) {
		t.Errorf("expected identical scripts for identical seeds")
	}
}

func Test_Script_Random_02(t *testing.T) {
	// Generated scripts always apply cleanly.
	for seed := uint64(0); seed < 20; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			script := RandomScript(DefaultScriptConfig(), seed)
			//
			if uint(len(script.Ops)) != DefaultScriptConfig().Ops {
				t.Fatalf("expected %d operations, got %d", DefaultScriptConfig().Ops, len(script.Ops))
			}
			//
			if _, _, err := Run(genome.SliceBacked, script); err != nil {
				t.Errorf("unexpected run error: %v", err)
			}
		})
	}
}

func Test_Script_Random_03(t *testing.T) {
	// A zero-size genome admits no operations.
	cfg := DefaultScriptConfig()
	cfg.Size = 0
	//
	if script := RandomScript(cfg, 1); len(script.Ops) != 0 {
		t.Errorf("expected an empty script, got %d operations", len(script.Ops))
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkParseFails(t *testing.T, text string) {
	if _, err := ParseScript(strings.NewReader(text)); err == nil {
		t.Errorf("expected parse error for %q", text)
	}
}
