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
package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/genomesim/go-transposon/pkg/sim"
)

// ===================================================================
// Tests
// ===================================================================

func Test_Cmd_Replay_01(t *testing.T) {
	out := execCommand(t, "replay", "--backend", "slice", "testdata/sample.script")
	//
	checkContains(t, out, "xx-AA----")
	checkContains(t, out, "active: [2]")
	checkContains(t, out, "applied 3 operations")
}

func Test_Cmd_Replay_02(t *testing.T) {
	out := execCommand(t, "replay", "--backend", "ring", "testdata/sample.script")
	//
	checkContains(t, out, "xx-AA----")
	checkContains(t, out, "active: [2]")
}

func Test_Cmd_Simulate_01(t *testing.T) {
	out := execCommand(t, "simulate", "--size", "9", "--ops", "0", "--print")
	//
	checkContains(t, out, "applied 0 operations")
	checkContains(t, out, "---------")
}

func Test_Cmd_Simulate_02(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.script")
	//
	execCommand(t, "simulate", "--size", "12", "--ops", "5", "--seed", "42", "-o", filename)
	//
	file, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	//
	defer file.Close()
	//
	script, err := sim.ParseScript(file)
	if err != nil {
		t.Fatal(err)
	} else if script.Size != 12 {
		t.Errorf("written script has size %d (expected 12)", script.Size)
	} else if len(script.Ops) != 5 {
		t.Errorf("written script has %d operations (expected 5)", len(script.Ops))
	}
}

func Test_Cmd_Compare_01(t *testing.T) {
	out := execCommand(t, "compare", "--runs", "2", "--size", "9", "--ops", "30", "--seed", "1")
	//
	checkContains(t, out, "2 runs, representations agree")
}

// ===================================================================
// Helpers
// ===================================================================

// Run the root command with the given arguments, capturing everything written
// to stdout.
func execCommand(t *testing.T, args ...string) string {
	t.Helper()
	//
	saved := os.Stdout
	//
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	//
	os.Stdout = w
	rootCmd.SetArgs(args)
	//
	execErr := rootCmd.Execute()
	// Restore stdout before reporting anything.
	w.Close()
	os.Stdout = saved
	//
	out, readErr := io.ReadAll(r)
	if readErr != nil {
		t.Fatal(readErr)
	} else if execErr != nil {
		t.Fatalf("%v: %v", args, execErr)
	}
	//
	return string(out)
}

func checkContains(t *testing.T, out string, expected string) {
	t.Helper()
	//
	if !strings.Contains(out, expected) {
		t.Errorf("output missing %q:\n%s", expected, out)
	}
}
