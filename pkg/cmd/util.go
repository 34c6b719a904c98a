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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/genomesim/go-transposon/pkg/genome"
	"github.com/genomesim/go-transposon/pkg/sim"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected unsigned 64bit integer flag, or panic if an
// error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse the backing representation flag, exiting on an unknown name.
func getKindFlag(cmd *cobra.Command) genome.Kind {
	kind, err := genome.ParseKind(GetString(cmd, "backend"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return kind
}

// Parse a script file, exiting on failure.
func readScriptFile(filename string) sim.Script {
	file, err := os.Open(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer file.Close()
	//
	script, err := sim.ParseScript(file)
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(2)
	}
	//
	return script
}

// Print a genome rendering, wrapped to the width of the terminal when stdout
// is one.
func printGenome(rendered string) {
	width := 80
	//
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}
	//
	for len(rendered) > width {
		fmt.Println(rendered[:width])
		rendered = rendered[width:]
	}
	//
	fmt.Println(rendered)
}

// Print a simulation summary.
func printStats(stats sim.Stats) {
	fmt.Printf("applied %d operations (%d inserts, %d copies, %d misses, %d disables)\n",
		stats.Ops, stats.Inserted, stats.Copied, stats.CopyMisses, stats.Disabled)
	fmt.Printf("final length %d, %d active elements\n", stats.Length, stats.Active)
	fmt.Printf("symbols: %d empty, %d active, %d disabled (%.1f%% covered)\n",
		stats.EmptySymbols, stats.ActiveSymbols, stats.DisabledSymbols, 100*stats.CoveredFraction())
}
