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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/genomesim/go-transposon/pkg/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [flags]",
	Short: "run a random transposition simulation.",
	Long: `Generate a seeded random sequence of insert/copy/disable operations and
	 apply it to a genome of the chosen backing representation, reporting
	 summary statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		kind := getKindFlag(cmd)
		seed := GetUint64(cmd, "seed")
		//
		cfg := sim.DefaultScriptConfig()
		cfg.Size = GetUint(cmd, "size")
		cfg.Ops = GetUint(cmd, "ops")
		cfg.MaxLength = GetUint(cmd, "max-length")
		//
		script := sim.RandomScript(cfg, seed)
		//
		g, stats, err := sim.Run(kind, script)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		printStats(stats)
		//
		if GetFlag(cmd, "print") {
			printGenome(g.String())
		}
		//
		if output := GetString(cmd, "output"); output != "" {
			writeScriptFile(script, output)
		}
	},
}

func writeScriptFile(script sim.Script, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	defer file.Close()
	//
	if _, err := script.WriteTo(file); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringP("backend", "b", "slice", "backing representation (slice|ring)")
	simulateCmd.Flags().Uint("size", 50, "initial genome size")
	simulateCmd.Flags().Uint("ops", 100, "number of operations to apply")
	simulateCmd.Flags().Uint("max-length", 5, "largest element length to insert")
	simulateCmd.Flags().Uint64("seed", 0, "random seed")
	simulateCmd.Flags().StringP("output", "o", "", "write the generated script to a file")
	simulateCmd.Flags().Bool("print", false, "print the final genome")
}
