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

var compareCmd = &cobra.Command{
	Use:   "compare [flags]",
	Short: "check the two backing representations agree.",
	Long: `Run seeded random scripts against a slice-backed and a ring-backed genome
	 in lockstep, comparing renderings and active element sets after every
	 operation.  Any divergence is reported and fails the run.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg := sim.DefaultScriptConfig()
		cfg.Size = GetUint(cmd, "size")
		cfg.Ops = GetUint(cmd, "ops")
		cfg.MaxLength = GetUint(cmd, "max-length")
		//
		seed := GetUint64(cmd, "seed")
		runs := GetUint64(cmd, "runs")
		//
		for i := uint64(0); i < runs; i++ {
			if err := sim.CheckEquivalence(sim.RandomScript(cfg, seed+i)); err != nil {
				fmt.Printf("seed %d: %s\n", seed+i, err)
				os.Exit(1)
			}
			//
			log.Debugf("seed %d: representations agree", seed+i)
		}
		//
		fmt.Printf("%d runs, representations agree\n", runs)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Uint("size", 50, "initial genome size")
	compareCmd.Flags().Uint("ops", 100, "number of operations per run")
	compareCmd.Flags().Uint("max-length", 5, "largest element length to insert")
	compareCmd.Flags().Uint64("seed", 0, "random seed of the first run")
	compareCmd.Flags().Uint64("runs", 10, "number of seeded runs")
}
