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

var replayCmd = &cobra.Command{
	Use:   "replay [flags] script_file",
	Short: "replay a recorded operation script.",
	Long: `Parse a script file and apply its operations to a genome of the chosen
	 backing representation, printing the final genome rendering.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		kind := getKindFlag(cmd)
		script := readScriptFile(args[0])
		//
		g, stats, err := sim.Run(kind, script)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		printStats(stats)
		printGenome(g.String())
		//
		fmt.Printf("active: %v\n", g.ActiveTEs())
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringP("backend", "b", "slice", "backing representation (slice|ring)")
}
