// Copyright Consensys Software Inc.
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
	"io"
	"os"
	"path/filepath"

	"github.com/consensys/go-static/pkg/gen"
	"github.com/consensys/go-static/pkg/schema"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] schema_file(s)",
	Short: "Check one or more schemas are valid.",
	Long: `Check one or more schemas are valid.  If an output directory is given,
	then also check the packages previously generated there are up-to-date
	with respect to their schemas.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		outDir := GetString(cmd, "output")
		programs := ReadSchemaFiles(args)
		//
		if outDir != "" && checkGenerated(os.Stdout, programs, outDir) > 0 {
			os.Exit(1)
		}
	},
}

// Check whether the package generated for each program is up-to-date, returning
// the number which are not.
func checkGenerated(out io.Writer, programs []*schema.Program, outDir string) uint {
	var stale uint
	//
	for _, program := range programs {
		dir := filepath.Join(outDir, program.Package)
		digest, err := gen.ReadDigest(dir)
		//
		switch {
		case err != nil:
			fmt.Fprintf(out, "%s: missing (%s)\n", program.Package, err)
			stale++
		case digest != program.Digest:
			fmt.Fprintf(out, "%s: stale\n", program.Package)
			stale++
		default:
			fmt.Fprintf(out, "%s: ok\n", program.Package)
		}
	}
	//
	return stale
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("output", "o", "", "check packages previously generated in this directory.")
}
