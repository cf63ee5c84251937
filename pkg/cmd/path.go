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
	"os"

	"github.com/consensys/go-static/pkg/graph"
	"github.com/consensys/go-static/pkg/schema"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path [flags] schema_file graph from to",
	Short: "Determine the shortest path between two nodes of a graph.",
	Long: `Determine the shortest path between two nodes of a graph declared in a
	schema, without generating any code.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 4 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		programs := ReadSchemaFiles(args[0:1])
		//
		for _, program := range programs {
			path, err := shortestPath(program, args[1], args[2], args[3])
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			} else if path.IsEmpty() {
				fmt.Printf("%s: no path from %s to %s\n", program.Package, args[2], args[3])
			} else {
				fmt.Printf("%s: %s\n", program.Package, path.String())
			}
		}
	},
}

// Find the shortest path between two nodes of a named graph.
func shortestPath(program *schema.Program, name string, from string, to string) (graph.PathRef[string], error) {
	for _, g := range program.Graphs {
		if g.Name == name {
			return g.Graph.Compile().GetShortestPath(from, to), nil
		}
	}
	//
	return graph.PathRef[string]{}, fmt.Errorf("unknown graph \"%s\"", name)
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
