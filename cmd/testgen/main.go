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
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"strings"

	util "github.com/consensys/go-static/pkg/cmd"
	"github.com/consensys/go-static/pkg/schema"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("nodes", 6, "Number of nodes per graph")
	rootCmd.Flags().Uint("chains", 4, "Number of chains per graph")
	rootCmd.Flags().Uint("max-chain", 4, "Maximum number of nodes in a chain")
	rootCmd.Flags().Uint("count", 8, "Number of schemas to generate")
	rootCmd.Flags().Int64("seed", 1, "Seed for the random number generator")
	rootCmd.Flags().String("dir", "testdata", "Directory to write schemas into")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Test generation utility for go-static.",
	Long: `Generate random schemas, each declaring a single graph and a single
table, for use as test inputs.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg TestGenConfig
		//
		if util.GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg.nodes = util.GetUint(cmd, "nodes")
		cfg.chains = util.GetUint(cmd, "chains")
		cfg.maxChain = util.GetUint(cmd, "max-chain")
		seed := util.GetInt64(cmd, "seed")
		count := util.GetUint(cmd, "count")
		dir := util.GetString(cmd, "dir")
		//
		if cfg.nodes == 0 || cfg.maxChain < 2 {
			fmt.Println("at least one node, and chains of at least two nodes, are required")
			os.Exit(2)
		}
		//
		rng := rand.New(rand.NewSource(seed))
		//
		for i := range count {
			name := fmt.Sprintf("random_%d", i)
			s := generateSchema(cfg, name, rng)
			//
			if err := writeSchema(path.Join(dir, name+".yaml"), s); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	nodes    uint
	chains   uint
	maxChain uint
}

var valueTypes = []string{"bool", "byte", "int16", "int32", "uint64", "float32", "float64"}

// Generate a schema containing one random graph and one random table.
func generateSchema(cfg TestGenConfig, name string, rng *rand.Rand) schema.Schema {
	var (
		chains  = make([]string, cfg.chains)
		entries = make([]schema.EntryDecl, cfg.nodes)
	)
	//
	for i := range chains {
		n := 2 + rng.Intn(int(cfg.maxChain-1))
		nodes := make([]string, n)
		//
		for j := range nodes {
			nodes[j] = fmt.Sprintf("N%d", rng.Intn(int(cfg.nodes)))
		}
		//
		chains[i] = strings.Join(nodes, "->")
	}
	// Keys are a random permutation, to exercise out-of-order declarations.
	for i, key := range rng.Perm(len(entries)) {
		dim := uint(1 + rng.Intn(3))
		entries[i] = schema.EntryDecl{
			Key:  uint(key),
			Name: fmt.Sprintf("E%d", key),
			Type: valueTypes[rng.Intn(len(valueTypes))],
			Dim:  &dim,
		}
	}
	//
	log.Debugf("%s: %s", name, strings.Join(chains, ", "))
	//
	return schema.Schema{
		Package: strings.ReplaceAll(name, "_", ""),
		Graphs:  []schema.GraphDecl{{Name: "Graph", Chains: chains}},
		Tables:  []schema.TableDecl{{Name: "Table", Entries: entries}},
	}
}

func writeSchema(filename string, s schema.Schema) error {
	bytes, err := yaml.Marshal(&s)
	if err != nil {
		return err
	}
	//
	log.Infof("writing %s", filename)
	//
	return os.WriteFile(filename, bytes, 0644)
}
