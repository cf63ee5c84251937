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
	"strings"

	"github.com/consensys/go-static/pkg/schema"
	"github.com/consensys/go-static/pkg/table"
	"github.com/consensys/go-static/pkg/util/termio"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] schema_file(s)",
	Short: "Inspect the layout of tables and the paths of graphs.",
	Long: `Inspect the layout of tables and the paths of graphs in one or more
	schemas.  This shows how entries are grouped into regions, the composite
	index of every key, and the shortest path between every reachable pair.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		colour := GetFlag(cmd, "color") && termio.IsTerminal(os.Stdout)
		width := termio.TerminalWidth(os.Stdout)
		//
		for _, program := range ReadSchemaFiles(args) {
			inspectProgram(os.Stdout, program, inspectConfig{colour, width})
		}
	},
}

type inspectConfig struct {
	// Use ANSI escapes for highlighting.
	colour bool
	// Maximum width of the output.
	width uint
}

func inspectProgram(out io.Writer, program *schema.Program, cfg inspectConfig) {
	fmt.Fprintf(out, "package %s (schema %s)\n", program.Package, abbreviate(program.Digest))
	//
	for _, t := range program.Tables {
		fmt.Fprintf(out, "\ntable %s:\n", t.Name)
		printTable(out, regionTable(t.Layout), cfg)
		fmt.Fprintln(out)
		printTable(out, keyTable(t.Layout), cfg)
	}
	//
	for _, g := range program.Graphs {
		fmt.Fprintf(out, "\ngraph %s (%s):\n", g.Name, g.Kind)
		printTable(out, pathTable(g), cfg)
	}
}

func printTable(out io.Writer, tp *termio.TablePrinter, cfg inspectConfig) {
	if tp.Height() > 0 {
		tp.SetRowEscape(0, termio.BoldAnsiEscape())
	}
	//
	tp.AnsiEscapes(cfg.colour)
	tp.SetMaxWidths(max(cfg.width/2, 8))
	tp.Print(out)
}

// Summarise the regions of a layout.
func regionTable(layout *table.Layout) *termio.TablePrinter {
	var (
		shapes = layout.Shapes()
		tp     = termio.NewTablePrinter(5, uint(1+len(shapes)))
	)
	//
	tp.SetRow(0, "region", "count", "stride", "bytes", "entries")
	//
	for i, shape := range shapes {
		group := layout.Groups().Get(uint(i))
		names := make([]string, 0, group.Size())
		//
		for _, e := range group.Items() {
			names = append(names, e.Name)
		}
		//
		tp.SetRow(uint(i+1), fmt.Sprintf("%d", i), fmt.Sprintf("%d", shape.Count), fmt.Sprintf("%d", shape.Stride),
			fmt.Sprintf("%d", shape.Count*shape.Stride), strings.Join(names, ", "))
	}
	//
	return tp
}

// Summarise the keys of a layout, in key order.
func keyTable(layout *table.Layout) *termio.TablePrinter {
	var (
		entries = make([]table.Entry, layout.Size())
		tp      = termio.NewTablePrinter(6, 1+layout.Size())
	)
	//
	for _, e := range layout.Entries().Items() {
		entries[e.Key] = e
	}
	//
	tp.SetRow(0, "key", "name", "type", "region", "slot", "id")
	//
	for _, e := range entries {
		region, slot := table.SplitIndex(layout.Id(e.Key))
		vtype := e.Type.Name
		//
		if e.IsArray() {
			vtype = fmt.Sprintf("[%d]%s", e.Dim, vtype)
		}
		//
		tp.SetRow(e.Key+1, fmt.Sprintf("%d", e.Key), e.Name, vtype, fmt.Sprintf("%d", region), fmt.Sprintf("%d", slot),
			fmt.Sprintf("0x%08x", layout.Id(e.Key)))
	}
	//
	return tp
}

// Summarise the shortest paths of a graph.
func pathTable(g schema.Graph) *termio.TablePrinter {
	var (
		paths = g.Graph.Compile()
		tp    = termio.NewTablePrinter(4, 1+paths.Size())
	)
	//
	tp.SetRow(0, "from", "to", "length", "path")
	//
	for i := range paths.Size() {
		e := paths.Entry(i)
		tp.SetRow(i+1, e.From, e.To, fmt.Sprintf("%d", e.Path.Size()), e.Path.String())
	}
	//
	return tp
}

func abbreviate(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	//
	return digest
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("color", true, "use colour when writing to a terminal.")
}
