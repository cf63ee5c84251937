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
package gen

import (
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/consensys/bavard"
	"github.com/consensys/go-static/pkg/schema"
	"github.com/consensys/go-static/pkg/util"
	log "github.com/sirupsen/logrus"
)

const copyrightHolder = "Consensys Software Inc."

//go:embed templates/*.tmpl
var templates embed.FS

// Options configures code generation.
type Options struct {
	// Tests indicates whether tests should be generated alongside the code.
	Tests bool
	// Year for the copyright notice of generated files.  If zero, the current
	// year is used.
	Year int
}

// Files which may be generated, along with the templates they are rendered
// from.  Observe that files for graphs (resp. tables) are only generated when
// there is at least one graph (resp. table).
const (
	digestFile     = "digest.go"
	graphsFile     = "graphs.go"
	graphsTestFile = "graphs_test.go"
	tablesFile     = "tables.go"
	tablesTestFile = "tables_test.go"
)

// Generate renders the Go source for a resolved program into a given
// directory, returning the names of all files written.
func Generate(program *schema.Program, outDir string, opts Options) ([]string, error) {
	stats := util.NewPerfStats()
	plan, err := NewPlan(program)
	//
	if err != nil {
		return nil, err
	}
	//
	files, err := Render(plan, outDir, opts)
	stats.Log(fmt.Sprintf("generating package %s", program.Package))
	//
	return files, err
}

// Render the Go source for a plan into a given directory, returning the names
// of all files written.
func Render(plan *Plan, outDir string, opts Options) ([]string, error) {
	var entries []bavard.Entry
	//
	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}
	//
	tmplDir, err := unpackTemplates()
	if err != nil {
		return nil, err
	}
	//
	defer os.RemoveAll(tmplDir)
	//
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	//
	entries = append(entries, entry(outDir, digestFile, "digest.go.tmpl"))
	//
	if len(plan.Graphs) > 0 {
		entries = append(entries, entry(outDir, graphsFile, "graph.go.tmpl"))
		//
		if opts.Tests {
			entries = append(entries, entry(outDir, graphsTestFile, "graph.test.go.tmpl"))
		}
	}
	//
	if len(plan.Tables) > 0 {
		entries = append(entries, entry(outDir, tablesFile, "table.go.tmpl"))
		//
		if opts.Tests {
			entries = append(entries, entry(outDir, tablesTestFile, "table.test.go.tmpl"))
		}
	}
	//
	bgen := bavard.NewBatchGenerator(copyrightHolder, year, "go-static")
	//
	if err := bgen.Generate(plan, plan.Package, tmplDir, entries...); err != nil {
		return nil, fmt.Errorf("package %s: %w", plan.Package, err)
	}
	// format generated files
	files := make([]string, len(entries))
	//
	for i, e := range entries {
		if err := formatFile(e.File); err != nil {
			return nil, err
		}
		//
		log.Debugf("wrote %s", e.File)
		files[i] = e.File
	}
	//
	return files, nil
}

func entry(outDir string, file string, template string) bavard.Entry {
	return bavard.Entry{
		File:      filepath.Join(outDir, file),
		Templates: []string{template},
	}
}

// Templates are read by bavard from disk, hence they are written out to a
// temporary directory.
func unpackTemplates() (string, error) {
	dir, err := os.MkdirTemp("", "go-static-templates")
	if err != nil {
		return "", err
	}
	//
	names, err := templates.ReadDir("templates")
	if err != nil {
		return "", err
	}
	//
	for _, name := range names {
		bytes, err := templates.ReadFile("templates/" + name.Name())
		if err != nil {
			return "", err
		}
		//
		if err := os.WriteFile(filepath.Join(dir, name.Name()), bytes, 0o600); err != nil {
			return "", err
		}
	}
	//
	return dir, nil
}

func formatFile(filename string) error {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	//
	formatted, err := format.Source(bytes)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	//
	return os.WriteFile(filename, formatted, 0o644)
}

var digestPattern = regexp.MustCompile(`SchemaDigest = "([0-9a-f]*)"`)

// ReadDigest extracts the schema digest from a previously generated package
// directory.  This can be compared against the digest of the current schema to
// determine whether the generated code is stale.
func ReadDigest(outDir string) (string, error) {
	bytes, err := os.ReadFile(filepath.Join(outDir, digestFile))
	if err != nil {
		return "", err
	}
	//
	matches := digestPattern.FindSubmatch(bytes)
	if matches == nil {
		return "", fmt.Errorf("%s: no schema digest", filepath.Join(outDir, digestFile))
	}
	//
	return string(matches[1]), nil
}
