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
	"go/token"
	"os"
	"path/filepath"

	"github.com/consensys/go-static/pkg/gen"
	"github.com/consensys/go-static/pkg/schema"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] schema_file(s)",
	Short: "generate Go source for the graphs and tables of one or more schemas.",
	Long: `Generate Go source for the graphs and tables of one or more schemas.
	Each schema is written as a separate package beneath the output directory.
	Schema files can be given as glob patterns, such as "schemas/**/*.yaml".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		outDir := GetString(cmd, "output")
		pkgname := GetString(cmd, "package")
		opts := gen.Options{Tests: GetFlag(cmd, "tests")}
		// Parse schemas
		programs := ReadSchemaFiles(args)
		//
		if pkgname != "" && len(programs) != 1 {
			fmt.Println("package name can only be given for a single schema")
			os.Exit(2)
		}
		//
		for _, program := range programs {
			if err := generatePackage(program, outDir, pkgname, opts); err != nil {
				fmt.Println(err.Error())
				os.Exit(2)
			}
		}
	},
}

// Generate a single package, optionally overriding the package name given in
// its schema.
func generatePackage(program *schema.Program, outDir string, pkgname string, opts gen.Options) error {
	if pkgname != "" {
		if !token.IsIdentifier(pkgname) {
			return fmt.Errorf("%w: package \"%s\"", schema.ErrInvalidName, pkgname)
		}
		//
		program.Package = pkgname
	}
	//
	dir := filepath.Join(outDir, program.Package)
	files, err := gen.Generate(program, dir, opts)
	//
	if err != nil {
		return err
	}
	//
	log.Infof("generated package %s (%d files)", program.Package, len(files))
	//
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", ".", "specify output directory.")
	generateCmd.Flags().StringP("package", "p", "", "override the package name of the schema.")
	generateCmd.Flags().Bool("tests", false, "generate tests alongside each package.")
}
