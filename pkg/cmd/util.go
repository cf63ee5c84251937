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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/consensys/go-static/pkg/schema"
	"github.com/consensys/go-static/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
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

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt64 gets an expected 64-bit integer, or panic if an error arises.
func GetInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure log level
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// ExpandSchemaFiles expands zero or more glob patterns (e.g. "schemas/**/*.yaml")
// into the schema files they match.  A pattern which matches nothing is an
// error.
func ExpandSchemaFiles(patterns []string) ([]string, error) {
	var filenames []string
	//
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pattern, err)
		} else if len(matches) == 0 {
			return nil, fmt.Errorf("%s: no matching schema files", pattern)
		}
		//
		filenames = append(filenames, matches...)
	}
	//
	return filenames, nil
}

// ReadSchemaFiles reads and resolves zero or more schema files, whose names may
// be given as glob patterns.  If any schema fails to read or resolve, then all
// errors are reported and this does not return.
func ReadSchemaFiles(patterns []string) []*schema.Program {
	var (
		programs []*schema.Program
		failed   bool
	)
	//
	filenames, err := ExpandSchemaFiles(patterns)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	for _, filename := range filenames {
		var serrs *SyntaxErrors
		//
		program, err := ReadSchemaFile(filename)
		//
		if errors.As(err, &serrs) {
			for i := range serrs.Errors {
				printSyntaxError(&serrs.Errors[i])
			}
			//
			failed = true
		} else if err != nil {
			fmt.Println(err)
			//
			failed = true
		} else {
			log.Debugf("resolved %s (package %s)", filename, program.Package)
			programs = append(programs, program)
		}
	}
	//
	if failed {
		os.Exit(2)
	}
	//
	return programs
}

// SyntaxErrors groups the syntax errors arising from a single schema file.
type SyntaxErrors struct {
	Filename string
	Errors   []source.SyntaxError
}

func (p *SyntaxErrors) Error() string {
	return fmt.Sprintf("%s: %d syntax error(s)", p.Filename, len(p.Errors))
}

// ReadSchemaFile reads and resolves a single schema file.
func ReadSchemaFile(filename string) (*schema.Program, error) {
	s, err := schema.Read(filename)
	if err != nil {
		return nil, err
	}
	//
	program, errs, err := s.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	} else if len(errs) > 0 {
		return nil, &SyntaxErrors{filename, errs}
	}
	//
	return program, nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}
