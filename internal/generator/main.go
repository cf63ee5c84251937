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
	"os"

	"github.com/consensys/go-static/pkg/gen"
	"github.com/consensys/go-static/pkg/schema"
	log "github.com/sirupsen/logrus"
)

// Schema from which the demo package is generated.
const schemaFile = "../../testdata/transit.yaml"

//go:generate go run main.go
func main() {
	log.SetLevel(log.DebugLevel)
	//
	s, err := schema.Read(schemaFile)
	assertNoError(err, "reading \"%s\"", schemaFile)
	//
	program, errs, err := s.Resolve()
	assertNoError(err, "resolving \"%s\"", schemaFile)
	//
	for _, e := range errs {
		fmt.Println(e.Error())
	}
	//
	if len(errs) > 0 {
		os.Exit(1)
	}
	// Generated code lives in the demo package
	program.Package = "demo"
	//
	_, err = gen.Generate(program, "../demo", gen.Options{Tests: true, Year: 2025})
	assertNoError(err, "generating package \"%s\"", program.Package)
}

func assertNoError(err error, format string, args ...any) {
	if err != nil {
		fmt.Printf("error %s: %s\n", fmt.Sprintf(format, args...), err)
		os.Exit(1)
	}
}
