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
package schema

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"lukechampine.com/blake3"
)

// NodeKind identifies the Go type used for the nodes of a graph in generated
// code.
type NodeKind string

const (
	// ByteNode indicates nodes are single ASCII characters, such as 'A'.
	ByteNode NodeKind = "byte"
	// RuneNode indicates nodes are single unicode characters.
	RuneNode NodeKind = "rune"
	// IntNode indicates nodes are integers, such as 42.
	IntNode NodeKind = "int"
	// StringNode indicates nodes are strings.  This is the default.
	StringNode NodeKind = "string"
)

// Schema is the declaration of a set of graphs and tables which are to be
// translated together into a single Go package.
type Schema struct {
	// Package is the name of the generated package.
	Package string `yaml:"package"`
	// Graphs declared by this schema.
	Graphs []GraphDecl `yaml:"graphs"`
	// Tables declared by this schema.
	Tables []TableDecl `yaml:"tables"`
	// filename this schema was read from.
	filename string
	// digest of the source text of this schema.
	digest string
}

// GraphDecl declares a graph as a set of chains, such as "A->B->C".
type GraphDecl struct {
	Name   string   `yaml:"name"`
	Nodes  NodeKind `yaml:"nodes,omitempty"`
	Chains []string `yaml:"chains"`
}

// TableDecl declares a table as a set of entries.
type TableDecl struct {
	Name    string      `yaml:"name"`
	Entries []EntryDecl `yaml:"entries"`
}

// EntryDecl declares a single entry of a table.  Type is either a predeclared
// Go type (e.g. "float64"), or an opaque type whose size and alignment are
// given explicitly.  An omitted dimension indicates a scalar.
type EntryDecl struct {
	Key   uint   `yaml:"key"`
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Dim   *uint  `yaml:"dim,omitempty"`
	Size  uint   `yaml:"size,omitempty"`
	Align uint   `yaml:"align,omitempty"`
}

// Read a schema from a given file.
func Read(filename string) (*Schema, error) {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		return nil, err
	}
	//
	return Parse(filename, bytes)
}

// Parse a schema from the given source text.  The filename is used only for
// reporting errors.
func Parse(filename string, text []byte) (*Schema, error) {
	var schema Schema
	//
	if err := yaml.Unmarshal(text, &schema); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	schema.filename = filename
	schema.digest = Digest(text)
	//
	return &schema, nil
}

// Filename returns the name of the file this schema was read from.
func (p *Schema) Filename() string {
	return p.filename
}

// Digest returns the fingerprint of the source text of this schema, as
// embedded into generated code.
func (p *Schema) Digest() string {
	return p.digest
}

// Digest computes the fingerprint of some schema source text.
func Digest(text []byte) string {
	hash := blake3.Sum256(text)
	return hex.EncodeToString(hash[:])
}
