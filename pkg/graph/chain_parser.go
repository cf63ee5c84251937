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
package graph

import (
	"github.com/consensys/go-static/pkg/util/collection/typelist"
	"github.com/consensys/go-static/pkg/util/source"
	"github.com/consensys/go-static/pkg/util/source/lex"
)

const (
	endOf  uint = 0
	wspace uint = 1
	arrow  uint = 2
	ident  uint = 3
)

var identChar = lex.Or(lex.Letter(), lex.Within('0', '9'), lex.Unit('_'))

var chainRules = []lex.LexRule[rune]{
	lex.Rule(lex.String("->"), arrow),
	lex.Rule(lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r'))), wspace),
	lex.Rule(lex.SequenceNullableLast(identChar, lex.Many(identChar)), ident),
	lex.Rule(lex.Eof[rune](), endOf),
}

// ParseChain parses a chain declaration of the form "N0 -> N1 -> ... -> Nk",
// returning the sequence of nodes it names.  Node identifiers consist of
// (unicode) letters, digits and underscores.  A chain must name at least one node.
func ParseChain(srcfile *source.File) (typelist.List[string], *source.SyntaxError) {
	var (
		contents = srcfile.Contents()
		lexer    = lex.NewLexer(contents, chainRules...)
		tokens   = lexer.Collect(wspace)
		nodes    []string
	)
	// Check whether lexing got stuck on an unknown character
	if lexer.Remaining() > 0 {
		start := len(contents) - int(lexer.Remaining())
		return typelist.List[string]{}, srcfile.SyntaxError(source.NewSpan(start, start+1), "unknown character")
	}
	//
	for i, token := range tokens {
		// Identifiers and arrows alternate, starting (and ending) with an
		// identifier.
		expected := ident
		if i%2 == 1 {
			expected = arrow
		}
		//
		switch {
		case token.Kind == endOf && i == 0:
			return typelist.List[string]{}, srcfile.SyntaxError(token.Span, "empty chain")
		case token.Kind == endOf && expected == ident:
			return typelist.List[string]{}, srcfile.SyntaxError(token.Span, "expected node after \"->\"")
		case token.Kind == endOf:
			return typelist.NewList(nodes...), nil
		case token.Kind != expected && expected == ident:
			return typelist.List[string]{}, srcfile.SyntaxError(token.Span, "expected node")
		case token.Kind != expected:
			return typelist.List[string]{}, srcfile.SyntaxError(token.Span, "expected \"->\"")
		case token.Kind == ident:
			nodes = append(nodes, srcfile.Text(token.Span))
		}
	}
	// Unreachable, since the lexer always finishes with endOf.
	return typelist.NewList(nodes...), nil
}

// ParseChains parses zero or more chain declarations, returning the edges they
// declare in declaration order (duplicates included).  All syntax errors found
// are reported.
func ParseChains(srcfiles ...*source.File) ([]typelist.List[Edge[string]], []source.SyntaxError) {
	var (
		chains []typelist.List[Edge[string]]
		errors []source.SyntaxError
	)
	//
	for _, srcfile := range srcfiles {
		nodes, err := ParseChain(srcfile)
		//
		if err != nil {
			errors = append(errors, *err)
		} else {
			chains = append(chains, typelist.ExportTo(nodes, Chain[string]))
		}
	}
	//
	return chains, errors
}
