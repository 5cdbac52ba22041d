// This file is part of majestic - https://github.com/Minerva-System/majestic-refactored
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser_test

import (
	"testing"

	"github.com/Minerva-System/majestic-refactored/parser"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) parser.Node {
	t.Helper()
	nodes, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestNumbers(t *testing.T) {
	n := parseOne(t, "42")
	require.Equal(t, parser.NodeInteger, n.Kind)
	require.Equal(t, int64(42), n.Int)

	n = parseOne(t, "-7")
	require.Equal(t, parser.NodeInteger, n.Kind)
	require.Equal(t, int64(-7), n.Int)

	n = parseOne(t, "3.14")
	require.Equal(t, parser.NodeFloat, n.Kind)
	require.InDelta(t, 3.14, n.Float, 1e-9)

	n = parseOne(t, "1/2")
	require.Equal(t, parser.NodeFraction, n.Kind)
	require.Equal(t, int64(1), n.Num)
	require.Equal(t, int64(2), n.Den)

	n = parseOne(t, "2j3")
	require.Equal(t, parser.NodeComplex, n.Kind)
	require.Equal(t, parser.NodeInteger, n.Real.Kind)
	require.Equal(t, int64(2), n.Real.Int)
	require.Equal(t, int64(3), n.Imag.Int)
}

func TestRejectsLeadingDotFloat(t *testing.T) {
	// "-.5" has no digit before the dot, so it does not scan as a
	// single float token: "-" stands alone as a symbol and the bare
	// '.' that follows is a syntax error, recovered past to reach "5".
	nodes, err := parser.Parse("-.5")
	require.Error(t, err)
	var serr parser.ErrSyntax
	require.ErrorAs(t, err, &serr)
	require.Len(t, nodes, 2)
	require.Equal(t, parser.NodeSymbol, nodes[0].Kind)
	require.Equal(t, "-", nodes[0].Text)
	require.Equal(t, parser.NodeInteger, nodes[1].Kind)
	require.Equal(t, int64(5), nodes[1].Int)
}

func TestSymbol(t *testing.T) {
	n := parseOne(t, "foo-bar?")
	require.Equal(t, parser.NodeSymbol, n.Kind)
	require.Equal(t, "foo-bar?", n.Text)
}

func TestList(t *testing.T) {
	n := parseOne(t, "(1 2 3)")
	require.Equal(t, parser.NodeList, n.Kind)
	require.Len(t, n.Items, 3)
}

func TestDottedList(t *testing.T) {
	n := parseOne(t, "(1 2 . 3)")
	require.Equal(t, parser.NodeDottedList, n.Kind)
	require.Len(t, n.Items, 2)
	require.Equal(t, int64(3), n.Tail.Int)
}

func TestCons(t *testing.T) {
	n := parseOne(t, "(1 . 2)")
	require.Equal(t, parser.NodeCons, n.Kind)
	require.Len(t, n.Items, 2)
}

func TestPrefixes(t *testing.T) {
	n := parseOne(t, "'(a b c)")
	require.Equal(t, parser.NodeQuote, n.Kind)
	require.Equal(t, parser.NodeList, n.Expr.Kind)

	n = parseOne(t, "`(foo ,@bar)")
	require.Equal(t, parser.NodeQuasiquote, n.Kind)
	inner := n.Expr
	require.Equal(t, parser.NodeList, inner.Kind)
	require.Len(t, inner.Items, 2)
	require.Equal(t, parser.NodeUnquoteSplice, inner.Items[1].Kind)
	require.Equal(t, "bar", inner.Items[1].Expr.Text)
}

func TestComment(t *testing.T) {
	nodes, err := parser.Parse("; a comment\n42")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Equal(t, parser.NodeComment, nodes[0].Kind)
	require.Equal(t, parser.NodeInteger, nodes[1].Kind)
}

func TestStringRecognised(t *testing.T) {
	n := parseOne(t, `"hello"`)
	require.Equal(t, parser.NodeString, n.Kind)
	require.Equal(t, "hello", n.Text)
}

func TestVector(t *testing.T) {
	n := parseOne(t, "[1 2]")
	require.Equal(t, parser.NodeVector, n.Kind)
	require.Len(t, n.Items, 2)
}

func TestErrorRecovery(t *testing.T) {
	nodes, err := parser.Parse("(1 2")
	require.Error(t, err)
	var serr parser.ErrSyntax
	require.ErrorAs(t, err, &serr)
	require.NotEmpty(t, serr)
	require.Empty(t, nodes)
}
