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

package parser

import "strconv"

// Position locates a token in the source text.
type Position struct {
	Line, Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// NodeKind identifies the production a Node was built from.
type NodeKind int

const (
	NodeInteger NodeKind = iota
	NodeFloat
	NodeFraction
	NodeComplex
	NodeSymbol
	NodeString
	NodeComment
	NodeList
	NodeDottedList
	NodeCons
	NodeVector
	NodeQuote
	NodeQuasiquote
	NodeUnquote
	NodeUnquoteSplice
)

// Node is one production of the grammar. Only the fields relevant to
// Kind are populated; the rest are zero.
type Node struct {
	Kind NodeKind
	Pos  Position

	Int   int64   // NodeInteger
	Float float64 // NodeFloat
	Num   int64   // NodeFraction numerator
	Den   int64   // NodeFraction denominator
	Real  *Node   // NodeComplex real part (Integer/Float/Fraction)
	Imag  *Node   // NodeComplex imaginary part

	Text string // NodeSymbol name, NodeString contents, NodeComment text

	Items []Node // NodeList, NodeVector: elements. NodeDottedList: all but the tail. NodeCons: exactly two.
	Tail  *Node  // NodeDottedList: the final (non-nil) cdr element

	Expr *Node // the operand of a prefix form (Quote/Quasiquote/Unquote/UnquoteSplice)
}
