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

import (
	"strconv"
	"strings"
)

// classifyAtom turns a raw atom token into a number node (Complex
// tried first, per the grammar) or a symbol node.
func classifyAtom(text string, pos Position) Node {
	if n, ok := parseComplex(text, pos); ok {
		return n
	}
	if n, ok := parseReal(text, pos); ok {
		return n
	}
	return Node{Kind: NodeSymbol, Text: text, Pos: pos}
}

// parseComplex recognizes "<real>j<real>" or "<real>J<real>".
func parseComplex(text string, pos Position) (Node, bool) {
	idx := -1
	for i, r := range text {
		if r == 'j' || r == 'J' {
			idx = i
			break
		}
	}
	if idx <= 0 || idx >= len(text)-1 {
		return Node{}, false
	}
	realNode, ok := parseReal(text[:idx], pos)
	if !ok {
		return Node{}, false
	}
	imagNode, ok := parseReal(text[idx+1:], pos)
	if !ok {
		return Node{}, false
	}
	return Node{Kind: NodeComplex, Real: &realNode, Imag: &imagNode, Pos: pos}, true
}

// parseReal recognizes an integer, float, or fraction (no sign of
// 'j'/'J' allowed at this level).
func parseReal(text string, pos Position) (Node, bool) {
	if text == "" {
		return Node{}, false
	}
	if slash := strings.IndexByte(text, '/'); slash > 0 && slash < len(text)-1 {
		num, ok1 := parseIntStrict(text[:slash])
		den, ok2 := parseIntStrict(text[slash+1:])
		if ok1 && ok2 {
			return Node{Kind: NodeFraction, Num: num, Den: den, Pos: pos}, true
		}
		return Node{}, false
	}
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		intPart := text[:dot]
		fracPart := text[dot+1:]
		if intPart == "" || fracPart == "" {
			return Node{}, false
		}
		if intPart == "-" {
			return Node{}, false
		}
		if _, ok := parseIntStrict(intPart); !ok {
			return Node{}, false
		}
		if !allDigits(fracPart) {
			return Node{}, false
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Node{}, false
		}
		return Node{Kind: NodeFloat, Float: f, Pos: pos}, true
	}
	if n, ok := parseIntStrict(text); ok {
		return Node{Kind: NodeInteger, Int: n, Pos: pos}, true
	}
	return Node{}, false
}

// parseIntStrict accepts an optional leading '-' followed by one or
// more decimal digits, nothing else.
func parseIntStrict(text string) (int64, bool) {
	if text == "" {
		return 0, false
	}
	body := text
	if body[0] == '-' {
		body = body[1:]
	}
	if body == "" || !allDigits(body) {
		return 0, false
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
