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

type parser struct {
	s    *scanner
	tok  token
	errs ErrSyntax
}

func (p *parser) advance() { p.tok = p.s.next() }

func (p *parser) error(pos Position, msg string) {
	p.errs = append(p.errs, SyntaxError{Pos: pos, Msg: msg})
}

func (p *parser) abort() bool { return len(p.errs) >= maxErrors }

// Parse reads the whole of src and returns every top-level expression
// node recovered (including comment nodes), plus an ErrSyntax if any
// diagnostics were recorded. A non-nil, non-ErrSyntax error is never
// returned; callers should type-assert to ErrSyntax to inspect
// individual diagnostics.
func Parse(src string) ([]Node, error) {
	p := &parser{s: newScanner(src)}
	p.advance()

	var nodes []Node
	for p.tok.kind != tokEOF && !p.abort() {
		n, ok := p.parseExpr()
		if ok {
			nodes = append(nodes, n)
			continue
		}
		// Resynchronize by skipping the offending token; this bounds
		// recovery to one diagnostic per bad token instead of looping.
		if p.tok.kind != tokEOF {
			p.advance()
		}
	}
	if len(p.errs) == 0 {
		return nodes, nil
	}
	return nodes, p.errs
}

func (p *parser) parseExpr() (Node, bool) {
	tok := p.tok
	switch tok.kind {
	case tokAtom:
		p.advance()
		return classifyAtom(tok.text, tok.pos), true

	case tokString:
		p.advance()
		return Node{Kind: NodeString, Text: tok.text, Pos: tok.pos}, true

	case tokComment:
		p.advance()
		return Node{Kind: NodeComment, Text: tok.text, Pos: tok.pos}, true

	case tokQuote:
		return p.parsePrefix(NodeQuote, tok.pos)
	case tokBackquote:
		return p.parsePrefix(NodeQuasiquote, tok.pos)
	case tokComma:
		return p.parsePrefix(NodeUnquote, tok.pos)
	case tokCommaAt:
		return p.parsePrefix(NodeUnquoteSplice, tok.pos)

	case tokLParen:
		return p.parseList()
	case tokLBracket:
		return p.parseVector()

	case tokRParen:
		p.error(tok.pos, "unexpected ')'")
		return Node{}, false
	case tokRBracket:
		p.error(tok.pos, "unexpected ']'")
		return Node{}, false
	case tokDot:
		p.error(tok.pos, "unexpected '.'")
		return Node{}, false
	case tokEOF:
		p.error(tok.pos, "unexpected end of input")
		return Node{}, false
	default:
		p.error(tok.pos, "unexpected token")
		return Node{}, false
	}
}

func (p *parser) parsePrefix(kind NodeKind, pos Position) (Node, bool) {
	p.advance()
	inner, ok := p.parseExpr()
	if !ok {
		return Node{}, false
	}
	return Node{Kind: kind, Expr: &inner, Pos: pos}, true
}

func (p *parser) parseList() (Node, bool) {
	pos := p.tok.pos
	p.advance() // consume '('
	var items []Node
	for {
		switch p.tok.kind {
		case tokRParen:
			p.advance()
			return Node{Kind: NodeList, Items: items, Pos: pos}, true
		case tokEOF:
			p.error(p.tok.pos, "unterminated list")
			return Node{}, false
		case tokDot:
			return p.parseDottedTail(pos, items)
		default:
			item, ok := p.parseExpr()
			if !ok {
				return Node{}, false
			}
			items = append(items, item)
		}
	}
}

func (p *parser) parseDottedTail(pos Position, items []Node) (Node, bool) {
	if len(items) == 0 {
		p.error(p.tok.pos, "'.' requires at least one preceding element")
		return Node{}, false
	}
	p.advance() // consume '.'
	tail, ok := p.parseExpr()
	if !ok {
		return Node{}, false
	}
	if p.tok.kind != tokRParen {
		p.error(p.tok.pos, "expected ')' after dotted tail")
		return Node{}, false
	}
	p.advance()
	if len(items) == 1 {
		return Node{Kind: NodeCons, Items: []Node{items[0], tail}, Pos: pos}, true
	}
	return Node{Kind: NodeDottedList, Items: items, Tail: &tail, Pos: pos}, true
}

func (p *parser) parseVector() (Node, bool) {
	pos := p.tok.pos
	p.advance() // consume '['
	var items []Node
	for {
		switch p.tok.kind {
		case tokRBracket:
			p.advance()
			return Node{Kind: NodeVector, Items: items, Pos: pos}, true
		case tokEOF:
			p.error(p.tok.pos, "unterminated vector")
			return Node{}, false
		default:
			item, ok := p.parseExpr()
			if !ok {
				return Node{}, false
			}
			items = append(items, item)
		}
	}
}
