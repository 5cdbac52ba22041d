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

package build

import (
	"github.com/pkg/errors"

	"github.com/Minerva-System/majestic-refactored/parser"
	"github.com/Minerva-System/majestic-refactored/vm"
)

// prefixAtomNames maps the parser's prefix node kinds to the canonical
// atom name the reader macro expands to. NodeUnquoteSplice (",@e") maps
// to "unquote-splice", the same name the parse tree uses.
var prefixAtomNames = map[parser.NodeKind]string{
	parser.NodeQuote:         "quote",
	parser.NodeQuasiquote:    "quasiquote",
	parser.NodeUnquote:       "unquote",
	parser.NodeUnquoteSplice: "unquote-splice",
}

// Build converts a single parse-tree node into a graph of TypedPointer
// values allocated in v's memory pools.
func Build(v *vm.VM, n parser.Node) (vm.TypedPointer, error) {
	switch n.Kind {
	case parser.NodeInteger:
		return v.MakeNumber(vm.NumberValue{Kind: vm.Integer, I: n.Int})
	case parser.NodeFloat:
		return v.MakeNumber(vm.NumberValue{Kind: vm.Float, F: n.Float})
	case parser.NodeFraction:
		return v.MakeNumber(vm.NumberValue{Kind: vm.Fraction, Num: n.Num, Den: n.Den})
	case parser.NodeComplex:
		return buildComplex(v, n)
	case parser.NodeString:
		return vm.TypedPointer{}, errors.New("string storage not implemented")
	case parser.NodeSymbol:
		return v.MakeAtom(n.Text)
	case parser.NodeList:
		return buildList(v, n.Items)
	case parser.NodeDottedList:
		return buildDottedList(v, n.Items, n.Tail)
	case parser.NodeCons:
		return buildCons(v, n.Items)
	case parser.NodeVector:
		return vm.TypedPointer{}, errors.New("vector storage not implemented")
	case parser.NodeQuote, parser.NodeQuasiquote, parser.NodeUnquote, parser.NodeUnquoteSplice:
		return buildPrefixed(v, n)
	case parser.NodeComment:
		return v.Nil(), nil
	default:
		return vm.TypedPointer{}, errors.Errorf("build: unhandled node kind %v", n.Kind)
	}
}

func buildComplex(v *vm.VM, n parser.Node) (vm.TypedPointer, error) {
	real, err := numberValueOf(*n.Real)
	if err != nil {
		return vm.TypedPointer{}, err
	}
	imag, err := numberValueOf(*n.Imag)
	if err != nil {
		return vm.TypedPointer{}, err
	}
	return v.MakeNumber(vm.NumberValue{Kind: vm.Complex, Real: &real, Imag: &imag})
}

// numberValueOf converts a non-complex number node directly into a
// NumberValue, without allocating it in the VM; used to build the
// Real/Imag components of a Complex cell.
func numberValueOf(n parser.Node) (vm.NumberValue, error) {
	switch n.Kind {
	case parser.NodeInteger:
		return vm.NumberValue{Kind: vm.Integer, I: n.Int}, nil
	case parser.NodeFloat:
		return vm.NumberValue{Kind: vm.Float, F: n.Float}, nil
	case parser.NodeFraction:
		return vm.NumberValue{Kind: vm.Fraction, Num: n.Num, Den: n.Den}, nil
	default:
		return vm.NumberValue{}, errors.Errorf("build: invalid complex component kind %v", n.Kind)
	}
}

// buildList builds a proper list: a chain of cons cells terminated by
// nil, one cell per item, built in source order.
func buildList(v *vm.VM, items []parser.Node) (vm.TypedPointer, error) {
	if len(items) == 0 {
		return v.Nil(), nil
	}

	first, err := v.MakeCons()
	if err != nil {
		return vm.TypedPointer{}, err
	}
	iter := first
	for i, item := range items {
		ptr, err := Build(v, item)
		if err != nil {
			return vm.TypedPointer{}, err
		}
		if err := v.SetCar(iter, ptr); err != nil {
			return vm.TypedPointer{}, err
		}
		if i == len(items)-1 {
			if err := v.SetCdr(iter, v.Nil()); err != nil {
				return vm.TypedPointer{}, err
			}
			break
		}
		next, err := v.MakeCons()
		if err != nil {
			return vm.TypedPointer{}, err
		}
		if err := v.SetCdr(iter, next); err != nil {
			return vm.TypedPointer{}, err
		}
		iter = next
	}
	return first, nil
}

// buildDottedList builds a chain of cons cells for items, with the
// final cdr set to the built tail node rather than nil.
func buildDottedList(v *vm.VM, items []parser.Node, tail *parser.Node) (vm.TypedPointer, error) {
	if len(items) == 0 {
		return vm.TypedPointer{}, errors.New("build: empty dotted list")
	}
	if tail == nil {
		return vm.TypedPointer{}, errors.New("build: dotted list missing tail")
	}

	first, err := v.MakeCons()
	if err != nil {
		return vm.TypedPointer{}, err
	}
	iter := first
	for i, item := range items {
		ptr, err := Build(v, item)
		if err != nil {
			return vm.TypedPointer{}, err
		}
		if err := v.SetCar(iter, ptr); err != nil {
			return vm.TypedPointer{}, err
		}
		if i == len(items)-1 {
			tailPtr, err := Build(v, *tail)
			if err != nil {
				return vm.TypedPointer{}, err
			}
			if err := v.SetCdr(iter, tailPtr); err != nil {
				return vm.TypedPointer{}, err
			}
			break
		}
		next, err := v.MakeCons()
		if err != nil {
			return vm.TypedPointer{}, err
		}
		if err := v.SetCdr(iter, next); err != nil {
			return vm.TypedPointer{}, err
		}
		iter = next
	}
	return first, nil
}

// buildCons builds a single cons cell for a two-element "a . b" form.
func buildCons(v *vm.VM, items []parser.Node) (vm.TypedPointer, error) {
	if len(items) != 2 {
		return vm.TypedPointer{}, errors.Errorf("build: cons node with %d items, want 2", len(items))
	}
	car, err := Build(v, items[0])
	if err != nil {
		return vm.TypedPointer{}, err
	}
	cdr, err := Build(v, items[1])
	if err != nil {
		return vm.TypedPointer{}, err
	}
	return v.Cons(car, cdr)
}

// buildPrefixed expands a reader-macro prefix node into the two-element
// list form its atom name denotes, e.g. 'x into (quote x).
func buildPrefixed(v *vm.VM, n parser.Node) (vm.TypedPointer, error) {
	name, ok := prefixAtomNames[n.Kind]
	if !ok {
		return vm.TypedPointer{}, errors.Errorf("build: unknown prefix kind %v", n.Kind)
	}
	sym, err := v.MakeAtom(name)
	if err != nil {
		return vm.TypedPointer{}, err
	}
	expr, err := Build(v, *n.Expr)
	if err != nil {
		return vm.TypedPointer{}, err
	}
	tail, err := v.Cons(expr, v.Nil())
	if err != nil {
		return vm.TypedPointer{}, err
	}
	return v.Cons(sym, tail)
}
