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

package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Minerva-System/majestic-refactored/vm"
)

// Format renders p as a string, in the style print_object uses over in
// the original interpreter.
func Format(v *vm.VM, p vm.TypedPointer) string {
	var sb strings.Builder
	ew := &errWriter{w: &sb}
	printObject(ew, v, p)
	return sb.String()
}

// Fprint writes p's rendering to w.
func Fprint(w io.Writer, v *vm.VM, p vm.TypedPointer) error {
	ew := &errWriter{w: w}
	printObject(ew, v, p)
	return ew.err
}

func printObject(ew *errWriter, v *vm.VM, p vm.TypedPointer) {
	switch p.Tag {
	case vm.Undefined:
		ew.writeString("undefined")
	case vm.Number:
		nv, err := v.NumberOf(p)
		if err != nil {
			ew.writeString("#<error>")
			return
		}
		ew.writeString(formatNumber(nv))
	case vm.Atom:
		name, err := v.AtomName(p)
		if err != nil {
			ew.writeString("#<error>")
			return
		}
		ew.writeString(name)
	case vm.Function:
		ew.writeString(formatOpaque("FUNCTION", p.Index))
	case vm.Literal:
		ew.writeString(formatOpaque("LITERAL", p.Index))
	case vm.BuiltInFunction:
		ew.writeString(formatOpaque("BUILTIN-FUNCTION", p.Index))
	case vm.BuiltInLiteral:
		ew.writeString(formatOpaque("BUILTIN-LITERAL", p.Index))
	case vm.Environment:
		ew.writeString(fmt.Sprintf("#<ENV%d>", p.Index))
	case vm.Cons:
		ew.writeString("(")
		printList(ew, v, p)
	default:
		ew.writeString(fmt.Sprintf("#<UNKNOWN %s>", p.Tag))
	}
}

// printList renders the contents of a cons cell and its cdr chain,
// without the opening paren (already emitted by the caller), closing
// it once a proper or dotted tail is reached.
func printList(ew *errWriter, v *vm.VM, p vm.TypedPointer) {
	car, err := v.Car(p)
	if err != nil {
		ew.writeString("#<error>)")
		return
	}
	cdr, err := v.Cdr(p)
	if err != nil {
		ew.writeString("#<error>)")
		return
	}

	printObject(ew, v, car)

	switch {
	case cdr.Tag == vm.Cons:
		ew.writeString(" ")
		printList(ew, v, cdr)
	case cdr == v.Nil():
		ew.writeString(")")
	default:
		ew.writeString(" . ")
		printObject(ew, v, cdr)
		ew.writeString(")")
	}
}

func formatOpaque(kind string, index int) string {
	return fmt.Sprintf("#<%s {0x%08x}>", kind, index)
}

func formatNumber(nv vm.NumberValue) string {
	switch nv.Kind {
	case vm.Integer:
		return strconv.FormatInt(nv.I, 10)
	case vm.Float:
		return strconv.FormatFloat(nv.F, 'g', -1, 64)
	case vm.Fraction:
		return strconv.FormatInt(nv.Num, 10) + "/" + strconv.FormatInt(nv.Den, 10)
	case vm.Complex:
		return formatNumber(*nv.Real) + "J" + formatNumber(*nv.Imag)
	default:
		return "??number??"
	}
}
