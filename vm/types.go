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

package vm

import "fmt"

// Tag identifies which pool a TypedPointer's Index refers into.
type Tag int

// Pool tags. Function and Literal alias the cons pool: they are cons
// cells whose tag has been reinterpreted, never a separate pool.
const (
	Undefined Tag = iota
	Cons
	Atom
	Number
	BuiltInFunction
	BuiltInLiteral
	Function
	Literal
	Environment
)

func (t Tag) String() string {
	switch t {
	case Undefined:
		return "Undefined"
	case Cons:
		return "Cons"
	case Atom:
		return "Atom"
	case Number:
		return "Number"
	case BuiltInFunction:
		return "BuiltInFunction"
	case BuiltInLiteral:
		return "BuiltInLiteral"
	case Function:
		return "Function"
	case Literal:
		return "Literal"
	case Environment:
		return "Environment"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// TypedPointer is the single value type every VM-visible reference is
// built from: a pool tag paired with an index into that pool.
type TypedPointer struct {
	Tag   Tag
	Index int
}

// undef is the default, zero-value pointer.
var undef = TypedPointer{Tag: Undefined, Index: 0}

// NumberKind distinguishes the variant stored in a Number cell.
type NumberKind int

const (
	Integer NumberKind = iota
	Float
	Fraction
	Complex
)

// NumberValue is a tagged union over the four numeric variants the
// language supports. Real and Imag are only meaningful when Kind is
// Complex, and must themselves describe non-complex numbers.
type NumberValue struct {
	Kind NumberKind
	I    int64   // Integer
	F    float64 // Float
	Num  int64   // Fraction numerator
	Den  int64   // Fraction denominator
	Real *NumberValue
	Imag *NumberValue
}

// consCell is the sole compound-datum representation; Function and
// Literal TypedPointers index this same area under a different tag.
type consCell struct {
	car, cdr TypedPointer
	mark     byte // reserved for a future collector, never read
}

// atomEntry backs an interned atom: a name and its globally assigned
// value (distinct from any environment binding of the same name).
type atomEntry struct {
	name  string
	value TypedPointer
}

// environment is a chained binding frame.
type environment struct {
	parent   TypedPointer
	bindings map[TypedPointer]TypedPointer
}
