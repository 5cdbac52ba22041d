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

// applyPrimitive dispatches on fun's BuiltInFunction index. args is
// the materialized argument buffer in reverse source order (invariant
// 6): positional argument k (0-based, source order) lives at
// args[len(args)-1-k].
func (v *VM) applyPrimitive(fun TypedPointer, args []TypedPointer) (TypedPointer, error) {
	name := builtInFunctionNames[fun.Index]
	switch fun.Index {
	case primCons:
		if len(args) != 2 {
			return undef, newErrf(ErrArity, "%s", name)
		}
		// positional 0 (first source arg) is args[1]; positional 1 is args[0].
		return v.Cons(args[1], args[0])

	case primCar:
		if len(args) != 1 {
			return undef, newErrf(ErrArity, "%s", name)
		}
		x := args[0]
		if x == v.Nil() {
			return v.Nil(), nil
		}
		return v.Car(x)

	case primCdr:
		if len(args) != 1 {
			return undef, newErrf(ErrArity, "%s", name)
		}
		x := args[0]
		if x == v.Nil() {
			return v.Nil(), nil
		}
		return v.Cdr(x)

	case primList:
		// Folding args forward (index 0 upward) while prepending
		// restores source order directly, because args is already
		// stored in reverse source order.
		acc := v.Nil()
		for _, a := range args {
			next, err := v.Cons(a, acc)
			if err != nil {
				return undef, err
			}
			acc = next
		}
		return acc, nil

	case primEval:
		if len(args) != 1 {
			return undef, newErrf(ErrArity, "%s", name)
		}
		return v.run(args[0], v.e0)

	case primEq:
		if len(args) != 2 {
			return undef, newErrf(ErrArity, "%s", name)
		}
		// positional 0 is args[1], positional 1 is args[0].
		a, b := args[1], args[0]
		eq, err := v.primEq(a, b)
		if err != nil {
			return undef, err
		}
		if eq {
			return v.T(), nil
		}
		return v.Nil(), nil

	default:
		return undef, newErrf(ErrInternal, "unknown primitive index %d", fun.Index)
	}
}

func (v *VM) primEq(a, b TypedPointer) (bool, error) {
	if a.Tag != b.Tag {
		return false, nil
	}
	switch a.Tag {
	case Atom, Cons, Function, Literal, BuiltInFunction, BuiltInLiteral:
		return a == b, nil
	case Number:
		av, err := v.NumberOf(a)
		if err != nil {
			return false, err
		}
		bv, err := v.NumberOf(b)
		if err != nil {
			return false, err
		}
		return numbersEqual(av, bv), nil
	default:
		return false, newErrf(ErrInternal, "eq: unsupported tag %s", a.Tag)
	}
}

func numbersEqual(a, b NumberValue) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Integer:
		return a.I == b.I
	case Float:
		return a.F == b.F
	case Fraction:
		return a.Num == b.Num && a.Den == b.Den
	case Complex:
		return numbersEqual(*a.Real, *b.Real) && numbersEqual(*a.Imag, *b.Imag)
	default:
		return false
	}
}
