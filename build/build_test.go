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

package build_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Minerva-System/majestic-refactored/build"
	"github.com/Minerva-System/majestic-refactored/parser"
	"github.com/Minerva-System/majestic-refactored/vm"
)

func buildOne(t *testing.T, v *vm.VM, src string) vm.TypedPointer {
	t.Helper()
	nodes, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	p, err := build.Build(v, nodes[0])
	require.NoError(t, err)
	return p
}

func TestBuildInteger(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "42")
	require.Equal(t, vm.Number, p.Tag)
	nv, err := v.NumberOf(p)
	require.NoError(t, err)
	require.Equal(t, vm.Integer, nv.Kind)
	require.Equal(t, int64(42), nv.I)
}

func TestBuildSymbol(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "foo")
	require.Equal(t, vm.Atom, p.Tag)
	name, err := v.AtomName(p)
	require.NoError(t, err)
	require.Equal(t, "foo", name)
}

func TestBuildList(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "(1 2 3)")
	require.Equal(t, vm.Cons, p.Tag)

	var got []int64
	for p != v.Nil() {
		car, err := v.Car(p)
		require.NoError(t, err)
		nv, err := v.NumberOf(car)
		require.NoError(t, err)
		got = append(got, nv.I)
		p, err = v.Cdr(p)
		require.NoError(t, err)
	}
	require.Equal(t, []int64{1, 2, 3}, got)
}

func TestBuildEmptyList(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "()")
	require.Equal(t, v.Nil(), p)
}

func TestBuildDottedList(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "(1 2 . 3)")
	require.Equal(t, vm.Cons, p.Tag)

	car, err := v.Car(p)
	require.NoError(t, err)
	nv, _ := v.NumberOf(car)
	require.Equal(t, int64(1), nv.I)

	rest, err := v.Cdr(p)
	require.NoError(t, err)
	car2, err := v.Car(rest)
	require.NoError(t, err)
	nv2, _ := v.NumberOf(car2)
	require.Equal(t, int64(2), nv2.I)

	tail, err := v.Cdr(rest)
	require.NoError(t, err)
	nv3, err := v.NumberOf(tail)
	require.NoError(t, err)
	require.Equal(t, int64(3), nv3.I)
}

func TestBuildCons(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "(1 . 2)")
	require.Equal(t, vm.Cons, p.Tag)
	car, _ := v.Car(p)
	cdr, _ := v.Cdr(p)
	nvCar, _ := v.NumberOf(car)
	nvCdr, _ := v.NumberOf(cdr)
	require.Equal(t, int64(1), nvCar.I)
	require.Equal(t, int64(2), nvCdr.I)
}

func TestBuildQuote(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "'(a b c)")
	require.Equal(t, vm.Cons, p.Tag)

	car, err := v.Car(p)
	require.NoError(t, err)
	name, err := v.AtomName(car)
	require.NoError(t, err)
	require.Equal(t, "quote", name)

	rest, err := v.Cdr(p)
	require.NoError(t, err)
	inner, err := v.Car(rest)
	require.NoError(t, err)
	require.Equal(t, vm.Cons, inner.Tag)

	after, err := v.Cdr(rest)
	require.NoError(t, err)
	require.Equal(t, v.Nil(), after)
}

func TestBuildUnquoteSplice(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "`(foo ,@bar)")

	car, err := v.Car(p)
	require.NoError(t, err)
	name, err := v.AtomName(car)
	require.NoError(t, err)
	require.Equal(t, "quasiquote", name)

	rest, err := v.Cdr(p)
	require.NoError(t, err)
	inner, err := v.Car(rest)
	require.NoError(t, err)

	innerSecond, err := v.Cdr(inner)
	require.NoError(t, err)
	spliceForm, err := v.Car(innerSecond)
	require.NoError(t, err)
	spliceHead, err := v.Car(spliceForm)
	require.NoError(t, err)
	name, err = v.AtomName(spliceHead)
	require.NoError(t, err)
	require.Equal(t, "unquote-splice", name)
}

func TestBuildString(t *testing.T) {
	v := vm.New()
	nodes, err := parser.Parse(`"hi"`)
	require.NoError(t, err)
	_, err = build.Build(v, nodes[0])
	require.Error(t, err)
}

func TestBuildComplex(t *testing.T) {
	v := vm.New()
	p := buildOne(t, v, "2j3")
	nv, err := v.NumberOf(p)
	require.NoError(t, err)
	require.Equal(t, vm.Complex, nv.Kind)
	require.Equal(t, int64(2), nv.Real.I)
	require.Equal(t, int64(3), nv.Imag.I)
}
