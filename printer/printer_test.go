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

package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Minerva-System/majestic-refactored/build"
	"github.com/Minerva-System/majestic-refactored/parser"
	"github.com/Minerva-System/majestic-refactored/printer"
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

func TestFormatAtomsAndNumbers(t *testing.T) {
	v := vm.New()
	require.Equal(t, "42", printer.Format(v, buildOne(t, v, "42")))
	require.Equal(t, "1/2", printer.Format(v, buildOne(t, v, "1/2")))
	require.Equal(t, "2J3", printer.Format(v, buildOne(t, v, "2j3")))
	require.Equal(t, "foo", printer.Format(v, buildOne(t, v, "foo")))
}

func TestFormatNil(t *testing.T) {
	v := vm.New()
	require.Equal(t, "nil", printer.Format(v, v.Nil()))
}

func TestFormatList(t *testing.T) {
	v := vm.New()
	require.Equal(t, "(1 2 3)", printer.Format(v, buildOne(t, v, "(1 2 3)")))
}

func TestFormatDottedList(t *testing.T) {
	v := vm.New()
	require.Equal(t, "(1 2 . 3)", printer.Format(v, buildOne(t, v, "(1 2 . 3)")))
}

func TestFormatCons(t *testing.T) {
	v := vm.New()
	require.Equal(t, "(1 . 2)", printer.Format(v, buildOne(t, v, "(1 . 2)")))
}

func TestFormatOpaqueTags(t *testing.T) {
	v := vm.New()
	p, err := v.MakeCons()
	require.NoError(t, err)
	fn := vm.Reinterpret(p, vm.Function)
	got := printer.Format(v, fn)
	require.True(t, strings.HasPrefix(got, "#<FUNCTION {0x"))
	require.True(t, strings.HasSuffix(got, "}>"))
}

func TestFprint(t *testing.T) {
	v := vm.New()
	var sb strings.Builder
	err := printer.Fprint(&sb, v, buildOne(t, v, "(1 2)"))
	require.NoError(t, err)
	require.Equal(t, "(1 2)", sb.String())
}

func TestRoundTrip(t *testing.T) {
	v := vm.New()
	for _, src := range []string{"42", "(1 2 3)", "(1 2 . 3)", "(a . b)"} {
		p := buildOne(t, v, src)
		require.Equal(t, src, printer.Format(v, p))
	}
}
