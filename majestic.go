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

// Package majestic glues the parser, build, vm, and printer packages
// together into a small library surface for evaluating Lisp source
// text, the way package retro sits as a thin convenience layer over
// the virtual machine it drives.
package majestic

import (
	"github.com/pkg/errors"

	"github.com/Minerva-System/majestic-refactored/build"
	"github.com/Minerva-System/majestic-refactored/parser"
	"github.com/Minerva-System/majestic-refactored/printer"
	"github.com/Minerva-System/majestic-refactored/vm"
)

// NewVM returns a freshly bootstrapped virtual machine, ready to
// evaluate expressions.
func NewVM(opts ...vm.Option) *vm.VM {
	return vm.New(opts...)
}

// EvalString parses, builds, and evaluates every top-level expression
// in src against v, returning the printed form of the last result.
// Evaluating an empty source string returns the printed form of nil.
func EvalString(v *vm.VM, src string) (string, error) {
	nodes, err := parser.Parse(src)
	if err != nil {
		return "", errors.Wrap(err, "parse")
	}

	result := v.Nil()
	for _, n := range nodes {
		if n.Kind == parser.NodeComment {
			continue
		}
		exp, err := build.Build(v, n)
		if err != nil {
			return "", errors.Wrap(err, "build")
		}
		result, err = v.Evaluate(exp)
		if err != nil {
			return "", errors.Wrap(err, "evaluate")
		}
	}
	return printer.Format(v, result), nil
}
