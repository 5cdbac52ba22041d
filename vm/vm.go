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

import (
	"log/slog"

	"github.com/pkg/errors"
)

// reservedAtoms lists the names allocated, in order, at VM start.
// Indices in this slice match the reserved atom indices documented
// in the package's external interface.
var reservedAtoms = []string{
	"nil", "t", "prim", "lit", "closure", "error", "fn", "&", "apply",
	"macro", "mac", "quote", "unquote", "unquote-splice", "quasiquote",
	"do", "integer", "float", "fraction", "complex", "vector", "setq",
}

// selfEvaluatingAtoms are assigned their own pointer as value.
var selfEvaluatingAtoms = []string{"nil", "t"}

// builtInLiteralNames indexes the continuation-marker sentinels.
var builtInLiteralNames = []string{
	"DONE", "EVAL_ARGS", "ACCUMULATE_ARG", "ACCUMULATE_LAST_ARG", "EVAL_ASSIGN",
}

const (
	litDone = iota
	litEvalArgs
	litAccumulateArg
	litAccumulateLastArg
	litEvalAssign
)

// builtInFunctionNames indexes the primitive dispatcher's functions.
var builtInFunctionNames = []string{"cons", "list", "car", "cdr", "eval", "eq"}

const (
	primCons = iota
	primList
	primCar
	primCdr
	primEval
	primEq
)

// registers holds the seven named slots the register machine operates on.
type registers struct {
	exp, env, fun, argl, cont, val, unev TypedPointer
}

// VM is a majestic evaluator instance: typed memory pools, an
// explicit evaluation stack, and the seven evaluator registers. A VM
// is a plain value owned exclusively by its creator; sharing one
// across goroutines requires external synchronization.
type VM struct {
	atoms   *atomTable
	numbers *numberTable
	conses  *listArea
	envs    *environmentTable
	stack   *stack
	reg     registers

	names   map[string]TypedPointer // reserved atom pointers, by name
	e0      TypedPointer            // root environment
	log     *slog.Logger
}

// Option configures a VM at construction time.
type Option func(*VM)

// WithAtomCapacity overrides the atom table capacity.
func WithAtomCapacity(n int) Option {
	return func(v *VM) { v.atoms = newAtomTable(n) }
}

// WithNumberCapacity overrides the number table capacity.
func WithNumberCapacity(n int) Option {
	return func(v *VM) { v.numbers = newNumberTable(n) }
}

// WithConsCapacity overrides the cons area capacity.
func WithConsCapacity(n int) Option {
	return func(v *VM) { v.conses = newListArea(n) }
}

// WithStackCapacity overrides the evaluation stack capacity.
func WithStackCapacity(n int) Option {
	return func(v *VM) { v.stack = newStack(n) }
}

// WithEnvironmentCapacity overrides the environment table capacity and
// the per-environment binding limit.
func WithEnvironmentCapacity(n, maxBindings int) Option {
	return func(v *VM) { v.envs = newEnvironmentTable(n, maxBindings) }
}

// WithLogger sets the logger used to trace register-machine
// transitions and pool high-water marks. The default is slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(v *VM) { v.log = l }
}

// New constructs a VM with pools at their default capacities, seeds
// the reserved atoms, and populates the root environment E0 with the
// built-in functions.
func New(opts ...Option) *VM {
	v := &VM{
		atoms:   newAtomTable(AtomTableSize),
		numbers: newNumberTable(NumberTableSize),
		conses:  newListArea(ListAreaSize),
		envs:    newEnvironmentTable(EnvironmentTableSize, MaxEnvironmentBindings),
		stack:   newStack(StackSize),
		names:   make(map[string]TypedPointer, len(reservedAtoms)),
		log:     slog.Default(),
	}
	for _, o := range opts {
		o(v)
	}
	if err := v.bootstrap(); err != nil {
		// Bootstrap only fails if a capacity set through an Option is
		// smaller than the fixed reserved-atom/builtin set, which is a
		// programmer error in Option values, not a runtime condition.
		panic(errors.Wrap(err, "vm bootstrap failed"))
	}
	return v
}

func (v *VM) bootstrap() error {
	for _, name := range reservedAtoms {
		p, err := v.atoms.alloc(v.log, name)
		if err != nil {
			return errors.Wrapf(err, "reserving atom %q", name)
		}
		v.names[name] = p
	}
	for _, name := range selfEvaluatingAtoms {
		p := v.names[name]
		ent, err := v.atoms.get(p.Index)
		if err != nil {
			return err
		}
		ent.value = p
	}

	e0, err := v.envs.alloc(v.log, v.Nil())
	if err != nil {
		return errors.Wrap(err, "allocating root environment")
	}
	v.e0 = e0

	for idx, name := range builtInFunctionNames {
		atomPtr, err := v.atoms.alloc(v.log, name)
		if err != nil {
			return errors.Wrapf(err, "reserving builtin %q", name)
		}
		fnPtr := TypedPointer{Tag: BuiltInFunction, Index: idx}
		if err := v.envBind(v.e0, atomPtr, fnPtr); err != nil {
			return errors.Wrapf(err, "binding builtin %q", name)
		}
	}
	return nil
}

// Nil returns the canonical nil pointer (reserved atom index 0).
func (v *VM) Nil() TypedPointer { return v.names["nil"] }

// T returns the canonical t pointer (reserved atom index 1).
func (v *VM) T() TypedPointer { return v.names["t"] }

// RootEnvironment returns E0, the environment pre-populated with the
// built-in functions.
func (v *VM) RootEnvironment() TypedPointer { return v.e0 }

// ReservedAtom returns the pointer for one of the names reserved at
// VM start, and false if name is not one of them.
func (v *VM) ReservedAtom(name string) (TypedPointer, bool) {
	p, ok := v.names[name]
	return p, ok
}
