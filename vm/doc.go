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

// Package vm implements the majestic evaluator: a register-machine
// interpreter for a small Lisp dialect.
//
// The heap is a set of fixed-capacity typed pools (atoms, numbers, cons
// cells, environments) addressed by TypedPointer, a (tag, index) pair.
// There is no garbage collector; the only reclamation is number-slot
// reuse when an atom's numeric value is overwritten (see AssignValue).
//
// Evaluation is driven by Evaluate, which runs a dispatch loop over
// seven named registers until the continuation register reaches the
// sentinel litDone. Continuations are BuiltInLiteral sentinels pushed
// on an explicit Stack rather than host-language closures; this mirrors
// a SICP-style metacircular evaluator translated into a state machine.
//
// The VM is single-threaded and synchronous: there is no cooperative
// yielding, no asynchronous I/O, and no locking. Callers sharing one VM
// across goroutines must serialize access themselves.
package vm
