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

// Package build converts parser.Node trees into graphs of vm.TypedPointer
// values living in a *vm.VM's memory pools: numbers become number-table
// entries, symbols become interned atoms, and lists/dotted-lists/cons
// pairs become chains of cons cells. It is the bridge between the
// surface grammar and the evaluator's internal representation.
package build
