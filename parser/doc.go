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

// Package parser turns majestic source text into a parse tree: atoms,
// numbers, strings, lists, dotted lists, conses, vectors, comments,
// and the quote/quasiquote/unquote/unquote-splice prefix forms.
//
// Parsing recovers from errors: a malformed token or an unbalanced
// delimiter is recorded in the returned error and the scanner resumes
// at the next plausible boundary, up to a fixed error budget, so a
// single typo does not prevent reporting the rest of a source file's
// diagnostics.
package parser
