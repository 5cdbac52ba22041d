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

package parser

import (
	"fmt"
	"strings"
)

const maxErrors = 10

// SyntaxError is a single recovered parse diagnostic.
type SyntaxError struct {
	Pos Position
	Msg string
}

// ErrSyntax accumulates every SyntaxError recovered during a Parse
// call; its Error joins them one per line, in the style of asm.ErrAsm.
type ErrSyntax []SyntaxError

func (e ErrSyntax) Error() string {
	l := make([]string, 0, len(e))
	for _, err := range e {
		l = append(l, fmt.Sprintf("%s: %s", err.Pos, err.Msg))
	}
	return strings.Join(l, "\n")
}
