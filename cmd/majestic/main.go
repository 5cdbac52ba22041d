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

// Command majestic evaluates a single Lisp expression, read from its
// command-line argument or from stdin if none is given, and prints the
// result. It is a minimal library consumer, not a REPL: no line
// editing, history, or batch file loading.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/Minerva-System/majestic-refactored"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [expression]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	src, err := source(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "majestic"))
		os.Exit(1)
	}

	v := majestic.NewVM()
	out, err := majestic.EvalString(v, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "majestic"))
		os.Exit(1)
	}
	fmt.Println(out)
}

// source returns the expression to evaluate: the joined trailing
// arguments if any were given, otherwise the whole of stdin.
func source(args []string) (string, error) {
	if len(args) > 0 {
		s := args[0]
		for _, a := range args[1:] {
			s += " " + a
		}
		return s, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return string(b), nil
}
