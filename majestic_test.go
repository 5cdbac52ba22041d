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

package majestic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Minerva-System/majestic-refactored"
)

func TestEvalArithmeticLikeScenario(t *testing.T) {
	v := majestic.NewVM()
	out, err := majestic.EvalString(v, "(cons 1 2)")
	require.NoError(t, err)
	require.Equal(t, "(1 . 2)", out)
}

func TestEvalListScenario(t *testing.T) {
	v := majestic.NewVM()
	out, err := majestic.EvalString(v, "(list 1 2 3)")
	require.NoError(t, err)
	require.Equal(t, "(1 2 3)", out)
}

func TestEvalSequenceKeepsLastResult(t *testing.T) {
	v := majestic.NewVM()
	out, err := majestic.EvalString(v, "(car (cons 1 2)) (cdr (cons 3 4))")
	require.NoError(t, err)
	require.Equal(t, "4", out)
}

func TestEvalEmptySource(t *testing.T) {
	v := majestic.NewVM()
	out, err := majestic.EvalString(v, "")
	require.NoError(t, err)
	require.Equal(t, "nil", out)
}

func TestEvalQuote(t *testing.T) {
	v := majestic.NewVM()
	out, err := majestic.EvalString(v, "'(a b c)")
	require.NoError(t, err)
	require.Equal(t, "(a b c)", out)
}

func TestEvalSyntaxError(t *testing.T) {
	v := majestic.NewVM()
	_, err := majestic.EvalString(v, "(1 2")
	require.Error(t, err)
}
