// +build !debug

/*
 * ponderforge - a UCI chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package assert lets the rest of the engine state invariants inline
// without paying for them in a release build: Assert is a no-op here, and
// the real check lives in assert_debug.go behind the "debug" build tag.
package assert

// DEBUG is set to true only in the debug build (see assert_debug.go).
const DEBUG = false

// Assert does nothing in this build; the debug build's Assert panics with
// the given message if the test evaluates to false. Go still evaluates the call's arguments
// even when Assert itself is a no-op, so callers also guard with
// `if assert.DEBUG { ... }` to let the compiler eliminate the whole
// statement in release builds.
//  if assert.DEBUG {
//    assert.Assert(value > 0, "invalid value: %s", value.String())
//  }
func Assert(test bool, msg string, a ...interface{}) {}
