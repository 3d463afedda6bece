// +build !debug

//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package assert is a helper to allow assertions of internal invariants
// in a standardized, zero-cost-in-release manner.
package assert

// DEBUG is true when built with the "debug" build tag.
const DEBUG = false

// Assert panics with msg if test is false. Callers should still guard calls
// with "if assert.DEBUG {... }" since Go evaluates the arguments of a call
// even when the function body is a no-op; with DEBUG false and the guard in
// place the compiler eliminates the whole statement.
//
// if assert.DEBUG {
// assert.Assert(pos.PieceOn(sq) != PtNone, "expected a piece on %s", sq)
// }
func Assert(test bool, msg string, a ...interface{}) {}
