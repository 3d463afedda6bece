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


package transpositiontable

import (
	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

// TtEntrySize is the approximate per-entry footprint used for the table's
// estimated-size report; it does not need to match unsafe.Sizeof exactly.
const TtEntrySize = 24

// TtEntry is one transposition-table record: the search depth it was
// computed at, the resulting score, and the best move found, if any.
type TtEntry struct {
	key      position.Key
	depth    int8
	score    Value
	bestMove Move
	hasMove  bool
}

// Depth returns the search depth this entry was stored at.
func (e TtEntry) Depth() int8 {
	return e.depth
}

// Score returns the stored score.
func (e TtEntry) Score() Value {
	return e.score
}

// BestMove returns the stored best move and whether one was recorded (a
// pure leaf-evaluation entry has none).
func (e TtEntry) BestMove() (Move, bool) {
	return e.bestMove, e.hasMove
}
