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


package search

import (
	"github.com/kschaper/bitchess/internal/config"
	"github.com/kschaper/bitchess/internal/evaluator"
	"github.com/kschaper/bitchess/internal/movegen"
	"github.com/kschaper/bitchess/internal/position"
	"github.com/kschaper/bitchess/internal/transpositiontable"

	. "github.com/kschaper/bitchess/internal/types"
)

// worker carries the per-goroutine state negamax touches: its own cloned
// position and a node counter. The transposition table and evaluator are
// shared and safe for concurrent use; everything else here is private to
// one worker.
type worker struct {
	tt    *transpositiontable.TtTable
	eval  *evaluator.Evaluator
	nodes uint64
}

// negamax is a fail-hard alpha-beta negamax search with a
// transposition-table probe/store and late-move reduction.
func (w *worker) negamax(pos *position.Position, alpha, beta Value, depth int) Value {
	w.nodes++

	key := pos.Key()
	entry, hit := w.tt.Retrieve(key)
	if hit && int(entry.Depth()) >= depth {
		return entry.Score()
	}

	// GenerateLegalMoves records pos as checkmated/stalemated when it comes
	// back empty, which is how a terminal position is recognised here.
	moves := movegen.GenerateLegalMoves(pos)
	terminal := len(moves) == 0

	if depth == 0 || terminal {
		v := w.eval.Evaluate(pos)
		if terminal && depth > 1 {
			v *= Value(depth)
		}
		w.tt.Store(key, int8(depth), v, MoveNone, false)
		return v
	}

	var ttMove Move
	if hit {
		ttMove, _ = entry.BestMove()
	}
	movegen.OrderMoves(pos, moves, ttMove, func(m Move) int32 { return moveOrderingScore(pos, m) }, true)

	lmrThreshold := config.Settings.Search.LMRMoveThreshold
	lmrMinDepth := config.Settings.Search.LMRMinDepth
	lmrDepth := config.Settings.Search.LMRReducedDepth

	bestMove := moves[0]
	for i, m := range moves {
		pos.DoMove(m)

		newDepth := depth - 1
		if i >= lmrThreshold && !m.IsCapture() && depth >= lmrMinDepth {
			newDepth = lmrDepth
		}

		score := -w.negamax(pos, -beta, -alpha, newDepth)
		pos.UndoMove()

		if score > alpha {
			alpha = score
			bestMove = m
			if alpha >= beta {
				break
			}
		}
	}

	w.tt.Store(key, int8(depth), alpha, bestMove, true)
	return alpha
}
