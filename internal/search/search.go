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


// Package search implements iterative-deepening negamax with alpha-beta
// pruning over a shared, mutex-guarded transposition table.
package search

import (
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/kschaper/bitchess/internal/config"
	"github.com/kschaper/bitchess/internal/evaluator"
	myLogging "github.com/kschaper/bitchess/internal/logging"
	"github.com/kschaper/bitchess/internal/movegen"
	"github.com/kschaper/bitchess/internal/position"
	"github.com/kschaper/bitchess/internal/transpositiontable"

	. "github.com/kschaper/bitchess/internal/types"
)

var out = message.NewPrinter(language.English)

// Result is what a completed or time-cut search hands back to a caller.
type Result struct {
	BestMove     Move
	Score        Value
	DepthReached int
	Elapsed      time.Duration
	Nodes        uint64
}

// String renders a human-readable search summary with thousands
// separators on the node count.
func (r *Result) String() string {
	return out.Sprintf("bestmove %s score %d depth %d nodes %d time %s",
		r.BestMove.String(), r.Score, r.DepthReached, r.Nodes, r.Elapsed)
}

// Search holds the long-lived state of one engine instance: the
// transposition table and the evaluator. Both are safe to reuse and to
// share across concurrent root-move workers.
type Search struct {
	log *logging.Logger

	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator
}

// NewSearch creates a Search with a transposition table sized per
// config.Settings.Search.TTSizeMb.
func NewSearch() *Search {
	return &Search{
		log:  myLogging.GetLog(),
		tt:   transpositiontable.NewTtTable(config.Settings.Search.TTSizeMb),
		eval: evaluator.NewEvaluator(),
	}
}

// rootState is the shared alpha/best-move pair the root workers race to
// update. Both fields must be updated under the same critical section so
// a reader never observes one without the other.
type rootState struct {
	mu       sync.Mutex
	alpha    Value
	bestMove Move
}

func (r *rootState) consider(score Value, m Move) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if score > r.alpha {
		r.alpha = score
		r.bestMove = m
	}
}

func (r *rootState) snapshot() (Value, Move) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.alpha, r.bestMove
}

// BestMove runs iterative deepening from pos's current position until
// movetime elapses or config.Settings.Search.MaxDepth is reached, and
// returns the best line found.
func (s *Search) BestMove(pos *position.Position, movetime time.Duration) *Result {
	start := time.Now()

	rootMoves := movegen.GenerateLegalMoves(pos)
	if len(rootMoves) == 0 {
		return &Result{
			BestMove:     MoveNone,
			Score:        s.eval.Evaluate(pos),
			DepthReached: 0,
			Elapsed:      time.Since(start),
		}
	}

	numWorkers := config.Settings.Search.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	var nodes uint64
	var nodesMu sync.Mutex

	result := &Result{BestMove: rootMoves[0]}

	for depth := 1; depth <= config.Settings.Search.MaxDepth; depth++ {
		if movetime > 0 && time.Since(start) >= movetime {
			break
		}

		movegen.OrderMoves(pos, rootMoves, result.BestMove, func(m Move) int32 { return moveOrderingScore(pos, m) }, true)

		root := &rootState{alpha: -ValueInfinite, bestMove: rootMoves[0]}

		g := new(errgroup.Group)
		g.SetLimit(numWorkers)

		for _, m := range rootMoves {
			m := m
			g.Go(func() error {
				child := pos.Clone()
				child.DoMove(m)

				alpha, _ := root.snapshot()
				w := &worker{tt: s.tt, eval: s.eval}
				score := -w.negamax(child, -ValueInfinite, -alpha, depth-1)

				nodesMu.Lock()
				nodes += w.nodes
				nodesMu.Unlock()

				root.consider(score, m)
				return nil
			})
		}
		_ = g.Wait()

		alpha, bestMove := root.snapshot()
		result.Score = alpha
		result.BestMove = bestMove
		result.DepthReached = depth
		result.Nodes = nodes

		s.log.Debugf("depth %d: tt size %d, hits %d", depth, s.tt.Len(), s.tt.Hits())
	}

	result.Elapsed = time.Since(start)
	return result
}
