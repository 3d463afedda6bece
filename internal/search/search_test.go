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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kschaper/bitchess/internal/movegen"
	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

func TestBestMoveFindsMateInOne(t *testing.T) {
	// white to move, Qh5-f7 is mate.
	pos, err := position.New("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.NoError(t, err)

	s := NewSearch()
	result := s.BestMove(pos, 2*time.Second)

	assert.Equal(t, "h5f7", result.BestMove.From().String()+result.BestMove.To().String())
}

func TestBestMoveOnTerminalPositionReturnsNoMove(t *testing.T) {
	pos, err := position.New("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	// fool's mate: white has no legal moves left that escape check.
	require.Empty(t, movegen.GenerateLegalMoves(pos))

	s := NewSearch()
	result := s.BestMove(pos, time.Second)

	assert.Equal(t, 0, result.DepthReached)
	assert.Equal(t, MoveNone, result.BestMove)
}

func TestBestMovePrefersMaterialAdvantage(t *testing.T) {
	pos, err := position.New("4k3/8/8/8/8/7q/8/4K2R w K - 0 1")
	require.NoError(t, err)

	s := NewSearch()
	result := s.BestMove(pos, 500*time.Millisecond)

	assert.NotEqual(t, MoveNone, result.BestMove)
	// Rh1xh3 wins the queen.
	assert.Equal(t, "h1h3", result.BestMove.From().String()+result.BestMove.To().String())
}
