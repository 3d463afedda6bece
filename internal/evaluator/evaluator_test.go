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


package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

func TestStartPositionIsBalanced(t *testing.T) {
	p, err := position.New()
	assert.NoError(t, err)

	e := NewEvaluator()
	score := e.Evaluate(p)
	assert.EqualValues(t, 0, score, "symmetric start position must evaluate to zero")
}

func TestMaterialAdvantageFavoursSideUpAPiece(t *testing.T) {
	// white is up a whole rook
	p, err := position.New("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	assert.NoError(t, err)

	e := NewEvaluator()
	score := e.Evaluate(p)
	assert.Greater(t, int(score), 0)
}

func TestEvaluationFlipsWithSideToMove(t *testing.T) {
	white, err := position.New("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	assert.NoError(t, err)
	black, err := position.New("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	assert.NoError(t, err)

	e := NewEvaluator()
	assert.EqualValues(t, e.Evaluate(white), -e.Evaluate(black))
}

func TestCheckmateEvaluatesAsLoss(t *testing.T) {
	// fool's mate position: black just delivered checkmate, white to move.
	p, err := position.New("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	p.SetWinner(position.WinnerBlack)

	e := NewEvaluator()
	assert.EqualValues(t, -KingValue, e.Evaluate(p))
}

func TestStalemateEvaluatesAsDraw(t *testing.T) {
	p, err := position.New("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	p.SetWinner(position.WinnerDraw)

	e := NewEvaluator()
	assert.EqualValues(t, ValueDraw, e.Evaluate(p))
}
