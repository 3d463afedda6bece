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

func TestStartPositionHasNoPawnStructurePenalty(t *testing.T) {
	p, err := position.New()
	assert.NoError(t, err)
	assert.EqualValues(t, 0, pawnStructureScore(p))
}

func TestDoubledPawnsArePenalized(t *testing.T) {
	p, err := position.New("4k3/8/8/8/4P3/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Less(t, int(pawnPenalty(p, White)), 0)
}

func TestIsolatedPawnIsPenalized(t *testing.T) {
	p, err := position.New("4k3/8/8/8/8/8/P5P1/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Less(t, int(pawnPenalty(p, White)), 0)
}

func TestSupportedPawnChainIsNotIsolated(t *testing.T) {
	p, err := position.New("4k3/8/8/8/8/8/PP6/4K3 w - - 0 1")
	assert.NoError(t, err)
	for f := FileA; f <= FileH; f++ {
		adjacent := isSupportedByAdjacentFile(f, p.PiecesBb(White, Pawn))
		if f == FileA || f == FileB {
			assert.True(t, adjacent)
		}
	}
}
