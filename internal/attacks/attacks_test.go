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


package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kschaper/bitchess/internal/types"
)

func TestKnightAttacksCorner(t *testing.T) {
	got := KnightAttacks[SqA1]
	assert.Equal(t, 2, got.PopCount())
	assert.True(t, got.Has(SqB3))
	assert.True(t, got.Has(SqC2))
}

func TestKingAttacksCentral(t *testing.T) {
	got := KingAttacks[SqE4]
	assert.Equal(t, 8, got.PopCount())
}

func TestPawnPushesDoubleFromStartRank(t *testing.T) {
	assert.Equal(t, 2, PawnPushes[White][SqE2].PopCount())
	assert.True(t, PawnPushes[White][SqE2].Has(SqE3))
	assert.True(t, PawnPushes[White][SqE2].Has(SqE4))
	assert.Equal(t, 1, PawnPushes[White][SqE3].PopCount())

	assert.Equal(t, 2, PawnPushes[Black][SqE7].PopCount())
	assert.True(t, PawnPushes[Black][SqE7].Has(SqE6))
	assert.True(t, PawnPushes[Black][SqE7].Has(SqE5))
}

func TestRookAttacksEmptyBoardCorner(t *testing.T) {
	got := RookAttacksBb(SqA1, 0)
	assert.Equal(t, 14, got.PopCount())
	assert.True(t, got.Has(SqA8))
	assert.True(t, got.Has(SqH1))
}

func TestRookAttacksStopsAtBlocker(t *testing.T) {
	occ := SqA4.Bb()
	got := RookAttacksBb(SqA1, occ)
	assert.True(t, got.Has(SqA4))
	assert.False(t, got.Has(SqA5))
}

func TestBishopAttacksEmptyBoardCenter(t *testing.T) {
	got := BishopAttacksBb(SqD4, 0)
	assert.Equal(t, 13, got.PopCount())
}

func TestQueenAttacksCombinesRookAndBishop(t *testing.T) {
	got := QueenAttacksBb(SqD4, 0)
	assert.Equal(t, RookAttacksBb(SqD4, 0)|BishopAttacksBb(SqD4, 0), got)
}
