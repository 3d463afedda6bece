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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

func TestStoreThenRetrieveHits(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(12345)
	move := NewMove(SqE2, SqE4, FlagQuiet, MakePiece(White, Pawn))

	tt.Store(key, 5, 120, move, true)
	entry, ok := tt.Retrieve(key)
	assert.True(t, ok)
	assert.EqualValues(t, 5, entry.Depth())
	assert.EqualValues(t, 120, entry.Score())
	gotMove, hasMove := entry.BestMove()
	assert.True(t, hasMove)
	assert.Equal(t, move, gotMove)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Hits())
}

func TestRetrieveMissOnUnknownKey(t *testing.T) {
	tt := NewTtTable(1)
	_, ok := tt.Retrieve(position.Key(999))
	assert.False(t, ok)
	assert.EqualValues(t, 0, tt.Hits())
}

func TestStoreOverwritesOnCollision(t *testing.T) {
	tt := NewTtTable(1)
	first := position.Key(1)
	tt.Store(first, 3, 10, MoveNone, false)
	second := position.Key(1 + (tt.hashKeyMask + 1))
	tt.Store(second, 7, 20, MoveNone, false)

	entry, ok := tt.Retrieve(second)
	assert.True(t, ok)
	assert.EqualValues(t, 7, entry.Depth())
	assert.EqualValues(t, 20, entry.Score())

	_, ok = tt.Retrieve(first)
	assert.False(t, ok, "unconditional overwrite must evict the earlier entry sharing the slot")
}

func TestZeroSizeTableNeverStores(t *testing.T) {
	tt := NewTtTable(0)
	tt.Store(position.Key(1), 1, 1, MoveNone, false)
	_, ok := tt.Retrieve(position.Key(1))
	assert.False(t, ok)
	assert.EqualValues(t, 0, tt.Len())
}

func TestClearResetsStatsButKeepsCapacity(t *testing.T) {
	tt := NewTtTable(1)
	tt.Store(position.Key(1), 1, 1, MoveNone, false)
	capacityBefore := len(tt.data)
	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.EqualValues(t, 0, tt.Hits())
	assert.Len(t, tt.data, capacityBefore)
}
