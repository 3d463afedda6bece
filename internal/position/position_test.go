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


package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/kschaper/bitchess/internal/types"
)

func TestNewDefaultsToStartPosition(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, MakePiece(White, Rook), p.PieceOn(SqA1))
	assert.Equal(t, MakePiece(Black, King), p.PieceOn(SqE8))
}

func TestInvalidFenRejected(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}
	for _, fen := range cases {
		_, err := New(fen)
		require.Error(t, err)
		var invalid *InvalidFENError
		assert.ErrorAs(t, err, &invalid)
	}
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := New(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen(), "FEN round trip must be idempotent")
	}
}

func TestZobristKeyMatchesRecompute(t *testing.T) {
	p, err := New("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, p.RecomputedKey(), p.Key())
}

func TestDoMoveUndoMoveRestoresPosition(t *testing.T) {
	p, err := New("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := p.Fen()
	beforeKey := p.Key()

	// a quiet knight move, a capture (Nxc3? no capture available there) and a
	// castle are exercised across several independent make/unmake cycles.
	moves := []Move{
		NewMove(SqE5, SqD3, FlagQuiet, MakePiece(White, Knight)),
		NewMove(SqE1, SqG1, FlagCastleKingside, MakePiece(White, King)),
		NewMove(SqD5, SqE6, FlagCapture, MakePiece(White, Pawn)),
	}
	for _, m := range moves {
		p.DoMove(m)
		p.UndoMove()
		assert.Equal(t, before, p.Fen(), "unmake must restore the exact FEN")
		assert.Equal(t, beforeKey, p.Key(), "unmake must restore the exact Zobrist key")
		assert.Equal(t, beforeKey, p.RecomputedKey())
	}
}

func TestDoMoveUpdatesCastlingRightsOnRookMove(t *testing.T) {
	p, err := New("r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1")
	require.NoError(t, err)
	p.DoMove(NewMove(SqA8, SqA7, FlagQuiet, MakePiece(Black, Rook)))
	assert.False(t, p.CastlingRights().Has(CastleBlackQueenside))
	assert.True(t, p.CastlingRights().Has(CastleBlackKingside))
}

func TestDoMoveSetsEnPassantOnDoublePush(t *testing.T) {
	p, err := New("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	p.DoMove(NewDoublePawnPush(SqE2, SqE4, MakePiece(White, Pawn)))
	assert.Equal(t, SqE3, p.EpTargetSquare())
	assert.Equal(t, SqE4, p.EpPawnSquare())
}

func TestDoMoveResetsHalfmoveClockOnPawnMoveOrCapture(t *testing.T) {
	p, err := New("4k3/8/8/8/8/8/4P3/4K3 w - - 11 5")
	require.NoError(t, err)
	p.DoMove(NewMove(SqE2, SqE3, FlagQuiet, MakePiece(White, Pawn)))
	assert.Equal(t, 0, p.HalfmoveClock())
}

func TestCloneIsIndependent(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	c := p.Clone()
	c.DoMove(NewDoublePawnPush(SqE2, SqE4, MakePiece(White, Pawn)))
	assert.Equal(t, StartFen, p.Fen(), "mutating a clone must not affect the original")
	assert.NotEqual(t, StartFen, c.Fen())
}
