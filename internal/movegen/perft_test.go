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


package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kschaper/bitchess/internal/position"
	. "github.com/kschaper/bitchess/internal/types"
)

// perftCase is one row of the exact-value perft table.
type perftCase struct {
	name  string
	fen   string
	nodes [5]uint64 // depth 1..5
}

var perftCases = []perftCase{
	{
		name:  "initial",
		fen:   position.StartFen,
		nodes: [5]uint64{20, 400, 8902, 197281, 4865609},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		nodes: [5]uint64{48, 2039, 97862, 4085603, 193690690},
	},
	{
		name:  "rook-endgame",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		nodes: [5]uint64{14, 191, 2812, 43238, 674624},
	},
	{
		name:  "promotion-heavy",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		nodes: [5]uint64{6, 264, 9467, 422333, 15833292},
	},
	{
		name:  "mixed-1",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		nodes: [5]uint64{44, 1486, 62379, 2103487, 89941194},
	},
	{
		name:  "mixed-2",
		fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		nodes: [5]uint64{46, 2079, 89890, 3894594, 164075551},
	},
}

// maxDepthPerCase keeps the unit run fast; TestPerftDeep below covers the
// remaining depths and is skipped under -short.
const maxDepthPerCase = 3

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			pos, err := position.New(tc.fen)
			require.NoError(t, err)
			for d := 1; d <= maxDepthPerCase; d++ {
				got := CountMoves(pos, d)
				assert.Equalf(t, tc.nodes[d-1], got, "%s depth %d", tc.name, d)
			}
		})
	}
}

func TestPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft skipped under -short")
	}
	for _, tc := range perftCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			pos, err := position.New(tc.fen)
			require.NoError(t, err)
			for d := maxDepthPerCase + 1; d <= 5; d++ {
				got := CountMoves(pos, d)
				assert.Equalf(t, tc.nodes[d-1], got, "%s depth %d", tc.name, d)
			}
		})
	}
}

// TestPerftScenarios exercises targeted edge cases beyond the raw node counts above.
func TestPerftScenarios(t *testing.T) {
	t.Run("double push is legal and flagged", func(t *testing.T) {
		pos, err := position.New("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
		require.NoError(t, err)
		moves := GenerateLegalMoves(pos)
		found := false
		for _, m := range moves {
			if m.From().String()+m.To().String() == "e2e4" {
				found = true
				assert.Equal(t, FlagDoublePawnPush, m.Flag())
			}
		}
		assert.True(t, found, "e2e4 must be a legal move")
	})

	t.Run("pinned pawn push is filtered", func(t *testing.T) {
		pos, err := position.New("8/8/8/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
		require.NoError(t, err)
		moves := GenerateLegalMoves(pos)
		for _, m := range moves {
			assert.NotEqual(t, "b5b6", m.From().String()+m.To().String(), "b5b6 must not expose the king to Rh5")
		}
	})

	t.Run("castling rights both sides then lost after rook move", func(t *testing.T) {
		pos, err := position.New("r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1")
		require.NoError(t, err)
		moves := GenerateLegalMoves(pos)
		castles := 0
		for _, m := range moves {
			if m.Flag() == FlagCastleKingside || m.Flag() == FlagCastleQueenside {
				castles++
			}
		}
		assert.Equal(t, 2, castles)

		var rookMove Move
		for _, m := range moves {
			if m.From().String()+m.To().String() == "a8a7" {
				rookMove = m
			}
		}
		require.NotZero(t, rookMove)
		pos.DoMove(rookMove)
		pos.DoMove(GenerateLegalMoves(pos)[0])
		after := GenerateLegalMoves(pos)
		for _, m := range after {
			assert.NotEqual(t, FlagCastleKingside, m.Flag())
			assert.NotEqual(t, FlagCastleQueenside, m.Flag())
		}
	})

	t.Run("pin mask does not filter unpinned g3g4", func(t *testing.T) {
		pos, err := position.New("8/2p5/3p4/KP5r/1R3p1k/6P1/4P3/8 w - - 0 1")
		require.NoError(t, err)
		moves := GenerateLegalMoves(pos)
		found := false
		for _, m := range moves {
			if m.From().String()+m.To().String() == "g3g4" {
				found = true
			}
		}
		assert.True(t, found, "g3 is not on a pin ray, so g3g4 must stay legal")
	})
}
