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
	"github.com/kschaper/bitchess/internal/attacks"
	"github.com/kschaper/bitchess/internal/config"
	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

// pawnStructureScore sums the doubled/blocked/isolated pawn penalties
// White-minus-Black.
func pawnStructureScore(pos *position.Position) Value {
	return pawnPenalty(pos, White) - pawnPenalty(pos, Black)
}

func pawnPenalty(pos *position.Position, c Color) Value {
	penalty := Value(config.Settings.Eval.PawnStructurePenalty)
	ownPawns := pos.PiecesBb(c, Pawn)
	occAll := pos.OccupiedAll()

	var total Value
	pawns := ownPawns
	for pawns != 0 {
		sq := pawns.PopLsb()
		f := sq.FileOf()

		if aheadMask(c, sq)&ownPawns != 0 {
			total -= penalty
		}
		if isBlocked(pos, c, sq, occAll) {
			total -= penalty
		}
		if !isSupportedByAdjacentFile(f, ownPawns) {
			total -= penalty
		}
	}
	return total
}

// aheadMask returns the squares on sq's file strictly ahead of sq from c's
// point of view (the squares a doubled pawn of color c would occupy).
func aheadMask(c Color, sq Square) Bitboard {
	var mask Bitboard
	if c == White {
		for r := sq.RankOf() + 1; r <= Rank8; r++ {
			mask |= RankBb[r]
		}
	} else {
		for r := sq.RankOf() - 1; r >= Rank1; r-- {
			mask |= RankBb[r]
		}
	}
	return mask & FileBb[sq.FileOf()]
}

// isBlocked reports whether sq's pawn can neither push (the square directly
// ahead is occupied) nor capture on either diagonal (each diagonal square is
// either empty or own-coloured).
func isBlocked(pos *position.Position, c Color, sq Square, occAll Bitboard) bool {
	pushOne := singlePush(c, sq)
	if pushOne == SqNone || !occAll.Has(pushOne) {
		return false
	}
	diag := attacks.PawnAttacks[c][sq]
	for diag != 0 {
		target := diag.PopLsb()
		if p := pos.PieceOn(target); p != PieceNone && p.ColorOf() != c {
			return false
		}
	}
	return true
}

func singlePush(c Color, sq Square) Square {
	b := ShiftOne(sq.Bb(), c.PawnPushDirection())
	if b == 0 {
		return SqNone
	}
	return b.Lsb()
}

// isSupportedByAdjacentFile reports whether ownPawns has a pawn on either
// file adjacent to f (a pawn with no such
// neighbour is isolated).
func isSupportedByAdjacentFile(f File, ownPawns Bitboard) bool {
	var adjacent Bitboard
	if f > FileA {
		adjacent |= FileBb[f-1]
	}
	if f < FileH {
		adjacent |= FileBb[f+1]
	}
	return adjacent&ownPawns != 0
}
