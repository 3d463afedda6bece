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

// Package movegen generates legal moves for a Position: it builds the
// per-ply AttackData analysis (checkers, pins, king mobility), dispatches
// per piece type to produce pseudo-legal candidates, restricts them to the
// pin/check masks, and orders the resulting list for search. It also provides the perft move-count tester.
package movegen

import (
	"github.com/kschaper/bitchess/internal/attacks"
	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

// AttackData is the per-ply analysis of checks and pins against the side to
// move's king, rebuilt at the start of every GenerateLegalMoves call.
type AttackData struct {
	AttackBb             Bitboard
	DefendersBb          Bitboard
	FriendlyPinsMovesBbs [SqLength]Bitboard
	KingAllowedSquares   Bitboard
	InCheck              bool
	InDoubleCheck        bool

	checkCount int
}

func sharesRookRay(a, b Square) bool {
	return a.FileOf() == b.FileOf() || a.RankOf() == b.RankOf()
}

func sharesBishopRay(a, b Square) bool {
	df := int(a.FileOf()) - int(b.FileOf())
	dr := int(a.RankOf()) - int(b.RankOf())
	return df == dr || df == -dr
}

// raySegment walks from `from` toward `to` (exclusive of `from`, up to but
// excluding `to`) and returns the traversed squares. Callers add `from`
// and/or `to` themselves as needed; this is the shared primitive behind
// both the check-ray walk and the pin-ray "squares between" test.
func raySegment(from, to Square) Bitboard {
	shift, ok := DirectionTo(from, to)
	if !ok {
		return 0
	}
	var seg Bitboard
	b := shift(from.Bb())
	for b != 0 && b != to.Bb() {
		seg |= b
		b = shift(b)
	}
	return seg
}

// computeAttackData builds the AttackData for the side to move in pos,
// analysing every opponent piece that could check or pin against its king.

func computeAttackData(pos *position.Position, side Color) *AttackData {
	opp := side.Flip()
	king := pos.KingSquare(side)
	occAll := pos.OccupiedAll()

	ad := &AttackData{
		KingAllowedSquares: AllSquaresBb,
	}

	analyseSlider := func(sq Square, attackSet Bitboard, shares func(a, b Square) bool) {
		ad.KingAllowedSquares &^= attackSet
		if !shares(sq, king) {
			return
		}
		if attackSet.Has(king) {
			ad.checkCount++
			ad.AttackBb |= sq.Bb()
			seg := sq.Bb() | raySegment(sq, king)
			ad.DefendersBb |= seg
			shift, _ := DirectionTo(sq, king)
			beyond := shift(king.Bb())
			for beyond != 0 {
				ad.KingAllowedSquares &^= beyond
				beyond = shift(beyond)
			}
			return
		}
		between := raySegment(sq, king)
		occInBetween := between & occAll
		if occInBetween.PopCount() != 1 {
			return
		}
		pinnedSq := occInBetween.Lsb()
		if pos.PieceOn(pinnedSq).ColorOf() != side {
			return
		}
		ad.FriendlyPinsMovesBbs[pinnedSq] = sq.Bb() | between | king.Bb()
	}

	var rooks = pos.PiecesBb(opp, Rook)
	for rooks != 0 {
		sq := rooks.PopLsb()
		analyseSlider(sq, attacks.RookAttacksBb(sq, occAll), sharesRookRay)
	}
	var bishops = pos.PiecesBb(opp, Bishop)
	for bishops != 0 {
		sq := bishops.PopLsb()
		analyseSlider(sq, attacks.BishopAttacksBb(sq, occAll), sharesBishopRay)
	}
	sharesEitherRay := func(a, b Square) bool { return sharesRookRay(a, b) || sharesBishopRay(a, b) }
	var queens = pos.PiecesBb(opp, Queen)
	for queens != 0 {
		sq := queens.PopLsb()
		analyseSlider(sq, attacks.QueenAttacksBb(sq, occAll), sharesEitherRay)
	}

	var knights = pos.PiecesBb(opp, Knight)
	for knights != 0 {
		sq := knights.PopLsb()
		knightAttacks := attacks.KnightAttacks[sq]
		ad.KingAllowedSquares &^= knightAttacks
		if knightAttacks.Has(king) {
			ad.checkCount++
			ad.AttackBb |= sq.Bb()
		}
	}

	var pawns = pos.PiecesBb(opp, Pawn)
	for pawns != 0 {
		sq := pawns.PopLsb()
		pawnAttacks := attacks.PawnAttacks[opp][sq]
		ad.KingAllowedSquares &^= pawnAttacks
		if pawnAttacks.Has(king) {
			ad.checkCount++
			ad.AttackBb |= sq.Bb()
		}
	}

	ad.InCheck = ad.checkCount > 0
	ad.InDoubleCheck = ad.checkCount > 1

	if ad.InDoubleCheck {
		ad.DefendersBb = 0
	} else if !ad.InCheck {
		ad.DefendersBb = AllSquaresBb
		ad.AttackBb = AllSquaresBb
	}
	for sq := SqA1; sq < SqNone; sq++ {
		if ad.FriendlyPinsMovesBbs[sq] == 0 {
			ad.FriendlyPinsMovesBbs[sq] = AllSquaresBb
		}
	}
	ad.KingAllowedSquares &^= pos.OccupiedBb(side)

	return ad
}
