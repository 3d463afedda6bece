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
	"github.com/kschaper/bitchess/internal/attacks"
	"github.com/kschaper/bitchess/internal/evaluator"
	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

// moveOrderingScore blends MVV-LVA, a promotion bonus, an
// attacked-destination discouragement, a piece-square bonus and (in the
// endgame) a king-pressure bonus into a single comparable score for
// movegen.OrderMoves.
func moveOrderingScore(pos *position.Position, m Move) int32 {
	var score int32

	if m.IsCapture() {
		victim := capturedPieceType(pos, m)
		attacker := m.Piece().TypeOf()
		score += 5*int32(victim.ValueOf()) - int32(attacker.ValueOf())
	}

	if m.IsPromotion() {
		score += int32(m.PromotionPiece().ValueOf())
	}

	if squareAttackedBy(pos, m.To(), m.Color().Flip()) {
		score -= int32(m.Piece().TypeOf().ValueOf())
	}

	score += int32(evaluator.PieceSquareBonus(m.Color(), m.Piece().TypeOf(), m.To()))

	if evaluator.IsEndgame(pos) {
		score += int32(evaluator.KingPressureDestination(pos, m.Color(), m.To()))
	}

	return score
}

// squareAttackedBy reports whether any of by's pieces attacks sq on the
// current occupancy, the same pseudo-attack test computeAttackData runs
// per opponent piece, applied here to a single destination square for move
// ordering rather than to a whole king-safety analysis.
func squareAttackedBy(pos *position.Position, sq Square, by Color) bool {
	if attacks.KnightAttacks[sq]&pos.PiecesBb(by, Knight) != 0 {
		return true
	}
	if attacks.KingAttacks[sq]&pos.PiecesBb(by, King) != 0 {
		return true
	}
	if attacks.PawnAttacks[by.Flip()][sq]&pos.PiecesBb(by, Pawn) != 0 {
		return true
	}
	occ := pos.OccupiedAll()
	if attacks.RookAttacksBb(sq, occ)&(pos.PiecesBb(by, Rook)|pos.PiecesBb(by, Queen)) != 0 {
		return true
	}
	if attacks.BishopAttacksBb(sq, occ)&(pos.PiecesBb(by, Bishop)|pos.PiecesBb(by, Queen)) != 0 {
		return true
	}
	return false
}

// capturedPieceType returns the type of the piece a capturing move removes.
// En passant removes a pawn standing beside the destination square rather
// than on it, so it is special-cased.
func capturedPieceType(pos *position.Position, m Move) PieceType {
	if m.IsEnPassant() {
		return Pawn
	}
	return pos.PieceOn(m.To()).TypeOf()
}
