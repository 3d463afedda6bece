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
	"sort"

	"github.com/kschaper/bitchess/internal/attacks"
	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

// GenerateLegalMoves returns every legal move for the side to move in pos
//. If the list comes back empty, pos's winner is recorded:
// checkmate for the side in check, stalemate otherwise.
func GenerateLegalMoves(pos *position.Position) []Move {
	side := pos.SideToMove()
	ad := computeAttackData(pos, side)
	ownOccupied := pos.OccupiedBb(side)

	moves := make([]Move, 0, 48)

	if ad.InDoubleCheck {
		moves = generateKingMoves(pos, ad, side, ownOccupied, moves)
	} else {
		own := ownOccupied
		for own != 0 {
			sq := own.PopLsb()
			piece := pos.PieceOn(sq)
			switch piece.TypeOf() {
			case Pawn:
				moves = generatePawnMoves(pos, ad, side, sq, moves)
			case Knight:
				moves = generateLeaperMoves(pos, ad, piece, sq, attacks.KnightAttacks[sq], ownOccupied, moves)
			case Bishop:
				moves = generateLeaperMoves(pos, ad, piece, sq, attacks.BishopAttacksBb(sq, pos.OccupiedAll()), ownOccupied, moves)
			case Rook:
				moves = generateLeaperMoves(pos, ad, piece, sq, attacks.RookAttacksBb(sq, pos.OccupiedAll()), ownOccupied, moves)
			case Queen:
				moves = generateLeaperMoves(pos, ad, piece, sq, attacks.QueenAttacksBb(sq, pos.OccupiedAll()), ownOccupied, moves)
			case King:
				// king handled after the loop, once for castling availability
			}
		}
		moves = generateKingMoves(pos, ad, side, ownOccupied, moves)
	}

	if len(moves) == 0 {
		if ad.InCheck {
			pos.SetWinner(winnerOf(side.Flip()))
		} else {
			pos.SetWinner(position.WinnerDraw)
		}
	}
	return moves
}

func winnerOf(c Color) position.Winner {
	if c == White {
		return position.WinnerWhite
	}
	return position.WinnerBlack
}

// generateLeaperMoves emits moves for any non-pawn, non-king piece: its raw
// attack/move set restricted to not-own-occupied, the pin mask and the
// defend-or-capture mask.
func generateLeaperMoves(pos *position.Position, ad *AttackData, piece Piece, sq Square, raw Bitboard, ownOccupied Bitboard, moves []Move) []Move {
	legal := raw &^ ownOccupied & ad.FriendlyPinsMovesBbs[sq] & (ad.DefendersBb | ad.AttackBb)
	for legal != 0 {
		to := legal.PopLsb()
		flag := FlagQuiet
		if pos.PieceOn(to) != PieceNone {
			flag = FlagCapture
		}
		moves = append(moves, NewMove(sq, to, flag, piece))
	}
	return moves
}

func generatePawnMoves(pos *position.Position, ad *AttackData, side Color, sq Square, moves []Move) []Move {
	piece := pos.PieceOn(sq)
	occAll := pos.OccupiedAll()
	oppOcc := pos.OccupiedBb(side.Flip())
	pinAndBlock := ad.FriendlyPinsMovesBbs[sq] & (ad.DefendersBb | ad.AttackBb)
	promoRank := side.PromotionRank()

	pushDir := side.PawnPushDirection()
	oneStep := ShiftOne(sq.Bb(), pushDir)
	oneStep &^= occAll
	if oneStep&pinAndBlock != 0 {
		to := oneStep.Lsb()
		moves = append(moves, emitPawnMove(sq, to, false, piece, promoRank)...)
	}
	if oneStep != 0 && sq.RankOf() == side.PawnStartRank() {
		twoStep := ShiftOne(oneStep, pushDir) &^ occAll
		if twoStep&pinAndBlock != 0 {
			to := twoStep.Lsb()
			moves = append(moves, NewDoublePawnPush(sq, to, piece))
		}
	}

	captures := attacks.PawnAttacks[side][sq] & oppOcc & pinAndBlock
	for captures != 0 {
		to := captures.PopLsb()
		moves = append(moves, emitPawnMove(sq, to, true, piece, promoRank)...)
	}

	if pos.EpTargetSquare() != SqNone {
		epTargetBb := pos.EpTargetSquare().Bb()
		if attacks.PawnAttacks[side][sq]&epTargetBb != 0 {
			pinOk := epTargetBb&ad.FriendlyPinsMovesBbs[sq] != 0
			checkOk := epTargetBb&ad.DefendersBb != 0 || pos.EpPawnSquare().Bb()&ad.AttackBb != 0
			if pinOk && checkOk && !epExposesCheck(pos, side, sq, pos.EpPawnSquare()) {
				moves = append(moves, NewMove(sq, pos.EpTargetSquare(), FlagEnPassant, piece))
			}
		}
	}

	return moves
}

func emitPawnMove(from, to Square, capture bool, piece Piece, promoRank Rank) []Move {
	if to.RankOf() == promoRank {
		out := make([]Move, 0, 4)
		for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
			out = append(out, NewPromotion(from, to, capture, pt, piece))
		}
		return out
	}
	flag := FlagQuiet
	if capture {
		flag = FlagCapture
	}
	return []Move{NewMove(from, to, flag, piece)}
}

// epExposesCheck implements the discovered-check filter: simulate removing both the capturing and captured pawns
// and test whether an opponent rook or queen now attacks the king along
// the shared rank.
func epExposesCheck(pos *position.Position, side Color, capturingPawnSq, capturedPawnSq Square) bool {
	king := pos.KingSquare(side)
	if king.RankOf() != capturingPawnSq.RankOf() {
		return false
	}
	occAfter := pos.OccupiedAll() &^ capturingPawnSq.Bb() &^ capturedPawnSq.Bb()
	rookAttack := attacks.RookAttacksBb(king, occAfter)
	opp := side.Flip()
	sliders := pos.PiecesBb(opp, Rook) | pos.PiecesBb(opp, Queen)
	return rookAttack&sliders != 0
}

func generateKingMoves(pos *position.Position, ad *AttackData, side Color, ownOccupied Bitboard, moves []Move) []Move {
	king := pos.KingSquare(side)
	piece := pos.PieceOn(king)
	raw := attacks.KingAttacks[king] & ad.KingAllowedSquares
	for raw != 0 {
		to := raw.PopLsb()
		flag := FlagQuiet
		if pos.PieceOn(to) != PieceNone {
			flag = FlagCapture
		}
		moves = append(moves, NewMove(king, to, flag, piece))
	}

	if ad.InCheck {
		return moves
	}

	occAll := pos.OccupiedAll()
	if pos.CastlingRights().Has(Kingside(side)) {
		var between Bitboard
		var crossed [3]Square
		if side == White {
			between = SqF1.Bb() | SqG1.Bb()
			crossed = [3]Square{SqE1, SqF1, SqG1}
		} else {
			between = SqF8.Bb() | SqG8.Bb()
			crossed = [3]Square{SqE8, SqF8, SqG8}
		}
		if occAll&between == 0 && allInAllowed(crossed[:], ad.KingAllowedSquares|king.Bb()) {
			to := crossed[2]
			moves = append(moves, NewMove(king, to, FlagCastleKingside, piece))
		}
	}
	if pos.CastlingRights().Has(Queenside(side)) {
		var between Bitboard
		var crossed [3]Square
		if side == White {
			between = SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
			crossed = [3]Square{SqE1, SqD1, SqC1}
		} else {
			between = SqB8.Bb() | SqC8.Bb() | SqD8.Bb()
			crossed = [3]Square{SqE8, SqD8, SqC8}
		}
		if occAll&between == 0 && allInAllowed(crossed[:], ad.KingAllowedSquares|king.Bb()) {
			to := crossed[2]
			moves = append(moves, NewMove(king, to, FlagCastleQueenside, piece))
		}
	}

	return moves
}

func allInAllowed(squares []Square, allowed Bitboard) bool {
	for _, sq := range squares {
		if allowed&sq.Bb() == 0 {
			return false
		}
	}
	return true
}

// OrderMoves sorts moves for search: the
// transposition-table best move first, then by a blend of MVV-LVA,
// promotion value, attacked-square discouragement and piece-square bonus.
// maximizing selects ascending vs descending sort order.
func OrderMoves(pos *position.Position, moves []Move, ttMove Move, score func(Move) int32, maximizing bool) {
	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a == ttMove {
			return true
		}
		if b == ttMove {
			return false
		}
		sa, sb := score(a), score(b)
		if maximizing {
			return sa > sb
		}
		return sa < sb
	})
}
