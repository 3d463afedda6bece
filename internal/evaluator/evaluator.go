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

// Package evaluator scores a Position in centipawn-equivalents from the
// side-to-move's perspective by summing material, piece-square, pawn
// structure, mobility and endgame king-pressure terms.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/kschaper/bitchess/internal/attacks"
	"github.com/kschaper/bitchess/internal/config"
	myLogging "github.com/kschaper/bitchess/internal/logging"
	"github.com/kschaper/bitchess/internal/position"
	"github.com/kschaper/bitchess/internal/util"

	. "github.com/kschaper/bitchess/internal/types"
)

// Evaluator holds the logger used to report evaluation activity. It carries
// no per-position state: every call to Evaluate is self contained, which
// keeps a single Evaluator safe to share across concurrent search workers.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate scores pos from the perspective of the side to move.
// Checkmate returns -KingValue (the search scales this by remaining depth
// to prefer faster mates); stalemate returns 0. A position that has not
// been found terminal by move generation is scored on material,
// piece-square, pawn structure, mobility and endgame king-pressure terms.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	if pos.IsTerminal() {
		if pos.Winner() == position.WinnerDraw {
			return ValueDraw
		}
		// The side to move has no legal moves and the position is not
		// drawn, so it is checkmated.
		return -KingValue
	}

	score := materialScore(pos) + pieceSquareScore(pos) + pawnStructureScore(pos) + mobilityScore(pos) + endgameKingPressureScore(pos)
	return score * pos.SideToMove().Sign()
}

// materialScore sums Q/R/B/N/P material White-minus-Black.
func materialScore(pos *position.Position) Value {
	var score Value
	for pt := Pawn; pt <= Queen; pt++ {
		white := pos.PiecesBb(White, pt).PopCount()
		black := pos.PiecesBb(Black, pt).PopCount()
		score += Value(white-black) * pt.ValueOf()
	}
	return score
}

// pieceSquareScore sums the per-(piece,square) bonuses White-minus-Black,
// switching the king to its endgame table once the position qualifies as
// an endgame.
func pieceSquareScore(pos *position.Position) Value {
	var score Value
	for pt := Pawn; pt <= Queen; pt++ {
		white := pos.PiecesBb(White, pt)
		for white != 0 {
			score += pieceSquareValue(White, pt, white.PopLsb())
		}
		black := pos.PiecesBb(Black, pt)
		for black != 0 {
			score -= pieceSquareValue(Black, pt, black.PopLsb())
		}
	}
	endgame := isEndgame(pos)
	score += kingSquareValue(White, pos.KingSquare(White), endgame)
	score -= kingSquareValue(Black, pos.KingSquare(Black), endgame)
	return score
}

// mobilityScore adds (own - opponent) pseudo move count scaled by the
// configured divisor, White-minus-Black.
func mobilityScore(pos *position.Position) Value {
	diff := Value(pseudoMoveCount(pos, White) - pseudoMoveCount(pos, Black))
	return diff / Value(config.Settings.Eval.MobilityDivisor)
}

// pseudoMoveCount counts the squares every non-pawn piece of color c
// attacks or could move to, ignoring pins and checks, as a cheap mobility
// proxy.
func pseudoMoveCount(pos *position.Position, c Color) int {
	occAll := pos.OccupiedAll()
	own := pos.OccupiedBb(c)
	count := 0
	for pt := Knight; pt <= King; pt++ {
		bb := pos.PiecesBb(c, pt)
		for bb != 0 {
			sq := bb.PopLsb()
			count += (attacks.AttacksBb(pt, sq, occAll) &^ own).PopCount()
		}
	}
	return count
}

// nonPawnPieceCount counts c's knights, bishops, rooks and queens, used to
// gauge how far the game has progressed toward an endgame.
func nonPawnPieceCount(pos *position.Position, c Color) int {
	count := 0
	for pt := Knight; pt <= Queen; pt++ {
		count += pos.PiecesBb(c, pt).PopCount()
	}
	return count
}

// isEndgame reports whether both sides have fallen below the configured
// non-pawn piece threshold.
func isEndgame(pos *position.Position) bool {
	threshold := int(config.Settings.Eval.EndgamePieceThreshold)
	return nonPawnPieceCount(pos, White) < threshold && nonPawnPieceCount(pos, Black) < threshold
}

// IsEndgame exposes isEndgame to other packages; the search package's move
// ordering only adds the king-pressure bonus once the position qualifies.
func IsEndgame(pos *position.Position) bool {
	return isEndgame(pos)
}

// KingPressureDestination scores moving a piece to sq for the mover c: the
// distance it drives the opponent king from the centre plus the proximity
// it brings c's own king, the same terms endgameKingPressureScore sums over
// the whole board, evaluated for one destination square during move
// ordering.
func KingPressureDestination(pos *position.Position, c Color, sq Square) Value {
	oppKing := pos.KingSquare(c.Flip())
	ownKing := pos.KingSquare(c)
	return Value(centerDistance(oppKing)) + Value(8-kingDistance(sq, oppKing)) + Value(8-kingDistance(sq, ownKing))
}

// endgameKingPressureScore rewards driving the opponent king to the edge
// and bringing the own king close to it, active only in the endgame.
func endgameKingPressureScore(pos *position.Position) Value {
	if !isEndgame(pos) {
		return 0
	}
	weight := Value(config.Settings.Eval.EndgameKingPressureWeight)
	whiteKing, blackKing := pos.KingSquare(White), pos.KingSquare(Black)
	kingDist := Value(kingDistance(whiteKing, blackKing))

	whitePressure := Value(centerDistance(blackKing)) + (8 - kingDist)
	blackPressure := Value(centerDistance(whiteKing)) + (8 - kingDist)
	return (whitePressure - blackPressure) * weight
}

// kingDistance is the Chebyshev (king-move) distance between two squares.
func kingDistance(a, b Square) int {
	fd := util.Abs(int(a.FileOf()) - int(b.FileOf()))
	rd := util.Abs(int(a.RankOf()) - int(b.RankOf()))
	if fd > rd {
		return fd
	}
	return rd
}

// centerDistance is sq's Chebyshev distance from the nearest of the four
// central squares (d4/d5/e4/e5).
func centerDistance(sq Square) int {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	fd := util.Min(util.Abs(f-3), util.Abs(f-4))
	rd := util.Min(util.Abs(r-3), util.Abs(r-4))
	if fd > rd {
		return fd
	}
	return rd
}
