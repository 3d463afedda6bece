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
	. "github.com/kschaper/bitchess/internal/types"
)

// Piece-square tables, one per piece type from white's perspective (square
// 0 = a1 is the first entry of the table's first row below, since the
// arrays are written rank 1 up to rank 8). Black's bonus for a square is
// the white table's value at the vertically mirrored square. The king
// carries separate midgame/endgame tables, switched on a threshold rather
// than blended.
var (
	pawnPst = [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -30, -30, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 5, 5, 5, 5, 5, 5, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightPst = [SqLength]Value{
		-50, -25, -20, -30, -30, -20, -25, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}

	bishopPst = [SqLength]Value{
		-20, -10, -40, -10, -10, -40, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}

	rookPst = [SqLength]Value{
		-15, -10, 15, 15, 15, 15, -10, -15,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		5, 5, 5, 5, 5, 5, 5, 5,
	}

	queenPst = [SqLength]Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}

	kingMidGamePst = [SqLength]Value{
		20, 50, 0, -20, -20, 0, 50, 20,
		0, 0, -20, -20, -20, -20, 0, 0,
		-10, -20, -20, -30, -30, -30, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}

	kingEndGamePst = [SqLength]Value{
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -30, -30, -20, -20, -30, -30, -50,
	}
)

func pstLookup(table *[SqLength]Value, c Color, sq Square) Value {
	if c == White {
		return table[sq]
	}
	return table[sq^56]
}

// pieceSquareValue returns the non-king piece-square bonus for piece type
// pt of color c standing on sq.
func pieceSquareValue(c Color, pt PieceType, sq Square) Value {
	switch pt {
	case Pawn:
		return pstLookup(&pawnPst, c, sq)
	case Knight:
		return pstLookup(&knightPst, c, sq)
	case Bishop:
		return pstLookup(&bishopPst, c, sq)
	case Rook:
		return pstLookup(&rookPst, c, sq)
	case Queen:
		return pstLookup(&queenPst, c, sq)
	default:
		return 0
	}
}

// kingSquareValue returns the king's piece-square bonus, switched between
// the midgame and endgame table by inEndgame.
func kingSquareValue(c Color, sq Square, inEndgame bool) Value {
	if inEndgame {
		return pstLookup(&kingEndGamePst, c, sq)
	}
	return pstLookup(&kingMidGamePst, c, sq)
}

// PieceSquareBonus exposes pieceSquareValue to other packages (the search
// package's move ordering blends it into its per-move score).
func PieceSquareBonus(c Color, pt PieceType, sq Square) Value {
	return pieceSquareValue(c, pt, sq)
}
