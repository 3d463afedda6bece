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

import . "github.com/kschaper/bitchess/internal/types"

// Key is a 64-bit Zobrist hash of a Position.
type Key uint64

// zobrist seed. Fixed so that a from-scratch recompute always agrees with
// the incrementally maintained key across processes and runs.
const zobristSeed uint64 = 5489123843

var (
	zobristPieceSquare [ColorLength][PtLength][SqLength]Key
	zobristSideToMove   Key
	zobristCastling     [4]Key // WK, WQ, BK, BQ, in CastlingRights bit order
	zobristEpFile       [FileLength]Key
)

func init() {
	r := NewRandom(zobristSeed)
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := SqA1; sq < SqNone; sq++ {
				zobristPieceSquare[c][pt][sq] = Key(r.Rand64())
			}
		}
	}
	zobristSideToMove = Key(r.Rand64())
	for i := range zobristCastling {
		zobristCastling[i] = Key(r.Rand64())
	}
	for f := FileA; f <= FileH; f++ {
		zobristEpFile[f] = Key(r.Rand64())
	}
}

func pieceSquareKey(piece Piece, sq Square) Key {
	return zobristPieceSquare[piece.ColorOf()][piece.TypeOf()][sq]
}

// castlingKeys returns the XOR of the zobrist keys for every right set in cr.
func castlingKeys(cr CastlingRights) Key {
	var k Key
	for i, bit := range []CastlingRights{CastleWhiteKingside, CastleWhiteQueenside, CastleBlackKingside, CastleBlackQueenside} {
		if cr.Has(bit) {
			k ^= zobristCastling[i]
		}
	}
	return k
}

func epFileKey(epTargetSq Square) Key {
	if epTargetSq == SqNone {
		return 0
	}
	return zobristEpFile[epTargetSq.FileOf()]
}

// zobristRecompute builds the Zobrist key for p entirely from scratch,
// XORing in every piece, the castling rights, the en-passant file and the
// side-to-move key.
func (p *Position) zobristRecompute() Key {
	var k Key
	for sq := SqA1; sq < SqNone; sq++ {
		piece := p.mailbox[sq]
		if piece != PieceNone {
			k ^= pieceSquareKey(piece, sq)
		}
	}
	k ^= castlingKeys(p.castling)
	k ^= epFileKey(p.epTargetSq)
	if p.sideToMove == Black {
		k ^= zobristSideToMove
	}
	return k
}
