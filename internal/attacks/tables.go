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


package attacks

import . "github.com/kschaper/bitchess/internal/types"

// KnightAttacks, KingAttacks, PawnPushes and PawnAttacks are the static
// per-square tables from. They are filled once from the knight/
// king step offsets and the single-step shift primitives and are read-only
// afterwards.
var (
	KnightAttacks [SqLength]Bitboard
	KingAttacks   [SqLength]Bitboard

	// PawnPushes[color][sq] is the set of squares a pawn on sq can push to
	// (including the two-square advance from the starting rank).
	PawnPushes [ColorLength][SqLength]Bitboard
	// PawnAttacks[color][sq] is the set of squares a pawn on sq attacks.
	PawnAttacks [ColorLength][SqLength]Bitboard

	// RookRelevantMask / BishopRelevantMask are the occupancy masks whose
	// contents determine a slider's attacks
	RookRelevantMask   [SqLength]Bitboard
	BishopRelevantMask [SqLength]Bitboard
)

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				KnightAttacks[sq] |= SquareOf(File(nf), Rank(nr)).Bb()
			}
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				KingAttacks[sq] |= SquareOf(File(nf), Rank(nr)).Bb()
			}
		}

		// White pawn pushes/attacks
		if r < 7 {
			PawnPushes[White][sq] |= ShiftOne(sq.Bb(), North)
			if sq.RankOf() == Rank2 {
				PawnPushes[White][sq] |= ShiftOne(ShiftOne(sq.Bb(), North), North)
			}
			PawnAttacks[White][sq] = ShiftOne(sq.Bb(), Northeast) | ShiftOne(sq.Bb(), Northwest)
		}
		// Black pawn pushes/attacks
		if r > 0 {
			PawnPushes[Black][sq] |= ShiftOne(sq.Bb(), South)
			if sq.RankOf() == Rank7 {
				PawnPushes[Black][sq] |= ShiftOne(ShiftOne(sq.Bb(), South), South)
			}
			PawnAttacks[Black][sq] = ShiftOne(sq.Bb(), Southeast) | ShiftOne(sq.Bb(), Southwest)
		}

		RookRelevantMask[sq] = relevantMask(sq, rookDirs)
		BishopRelevantMask[sq] = relevantMask(sq, bishopDirs)
	}
}
