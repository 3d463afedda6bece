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


// Package attacks precomputes and indexes the attack geometry shared by the
// move generator and the attack-data analyser: knight/king/pawn tables and
// magic-multiplier sliding attack tables for rooks and bishops. Everything here is built once in an init() and is read-only
// for the life of the process.
package attacks

import . "github.com/kschaper/bitchess/internal/types"

// rayAttacks traces a sliding ray from sq in direction d until it falls off
// the board or hits an occupied square (inclusive of the blocker - own
// pieces are treated as attackable blockers and are masked off by the
// caller).
func rayAttacks(sq Square, d Direction, occupied Bitboard) Bitboard {
	var attacks Bitboard
	b := sq.Bb()
	for {
		b = ShiftOne(b, d)
		if b == 0 {
			break
		}
		attacks |= b
		if b&occupied != 0 {
			break
		}
	}
	return attacks
}

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}

// slidingAttacks computes the true sliding attack set of a rook or bishop
// sitting on sq against the given occupancy, by ray tracing in each of its
// four directions.
func slidingAttacks(sq Square, occupied Bitboard, dirs [4]Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		attacks |= rayAttacks(sq, d, occupied)
	}
	return attacks
}

// relevantMask returns a sliding piece's "relevant squares" occupancy mask:
// every square on sq's rays except the last (board-edge) square of each
// ray. An edge square never changes whether the ray reaches it (the ray
// always terminates there), so blockers on it need not be tracked by the
// magic index.
func relevantMask(sq Square, dirs [4]Direction) Bitboard {
	var mask Bitboard
	for _, d := range dirs {
		b := sq.Bb()
		for {
			next := ShiftOne(b, d)
			if next == 0 {
				break
			}
			// stop one square before the edge: the square "next" would be
			// the last one on this ray, check whether stepping once more
			// would fall off the board.
			if ShiftOne(next, d) == 0 {
				break
			}
			mask |= next
			b = next
		}
	}
	return mask
}
