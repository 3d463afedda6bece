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


package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed one-bit-per-square into a 64 bit word.
// Bit k set means square k is a member of the set. The empty set is 0.
type Bitboard uint64

// File and rank masks, built once from the square numbering.
var (
	FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb Bitboard
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb Bitboard
	FileBb [FileLength]Bitboard
	RankBb [RankLength]Bitboard
)

// AllSquaresBb is the full occupancy bitboard (every bit set).
const AllSquaresBb Bitboard = 0xFFFFFFFFFFFFFFFF

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		FileBb[sq.FileOf()] |= sq.Bb()
		RankBb[sq.RankOf()] |= sq.Bb()
	}
	FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb =
		FileBb[FileA], FileBb[FileB], FileBb[FileC], FileBb[FileD], FileBb[FileE], FileBb[FileF], FileBb[FileG], FileBb[FileH]
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb =
		RankBb[Rank1], RankBb[Rank2], RankBb[Rank3], RankBb[Rank4], RankBb[Rank5], RankBb[Rank6], RankBb[Rank7], RankBb[Rank8]
}

// notFileA / notFileH mask out the file a shift would otherwise wrap into.
var notFileABb = ^Bitboard(0x0101010101010101)
var notFileHBb = ^Bitboard(0x8080808080808080)

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set squares in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant set square of b, or SqNone if b is empty.
// Implementations may use the trailing-zeros intrinsic directly, as done here.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set square of *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// ShiftOne moves every set bit of b one square in direction d, masking off
// any bit that would wrap around the left/right board edge.
func ShiftOne(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & notFileHBb) << 1
	case West:
		return (b & notFileABb) >> 1
	case Northeast:
		return (b & notFileHBb) << 9
	case Northwest:
		return (b & notFileABb) << 7
	case Southeast:
		return (b & notFileHBb) >> 7
	case Southwest:
		return (b & notFileABb) >> 9
	default:
		return 0
	}
}

// shiftFn returns a function performing a single ShiftOne in direction d, the
// form the attack-data ray walker consumes (see DirectionTo).
func shiftFn(d Direction) func(Bitboard) Bitboard {
	return func(b Bitboard) Bitboard { return ShiftOne(b, d) }
}

// DirectionTo returns the shift function that steps one square from `from`
// toward `to`, given the two squares share a rank, file or diagonal. The
// second return value is false if the squares share none of those lines.
func DirectionTo(from, to Square) (func(Bitboard) Bitboard, bool) {
	ff, rf := int(from.FileOf()), int(from.RankOf())
	ft, rt := int(to.FileOf()), int(to.RankOf())
	df, dr := ft-ff, rt-rf
	switch {
	case dr == 0 && df > 0:
		return shiftFn(East), true
	case dr == 0 && df < 0:
		return shiftFn(West), true
	case df == 0 && dr > 0:
		return shiftFn(North), true
	case df == 0 && dr < 0:
		return shiftFn(South), true
	case df == dr && df > 0:
		return shiftFn(Northeast), true
	case df == dr && df < 0:
		return shiftFn(Southwest), true
	case df == -dr && df > 0:
		return shiftFn(Southeast), true
	case df == -dr && df < 0:
		return shiftFn(Northwest), true
	default:
		return nil, false
	}
}

// SameLine reports whether two squares share a rank, file or either diagonal.
func SameLine(a, b Square) bool {
	_, ok := DirectionTo(a, b)
	return ok
}

// String renders b as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		if r > Rank1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
