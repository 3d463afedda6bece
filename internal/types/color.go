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

import "fmt"

// Color identifies the side to move or the owner of a piece.
type Color uint8

const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c <= Black
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// Sign returns 1 for White and -1 for Black, used to flip a white-relative
// score into the perspective of the side to move.
func (c Color) Sign() Value {
	if c == White {
		return 1
	}
	return -1
}

var pawnPushDirection = [2]Direction{North, South}

// PawnPushDirection returns the direction a pawn of color c advances.
func (c Color) PawnPushDirection() Direction {
	return pawnPushDirection[c]
}

var promotionRank = [2]Rank{Rank8, Rank1}

// PromotionRank returns the rank on which a pawn of color c promotes.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}

var pawnStartRank = [2]Rank{Rank2, Rank7}

// PawnStartRank returns the rank on which pawns of color c begin the game.
func (c Color) PawnStartRank() Rank {
	return pawnStartRank[c]
}
