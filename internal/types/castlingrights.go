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

// CastlingRights packs the four castling rights into a 4 bit field, per
// bit 0 white kingside, bit 1 white queenside, bit 2 black
// kingside, bit 3 black queenside.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	CastleNone = CastlingRights(0)
	CastleAll  = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// Kingside returns the kingside right for color c.
func Kingside(c Color) CastlingRights {
	if c == White {
		return CastleWhiteKingside
	}
	return CastleBlackKingside
}

// Queenside returns the queenside right for color c.
func Queenside(c Color) CastlingRights {
	if c == White {
		return CastleWhiteQueenside
	}
	return CastleBlackQueenside
}

// Has reports whether all bits of other are present in cr.
func (cr CastlingRights) Has(other CastlingRights) bool {
	return cr&other == other
}

// Remove clears the given rights and returns the result.
func (cr CastlingRights) Remove(other CastlingRights) CastlingRights {
	return cr &^ other
}

// String renders cr in FEN castling-field form, e.g. "KQkq", or "-".
func (cr CastlingRights) String() string {
	if cr == CastleNone {
		return "-"
	}
	s := ""
	if cr.Has(CastleWhiteKingside) {
		s += "K"
	}
	if cr.Has(CastleWhiteQueenside) {
		s += "Q"
	}
	if cr.Has(CastleBlackKingside) {
		s += "k"
	}
	if cr.Has(CastleBlackQueenside) {
		s += "q"
	}
	return s
}
