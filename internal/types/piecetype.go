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

// PieceType is the kind of a chess piece, independent of color.
type PieceType uint8

//noinspection GoUnusedConst
const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength = 7
)

// IsValid reports whether pt names a real piece type (not PtNone).
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

var pieceTypeLabels = [PtLength]string{" ", "p", "n", "b", "r", "q", "k"}

// String returns the lower case algebraic letter for pt ("p", "n",...).
func (pt PieceType) String() string {
	if int(pt) >= len(pieceTypeLabels) {
		return "?"
	}
	return pieceTypeLabels[pt]
}

// Value is a centipawn-equivalent score, positive favouring the side to move.
type Value int32

// Material values in centipawns
const (
	ValueZero  Value = 0
	PawnValue  Value = 100
	KnightValue Value = 300
	BishopValue Value = 300
	RookValue  Value = 500
	QueenValue Value = 900
	KingValue  Value = 20000

	ValueDraw     Value = 0
	ValueInfinite Value = 32000
	ValueNone     Value = 32001
)

var pieceTypeValue = [PtLength]Value{ValueZero, PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// ValueOf returns the material worth of one piece of type pt.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// Piece packs a color and a piece type into one byte: Piece = PieceType*2 + Color.
type Piece uint8

// PieceNone represents the empty square.
const PieceNone Piece = 0

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(pt)<<1 | Piece(c)
}

// TypeOf returns the piece type of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p >> 1)
}

// ColorOf returns the color of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

// IsValid reports whether p is an occupied-square piece.
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

// String renders p the way FEN piece placement does: uppercase for white,
// lowercase for black, "." for the empty square.
func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	s := p.TypeOf().String()
	if p.ColorOf() == White {
		return upper(s)
	}
	return s
}

func upper(s string) string {
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
