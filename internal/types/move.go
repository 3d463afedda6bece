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

// MoveFlag classifies a Move. Values are significant: they double as an
// array index into promotion-piece lookup tables and are compared directly
// against the constants below, so the numeric values must not change.
type MoveFlag uint8

//noinspection GoUnusedConst
const (
	FlagQuiet           MoveFlag = 0
	FlagDoublePawnPush  MoveFlag = 1
	FlagCastleKingside  MoveFlag = 2
	FlagCastleQueenside MoveFlag = 3
	FlagCapture         MoveFlag = 4
	FlagEnPassant       MoveFlag = 5

	FlagPromoKnight MoveFlag = 8
	FlagPromoBishop MoveFlag = 9
	FlagPromoRook   MoveFlag = 10
	FlagPromoQueen  MoveFlag = 11

	FlagPromoCaptureKnight MoveFlag = 12
	FlagPromoCaptureBishop MoveFlag = 13
	FlagPromoCaptureRook   MoveFlag = 14
	FlagPromoCaptureQueen  MoveFlag = 15
)

// promoPieceType maps a promotion (or promotion-capture) flag to the piece
// type promoted to. Indexed by flag & 3 (knight=0, bishop=1, rook=2, queen=3).
var promoPieceType = [4]PieceType{Knight, Bishop, Rook, Queen}

// PromotionPiece returns the piece type a promotion/promotion-capture flag
// promotes to. Only valid for flags >= FlagPromoKnight.
func (f MoveFlag) PromotionPiece() PieceType {
	return promoPieceType[f&3]
}

// Move is the packed 16 bit move representation from bits 0-5
// destination, bits 6-11 origin, bits 12-15 flag. It additionally carries
// the moving piece and, for double pawn pushes, the en-passant target and
// the pushed pawn's square so the following ply can generate en-passant
// captures and unmake can restore state without recomputing them.
type Move struct {
	packed   uint16
	piece    Piece
	epTarget Bitboard
	epPawnSq Bitboard
}

// MoveNone is the zero-value "no move" sentinel (origin == destination == a1
// with a quiet flag, which can never be produced by the generator).
var MoveNone = Move{}

// NewMove builds a quiet/capture move with no promotion.
func NewMove(from, to Square, flag MoveFlag, piece Piece) Move {
	return Move{packed: pack(from, to, flag), piece: piece}
}

// NewDoublePawnPush builds a double pawn push move, recording the en-passant
// target square (the square jumped over) and the pushed pawn's own square.
func NewDoublePawnPush(from, to Square, piece Piece) Move {
	return Move{
		packed:   pack(from, to, FlagDoublePawnPush),
		piece:    piece,
		epTarget: Square((int(from) + int(to)) / 2).Bb(),
		epPawnSq: to.Bb(),
	}
}

// NewPromotion builds a promotion (or promotion-capture) move.
func NewPromotion(from, to Square, capture bool, promo PieceType, piece Piece) Move {
	var flag MoveFlag
	switch promo {
	case Knight:
		flag = FlagPromoKnight
	case Bishop:
		flag = FlagPromoBishop
	case Rook:
		flag = FlagPromoRook
	case Queen:
		flag = FlagPromoQueen
	default:
		flag = FlagPromoQueen
	}
	if capture {
		flag += 4
	}
	return Move{packed: pack(from, to, flag), piece: piece}
}

func pack(from, to Square, flag MoveFlag) uint16 {
	return uint16(to) | uint16(from)<<6 | uint16(flag)<<12
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m.packed & 0x3F)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m.packed >> 6) & 0x3F)
}

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag(m.packed >> 12)
}

// Piece returns the moving piece (before promotion, if any).
func (m Move) Piece() Piece {
	return m.piece
}

// Color returns the color of the moving piece.
func (m Move) Color() Color {
	return m.piece.ColorOf()
}

// EpTarget returns the en-passant target square bitboard recorded by a
// double pawn push, or 0 for any other move.
func (m Move) EpTarget() Bitboard {
	return m.epTarget
}

// EpPawnSquare returns the pushed pawn's own square bitboard recorded by a
// double pawn push, or 0 for any other move.
func (m Move) EpPawnSquare() Bitboard {
	return m.epPawnSq
}

// IsCapture reports whether m captures a piece (including en passant and
// promotion-captures).
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEnPassant || (f >= FlagPromoCaptureKnight && f <= FlagPromoCaptureQueen)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= FlagPromoKnight
}

// IsCastle reports whether m castles.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// PromotionPiece returns the piece type promoted to, or PtNone if m is not a
// promotion.
func (m Move) PromotionPiece() PieceType {
	if !m.IsPromotion() {
		return PtNone
	}
	return m.Flag().PromotionPiece()
}

// IsValid reports whether m is a non-trivial, well formed move: origin and
// destination differ and both are real squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To() && m.From().IsValid() && m.To().IsValid()
}

// String renders m in algebraic form: <from><to>[promo-letter], e.g. "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionPiece().String()
	}
	return s
}
