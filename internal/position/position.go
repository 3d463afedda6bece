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


// Package position implements the bitboard Position representation: eight
// bitboards (two colour masks, six piece-type masks), side to move,
// castling rights, en-passant state, move counters, a move-history stack
// for unmake, and an incrementally maintained Zobrist key.
package position

import (
	"strings"

	. "github.com/kschaper/bitchess/internal/types"
)

// Winner records the outcome of a Position once it has been found terminal
// by move generation. A Position does not know this on its own; movegen
// sets it via SetWinner after finding an empty legal-move list.
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerWhite
	WinnerBlack
	WinnerDraw
)

// Position is the bitboard representation described in the data model:
// colour masks, piece-type masks, side to move, castling rights, the
// en-passant target and pushed-pawn squares, the halfmove/fullmove
// counters, the game outcome and the Zobrist key. A mailbox array is kept
// alongside the bitboards as an O(1) piece-on-square cache; it is always
// kept in lock-step with the bitboards, and DoMove's debug-build invariant
// checks read it.
type Position struct {
	colorBb [ColorLength]Bitboard
	pieceBb [PtLength]Bitboard
	mailbox [SqLength]Piece

	sideToMove Color
	castling   CastlingRights
	epTargetSq Square
	epPawnSq   Square

	halfmoveClock  int
	fullmoveNumber int

	zobristKey Key
	winner     Winner

	lastMove          Move
	lastCapturedPiece Piece

	history []undoRecord
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New returns a Position set up at the standard start, or from the given
// FEN if one is supplied.
func New(fen ...string) (*Position, error) {
	f := StartFen
	if len(fen) > 0 {
		f = fen[0]
	}
	p := &Position{}
	if err := p.setupFromFen(f); err != nil {
		return nil, err
	}
	return p, nil
}

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// Key returns the position's current Zobrist key.
func (p *Position) Key() Key {
	return p.zobristKey
}

// RecomputedKey recomputes the Zobrist key from scratch; used to check the
// incremental key against a full recompute.
func (p *Position) RecomputedKey() Key {
	return p.zobristRecompute()
}

// PieceOn returns the piece occupying sq, or PieceNone if empty.
func (p *Position) PieceOn(sq Square) Piece {
	return p.mailbox[sq]
}

// PiecesBb returns the bitboard of pieces of type pt belonging to c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.colorBb[c] & p.pieceBb[pt]
}

// OccupiedBb returns the bitboard of squares occupied by c's pieces.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.colorBb[c]
}

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard {
	return p.colorBb[White] | p.colorBb[Black]
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castling
}

// EpTargetSquare returns the en-passant target square, or SqNone.
func (p *Position) EpTargetSquare() Square {
	return p.epTargetSq
}

// EpPawnSquare returns the square of the pawn that can be captured en
// passant, or SqNone.
func (p *Position) EpPawnSquare() Square {
	return p.epPawnSq
}

// HalfmoveClock returns the halfmove clock (plies since the last pawn move
// or capture).
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the current fullmove number.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.PiecesBb(c, King).Lsb()
}

// Winner returns the recorded game outcome, or WinnerNone if the position
// has not been determined terminal.
func (p *Position) Winner() Winner {
	return p.winner
}

// SetWinner records the game outcome. Called by movegen once it has found
// that the side to move has no legal moves.
func (p *Position) SetWinner(w Winner) {
	p.winner = w
}

// IsTerminal reports whether a winner has been recorded.
func (p *Position) IsTerminal() bool {
	return p.winner != WinnerNone
}

// LastMove returns the most recently applied move, or the zero Move if
// none has been applied yet.
func (p *Position) LastMove() Move {
	return p.lastMove
}

// LastCapturedPiece returns the piece captured by the last move applied, or
// PieceNone if the last move was not a capture.
func (p *Position) LastCapturedPiece() Piece {
	return p.lastCapturedPiece
}

// Clone returns a deep copy of p suitable for handing to a worker that
// explores it independently.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]undoRecord(nil), p.history...)
	return &c
}

// String renders an 8x8 ASCII board with rank 8 on top, for debugging.
func (p *Position) String() string {
	var b strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		b.WriteString(r.String())
		b.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			piece := p.mailbox[sq]
			if piece == PieceNone {
				b.WriteString(". ")
			} else {
				b.WriteString(piece.String())
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("  a b c d e f g h\n")
	b.WriteString(p.Fen())
	return b.String()
}

func (p *Position) putPiece(piece Piece, sq Square) {
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.colorBb[c] |= sq.Bb()
	p.pieceBb[pt] |= sq.Bb()
	p.mailbox[sq] = piece
	p.zobristKey ^= pieceSquareKey(piece, sq)
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.mailbox[sq]
	if piece == PieceNone {
		return PieceNone
	}
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.colorBb[c] &^= sq.Bb()
	p.pieceBb[pt] &^= sq.Bb()
	p.mailbox[sq] = PieceNone
	p.zobristKey ^= pieceSquareKey(piece, sq)
	return piece
}

func (p *Position) movePiece(from, to Square) {
	piece := p.removePiece(from)
	p.putPiece(piece, to)
}
