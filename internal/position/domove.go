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

import (
	"github.com/kschaper/bitchess/internal/assert"

	. "github.com/kschaper/bitchess/internal/types"
)

// undoRecord captures everything DoMove mutates beyond the bitboards and
// mailbox themselves, so UndoMove can restore the exact prior Position.

type undoRecord struct {
	move              Move
	capturedPiece     Piece
	captureSquare     Square
	castling          CastlingRights
	epTargetSq        Square
	epPawnSq          Square
	halfmoveClock     int
	zobristKey        Key
	winner            Winner
	lastMove          Move
	lastCapturedPiece Piece
}

// rookCorner returns the square of the rook involved in castling on side
// "kingside" for color c, and rookTo, the square it lands on.
func rookCorner(c Color, kingside bool) (from, to Square) {
	if c == White {
		if kingside {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if kingside {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}

// DoMove applies m to p, pushing an undo record that UndoMove can later pop
// to restore the exact prior state.
func (p *Position) DoMove(m Move) {
	from := m.From()
	to := m.To()
	flag := m.Flag()
	color := p.sideToMove

	mover := p.mailbox[from]
	if assert.DEBUG {
		assert.Assert(mover != PieceNone, "DoMove: no piece on origin square %s", from)
		assert.Assert(mover.TypeOf() != King || p.mailbox[to].TypeOf() != King, "DoMove: attempted king capture")
	}

	rec := undoRecord{
		move:              m,
		captureSquare:     SqNone,
		castling:          p.castling,
		epTargetSq:        p.epTargetSq,
		epPawnSq:          p.epPawnSq,
		halfmoveClock:     p.halfmoveClock,
		zobristKey:        p.zobristKey,
		winner:            p.winner,
		lastMove:          p.lastMove,
		lastCapturedPiece: p.lastCapturedPiece,
	}

	// clear previous en-passant file key, restored below if a double push sets a new one
	p.zobristKey ^= epFileKey(p.epTargetSq)

	isPawnMove := mover.TypeOf() == Pawn
	isCaptureOrPawn := isPawnMove

	switch flag {
	case FlagEnPassant:
		capturedSq := p.epPawnSq
		rec.capturedPiece = p.removePiece(capturedSq)
		rec.captureSquare = capturedSq
		p.movePiece(from, to)
		isCaptureOrPawn = true

	case FlagCastleKingside, FlagCastleQueenside:
		p.movePiece(from, to)
		rookFrom, rookTo := rookCorner(color, flag == FlagCastleKingside)
		p.movePiece(rookFrom, rookTo)

	default:
		if m.IsCapture() {
			rec.capturedPiece = p.removePiece(to)
			rec.captureSquare = to
			isCaptureOrPawn = true
		}
		if m.IsPromotion() {
			p.removePiece(from)
			p.putPiece(MakePiece(color, m.PromotionPiece()), to)
		} else {
			p.movePiece(from, to)
		}
	}

	p.lastMove = m
	p.lastCapturedPiece = rec.capturedPiece

	// castling-rights updates
	if mover.TypeOf() == King {
		p.castling = p.castling.Remove(Kingside(color) | Queenside(color))
	}
	clearRookRight := func(sq Square) {
		switch sq {
		case SqA1:
			p.castling = p.castling.Remove(CastleWhiteQueenside)
		case SqH1:
			p.castling = p.castling.Remove(CastleWhiteKingside)
		case SqA8:
			p.castling = p.castling.Remove(CastleBlackQueenside)
		case SqH8:
			p.castling = p.castling.Remove(CastleBlackKingside)
		}
	}
	clearRookRight(from)
	if rec.captureSquare != SqNone {
		clearRookRight(rec.captureSquare)
	}
	p.zobristKey ^= castlingKeys(rec.castling)
	p.zobristKey ^= castlingKeys(p.castling)

	// en-passant state
	p.epTargetSq = SqNone
	p.epPawnSq = SqNone
	if flag == FlagDoublePawnPush {
		p.epTargetSq = m.EpTarget().Lsb()
		p.epPawnSq = m.EpPawnSquare().Lsb()
	}
	p.zobristKey ^= epFileKey(p.epTargetSq)

	if isCaptureOrPawn {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if color == Black {
		p.fullmoveNumber++
	}

	p.sideToMove = color.Flip()
	p.zobristKey ^= zobristSideToMove
	p.winner = WinnerNone

	p.history = append(p.history, rec)
}

// UndoMove pops the last undo record and restores every field it affected,
// including the Zobrist key.
func (p *Position) UndoMove() {
	n := len(p.history)
	if assert.DEBUG {
		assert.Assert(n > 0, "UndoMove: history stack is empty")
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]

	m := rec.move
	from := m.From()
	to := m.To()
	flag := m.Flag()
	color := p.sideToMove.Flip()

	switch flag {
	case FlagEnPassant:
		p.movePiece(to, from)
		p.putPiece(rec.capturedPiece, rec.captureSquare)

	case FlagCastleKingside, FlagCastleQueenside:
		rookFrom, rookTo := rookCorner(color, flag == FlagCastleKingside)
		p.movePiece(rookTo, rookFrom)
		p.movePiece(to, from)

	default:
		if m.IsPromotion() {
			p.removePiece(to)
			p.putPiece(MakePiece(color, Pawn), from)
		} else {
			p.movePiece(to, from)
		}
		if rec.capturedPiece != PieceNone {
			p.putPiece(rec.capturedPiece, rec.captureSquare)
		}
	}

	p.castling = rec.castling
	p.epTargetSq = rec.epTargetSq
	p.epPawnSq = rec.epPawnSq
	p.halfmoveClock = rec.halfmoveClock
	p.zobristKey = rec.zobristKey
	p.winner = rec.winner
	p.lastMove = rec.lastMove
	p.lastCapturedPiece = rec.lastCapturedPiece

	if color == Black {
		p.fullmoveNumber--
	}
	p.sideToMove = color
}
