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
	"fmt"
	"strconv"
	"strings"

	. "github.com/kschaper/bitchess/internal/types"
)

// InvalidFENError reports that a FEN string could not be parsed: field
// count, rank layout or active-colour token unparseable. New returns it
// together with a nil Position.
type InvalidFENError struct {
	Fen    string
	Reason string
}

func (e *InvalidFENError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %s", e.Fen, e.Reason)
}

var fenPieceChar = map[byte]Piece{
	'P': MakePiece(White, Pawn), 'N': MakePiece(White, Knight), 'B': MakePiece(White, Bishop),
	'R': MakePiece(White, Rook), 'Q': MakePiece(White, Queen), 'K': MakePiece(White, King),
	'p': MakePiece(Black, Pawn), 'n': MakePiece(Black, Knight), 'b': MakePiece(Black, Bishop),
	'r': MakePiece(Black, Rook), 'q': MakePiece(Black, Queen), 'k': MakePiece(Black, King),
}

// setupFromFen parses a FEN string and (re)initialises p. It accepts the
// full six-field form; the halfmove and fullmove fields may be omitted and
// default to 0 and 1 respectively.
func (p *Position) setupFromFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return &InvalidFENError{Fen: fen, Reason: "expected at least 4 space separated fields"}
	}

	*p = Position{}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return &InvalidFENError{Fen: fen, Reason: "piece placement must have 8 ranks"}
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			piece, ok := fenPieceChar[c]
			if !ok {
				return &InvalidFENError{Fen: fen, Reason: fmt.Sprintf("unrecognised piece char %q", string(c))}
			}
			if f > FileH {
				return &InvalidFENError{Fen: fen, Reason: "rank overflows 8 files"}
			}
			p.putPiece(piece, SquareOf(f, r))
			f++
		}
		if f != FileH+1 {
			return &InvalidFENError{Fen: fen, Reason: "rank does not sum to 8 files"}
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.zobristKey ^= zobristSideToMove
	default:
		return &InvalidFENError{Fen: fen, Reason: fmt.Sprintf("unrecognised active colour %q", fields[1])}
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling |= CastleWhiteKingside
			case 'Q':
				p.castling |= CastleWhiteQueenside
			case 'k':
				p.castling |= CastleBlackKingside
			case 'q':
				p.castling |= CastleBlackQueenside
			default:
				return &InvalidFENError{Fen: fen, Reason: fmt.Sprintf("unrecognised castling char %q", string(c))}
			}
		}
	}
	p.zobristKey ^= castlingKeys(p.castling)

	p.epTargetSq = SqNone
	p.epPawnSq = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if !sq.IsValid() {
			return &InvalidFENError{Fen: fen, Reason: fmt.Sprintf("unrecognised en-passant square %q", fields[3])}
		}
		p.epTargetSq = sq
		if sq.RankOf() == Rank6 {
			p.epPawnSq = SquareOf(sq.FileOf(), Rank5)
		} else {
			p.epPawnSq = SquareOf(sq.FileOf(), Rank4)
		}
		p.zobristKey ^= epFileKey(p.epTargetSq)
	}

	p.halfmoveClock = 0
	p.fullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmoveNumber = n
		}
	}

	return nil
}

// Fen exports p to full six-field FEN notation.
func (p *Position) Fen() string {
	var b strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.mailbox[SquareOf(f, r)]
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(piece.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			b.WriteString("/")
		}
	}

	b.WriteString(" ")
	b.WriteString(p.sideToMove.String())

	b.WriteString(" ")
	b.WriteString(p.castling.String())

	b.WriteString(" ")
	if p.epTargetSq == SqNone {
		b.WriteString("-")
	} else {
		b.WriteString(p.epTargetSq.String())
	}

	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfmoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.fullmoveNumber))

	return b.String()
}
