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


package config

// evalConfiguration holds the evaluation weights from.
type evalConfiguration struct {
	// PawnStructurePenalty is the centipawn penalty subtracted in full for
	// each doubled, blocked or isolated pawn (the default 50 is half a pawn).
	PawnStructurePenalty int32

	// MobilityDivisor divides the (own - opponent) pseudo move count
	// difference to produce the mobility term.
	MobilityDivisor int32

	// EndgamePieceThreshold is the non-king, non-pawn piece count per side
	// below which the endgame king-pressure term activates.
	EndgamePieceThreshold int32

	// EndgameKingPressureWeight scales the endgame king-pressure term.
	EndgameKingPressureWeight int32
}

func defaultEvalConfiguration() evalConfiguration {
	return evalConfiguration{
		PawnStructurePenalty:      50,
		MobilityDivisor:           10,
		EndgamePieceThreshold:     6,
		EndgameKingPressureWeight: 10,
	}
}
