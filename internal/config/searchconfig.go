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

// searchConfiguration holds the tunables for one search instance: depth and
// time limits, transposition table size, worker count, and late-move
// reduction thresholds.
type searchConfiguration struct {
	// MaxDepth is the iterative-deepening depth ceiling.
	MaxDepth int

	// TTSizeMb is the transposition table size in megabytes.
	TTSizeMb int

	// NumWorkers bounds the root-move worker pool; 0 means use
	// runtime.NumCPU().
	NumWorkers int

	// LMRMoveThreshold is the ordered-move index (0 based) from which late
	// move reduction starts applying to quiet moves.
	LMRMoveThreshold int

	// LMRMinDepth is the minimum remaining depth for LMR to apply.
	LMRMinDepth int

	// LMRReducedDepth is the depth a late, quiet, reduced move is searched
	// to. The source collapses this to 1 uniformly; see DESIGN.md for the
	// Open Question decision.
	LMRReducedDepth int
}

func defaultSearchConfiguration() searchConfiguration {
	return searchConfiguration{
		MaxDepth:         64,
		TTSizeMb:         64,
		NumWorkers:       0,
		LMRMoveThreshold: 4,
		LMRMinDepth:      2,
		LMRReducedDepth:  1,
	}
}
