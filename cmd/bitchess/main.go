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

// Command bitchess is a non-interactive driver over the engine core: it
// parses a FEN, then either counts perft nodes or runs a timed best-move
// search and prints the result. There is no UCI loop; the wire protocol is
// out of scope for this engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kschaper/bitchess/internal/config"
	"github.com/kschaper/bitchess/internal/logging"
	"github.com/kschaper/bitchess/internal/movegen"
	"github.com/kschaper/bitchess/internal/position"
	"github.com/kschaper/bitchess/internal/search"
	"github.com/kschaper/bitchess/internal/util"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "print version info and exit")
	fen := flag.String("fen", position.StartFen, "FEN of the position to search or perft from")
	movetime := flag.Int("movetime", 2000, "search time budget in milliseconds")
	perft := flag.Int("perft", 0, "run perft to the given depth on -fen instead of searching")
	configFile := flag.String("config", "./config.toml", "path to a TOML engine configuration file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	doProfile := flag.Bool("profile", false, "write a CPU profile for this run to ./cpu.pprof")
	memStat := flag.Bool("memstat", false, "print memory stats before and after a forced GC, then exit")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *memStat {
		out.Println(util.GcWithStats())
		return
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog()

	pos, err := position.New(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *perft > 0 {
		runPerft(pos, *perft)
		return
	}

	log.Infof("searching %s for %dms", *fen, *movetime)
	runSearch(pos, time.Duration(*movetime)*time.Millisecond)
}

func runPerft(pos *position.Position, depth int) {
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.CountMoves(pos, d)
		elapsed := time.Since(start)
		out.Printf("perft %d: %d nodes in %s (%d nps)\n", d, nodes, elapsed, util.Nps(nodes, elapsed))
	}
}

func runSearch(pos *position.Position, movetime time.Duration) {
	defer util.TimeTrack(time.Now(), "search")
	s := search.NewSearch()
	result := s.BestMove(pos, movetime)
	out.Printf("bestmove %s score %d depth %d nodes %d time %s (%d nps)\n",
		result.BestMove.String(), result.Score, result.DepthReached, result.Nodes, result.Elapsed,
		util.Nps(result.Nodes, result.Elapsed))
}

func printVersionInfo() {
	out.Println("bitchess")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
