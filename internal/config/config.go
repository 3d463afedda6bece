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


// Package config holds globally available configuration variables, either
// set by defaults, read from a config file, or overridden by command line
// options.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to the
	// working directory).
	ConfFile = "./config.toml"

	// LogLevel is the general log level, see LogLevels.
	LogLevel = 5

	// SearchLogLevel is the log level used by the search package.
	SearchLogLevel = 5

	// LogLevels maps command line log level names to op/go-logging levels.
	LogLevels = map[string]int{
		"critical": 0,
		"error":    1,
		"warning":  2,
		"notice":   3,
		"info":     4,
		"debug":    5,
	}

	// Settings is the global configuration read in from file. It holds the
	// defaults until Setup runs.
	Settings = conf{Search: defaultSearchConfiguration(), Eval: defaultEvalConfiguration()}

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the configuration file and sets up search and eval settings
// from it, falling back to defaults for anything the file does not specify.
func Setup() {
	if initialized {
		return
	}
	Settings.Search = defaultSearchConfiguration()
	Settings.Eval = defaultEvalConfiguration()
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("Config file not found, using defaults. (", err, ")")
	}
	initialized = true
}
