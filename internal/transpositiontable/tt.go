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

// Package transpositiontable implements the Zobrist-keyed transposition
// table consulted and filled by the search. A single exclusive
// lock guards both store and retrieve, as the reference implementation
// this is grounded on does; that is sufficient since individual negamax
// workers spend far more time computing a subtree than touching the table.
package transpositiontable

import (
	"sync"

	"github.com/kschaper/bitchess/internal/logging"
	"github.com/kschaper/bitchess/internal/position"

	. "github.com/kschaper/bitchess/internal/types"
)

// MaxSizeInMB caps the table size a caller may request.
const MaxSizeInMB = 65_536

// TtTable is a fixed-capacity, power-of-two-sized hash table of TtEntry,
// addressed by the low bits of the Zobrist key. Collisions are resolved by
// unconditional overwrite.
type TtTable struct {
	mu sync.Mutex

	data        []TtEntry
	hashKeyMask uint64

	numberOfEntries uint64
	numberOfStores  uint64
	numberOfProbes  uint64
	numberOfHits    uint64
}

// NewTtTable builds a table sized to the largest power of two entry count
// that fits within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize rebuilds the table for a new memory budget, discarding all
// entries. Not safe to call concurrently with Store/Retrieve.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		logging.GetLog().Warning(logging.Out.Sprintf(
			"requested TT size %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	sizeInByte := uint64(sizeInMByte) * 1024 * 1024
	maxEntries := uint64(0)
	if sizeInByte >= TtEntrySize {
		bits := 0
		for (uint64(1) << (bits + 1)) <= sizeInByte/TtEntrySize {
			bits++
		}
		maxEntries = uint64(1) << bits
	}

	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.data = make([]TtEntry, maxEntries)
	if maxEntries > 0 {
		tt.hashKeyMask = maxEntries - 1
	} else {
		tt.hashKeyMask = 0
	}
	tt.numberOfEntries = 0
	tt.numberOfStores = 0
	tt.numberOfProbes = 0
	tt.numberOfHits = 0
}

func (tt *TtTable) index(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// Store inserts or unconditionally overwrites the entry for key.
func (tt *TtTable) Store(key position.Key, depth int8, score Value, bestMove Move, hasMove bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	if len(tt.data) == 0 {
		return
	}
	tt.numberOfStores++
	slot := &tt.data[tt.index(key)]
	if slot.key == 0 && key != 0 {
		tt.numberOfEntries++
	}
	slot.key = key
	slot.depth = depth
	slot.score = score
	slot.bestMove = bestMove
	slot.hasMove = hasMove
}

// Retrieve returns the entry stored for key and whether it was a hit.
// Zobrist collisions are reported as hits.
func (tt *TtTable) Retrieve(key position.Key) (TtEntry, bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.numberOfProbes++
	if len(tt.data) == 0 {
		return TtEntry{}, false
	}
	slot := tt.data[tt.index(key)]
	if slot.key != key {
		return TtEntry{}, false
	}
	tt.numberOfHits++
	return slot, true
}

// Len returns the number of populated entries.
func (tt *TtTable) Len() uint64 {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return tt.numberOfEntries
}

// Hits returns the number of retrieve calls that found an entry.
func (tt *TtTable) Hits() uint64 {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return tt.numberOfHits
}

// EstimatedSizeKb returns the table's allocated footprint in kilobytes.
func (tt *TtTable) EstimatedSizeKb() uint64 {
	return uint64(len(tt.data)) * TtEntrySize / 1024
}

// Clear empties the table without changing its capacity.
func (tt *TtTable) Clear() {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.data = make([]TtEntry, len(tt.data))
	tt.numberOfEntries = 0
	tt.numberOfStores = 0
	tt.numberOfProbes = 0
	tt.numberOfHits = 0
}

// String renders a diagnostic summary of the table's size and counters.

func (tt *TtTable) String() string {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	hitRate := 0
	if tt.numberOfProbes > 0 {
		hitRate = int(100 * tt.numberOfHits / tt.numberOfProbes)
	}
	return logging.Out.Sprintf("TT: %d KB, %d/%d entries, %d stores, %d probes, %d hits (%d%%)",
		tt.EstimatedSizeKb(), tt.numberOfEntries, len(tt.data), tt.numberOfStores, tt.numberOfProbes, tt.numberOfHits, hitRate)
}
