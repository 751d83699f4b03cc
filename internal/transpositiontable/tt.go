/*
 * QuintGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package transpositiontable implements a direct mapped transposition
// table (cache) for the chess engine search. The table is owned
// exclusively by a single search - only the hit/lookup counters used
// for reporting are shared and maintained with relaxed atomics.
package transpositiontable

import (
	"sync/atomic"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/QuintGo/internal/logging"
	"github.com/frankkopp/QuintGo/internal/position"
	. "github.com/frankkopp/QuintGo/internal/types"
)

var out = message.NewPrinter(language.German)

// EvalType classifies the value stored in a tt entry against the
// search window it was computed with.
type EvalType uint8

// EvalType constants
const (
	Exact EvalType = iota
	UpperBound
	LowerBound
)

// DefaultSizePowerOfTwo is the default number of entries as a power
// of two (2^22 entries = 64 MB).
const DefaultSizePowerOfTwo = 22

const (
	depthMask = uint8(0b0011_1111)
	typeShift = uint(6)
)

// TtEntry is the data structure for each entry in the transposition
// table:
//  64-bit zobrist key of the position
//  best move found for the position
//  evaluation value of the search
//  8-bit packed depth (low 6 bits) and eval type (high 2 bits)
type TtEntry struct {
	key          position.Key
	eval         Value
	move         Move
	depthAndType uint8
}

// Move returns the best move stored for the position
func (e *TtEntry) Move() Move {
	return e.move
}

// Eval returns the stored evaluation value
func (e *TtEntry) Eval() Value {
	return e.eval
}

// Depth returns the stored search-remaining depth
func (e *TtEntry) Depth() int {
	return int(e.depthAndType & depthMask)
}

// Type returns the stored eval type
func (e *TtEntry) Type() EvalType {
	return EvalType(e.depthAndType >> typeShift)
}

func (e *TtEntry) isEmpty() bool {
	return e.move == MoveNone
}

func packDepthAndType(depth int, evalType EvalType) uint8 {
	return uint8(depth)&depthMask | uint8(evalType)<<typeShift
}

// TtTable is the actual transposition table holding data and state.
// Create with NewTtTable().
type TtTable struct {
	log         *logging.Logger
	data        []TtEntry
	hashKeyMask uint64
}

// lookup and hit counters for the informational tt hit rate -
// relaxed atomics as they are only reporting counters
var (
	ttLookups uint64
	ttHits    uint64
)

// Hitrate returns the informational hit rate of all probes since the
// last ResetHitrate call.
func Hitrate() float64 {
	lookups := atomic.LoadUint64(&ttLookups)
	if lookups == 0 {
		return 0
	}
	return float64(atomic.LoadUint64(&ttHits)) / float64(lookups)
}

// ResetHitrate resets the lookup and hit counters
func ResetHitrate() {
	atomic.StoreUint64(&ttLookups, 0)
	atomic.StoreUint64(&ttHits, 0)
}

// NewTtTable creates a transposition table with the default number
// of entries (2^22, ~64 MB).
func NewTtTable() *TtTable {
	return NewTtTableSized(DefaultSizePowerOfTwo)
}

// NewTtTableSized creates a transposition table with 2^powerOfTwo
// entries.
func NewTtTableSized(powerOfTwo uint) *TtTable {
	numEntries := uint64(1) << powerOfTwo
	tt := &TtTable{
		log:         myLogging.GetLog(),
		data:        make([]TtEntry, numEntries),
		hashKeyMask: numEntries - 1,
	}
	tt.log.Debug(out.Sprintf("TT Size %d MByte, Capacity %d entries (entry size=%dByte)",
		numEntries*uint64(unsafe.Sizeof(TtEntry{}))/(1<<20), numEntries, unsafe.Sizeof(TtEntry{})))
	return tt
}

// Len returns the number of entries the table can hold
func (tt *TtTable) Len() int {
	return len(tt.data)
}

// Clear removes all entries from the table
func (tt *TtTable) Clear() {
	for i := range tt.data {
		tt.data[i] = TtEntry{}
	}
}

// Probe returns a pointer to the entry for the given key or nil when
// the slot is empty or holds a different position. The full key in
// the entry serves as verification.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	atomic.AddUint64(&ttLookups, 1)
	e := &tt.data[uint64(key)&tt.hashKeyMask]
	if !e.isEmpty() && e.key == key {
		atomic.AddUint64(&ttHits, 1)
		return e
	}
	return nil
}

// Put stores a search result for the position. An occupied slot is
// only overwritten when the new entry was searched at least as deep
// as the stored one.
func (tt *TtTable) Put(key position.Key, bestMove Move, eval Value, evalType EvalType, depth int) {
	e := &tt.data[uint64(key)&tt.hashKeyMask]
	if !e.isEmpty() && e.Depth() > depth {
		return
	}
	*e = TtEntry{
		key:          key,
		move:         bestMove,
		eval:         eval,
		depthAndType: packDepthAndType(depth, evalType),
	}
}
