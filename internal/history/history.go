//
// ponderforge - a UCI chess engine core in Go
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
//

// Package history keeps the search-driven move statistics (history
// counters for quiet moves that caused beta cuts, and counter moves
// answering a specific opponent move). The search writes them, the move
// generator reads them back for quiet move ordering.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/ponderforge/ponderforge/internal/types"
)

var out = message.NewPrinter(language.German)

// History collects per-color from/to counters and counter moves.
// A zero History is ready to use; NewHistory is provided for symmetry
// with the other search components.
type History struct {
	counts   [ColorLength][SqLength][SqLength]int64
	counters [SqLength][SqLength]Move
}

// NewHistory creates an empty History instance.
func NewHistory() *History {
	return &History{}
}

// GoodMove credits a quiet move that produced a beta cut. Deeper
// searches weigh heavier (1<<depth) as their cuts repeat more often.
func (h *History) GoodMove(c Color, from Square, to Square, depth int) {
	h.counts[c][from][to] += 1 << depth
}

// BadMove debits a searched quiet move that did not cut. The debit is
// floored at zero so a move cannot build up a negative reputation.
func (h *History) BadMove(c Color, from Square, to Square, depth int) {
	h.counts[c][from][to] -= 1 << depth
	if h.counts[c][from][to] < 0 {
		h.counts[c][from][to] = 0
	}
}

// Score returns the accumulated history count for a quiet move.
func (h *History) Score(c Color, from Square, to Square) int64 {
	return h.counts[c][from][to]
}

// StoreCounter remembers move as a successful reply to prev.
func (h *History) StoreCounter(prev Move, move Move) {
	h.counters[prev.From()][prev.To()] = move
}

// CounterFor returns the stored reply to prev, MoveNone if none is
// known.
func (h *History) CounterFor(prev Move) Move {
	if prev == MoveNone {
		return MoveNone
	}
	return h.counters[prev.From()][prev.To()]
}

// String lists the non-empty table entries for debugging.
func (h *History) String() string {
	var sb strings.Builder
	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			w := h.counts[White][from][to]
			b := h.counts[Black][from][to]
			cm := h.counters[from][to]
			if w == 0 && b == 0 && cm == MoveNone {
				continue
			}
			sb.WriteString(out.Sprintf("%s%s: White=%-7d Black=%-7d cm=%s\n",
				from.String(), to.String(), w, b, cm.StringUci()))
		}
	}
	return sb.String()
}
