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

package search

import (
	"time"

	"github.com/ponderforge/ponderforge/internal/moveslice"
)

// Limits carries the constraints for one root search call, as handed
// over by the protocol layer from a "go" command. The zero value means
// "no constraint" for every field; the search derives its actual
// deadline and depth/node caps from whatever combination is set.
type Limits struct {
	// modes without a clock
	Infinite bool // run until an external stop
	Ponder   bool // search the expected opponent reply, promote on ponderhit
	Mate     int  // only look for a mate in this many moves

	// hard caps independent of the clock
	Depth int                 // maximum iterative deepening depth
	Nodes uint64              // abort after this many nodes visited
	Moves moveslice.MoveSlice // restrict the root to these moves (searchmoves)

	// clock based play; only evaluated when TimeControl is set
	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration // fixed time per move, overrides the clock fields
	MovesToGo   int           // moves until the next time control period
}

// NewSearchLimits returns an unconstrained Limits instance.
func NewSearchLimits() *Limits {
	return &Limits{}
}
