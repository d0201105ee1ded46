/*
 * ponderforge - a UCI chess engine core in Go
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

package search

import (
	"github.com/ponderforge/ponderforge/internal/position"
	. "github.com/ponderforge/ponderforge/internal/types"
)

// aspirationSearch searches the root with a narrow window centered on the
// value of the previous iteration, widening the failed bound step by step
// (aspirationSteps) until the value fits or the window is fully open.
// With good move ordering the narrow window cuts off large parts of the
// tree; the occasional re-search is the price for a wrong guess.
func (s *Search) aspirationSearch(p *position.Position, depth int, bestValue Value) Value {

	// without a previous value, or near a mate score where windows are
	// meaningless, fall back to a full window search
	if bestValue == ValueNA || bestValue.IsCheckMateValue() {
		return s.rootSearch(p, depth, ValueMin, ValueMax)
	}

	lowStep, highStep := 0, 0
	for {
		alpha := bestValue - aspirationSteps[lowStep]
		beta := bestValue + aspirationSteps[highStep]
		if alpha < ValueMin {
			alpha = ValueMin
		}
		if beta > ValueMax {
			beta = ValueMax
		}

		value := s.rootSearch(p, depth, alpha, beta)
		if s.stopConditions() {
			return value
		}

		// widen only the bound that failed and try again
		switch {
		case value <= alpha && lowStep < len(aspirationSteps)-1:
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo("upperbound")
			lowStep++
		case value >= beta && highStep < len(aspirationSteps)-1:
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo("lowerbound")
			highStep++
		default:
			return value
		}
	}
}

// mtdf performs a sequence of zero window searches converging on the
// minimax value (MTD(f)). Uses the previous iteration's value as the
// first guess. Relies heavily on the transposition table to avoid
// re-searching the same subtrees on every pass.
// https://www.chessprogramming.org/MTD(f)
func (s *Search) mtdf(p *position.Position, depth int, f Value) Value {
	if f == ValueNA {
		f = ValueDraw
	}
	g := f
	upperBound := ValueMax
	lowerBound := ValueMin
	for lowerBound < upperBound {
		var beta Value
		if g == lowerBound {
			beta = g + 1
		} else {
			beta = g
		}
		g = s.rootSearch(p, depth, beta-1, beta)
		if s.stopConditions() {
			return g
		}
		if g < beta {
			upperBound = g
		} else {
			lowerBound = g
		}
	}
	return g
}
