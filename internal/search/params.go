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
	"math"

	"github.com/ponderforge/ponderforge/internal/types"
)

// Fixed search parameters which are too involved for the configuration
// file: pre-computed reduction/pruning tables and margin arrays.

const (
	lmrMaxDepth = 32
	lmrMaxMoves = 64
	lmpMaxDepth = 16
)

var (
	// late move reduction per (depth, moves already searched)
	lmrTable [lmrMaxDepth][lmrMaxMoves]int
	// moves-searched threshold for late move pruning per depth
	lmpTable [lmpMaxDepth]int
)

func init() {
	for d := range lmrTable {
		for m := range lmrTable[d] {
			if d <= 3 || m <= 3 {
				lmrTable[d][m] = 1
				continue
			}
			lmrTable[d][m] = int(math.Round(float64(d)*0.7*float64(m)*0.005 + 1.0))
		}
	}
	for d := 1; d < lmpMaxDepth; d++ {
		// threshold curve taken from Crafty
		lmpTable[d] = 6 + int(math.Pow(float64(d)+0.5, 1.3))
	}
}

// LmrReduction returns how many plies a late move may be reduced,
// growing with depth and with the number of moves already searched.
func LmrReduction(depth int, movesSearched int) int {
	if depth >= lmrMaxDepth {
		depth = lmrMaxDepth - 1
	}
	if movesSearched >= lmrMaxMoves {
		movesSearched = lmrMaxMoves - 1
	}
	return lmrTable[depth][movesSearched]
}

// LmpMovesSearched returns the number of moves after which late move
// pruning may skip the remaining quiet moves at the given depth.
func LmpMovesSearched(depth int) int {
	if depth >= lmpMaxDepth {
		depth = lmpMaxDepth - 1
	}
	return lmpTable[depth]
}

// futility margins per remaining depth
var fp = [7]types.Value{0, 100, 200, 300, 500, 900, 1200}

// reverse futility margins per remaining depth
var rfp = [4]types.Value{0, 200, 400, 800}

// widening steps for the aspiration window; the last step opens the
// window completely
var aspirationSteps = [...]types.Value{50, 200, types.ValueMax}
