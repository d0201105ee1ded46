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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ponderforge/ponderforge/internal/position"
	. "github.com/ponderforge/ponderforge/internal/types"
)

func TestAttackMapStartPosition(t *testing.T) {
	var am attackMap
	p := position.NewPosition()
	am.computeFor(p)

	// both sides cover the same squares in the mirrored start position
	assert.Equal(t, am.mobility[White], am.mobility[Black])
	assert.Equal(t, am.pawns[White].PopCount(), am.pawns[Black].PopCount())

	// the white pawns cover every square of rank 3
	assert.Equal(t, Rank3_Bb, am.pawns[White]&Rank3_Bb)
	// the knights can reach rank 3 as well
	assert.True(t, am.all[White].Has(SqF3))
	assert.True(t, am.all[White].Has(SqC3))
	// nothing reaches into the opponent's half yet
	assert.False(t, am.all[White].Has(SqE5))
}

func TestAttackMapMobility(t *testing.T) {
	var am attackMap

	// white rook in the corner, blocked eastwards by its own king:
	// 7 squares up the file and 3 along the rank, plus 5 king moves
	p := position.NewPosition("4k3/8/8/8/8/8/8/R3K3 w - -")
	am.computeFor(p)
	assert.Equal(t, 10+5, am.mobility[White])
	assert.Equal(t, 5, am.mobility[Black])

	// computing again for the same position keeps the result stable
	key := am.key
	am.computeFor(p)
	assert.Equal(t, key, am.key)
	assert.Equal(t, 10+5, am.mobility[White])
}
