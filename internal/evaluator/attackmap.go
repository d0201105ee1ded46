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
	"github.com/ponderforge/ponderforge/internal/position"
	. "github.com/ponderforge/ponderforge/internal/types"
)

// attackMap caches, for one position, which squares each side attacks
// and how mobile each side's pieces are. The king safety and mobility
// terms read it; it is computed at most once per position (keyed by the
// zobrist signature) since not every evaluation enables those terms.
type attackMap struct {
	key      Key
	all      [ColorLength]Bitboard // every square a side attacks or defends
	mobility [ColorLength]int      // attacked squares not blocked by own pieces
	pawns    [ColorLength]Bitboard // squares covered by a side's pawns
}

// computeFor fills the map for the given position. A repeated call for
// the same position is free.
func (am *attackMap) computeFor(p *position.Position) {
	if am.key == p.ZobristKey() {
		return
	}
	*am = attackMap{key: p.ZobristKey()}

	for c := White; c <= Black; c++ {
		own := p.OccupiedBb(c)

		// non pawn pieces: the per-square attack query of the position
		// already honors the current occupancy for sliders
		for pt := King; pt <= Queen; pt++ {
			if pt == Pawn {
				continue
			}
			for pieces := p.PiecesBb(c, pt); pieces != BbZero; {
				from := pieces.PopLsb()
				att := p.AttacksFrom(pt, from, c)
				am.all[c] |= att
				am.mobility[c] += (att &^ own).PopCount()
			}
		}

		// pawns cover the two forward diagonals; a single shift of the
		// whole pawn bitboard handles all of them at once
		pawnBb := p.PiecesBb(c, Pawn)
		am.pawns[c] = ShiftBitboard(pawnBb, c.MoveDirection()+West) |
			ShiftBitboard(pawnBb, c.MoveDirection()+East)
		am.all[c] |= am.pawns[c]
	}
}
