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

package evaluator

import (
	. "github.com/ponderforge/ponderforge/internal/config"
	. "github.com/ponderforge/ponderforge/internal/types"
)

// evaluatePawns scores the pawn structure of both sides from white's
// point of view. The result depends on the pawns alone, so it is served
// from a cache keyed by the pawn-only zobrist key of the position.
func (e *Evaluator) evaluatePawns() *Score {

	if Settings.Eval.UsePawnCache && e.pawnCache != nil {
		if entry := e.pawnCache.getEntry(e.position.PawnKey()); entry != nil {
			e.pawnScore = entry.score
			return &e.pawnScore
		}
	}

	e.pawnScore = e.pawnStructure(White)
	e.pawnScore.Sub(e.pawnStructure(Black))

	if Settings.Eval.UsePawnCache && e.pawnCache != nil {
		e.pawnCache.put(e.position.PawnKey(), &e.pawnScore)
	}

	return &e.pawnScore
}

// pawnStructure computes the structural terms for the pawns of one
// side: isolated, doubled, passed, blocked, supported and phalanx
// pawns. Maluses are stored as negative configuration values, so every
// term is added.
func (e *Evaluator) pawnStructure(us Color) Score {
	var s Score
	eval := &Settings.Eval

	them := us.Flip()
	myPawns := e.position.PiecesBb(us, Pawn)
	theirPawns := e.position.PiecesBb(them, Pawn)
	forward := us.MoveDirection()

	// all squares covered by a friendly pawn
	covered := ShiftBitboard(myPawns, forward+West) | ShiftBitboard(myPawns, forward+East)

	for pawns := myPawns; pawns != BbZero; {
		sq := pawns.PopLsb()

		// isolated: no friendly pawn on a neighbouring file
		if myPawns&sq.NeighbourFilesMask() == BbZero {
			s.MidGameValue += eval.PawnIsolatedMidMalus
			s.EndGameValue += eval.PawnIsolatedEndMalus
		}

		// doubled: sharing its file with another friendly pawn
		if myPawns&sq.FileOf().Bb()&^sq.Bb() != BbZero {
			s.MidGameValue += eval.PawnDoubledMidMalus
			s.EndGameValue += eval.PawnDoubledEndMalus
		}

		// passed: no enemy pawn ahead on this or a neighbouring file
		if theirPawns&sq.PassedPawnMask(us) == BbZero {
			s.MidGameValue += eval.PawnPassedMidBonus
			s.EndGameValue += eval.PawnPassedEndBonus
		}

		// blocked: the stop square is occupied (pawns are never on the
		// back rank, so the square ahead always exists)
		if e.position.GetPiece(sq.To(forward)) != PieceNone {
			s.MidGameValue += eval.PawnBlockedMidMalus
			s.EndGameValue += eval.PawnBlockedEndMalus
		}

		// supported: defended by a friendly pawn
		if covered.Has(sq) {
			s.MidGameValue += eval.PawnSupportedMidBonus
			s.EndGameValue += eval.PawnSupportedEndBonus
		}

		// phalanx: a friendly pawn directly beside it
		if (ShiftBitboard(sq.Bb(), West)|ShiftBitboard(sq.Bb(), East))&myPawns != BbZero {
			s.MidGameValue += eval.PawnPhalanxMidBonus
			s.EndGameValue += eval.PawnPhalanxEndBonus
		}
	}
	return s
}
