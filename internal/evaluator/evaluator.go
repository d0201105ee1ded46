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

// Package evaluator computes a static value for a chess position. The
// value is built from material and piece-square scores the position
// already tracks incrementally, plus optional structural terms (pawns,
// piece placement, king safety, mobility) which are individually
// switchable through the configuration.
package evaluator

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ponderforge/ponderforge/internal/config"
	myLogging "github.com/ponderforge/ponderforge/internal/logging"
	"github.com/ponderforge/ponderforge/internal/position"
	. "github.com/ponderforge/ponderforge/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator holds the state of one evaluation pass plus the caches
// which survive between calls (pawn cache, attack map).
// Create with NewEvaluator().
type Evaluator struct {
	log *logging.Logger

	// per-call state, set by InitEval
	position        *position.Position
	gamePhaseFactor float64
	score           Score

	// caches surviving between calls
	attacks   attackMap
	pawnCache *pawnCache
	pawnScore Score
}

// lazyThreshold holds the pre-computed lazy evaluation cut off per game
// phase - generous in the opening, tight in the endgame.
var lazyThreshold [GamePhaseMax + 1]int16

func init() {
	base := config.Settings.Eval.LazyEvalThreshold
	for gp := 0; gp <= GamePhaseMax; gp++ {
		lazyThreshold[gp] = base + int16(float64(base)*float64(gp)/GamePhaseMax)
	}
}

// NewEvaluator creates a new Evaluator instance. The pawn cache is only
// allocated when enabled in the configuration.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		log: myLogging.GetLog(),
	}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	} else {
		e.log.Info("Pawn Cache is disabled in configuration")
	}
	return e
}

// InitEval binds the evaluator to a position for one evaluation pass.
// Evaluate calls this itself; tests use it to run single terms.
func (e *Evaluator) InitEval(p *position.Position) {
	e.position = p
	e.gamePhaseFactor = p.GamePhaseFactor()
	e.score = Score{}
}

// Evaluate returns the static value of the position from the view of
// the side to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)
	return e.evaluate()
}

// evaluate accumulates all enabled terms. Internally everything is
// scored from white's point of view and flipped at the end.
func (e *Evaluator) evaluate() Value {
	p := e.position

	// without mating material the game is dead whatever the terms say
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	eval := &config.Settings.Eval

	// material and piece-square scores are maintained incrementally by
	// make/unmake - reading them here is free
	if eval.UseMaterialEval {
		e.score.MidGameValue = int16(p.Material(White) - p.Material(Black))
		e.score.EndGameValue = e.score.MidGameValue
	}
	if eval.UsePositionalEval {
		e.score.MidGameValue += int16(p.PsqMidValue(White) - p.PsqMidValue(Black))
		e.score.EndGameValue += int16(p.PsqEndValue(White) - p.PsqEndValue(Black))
	}

	// small bonus for having the move
	e.score.MidGameValue += int16(p.NextPlayer().Direction()) * eval.Tempo

	// lazy exit: when the cheap terms alone are already far outside the
	// range the expensive terms could shift, skip those
	if eval.UseLazyEval {
		v := e.phased()
		if v > Value(lazyThreshold[p.GamePhase()]) {
			return e.sideToMoveView(v)
		}
	}

	if eval.UsePawnEval {
		e.score.Add(*e.evaluatePawns())
	}

	needAttacks := eval.UseAttacksInEval
	if needAttacks {
		e.attacks.computeFor(p)
		if eval.UseMobility {
			mob := int16(e.attacks.mobility[White] - e.attacks.mobility[Black])
			e.score.MidGameValue += mob * eval.MobilityBonus
			e.score.EndGameValue += mob * eval.MobilityBonus
		}
	}

	if eval.UseAdvancedPieceEval {
		for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
			e.score.Add(e.pieceTerms(White, pt))
			e.score.Sub(e.pieceTerms(Black, pt))
		}
	}

	if eval.UseKingEval {
		e.score.Add(e.kingTerms(White, needAttacks))
		e.score.Sub(e.kingTerms(Black, needAttacks))
	}

	return e.sideToMoveView(e.phased())
}

// phased interpolates the mid and end game scores by game phase.
func (e *Evaluator) phased() Value {
	return e.score.ValueFromScore(e.gamePhaseFactor)
}

// sideToMoveView flips the white-based value for black to move.
func (e *Evaluator) sideToMoveView(v Value) Value {
	return v * Value(e.position.NextPlayer().Direction())
}

// pieceTerms scores placement heuristics for all pieces of one type and
// color: minors behind pawns, bishop pair/color-complex/blockage, rook
// files and king-trapped rooks.
func (e *Evaluator) pieceTerms(us Color, pt PieceType) Score {
	var s Score
	pieces := e.position.PiecesBb(us, pt)
	if pieces == BbZero {
		return s
	}
	eval := &config.Settings.Eval

	if pt == Bishop && pieces.PopCount() > 1 {
		s.MidGameValue += eval.BishopPairBonus
		s.EndGameValue += eval.BishopPairBonus
	}

	for pieces != BbZero {
		sq := pieces.PopLsb()
		switch pt {
		case Knight:
			e.minorBehindPawn(us, sq, &s)
		case Bishop:
			e.minorBehindPawn(us, sq, &s)
			e.bishopTerms(us, sq, &s)
		case Rook:
			e.rookTerms(us, sq, &s)
		}
	}
	return s
}

// a minor piece sheltered directly behind a friendly pawn is well placed
func (e *Evaluator) minorBehindPawn(us Color, sq Square, s *Score) {
	pawnInFront := e.position.GetPiece(sq.To(us.MoveDirection())) == MakePiece(us, Pawn)
	if pawnInFront {
		s.MidGameValue += config.Settings.Eval.MinorBehindPawnBonus
	}
}

func (e *Evaluator) bishopTerms(us Color, sq Square, s *Score) {
	eval := &config.Settings.Eval
	myPawns := e.position.PiecesBb(us, Pawn)

	// pawns on the bishop's color complex cramp it, more so in endgames
	ownComplex := SquaresBb(White)
	if !SquaresBb(White).Has(sq) {
		ownComplex = SquaresBb(Black)
	}
	s.EndGameValue -= eval.BishopPawnMalus * int16((myPawns & ownComplex).PopCount())

	// center squares the bishop attacks with the current occupancy
	// approximate control of a long diagonal
	central := int16((e.position.AttacksFrom(Bishop, sq, us) & CenterSquares).PopCount())
	s.MidGameValue += eval.BishopCenterAimBonus * central

	// completely buried on the back rank
	backRank := (us == White && sq.RankOf() == Rank1) || (us == Black && sq.RankOf() == Rank8)
	if backRank && e.position.AttacksFrom(Bishop, sq, us)&^e.position.OccupiedBb(us) == BbZero {
		s.MidGameValue -= eval.BishopBlockedMalus
		s.EndGameValue -= eval.BishopBlockedMalus
	}
}

func (e *Evaluator) rookTerms(us Color, sq Square, s *Score) {
	eval := &config.Settings.Eval

	// a rook lined up with the queen supports threats on that file
	if sq.FileOf().Bb()&e.position.PiecesBb(us, Queen) != BbZero {
		s.MidGameValue += eval.RookOnQueenFileBonus
		s.EndGameValue += eval.RookOnQueenFileBonus
	}

	// no own pawn in the way means at least a half open file
	if sq.FileOf().Bb()&e.position.PiecesBb(us, Pawn) == BbZero {
		s.MidGameValue += eval.RookOnOpenFileBonus
	}

	// a rook boxed in at the edge by its own castled king cannot join
	// the game without cost
	kingSq := e.position.KingSquare(us)
	if sq.RankOf() == kingSq.RankOf() {
		if (KingSideCastleMask(us).Has(kingSq) && sq > kingSq) ||
			(QueenSideCastMask(us).Has(kingSq) && sq < kingSq) {
			s.MidGameValue -= eval.RookTrappedMalus
		}
	}
}

// kingTerms scores the pawn shield of a castled king and, when the
// attack map is available, the balance of attackers and defenders
// around the king.
func (e *Evaluator) kingTerms(us Color, haveAttacks bool) Score {
	var s Score
	eval := &config.Settings.Eval
	them := us.Flip()
	kingSq := e.position.KingSquare(us)
	myPawns := e.position.PiecesBb(us, Pawn)

	var castleZone Bitboard
	switch {
	case KingSideCastleMask(us).Has(kingSq):
		castleZone = KingSideCastleMask(us)
	case QueenSideCastMask(us).Has(kingSq):
		castleZone = QueenSideCastMask(us)
	}
	if castleZone != BbZero {
		shield := int16((ShiftBitboard(castleZone, us.MoveDirection()) & myPawns).PopCount())
		s.MidGameValue += shield * eval.KingCastlePawnShieldBonus
	}

	if haveAttacks {
		ring := GetAttacksBb(King, kingSq, BbZero)
		attackers := (ring & e.attacks.all[them]).PopCount()
		defenders := (ring & e.attacks.all[us]).PopCount()
		if attackers > defenders {
			s.MidGameValue -= int16(attackers-defenders) * eval.KingDangerMalus
			s.EndGameValue -= int16(attackers-defenders) * eval.KingDangerMalus
		} else {
			s.MidGameValue += int16(defenders-attackers) * eval.KingDefenderBonus
			s.EndGameValue += int16(defenders-attackers) * eval.KingDefenderBonus
		}

		// pressure against the enemy king's ring
		enemyRing := GetAttacksBb(King, e.position.KingSquare(them), BbZero)
		if e.attacks.all[us]&enemyRing != BbZero {
			s.MidGameValue += eval.KingRingAttacksBonus
			s.EndGameValue += eval.KingRingAttacksBonus
		}
	}
	return s
}
