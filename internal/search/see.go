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

// Static exchange evaluation: the outcome of the capture sequence on one
// square when both sides always recapture with their least valuable
// attacker and may stop whenever continuing would lose material.

// see evaluates a concrete capturing move. Used by quiescence search to
// skip captures which lose material.
func see(p *position.Position, move Move) Value {
	// an en passant capture can at worst win the pawn back, it never
	// loses material in the exchange sense - report it as winning a pawn
	// so it is not pruned
	if move.MoveType() == EnPassant {
		return Pawn.ValueOf()
	}
	return exchange(p, move.To(), move.From(), p.NextPlayer(), move.PromotionType())
}

// See is the square-initiated form: side makes the first capture on
// square with its least valuable attacker, as an external caller would
// ask "what does capturing on e5 gain for white". Returns 0 when side
// has no piece attacking the square.
func See(p *position.Position, square Square, side Color) Value {
	from := getLeastValuablePiece(p, p.AttacksTo(square, side), side)
	if from == SqNone {
		return ValueZero
	}
	return exchange(p, square, from, side, PtNone)
}

// exchange runs the swap algorithm on toSquare. us moves first from
// fromSquare; promType is the promotion piece of the initiating move
// (PtNone for a plain capture).
//
// A stack of speculative gains is built while alternating sides always
// recapture with the least valuable attacker. Removing an attacker from
// the occupancy can reveal a slider hidden behind it (x-ray), which then
// joins the exchange. Finally the stack is folded by negamax - at every
// level the side to move picks the better of stopping or capturing on.
func exchange(p *position.Position, toSquare Square, fromSquare Square, us Color, promType PieceType) Value {

	// there can never be more captures than pieces on the board
	var gain [32]Value

	// occupancy is updated locally as pieces are "captured" to let the
	// slider attack lookups see through vacated squares
	occupied := p.OccupiedAll()

	// all direct attackers of both sides; x-ray attackers join later
	attackers := p.AttacksTo(toSquare, White) | p.AttacksTo(toSquare, Black)

	movedPiece := p.GetPiece(fromSquare)
	sideToCapture := us
	ply := 0
	gain[0] = p.GetPiece(toSquare).ValueOf()

	for {
		ply++
		sideToCapture = sideToCapture.Flip()

		// speculative gain if the piece which just captured is taken in
		// turn; the initiating promotion leaves a more valuable piece on
		// the square than the pawn which moved
		if ply == 1 && promType != PtNone {
			gain[ply] = promType.ValueOf() - Pawn.ValueOf() - gain[ply-1]
		} else {
			gain[ply] = movedPiece.ValueOf() - gain[ply-1]
		}

		// neither continuing nor stopping can change the sign anymore
		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		// take the capturing piece off the board and let sliders behind
		// it join the exchange
		attackers.PopSquare(fromSquare)
		occupied.PopSquare(fromSquare)
		attackers |= revealedAttacks(p, toSquare, occupied, White) |
			revealedAttacks(p, toSquare, occupied, Black)

		fromSquare = getLeastValuablePiece(p, attackers, sideToCapture)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.GetPiece(fromSquare)
	}

	// negamax fold of the speculative gains down to the first capture
	for ply--; ply > 0; ply-- {
		gain[ply-1] = -max(-gain[ply-1], gain[ply])
	}
	return gain[0]
}

// AttacksTo determine all attacks for SEE. EnPassant is not included as this is not
// relevant for SEE as the move preceding enpassant is always non capturing.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	return p.AttacksTo(square, color)
}

// Returns sliding attacks after a piece has been removed to reveal new attacks.
// It is only necessary to look at slider pieces as only their attacks can be revealed
func revealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	// Sliding rooks and queens
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		// Sliding bishops and queens
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}

// Returns a square with the least valuable attacker. When several of same
// type are available it uses the least significant bit of the bitboard.
func getLeastValuablePiece(position *position.Position, bitboard Bitboard, color Color) Square {
	// check all piece types with increasing value
	switch {
	case (bitboard & position.PiecesBb(color, Pawn)) != 0:
		return (bitboard & position.PiecesBb(color, Pawn)).Lsb()
	case (bitboard & position.PiecesBb(color, Knight)) != 0:
		return (bitboard & position.PiecesBb(color, Knight)).Lsb()
	case (bitboard & position.PiecesBb(color, Bishop)) != 0:
		return (bitboard & position.PiecesBb(color, Bishop)).Lsb()
	case (bitboard & position.PiecesBb(color, Rook)) != 0:
		return (bitboard & position.PiecesBb(color, Rook)).Lsb()
	case (bitboard & position.PiecesBb(color, Queen)) != 0:
		return (bitboard & position.PiecesBb(color, Queen)).Lsb()
	case (bitboard & position.PiecesBb(color, King)) != 0:
		return (bitboard & position.PiecesBb(color, King)).Lsb()
	default:
		return SqNone
	}
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
