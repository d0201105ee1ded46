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

package position

import (
	"fmt"

	. "github.com/ponderforge/ponderforge/internal/types"
)

// FenErrorKind tags the specific condition that made a FEN string
// unacceptable to setupBoard. Every reset(fen) rejection carries one of
// these, never a bare string.
type FenErrorKind uint8

// Constants for FenErrorKind, one per reset(fen) rejection reason.
const (
	FenRankCount FenErrorKind = iota
	FenChar
	FenSquareCount
	FenColor
	FenCastlingRights
	FenEpSquare
	FenHalfmoveClock
	FenFullmoveNumber
	FenPawnsOnBackRank
	FenKingCount
	FenKingCanBeCaptured
	FenCastleImpossible
	FenEpImpossible
	FenTooManyPawns
	FenTooManyKnights
	FenTooManyBishops
	FenTooManyRooks
	FenTooManyQueens
)

// FenError reports why reset(fen) rejected a FEN string. Which of the
// payload fields below are meaningful depends on Kind.
type FenError struct {
	Kind FenErrorKind

	Rank  int    // board rank number (1-8) for FenRankCount/FenSquareCount/FenPawnsOnBackRank
	Char  rune   // offending character for FenChar/FenColor/FenCastlingRights
	Field string // offending raw field for FenEpSquare/FenHalfmoveClock/FenFullmoveNumber
	Color Color  // color at fault for FenKingCount/FenKingCanBeCaptured/FenCastleImpossible/too_many_*
	Count int    // observed count for FenKingCount/too_many_*
}

func (e *FenError) Error() string {
	switch e.Kind {
	case FenRankCount:
		return fmt.Sprintf("fen: expected 8 ranks, rank %d is missing or the board ends early", e.Rank)
	case FenChar:
		return fmt.Sprintf("fen: invalid piece character %q", e.Char)
	case FenSquareCount:
		return fmt.Sprintf("fen: rank %d does not add up to 8 squares", e.Rank)
	case FenColor:
		return fmt.Sprintf("fen: invalid side to move %q", e.Char)
	case FenCastlingRights:
		return fmt.Sprintf("fen: invalid castling rights character %q", e.Char)
	case FenEpSquare:
		return fmt.Sprintf("fen: invalid en passant square %q", e.Field)
	case FenHalfmoveClock:
		return fmt.Sprintf("fen: invalid halfmove clock %q", e.Field)
	case FenFullmoveNumber:
		return fmt.Sprintf("fen: invalid fullmove number %q", e.Field)
	case FenPawnsOnBackRank:
		return fmt.Sprintf("fen: pawn on back rank %d", e.Rank)
	case FenKingCount:
		return fmt.Sprintf("fen: %s has %d kings, expected exactly 1", e.Color.String(), e.Count)
	case FenKingCanBeCaptured:
		return fmt.Sprintf("fen: %s king is in check from the side to move", e.Color.String())
	case FenCastleImpossible:
		return fmt.Sprintf("fen: castling rights granted for %s without king and rook on their home squares", e.Color.String())
	case FenEpImpossible:
		return "fen: en passant square set but no pawn could have just made that move"
	case FenTooManyPawns:
		return fmt.Sprintf("fen: %s has %d pawns, more than the 8 allowed", e.Color.String(), e.Count)
	case FenTooManyKnights:
		return fmt.Sprintf("fen: %s has %d knights, more than the 10 allowed", e.Color.String(), e.Count)
	case FenTooManyBishops:
		return fmt.Sprintf("fen: %s has %d bishops, more than the 10 allowed", e.Color.String(), e.Count)
	case FenTooManyRooks:
		return fmt.Sprintf("fen: %s has %d rooks, more than the 10 allowed", e.Color.String(), e.Count)
	case FenTooManyQueens:
		return fmt.Sprintf("fen: %s has %d queens, more than the 9 allowed", e.Color.String(), e.Count)
	default:
		return "fen: invalid"
	}
}
