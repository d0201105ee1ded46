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

package types

import (
	"fmt"
	"strings"

	"github.com/ponderforge/ponderforge/internal/assert"
)

// Move packs the 21-bit move word plus a search sort key into a single
// 64-bit word.
//  MoveNone Move = 0
//  BITMAP 64-bit
//  |-value (32 high bits, signed)--|-reserved-|tt|-prom-|-cap-|-mov-|--to--|-from-|
//
//                       bits 0-5    from            origin square
//                       bits 6-11   to              destination square
//                       bits 12-14  piece moved     PieceType of the moving piece
//                       bits 15-17  piece captured  PieceType captured, PtNone if none
//                                                   (Pawn for an en passant capture,
//                                                   even though the destination square
//                                                   itself is empty)
//                       bits 18-20  promotion piece PieceType promoted to, PtNone if none
//                       bits 21-22  move type       Normal/Promotion/EnPassant/Castling
//                       bits 32-63  sort value      signed move-ordering key
//
// Bits 0-20 are the 21-bit move word: origin, destination, piece moved,
// piece captured and promotion piece are all recoverable directly from the
// move itself, without consulting a Position. Move type rides in two extra
// bits beyond that 21-bit core so make/unmake can dispatch without
// re-deriving en passant/castling from board state, but it is redundant
// with (and always consistent with) piece moved + promotion piece + the
// from/to pair.
type Move uint64

const (
	// MoveNone is the empty, not-valid move (also doubles as the null move
	// in the search, where it carries distinct semantics: flip side to
	// move, clear the en passant target, nothing else).
	MoveNone Move = 0
)

// CreateMove returns an encoded Move instance without a sort value.
// pieceMoved and pieceCaptured are PtNone-sentineled PieceType values as
// described in Move's bit layout above; pieceCaptured is Pawn (not PtNone)
// for an en passant capture.
func CreateMove(from Square, to Square, t MoveType, promType PieceType, pieceMoved PieceType, pieceCaptured PieceType) Move {
	return Move(from) |
		Move(to)<<toShift |
		Move(pieceMoved)<<pieceMovedShift |
		Move(pieceCaptured)<<pieceCapturedShift |
		Move(promType)<<promTypeShift |
		Move(t)<<typeShift
}

// CreateMoveValue returns an encoded Move instance including a sort value.
func CreateMoveValue(from Square, to Square, t MoveType, promType PieceType, pieceMoved PieceType, pieceCaptured PieceType, value Value) Move {
	return Move(value-ValueNA)<<valueShift |
		Move(from) |
		Move(to)<<toShift |
		Move(pieceMoved)<<pieceMovedShift |
		Move(pieceCaptured)<<pieceCapturedShift |
		Move(promType)<<promTypeShift |
		Move(t)<<typeShift
}

// PieceLookup is the minimal board-query contract NewMove/NewMoveValue need
// to derive piece-moved/piece-captured on the caller's behalf; *position.Position
// satisfies it structurally without types importing position (which would
// cycle back, since position dot-imports this package).
type PieceLookup interface {
	GetPiece(sq Square) Piece
}

// NewMove builds a Move by reading piece-moved/piece-captured off board,
// sparing callers that already have a board handy from working the fields
// out themselves. En passant's captured pawn is not on the destination
// square, so it is special-cased to Pawn rather than read off board.
func NewMove(board PieceLookup, from Square, to Square, t MoveType, promType PieceType) Move {
	pieceMoved := board.GetPiece(from).TypeOf()
	pieceCaptured := board.GetPiece(to).TypeOf()
	if t == EnPassant {
		pieceCaptured = Pawn
	}
	return CreateMove(from, to, t, promType, pieceMoved, pieceCaptured)
}

// NewMoveValue is NewMove plus a sort value, see CreateMoveValue.
func NewMoveValue(board PieceLookup, from Square, to Square, t MoveType, promType PieceType, value Value) Move {
	pieceMoved := board.GetPiece(from).TypeOf()
	pieceCaptured := board.GetPiece(to).TypeOf()
	if t == EnPassant {
		pieceCaptured = Pawn
	}
	return CreateMoveValue(from, to, t, promType, pieceMoved, pieceCaptured, value)
}

// MoveType returns the type of the move: Normal, Promotion, EnPassant or
// Castling.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the PieceType considered for promotion when the
// move type is Promotion; PtNone otherwise.
func (m Move) PromotionType() PieceType {
	return PieceType((m & promTypeMask) >> promTypeShift)
}

// PieceMoved returns the PieceType of the piece making the move, recovered
// directly from the move word.
func (m Move) PieceMoved() PieceType {
	return PieceType((m & pieceMovedMask) >> pieceMovedShift)
}

// PieceCaptured returns the PieceType of the piece being captured, PtNone
// if the move is not a capture. For en passant this is Pawn even though
// the destination square itself is empty on the board.
func (m Move) PieceCaptured() PieceType {
	return PieceType((m & pieceCapturedMask) >> pieceCapturedShift)
}

// IsCapture reports whether the move carries a captured piece.
func (m Move) IsCapture() bool {
	return m.PieceCaptured() != PtNone
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square(m & fromMask)
}

// MoveOf returns the move without any sort value (lowest 32 bits).
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the sort value for the move used during move generation
// and ordering.
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue encodes the given value into the high bits of the move.
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "Invalid move sort value: %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	*m = *m&moveMask | Move(v-ValueNA)<<valueShift
	return *m
}

// IsValid checks if the move has valid squares, piece fields and move
// type. MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PieceMoved().IsValid() &&
		m.PieceMoved() != PtNone &&
		m.PieceCaptured().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid() &&
		(m.ValueOf() == ValueNA || m.ValueOf().IsValid())
}

// String returns a verbose string representation of a move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  mvd:%1s  cap:%1s  prom:%1s  value:%-6d  (%d) }",
		m.StringUci(), m.MoveType().String(), m.PieceMoved().Char(), m.PieceCaptured().Char(), m.PromotionType().Char(), m.ValueOf(), m)
}

// StringUci returns the move's UCI-compatible long algebraic notation
// (e.g. "e2e4", "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(m.PromotionType().Char())
	}
	return os.String()
}

// StringBits returns a string with the bit-level detail of a Move, e.g. for
// e2e4 with sort value 0:
// Move { From[001100](e2) To[011100](e4) Mvd[010](P) Cap[000](-) Prom[000](-) tType[00](Normal) value[0000000000000000](0) (64428804417292)}
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Mvd[%-0.3b](%s) Cap[%-0.3b](%s) Prom[%-0.3b](%s) tType[%-0.2b](%s) value[%-0.16b](%d) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.PieceMoved(), m.PieceMoved().Char(),
		m.PieceCaptured(), m.PieceCaptured().Char(),
		m.PromotionType(), m.PromotionType().Char(),
		m.MoveType(), m.MoveType().String(),
		m.ValueOf(), m.ValueOf(),
		m)
}

const (
	toShift            uint = 6
	pieceMovedShift    uint = 12
	pieceCapturedShift uint = 15
	promTypeShift      uint = 18
	typeShift          uint = 21
	valueShift         uint = 32

	squareMask        Move = 0x3F
	fromMask               = squareMask
	toMask             Move = squareMask << toShift
	pieceTypeFieldMask Move = 0x7
	pieceMovedMask     Move = pieceTypeFieldMask << pieceMovedShift
	pieceCapturedMask  Move = pieceTypeFieldMask << pieceCapturedShift
	promTypeMask       Move = pieceTypeFieldMask << promTypeShift
	moveTypeMask       Move = 0x3 << typeShift
	moveMask           Move = 0xFFFFFFFF
	valueMask          Move = 0xFFFFFFFF << valueShift
)
