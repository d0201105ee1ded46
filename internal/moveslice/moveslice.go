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

// Package moveslice implements the move list container used by move
// generation, the principal variation table and the search.
package moveslice

import (
	"strconv"
	"strings"

	. "github.com/ponderforge/ponderforge/internal/types"
)

// MoveSlice is a list of moves on top of a plain Go slice. The move
// generator and search reuse one instance per ply, so the container is
// built around Clear keeping the underlying array alive.
type MoveSlice []Move

// NewMoveSlice returns an empty move list with room for cap moves
// before the first reallocation.
func NewMoveSlice(cap int) *MoveSlice {
	ms := make(MoveSlice, 0, cap)
	return &ms
}

// Len returns the number of moves in the list.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move to the end of the list.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes the last move of the list and returns it.
// Panics when the list is empty.
func (ms *MoveSlice) PopBack() Move {
	last := len(*ms) - 1
	if last < 0 {
		panic("MoveSlice: PopBack on empty list")
	}
	m := (*ms)[last]
	*ms = (*ms)[:last]
	return m
}

// At returns the move at index i. Panics when i is out of bounds.
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Set replaces the move at index i. Panics when i is out of bounds.
func (ms *MoveSlice) Set(i int, m Move) {
	(*ms)[i] = m
}

// Clear empties the list but keeps the allocated array so the list can
// be refilled without garbage.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// FilterCopy appends every move for which keep returns true to dest.
// The receiver is left untouched.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, keep func(i int) bool) {
	for i, m := range *ms {
		if keep(i) {
			*dest = append(*dest, m)
		}
	}
}

// Clone returns a deep copy of the list.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make(MoveSlice, len(*ms))
	copy(dest, *ms)
	return &dest
}

// ForEach calls f with every index of the list in stored order.
func (ms *MoveSlice) ForEach(f func(i int)) {
	for i := range *ms {
		f(i)
	}
}

// Sort orders the moves by their encoded sort value, highest first.
// Move lists arrive mostly ordered from the staged generation and are
// small, so a stable insertion sort beats the generic sort here.
func (ms *MoveSlice) Sort() {
	s := *ms
	for i := 1; i < len(s); i++ {
		m := s[i]
		v := m.ValueOf()
		j := i
		for j > 0 && v > s[j-1].ValueOf() {
			s[j] = s[j-1]
			j--
		}
		s[j] = m
	}
}

// String returns a verbose representation of the list for debug output.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString("MoveList: [")
	sb.WriteString(strconv.Itoa(len(*ms)))
	sb.WriteString("] { ")
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci returns the moves as a space separated string in UCI long
// algebraic notation, the format used for PV output.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
