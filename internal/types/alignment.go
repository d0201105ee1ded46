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

// Alignment classifies the line shared by two squares - a rank, a file, one
// of the two diagonal orientations or no common line at all. It is used to
// describe the direction of pins.
type Alignment uint8

// Alignment constants.
const (
	AlignNone     Alignment = 0
	AlignRank     Alignment = 1
	AlignFile     Alignment = 2
	AlignDiagUp   Alignment = 3 // a1-h8 orientation
	AlignDiagDown Alignment = 4 // h1-a8 orientation
)

// AlignmentOf returns the Alignment of the two given squares, AlignNone if
// they do not share a rank, file or diagonal or are the same square.
func AlignmentOf(a Square, b Square) Alignment {
	if a == b || !a.IsValid() || !b.IsValid() {
		return AlignNone
	}
	if a.RankOf() == b.RankOf() {
		return AlignRank
	}
	if a.FileOf() == b.FileOf() {
		return AlignFile
	}
	fileDelta := int(b.FileOf()) - int(a.FileOf())
	rankDelta := int(b.RankOf()) - int(a.RankOf())
	switch {
	case fileDelta == rankDelta:
		return AlignDiagUp
	case fileDelta == -rankDelta:
		return AlignDiagDown
	}
	return AlignNone
}

// String returns a string representation of an Alignment.
func (a Alignment) String() string {
	switch a {
	case AlignRank:
		return "rank"
	case AlignFile:
		return "file"
	case AlignDiagUp:
		return "diagonal a1-h8"
	case AlignDiagDown:
		return "diagonal h1-a8"
	default:
		return "none"
	}
}
