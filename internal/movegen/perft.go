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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ponderforge/ponderforge/internal/position"
	. "github.com/ponderforge/ponderforge/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft walks the full legal move tree of a position to a fixed depth
// and counts nodes and special move kinds at the leaves. The counts are
// compared against published reference numbers to validate the move
// generator and make/unmake.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop aborts a perft run started in a goroutine.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs perft on the position for every depth from
// startDepth through endDepth. Can be stopped via Stop() when running
// in a goroutine.
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int, onDemand bool) {
	perft.stopFlag = false
	for d := startDepth; d <= endDepth; d++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, d, onDemand)
	}
}

// StartPerft runs a single perft to the given depth, using either the
// batch or the on-demand move generation path, and prints a report.
func (perft *Perft) StartPerft(fen string, depth int, onDemand bool) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}

	perft.resetCounter()
	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Perft: invalid fen: %s\n", fen)
		return
	}
	// one generator per level - the generators carry state
	mgList := make([]*MoveGenerator, depth+1)
	for i := range mgList {
		mgList[i] = NewMoveGenerator()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.countNodes(depth, p, mgList, onDemand)
	elapsed := time.Since(start)

	if result == 0 {
		out.Print("Perft stopped\n")
		return
	}
	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// countNodes recursively walks the move tree. Moves are generated
// pseudo legally and validated by make/unmake plus WasLegalMove, the
// same discipline the search uses. At depth 1 the applied moves are
// classified for the special counters.
func (perft *Perft) countNodes(depth int, p *position.Position, mgList []*MoveGenerator, onDemand bool) uint64 {
	if perft.stopFlag {
		return 0
	}
	mg := mgList[depth]
	total := uint64(0)

	process := func(move Move) {
		if depth > 1 {
			p.DoMove(move)
			if p.WasLegalMove() {
				total += perft.countNodes(depth-1, p, mgList, onDemand)
			}
			p.UndoMove()
			return
		}
		// leaf level - classify the move before applying it
		capture := p.GetPiece(move.To()) != PieceNone
		p.DoMove(move)
		if p.WasLegalMove() {
			total++
			switch move.MoveType() {
			case EnPassant:
				perft.EnpassantCounter++
				perft.CaptureCounter++
			case Castling:
				perft.CastleCounter++
			case Promotion:
				perft.PromotionCounter++
			}
			if capture {
				perft.CaptureCounter++
			}
			if p.HasCheck() {
				perft.CheckCounter++
				if !mgList[0].HasLegalMove(p) {
					perft.CheckMateCounter++
				}
			}
		}
		p.UndoMove()
	}

	if onDemand {
		hasCheck := p.HasCheck()
		for move := mg.GetNextMove(p, GenAll, hasCheck); move != MoveNone; move = mg.GetNextMove(p, GenAll, hasCheck) {
			if perft.stopFlag {
				return 0
			}
			process(move)
		}
	} else {
		for _, move := range *mg.GeneratePseudoLegalMoves(p, GenAll, p.HasCheck()) {
			if perft.stopFlag {
				return 0
			}
			process(move)
		}
	}
	return total
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
