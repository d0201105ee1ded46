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

package search

import (
	"strings"

	"github.com/ponderforge/ponderforge/internal/moveslice"
	. "github.com/ponderforge/ponderforge/internal/types"
)

// Statistics collects counters about what the search did. None of them
// influence the result; they exist for the log, for the UCI info output
// and for judging whether a pruning or ordering idea pays off.
type Statistics struct {

	// progress of the current search, read by the UCI updater
	CurrentIterationDepth    int
	CurrentSearchDepth       int
	CurrentExtraSearchDepth  int
	CurrentVariation         moveslice.MoveSlice
	CurrentRootMoveIndex     int
	CurrentRootMove          Move
	CurrentBestRootMove      Move
	CurrentBestRootMoveValue Value

	// terminal nodes
	LeafPositionsEvaluated uint64
	Evaluations            uint64
	EvaluationsFromTT      uint64
	Checkmates             uint64
	Stalemates             uint64

	// move ordering quality
	BetaCuts    uint64
	BetaCuts1st uint64

	// transposition table
	TTHit      uint64
	TTMiss     uint64
	TTMoveUsed uint64
	NoTTMove   uint64
	TTCuts     uint64
	TTNoCuts   uint64

	// window techniques
	AspirationResearches uint64
	RootPvsResearches    uint64
	PvsResearches        uint64
	Mdp                  uint64

	// prunings and reductions
	RfpPrunings   uint64
	RazorPrunings uint64
	NullMoveCuts  uint64
	NMPMateAlpha  uint64
	NMPMateBeta   uint64
	FpPrunings    uint64
	QFpPrunings   uint64
	LmpCuts       uint64
	LmrReductions uint64
	LmrResearches uint64
	StandpatCuts  uint64

	// extensions and IID
	CheckExtension  uint64
	ThreatExtension uint64
	CheckInQS       uint64
	IIDsearches     uint64
	IIDmoves        uint64
}

// String returns the counters grouped per concern, one group per line.
func (s *Statistics) String() string {
	var sb strings.Builder
	sb.WriteString(out.Sprintf("depth %d(%d) ", s.CurrentSearchDepth, s.CurrentExtraSearchDepth))
	sb.WriteString(out.Sprintf("evals %d (tt %d) mates %d stalemates %d | ",
		s.Evaluations, s.EvaluationsFromTT, s.Checkmates, s.Stalemates))
	sb.WriteString(out.Sprintf("beta cuts %d (first move %d) | ", s.BetaCuts, s.BetaCuts1st))
	sb.WriteString(out.Sprintf("tt hits %d misses %d cuts %d moves %d | ",
		s.TTHit, s.TTMiss, s.TTCuts, s.TTMoveUsed))
	sb.WriteString(out.Sprintf("researches asp %d pvs %d/%d mdp %d | ",
		s.AspirationResearches, s.RootPvsResearches, s.PvsResearches, s.Mdp))
	sb.WriteString(out.Sprintf("prunings rfp %d razor %d nmp %d fp %d qfp %d lmp %d lmr %d/%d standpat %d | ",
		s.RfpPrunings, s.RazorPrunings, s.NullMoveCuts, s.FpPrunings, s.QFpPrunings,
		s.LmpCuts, s.LmrReductions, s.LmrResearches, s.StandpatCuts))
	sb.WriteString(out.Sprintf("ext check %d threat %d qs-checks %d iid %d/%d",
		s.CheckExtension, s.ThreatExtension, s.CheckInQS, s.IIDsearches, s.IIDmoves))
	return sb.String()
}
