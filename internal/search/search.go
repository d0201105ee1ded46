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

// Package search drives the engine: it owns the position during a
// search, runs iterative deepening over the alpha beta search and
// reports progress and the final best move through the UCI driver
// interface. One search runs at a time in its own goroutine; the
// protocol layer talks to it only through StartSearch, StopSearch,
// PonderHit and the stop flag polled inside the search.
package search

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/ponderforge/ponderforge/internal/config"
	"github.com/ponderforge/ponderforge/internal/evaluator"
	"github.com/ponderforge/ponderforge/internal/history"
	myLogging "github.com/ponderforge/ponderforge/internal/logging"
	"github.com/ponderforge/ponderforge/internal/movegen"
	"github.com/ponderforge/ponderforge/internal/moveslice"
	"github.com/ponderforge/ponderforge/internal/openingbook"
	"github.com/ponderforge/ponderforge/internal/position"
	"github.com/ponderforge/ponderforge/internal/transpositiontable"
	. "github.com/ponderforge/ponderforge/internal/types"
	"github.com/ponderforge/ponderforge/internal/uciInterface"
	"github.com/ponderforge/ponderforge/internal/util"
)

var out = message.NewPrinter(language.German)

// Search owns everything one search needs: the shared caches (book,
// transposition table, evaluator, history tables), per-ply working data
// (one move generator and PV list per ply) and the state of the
// currently running or last finished search.
// Create with NewSearch().
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver

	// initSemaphore hands the "setup done" signal from the search
	// goroutine back to StartSearch; isRunning is held for the whole
	// duration of a search so callers can wait on it
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	// long lived components
	book    *openingbook.Book
	tt      *transpositiontable.TtTable
	eval    *evaluator.Evaluator
	history *history.History

	// result of the previous search
	lastSearchResult *Result
	hasResult        bool

	// state of the current search
	stopFlag          bool
	startTime         time.Time
	currentPosition   *position.Position
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	nodesVisited      uint64
	mg                []*movegen.MoveGenerator
	pv                []*moveslice.MoveSlice
	rootMoves         *moveslice.MoveSlice
	hadBookMove       bool
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// NewSearch creates a new Search instance. Without a UCI handler set
// through SetUciHandler all output goes to the log only.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          getSearchTraceLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewHistory(),
	}
}

// NewGame stops a running search and drops all state carried between
// searches of the same game (transposition table, history tables).
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history = history.NewHistory()
}

// StartSearch begins a search on the given position under the given
// limits in a separate goroutine. It returns as soon as the new search
// has finished its setup, so a following IsSearching is reliable.
// Position and limits are copied.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.currentPosition = &p
	s.searchLimits = &sl
	go s.run(&p, &sl)
	// the search goroutine releases the semaphore once it is set up
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch asks a running search to stop and blocks until it has.
// The search still reports its result to the UCI handler.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// PonderHit switches a ponder search over to normal time control
// without interrupting it. Without a pondering search running this only
// logs a warning.
func (s *Search) PonderHit() {
	if s.IsSearching() && s.searchLimits.Ponder {
		s.log.Debug("Ponderhit during search - activating time control")
		s.startTimer()
		return
	}
	s.log.Warning("Ponderhit received while not pondering")
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler connects the search to the UCI front-end for result
// and info output.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// GetUciHandlerPtr returns the connected UCI handler, nil if none.
func (s *Search) GetUciHandlerPtr() uciInterface.UciDriver {
	return s.uciHandlerPtr
}

// IsReady runs the potentially slow one-time initialization (opening
// book, transposition table) and then reports readiness to the UCI
// front-end ("readyok").
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash empties the transposition table. Refused while searching.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		msg := "Can't clear hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache re-creates the transposition table with the size
// currently configured. Refused while searching.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		msg := "Can't resize hash while searching."
		s.uciHandlerPtr.SendInfoString(msg)
		s.log.Warning(msg)
		return
	}
	// dropping the reference and re-initializing allocates the new table
	s.tt = nil
	s.initialize()
	s.log.Debug(util.GcWithStats())
	if s.tt != nil {
		s.uciHandlerPtr.SendInfoString(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// LastSearchResult returns a copy of the last search result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited in the last search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns the search statistics of the last search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is the body of the search goroutine: set up the search state,
// play a book move if one applies, otherwise iterate the alpha beta
// search, and finally publish the result.
func (s *Search) run(p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.log.Infof("Searching: %s", p.StringFen())

	// reset per-search state
	s.stopFlag = false
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.lastUciUpdateTime = s.startTime
	s.initialize()

	s.setupSearchLimits(p, sl)
	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	bookMove := s.chooseBookMove(p, sl)

	if s.tt != nil {
		s.log.Infof("Transposition Table: Using TT (%s)", s.tt.String())
		s.tt.AgeEntries()
	} else {
		s.log.Info("Transposition Table: Not using TT")
	}

	s.preparePlyData()

	s.log.Infof("Search using: PVS=%t ASP=%t MTDf=%t",
		config.Settings.Search.UsePVS,
		config.Settings.Search.UseAspiration,
		config.Settings.Search.UseMTDf)

	// setup is done - let StartSearch return to its caller
	s.initSemaphore.Release(1)

	var searchResult *Result
	if bookMove != MoveNone {
		searchResult = &Result{BestMove: bookMove, BookMove: true}
		s.hadBookMove = true
	} else {
		searchResult = s.iterativeDeepening(p)
	}

	// in ponder or infinite mode a finished search must hold its result
	// back until the GUI sends stop or ponderhit
	if (s.searchLimits.Ponder || s.searchLimits.Infinite) && !s.stopFlag {
		s.log.Debug("Search finished before stopped or ponderhit! Waiting for stop/ponderhit to send result")
		for !s.stopFlag && (s.searchLimits.Ponder || s.searchLimits.Infinite) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	searchResult.SearchTime = time.Since(s.startTime)
	searchResult.Pv = *s.pv[0]

	s.log.Info(out.Sprintf("Search finished after %s", searchResult.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d(%d) with %d nodes visited. NPS = %d nps",
		s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth, s.nodesVisited,
		util.Nps(s.nodesVisited, searchResult.SearchTime)))
	s.log.Debugf("Search stats: %s", s.statistics.String())
	s.log.Infof("Search result: %s", searchResult.String())

	s.lastSearchResult = searchResult
	s.hasResult = true

	// the timer goroutine watches this flag as well - make sure it ends
	// when the search finished on its own
	s.stopFlag = true

	// the final bestmove is sent even when the search was stopped
	s.sendResult(searchResult)
}

// chooseBookMove picks a random book move for the position when a book
// is loaded, enabled and the game is played with a clock.
func (s *Search) chooseBookMove(p *position.Position, sl *Limits) Move {
	if s.book == nil || !config.Settings.Search.UseBook || !sl.TimeControl {
		s.log.Info("Opening Book: Not using book")
		return MoveNone
	}
	bookEntry, found := s.book.GetEntry(p.ZobristKey())
	if !found || len(bookEntry.Moves) == 0 {
		return MoveNone
	}
	rand.Seed(int64(time.Now().Nanosecond()))
	bookMove := Move(bookEntry.Moves[rand.Intn(len(bookEntry.Moves))].Move)
	s.log.Debug("Opening Book: Choosing book move: ", bookMove.StringUci())
	return bookMove
}

// preparePlyData allocates one move generator and one PV list per ply.
// Each ply needs its own generator as the staged on-demand generation
// keeps state across calls within one node.
func (s *Search) preparePlyData() {
	s.mg = make([]*movegen.MoveGenerator, 0, MaxDepth+1)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		newMoveGen := movegen.NewMoveGenerator()
		if config.Settings.Search.UseHistoryCounter || config.Settings.Search.UseCounterMoves {
			newMoveGen.SetHistoryData(s.history)
		}
		s.mg = append(s.mg, newMoveGen)
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}
}

// iterativeDeepening searches the position at increasing depth until
// the depth limit, a stop condition or - with only one legal move -
// the first finished iteration. Every finished iteration leaves its
// best move in pv[0][0], so an interrupted deeper iteration can always
// fall back on the previous one.
func (s *Search) iterativeDeepening(p *position.Position) *Result {

	// positions which are already decided are not searched at all
	if result := s.checkTerminalRoot(p); result != nil {
		return result
	}

	// the first move after leaving the book deserves extra thinking time
	if s.hadBookMove && s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		s.log.Debugf(out.Sprintf("First non-book move to search. Adding extra time: Before: %d ms After: %s ms",
			s.timeLimit.Milliseconds(), 2*s.timeLimit.Milliseconds()))
		s.addExtraTime(2.0)
		s.hadBookMove = false
	}

	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 {
		maxDepth = s.searchLimits.Depth
	}

	bestValue := ValueNA

	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		s.nodesVisited++
		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		if s.statistics.CurrentExtraSearchDepth < iterationDepth {
			s.statistics.CurrentExtraSearchDepth = iterationDepth
		}

		// the root driver: plain full-window PVS by default, narrow
		// window variants once a previous value exists to center on
		switch {
		case config.Settings.Search.UseAspiration && iterationDepth > 3:
			bestValue = s.aspirationSearch(p, iterationDepth, bestValue)
		case config.Settings.Search.UseMTDf && iterationDepth > 3:
			bestValue = s.mtdf(p, iterationDepth, bestValue)
		default:
			bestValue = s.rootSearch(p, iterationDepth, ValueMin, ValueMax)
		}

		// stop between iterations on any limit; with a single legal
		// move one finished iteration is all we need
		if s.stopConditions() || s.rootMoves.Len() <= 1 {
			break
		}

		// order the root moves by this iteration's values so the next
		// iteration searches the best candidate first
		s.rootMoves.Sort()
		s.statistics.CurrentBestRootMove = s.pv[0].At(0)
		s.statistics.CurrentBestRootMoveValue = s.pv[0].At(0).ValueOf()
		s.sendIterationEndInfoToUci()
	}

	return s.buildResult(p)
}

// checkTerminalRoot returns a ready-made result when the root position
// is already a draw by repetition/50 moves, mate or stalemate; nil
// otherwise. Also generates the root moves.
func (s *Search) checkTerminalRoot(p *position.Position) *Result {
	if s.checkDrawRepAnd50(p, 2) {
		msg := "Search called on DRAW by Repetition or 50-moves-rule"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	s.rootMoves = s.mg[0].GenerateLegalMoves(p, movegen.GenAll)
	if s.rootMoves.Len() > 0 {
		return nil
	}

	if p.HasCheck() {
		s.statistics.Checkmates++
		msg := "Search called on a mate position"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: -ValueCheckMate}
	}
	s.statistics.Stalemates++
	msg := "Search called on a stalemate position"
	s.sendInfoStringToUci(msg)
	s.log.Warning(msg)
	return &Result{BestValue: ValueDraw}
}

// buildResult assembles the final Result from pv[0] and looks for a
// ponder move - from the PV when it is long enough, from the
// transposition table otherwise.
func (s *Search) buildResult(p *position.Position) *Result {
	result := &Result{
		BestMove:    s.pv[0].At(0).MoveOf(),
		BestValue:   s.pv[0].At(0).ValueOf(),
		PonderMove:  MoveNone,
		SearchDepth: s.statistics.CurrentIterationDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}

	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1).MoveOf()
	} else if config.Settings.Search.UseTT {
		p.DoMove(result.BestMove)
		if ttEntry := s.tt.Probe(p.ZobristKey()); ttEntry != nil {
			s.statistics.TTHit++
			result.PonderMove = ttEntry.Move()
			s.log.Debugf(out.Sprintf("Using ponder move from hash: %s", result.PonderMove.StringUci()))
		}
	}
	return result
}

// initialize loads the opening book and allocates the transposition
// table when enabled. Repeated calls are cheap once both exist.
func (s *Search) initialize() {
	if config.Settings.Search.UseBook {
		if s.book == nil {
			s.book = openingbook.NewBook()
			bookPath := config.Settings.Search.BookPath
			bookFile := config.Settings.Search.BookFile
			bookFormat, found := openingbook.FormatFromString[config.Settings.Search.BookFormat]
			if !found {
				s.log.Warningf("Book format invalid %s", config.Settings.Search.BookFormat)
				s.book = nil
			}
			err := s.book.Initialize(bookPath, bookFile, bookFormat, true, false)
			if err != nil {
				s.log.Warningf("Book could not be initialized: %s (%s)", bookPath, err)
				s.book = nil
			}
		}
	} else {
		s.log.Info("Opening book is disabled in configuration")
	}

	if config.Settings.Search.UseTT {
		if s.tt == nil {
			sizeInMByte := config.Settings.Search.TTSize
			if sizeInMByte == 0 {
				sizeInMByte = 64
			}
			s.tt = transpositiontable.NewTtTable(sizeInMByte)
		}
	} else {
		s.log.Info("Transposition Table is disabled in configuration")
	}
}

// stopConditions reports whether the search has to unwind: an external
// stop, an expired timer (both arrive through stopFlag) or the node
// limit.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag = true
	}
	return s.stopFlag
}

// setupSearchLimits logs the search mode and derives the time limit
// when the search is clock driven.
func (s *Search) setupSearchLimits(p *position.Position, sl *Limits) {
	if sl.Infinite {
		s.log.Info("Search mode: Infinite")
	}
	if sl.Ponder {
		s.log.Info("Search mode: Ponder")
	}
	if sl.Mate > 0 {
		s.log.Infof("Search mode: Search for mate in %d", sl.Mate)
	}
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(p, sl)
		s.extraTime = 0
		if sl.MoveTime > 0 {
			s.log.Infof("Search mode: Time controlled: Time per move %s", sl.MoveTime)
		} else {
			s.log.Info(out.Sprintf("Search mode: Time controlled: White = %s (inc %s) Black = %s (inc %s) Moves to go: %d",
				sl.WhiteTime, sl.WhiteInc, sl.BlackTime, sl.BlackInc, sl.MovesToGo))
			s.log.Info(out.Sprintf("Search mode: Time limit     : %s", s.timeLimit))
		}
		if sl.Ponder {
			s.log.Info("Search mode: Ponder - time control postponed until ponderhit received")
		}
	} else {
		s.log.Info("Search mode: No time control")
	}
	if sl.Depth > 0 {
		s.log.Debugf("Search mode: Depth limited  : %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		s.log.Infof(out.Sprintf("Search mode: Nodes limited  : %d", sl.Nodes))
	}
	if sl.Moves.Len() > 0 {
		s.log.Infof(out.Sprintf("Search mode: Moves limited  : %s", sl.Moves.StringUci()))
	}
}

// setupTimeControl computes the time budget for this move. With a fixed
// move time that is used nearly as-is; otherwise the remaining clock
// plus expected increments is spread over an estimate of the moves
// still to come, with a safety discount for the engine's own overhead.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		// leave a little room for processing the result
		duration := sl.MoveTime - 20*time.Millisecond
		if duration < 0 {
			s.log.Warningf("Very short move time: %s. ", sl.MoveTime)
			return sl.MoveTime
		}
		return duration
	}

	// without movestogo assume at least 15 more moves, up to 40 in the
	// early game
	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 {
		movesLeft = int64(15 + 25*p.GamePhaseFactor())
	}

	var timeLeft time.Duration
	switch p.NextPlayer() {
	case White:
		timeLeft = sl.WhiteTime + time.Duration(movesLeft*sl.WhiteInc.Nanoseconds())
	case Black:
		timeLeft = sl.BlackTime + time.Duration(movesLeft*sl.BlackInc.Nanoseconds())
	}

	timeLimit := time.Duration(timeLeft.Nanoseconds() / movesLeft)
	// overhead discount - harsher when the budget is already tiny
	if timeLimit.Milliseconds() < 100 {
		timeLimit = time.Duration(int64(0.8 * float64(timeLimit.Nanoseconds())))
	} else {
		timeLimit = time.Duration(int64(0.9 * float64(timeLimit.Nanoseconds())))
	}
	return timeLimit
}

// addExtraTime scales the remaining thinking time by f relative to the
// base time limit: f=1.1 grants 10% extra, f=0.9 takes 10% away. Only
// meaningful for clock driven searches without a fixed move time.
func (s *Search) addExtraTime(f float64) {
	if s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		duration := time.Duration(int64((f - 1.0) * float64(s.timeLimit.Nanoseconds())))
		s.extraTime += duration
		s.log.Debugf(out.Sprintf("Time added/reduced by %s to %s ",
			duration, s.timeLimit+s.extraTime))
	}
}

// startTimer launches the watchdog goroutine which raises the stop flag
// once the time budget (including any extra time granted later) is
// used up. Since extraTime can still change, the goroutine re-checks
// the deadline in a relaxed loop instead of using a fixed timer.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		s.log.Debugf("Timer started with time limit of %s", s.timeLimit)
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag {
			time.Sleep(5 * time.Millisecond)
		}
		if s.stopFlag {
			s.log.Debugf("Timer stopped early after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
			return
		}
		s.log.Debugf("Timer stops search after wall time: %s (time limit %s and extra time %s)",
			time.Since(timerStart), s.timeLimit, s.extraTime)
		s.stopFlag = true
	}()
}

// checkDrawRepAnd50 reports a draw when the position occurred the given
// number of times before or the 50-move counter ran out.
func (s *Search) checkDrawRepAnd50(p *position.Position, repetitions int) bool {
	return p.CheckRepetitions(repetitions) || p.HalfMoveClock() >= 100
}

// //////////////////////////////////////////////////////
// // Output to the UCI driver
// //////////////////////////////////////////////////////

func (s *Search) sendResult(searchResult *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(searchResult.BestMove, searchResult.PonderMove)
	}
}

func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	}
}

// sendSearchUpdateToUci emits the periodic progress record, rate
// limited to about one per second.
func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) <= time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	hashfull := 0
	if s.tt != nil {
		hashfull = s.tt.Hashfull()
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchUpdate(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			hashfull)
		s.uciHandlerPtr.SendCurrentRootMove(s.statistics.CurrentRootMove, s.statistics.CurrentRootMoveIndex)
		s.uciHandlerPtr.SendCurrentLine(s.statistics.CurrentVariation)
		return
	}
	s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d hashful %d",
		s.statistics.CurrentSearchDepth,
		s.statistics.CurrentExtraSearchDepth,
		s.statistics.CurrentBestRootMoveValue.String(),
		s.nodesVisited,
		s.getNps(),
		time.Since(s.startTime).Milliseconds(),
		hashfull))
}

// sendIterationEndInfoToUci emits depth, value, nodes and PV after each
// finished iteration.
func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
		return
	}
	s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d pv %s",
		s.statistics.CurrentSearchDepth,
		s.statistics.CurrentExtraSearchDepth,
		s.statistics.CurrentBestRootMoveValue.String(),
		s.nodesVisited,
		s.getNps(),
		time.Since(s.startTime).Milliseconds(),
		s.pv[0].StringUci()))
}

// sendAspirationResearchInfo reports a failed narrow window with the
// failed bound before the re-search.
func (s *Search) sendAspirationResearchInfo(bound string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendAspirationResearchInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			bound,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
		return
	}
	s.log.Infof(out.Sprintf("depth %d seldepth %d value %s %s nodes %d nps %d time %d pv %s",
		s.statistics.CurrentSearchDepth,
		s.statistics.CurrentExtraSearchDepth,
		s.statistics.CurrentBestRootMoveValue.String(),
		bound,
		s.nodesVisited,
		s.getNps(),
		time.Since(s.startTime).Milliseconds(),
		s.pv[0].StringUci()))
}

// getNps returns the current search speed; implausible spikes from very
// short elapsed times are reported as 0.
func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime)+100)
	if nps > 15_000_000 {
		nps = 0
	}
	return nps
}
