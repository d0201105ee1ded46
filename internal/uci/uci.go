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

// Package uci implements the engine side of the UCI protocol: a command
// loop reading from the GUI, command handlers driving position and
// search, and the output side used by the search to report progress and
// its final best move.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	golog "log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ponderforge/ponderforge/internal/config"
	myLogging "github.com/ponderforge/ponderforge/internal/logging"
	"github.com/ponderforge/ponderforge/internal/movegen"
	"github.com/ponderforge/ponderforge/internal/moveslice"
	"github.com/ponderforge/ponderforge/internal/position"
	"github.com/ponderforge/ponderforge/internal/search"
	. "github.com/ponderforge/ponderforge/internal/types"
	"github.com/ponderforge/ponderforge/internal/uciInterface"
	"github.com/ponderforge/ponderforge/internal/util"
	"github.com/ponderforge/ponderforge/internal/version"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// UciHandler is the engine's side of the UCI conversation. It keeps the
// position the GUI set up, the search it drives and the io streams,
// which tests may replace with buffers.
// Create an instance with NewUciHandler().
type UciHandler struct {
	InIo       *bufio.Scanner
	OutIo      *bufio.Writer
	myMoveGen  *movegen.MoveGenerator
	mySearch   *search.Search
	myPosition *position.Position
	myPerft    *movegen.Perft
	uciLog     *logging.Logger
}

// ///////////////////////////////////////////////////////////
// Public
// ///////////////////////////////////////////////////////////

// NewUciHandler creates a new UciHandler reading from stdin and writing
// to stdout. Swap InIo/OutIo to talk to something else.
func NewUciHandler() *UciHandler {
	if log == nil {
		log = myLogging.GetLog()
	}
	u := &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		myMoveGen:  movegen.NewMoveGenerator(),
		mySearch:   search.NewSearch(),
		myPosition: position.NewPosition(),
		myPerft:    movegen.NewPerft(),
		uciLog:     getUciLog(),
	}
	var uciDriver uciInterface.UciDriver = u
	u.mySearch.SetUciHandler(uciDriver)
	return u
}

// Loop reads and executes commands until "quit" arrives.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
		log.Debugf("Waiting for command:")
	}
}

// Command executes a single protocol line and returns whatever the
// engine wrote in response. Used by tests and for debugging.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// ///////////////////////////////////////////////////////////
// Output side - called by the search through uciInterface
// ///////////////////////////////////////////////////////////

// SendReadyOk reports "readyok" to the GUI.
func (u *UciHandler) SendReadyOk() {
	u.send("readyok")
}

// SendInfoString sends an arbitrary text line as "info string".
func (u *UciHandler) SendInfoString(info string) {
	u.send(out.Sprintf("info string %s", info))
}

// SendIterationEndInfo reports the result of a finished iteration.
func (u *UciHandler) SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info depth %d seldepth %d multipv 1 score %s nodes %d nps %d time %d pv %s",
		depth, seldepth, value.String(), nodes, nps, time.Milliseconds(), pv.StringUci()))
}

// SendSearchUpdate reports the periodic progress record.
func (u *UciHandler) SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, time time.Duration, hashfull int) {
	u.send(fmt.Sprintf("info depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
		depth, seldepth, nodes, nps, time.Milliseconds(), hashfull))
}

// SendAspirationResearchInfo reports a failed aspiration window with
// its bound tag before the re-search.
func (u *UciHandler) SendAspirationResearchInfo(depth int, seldepth int, value Value, bound string, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info depth %d seldepth %d multipv 1 score %s %s nodes %d nps %d time %d pv %s",
		depth, seldepth, value.String(), bound, nodes, nps, time.Milliseconds(), pv.StringUci()))
}

// SendCurrentRootMove reports which root move is being searched.
func (u *UciHandler) SendCurrentRootMove(currMove Move, moveNumber int) {
	u.send(fmt.Sprintf("info currmove %s currmovenumber %d", currMove.StringUci(), moveNumber))
}

// SendCurrentLine reports the currently searched variation.
func (u *UciHandler) SendCurrentLine(moveList moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info currline %s", moveList.StringUci()))
}

// SendResult reports the final best move and the optional ponder move.
func (u *UciHandler) SendResult(bestMove Move, ponderMove Move) {
	var sb strings.Builder
	sb.WriteString("bestmove ")
	sb.WriteString(bestMove.StringUci())
	if ponderMove != MoveNone {
		sb.WriteString(" ponder ")
		sb.WriteString(ponderMove.StringUci())
	}
	u.send(sb.String())
}

// ///////////////////////////////////////////////////////////
// Private - command handling
// ///////////////////////////////////////////////////////////

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches one protocol line. Returns true for
// "quit".
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(cmd) == 0 {
		return false
	}
	log.Debugf("Received command: %s", cmd)
	u.uciLog.Infof("<< %s", cmd)

	tokens := regexWhiteSpace.Split(cmd, -1)
	switch strings.TrimSpace(tokens[0]) {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.mySearch.IsReady()
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.mySearch.StopSearch()
		u.myPerft.Stop()
	case "ponderhit":
		u.mySearch.PonderHit()
	case "register", "debug":
		u.notImplemented(tokens[0])
	case "perft":
		u.perftCommand(tokens)
	case "noop":
	default:
		log.Warningf("Error: Unknown command: %s", cmd)
	}
	log.Debugf("Processed command: %s", cmd)
	return false
}

// uciCommand answers "uci" with the engine identity, all options and
// "uciok".
func (u *UciHandler) uciCommand() {
	u.send("id name ponderforge " + version.Version())
	u.send("id author Frank Kopp, Germany")
	for _, o := range uciOptions {
		u.send(o.uciDeclaration())
	}
	u.send("uciok")
}

// setOptionCommand parses "setoption name <name> [value <value>]" and
// applies the named option.
func (u *UciHandler) setOptionCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "name" {
		u.complain("Command 'setoption' is malformed")
		return
	}
	// the name may contain spaces and runs until the "value" token
	var nameParts []string
	i := 2
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name := strings.Join(nameParts, " ")
	value := ""
	if i+1 < len(tokens) && tokens[i] == "value" {
		value = tokens[i+1]
	}

	o, found := optionIndex[name]
	if !found {
		u.complain(out.Sprintf("Command 'setoption': No such option '%s'", name))
		return
	}
	o.set(u, value)
}

// positionCommand sets up the current position from
// "position [startpos|fen <fen>] [moves <move>...]".
func (u *UciHandler) positionCommand(tokens []string) {
	fen := position.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fenb.String())
		if len(fen) == 0 {
			u.complain(out.Sprintf("Command 'position' malformed. %s", tokens))
			return
		}
	default:
		u.complain(out.Sprintf("Command 'position' malformed. %s", tokens))
		return
	}

	newPosition, err := position.NewPositionFen(fen)
	if err != nil {
		u.complain(out.Sprintf("Command 'position': invalid fen. %s", err))
		return
	}
	u.myPosition = newPosition

	// apply the move list, each move validated against the position it
	// is played on
	if i < len(tokens) {
		if tokens[i] != "moves" {
			u.complain(out.Sprintf("Command 'position' malformed moves. %s", tokens))
			return
		}
		for i++; i < len(tokens); i++ {
			move := u.myMoveGen.GetMoveFromUci(u.myPosition, tokens[i])
			if !move.IsValid() {
				u.complain(out.Sprintf("Command 'position' malformed. Invalid move '%s' (%s)", tokens[i], tokens))
				return
			}
			u.myPosition.DoMove(move)
		}
	}
	log.Debugf("New position: %s", u.myPosition.StringFen())
}

// goCommand reads the search limits and starts the search.
func (u *UciHandler) goCommand(tokens []string) {
	searchLimits, err := u.readSearchLimits(tokens)
	if err {
		return
	}
	u.mySearch.StartSearch(*u.myPosition, *searchLimits)
}

// uciNewGameCommand resets position and game state for a fresh game.
func (u *UciHandler) uciNewGameCommand() {
	u.myPosition = position.NewPosition()
	u.mySearch.NewGame()
}

// perftCommand runs perft on the start position, either for one depth
// or a depth range, in the background.
func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4 // default
	if len(tokens) > 1 {
		d, err := strconv.Atoi(tokens[1])
		if err != nil {
			log.Warningf("Can't perft on depth='%s'", tokens[1])
		} else {
			depth = d
		}
	}
	depth2 := depth
	if len(tokens) > 2 {
		d, err := strconv.Atoi(tokens[2])
		if err != nil {
			log.Warningf("Can't use second perft depth2='%s'", tokens[2])
		} else {
			depth2 = d
		}
	}
	go u.myPerft.StartPerftMulti(position.StartFen, depth, depth2, true)
}

func (u *UciHandler) notImplemented(cmd string) {
	u.complain(out.Sprintf("Command '%s' not implemented", cmd))
}

// complain reports a protocol problem both to the GUI and the log.
func (u *UciHandler) complain(msg string) {
	u.SendInfoString(msg)
	log.Warning(msg)
}

// readSearchLimits translates the "go" sub-commands into search Limits.
// Returns a true error flag when the command was malformed or the
// limits make no sense.
func (u *UciHandler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	sl := search.NewSearchLimits()

	// parses the numeric argument following the current token as
	// milliseconds; returns false after complaining on garbage
	millis := func(i int, what string) (time.Duration, bool) {
		v, err := strconv.ParseInt(tokens[i], 10, 64)
		if err != nil {
			u.complain(out.Sprintf("UCI command go malformed. %s value not a number: %s", what, tokens[i]))
			return 0, false
		}
		return time.Duration(v) * time.Millisecond, true
	}

	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "moves", "searchmoves":
			for i++; i < len(tokens); i++ {
				move := u.myMoveGen.GetMoveFromUci(u.myPosition, tokens[i])
				if !move.IsValid() {
					break
				}
				sl.Moves.PushBack(move)
			}
		case "infinite":
			sl.Infinite = true
			i++
		case "ponder":
			sl.Ponder = true
			i++
		case "depth":
			i++
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.complain(out.Sprintf("UCI command go malformed. Depth value not a number: %s", tokens[i]))
				return nil, true
			}
			sl.Depth = d
			i++
		case "nodes":
			i++
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.complain(out.Sprintf("UCI command go malformed. Nodes value not a number: %s", tokens[i]))
				return nil, true
			}
			sl.Nodes = uint64(n)
			i++
		case "mate":
			i++
			m, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.complain(out.Sprintf("UCI command go malformed. Mate value not a number: %s", tokens[i]))
				return nil, true
			}
			sl.Mate = m
			i++
		case "movetime", "moveTime": // some test suites use the camel case form
			i++
			d, ok := millis(i, "MoveTime")
			if !ok {
				return nil, true
			}
			sl.MoveTime = d
			sl.TimeControl = true
			i++
		case "wtime":
			i++
			d, ok := millis(i, "WhiteTime")
			if !ok {
				return nil, true
			}
			sl.WhiteTime = d
			sl.TimeControl = true
			i++
		case "btime":
			i++
			d, ok := millis(i, "BlackTime")
			if !ok {
				return nil, true
			}
			sl.BlackTime = d
			sl.TimeControl = true
			i++
		case "winc":
			i++
			d, ok := millis(i, "WhiteInc")
			if !ok {
				return nil, true
			}
			sl.WhiteInc = d
			i++
		case "binc":
			i++
			d, ok := millis(i, "BlackInc")
			if !ok {
				return nil, true
			}
			sl.BlackInc = d
			i++
		case "movestogo":
			i++
			m, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.complain(out.Sprintf("UCI command go malformed. Movestogo value not a number: %s", tokens[i]))
				return nil, true
			}
			sl.MovesToGo = m
			i++
		default:
			u.complain(out.Sprintf("UCI command go malformed. Invalid subcommand: %s", tokens[i]))
			return nil, true
		}
	}

	// at least one effective limit must be present
	if !(sl.Infinite || sl.Ponder || sl.Depth > 0 || sl.Nodes > 0 ||
		sl.Mate > 0 || sl.TimeControl) {
		u.complain(out.Sprintf("UCI command go malformed. No effective limits set %s", tokens))
		return nil, true
	}

	// clock driven without a fixed move time requires time on the clock
	// of the side to move
	if sl.TimeControl && sl.MoveTime == 0 {
		if u.myPosition.NextPlayer() == White && sl.WhiteTime == 0 {
			u.complain(out.Sprintf("UCI command go invalid. White to move but time for white is zero! %s", tokens))
			return nil, true
		}
		if u.myPosition.NextPlayer() == Black && sl.BlackTime == 0 {
			u.complain(out.Sprintf("UCI command go invalid. Black to move but time for black is zero! %s", tokens))
			return nil, true
		}
	}
	return sl, false
}

// getUciLog builds the dedicated protocol logger which mirrors the
// whole UCI conversation ("<<" in, ">>" out) to a log file.
func getUciLog() *logging.Logger {
	uciLog := logging.MustGetLogger("UCI ")
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)

	stdoutBackend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	stdoutLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(stdoutBackend, uciFormat))
	stdoutLeveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(stdoutLeveled)

	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")

	logPath, err := util.ResolveFolder(config.Settings.Log.LogPath)
	if err != nil {
		golog.Println("Log folder could not be found:", err)
		return uciLog
	}
	logFilePath := filepath.Join(logPath, exeName+"_uci.log")

	uciLogFile, err := os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("Logfile could not be created:", err)
		return uciLog
	}
	fileBackend := logging.NewLogBackend(uciLogFile, "", golog.Lmsgprefix)
	fileLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(fileBackend, uciFormat))
	fileLeveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(fileLeveled)
	uciLog.Infof("Log %s started at %s:", uciLogFile.Name(), time.Now().String())
	return uciLog
}

// send writes one line to the GUI and mirrors it to the protocol log.
func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
