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

// Package testsuite runs EPD (Extended Position Description) test files
// against the engine: each line holds a position plus an expected
// outcome - a best move ("bm"), a move to avoid ("am") or a direct mate
// in N ("dm"). The suite searches every position under a common time or
// depth budget and reports how many expectations were met.
// https://www.chessprogramming.org/Extended_Position_Description
package testsuite

import (
	"bufio"
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
	"github.com/ponderforge/ponderforge/internal/util"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// testType enumerates the EPD opcodes this suite implements.
type testType uint8

// Implemented test types.
const (
	None testType = iota
	DM            // direct mate in N moves
	BM            // best move
	AM            // avoid move
)

// resultType is the outcome of one executed test.
type resultType uint8

// Possible outcomes of one executed test.
const (
	NotTested resultType = iota
	Skipped
	Failed
	Success
)

// SuiteResult sums up the outcomes of one RunTests pass, plus the
// total nodes and search time spent, for the feature test report.
type SuiteResult struct {
	Counter          int
	SuccessCounter   int
	FailedCounter    int
	SkippedCounter   int
	NotTestedCounter int
	Nodes            uint64
	Time             time.Duration
}

// Test is one parsed EPD line plus the result of running it.
type Test struct {
	id          string
	fen         string
	tType       testType
	targetMoves moveslice.MoveSlice
	mateDepth   int
	actual      Move
	value       Value
	rType       resultType
	line        string
	nps         uint64
}

// TestSuite holds the parsed tests of one EPD file and the budget to
// run each of them with.
type TestSuite struct {
	Tests      []*Test
	Time       time.Duration
	Depth      int
	FilePath   string
	LastResult *SuiteResult
}

// NewTestSuite parses the given EPD file into a TestSuite ready for
// RunTests. Lines which do not contain a usable EPD are skipped with a
// log message.
func NewTestSuite(filePath string, searchTime time.Duration, depth int) (*TestSuite, error) {
	out.Println("Preparing Test Suite", filePath)

	if log == nil {
		log = myLogging.GetLog()
	}

	// reduce logging noise and keep the book out of the measurement
	config.LogLevel = 2
	config.SearchLogLevel = 2
	config.Settings.Search.UseBook = false

	lines, err := getTestLines(filePath)
	if err != nil {
		return nil, err
	}

	ts := &TestSuite{
		Tests:    make([]*Test, 0, len(*lines)),
		Time:     searchTime,
		Depth:    depth,
		FilePath: filePath,
	}
	for _, line := range *lines {
		if test := getTest(line); test != nil {
			ts.Tests = append(ts.Tests, test)
		}
	}
	return ts, nil
}

// RunTests searches every test position and prints a result table plus
// a summary. The sums are kept in LastResult.
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		out.Printf("No tests to run\n")
		return
	}

	startTime := time.Now()

	s := search.NewSearch()
	sl := search.NewSearchLimits()
	sl.MoveTime = ts.Time
	sl.Depth = ts.Depth
	if sl.MoveTime > 0 {
		sl.TimeControl = true
	}

	out.Printf("Running Test Suite\n")
	out.Printf("==================================================================\n")
	out.Printf("EPD File:    %s\n", ts.FilePath)
	out.Printf("SearchTime:  %d ms\n", ts.Time.Milliseconds())
	out.Printf("MaxDepth:    %d\n", ts.Depth)
	out.Printf("Date:        %s\n", time.Now().Local())
	out.Printf("No of tests: %d\n", len(ts.Tests))
	out.Println()

	var totalNodes uint64
	var totalSearchTime time.Duration
	for i, t := range ts.Tests {
		out.Printf("Test %d of %d\nTest: %s -- Target Result %s\n",
			i+1, len(ts.Tests), t.line, t.targetMoves.StringUci())
		testStart := time.Now()
		ts.runSingleTest(s, sl, t)
		t.nps = util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime)
		totalNodes += s.NodesVisited()
		totalSearchTime += s.LastSearchResult().SearchTime
		out.Printf("Test finished in %d ms with result %s (%s) - nps: %d\n\n",
			time.Since(testStart).Milliseconds(), t.rType.String(), t.actual.StringUci(), t.nps)
	}

	ts.LastResult = ts.tally()
	ts.LastResult.Nodes = totalNodes
	ts.LastResult.Time = totalSearchTime
	ts.printReport(time.Since(startTime))
}

// tally counts the outcomes of all tests.
func (ts *TestSuite) tally() *SuiteResult {
	tr := &SuiteResult{}
	for _, t := range ts.Tests {
		tr.Counter++
		switch t.rType {
		case NotTested:
			tr.NotTestedCounter++
		case Skipped:
			tr.SkippedCounter++
		case Failed:
			tr.FailedCounter++
		case Success:
			tr.SuccessCounter++
		}
	}
	return tr
}

// printReport prints the per-test table and the summary.
func (ts *TestSuite) printReport(elapsed time.Duration) {
	tr := ts.LastResult
	sep := strings.Repeat("=", 132)

	out.Printf("Results for Test Suite %s\n", ts.FilePath)
	out.Printf("%s\n", sep)
	out.Printf(" %-4s | %-10s | %-8s | %-8s | %-15s | %s | %s\n",
		" Nr.", "Result", "Move", "Value", "Expected Result", "Fen", "Id")
	out.Printf("%s\n", sep)
	for i, t := range ts.Tests {
		expected := t.tType.String() + " " + t.targetMoves.StringUci()
		if t.tType == DM {
			expected = out.Sprintf("dm %d", t.mateDepth)
		}
		out.Printf(" %-4d | %-10s | %-8s | %-8s | %-15s | %s | %s\n",
			i+1, t.rType.String(), t.actual.StringUci(), t.value.String(), expected, t.fen, t.id)
	}
	out.Printf("%s\n", sep)
	out.Printf("Summary:\n")
	out.Printf("EPD File:   %s\n", ts.FilePath)
	out.Printf("SearchTime: %d ms\n", ts.Time.Milliseconds())
	out.Printf("MaxDepth:   %d\n", ts.Depth)
	out.Printf("Date:       %s\n", time.Now().Local())
	out.Printf("Successful: %-3d (%d %%)\n", tr.SuccessCounter, 100*tr.SuccessCounter/tr.Counter)
	out.Printf("Failed:     %-3d (%d %%)\n", tr.FailedCounter, 100*tr.FailedCounter/tr.Counter)
	out.Printf("Skipped:    %-3d (%d %%)\n", tr.SkippedCounter, 100*tr.SkippedCounter/tr.Counter)
	out.Printf("Not tested: %-3d (%d %%)\n", tr.NotTestedCounter, 100*tr.NotTestedCounter/tr.Counter)
	out.Printf("Test time: %s\n", elapsed)
	out.Printf("Configuration: %s\n", config.Settings.String())
}

// runSingleTest searches the test position and judges the result
// against the test's expectation.
func (ts *TestSuite) runSingleTest(s *search.Search, sl *search.Limits, t *Test) {
	s.NewGame()
	sl.Mate = 0
	p, err := position.NewPositionFen(t.fen)
	if err != nil {
		t.rType = Skipped
		return
	}
	if t.tType == DM {
		sl.Mate = t.mateDepth
	}

	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()

	result := s.LastSearchResult()
	t.actual = result.BestMove
	t.value = result.BestValue

	passed := false
	switch t.tType {
	case DM:
		// the mate must be found with exactly the expected distance
		passed = movesToMate(result.BestValue) == t.mateDepth
	case BM:
		passed = containsMove(t.targetMoves, result.BestMove)
	case AM:
		passed = !containsMove(t.targetMoves, result.BestMove)
	default:
		log.Warningf("Unknown Test type: %d", t.tType)
		t.rType = Skipped
		return
	}

	if passed {
		log.Infof("TestSet: id = '%s' SUCCESS", t.id)
		t.rType = Success
	} else {
		log.Infof("TestSet: id = '%s' FAILED", t.id)
		t.rType = Failed
	}
}

// containsMove reports whether the move list holds the given move.
func containsMove(ml moveslice.MoveSlice, m Move) bool {
	for _, candidate := range ml {
		if candidate == m {
			return true
		}
	}
	return false
}

// movesToMate converts a positive mate value into the number of moves
// to mate, 0 for any non-mate value.
func movesToMate(v Value) int {
	if v <= ValueCheckMateThreshold {
		return 0
	}
	plies := int(ValueCheckMate - v)
	return (plies + 1) / 2
}

var leadingComments = regexp.MustCompile(`^\s*#.*$`)
var trailingComments = regexp.MustCompile(`^(.*)#([^;]*)$`)
var epdRegex = regexp.MustCompile(`^\s*(.*?) (bm|dm|am) (.*?);(.* id "(.*?)";)?.*$`)

// getTest parses one EPD line into a Test; nil when the line holds no
// usable EPD (bad fen, unknown opcode or no valid target move).
func getTest(line string) *Test {
	line = strings.TrimSpace(line)
	line = leadingComments.ReplaceAllString(line, "")
	line = trailingComments.ReplaceAllString(line, "")
	if len(line) == 0 {
		return nil
	}

	if !epdRegex.MatchString(line) {
		log.Warningf("No EPD found in %s", line)
		return nil
	}
	parts := epdRegex.FindStringSubmatch(line)

	// the fen part must describe a valid position
	p, err := position.NewPositionFen(parts[1])
	if err != nil {
		log.Warningf("fen part of EPD is invalid. %s", parts[1])
		return nil
	}

	var ttype testType
	switch parts[2] {
	case "dm":
		ttype = DM
	case "bm":
		ttype = BM
	case "am":
		ttype = AM
	default:
		log.Warningf("Opcode from EPD is invalid or not implemented %s", parts[2])
		return nil
	}

	// resolve the expected result: target moves for bm/am (validated as
	// legal SAN on the position), the mate distance for dm
	resultMoves := moveslice.NewMoveSlice(4)
	dmDepth := 0
	switch ttype {
	case BM, AM:
		mg := movegen.NewMoveGenerator()
		for _, r := range strings.Split(parts[3], " ") {
			r = strings.TrimSpace(strings.Trim(r, "!?"))
			if m := mg.GetMoveFromSan(p, r); m != MoveNone {
				resultMoves.PushBack(m)
			}
		}
		if resultMoves.Len() == 0 {
			log.Warningf("Result moves from EPD is/are invalid on this position %s", parts[3])
			return nil
		}
	case DM:
		dmDepth, err = strconv.Atoi(parts[3])
		if err != nil {
			log.Warningf("Direct mate depth from EPD is invalid %s", parts[3])
			return nil
		}
	}

	return &Test{
		id:          parts[5],
		fen:         parts[1],
		tType:       ttype,
		targetMoves: *resultMoves,
		mateDepth:   dmDepth,
		line:        line,
	}
}

// getTestLines resolves the file path and reads all lines of the file.
func getTestLines(filePath string) (*[]string, error) {
	if !filepath.IsAbs(filePath) {
		wd, _ := os.Getwd()
		filePath = filepath.Join(wd, filePath)
	}
	filePath = filepath.Clean(filePath)

	if _, err := os.Stat(filePath); err != nil {
		log.Errorf("File \"%s\" does not exist\n", filePath)
		return nil, err
	}

	log.Infof("Reading test suite tests from file: %s\n", filePath)
	startReading := time.Now()
	lines, err := readFile(filePath)
	if err != nil {
		return nil, err
	}
	log.Infof("Finished reading %d lines from file in: %d ms\n",
		len(*lines), time.Since(startReading).Milliseconds())
	return lines, nil
}

// readFile reads the complete file into a slice of lines.
func readFile(filePath string) (*[]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		log.Errorf("File \"%s\" could not be read; %s\n", filePath, err)
		return nil, err
	}
	defer func() {
		if err = f.Close(); err != nil {
			log.Errorf("File \"%s\" could not be closed: %s\n", filePath, err)
		}
	}()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		log.Errorf("Error while reading file \"%s\": %s\n", filePath, err)
		return nil, err
	}
	return &lines, nil
}

func (rt *resultType) String() string {
	switch *rt {
	case NotTested:
		return "Not tested"
	case Skipped:
		return "Skipped"
	case Failed:
		return "Failed"
	case Success:
		return "Success"
	default:
		return "N/A"
	}
}

func (tt *testType) String() string {
	switch *tt {
	case BM:
		return "bm"
	case AM:
		return "am"
	case DM:
		return "dm"
	default:
		return "N/A"
	}
}
