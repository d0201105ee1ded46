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

package uci

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	. "github.com/ponderforge/ponderforge/internal/config"
)

// The UCI option system: every option is a tagged variant (check, spin,
// button, ...) carrying its current value as a string plus an apply
// callback executed on "setoption". Most options simply toggle a bool
// in the global configuration, so these are built by a small closure
// factory instead of one handler function each.

// optionKind tags the UCI option variants.
type optionKind int

const (
	checkOption  optionKind = iota // boolean
	spinOption                     // integer with min/max
	comboOption                    // one of a fixed set
	buttonOption                   // action without a value
	stringOption                   // free text
)

// option is one UCI option: its identity for the protocol, the values
// to announce, and the callback run when the GUI sets it.
type option struct {
	name     string
	kind     optionKind
	def      string
	min, max string
	vars     string
	value    string
	apply    func(u *UciHandler, value string)
}

// set stores the new value and runs the option's callback.
func (o *option) set(u *UciHandler, value string) {
	o.value = value
	if o.apply != nil {
		o.apply(u, value)
	}
}

// uciDeclaration renders the option announcement for the "uci" reply.
func (o *option) uciDeclaration() string {
	var sb strings.Builder
	sb.WriteString("option name ")
	sb.WriteString(o.name)
	sb.WriteString(" type ")
	switch o.kind {
	case checkOption:
		sb.WriteString("check default ")
		sb.WriteString(o.def)
	case spinOption:
		sb.WriteString("spin default ")
		sb.WriteString(o.def)
		sb.WriteString(" min ")
		sb.WriteString(o.min)
		sb.WriteString(" max ")
		sb.WriteString(o.max)
	case comboOption:
		sb.WriteString("combo default ")
		sb.WriteString(o.def)
		sb.WriteString(" var ")
		sb.WriteString(o.vars)
	case buttonOption:
		sb.WriteString("button")
	case stringOption:
		sb.WriteString("string default ")
		sb.WriteString(o.def)
	}
	return sb.String()
}

// uciOptions lists all options in announcement order; optionIndex is
// the lookup by name for "setoption".
var (
	uciOptions  []*option
	optionIndex map[string]*option
)

// boolSetting builds a check option which writes into the given
// configuration flag.
func boolSetting(name string, target *bool) *option {
	return &option{
		name:  name,
		kind:  checkOption,
		def:   strconv.FormatBool(*target),
		value: strconv.FormatBool(*target),
		apply: func(u *UciHandler, value string) {
			v, err := strconv.ParseBool(value)
			if err != nil {
				log.Warningf("Option %s: invalid value '%s'", name, value)
				return
			}
			*target = v
			log.Debugf("Set %s to %v", name, v)
		},
	}
}

// action builds a button option running the given function.
func action(name string, f func(u *UciHandler)) *option {
	return &option{
		name: name,
		kind: buttonOption,
		apply: func(u *UciHandler, value string) {
			f(u)
		},
	}
}

func init() {
	uciOptions = []*option{
		action("Print Config", printConfig),
		action("Clear Hash", func(u *UciHandler) { u.mySearch.ClearHash() }),
		boolSetting("Use_Hash", &Settings.Search.UseTT),
		{
			name:  "Hash",
			kind:  spinOption,
			def:   strconv.Itoa(Settings.Search.TTSize),
			value: strconv.Itoa(Settings.Search.TTSize),
			min:   "0",
			max:   "65000",
			apply: func(u *UciHandler, value string) {
				v, err := strconv.Atoi(value)
				if err != nil || v < 0 {
					log.Warningf("Option Hash: invalid size '%s'", value)
					return
				}
				Settings.Search.TTSize = v
				u.mySearch.ResizeCache()
			},
		},
		boolSetting("Use_Book", &Settings.Search.UseBook),
		boolSetting("Ponder", &Settings.Search.UsePonder),

		boolSetting("Quiescence", &Settings.Search.UseQuiescence),
		boolSetting("Use_QHash", &Settings.Search.UseQSTT),
		boolSetting("Use_SEE", &Settings.Search.UseSEE),

		boolSetting("Use_IID", &Settings.Search.UseIID),
		boolSetting("Use_PVS", &Settings.Search.UsePVS),
		boolSetting("Use_Killer", &Settings.Search.UseKiller),
		boolSetting("Use_HistCount", &Settings.Search.UseHistoryCounter),
		boolSetting("Use_CounterMove", &Settings.Search.UseCounterMoves),

		boolSetting("Use_Mdp", &Settings.Search.UseMDP),
		boolSetting("Use_Rfp", &Settings.Search.UseRFP),
		boolSetting("Use_Razoring", &Settings.Search.UseRazoring),
		boolSetting("Use_NullMove", &Settings.Search.UseNullMove),
		boolSetting("Use_Fp", &Settings.Search.UseFP),
		boolSetting("Use_Qfp", &Settings.Search.UseQFP),
		boolSetting("Use_Lmr", &Settings.Search.UseLmr),
		boolSetting("Use_Lmp", &Settings.Search.UseLmp),

		boolSetting("Use_Ext", &Settings.Search.UseExt),
		boolSetting("Use_ExtAddDepth", &Settings.Search.UseExtAddDepth),
		boolSetting("Use_CheckExt", &Settings.Search.UseCheckExt),
		boolSetting("Use_ThreatExt", &Settings.Search.UseThreatExt),

		boolSetting("Eval_Lazy", &Settings.Eval.UseLazyEval),
		boolSetting("Eval_Mobility", &Settings.Eval.UseMobility),
		boolSetting("Eval_AdvPiece", &Settings.Eval.UseAdvancedPieceEval),
	}

	optionIndex = make(map[string]*option, len(uciOptions))
	for _, o := range uciOptions {
		optionIndex[o.name] = o
	}
}

// printConfig dumps the current configuration values as info strings.
func printConfig(u *UciHandler) {
	for _, section := range []struct {
		title string
		value reflect.Value
	}{
		{"Search Config:", reflect.ValueOf(&Settings.Search).Elem()},
		{"Evaluation Config:", reflect.ValueOf(&Settings.Eval).Elem()},
	} {
		u.SendInfoString(section.title)
		t := section.value.Type()
		for i := 0; i < section.value.NumField(); i++ {
			f := section.value.Field(i)
			u.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	log.Debug(Settings.String())
}
