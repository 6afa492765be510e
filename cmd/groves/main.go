/*
Command groves is an interactive REPL for exercising the engine's sample
front ends from a terminal: enter a line of JSON or lumen source, see the
resulting tree rendered, and see any embedded errors reported.

Grounded on the reference engine's terex/terexlang/trepl REPL: the same
chzyer/readline input loop and pterm-styled welcome/error output, adapted
from an s-expression evaluator to a front-end-selecting tree viewer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/arborly/groves/debug"
	"github.com/arborly/groves/samples/json"
	"github.com/arborly/groves/samples/lumen"
	"github.com/arborly/groves/tree"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

// frontend is anything cmd/groves can drive through a read-eval-print loop.
type frontend func(sourceID, input string) (*tree.Node, []*tree.Node, error)

var frontends = map[string]frontend{
	"json":  json.Parse,
	"lumen": lumen.Parse,
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	lang := flag.String("lang", "lumen", "Front end to drive [json|lumen]")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))

	fe, ok := frontends[*lang]
	if !ok {
		pterm.Error.Println(fmt.Sprintf("unknown front end %q, want one of json, lumen", *lang))
		os.Exit(2)
	}
	pterm.Info.Println("Welcome to the groves shell")
	pterm.Info.Println(fmt.Sprintf("driving front end %q; type :lang json|lumen to switch, <ctrl>D to quit", *lang))

	repl, err := readline.New("groves> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	r := &session{fe: fe, feName: *lang, repl: repl}
	r.loop()
}

// session holds the REPL's mutable state: which front end is active and the
// counter used to tag each entered line with a distinct source id.
type session struct {
	fe     frontend
	feName string
	repl   *readline.Instance
	lineNo int
}

func (s *session) loop() {
	for {
		line, err := s.repl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if s.handleCommand(line) {
			continue
		}
		s.eval(line)
	}
	fmt.Println("Good bye!")
}

// handleCommand recognizes the REPL's small set of ":"-prefixed directives.
// Returns true if line was a command (whether or not it was understood).
func (s *session) handleCommand(line string) bool {
	if !strings.HasPrefix(line, ":") {
		return false
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case ":lang":
		if len(fields) != 2 {
			pterm.Error.Println("usage: :lang json|lumen")
			return true
		}
		fe, ok := frontends[fields[1]]
		if !ok {
			pterm.Error.Println(fmt.Sprintf("unknown front end %q", fields[1]))
			return true
		}
		s.fe, s.feName = fe, fields[1]
		pterm.Info.Println(fmt.Sprintf("now driving front end %q", s.feName))
	case ":trace":
		if len(fields) != 2 {
			pterm.Error.Println("usage: :trace Debug|Info|Error")
			return true
		}
		setTraceLevel(traceLevel(fields[1]))
		pterm.Info.Println(fmt.Sprintf("trace level set to %s", fields[1]))
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %q", fields[0]))
	}
	return true
}

func (s *session) eval(line string) {
	s.lineNo++
	sourceID := fmt.Sprintf("%s:%d", s.feName, s.lineNo)
	root, errs, err := s.fe(sourceID, line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if len(errs) > 0 {
		for _, l := range debug.FormatErrors(errs) {
			pterm.Error.Println(l)
		}
		return
	}
	debug.Render(root)
}

// We use pterm for moderately fancy output, matching the reference engine's
// REPL styling.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setTraceLevel applies level to the json, lumen and debug tracers.
func setTraceLevel(level tracing.TraceLevel) {
	tracing.Select("groves.samples.json").SetTraceLevel(level)
	tracing.Select("groves.samples.lumen").SetTraceLevel(level)
	tracing.Select("groves.debug").SetTraceLevel(level)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
