package main

import (
	"fmt"
	"io"

	"github.com/ltungv/swiftlet/internal/swiftlet"
)

// Exit statuses, in the tradition of sysexits.h.
const (
	exitDataErr     = 65
	exitSoftwareErr = 70
)

// session runs source text through the whole pipeline. Function definitions
// are kept between runs.
type session struct {
	out         io.Writer
	errOut      io.Writer
	showTokens  bool
	reporter    swiftlet.Reporter
	interpreter *swiftlet.Interpreter
}

func newSession(out, errOut io.Writer, showTokens bool) *session {
	reporter := swiftlet.NewSimpleReporter(errOut)
	return &session{
		out:         out,
		errOut:      errOut,
		showTokens:  showTokens,
		reporter:    reporter,
		interpreter: swiftlet.NewInterpreter(out, reporter),
	}
}

func (s *session) run(src string) {
	var tokensOut io.Writer
	if s.showTokens {
		tokensOut = s.errOut
	}
	nodes, ok := compile(src, s.reporter, tokensOut)
	if !ok {
		return
	}
	resolver := swiftlet.NewResolver(s.interpreter, s.reporter)
	resolver.Resolve(nodes)
	if s.reporter.HadError() {
		return
	}
	s.interpreter.Interpret(nodes)
}

// status turns the reported diagnostics into an exit status.
func (s *session) status() error {
	if s.reporter.HadError() {
		return &exitError{exitDataErr}
	}
	if s.reporter.HadRuntimeError() {
		return &exitError{exitSoftwareErr}
	}
	return nil
}

// compile scans and parses src, reporting every diagnostic. Tokens are
// written to tokensOut when it is not nil.
func compile(src string, reporter swiftlet.Reporter, tokensOut io.Writer) ([]swiftlet.Node, bool) {
	tokens := swiftlet.NewScanner([]rune(src), reporter).Scan()
	if tokensOut != nil {
		for _, tok := range tokens {
			fmt.Fprintln(tokensOut, tok)
		}
	}
	nodes, err := swiftlet.NewParser(tokens, reporter).Parse()
	if err != nil || reporter.HadError() {
		return nil, false
	}
	return nodes, true
}
