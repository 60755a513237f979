package swiftlet

import "testing"

type mockReporter struct {
	errors        []error
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	if _, isRuntimeErr := err.(*RuntimeError); isRuntimeErr {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func tokEOF(line, column int) *Token {
	return NewToken(EOF, "", line, column)
}

// scan tokenizes src and fails the test on any scanning error.
func scan(t *testing.T, src string) []*Token {
	t.Helper()
	report := newMockReporter()
	toks := NewScanner([]rune(src), report).Scan()
	if report.HadError() {
		t.Fatalf("scanning %q: %v", src, report.errors)
	}
	return toks
}

// mainOf wraps body the way the parser wraps a bare top-level expression.
func mainOf(body Node) Node {
	return NewFunctionDef("main", nil, TypeInt, body)
}

func num(v float64) Node {
	return NewNumberLiteral(v)
}
