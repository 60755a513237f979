package swiftlet

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterClassifiesErrors(t *testing.T) {
	testCases := []struct {
		err        error
		line       string
		hadErr     bool
		hadRuntime bool
	}{
		{
			NewScanError(1, 3, "Unexpected character."),
			"[line 1:3] Error: Unexpected character.",
			true, false,
		},
		{
			NewParseError(UnexpectedToken, NewToken(IDENT, "x", 2, 5), "Expect ')' after expression."),
			"[line 2:5] Error at 'x': Expect ')' after expression.",
			true, false,
		},
		{
			NewParseError(UnterminatedGroup, tokEOF(1, 7), "Expect ')' after expression."),
			"[line 1:7] Error at end: Expect ')' after expression.",
			true, false,
		},
		{
			NewResolveError("f", "Undefined variable 'y'."),
			"[func f] Error: Undefined variable 'y'.",
			true, false,
		},
		{
			NewRuntimeError("main", "Division by zero."),
			"[func main] Runtime error: Division by zero.",
			false, true,
		},
		{errors.New("read failed"), "read failed", true, false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		var out strings.Builder
		r := NewSimpleReporter(&out)
		r.Report(tc.err)

		assert.Equal(tc.line+"\n", out.String())
		assert.Equal(tc.hadErr, r.HadError(), tc.line)
		assert.Equal(tc.hadRuntime, r.HadRuntimeError(), tc.line)
	}
}

func TestSimpleReporterKeepsOrder(t *testing.T) {
	assert := assert.New(t)
	parseErr := NewParseError(UnexpectedToken, tokEOF(1, 1), "Expect expression.")
	runtimeErr := NewRuntimeError("main", "Division by zero.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(parseErr)
	r.Report(runtimeErr)

	assert.Equal(parseErr.Error()+"\n"+runtimeErr.Error()+"\n", out.String())
	assert.True(r.HadError())
	assert.True(r.HadRuntimeError())
}

// A REPL resets between lines, an error on one line must not leak into the
// status of the next.
func TestSimpleReporterResetBetweenRuns(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewSimpleReporter(&out)

	r.Report(NewResolveError("main", "Undefined function 'g'."))
	r.Report(NewRuntimeError("main", "Stack overflow."))
	r.Reset()
	assert.False(r.HadError())
	assert.False(r.HadRuntimeError())

	r.Report(NewRuntimeError("main", "Division by zero."))
	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())

	r.Reset()
	r.Report(NewScanError(1, 1, "Unexpected character."))
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())

	// Reset only clears the flags, what was written stays written
	assert.Equal(4, strings.Count(out.String(), "\n"))
}
