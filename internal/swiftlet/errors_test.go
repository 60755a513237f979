package swiftlet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMatchesItsKind(t *testing.T) {
	sentinels := map[ErrorKind]error{
		UnexpectedToken:   ErrUnexpectedToken,
		UnknownOperator:   ErrUnknownOperator,
		UnknownType:       ErrUnknownType,
		MalformedNumber:   ErrMalformedNumber,
		UnterminatedGroup: ErrUnterminatedGroup,
	}

	assert := assert.New(t)
	tok := NewToken(IDENT, "x", 4, 2)
	for kind, sentinel := range sentinels {
		err := NewParseError(kind, tok, "message")
		assert.ErrorIs(err, sentinel)
		assert.ErrorIs(fmt.Errorf("wrapped: %w", err), sentinel)
		assert.Equal(sentinel.Error(), kind.String())
		for other, otherSentinel := range sentinels {
			if other != kind {
				assert.False(errors.Is(err, otherSentinel))
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		err error
		msg string
	}{
		{NewScanError(2, 5, "Unexpected character."), "[line 2:5] Error: Unexpected character."},
		{NewParseError(UnexpectedToken, NewToken(R_PAREN, ")", 1, 3), "Expect expression."),
			"[line 1:3] Error at ')': Expect expression."},
		{NewParseError(UnexpectedToken, tokEOF(7, 1), "Expect expression."),
			"[line 7:1] Error at end: Expect expression."},
		{NewResolveError("f", "Undefined variable 'x'."), "[func f] Error: Undefined variable 'x'."},
		{NewRuntimeError("main", "Division by zero."), "[func main] Runtime error: Division by zero."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.EqualError(tc.err, tc.msg)
	}
}
