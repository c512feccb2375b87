package mib

import (
	"errors"
	"testing"

	"github.com/devg1120/mib-parser/internal/testutil"
)

func TestPosition(t *testing.T) {
	text := "abc\ndef\nghi"

	line, column := Position(text, 0)
	testutil.Equal(t, 1, line, "line")
	testutil.Equal(t, 1, column, "column")

	line, column = Position(text, 2)
	testutil.Equal(t, 1, line, "line")
	testutil.Equal(t, 3, column, "column")

	line, column = Position(text, 4)
	testutil.Equal(t, 2, line, "line")
	testutil.Equal(t, 1, column, "column")

	line, column = Position(text, 10)
	testutil.Equal(t, 3, line, "line")
	testutil.Equal(t, 3, column, "column")
}

func TestPositionClampsPastEnd(t *testing.T) {
	line, column := Position("ab", 99)
	testutil.Equal(t, 1, line, "line")
	testutil.Equal(t, 3, column, "column")
}

func TestParseErrorSyntaxMessage(t *testing.T) {
	err := &ParseError{
		Line: 3, Column: 7,
		Expected: []string{"'BEGIN'", "identifier"},
		Found:    `"START"`,
	}
	testutil.True(t, err.IsSyntaxError(), "syntax error")
	testutil.Equal(t,
		`3:7: syntax error: expected 'BEGIN' or identifier, found "START"`,
		err.Error(), "message")
}

func TestParseErrorDecodeMessage(t *testing.T) {
	cause := errors.New("value out of range")
	err := &ParseError{Line: 1, Column: 5, Err: cause}
	testutil.False(t, err.IsSyntaxError(), "decode error")
	testutil.True(t, errors.Is(err, cause), "unwrap")
	testutil.Contains(t, err.Error(), "invalid literal", "message")
}
