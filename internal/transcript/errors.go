package transcript

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedField marks a numeric or structural field that could not be
// decoded.
var ErrMalformedField = errors.New("malformed field")

// ErrUnroutableLine is reported under strict routing for lines that carry
// neither side prefix.
var ErrUnroutableLine = errors.New("unroutable line")

// ParseError identifies the input line that aborted a parse.
type ParseError struct {
	Line  int
	Side  Side
	Field string
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse")
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Side != 0 {
		fmt.Fprintf(&b, " %s", e.Side)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " %s", e.Field)
	}
	fmt.Fprintf(&b, ": %v (%q)", e.Err, e.Text)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConsistencyError reports a frozen segment whose word range does not fit the
// owning stream. It always indicates a parser defect.
type ConsistencyError struct {
	Side      Side
	Segment   int
	First     int
	Last      int
	StreamLen int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s segment %d: word range [%d, %d] outside stream of %d words",
		e.Side, e.Segment, e.First, e.Last, e.StreamLen)
}
