package levenshtein

import "fmt"

// Op is a single-byte edit operation code. The byte values are the ones
// written in reports.
type Op byte

const (
	OpNone       Op = '-'
	OpMatch      Op = '='
	OpSubstitute Op = 'R'
	OpDelete     Op = 'D'
	OpInsert     Op = 'I'
)

// Code returns the one-character report code.
func (o Op) Code() string {
	return string(rune(o))
}

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpMatch:
		return "match"
	case OpSubstitute:
		return "substitute"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return fmt.Sprintf("op(%d)", byte(o))
	}
}

// HasFrom reports whether the operation consumes an item from the source.
func (o Op) HasFrom() bool {
	return o == OpMatch || o == OpSubstitute || o == OpDelete
}

// HasTo reports whether the operation consumes an item from the target.
func (o Op) HasTo() bool {
	return o == OpMatch || o == OpSubstitute || o == OpInsert
}

// Edit is one step of an edit script. FromIndex and ToIndex are -1 when the
// operation does not reference that side, in which case From or To holds the
// zero value.
type Edit[T any] struct {
	Op        Op
	From      T
	To        T
	FromIndex int
	ToIndex   int
}

// Counts tallies the operations of a script.
type Counts struct {
	Match      int
	Substitute int
	Delete     int
	Insert     int
}

// Cost is the number of non-match operations, which equals the distance of
// the script it was counted from.
func (c Counts) Cost() int {
	return c.Substitute + c.Delete + c.Insert
}

// Count tallies script.
func Count[T any](script []Edit[T]) Counts {
	var c Counts
	for _, e := range script {
		switch e.Op {
		case OpMatch:
			c.Match++
		case OpSubstitute:
			c.Substitute++
		case OpDelete:
			c.Delete++
		case OpInsert:
			c.Insert++
		}
	}
	return c
}

// Sources returns the source items referenced by script in order. For a
// script produced by an Engine this reproduces the engine's source sequence.
func Sources[T any](script []Edit[T]) []T {
	out := make([]T, 0, len(script))
	for _, e := range script {
		if e.Op.HasFrom() {
			out = append(out, e.From)
		}
	}
	return out
}

// Targets returns the target items referenced by script in order.
func Targets[T any](script []Edit[T]) []T {
	out := make([]T, 0, len(script))
	for _, e := range script {
		if e.Op.HasTo() {
			out = append(out, e.To)
		}
	}
	return out
}
