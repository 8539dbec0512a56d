package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// Line mnemonics understood by SegmentParser. Anything else is ignored so
// newer producers can add line types without breaking older readers.
const (
	mnemonicIndex = "I"
	mnemonicTimes = "T"
	mnemonicRange = "R"
	mnemonicText  = "S"
	mnemonicWord  = "W"
)

// SegmentParser is the per-side state machine that turns mnemonic lines into
// Segments and WordRecords.
type SegmentParser[T any] struct {
	side       Side
	words      *WordStream[T]
	decode     TagDecoder[T]
	allowEmpty bool

	segments  []*Segment
	current   *segmentBuilder
	discarded int
}

// NewSegmentParser binds a parser to the stream it appends words into. When
// allowEmpty is false a segment needs at least one W line to be valid.
func NewSegmentParser[T any](side Side, words *WordStream[T], decode TagDecoder[T], allowEmpty bool) *SegmentParser[T] {
	if words == nil {
		words = NewWordStream[T]()
	}
	return &SegmentParser[T]{
		side:       side,
		words:      words,
		decode:     decode,
		allowEmpty: allowEmpty,
	}
}

// Parse consumes one line with the routing prefix already removed. A line
// with fewer than two tokens ends the current segment.
func (p *SegmentParser[T]) Parse(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		p.endSegment()
		return nil
	}
	if p.current == nil {
		p.current = newSegmentBuilder()
	}

	switch tokens[0] {
	case mnemonicIndex:
		index, err := strconv.Atoi(tokens[1])
		if err != nil {
			return p.fieldError("index", line, err)
		}
		p.current.setIndex(index)
	case mnemonicTimes:
		if len(tokens) < 4 {
			return p.fieldError("time labels", line, fmt.Errorf("want 3 tokens after T, got %d", len(tokens)-1))
		}
		p.current.setLabels(tokens[1], tokens[3])
	case mnemonicRange:
		if len(tokens) < 4 {
			return p.fieldError("range", line, fmt.Errorf("want 3 tokens after R, got %d", len(tokens)-1))
		}
		var bounds [3]int64
		for i := range bounds {
			v, err := strconv.ParseInt(tokens[i+1], 10, 64)
			if err != nil {
				return p.fieldError("range", line, err)
			}
			bounds[i] = v
		}
		p.current.setRange(bounds[0], bounds[1], bounds[2])
	case mnemonicText:
		p.current.setText(strings.Join(tokens[1:], " "))
	case mnemonicWord:
		if len(tokens) < 3 {
			// a timestamp without a word carries nothing to align
			return nil
		}
		ts, err := strconv.ParseInt(tokens[1], 10, 64)
		if err != nil {
			return p.fieldError("timestamp", line, err)
		}
		var tags T
		if p.decode != nil {
			tags, err = p.decode(tokens[3:])
			if err != nil {
				return p.fieldError("tags", line, err)
			}
		}
		pos := p.words.Append(ts, tokens[2], tags, p.current.seg)
		p.current.addWord(pos)
	}
	return nil
}

// Flush applies the end-of-segment check to whatever has been accumulated.
// Call it once the input is exhausted.
func (p *SegmentParser[T]) Flush() {
	p.endSegment()
}

func (p *SegmentParser[T]) endSegment() {
	if p.current == nil {
		return
	}
	if p.current.isValid(p.allowEmpty) {
		p.segments = append(p.segments, p.current.freeze())
	} else if p.current.set != 0 {
		p.discarded++
	}
	p.current = nil
}

func (p *SegmentParser[T]) fieldError(field, line string, err error) error {
	return &ParseError{
		Side:  p.side,
		Field: field,
		Text:  line,
		Err:   fmt.Errorf("%w: %v", ErrMalformedField, err),
	}
}

// Segments returns the valid segments in input order.
func (p *SegmentParser[T]) Segments() []*Segment {
	out := make([]*Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Discarded counts partial segments dropped by the end-of-segment check.
func (p *SegmentParser[T]) Discarded() int {
	return p.discarded
}

// Words returns the stream the parser appends into.
func (p *SegmentParser[T]) Words() *WordStream[T] {
	return p.words
}
