package transcript

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"srtdiff/internal/logging"
)

const (
	// DefaultSide1Prefix marks lines that belong to the first transcript.
	DefaultSide1Prefix = "> "
	// DefaultSide2Prefix marks second-transcript lines. Under permissive
	// routing it is stripped when present but not required.
	DefaultSide2Prefix = "< "

	maxLineBytes = 1 << 20
)

// ErrReaderClosed is returned when lines are fed after Close.
var ErrReaderClosed = errors.New("reader closed")

// Options controls line routing and segment validity.
type Options struct {
	Side1Prefix        string
	Side2Prefix        string
	StrictRouting      bool
	AllowEmptySegments bool
	Logger             *slog.Logger
}

// DefaultOptions returns the reference routing: "> " lines are side 1 and
// everything else is side 2.
func DefaultOptions() Options {
	return Options{
		Side1Prefix: DefaultSide1Prefix,
		Side2Prefix: DefaultSide2Prefix,
	}
}

// Dataset is one side's parse result.
type Dataset[T any] struct {
	Side      Side
	Words     *WordStream[T]
	Segments  []*Segment
	Discarded int
}

// Verify checks that every segment's word range lies inside the stream and
// that the words in that range point back at the segment.
func (d Dataset[T]) Verify() error {
	n := d.Words.Len()
	for _, seg := range d.Segments {
		if !seg.HasWords() {
			continue
		}
		if seg.FirstWord >= n || seg.LastWord >= n || seg.LastWord < seg.FirstWord {
			return &ConsistencyError{Side: d.Side, Segment: seg.Index, First: seg.FirstWord, Last: seg.LastWord, StreamLen: n}
		}
		for pos := seg.FirstWord; pos <= seg.LastWord; pos++ {
			if d.Words.At(pos).Segment != seg {
				return &ConsistencyError{Side: d.Side, Segment: seg.Index, First: seg.FirstWord, Last: seg.LastWord, StreamLen: n}
			}
		}
	}
	return nil
}

// DualStreamReader routes lines to two independent SegmentParsers.
type DualStreamReader[T any] struct {
	opts    Options
	parsers [2]*SegmentParser[T]
	logger  *slog.Logger

	line   int
	err    error
	closed bool
}

// NewDualStreamReader creates a reader with empty streams for both sides.
func NewDualStreamReader[T any](opts Options, decode TagDecoder[T]) *DualStreamReader[T] {
	if opts.Side1Prefix == "" {
		opts.Side1Prefix = DefaultSide1Prefix
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &DualStreamReader[T]{
		opts:   opts,
		logger: logger,
	}
	r.parsers[0] = NewSegmentParser(Side1, NewWordStream[T](), decode, opts.AllowEmptySegments)
	r.parsers[1] = NewSegmentParser(Side2, NewWordStream[T](), decode, opts.AllowEmptySegments)
	return r
}

// ParseLine routes and parses one line. After the first error the reader is
// poisoned and keeps returning that error.
func (r *DualStreamReader[T]) ParseLine(line string) error {
	if r.err != nil {
		return r.err
	}
	if r.closed {
		return ErrReaderClosed
	}
	r.line++
	line = strings.TrimRight(line, "\r\n")

	// A blank line belongs to neither side and ends whichever segment is open.
	if strings.TrimSpace(line) == "" {
		r.logger.Debug("blank line ends open segments", logging.Int("line", r.line))
		for _, p := range r.parsers {
			p.endSegment()
		}
		return nil
	}

	side, body, err := r.route(line)
	if err != nil {
		return r.fail(err)
	}
	if r.logger.Enabled(context.Background(), slog.LevelDebug) {
		r.logger.Debug("parsing line",
			logging.Int("line", r.line),
			logging.String("side", side.String()),
			logging.String("text", line),
		)
	}
	if err := r.parser(side).Parse(body); err != nil {
		return r.fail(err)
	}
	return nil
}

func (r *DualStreamReader[T]) route(line string) (Side, string, error) {
	if strings.HasPrefix(line, r.opts.Side1Prefix) {
		return Side1, line[len(r.opts.Side1Prefix):], nil
	}
	if p := r.opts.Side2Prefix; p != "" && strings.HasPrefix(line, p) {
		return Side2, line[len(p):], nil
	}
	if r.opts.StrictRouting {
		return Side2, "", &ParseError{Text: line, Err: ErrUnroutableLine}
	}
	return Side2, line, nil
}

func (r *DualStreamReader[T]) fail(err error) error {
	var perr *ParseError
	if errors.As(err, &perr) && perr.Line == 0 {
		perr.Line = r.line
	}
	r.err = err
	return err
}

// Close flushes the trailing segment of both sides. It is safe to call more
// than once.
func (r *DualStreamReader[T]) Close() error {
	if r.err != nil {
		return r.err
	}
	if r.closed {
		return nil
	}
	for _, p := range r.parsers {
		p.Flush()
	}
	r.closed = true
	return nil
}

// Lines reports how many lines were consumed.
func (r *DualStreamReader[T]) Lines() int {
	return r.line
}

// Dataset returns the parse result for one side.
func (r *DualStreamReader[T]) Dataset(side Side) Dataset[T] {
	p := r.parser(side)
	return Dataset[T]{
		Side:      side,
		Words:     p.Words(),
		Segments:  p.Segments(),
		Discarded: p.Discarded(),
	}
}

// Side1 is shorthand for Dataset(Side1).
func (r *DualStreamReader[T]) Side1() Dataset[T] { return r.Dataset(Side1) }

// Side2 is shorthand for Dataset(Side2).
func (r *DualStreamReader[T]) Side2() Dataset[T] { return r.Dataset(Side2) }

func (r *DualStreamReader[T]) parser(side Side) *SegmentParser[T] {
	if side == Side1 {
		return r.parsers[0]
	}
	return r.parsers[1]
}

// Read consumes in line by line, closes the reader at end of input and
// verifies both datasets. On any error no reader is returned.
func Read[T any](ctx context.Context, in io.Reader, opts Options, decode TagDecoder[T]) (*DualStreamReader[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	r := NewDualStreamReader(opts, decode)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if r.line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := r.ParseLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input after line %d: %w", r.line, err)
	}
	if err := r.Close(); err != nil {
		return nil, err
	}
	for _, side := range []Side{Side1, Side2} {
		if err := r.Dataset(side).Verify(); err != nil {
			return nil, err
		}
	}
	r.logger.Debug("input parsed",
		logging.Int("lines", r.line),
		logging.Int("side1_words", r.parsers[0].Words().Len()),
		logging.Int("side2_words", r.parsers[1].Words().Len()),
		logging.Int("side1_segments", len(r.parsers[0].segments)),
		logging.Int("side2_segments", len(r.parsers[1].segments)),
	)
	return r, nil
}
