package transcript

// Side selects one of the two transcripts being compared.
type Side int

const (
	Side1 Side = 1
	Side2 Side = 2
)

func (s Side) String() string {
	switch s {
	case Side1:
		return "side1"
	case Side2:
		return "side2"
	default:
		return "side?"
	}
}

// WordRecord is one timestamped word. Records are immutable once appended;
// Segment points at the block that was being accumulated when the word was
// seen and is never owned by the record.
type WordRecord[T any] struct {
	Position    int
	TimestampMs int64
	Text        string
	Tags        T
	Segment     *Segment
}

// WordStream is the append-only word sequence of one side.
type WordStream[T any] struct {
	words []*WordRecord[T]
}

// NewWordStream returns an empty stream.
func NewWordStream[T any]() *WordStream[T] {
	return &WordStream[T]{}
}

// Append stores a new record and returns its 0-based position.
func (s *WordStream[T]) Append(timestampMs int64, text string, tags T, seg *Segment) int {
	pos := len(s.words)
	s.words = append(s.words, &WordRecord[T]{
		Position:    pos,
		TimestampMs: timestampMs,
		Text:        text,
		Tags:        tags,
		Segment:     seg,
	})
	return pos
}

// Len returns the number of records.
func (s *WordStream[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// At returns the record at pos, or nil when pos is out of range.
func (s *WordStream[T]) At(pos int) *WordRecord[T] {
	if s == nil || pos < 0 || pos >= len(s.words) {
		return nil
	}
	return s.words[pos]
}

// Words returns the records in position order. The slice is a copy; the
// records are shared.
func (s *WordStream[T]) Words() []*WordRecord[T] {
	if s == nil {
		return nil
	}
	out := make([]*WordRecord[T], len(s.words))
	copy(out, s.words)
	return out
}

// Texts returns the word texts in position order.
func (s *WordStream[T]) Texts() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.words))
	for i, w := range s.words {
		out[i] = w.Text
	}
	return out
}
