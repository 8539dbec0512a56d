package transcript

// Segment is a subtitle cue together with the inclusive range of word
// positions it contributed to its side's stream. FirstWord and LastWord are
// -1 when the segment contributed no words.
type Segment struct {
	Index      int
	BeginLabel string
	EndLabel   string
	BeginMs    int64
	EndMs      int64
	DurationMs int64
	Text       string
	FirstWord  int
	LastWord   int

	valid bool
}

// Valid reports whether the segment passed the end-of-segment check and was
// appended to its side's segment list. Words can still reference a discarded
// (invalid) segment because words are never retracted.
func (s *Segment) Valid() bool {
	return s != nil && s.valid
}

// HasWords reports whether any word was attributed to the segment.
func (s *Segment) HasWords() bool {
	return s != nil && s.FirstWord >= 0
}

// WordCount returns the number of positions in the segment's range.
func (s *Segment) WordCount() int {
	if !s.HasWords() {
		return 0
	}
	return s.LastWord - s.FirstWord + 1
}

type fieldSet uint8

const (
	fieldIndex fieldSet = 1 << iota
	fieldLabels
	fieldRange
	fieldText
	fieldWords
)

const requiredFields = fieldIndex | fieldLabels | fieldRange | fieldText

// segmentBuilder accumulates fields for the segment currently being parsed.
type segmentBuilder struct {
	seg *Segment
	set fieldSet
}

func newSegmentBuilder() *segmentBuilder {
	return &segmentBuilder{seg: &Segment{FirstWord: -1, LastWord: -1}}
}

func (b *segmentBuilder) setIndex(index int) {
	b.seg.Index = index
	b.set |= fieldIndex
}

func (b *segmentBuilder) setLabels(begin, end string) {
	b.seg.BeginLabel = begin
	b.seg.EndLabel = end
	b.set |= fieldLabels
}

func (b *segmentBuilder) setRange(beginMs, endMs, durationMs int64) {
	b.seg.BeginMs = beginMs
	b.seg.EndMs = endMs
	b.seg.DurationMs = durationMs
	b.set |= fieldRange
}

func (b *segmentBuilder) setText(text string) {
	b.seg.Text = text
	b.set |= fieldText
}

func (b *segmentBuilder) addWord(pos int) {
	if b.set&fieldWords == 0 {
		b.seg.FirstWord = pos
		b.set |= fieldWords
	}
	b.seg.LastWord = pos
}

func (b *segmentBuilder) isValid(allowEmpty bool) bool {
	required := requiredFields
	if !allowEmpty {
		required |= fieldWords
	}
	return b.set&required == required
}

// freeze marks the segment valid and hands it over; the builder must not be
// used afterwards.
func (b *segmentBuilder) freeze() *Segment {
	seg := b.seg
	seg.valid = true
	b.seg = nil
	return seg
}
