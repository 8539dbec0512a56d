package correlate

import (
	"srtdiff/internal/levenshtein"
	"srtdiff/internal/transcript"
)

// TagFormatter renders a word's tag payload as the two tag columns.
type TagFormatter[T any] func(T) [2]string

// Correlator turns edits over word records into rows. It remembers the last
// segment announced on each side, so one Correlator must walk one script.
type Correlator[T any] struct {
	tags TagFormatter[T]
	last [2]*transcript.Segment
}

// New returns a Correlator. A nil formatter leaves the tag columns empty.
func New[T any](tags TagFormatter[T]) *Correlator[T] {
	return &Correlator[T]{tags: tags}
}

// Correlate emits the rows for script in order and stops at the first error
// returned by emit.
func (c *Correlator[T]) Correlate(script []levenshtein.Edit[*transcript.WordRecord[T]], emit func(Row) error) error {
	for _, edit := range script {
		if err := c.Edit(edit, emit); err != nil {
			return err
		}
	}
	return nil
}

// Rows collects the rows for script.
func (c *Correlator[T]) Rows(script []levenshtein.Edit[*transcript.WordRecord[T]]) []Row {
	rows := make([]Row, 0, len(script))
	_ = c.Correlate(script, func(r Row) error {
		rows = append(rows, r)
		return nil
	})
	return rows
}

// Edit emits the rows for a single edit: the side 1 block, the side 2 block,
// then the record. Blocks already announced are skipped.
func (c *Correlator[T]) Edit(edit levenshtein.Edit[*transcript.WordRecord[T]], emit func(Row) error) error {
	rec := &Record{Op: edit.Op}
	if edit.Op.HasFrom() && edit.From != nil {
		if err := c.announce(transcript.Side1, edit.From.Segment, emit); err != nil {
			return err
		}
		rec.From = c.word(edit.From)
	}
	if edit.Op.HasTo() && edit.To != nil {
		if err := c.announce(transcript.Side2, edit.To.Segment, emit); err != nil {
			return err
		}
		rec.To = c.word(edit.To)
	}
	if rec.HasDelta() {
		rec.DeltaMs = rec.From.TimestampMs - rec.To.TimestampMs
		if rec.DeltaMs < 0 {
			rec.DeltaMs = -rec.DeltaMs
		}
	}
	return emit(Row{Record: rec})
}

// announce emits a block for seg unless it is the last one seen on side.
// Words of a discarded segment produce no block.
func (c *Correlator[T]) announce(side transcript.Side, seg *transcript.Segment, emit func(Row) error) error {
	if !seg.Valid() {
		return nil
	}
	slot := 0
	if side == transcript.Side2 {
		slot = 1
	}
	if c.last[slot] == seg {
		return nil
	}
	c.last[slot] = seg
	return emit(Row{Block: &Block{Side: side, Segment: seg}})
}

func (c *Correlator[T]) word(w *transcript.WordRecord[T]) *Word {
	out := &Word{
		Position:    w.Position,
		TimestampMs: w.TimestampMs,
		Text:        w.Text,
	}
	if c.tags != nil {
		out.Tags = c.tags(w.Tags)
	}
	return out
}
