package correlate

import (
	"encoding/json"
	"io"
)

type jsonWord struct {
	Position    int    `json:"position"`
	TimestampMs int64  `json:"ts_ms"`
	Text        string `json:"word"`
	POS         string `json:"pos,omitempty"`
	IsStop      string `json:"is_stop,omitempty"`
}

type jsonSegment struct {
	Index      int    `json:"index"`
	BeginLabel string `json:"begin"`
	EndLabel   string `json:"end"`
	BeginMs    int64  `json:"begin_ms"`
	EndMs      int64  `json:"end_ms"`
	DurationMs int64  `json:"duration_ms"`
	Text       string `json:"text"`
	FirstWord  int    `json:"first_word"`
	LastWord   int    `json:"last_word"`
}

type jsonRow struct {
	Kind     string       `json:"kind"`
	Distance *int         `json:"distance,omitempty"`
	Side     string       `json:"side,omitempty"`
	Segment  *jsonSegment `json:"segment,omitempty"`
	Op       string       `json:"op,omitempty"`
	From     *jsonWord    `json:"from,omitempty"`
	To       *jsonWord    `json:"to,omitempty"`
	DeltaMs  *int64       `json:"ts_diff_ms,omitempty"`
}

// JSONWriter emits one JSON object per line: a distance object first, then
// segment and edit objects when details are enabled.
type JSONWriter struct {
	enc  *json.Encoder
	opts Options
}

// NewJSONWriter writes to out.
func NewJSONWriter(out io.Writer, opts Options) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(out), opts: opts}
}

func (j *JSONWriter) Begin(distance int) error {
	return j.enc.Encode(jsonRow{Kind: "distance", Distance: &distance})
}

func (j *JSONWriter) WriteRow(row Row) error {
	if !j.opts.Details {
		return nil
	}
	switch {
	case row.Block != nil:
		seg := row.Block.Segment
		return j.enc.Encode(jsonRow{
			Kind: "segment",
			Side: row.Block.Side.String(),
			Segment: &jsonSegment{
				Index:      seg.Index,
				BeginLabel: seg.BeginLabel,
				EndLabel:   seg.EndLabel,
				BeginMs:    seg.BeginMs,
				EndMs:      seg.EndMs,
				DurationMs: seg.DurationMs,
				Text:       seg.Text,
				FirstWord:  seg.FirstWord,
				LastWord:   seg.LastWord,
			},
		})
	case row.Record != nil:
		r := row.Record
		out := jsonRow{
			Kind: "edit",
			Op:   r.Op.Code(),
			From: toJSONWord(r.From),
			To:   toJSONWord(r.To),
		}
		if r.HasDelta() {
			delta := r.DeltaMs
			out.DeltaMs = &delta
		}
		return j.enc.Encode(out)
	}
	return nil
}

func (j *JSONWriter) End() error { return nil }

func toJSONWord(w *Word) *jsonWord {
	if w == nil {
		return nil
	}
	return &jsonWord{
		Position:    w.Position,
		TimestampMs: w.TimestampMs,
		Text:        w.Text,
		POS:         w.Tags[0],
		IsStop:      w.Tags[1],
	}
}
