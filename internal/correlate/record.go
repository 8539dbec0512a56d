package correlate

import (
	"srtdiff/internal/levenshtein"
	"srtdiff/internal/transcript"
)

// ColumnCount is the number of fields in a record row.
const ColumnCount = 10

// DefaultColumns are the header names of the reference report format.
var DefaultColumns = []string{
	"FROM_TS", "FROM_WORD", "FROM_POS", "FROM_ISSTOP",
	"LEV_OP",
	"TO_TS", "TO_WORD", "TO_POS", "TO_ISSTOP",
	"TS_DIFF",
}

// Word is one side's contribution to a Record.
type Word struct {
	Position    int
	TimestampMs int64
	Text        string
	Tags        [2]string
}

// Block announces the segment that the following words belong to.
type Block struct {
	Side    transcript.Side
	Segment *transcript.Segment
}

// Record is the row emitted for one edit. From is nil for inserts and To is
// nil for deletes; DeltaMs is only meaningful when both are present.
type Record struct {
	Op      levenshtein.Op
	From    *Word
	To      *Word
	DeltaMs int64
}

// HasDelta reports whether the record carries a timestamp difference.
func (r *Record) HasDelta() bool {
	return r.From != nil && r.To != nil
}

// Row holds exactly one of Block or Record.
type Row struct {
	Block  *Block
	Record *Record
}
