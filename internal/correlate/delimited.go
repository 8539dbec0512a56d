package correlate

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"srtdiff/internal/textutil"
)

// DetailsMarker separates the distance line from the detail rows.
const DetailsMarker = "#--details--"

// DelimitedWriter renders the reference text report: the distance, then,
// with details enabled, the marker, the header and one line per row.
// Delimiter characters inside fields are removed rather than escaped.
type DelimitedWriter struct {
	w    *bufio.Writer
	opts Options
	err  error
}

// NewDelimitedWriter wraps out. Call End to flush.
func NewDelimitedWriter(out io.Writer, opts Options) *DelimitedWriter {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if len(opts.Columns) == 0 {
		opts.Columns = DefaultColumns
	}
	return &DelimitedWriter{w: bufio.NewWriter(out), opts: opts}
}

func (d *DelimitedWriter) Begin(distance int) error {
	d.line(strconv.Itoa(distance))
	if d.opts.Details {
		d.line(DetailsMarker)
		d.line(strings.Join(d.opts.Columns, d.opts.Delimiter))
	}
	return d.err
}

func (d *DelimitedWriter) WriteRow(row Row) error {
	if !d.opts.Details {
		return d.err
	}
	switch {
	case row.Block != nil:
		for _, l := range BlockLines(row.Block, d.opts.Side2Indent) {
			d.line(l)
		}
	case row.Record != nil:
		d.line(strings.Join(d.fields(row.Record), d.opts.Delimiter))
	}
	return d.err
}

func (d *DelimitedWriter) End() error {
	if d.err != nil {
		return d.err
	}
	return d.w.Flush()
}

// fields lays a record out in column order. Absent sides and the delta of
// unpaired records are empty.
func (d *DelimitedWriter) fields(r *Record) []string {
	out := make([]string, ColumnCount)
	if r.From != nil {
		d.wordFields(out[0:4], r.From)
	}
	out[4] = r.Op.Code()
	if r.To != nil {
		d.wordFields(out[5:9], r.To)
	}
	if r.HasDelta() {
		out[9] = strconv.FormatInt(r.DeltaMs, 10)
	}
	return out
}

func (d *DelimitedWriter) wordFields(dst []string, w *Word) {
	dst[0] = strconv.FormatInt(w.TimestampMs, 10)
	dst[1] = w.Text
	dst[2] = w.Tags[0]
	dst[3] = w.Tags[1]
	textutil.StripDelimiterAll(dst[1:4], d.opts.Delimiter)
}

func (d *DelimitedWriter) line(s string) {
	if d.err != nil {
		return
	}
	if _, err := d.w.WriteString(s); err != nil {
		d.err = err
		return
	}
	d.err = d.w.WriteByte('\n')
}
