package correlate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"srtdiff/internal/levenshtein"
)

// TableWriter renders the report as a rounded go-pretty table. Segment
// blocks become merged rows spanning every column.
type TableWriter struct {
	out      io.Writer
	opts     Options
	tw       table.Writer
	distance int
}

// NewTableWriter buffers rows until End.
func NewTableWriter(out io.Writer, opts Options) *TableWriter {
	if len(opts.Columns) == 0 {
		opts.Columns = DefaultColumns
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(opts.Columns))
	for i, name := range opts.Columns {
		header[i] = name
	}
	tw.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(opts.Columns))
	for i := range opts.Columns {
		align := text.AlignLeft
		switch i {
		case 0, 5, 9:
			align = text.AlignRight
		case 4:
			align = text.AlignCenter
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return &TableWriter{out: out, opts: opts, tw: tw}
}

func (t *TableWriter) Begin(distance int) error {
	t.distance = distance
	return nil
}

func (t *TableWriter) WriteRow(row Row) error {
	if !t.opts.Details {
		return nil
	}
	switch {
	case row.Block != nil:
		summary := blockSummary(row.Block)
		merged := make(table.Row, len(t.opts.Columns))
		for i := range merged {
			merged[i] = summary
		}
		t.tw.AppendSeparator()
		t.tw.AppendRow(merged, table.RowConfig{AutoMerge: true, AutoMergeAlign: text.AlignLeft})
	case row.Record != nil:
		t.tw.AppendRow(t.cells(row.Record))
	}
	return nil
}

func (t *TableWriter) End() error {
	if _, err := fmt.Fprintf(t.out, "Distance: %d\n", t.distance); err != nil {
		return err
	}
	if !t.opts.Details {
		return nil
	}
	_, err := fmt.Fprintln(t.out, t.tw.Render())
	return err
}

func (t *TableWriter) cells(r *Record) table.Row {
	row := make(table.Row, ColumnCount)
	for i := range row {
		row[i] = ""
	}
	if r.From != nil {
		row[0] = strconv.FormatInt(r.From.TimestampMs, 10)
		row[1] = r.From.Text
		row[2] = r.From.Tags[0]
		row[3] = r.From.Tags[1]
	}
	row[4] = t.opCell(r.Op)
	if r.To != nil {
		row[5] = strconv.FormatInt(r.To.TimestampMs, 10)
		row[6] = r.To.Text
		row[7] = r.To.Tags[0]
		row[8] = r.To.Tags[1]
	}
	if r.HasDelta() {
		row[9] = strconv.FormatInt(r.DeltaMs, 10)
	}
	return row
}

func (t *TableWriter) opCell(op levenshtein.Op) string {
	code := op.Code()
	if !t.opts.Colorize {
		return code
	}
	// Colorize is an explicit request, so go-pretty's NO_COLOR check is bypassed.
	if c := opColor(op); c != nil {
		return c.EscapeSeq() + code + text.Reset.EscapeSeq()
	}
	return code
}

func opColor(op levenshtein.Op) text.Colors {
	switch op {
	case levenshtein.OpMatch:
		return text.Colors{text.FgGreen}
	case levenshtein.OpSubstitute:
		return text.Colors{text.FgYellow}
	case levenshtein.OpDelete:
		return text.Colors{text.FgRed}
	case levenshtein.OpInsert:
		return text.Colors{text.FgBlue}
	default:
		return nil
	}
}
