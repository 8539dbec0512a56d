package correlate

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects a report renderer.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ErrColumnCount is returned when a custom header does not name every field.
var ErrColumnCount = errors.New("column count mismatch")

// ParseFormat accepts a format name in any case.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatCSV, FormatTable, FormatJSON:
		return f, nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want csv, table or json)", value)
	}
}

// Writer renders a report: the distance, then rows, then End.
type Writer interface {
	Begin(distance int) error
	WriteRow(Row) error
	End() error
}

// Options configures every Writer. Fields a renderer has no use for are
// ignored.
type Options struct {
	Delimiter   string
	Columns     []string
	Details     bool
	Side2Indent int
	Colorize    bool
}

// DefaultOptions mirrors the reference report: comma separated, default
// header, details on.
func DefaultOptions() Options {
	return Options{
		Delimiter:   ",",
		Columns:     append([]string(nil), DefaultColumns...),
		Details:     true,
		Side2Indent: 15,
	}
}

// ValidateColumns checks that columns names every record field.
func ValidateColumns(columns []string) error {
	if len(columns) != ColumnCount {
		return fmt.Errorf("%w: expected %d found %d", ErrColumnCount, ColumnCount, len(columns))
	}
	return nil
}

// ParseColumns splits a delimiter separated header and validates it.
func ParseColumns(value, delimiter string) ([]string, error) {
	if delimiter == "" {
		delimiter = ","
	}
	columns := strings.Split(value, delimiter)
	for i := range columns {
		columns[i] = strings.TrimSpace(columns[i])
	}
	if err := ValidateColumns(columns); err != nil {
		return nil, err
	}
	return columns, nil
}

// NewWriter returns the renderer for format.
func NewWriter(format Format, out io.Writer, opts Options) (Writer, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if len(opts.Columns) == 0 {
		opts.Columns = append([]string(nil), DefaultColumns...)
	}
	if err := ValidateColumns(opts.Columns); err != nil {
		return nil, err
	}
	if opts.Side2Indent < 0 {
		opts.Side2Indent = 0
	}
	switch format {
	case FormatCSV, "":
		return NewDelimitedWriter(out, opts), nil
	case FormatTable:
		return NewTableWriter(out, opts), nil
	case FormatJSON:
		return NewJSONWriter(out, opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
