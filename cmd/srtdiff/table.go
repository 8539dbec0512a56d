package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// tableColumn names a column and how its cells are aligned.
type tableColumn struct {
	header string
	align  columnAlignment
}

// renderTable draws rows under columns in the rounded style. Short rows are
// padded with empty cells and an empty footer is omitted.
func renderTable(title string, columns []tableColumn, rows [][]string, footer []string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if title != "" {
		tw.SetTitle("%s", title)
	}

	tw.AppendHeader(padRow(columnHeaders(columns), len(columns)))
	for _, row := range rows {
		tw.AppendRow(padRow(row, len(columns)))
	}
	if len(footer) > 0 {
		tw.AppendFooter(padRow(footer, len(columns)))
	}

	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, col := range columns {
		align := text.AlignLeft
		if col.align == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			AlignFooter: align,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func columnHeaders(columns []tableColumn) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = col.header
	}
	return out
}

func padRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
