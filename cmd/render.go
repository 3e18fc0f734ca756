package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"rebar-check/core/reconcile"
	"rebar-check/feature/compare"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Output formats of the compare command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

func render(w io.Writer, format string, report *compare.Report, color bool) error {
	switch format {
	case formatTable:
		return renderTable(w, report.Result, color)
	case formatJSON:
		return renderJSON(w, report)
	case formatCSV:
		return reconcile.WriteCSV(w, report.Result)
	default:
		return fmt.Errorf("unknown output format %q (want table, json or csv)", format)
	}
}

// renderTable draws the result; with a verdict, equal rows are green and the
// rest red.
func renderTable(w io.Writer, res *reconcile.Result, color bool) error {
	if len(res.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	// Header
	header := res.Header()
	headerRow := make(table.Row, len(header))
	for i, col := range header {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	// Rows
	for i := range res.Rows {
		rec := res.Record(i)
		row := make(table.Row, len(rec))
		for j, cell := range rec {
			row[j] = cell
		}
		t.AppendRow(row)
	}

	if color && res.HasVerdict {
		equal := reconcile.FormatVerdict(true)
		t.SetRowPainter(table.RowPainter(func(row table.Row) text.Colors {
			if len(row) == 0 {
				return nil
			}
			if row[len(row)-1] == equal {
				return text.Colors{text.FgGreen}
			}
			return text.Colors{text.FgRed}
		}))
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(res.Rows))
	return nil
}

func renderJSON(w io.Writer, report *compare.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
