package reconcile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Header returns the export header: mark, one column per table, the attribute
// columns and, when present, the verdict.
func (r *Result) Header() []string {
	header := make([]string, 0, 2+len(r.Columns)+len(r.AttributeColumns))
	header = append(header, KeyColumn)
	header = append(header, r.Columns...)
	header = append(header, r.AttributeColumns...)
	if r.HasVerdict {
		header = append(header, VerdictColumn)
	}
	return header
}

// Record returns row i formatted as export cells. Absent values are empty.
func (r *Result) Record(i int) []string {
	row := r.Rows[i]
	rec := make([]string, 0, 2+len(row.Quantities)+len(r.AttributeColumns))
	rec = append(rec, row.Mark)
	for _, q := range row.Quantities {
		if q == nil {
			rec = append(rec, "")
			continue
		}
		rec = append(rec, strconv.Itoa(*q))
	}
	for _, name := range r.AttributeColumns {
		rec = append(rec, row.Attributes[name])
	}
	if r.HasVerdict {
		rec = append(rec, FormatVerdict(row.Equal))
	}
	return rec
}

// FormatVerdict renders a verdict the way exported files spell it.
func FormatVerdict(equal bool) string {
	if equal {
		return "True"
	}
	return "False"
}

// WriteCSV writes the result as comma separated UTF-8 with a header row.
func WriteCSV(w io.Writer, r *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range r.Rows {
		if err := cw.Write(r.Record(i)); err != nil {
			return fmt.Errorf("failed to write mark %s: %w", r.Rows[i].Mark, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
