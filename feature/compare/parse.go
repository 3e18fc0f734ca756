package compare

import (
	"fmt"

	"rebar-check/feature/schedule"
	"rebar-check/feature/schedule/ifc"
)

// FileReport describes how one file was read.
type FileReport struct {
	// Name is the file or object name, used as the column header.
	Name string `json:"name"`
	// Format is the parser that read the file.
	Format schedule.Format `json:"format"`
	// Marks is the number of distinct marks found.
	Marks int `json:"marks"`

	// Vendor, Elements, Skipped and Conflicts are only set for IFC models.
	Vendor    string         `json:"vendor,omitempty"`
	Elements  int            `json:"elements,omitempty"`
	Skipped   []ifc.Skipped  `json:"skipped,omitempty"`
	Conflicts []ifc.Conflict `json:"conflicts,omitempty"`
}

// parsed is a table with its file report.
type parsed struct {
	table  *schedule.Table
	report FileReport
}

// parseFile dispatches on the file extension.
func parseFile(name string, data []byte, opts ifc.Options) (*parsed, error) {
	format, err := schedule.DetectFormat(name)
	if err != nil {
		return nil, err
	}

	p := &parsed{report: FileReport{Name: name, Format: format}}

	switch format {
	case schedule.FormatCSV:
		p.table, err = schedule.ParseCSV(data, name)
	case schedule.FormatXML:
		p.table, err = schedule.ParseXML(data, name)
	case schedule.FormatIFC:
		var res *ifc.Result
		res, err = ifc.Parse(data, name, opts)
		if err == nil {
			p.table = res.Table
			p.report.Vendor = res.Vendor.String()
			p.report.Elements = res.Elements
			p.report.Skipped = res.Skipped
			p.report.Conflicts = res.Conflicts
		}
	default:
		return nil, fmt.Errorf("%w: %s", schedule.ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, err
	}

	p.report.Marks = p.table.Len()
	return p, nil
}
