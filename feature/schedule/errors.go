package schedule

import (
	"errors"
	"fmt"
)

// Parser names used in ParseError.
const (
	ParserCSV = "csv"
	ParserXML = "xml"
	ParserIFC = "ifc"
)

// ErrUnsupportedFormat is returned for files that no parser accepts.
var ErrUnsupportedFormat = errors.New("unsupported schedule format")

// ParseError reports a file that could not be ingested.
type ParseError struct {
	// Source is the uploaded file name.
	Source string
	// Parser is the parser that rejected the file (csv, xml, ifc).
	Parser string
	// Line is the 1-based input line, or 0 when unknown.
	Line int
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s parser failed on %s line %d: %v", e.Parser, e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s parser failed on %s: %v", e.Parser, e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
