package schedule

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvDelimiter is the separator used by bending list exports.
const csvDelimiter = ';'

// ParseCSV reads a semicolon separated bending list.
//
// Only rows whose first field is a positive integer mark are data rows; everything
// else is skipped. The second field of a data row is the group size and must be an
// integer, otherwise the whole file is rejected.
func ParseCSV(data []byte, source string) (*Table, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, &ParseError{Source: source, Parser: ParserCSV, Err: fmt.Errorf("decode: %w", err)}
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.Comma = csvDelimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	table := NewTable(source)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			perr := &ParseError{Source: source, Parser: ParserCSV, Err: err}
			var cerr *csv.ParseError
			if errors.As(err, &cerr) {
				perr.Line = cerr.Line
			}
			return nil, perr
		}

		line, _ := reader.FieldPos(0)

		mark, ok := parseMark(record[0])
		if !ok {
			continue
		}

		if len(record) < 2 {
			return nil, &ParseError{
				Source: source,
				Parser: ParserCSV,
				Line:   line,
				Err:    fmt.Errorf("mark %d has no group size", mark),
			}
		}

		n, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, &ParseError{
				Source: source,
				Parser: ParserCSV,
				Line:   line,
				Err:    fmt.Errorf("group size %q for mark %d: %w", record[1], mark, err),
			}
		}

		table.Add(strconv.Itoa(mark), n)
	}

	return table, nil
}

// parseMark reports whether field holds a data row mark.
// A field that does not parse counts as mark 0, which is never a data row.
func parseMark(field string) (int, bool) {
	mark, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		mark = 0
	}
	return mark, mark > 0
}
