package schedule

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// XML element names of the bending schedule report.
const (
	xmlPageRow      = "B2aPageRow"
	xmlMark         = "Litt"
	xmlGroups       = "NoGrps"
	xmlBarsPerGroup = "NoStpGrp"
)

type xmlNode struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// ParseXML reads a bending schedule report.
//
// Each B2aPageRow contributes NoGrps * NoStpGrp bars for its Litt. A row is
// authoritative for its mark: a later row with the same mark replaces the total.
func ParseXML(data []byte, source string) (*Table, error) {
	fail := func(err error) (*Table, error) {
		perr := &ParseError{Source: source, Parser: ParserXML, Err: err}
		var serr *xml.SyntaxError
		if errors.As(err, &serr) {
			perr.Line = serr.Line
		}
		return nil, perr
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		return fail(fmt.Errorf("malformed xml: %w", err))
	}
	if err := expectEOF(dec); err != nil {
		return fail(err)
	}

	table := NewTable(source)

	for i, row := range root.descendants(xmlPageRow) {
		mark, err := row.text(xmlMark)
		if err != nil {
			return fail(fmt.Errorf("%s #%d: %w", xmlPageRow, i+1, err))
		}
		groups, err := row.integer(xmlGroups)
		if err != nil {
			return fail(fmt.Errorf("%s #%d (mark %s): %w", xmlPageRow, i+1, mark, err))
		}
		bars, err := row.integer(xmlBarsPerGroup)
		if err != nil {
			return fail(fmt.Errorf("%s #%d (mark %s): %w", xmlPageRow, i+1, mark, err))
		}

		table.Set(mark, groups*bars)
	}

	return table, nil
}

// expectEOF rejects content after the document element.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("malformed xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("malformed xml: unexpected element <%s> after document element", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("malformed xml: text after document element")
			}
		}
	}
}

// descendants returns all elements named local below n in document order.
func (n *xmlNode) descendants(local string) []*xmlNode {
	var found []*xmlNode
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == local {
			found = append(found, child)
		}
		found = append(found, child.descendants(local)...)
	}
	return found
}

// text returns the trimmed text of the first descendant named local.
func (n *xmlNode) text(local string) (string, error) {
	matches := n.descendants(local)
	if len(matches) == 0 {
		return "", fmt.Errorf("missing <%s>", local)
	}
	value := strings.TrimSpace(matches[0].Text)
	if value == "" {
		return "", fmt.Errorf("empty <%s>", local)
	}
	return value, nil
}

func (n *xmlNode) integer(local string) (int, error) {
	value, err := n.text(local)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("<%s> %q is not an integer: %w", local, value, err)
	}
	return v, nil
}
