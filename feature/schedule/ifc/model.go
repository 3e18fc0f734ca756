package ifc

import (
	"fmt"
	"strconv"
	"strings"
)

// Entity type names used by the resolver.
const (
	TypeApplication            = "IFCAPPLICATION"
	TypeReinforcingBar         = "IFCREINFORCINGBAR"
	TypeRelDefinesByProperties = "IFCRELDEFINESBYPROPERTIES"
	TypeRelDefinesByType       = "IFCRELDEFINESBYTYPE"
	TypePropertySet            = "IFCPROPERTYSET"
	TypeElementQuantity        = "IFCELEMENTQUANTITY"
	TypePropertySingleValue    = "IFCPROPERTYSINGLEVALUE"
)

// Model is an in-memory ISO 10303-21 exchange file.
type Model struct {
	// Schema is the first FILE_SCHEMA identifier, e.g. IFC2X3 or IFC4.
	Schema string
	// OriginatingSystem is the FILE_NAME originating system of the header.
	OriginatingSystem string

	entities map[int]*Entity
	order    []int
	byType   map[string][]int
}

// Entity returns the instance with the given id.
func (m *Model) Entity(id int) (*Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

// ByType returns all instances of the given type in file order.
func (m *Model) ByType(typ string) []*Entity {
	ids := m.byType[strings.ToUpper(typ)]
	out := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.entities[id])
	}
	return out
}

// Len returns the number of instances in the DATA section.
func (m *Model) Len() int {
	return len(m.order)
}

// ReadModel parses an ISO 10303-21 exchange file.
func ReadModel(data []byte) (*Model, error) {
	p := &stepParser{lex: lexer{data: data, line: 1}}
	if err := p.advance(); err != nil {
		return nil, err
	}

	m := &Model{
		entities: make(map[int]*Entity),
		byType:   make(map[string][]int),
	}

	if err := p.expectKeyword("ISO-10303-21"); err != nil {
		return nil, err
	}
	if err := p.expect(tokSemicolon); err != nil {
		return nil, err
	}

	for {
		if p.tok.kind != tokKeyword {
			return nil, p.unexpected("section keyword")
		}
		switch p.tok.text {
		case "HEADER":
			if err := p.header(m); err != nil {
				return nil, err
			}
		case "DATA":
			if err := p.dataSection(m); err != nil {
				return nil, err
			}
		case "END-ISO-10303-21":
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.expect(tokSemicolon); err != nil {
				return nil, err
			}
			return m, nil
		default:
			return nil, p.unexpected("HEADER, DATA or END-ISO-10303-21")
		}
	}
}

type stepParser struct {
	lex lexer
	tok token
}

func (p *stepParser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *stepParser) unexpected(want string) error {
	return &SyntaxError{Line: p.tok.line, Msg: fmt.Sprintf("expected %s, found %s", want, p.tok.describe())}
}

func (p *stepParser) expect(kind tokenKind) error {
	if p.tok.kind != kind {
		return p.unexpected(tokenNames[kind])
	}
	return p.advance()
}

func (p *stepParser) expectKeyword(kw string) error {
	if p.tok.kind != tokKeyword || p.tok.text != kw {
		return p.unexpected(kw)
	}
	return p.advance()
}

var tokenNames = map[tokenKind]string{
	tokLParen:    `"("`,
	tokRParen:    `")"`,
	tokComma:     `","`,
	tokEquals:    `"="`,
	tokSemicolon: `";"`,
	tokRef:       "instance id",
	tokKeyword:   "keyword",
}

// header reads HEADER; record* ENDSEC;
func (p *stepParser) header(m *Model) error {
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.expect(tokSemicolon); err != nil {
		return err
	}

	for {
		if p.tok.kind != tokKeyword {
			return p.unexpected("header entity")
		}
		name := p.tok.text
		if name == "ENDSEC" {
			if err := p.advance(); err != nil {
				return err
			}
			return p.expect(tokSemicolon)
		}
		if err := p.advance(); err != nil {
			return err
		}
		args, err := p.params()
		if err != nil {
			return err
		}
		if err := p.expect(tokSemicolon); err != nil {
			return err
		}

		switch name {
		case "FILE_NAME":
			if len(args) > 5 && args[5].Kind == KindString {
				m.OriginatingSystem = args[5].Text
			}
		case "FILE_SCHEMA":
			if len(args) > 0 && args[0].Kind == KindList && len(args[0].Items) > 0 {
				m.Schema = args[0].Items[0].Text
			}
		}
	}
}

// dataSection reads DATA [(params)]; instance* ENDSEC;
func (p *stepParser) dataSection(m *Model) error {
	if err := p.advance(); err != nil {
		return err
	}
	if p.tok.kind == tokLParen {
		if _, err := p.params(); err != nil {
			return err
		}
	}
	if err := p.expect(tokSemicolon); err != nil {
		return err
	}

	for {
		switch p.tok.kind {
		case tokKeyword:
			if p.tok.text != "ENDSEC" {
				return p.unexpected("instance or ENDSEC")
			}
			if err := p.advance(); err != nil {
				return err
			}
			return p.expect(tokSemicolon)
		case tokRef:
			e, err := p.instance()
			if err != nil {
				return err
			}
			if _, dup := m.entities[e.ID]; dup {
				return &SyntaxError{Line: e.Line, Msg: fmt.Sprintf("duplicate instance #%d", e.ID)}
			}
			m.entities[e.ID] = e
			m.order = append(m.order, e.ID)
			m.byType[e.Type] = append(m.byType[e.Type], e.ID)
		default:
			return p.unexpected("instance or ENDSEC")
		}
	}
}

// instance reads #id = TYPE(params); or the complex form #id = (A(...)B(...));
func (p *stepParser) instance() (*Entity, error) {
	id, err := strconv.Atoi(p.tok.text)
	if err != nil {
		return nil, &SyntaxError{Line: p.tok.line, Msg: fmt.Sprintf("bad instance id %q", p.tok.text)}
	}
	e := &Entity{ID: id, Line: p.tok.line}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokEquals); err != nil {
		return nil, err
	}

	switch p.tok.kind {
	case tokKeyword:
		e.Type = p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if e.Args, err = p.params(); err != nil {
			return nil, err
		}
	case tokLParen:
		// Complex instance: keep the first partial record as the entity.
		if err := p.advance(); err != nil {
			return nil, err
		}
		for p.tok.kind == tokKeyword {
			name := p.tok.text
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.params()
			if err != nil {
				return nil, err
			}
			if e.Type == "" {
				e.Type, e.Args = name, args
			}
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
	default:
		return nil, p.unexpected("entity name")
	}

	if err := p.expect(tokSemicolon); err != nil {
		return nil, err
	}
	return e, nil
}

// params reads a parenthesised, comma separated parameter list.
func (p *stepParser) params() ([]Value, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	values := []Value{}
	if p.tok.kind == tokRParen {
		return values, p.advance()
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		switch p.tok.kind {
		case tokComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokRParen:
			return values, p.advance()
		default:
			return nil, p.unexpected(`"," or ")"`)
		}
	}
}

func (p *stepParser) value() (Value, error) {
	tok := p.tok
	var v Value

	switch tok.kind {
	case tokDollar:
		v = Value{Kind: KindNull}
	case tokStar:
		v = Value{Kind: KindDerived}
	case tokRef:
		id, err := strconv.Atoi(tok.text)
		if err != nil {
			return Value{}, &SyntaxError{Line: tok.line, Msg: fmt.Sprintf("bad reference #%s", tok.text)}
		}
		v = Value{Kind: KindRef, Ref: id}
	case tokString:
		v = Value{Kind: KindString, Text: tok.text}
	case tokEnum:
		v = Value{Kind: KindEnum, Text: strings.ToUpper(tok.text)}
	case tokBinary:
		v = Value{Kind: KindBinary, Text: tok.text}
	case tokNumber:
		n, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return Value{}, &SyntaxError{Line: tok.line, Msg: fmt.Sprintf("bad number %q", tok.text)}
		}
		v = Value{Kind: KindNumber, Number: n, Integer: !strings.ContainsAny(tok.text, ".Ee")}
	case tokLParen:
		items, err := p.params()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindList, Items: items}, nil
	case tokKeyword:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		items, err := p.params()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindTyped, Text: tok.text, Items: items}, nil
	default:
		return Value{}, p.unexpected("parameter")
	}

	return v, p.advance()
}
