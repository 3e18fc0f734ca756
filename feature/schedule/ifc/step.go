package ifc

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a STEP parameter value.
type Kind int

const (
	// KindNull is an unset optional parameter ($).
	KindNull Kind = iota
	// KindDerived is a value derived by a supertype (*).
	KindDerived
	// KindRef is an entity instance reference (#12).
	KindRef
	// KindString is a decoded string literal.
	KindString
	// KindNumber is an integer or real literal.
	KindNumber
	// KindEnum is an enumeration or logical (.T., .ELEMENT.).
	KindEnum
	// KindBinary is a binary literal ("0FF").
	KindBinary
	// KindList is an aggregate ((#1,#2)).
	KindList
	// KindTyped is a typed parameter (IFCLABEL('x')).
	KindTyped
)

// Value is one parameter of an entity instance.
type Value struct {
	Kind Kind
	// Ref is the referenced instance id for KindRef.
	Ref int
	// Text holds strings, enum names without dots, binary digits and typed parameter names.
	Text string
	// Number holds numeric literals.
	Number float64
	// Integer is true when a numeric literal had no decimal point or exponent.
	Integer bool
	// Items holds list members, or the arguments of a typed parameter.
	Items []Value
}

// Refs returns the instance ids referenced by a reference or a list of references.
func (v Value) Refs() []int {
	switch v.Kind {
	case KindRef:
		return []int{v.Ref}
	case KindList:
		var refs []int
		for _, item := range v.Items {
			if item.Kind == KindRef {
				refs = append(refs, item.Ref)
			}
		}
		return refs
	default:
		return nil
	}
}

// Native unwraps typed parameters and returns the Go value of the literal:
// string, int64, float64, bool (for .T./.F.) or nil.
func (v Value) Native() any {
	switch v.Kind {
	case KindTyped:
		if len(v.Items) == 1 {
			return v.Items[0].Native()
		}
		return nil
	case KindString:
		return v.Text
	case KindNumber:
		if v.Integer {
			return int64(v.Number)
		}
		return v.Number
	case KindEnum:
		switch v.Text {
		case "T":
			return true
		case "F":
			return false
		case "U":
			return nil
		}
		return v.Text
	case KindBinary:
		return v.Text
	default:
		return nil
	}
}

// Entity is one instance of the DATA section.
type Entity struct {
	ID int
	// Type is the upper-case entity name, e.g. IFCREINFORCINGBAR.
	Type string
	Args []Value
	// Line is where the instance starts in the file.
	Line int
}

// Arg returns the i-th argument, or a null value when out of range.
func (e *Entity) Arg(i int) Value {
	if e == nil || i < 0 || i >= len(e.Args) {
		return Value{Kind: KindNull}
	}
	return e.Args[i]
}

// Text returns the i-th argument as a string, or "" when it is not a string.
func (e *Entity) Text(i int) string {
	v := e.Arg(i)
	if v.Kind == KindString {
		return v.Text
	}
	return ""
}

// SyntaxError reports malformed STEP input.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("step syntax error on line %d: %s", e.Line, e.Msg)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokKeyword
	tokRef
	tokString
	tokNumber
	tokEnum
	tokBinary
	tokDollar
	tokStar
	tokLParen
	tokRParen
	tokComma
	tokEquals
	tokSemicolon
)

type token struct {
	kind tokenKind
	text string
	line int
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of file"
	case tokKeyword, tokNumber:
		return strconv.Quote(t.text)
	case tokRef:
		return "#" + t.text
	case tokString:
		return "string"
	default:
		return strconv.Quote(t.text)
	}
}

type lexer struct {
	data []byte
	pos  int
	line int
}

func (l *lexer) errorf(format string, args ...any) error {
	return &SyntaxError{Line: l.line, Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) skip() error {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '/' && l.pos+1 < len(l.data) && l.data[l.pos+1] == '*':
			end := bytes.Index(l.data[l.pos+2:], []byte("*/"))
			if end < 0 {
				return l.errorf("unterminated comment")
			}
			comment := l.data[l.pos : l.pos+2+end+2]
			l.line += bytes.Count(comment, []byte{'\n'})
			l.pos += len(comment)
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) next() (token, error) {
	if err := l.skip(); err != nil {
		return token{}, err
	}
	if l.pos >= len(l.data) {
		return token{kind: tokEOF, line: l.line}, nil
	}

	start := l.pos
	c := l.data[l.pos]
	single := func(kind tokenKind) (token, error) {
		l.pos++
		return token{kind: kind, text: string(c), line: l.line}, nil
	}

	switch {
	case c == '(':
		return single(tokLParen)
	case c == ')':
		return single(tokRParen)
	case c == ',':
		return single(tokComma)
	case c == '=':
		return single(tokEquals)
	case c == ';':
		return single(tokSemicolon)
	case c == '$':
		return single(tokDollar)
	case c == '*':
		return single(tokStar)
	case c == '#':
		l.pos++
		for l.pos < len(l.data) && isDigit(l.data[l.pos]) {
			l.pos++
		}
		if l.pos == start+1 {
			return token{}, l.errorf("instance reference without id")
		}
		return token{kind: tokRef, text: string(l.data[start+1 : l.pos]), line: l.line}, nil
	case c == '\'':
		return l.string()
	case c == '"':
		end := bytes.IndexByte(l.data[l.pos+1:], '"')
		if end < 0 {
			return token{}, l.errorf("unterminated binary literal")
		}
		l.pos += end + 2
		return token{kind: tokBinary, text: string(l.data[start+1 : l.pos-1]), line: l.line}, nil
	case c == '.':
		end := bytes.IndexByte(l.data[l.pos+1:], '.')
		if end < 0 {
			return token{}, l.errorf("unterminated enumeration")
		}
		l.pos += end + 2
		return token{kind: tokEnum, text: string(l.data[start+1 : l.pos-1]), line: l.line}, nil
	case c == '-' || c == '+' || isDigit(c):
		l.pos++
		for l.pos < len(l.data) && isNumberByte(l.data[l.pos]) {
			l.pos++
		}
		return token{kind: tokNumber, text: string(l.data[start:l.pos]), line: l.line}, nil
	case isKeywordStart(c):
		l.pos++
		for l.pos < len(l.data) && isKeywordByte(l.data[l.pos]) {
			l.pos++
		}
		return token{kind: tokKeyword, text: strings.ToUpper(string(l.data[start:l.pos])), line: l.line}, nil
	default:
		return token{}, l.errorf("unexpected character %q", c)
	}
}

// string reads a quoted literal; a doubled quote is an escaped quote.
func (l *lexer) string() (token, error) {
	line := l.line
	var raw []byte
	l.pos++
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if c == '\'' {
			if l.pos+1 < len(l.data) && l.data[l.pos+1] == '\'' {
				raw = append(raw, '\'')
				l.pos += 2
				continue
			}
			l.pos++
			text, err := decodeString(raw)
			if err != nil {
				return token{}, &SyntaxError{Line: line, Msg: err.Error()}
			}
			return token{kind: tokString, text: text, line: line}, nil
		}
		if c == '\n' {
			l.line++
		}
		raw = append(raw, c)
		l.pos++
	}
	return token{}, &SyntaxError{Line: line, Msg: "unterminated string"}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'E' || c == 'e' || c == '-' || c == '+'
}

func isKeywordStart(c byte) bool {
	return c == '!' || c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isKeywordByte(c byte) bool {
	return isKeywordStart(c) || isDigit(c) || c == '-'
}
