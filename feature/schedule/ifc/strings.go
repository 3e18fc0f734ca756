package ifc

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// codePages maps the \P?\ directive to the ISO 8859 part it selects.
var codePages = map[byte]*charmap.Charmap{
	'A': charmap.ISO8859_1,
	'B': charmap.ISO8859_2,
	'C': charmap.ISO8859_3,
	'D': charmap.ISO8859_4,
	'E': charmap.ISO8859_5,
	'F': charmap.ISO8859_6,
	'G': charmap.ISO8859_7,
	'H': charmap.ISO8859_8,
	'I': charmap.ISO8859_9,
}

// decodeString resolves the control directives of an ISO 10303-21 string literal.
func decodeString(raw []byte) (string, error) {
	var sb strings.Builder
	page := charmap.ISO8859_1

	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}

		rest := raw[i:]
		switch {
		case hasPrefix(rest, `\\`):
			sb.WriteByte('\\')
			i += 2
		case hasPrefix(rest, `\S\`) && len(rest) >= 4:
			sb.WriteRune(page.DecodeByte(rest[3] | 0x80))
			i += 4
		case hasPrefix(rest, `\P`) && len(rest) >= 4 && rest[3] == '\\':
			cp, ok := codePages[rest[2]]
			if !ok {
				return "", fmt.Errorf("unknown code page directive %q", rest[:4])
			}
			page = cp
			i += 4
		case hasPrefix(rest, `\X2\`), hasPrefix(rest, `\X4\`):
			width := 4
			if rest[2] == '4' {
				width = 8
			}
			end := strings.Index(string(rest[4:]), `\X0\`)
			if end < 0 {
				return "", fmt.Errorf("unterminated %q directive", rest[:4])
			}
			runes, err := decodeHexRunes(string(rest[4:4+end]), width)
			if err != nil {
				return "", err
			}
			sb.WriteString(string(runes))
			i += 4 + end + 4
		case hasPrefix(rest, `\X\`) && len(rest) >= 5:
			b, err := hex.DecodeString(string(rest[3:5]))
			if err != nil {
				return "", fmt.Errorf("bad \\X\\ directive: %w", err)
			}
			sb.WriteRune(charmap.ISO8859_1.DecodeByte(b[0]))
			i += 5
		default:
			// A lone backslash is kept as written.
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String(), nil
}

// decodeHexRunes decodes UTF-16 (width 4) or UCS-4 (width 8) hex digits.
func decodeHexRunes(digits string, width int) ([]rune, error) {
	if len(digits)%width != 0 {
		return nil, fmt.Errorf("hex run %q is not a multiple of %d digits", digits, width)
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("bad hex run: %w", err)
	}

	if width == 8 {
		runes := make([]rune, 0, len(raw)/4)
		for i := 0; i < len(raw); i += 4 {
			runes = append(runes, rune(raw[i])<<24|rune(raw[i+1])<<16|rune(raw[i+2])<<8|rune(raw[i+3]))
		}
		return runes, nil
	}

	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
	}
	return utf16.Decode(units), nil
}

func hasPrefix(b []byte, prefix string) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == prefix
}
