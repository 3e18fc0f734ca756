package schedule

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText returns data as UTF-8 without a byte order mark.
// Input that is not valid UTF-8 is read as Windows-1252, the code page bending
// list exports use on Swedish Windows installs.
func decodeText(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
		return out, err
	}
	return charmap.Windows1252.NewDecoder().Bytes(data)
}
