package schedule

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported export format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatXML Format = "xml"
	FormatIFC Format = "ifc"
)

// DetectFormat picks the format from the file extension (case-insensitive).
func DetectFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXML:
		return FormatXML, nil
	case FormatIFC:
		return FormatIFC, nil
	default:
		return "", fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
}

// IsSupported reports whether name has a supported extension.
func IsSupported(name string) bool {
	_, err := DetectFormat(name)
	return err == nil
}
