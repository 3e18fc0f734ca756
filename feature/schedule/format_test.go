package schedule_test

import (
	"errors"
	"testing"

	"rebar-check/feature/schedule"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		file string
		want schedule.Format
		err  bool
	}{
		{"CSV", "list.csv", schedule.FormatCSV, false},
		{"UpperCase", "LIST.CSV", schedule.FormatCSV, false},
		{"XML", "b2a.xml", schedule.FormatXML, false},
		{"IFC", "model.Ifc", schedule.FormatIFC, false},
		{"Unknown", "model.dwg", "", true},
		{"NoExtension", "README", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.DetectFormat(tt.file)
			if tt.err {
				assert.True(t, errors.Is(err, schedule.ErrUnsupportedFormat))
				assert.False(t, schedule.IsSupported(tt.file))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, schedule.IsSupported(tt.file))
		})
	}
}
