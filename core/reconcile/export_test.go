package reconcile

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	left := newFake("a.csv", "1", 4, "10", 2)
	right := newFake("b.xml", "1", 4, "2", 9)

	res, err := Reconcile(left, right)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	assert.Equal(t, "Littera,a.csv,b.xml,Lika\n1,4,4,True\n10,2,,False\n2,,9,False\n", buf.String())
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	left := newFake("a.csv", "3", 7, "1", 2)
	right := newFake("model.ifc", "1", 2, "3", 8)
	right.cols = []string{"Kvalitet"}
	right.attrs = map[string]map[string]string{"3": {"Kvalitet": "B500B, rostfri"}}

	res, err := Reconcile(left, right)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(res.Rows)+1)

	assert.Equal(t, res.Header(), records[0])
	for i := range res.Rows {
		assert.Equal(t, res.Record(i), records[i+1])
	}
	assert.Equal(t, []string{"3", "7", "8", "B500B, rostfri", "False"}, records[2])
}

func TestWriteCSV_SingleSource(t *testing.T) {
	res, err := Reconcile(newFake("a.csv", "5", 5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))
	assert.Equal(t, "Littera,a.csv\n5,5\n", buf.String())
}
