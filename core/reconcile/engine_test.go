package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a minimal in-memory Source.
type fakeSource struct {
	name   string
	marks  []string
	totals map[string]int
	attrs  map[string]map[string]string
	cols   []string
}

func newFake(name string, pairs ...any) *fakeSource {
	f := &fakeSource{name: name, totals: map[string]int{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		mark := pairs[i].(string)
		f.marks = append(f.marks, mark)
		f.totals[mark] = pairs[i+1].(int)
	}
	return f
}

func (f *fakeSource) Name() string   { return f.name }
func (f *fakeSource) Keys() []string { return f.marks }
func (f *fakeSource) Quantity(mark string) (int, bool) {
	n, ok := f.totals[mark]
	return n, ok
}
func (f *fakeSource) Attributes(mark string) map[string]string { return f.attrs[mark] }
func (f *fakeSource) AttributeColumns() []string               { return f.cols }

func intp(n int) *int { return &n }

func TestReconcile_MergeCompleteness(t *testing.T) {
	left := newFake("a.csv", "1", 4)
	right := newFake("b.xml", "1", 4, "2", 9)

	res, err := Reconcile(left, right)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.csv", "b.xml"}, res.Columns)
	assert.True(t, res.HasVerdict)
	assert.Equal(t, []Row{
		{Mark: "1", Quantities: []*int{intp(4), intp(4)}, Equal: true},
		{Mark: "2", Quantities: []*int{nil, intp(9)}, Equal: false},
	}, res.Rows)
}

func TestReconcile_Verdicts(t *testing.T) {
	left := newFake("left", "1", 4, "2", 5, "3", 1)
	right := newFake("right", "1", 4, "2", 6, "4", 2)

	res, err := Reconcile(left, right)
	require.NoError(t, err)

	verdicts := map[string]bool{}
	for _, row := range res.Rows {
		verdicts[row.Mark] = row.Equal
	}
	assert.Equal(t, map[string]bool{"1": true, "2": false, "3": false, "4": false}, verdicts)

	assert.Equal(t, Summary{TotalMarks: 4, Equal: 1, Different: 1, OnlyLeft: 1, OnlyRight: 1}, res.Summary())
	assert.False(t, res.Summary().Matches())
}

func TestReconcile_LexicographicOrder(t *testing.T) {
	res, err := Reconcile(newFake("a", "2", 1, "10", 1, "1", 1), newFake("b", "1", 1))
	require.NoError(t, err)

	marks := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		marks = append(marks, row.Mark)
	}
	assert.Equal(t, []string{"1", "10", "2"}, marks)
}

func TestReconcile_SingleSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
	}{
		{"LeftOnly", []Source{newFake("a.csv", "1", 4, "2", 9), nil}},
		{"RightOnly", []Source{nil, newFake("a.csv", "1", 4, "2", 9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Reconcile(tt.sources...)
			require.NoError(t, err)

			assert.Equal(t, []string{"a.csv"}, res.Columns)
			assert.False(t, res.HasVerdict)
			require.Len(t, res.Rows, 2)
			assert.Equal(t, []*int{intp(4)}, res.Rows[0].Quantities)
			assert.Equal(t, Summary{TotalMarks: 2}, res.Summary())
			assert.Equal(t, []string{KeyColumn, "a.csv"}, res.Header())
		})
	}
}

func TestReconcile_Errors(t *testing.T) {
	_, err := Reconcile()
	assert.ErrorIs(t, err, ErrNoSources)

	_, err = Reconcile(nil, nil)
	assert.ErrorIs(t, err, ErrNoSources)

	_, err = Reconcile(newFake("a"), newFake("b"), newFake("c"))
	assert.ErrorIs(t, err, ErrTooManySources)
}

func TestReconcile_DuplicateNames(t *testing.T) {
	res, err := Reconcile(newFake("list.csv", "1", 1), newFake("list.csv", "1", 2))
	require.NoError(t, err)

	assert.Equal(t, []string{"list.csv", "list.csv (2)"}, res.Columns)
	assert.False(t, res.Rows[0].Equal)
}

func TestReconcile_Attributes(t *testing.T) {
	left := newFake("a.csv", "1", 4, "2", 1)
	right := newFake("model.ifc", "1", 4)
	right.cols = []string{"Kvalitet", "Diameter"}
	right.attrs = map[string]map[string]string{
		"1": {"Kvalitet": "B500B", "Diameter": "12"},
	}

	res, err := Reconcile(left, right)
	require.NoError(t, err)

	assert.Equal(t, []string{"Kvalitet", "Diameter"}, res.AttributeColumns)
	assert.Equal(t, map[string]string{"Kvalitet": "B500B", "Diameter": "12"}, res.Rows[0].Attributes)
	assert.Nil(t, res.Rows[1].Attributes)
}
