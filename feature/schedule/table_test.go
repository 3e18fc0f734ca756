package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_AddAndSet(t *testing.T) {
	table := NewTable("a.csv")

	table.Add("1", 2)
	table.Add("2", 1)
	table.Add("1", 3)
	assert.Equal(t, []string{"1", "2"}, table.Keys())

	n, _ := table.Quantity("1")
	assert.Equal(t, 5, n)

	table.Set("1", 9)
	assert.Equal(t, []string{"1", "2"}, table.Keys(), "Set keeps the original position")
	n, _ = table.Quantity("1")
	assert.Equal(t, 9, n)

	_, ok := table.Quantity("3")
	assert.False(t, ok)
}

func TestTable_SetAttributes(t *testing.T) {
	table := NewTable("model.ifc")
	table.Add("7", 4)

	assert.True(t, table.SetAttributes("7", map[string]string{GradeAttr: "B500B"}))
	assert.False(t, table.SetAttributes("8", map[string]string{}))
	assert.Equal(t, "B500B", table.Attributes("7")[GradeAttr])
}

func TestTable_LiteralRowsAreIndexed(t *testing.T) {
	table := &Table{Source: "x", Rows: []Row{{Mark: "a", Quantity: 1}, {Mark: "b", Quantity: 2}}}

	n, ok := table.Quantity("b")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	table.Add("c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, table.Keys())
}
