package schedule

// Column vocabulary shared by the parsers, the reconcile export and the UI.
const (
	// QuantityAttr is the total bar count for a mark.
	QuantityAttr = "Antal"
	// GradeAttr is the steel grade (material).
	GradeAttr = "Kvalitet"
	// SizeAttr is the bar diameter.
	SizeAttr = "Diameter"
	// ShapeAttr is the bending shape code.
	ShapeAttr = "Bockningstyp"
)

// Row is the canonical record for one mark within one file.
type Row struct {
	// Mark is the bar mark in its string form ("12", not 12).
	Mark string `json:"mark"`
	// Quantity is the total number of bars carrying the mark.
	Quantity int `json:"quantity"`
	// Attributes holds descriptive values (grade, size, shape) when the format has them.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Table is the canonical per-file quantity table.
// Marks are unique and rows keep the order in which a mark was first seen.
type Table struct {
	// Source is the uploaded file name. It names the quantity column.
	Source string `json:"source"`
	// Rows holds one entry per distinct mark.
	Rows []Row `json:"rows"`
	// AttributeNames lists the attribute columns carried by the rows, in display order.
	AttributeNames []string `json:"attribute_names,omitempty"`

	index map[string]int
}

// NewTable creates an empty table for the given source.
func NewTable(source string) *Table {
	return &Table{
		Source: source,
		Rows:   []Row{},
		index:  make(map[string]int),
	}
}

// Add adds n bars to mark, creating the row if needed.
func (t *Table) Add(mark string, n int) {
	if i, ok := t.lookup(mark); ok {
		t.Rows[i].Quantity += n
		return
	}
	t.append(Row{Mark: mark, Quantity: n})
}

// Set replaces the total for mark. A replaced row keeps its original position.
func (t *Table) Set(mark string, n int) {
	if i, ok := t.lookup(mark); ok {
		t.Rows[i].Quantity = n
		return
	}
	t.append(Row{Mark: mark, Quantity: n})
}

// SetAttributes replaces the descriptive attributes of an existing mark.
// It returns false if the mark is not in the table.
func (t *Table) SetAttributes(mark string, attrs map[string]string) bool {
	i, ok := t.lookup(mark)
	if !ok {
		return false
	}
	t.Rows[i].Attributes = attrs
	return true
}

// Row returns the row for mark.
func (t *Table) Row(mark string) (Row, bool) {
	i, ok := t.lookup(mark)
	if !ok {
		return Row{}, false
	}
	return t.Rows[i], true
}

// Len returns the number of distinct marks.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Name implements reconcile.Source.
func (t *Table) Name() string {
	return t.Source
}

// Keys implements reconcile.Source. Keys are returned in first-seen order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		keys[i] = r.Mark
	}
	return keys
}

// Quantity implements reconcile.Source.
func (t *Table) Quantity(mark string) (int, bool) {
	r, ok := t.Row(mark)
	return r.Quantity, ok
}

// Attributes implements reconcile.Source.
func (t *Table) Attributes(mark string) map[string]string {
	r, _ := t.Row(mark)
	return r.Attributes
}

// AttributeColumns implements reconcile.Source.
func (t *Table) AttributeColumns() []string {
	return t.AttributeNames
}

func (t *Table) lookup(mark string) (int, bool) {
	// Tables built as struct literals (tests, JSON) have no index yet.
	if t.index == nil || len(t.index) != len(t.Rows) {
		t.index = make(map[string]int, len(t.Rows))
		for i, r := range t.Rows {
			t.index[r.Mark] = i
		}
	}
	i, ok := t.index[mark]
	return i, ok
}

func (t *Table) append(r Row) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[r.Mark] = len(t.Rows)
	t.Rows = append(t.Rows, r)
}
