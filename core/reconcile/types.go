package reconcile

import "errors"

const (
	// KeyColumn is the header of the mark column.
	KeyColumn = "Littera"
	// VerdictColumn is the header of the equality column.
	VerdictColumn = "Lika"
	// MaxSources is the number of tables a verdict is computed over.
	MaxSources = 2
)

var (
	// ErrNoSources is returned when there is nothing to reconcile.
	ErrNoSources = errors.New("no schedules to reconcile")
	// ErrTooManySources is returned for more than MaxSources tables.
	ErrTooManySources = errors.New("at most two schedules can be reconciled")
)

// Source is one quantity table keyed by bar mark.
// Implementations must return each mark once from Keys.
type Source interface {
	// Name is the column header of the table, usually the uploaded file name.
	Name() string
	// Keys returns the marks of the table.
	Keys() []string
	// Quantity returns the total for mark.
	Quantity(mark string) (int, bool)
	// Attributes returns the display attributes of mark, or nil.
	Attributes(mark string) map[string]string
	// AttributeColumns lists the attribute names the table carries.
	AttributeColumns() []string
}

// Row is the reconciled state of one mark.
type Row struct {
	// Mark is the bar mark (Littera).
	Mark string `json:"mark"`

	// Quantities holds one entry per column; nil means the mark is absent
	// from that table.
	Quantities []*int `json:"quantities"`

	// Attributes holds display attributes (grade, size, shape) when a table
	// carries them.
	Attributes map[string]string `json:"attributes,omitempty"`

	// Equal is the verdict: every table has the mark with the same quantity.
	// It is only meaningful when Result.HasVerdict is set.
	Equal bool `json:"equal"`
}

// Result is the outer join of all tables on mark.
type Result struct {
	// Columns holds one header per contributing table, in argument order.
	Columns []string `json:"columns"`

	// AttributeColumns lists the attribute headers in first-seen order.
	AttributeColumns []string `json:"attribute_columns,omitempty"`

	// Rows is sorted by mark in ascending string order.
	Rows []Row `json:"rows"`

	// HasVerdict is set when exactly two tables were reconciled.
	HasVerdict bool `json:"has_verdict"`
}

// Summary provides aggregate counts for a result.
type Summary struct {
	// TotalMarks is the number of distinct marks.
	TotalMarks int `json:"total_marks"`

	// Equal counts marks with matching quantities in both tables.
	Equal int `json:"equal"`

	// Different counts marks present in both tables with different quantities.
	Different int `json:"different"`

	// OnlyLeft counts marks missing from the second table.
	OnlyLeft int `json:"only_left"`

	// OnlyRight counts marks missing from the first table.
	OnlyRight int `json:"only_right"`
}

// Matches reports whether every mark is equal.
func (s Summary) Matches() bool {
	return s.Equal == s.TotalMarks
}
