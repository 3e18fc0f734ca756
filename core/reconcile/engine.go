package reconcile

import (
	"fmt"
	"sort"
)

// Reconcile outer-joins the sources on mark. Nil sources are ignored, so a
// single uploaded file yields a one-column result without a verdict.
//
// With two sources every row gets a verdict: equal when both tables hold the
// mark with the same quantity.
func Reconcile(sources ...Source) (*Result, error) {
	present := make([]Source, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			present = append(present, src)
		}
	}
	if len(present) == 0 {
		return nil, ErrNoSources
	}
	if len(present) > MaxSources {
		return nil, fmt.Errorf("%w: got %d", ErrTooManySources, len(present))
	}

	res := &Result{
		Columns:          columnNames(present),
		AttributeColumns: attributeColumns(present),
		HasVerdict:       len(present) == MaxSources,
	}

	// Build union of all marks
	union := buildUnion(present)

	res.Rows = make([]Row, 0, len(union))
	for mark := range union {
		res.Rows = append(res.Rows, buildRow(mark, present, res.AttributeColumns, res.HasVerdict))
	}

	// Plain string order: "1" < "10" < "2"
	sort.Slice(res.Rows, func(i, j int) bool {
		return res.Rows[i].Mark < res.Rows[j].Mark
	})

	return res, nil
}

// Summary counts equal, different and one-sided marks.
func (r *Result) Summary() Summary {
	s := Summary{TotalMarks: len(r.Rows)}
	if !r.HasVerdict {
		return s
	}

	for _, row := range r.Rows {
		left, right := row.Quantities[0], row.Quantities[1]
		switch {
		case row.Equal:
			s.Equal++
		case left == nil:
			s.OnlyRight++
		case right == nil:
			s.OnlyLeft++
		default:
			s.Different++
		}
	}
	return s
}

// buildUnion creates a union of the marks of all sources.
func buildUnion(sources []Source) map[string]struct{} {
	union := make(map[string]struct{})
	for _, src := range sources {
		for _, mark := range src.Keys() {
			union[mark] = struct{}{}
		}
	}
	return union
}

// buildRow creates the joined row of one mark.
func buildRow(mark string, sources []Source, attrColumns []string, verdict bool) Row {
	row := Row{
		Mark:       mark,
		Quantities: make([]*int, len(sources)),
	}

	for i, src := range sources {
		if n, ok := src.Quantity(mark); ok {
			row.Quantities[i] = &n
		}
	}

	// The first table that has a value for an attribute provides it.
	if len(attrColumns) > 0 {
		attrs := make(map[string]string, len(attrColumns))
		for _, src := range sources {
			for name, value := range src.Attributes(mark) {
				if _, set := attrs[name]; !set && value != "" {
					attrs[name] = value
				}
			}
		}
		if len(attrs) > 0 {
			row.Attributes = attrs
		}
	}

	if verdict {
		row.Equal = allEqual(row.Quantities)
	}
	return row
}

// allEqual compares every quantity with the first; an absent one is unequal.
func allEqual(quantities []*int) bool {
	first := quantities[0]
	if first == nil {
		return false
	}
	for _, q := range quantities[1:] {
		if q == nil || *q != *first {
			return false
		}
	}
	return true
}

// columnNames returns the source names, suffixing repeats so each column
// stays addressable after the join.
func columnNames(sources []Source) []string {
	seen := make(map[string]int, len(sources))
	names := make([]string, len(sources))
	for i, src := range sources {
		name := src.Name()
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s (%d)", name, n)
		}
		names[i] = name
	}
	return names
}

func attributeColumns(sources []Source) []string {
	var cols []string
	seen := make(map[string]struct{})
	for _, src := range sources {
		for _, name := range src.AttributeColumns() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			cols = append(cols, name)
		}
	}
	return cols
}
