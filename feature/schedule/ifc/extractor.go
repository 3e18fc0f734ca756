package ifc

import (
	"fmt"
	"strings"

	"rebar-check/core/utils"
)

// Record is the normalized attribute record of one reinforcing bar element.
type Record struct {
	Mark     string `json:"mark"`
	Quantity int    `json:"quantity"`
	Grade    string `json:"grade"`
	Size     string `json:"size"`
	Shape    string `json:"shape"`
}

// Attributes is the part of a record that must agree between merged elements.
type Attributes struct {
	Grade string `json:"grade"`
	Size  string `json:"size"`
	Shape string `json:"shape"`
}

// Attributes returns the non-quantity attributes of r.
func (r Record) Attributes() Attributes {
	return Attributes{Grade: r.Grade, Size: r.Size, Shape: r.Shape}
}

func (a Attributes) String() string {
	return fmt.Sprintf("{grade=%s size=%s shape=%s}", a.Grade, a.Size, a.Shape)
}

// Extractor builds records from property sets using one vendor convention.
type Extractor struct {
	vendor Vendor
	paths  paths
}

// NewExtractor prepares an extractor for vendor with the given mapping.
func NewExtractor(vendor Vendor, m Mapping) (*Extractor, error) {
	p, err := m.resolve()
	if err != nil {
		return nil, fmt.Errorf("%s mapping: %w", vendor, err)
	}
	return &Extractor{vendor: vendor, paths: p}, nil
}

// Vendor returns the convention the extractor was built for.
func (x *Extractor) Vendor() Vendor {
	return x.vendor
}

// Extract reads one record. It fails when a mapped property is absent, the mark
// is empty or the quantity is not a whole number.
func (x *Extractor) Extract(psets PropertySets) (Record, error) {
	mark, err := x.text(psets, x.paths.mark, true)
	if err != nil {
		return Record{}, err
	}

	raw, ok := psets.Get(x.paths.quantity)
	if !ok || raw == nil {
		return Record{}, fmt.Errorf("missing %s", x.paths.quantity)
	}
	quantity, err := utils.ToInt(raw)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", x.paths.quantity, err)
	}

	rec := Record{Mark: mark, Quantity: quantity}
	if rec.Grade, err = x.text(psets, x.paths.material, false); err != nil {
		return Record{}, err
	}
	if rec.Size, err = x.text(psets, x.paths.diameter, false); err != nil {
		return Record{}, err
	}
	if rec.Shape, err = x.text(psets, x.paths.shape, false); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// text reads a property as text. An absent property is an error; an empty
// value is only an error when required.
func (x *Extractor) text(psets PropertySets, path PropertyPath, required bool) (string, error) {
	raw, ok := psets.Get(path)
	if !ok || (raw == nil && required) {
		return "", fmt.Errorf("missing %s", path)
	}
	if raw == nil {
		return "", nil
	}
	s := strings.TrimSpace(utils.ToString(raw))
	if s == "" && required {
		return "", fmt.Errorf("empty %s", path)
	}
	return s, nil
}
