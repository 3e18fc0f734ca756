package ifc

import (
	"errors"
	"fmt"
	"strings"

	"rebar-check/feature/schedule"

	"go.uber.org/zap"
)

// ConflictPolicy decides what happens when elements sharing a mark disagree on
// grade, size or shape. Quantities are summed under every policy that proceeds.
type ConflictPolicy int

const (
	// ConflictWarnKeepFirst keeps the first element's attributes and reports a warning.
	ConflictWarnKeepFirst ConflictPolicy = iota
	// ConflictWarnOverwrite keeps the later element's attributes and reports a warning.
	ConflictWarnOverwrite
	// ConflictFail aborts the file with a *ConflictError.
	ConflictFail
)

func (p ConflictPolicy) String() string {
	switch p {
	case ConflictWarnKeepFirst:
		return "warn"
	case ConflictWarnOverwrite:
		return "overwrite"
	case ConflictFail:
		return "fail"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseConflictPolicy parses "warn" (alias "keep-first"), "overwrite" or "fail".
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "keep-first":
		return ConflictWarnKeepFirst, nil
	case "overwrite":
		return ConflictWarnOverwrite, nil
	case "fail":
		return ConflictFail, nil
	default:
		return 0, fmt.Errorf("unknown conflict policy %q (want warn, overwrite or fail)", s)
	}
}

// Conflict describes two elements with the same mark and different attributes.
type Conflict struct {
	Mark string `json:"mark"`
	// Existing holds the attributes merged so far.
	Existing Attributes `json:"existing"`
	// Incoming holds the attributes of the element being merged.
	Incoming Attributes `json:"incoming"`
}

func (c Conflict) String() string {
	return fmt.Sprintf("mark %s has conflicting values: %s, %s", c.Mark, c.Existing, c.Incoming)
}

// ConflictError is returned under ConflictFail.
type ConflictError struct {
	Source string
	Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Conflict)
}

// Skipped describes an element that yielded no record.
type Skipped struct {
	EntityID int    `json:"entity_id"`
	GlobalID string `json:"global_id"`
	Reason   string `json:"reason"`
}

// Options configures the resolver.
type Options struct {
	// Mapping is the user's property mapping. The zero value means the default preset.
	Mapping Mapping
	// Policy handles attribute conflicts between elements sharing a mark.
	Policy ConflictPolicy
	// Logger receives skip and conflict warnings. Nil disables logging.
	Logger *zap.Logger
}

// Result is the outcome of resolving one model.
type Result struct {
	// Table holds one row per distinct mark with the summed quantity and attributes.
	Table *schedule.Table
	// Records holds the merged records in first-seen order.
	Records []Record
	// Vendor is the detected authoring application family.
	Vendor Vendor
	// Mapping is the mapping that was applied.
	Mapping Mapping
	// Elements is the number of reinforcing bar elements in the model.
	Elements int
	// Skipped lists elements that yielded no record.
	Skipped []Skipped
	// Conflicts lists attribute conflicts that were resolved by the policy.
	Conflicts []Conflict
}

// Parse reads an IFC file and resolves its reinforcing bars into a table.
func Parse(data []byte, source string, opts Options) (*Result, error) {
	model, err := ReadModel(data)
	if err != nil {
		perr := &schedule.ParseError{Source: source, Parser: schedule.ParserIFC, Err: err}
		var serr *SyntaxError
		if errors.As(err, &serr) {
			perr.Line = serr.Line
		}
		return nil, perr
	}
	return Resolve(model, source, opts)
}

// Resolve extracts and merges the reinforcing bar records of a parsed model.
func Resolve(model *Model, source string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("source", source))

	vendor := DetectVendor(model)
	mapping := SelectMapping(vendor, opts.Mapping)

	extractor, err := NewExtractor(vendor, mapping)
	if err != nil {
		return nil, &schedule.ParseError{Source: source, Parser: schedule.ParserIFC, Err: err}
	}

	res := &Result{
		Vendor:  vendor,
		Mapping: mapping,
	}

	index := newPsetIndex(model)
	merged := make(map[string]int)

	for _, bar := range model.ByType(TypeReinforcingBar) {
		res.Elements++

		rec, err := extractor.Extract(index.For(bar.ID))
		if err != nil {
			skip := Skipped{EntityID: bar.ID, GlobalID: bar.Text(0), Reason: err.Error()}
			res.Skipped = append(res.Skipped, skip)
			log.Debug("Skipping reinforcing bar",
				zap.Int("entity", skip.EntityID),
				zap.String("global_id", skip.GlobalID),
				zap.String("reason", skip.Reason),
			)
			continue
		}

		i, seen := merged[rec.Mark]
		if !seen {
			merged[rec.Mark] = len(res.Records)
			res.Records = append(res.Records, rec)
			continue
		}

		existing := &res.Records[i]
		if existing.Attributes() != rec.Attributes() {
			conflict := Conflict{Mark: rec.Mark, Existing: existing.Attributes(), Incoming: rec.Attributes()}
			if opts.Policy == ConflictFail {
				return nil, &ConflictError{Source: source, Conflict: conflict}
			}
			res.Conflicts = append(res.Conflicts, conflict)
			log.Warn("Conflicting attributes for mark",
				zap.String("mark", conflict.Mark),
				zap.Stringer("existing", conflict.Existing),
				zap.Stringer("incoming", conflict.Incoming),
				zap.Stringer("policy", opts.Policy),
			)
			if opts.Policy == ConflictWarnOverwrite {
				existing.Grade, existing.Size, existing.Shape = rec.Grade, rec.Size, rec.Shape
			}
		}
		existing.Quantity += rec.Quantity
	}

	if len(res.Skipped) > 0 {
		log.Warn("Reinforcing bars without usable properties",
			zap.Int("skipped", len(res.Skipped)),
			zap.Int("elements", res.Elements),
			zap.Stringer("vendor", vendor),
		)
	}

	res.Table = buildTable(source, res.Records)
	return res, nil
}

func buildTable(source string, records []Record) *schedule.Table {
	table := schedule.NewTable(source)
	table.AttributeNames = []string{schedule.GradeAttr, schedule.SizeAttr, schedule.ShapeAttr}
	for _, rec := range records {
		table.Add(rec.Mark, rec.Quantity)
		table.SetAttributes(rec.Mark, map[string]string{
			schedule.GradeAttr: rec.Grade,
			schedule.SizeAttr:  rec.Size,
			schedule.ShapeAttr: rec.Shape,
		})
	}
	return table
}
