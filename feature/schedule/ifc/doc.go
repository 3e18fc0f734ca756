// Package ifc resolves reinforcing bar quantities from IFC models.
//
// The package reads the ISO 10303-21 (STEP) exchange format directly, indexes the
// property sets attached to every IfcReinforcingBar and extracts an attribute record
// (mark, quantity, grade, size, shape) per element through a configurable Mapping.
//
// # Vendor conventions
//
// Tekla Structures and Autodesk Revit name reinforcement properties differently.
// The authoring application declared in IfcApplication selects one of the two
// Vendor presets. A mapping the user has changed from the default always wins.
//
// # Merging
//
// Elements sharing a mark are merged: quantities are summed and the remaining
// attributes are expected to agree. A disagreement is handled by ConflictPolicy:
// keep the first record and warn (default), overwrite and warn, or fail.
//
// Elements whose properties cannot be resolved are skipped and listed in
// Result.Skipped so callers can report them.
//
// # Usage
//
//	res, err := ifc.Parse(data, "model.ifc", ifc.Options{
//	    Mapping: ifc.DefaultMapping(),
//	    Policy:  ifc.ConflictWarnKeepFirst,
//	    Logger:  log,
//	})
//	fmt.Println(res.Vendor, res.Table.Len(), len(res.Skipped))
package ifc
