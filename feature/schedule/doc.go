// Package schedule reduces uploaded bar schedules to canonical quantity tables.
//
// Every supported export format converges on the same shape: a Table holding one
// row per bar mark ("Littera") with the total number of bars for that mark in the
// file. The table's Source names the uploaded file and becomes the quantity column
// once two tables are reconciled.
//
// # Formats
//
//   - CSV: semicolon separated bending lists. Column 1 is the mark, column 2 the
//     group size. Rows whose first field is not a positive integer are headers or
//     totals and are skipped. Group sizes for the same mark are summed.
//   - XML: B2aPageRow blocks carrying Litt, NoGrps and NoStpGrp. The total for a
//     mark is NoGrps * NoStpGrp and a later row for the same mark replaces the
//     earlier total.
//   - IFC: handled by the ifc subpackage, which produces the same Table type.
//
// # Errors
//
// A malformed file is fatal for that file only. Parsers return a *ParseError that
// names the file and the parser so the caller can tell the user which upload failed.
//
// # Usage
//
//	table, err := schedule.ParseCSV(data, "tekla.csv")
//	if err != nil {
//	    var perr *schedule.ParseError
//	    if errors.As(err, &perr) {
//	        log.Printf("%s (%s parser) failed", perr.Source, perr.Parser)
//	    }
//	}
package schedule
