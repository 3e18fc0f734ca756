// Package reconcile joins bar schedules on their mark (Littera) and decides,
// per mark, whether the schedules agree.
//
// # Engine
//
// Reconcile builds the union of marks over all sources, resolves each source's
// quantity for every mark (absent values stay nil) and sorts the rows by mark in
// plain string order, so "10" sorts before "2".
//
// With exactly two sources every row carries a verdict: the mark exists in both
// tables with the same total. A single source produces a one-column result with
// no verdict.
//
// # Export
//
// WriteCSV renders a result as
//
//	Littera,left.csv,right.xml,Lika
//	1,4,4,True
//	2,,9,False
//
// Sources are any type implementing Source; schedule.Table is the one used by
// the parsers.
package reconcile
