// Package pyscan extracts a widget tree from Tkinter source text without
// executing it.
//
// The scan is deliberately line-oriented pattern matching, not a Python
// parser: it does not evaluate expressions, follow control flow, or track
// multi-line statements. Lines that match no known statement shape are
// silently ignored. The entry point is [Parse]; [HasTkinterImport] is the
// standalone gate collaborators use to decide whether a file is worth
// scanning at all.
package pyscan
