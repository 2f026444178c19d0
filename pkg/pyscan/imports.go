package pyscan

import "regexp"

// tkinterImport matches the import spellings that make a file eligible for
// preview: the Python 3 module, its submodules, and the Python 2 name.
var tkinterImport = regexp.MustCompile(`(?m)^\s*(?:import\s+tkinter\b|from\s+tkinter(?:\.[A-Za-z_][A-Za-z0-9_]*)?\s+import\b|import\s+Tkinter\b|from\s+Tkinter\s+import\b)`)

// HasTkinterImport reports whether the source imports Tkinter. Collaborators
// use this to gate preview activation without running a full scan.
func HasTkinterImport(source string) bool {
	return tkinterImport.MatchString(source)
}
