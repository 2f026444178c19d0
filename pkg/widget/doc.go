// Package widget defines the reconstructed UI tree shared by all pipeline
// stages: the scanner produces it, the behavior engine annotates a clone of
// it, and the renderer walks it.
//
// A [Node] is a single container or leaf widget. Property values carry an
// explicit type tag ([Value]) fixed at scan time; property bags ([Props])
// preserve insertion order so output is deterministic.
package widget
