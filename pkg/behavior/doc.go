// Package behavior emulates Tk geometry-manager and widget-default rules on
// a scanned widget tree, without executing any user code.
//
// [Apply] runs a fixed sequence of rule passes over a deep copy of the input
// forest: root-window defaults, container defaults, layout-manager inference
// and normalization, geometry estimation, default style properties, and a
// final non-mutating diagnostics pass. Explicit values from the source are
// never overwritten; estimates land in each node's Meta block. Applying the
// rules to their own output changes nothing.
package behavior
