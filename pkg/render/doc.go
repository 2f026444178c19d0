// Package render translates a behavior-annotated widget tree into an HTML
// fragment and a stylesheet.
//
// A [Converter] owns the theme and a per-conversion element id counter; the
// counter resets on every Convert call so repeated conversions of the same
// source produce identical output. Rendering dispatches on widget kind
// through a closed set: windows get a title bar and a content region, labels
// and buttons render as styled leaves, and every other kind is recognized
// upstream but has no visual stage yet. A conversion never fails outright;
// internal faults degrade to a fallback fragment plus diagnostics.
package render
