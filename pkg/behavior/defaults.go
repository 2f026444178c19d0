package behavior

import "github.com/go-tkview/tkview/pkg/widget"

// stylePair is one defaultable visual property.
type styleDefault struct {
	key   string
	alias string // short-form spelling that also counts as explicit
	value widget.Value
}

// kindStyleDefaults maps widget kind to the relief, border, and background a
// real Tk widget would show without configuration.
var kindStyleDefaults = map[widget.Kind][]styleDefault{
	widget.KindWindow: {
		{key: "background", alias: "bg", value: widget.Str("#f0f0f0")},
	},
	widget.KindToplevel: {
		{key: "background", alias: "bg", value: widget.Str("#f0f0f0")},
	},
	widget.KindFrame: {
		{key: "relief", value: widget.Str("flat")},
		{key: "background", alias: "bg", value: widget.Str("#f0f0f0")},
	},
	widget.KindLabelFrame: {
		{key: "background", alias: "bg", value: widget.Str("#f0f0f0")},
	},
	widget.KindLabel: {
		{key: "relief", value: widget.Str("flat")},
		{key: "background", alias: "bg", value: widget.Str("#f0f0f0")},
	},
	widget.KindButton: {
		{key: "relief", value: widget.Str("raised")},
		{key: "borderwidth", alias: "bd", value: widget.Int(2)},
		{key: "background", alias: "bg", value: widget.Str("#e1e1e1")},
	},
	widget.KindCheckbutton: {
		{key: "background", alias: "bg", value: widget.Str("#f0f0f0")},
	},
	widget.KindRadiobutton: {
		{key: "background", alias: "bg", value: widget.Str("#f0f0f0")},
	},
	widget.KindEntry: {
		{key: "relief", value: widget.Str("sunken")},
		{key: "borderwidth", alias: "bd", value: widget.Int(1)},
		{key: "background", alias: "bg", value: widget.Str("#ffffff")},
	},
	widget.KindText: {
		{key: "relief", value: widget.Str("sunken")},
		{key: "borderwidth", alias: "bd", value: widget.Int(1)},
		{key: "background", alias: "bg", value: widget.Str("#ffffff")},
	},
	widget.KindListbox: {
		{key: "relief", value: widget.Str("sunken")},
		{key: "borderwidth", alias: "bd", value: widget.Int(1)},
		{key: "background", alias: "bg", value: widget.Str("#ffffff")},
	},
	widget.KindCanvas: {
		{key: "background", alias: "bg", value: widget.Str("#f0f0f0")},
	},
}

// styleDefaults fills missing relief/border/background properties from the
// fixed per-kind table. Explicit values, including short-form aliases, are
// left untouched.
func (e *engine) styleDefaults() {
	e.walk(func(n *widget.Node) {
		for _, d := range kindStyleDefaults[n.Kind] {
			if n.Props.Has(d.key) {
				continue
			}
			if d.alias != "" && n.Props.Has(d.alias) {
				continue
			}
			n.Props.Set(d.key, d.value)
		}
	})
}
