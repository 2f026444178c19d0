package behavior

import (
	"fmt"

	"github.com/go-tkview/tkview/pkg/widget"
)

// Result is the outcome of a behavior run. Widgets is a deep clone of the
// input forest with annotations applied; the caller's forest is untouched.
type Result struct {
	Widgets      []*widget.Node
	AppliedRules []string // human-readable descriptions of rules that fired
	Warnings     []string // recoverable oddities, forest still usable
}

// Apply runs every behavior rule over a structural copy of forest.
func Apply(forest []*widget.Node) *Result {
	e := &engine{res: &Result{Widgets: widget.CloneForest(forest)}}
	e.rootWindowDefaults()
	e.containerDefaults()
	e.layoutRules()
	e.geometryEstimates()
	e.styleDefaults()
	e.siblingDiagnostics()
	return e.res
}

type engine struct {
	res *Result
}

func (e *engine) rulef(format string, args ...any) {
	e.res.AppliedRules = append(e.res.AppliedRules, fmt.Sprintf(format, args...))
}

func (e *engine) warnf(format string, args ...any) {
	e.res.Warnings = append(e.res.Warnings, fmt.Sprintf(format, args...))
}

// walk visits every node of the result forest in depth-first source order.
func (e *engine) walk(fn func(*widget.Node)) {
	for _, root := range e.res.Widgets {
		root.Walk(fn)
	}
}

// describe names a node for rule and warning messages.
func describe(n *widget.Node) string {
	if n.Name != "" {
		return fmt.Sprintf("%s %q", n.Kind, n.Name)
	}
	return fmt.Sprintf("unnamed %s (line %d)", n.Kind, n.SourceLine)
}

// rootWindowDefaults flags window nodes as roots, estimates a size when the
// source sets neither dimension, and fills in a default title.
func (e *engine) rootWindowDefaults() {
	e.walk(func(n *widget.Node) {
		if !n.Kind.IsWindow() {
			return
		}
		n.Meta.IsRoot = true

		if !n.Props.Has("width") && !n.Props.Has("height") {
			w, h := estimateWindowSize(n)
			if n.Meta.EstWidth != w || n.Meta.EstHeight != h {
				n.Meta.EstWidth = w
				n.Meta.EstHeight = h
				e.rulef("%s: estimated window size %dx%d", describe(n), w, h)
			}
		}

		if !n.Props.Has("title") {
			n.Props.Set("title", widget.Str(defaultTitle(n.Kind)))
			e.rulef("%s: default title %q", describe(n), defaultTitle(n.Kind))
		}
	})
}

func defaultTitle(k widget.Kind) string {
	if k == widget.KindToplevel {
		return "toplevel"
	}
	return "tk"
}

// containerDefaults applies frame and labeled-frame defaults: auto-sizing,
// the groove relief and border width of captioned frames, and the default
// padding flag for containers that hold children.
func (e *engine) containerDefaults() {
	e.walk(func(n *widget.Node) {
		switch n.Kind {
		case widget.KindFrame, widget.KindLabelFrame:
			if !n.Props.Has("width") && !n.Props.Has("height") && !n.Meta.AutoSize {
				n.Meta.AutoSize = true
				e.rulef("%s: auto-sizes to content", describe(n))
			}
		}

		if n.Kind == widget.KindLabelFrame && !n.Props.Has("relief") {
			n.Props.Set("relief", widget.Str("groove"))
			bw := widget.Int(labelFrameBorderWidth)
			if short, ok := n.Props.Get("bd"); ok {
				bw = short
			}
			if !n.Props.Has("borderwidth") {
				n.Props.Set("borderwidth", bw)
			}
			e.rulef("%s: default groove relief", describe(n))
		}

		if n.Kind.IsContainer() && len(n.Children) > 0 &&
			!n.Props.Has("padx") && !n.Props.Has("pady") && !n.Meta.DefaultPad {
			n.Meta.DefaultPad = true
			e.rulef("%s: default container padding", describe(n))
		}
	})
}
