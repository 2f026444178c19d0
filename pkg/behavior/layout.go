package behavior

import "github.com/go-tkview/tkview/pkg/widget"

var (
	validSides = map[string]bool{"top": true, "bottom": true, "left": true, "right": true}
	validFills = map[string]bool{"none": true, "x": true, "y": true, "both": true}
)

// layoutRules infers a geometry manager for fully unmanaged sibling groups
// and normalizes the options of children that do carry one.
func (e *engine) layoutRules() {
	e.walk(func(parent *widget.Node) {
		if len(parent.Children) == 0 {
			return
		}

		// When no child has any manager, the whole group gets pack/top.
		// One inference per parent, not per individual child.
		managed := 0
		for _, c := range parent.Children {
			if c.Layout != widget.LayoutNone {
				managed++
			}
		}
		if managed == 0 {
			for _, c := range parent.Children {
				c.Layout = widget.LayoutPack
				if !c.LayoutOpts.Has("side") {
					c.LayoutOpts.Set("side", widget.Str("top"))
				}
			}
			e.rulef("%s: children default to pack side top", describe(parent))
			return
		}

		for _, c := range parent.Children {
			switch c.Layout {
			case widget.LayoutPack:
				e.normalizePack(c)
			case widget.LayoutGrid:
				e.normalizeGrid(parent, c)
			case widget.LayoutPlace:
				e.normalizePlace(c)
			}
		}
	})
}

func (e *engine) normalizePack(n *widget.Node) {
	side, ok := n.LayoutOpts.Get("side")
	if !ok {
		n.LayoutOpts.Set("side", widget.Str("top"))
	} else if !validSides[side.Text()] {
		n.LayoutOpts.Set("side", widget.Str("top"))
		e.warnf("%s: invalid pack side %q, using top", describe(n), side.Text())
	}

	if fill, ok := n.LayoutOpts.Get("fill"); ok && !validFills[fill.Text()] {
		n.LayoutOpts.Set("fill", widget.Str("none"))
		e.warnf("%s: invalid pack fill %q, using none", describe(n), fill.Text())
	}
}

func (e *engine) normalizeGrid(parent, n *widget.Node) {
	if !n.LayoutOpts.Has("row") {
		n.LayoutOpts.Set("row", widget.Int(0))
	}
	if !n.LayoutOpts.Has("column") {
		n.LayoutOpts.Set("column", widget.Int(0))
	}
	parent.Meta.GridContainer = true

	row := optInt(n.LayoutOpts, "row", 0)
	col := optInt(n.LayoutOpts, "column", 0)
	rowspan := optInt(n.LayoutOpts, "rowspan", 1)
	colspan := optInt(n.LayoutOpts, "columnspan", 1)

	// Extents only grow across the sibling set.
	if ext := row + rowspan; ext > parent.Meta.GridRows {
		parent.Meta.GridRows = ext
	}
	if ext := col + colspan; ext > parent.Meta.GridCols {
		parent.Meta.GridCols = ext
	}
}

func (e *engine) normalizePlace(n *widget.Node) {
	if !n.LayoutOpts.Has("x") {
		n.LayoutOpts.Set("x", widget.Int(0))
	}
	if !n.LayoutOpts.Has("y") {
		n.LayoutOpts.Set("y", widget.Int(0))
	}
	n.Meta.Placed = true
}

// optInt reads an integer layout option, falling back when absent or not
// numeric.
func optInt(opts *widget.Props, key string, fallback int) int {
	v, ok := opts.Get(key)
	if !ok {
		return fallback
	}
	n, ok := v.AsInt()
	if !ok {
		return fallback
	}
	return n
}

// siblingDiagnostics reports structurally inconsistent sibling groups. It
// mutates nothing.
func (e *engine) siblingDiagnostics() {
	e.walk(func(parent *widget.Node) {
		if len(parent.Children) < 2 {
			return
		}

		bare := 0
		seen := map[widget.LayoutManager]bool{}
		for _, c := range parent.Children {
			if c.Layout == widget.LayoutNone {
				bare++
			} else {
				seen[c.Layout] = true
			}
		}

		if bare > 0 && bare < len(parent.Children) {
			e.warnf("%s: %d of %d children have no layout manager", describe(parent), bare, len(parent.Children))
		}
		if len(seen) > 1 {
			e.warnf("%s: children mix %d different layout managers", describe(parent), len(seen))
		}
	})
}
