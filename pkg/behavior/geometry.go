package behavior

import "github.com/go-tkview/tkview/pkg/widget"

// Pixel conversion and estimation constants. Tk sizes text widgets in
// character and row units; the preview converts with fixed multipliers.
const (
	// CharPixelWidth converts width character units to pixels.
	CharPixelWidth = 8
	// RowPixelHeight converts height row units to pixels.
	RowPixelHeight = 18

	minTextWidth      = 60
	defaultLeafHeight = 24

	minWindowWidth   = 200
	minWindowHeight  = 150
	windowPadWidth   = 40
	windowPadHeight  = 60

	labelFrameBorderWidth = 2
)

// defaultLeafSizes fixes pixel sizes for non-text leaf kinds.
var defaultLeafSizes = map[widget.Kind]struct{ W, H int }{
	widget.KindEntry:     {W: 160, H: 24},
	widget.KindText:      {W: 240, H: 96},
	widget.KindListbox:   {W: 160, H: 80},
	widget.KindCanvas:    {W: 200, H: 100},
	widget.KindScale:     {W: 120, H: 32},
	widget.KindScrollbar: {W: 16, H: 100},
	widget.KindSpinbox:   {W: 100, H: 24},
}

// geometryEstimates fills Meta.EstWidth/EstHeight for leaves that lack
// explicit sizes. Explicit property values are never overwritten.
func (e *engine) geometryEstimates() {
	e.walk(func(n *widget.Node) {
		if n.Kind.HasText() {
			if !n.Props.Has("width") {
				n.Meta.EstWidth = estimateTextWidth(n)
			}
			if !n.Props.Has("height") {
				n.Meta.EstHeight = defaultLeafHeight
			}
			return
		}
		if size, ok := defaultLeafSizes[n.Kind]; ok {
			if !n.Props.Has("width") {
				n.Meta.EstWidth = size.W
			}
			if !n.Props.Has("height") {
				n.Meta.EstHeight = size.H
			}
		}
	})
}

// estimateTextWidth sizes a text-bearing leaf from its display text.
func estimateTextWidth(n *widget.Node) int {
	text := ""
	if v, ok := n.Props.Get("text"); ok {
		text = v.Text()
	}
	w := len(text) * CharPixelWidth
	if w < minTextWidth {
		w = minTextWidth
	}
	return w
}

// estimateWindowSize derives a plausible window size from the immediate
// children. Children packed top/bottom stack vertically: their heights
// accumulate and the widest child sets the width floor. Children packed
// left/right do the converse. Children under grid or place only raise the
// observed maxima. Children with no manager yet count as packed top, the
// manager the layout pass would assign them, so the estimate is the same
// whether it runs before or after that pass.
func estimateWindowSize(n *widget.Node) (int, int) {
	if len(n.Children) == 0 {
		return minWindowWidth, minWindowHeight
	}

	var accWidth, accHeight, maxWidth, maxHeight int
	for _, c := range n.Children {
		cw, ch := childPixelSize(c)
		if c.Layout == widget.LayoutPack || c.Layout == widget.LayoutNone {
			switch packSide(c) {
			case "left", "right":
				accWidth += cw
				if ch > maxHeight {
					maxHeight = ch
				}
			default: // top, bottom, and anything not yet normalized
				accHeight += ch
				if cw > maxWidth {
					maxWidth = cw
				}
			}
			continue
		}
		if cw > maxWidth {
			maxWidth = cw
		}
		if ch > maxHeight {
			maxHeight = ch
		}
	}

	width := accWidth
	if maxWidth > width {
		width = maxWidth
	}
	height := accHeight
	if maxHeight > height {
		height = maxHeight
	}

	width += windowPadWidth
	height += windowPadHeight
	if width < minWindowWidth {
		width = minWindowWidth
	}
	if height < minWindowHeight {
		height = minWindowHeight
	}
	return width, height
}

func packSide(n *widget.Node) string {
	if v, ok := n.LayoutOpts.Get("side"); ok {
		return v.Text()
	}
	return "top"
}

// childPixelSize resolves a child's footprint for window estimation:
// explicit character/row units converted to pixels when present, otherwise
// the same kind heuristics geometryEstimates uses.
func childPixelSize(n *widget.Node) (int, int) {
	var w, h int
	if v, ok := n.Props.Get("width"); ok {
		if units, ok := v.AsInt(); ok {
			w = units * CharPixelWidth
		}
	} else if n.Kind.HasText() {
		w = estimateTextWidth(n)
	} else if size, ok := defaultLeafSizes[n.Kind]; ok {
		w = size.W
	}

	if v, ok := n.Props.Get("height"); ok {
		if units, ok := v.AsInt(); ok {
			h = units * RowPixelHeight
		}
	} else if n.Kind.HasText() {
		h = defaultLeafHeight
	} else if size, ok := defaultLeafSizes[n.Kind]; ok {
		h = size.H
	}
	return w, h
}
