package render

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-tkview/tkview/pkg/behavior"
	"github.com/go-tkview/tkview/pkg/widget"
)

// windowStyle derives the inline style of a window element. Window sizes are
// already pixels, whether explicit (from a geometry call) or estimated.
func (c *Converter) windowStyle(n *widget.Node) string {
	var parts []string
	if w := propInt(n, "width", n.Meta.EstWidth); w > 0 {
		parts = append(parts, fmt.Sprintf("width: %dpx", w))
	}
	if h := propInt(n, "height", n.Meta.EstHeight); h > 0 {
		parts = append(parts, fmt.Sprintf("height: %dpx", h))
	}
	return strings.Join(parts, "; ")
}

// leafStyle derives the inline style of a rendered leaf: size, layout
// translation for its geometry manager, and pass-through colors.
func (c *Converter) leafStyle(n *widget.Node) string {
	var parts []string

	// Explicit sizes are character/row units; estimates are pixels.
	if v, ok := n.Props.Get("width"); ok {
		if units, ok := v.AsInt(); ok {
			parts = append(parts, fmt.Sprintf("width: %dpx", units*behavior.CharPixelWidth))
		}
	} else if n.Meta.EstWidth > 0 {
		parts = append(parts, fmt.Sprintf("width: %dpx", n.Meta.EstWidth))
	}
	if v, ok := n.Props.Get("height"); ok {
		if units, ok := v.AsInt(); ok {
			parts = append(parts, fmt.Sprintf("height: %dpx", units*behavior.RowPixelHeight))
		}
	}

	switch n.Layout {
	case widget.LayoutPack:
		parts = append(parts, spacingStyles(n)...)
	case widget.LayoutGrid:
		parts = append(parts, gridPlacementStyles(n)...)
		parts = append(parts, spacingStyles(n)...)
	case widget.LayoutPlace:
		parts = append(parts,
			"position: absolute",
			fmt.Sprintf("left: %dpx", layoutInt(n, "x", 0)),
			fmt.Sprintf("top: %dpx", layoutInt(n, "y", 0)))
	}

	if v, ok := firstProp(n, "fg", "foreground"); ok {
		parts = append(parts, "color: "+cssColor(v.Text()))
	}
	if v, ok := firstProp(n, "bg", "background"); ok {
		parts = append(parts, "background-color: "+cssColor(v.Text()))
	}

	return strings.Join(parts, "; ")
}

// spacingStyles translates padx/pady to outer margins and ipadx/ipady to
// inner padding, per axis.
func spacingStyles(n *widget.Node) []string {
	var parts []string
	if px := layoutInt(n, "padx", -1); px >= 0 {
		parts = append(parts, fmt.Sprintf("margin-left: %dpx; margin-right: %dpx", px, px))
	}
	if py := layoutInt(n, "pady", -1); py >= 0 {
		parts = append(parts, fmt.Sprintf("margin-top: %dpx; margin-bottom: %dpx", py, py))
	}
	if ix := layoutInt(n, "ipadx", -1); ix >= 0 {
		parts = append(parts, fmt.Sprintf("padding-left: %dpx; padding-right: %dpx", ix, ix))
	}
	if iy := layoutInt(n, "ipady", -1); iy >= 0 {
		parts = append(parts, fmt.Sprintf("padding-top: %dpx; padding-bottom: %dpx", iy, iy))
	}
	return parts
}

// gridPlacementStyles translates row/column/spans (1-based at the output
// boundary) and sticky into explicit placement and per-axis alignment.
func gridPlacementStyles(n *widget.Node) []string {
	row := layoutInt(n, "row", 0)
	col := layoutInt(n, "column", 0)
	rowspan := layoutInt(n, "rowspan", 1)
	colspan := layoutInt(n, "columnspan", 1)

	parts := []string{
		fmt.Sprintf("grid-row: %d / span %d", row+1, rowspan),
		fmt.Sprintf("grid-column: %d / span %d", col+1, colspan),
	}

	sticky := ""
	if v, ok := n.LayoutOpts.Get("sticky"); ok {
		sticky = strings.ToLower(v.Text())
	}
	parts = append(parts,
		"justify-self: "+axisAlignment(sticky, 'w', 'e'),
		"align-self: "+axisAlignment(sticky, 'n', 's'))
	return parts
}

// axisAlignment resolves one axis of a sticky value: both opposing edges
// mean stretch, a single edge aligns to it, absence aligns to the start.
func axisAlignment(sticky string, start, end byte) string {
	hasStart := strings.IndexByte(sticky, start) >= 0
	hasEnd := strings.IndexByte(sticky, end) >= 0
	switch {
	case hasStart && hasEnd:
		return "stretch"
	case hasEnd:
		return "end"
	default:
		return "start"
	}
}

// cssColor normalizes a Tk color to CSS: hex passes through, known color
// names become hex, anything else is passed along unchanged.
func cssColor(name string) string {
	if strings.HasPrefix(name, "#") {
		return name
	}
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return hexColor(c)
	}
	return name
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// propInt reads an integer property with a fallback.
func propInt(n *widget.Node, key string, fallback int) int {
	if v, ok := n.Props.Get(key); ok {
		if i, ok := v.AsInt(); ok {
			return i
		}
	}
	return fallback
}

// layoutInt reads an integer layout option with a fallback.
func layoutInt(n *widget.Node, key string, fallback int) int {
	if v, ok := n.LayoutOpts.Get(key); ok {
		if i, ok := v.AsInt(); ok {
			return i
		}
	}
	return fallback
}

// firstProp returns the first present property among keys.
func firstProp(n *widget.Node, keys ...string) (widget.Value, bool) {
	for _, k := range keys {
		if v, ok := n.Props.Get(k); ok {
			return v, true
		}
	}
	return widget.Value{}, false
}
