package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-tkview/tkview/pkg/widget"
)

// renderNode dispatches on widget kind. Kinds outside the rendered set are
// recognized by the scanner and behavior stages but produce no markup yet.
func (c *Converter) renderNode(buf *bytes.Buffer, ctx *context, n *widget.Node, indent int) {
	switch {
	case n.Kind.IsWindow():
		c.renderWindow(buf, ctx, n, indent)
	case n.Kind == widget.KindLabel:
		c.renderLeaf(buf, ctx, n, "tk-label", indent)
	case n.Kind == widget.KindButton:
		c.renderLeaf(buf, ctx, n, "tk-button", indent)
	}
}

// renderWindow emits a title bar plus a content region holding the children.
func (c *Converter) renderWindow(buf *bytes.Buffer, ctx *context, n *widget.Node, indent int) {
	openTag(buf, indent, "div", "tk-window", ctx.id(), c.windowStyle(n))

	title := ""
	if v, ok := n.Props.Get("title"); ok {
		title = v.Text()
	}
	writeLine(buf, indent+1, `<div class="tk-titlebar">`+html.EscapeString(title)+`</div>`)

	contentClass := "tk-content"
	contentStyle := ""
	children := n.Children
	if n.Meta.GridContainer {
		contentClass += " tk-grid"
		contentStyle = gridTemplateStyle(n)
		children = sortGridChildren(children)
	}
	openTag(buf, indent+1, "div", contentClass, "", contentStyle)
	for _, child := range children {
		c.renderNode(buf, ctx, child, indent+2)
	}
	writeLine(buf, indent+1, "</div>")

	writeLine(buf, indent, "</div>")
}

// renderLeaf emits a single styled element showing the widget's text.
func (c *Converter) renderLeaf(buf *bytes.Buffer, ctx *context, n *widget.Node, class string, indent int) {
	text := ""
	if v, ok := n.Props.Get("text"); ok {
		text = v.Text()
	}
	style := c.leafStyle(n)

	var sb strings.Builder
	sb.WriteString(`<div class="` + class + `" id="` + ctx.id() + `"`)
	if style != "" {
		sb.WriteString(` style="` + html.EscapeString(style) + `"`)
	}
	sb.WriteString(">" + html.EscapeString(text) + "</div>")
	writeLine(buf, indent, sb.String())
}

// sortGridChildren orders children ascending by (row, column), keeping
// source order for ties. The input slice is not modified.
func sortGridChildren(children []*widget.Node) []*widget.Node {
	sorted := make([]*widget.Node, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, ci := gridPos(sorted[i])
		rj, cj := gridPos(sorted[j])
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return sorted
}

func gridPos(n *widget.Node) (row, col int) {
	return layoutInt(n, "row", 0), layoutInt(n, "column", 0)
}

// gridTemplateStyle sizes a grid content region from the extents the
// behavior engine tracked on the parent.
func gridTemplateStyle(n *widget.Node) string {
	rows, cols := n.Meta.GridRows, n.Meta.GridCols
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return fmt.Sprintf("grid-template-rows: repeat(%d, auto); grid-template-columns: repeat(%d, auto)", rows, cols)
}

// openTag emits an opening tag. Style values can carry source text (color
// names, for one), so they are escaped like element text.
func openTag(buf *bytes.Buffer, indent int, tag, class, id, style string) {
	var sb strings.Builder
	sb.WriteString("<" + tag + ` class="` + class + `"`)
	if id != "" {
		sb.WriteString(` id="` + id + `"`)
	}
	if style != "" {
		sb.WriteString(` style="` + html.EscapeString(style) + `"`)
	}
	sb.WriteString(">")
	writeLine(buf, indent, sb.String())
}

func writeLine(buf *bytes.Buffer, indent int, line string) {
	for i := 0; i < indent; i++ {
		buf.WriteString("  ")
	}
	buf.WriteString(line)
	buf.WriteString("\n")
}
