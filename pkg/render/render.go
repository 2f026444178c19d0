package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-tkview/tkview/pkg/behavior"
	"github.com/go-tkview/tkview/pkg/theme"
	"github.com/go-tkview/tkview/pkg/widget"
)

// Result is the outcome of a conversion. Behavior warnings are folded into
// Errors but do not set HasErrors; only an internal fault does.
type Result struct {
	HTML      string
	CSS       string
	HasErrors bool
	Errors    []string
}

// Converter renders widget forests against a fixed theme. A Converter is
// cheap and stateless between calls; the element id counter lives in a
// per-conversion context, never in the Converter or a package global.
type Converter struct {
	theme theme.Theme
}

// NewConverter returns a Converter using the given theme.
func NewConverter(t theme.Theme) *Converter {
	return &Converter{theme: t}
}

// Convert runs the behavior engine over forest and renders the annotated
// tree. It always returns a usable markup/stylesheet pair: on an internal
// fault the markup degrades to an error fragment and HasErrors is set.
func (c *Converter) Convert(forest []*widget.Node) (res *Result) {
	res = &Result{CSS: c.Stylesheet()}

	defer func() {
		if r := recover(); r != nil {
			res.HasErrors = true
			res.Errors = append(res.Errors, fmt.Sprintf("internal render fault: %v", r))
			res.HTML = errorFragment
			res.CSS = c.Stylesheet()
		}
	}()

	applied := behavior.Apply(forest)
	for _, w := range applied.Warnings {
		res.Errors = append(res.Errors, "behavior warning: "+w)
	}

	ctx := &context{}
	var buf bytes.Buffer
	for _, root := range applied.Widgets {
		c.renderNode(&buf, ctx, root, 0)
	}
	res.HTML = buf.String()
	return res
}

// errorFragment replaces the markup when rendering faults internally.
const errorFragment = `<div class="tk-error">preview unavailable</div>` + "\n"

// context carries per-conversion rendering state.
type context struct {
	nextID int
}

// id returns the next element identifier for this conversion.
func (ctx *context) id() string {
	id := "tk-el-" + strconv.Itoa(ctx.nextID)
	ctx.nextID++
	return id
}

// Stylesheet renders the static preview stylesheet from the theme. Per-widget
// geometry travels as inline styles on the markup instead.
func (c *Converter) Stylesheet() string {
	t := c.theme
	var b bytes.Buffer
	fmt.Fprintf(&b, `.tk-preview {
  font-family: %s;
  font-size: %dpx;
  color: %s;
  background: %s;
  padding: 16px;
}
`, t.FontFamily, t.FontSize, t.WidgetForeground, t.CanvasBackground)
	fmt.Fprintf(&b, `.tk-window {
  background: %s;
  border: 1px solid %s;
  border-radius: 6px;
  box-shadow: 0 8px 24px rgba(0, 0, 0, 0.4);
  overflow: hidden;
  margin-bottom: 16px;
}
`, t.WindowBackground, t.WindowBorder)
	fmt.Fprintf(&b, `.tk-titlebar {
  background: %s;
  color: %s;
  padding: 4px 8px;
  font-weight: 600;
  border-bottom: 1px solid %s;
}
`, t.TitlebarBackground, t.TitlebarForeground, t.WindowBorder)
	b.WriteString(`.tk-content {
  position: relative;
  padding: 8px;
}
.tk-content.tk-grid {
  display: grid;
  gap: 2px;
}
.tk-label {
  display: block;
  padding: 2px 4px;
}
.tk-button {
  display: block;
  padding: 3px 10px;
  text-align: center;
  border: 1px solid #8a8a8a;
  border-radius: 3px;
}
.tk-error {
  color: #cc3333;
  font-style: italic;
  padding: 8px;
}
`)
	return b.String()
}
