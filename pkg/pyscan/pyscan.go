package pyscan

import (
	"fmt"
	"strings"

	"github.com/go-tkview/tkview/pkg/widget"
)

// Result is the outcome of a scan. Parse always returns a usable (possibly
// empty) forest; HasErrors is only set by an unexpected internal fault, never
// by unrecognized source lines.
type Result struct {
	Widgets   []*widget.Node // root nodes in encounter order
	Imports   []string       // matched import lines, verbatim
	HasErrors bool
	Errors    []string
}

// Parse scans source text and returns the reconstructed widget forest.
func Parse(source string) (res *Result) {
	res = &Result{}

	defer func() {
		if r := recover(); r != nil {
			res.HasErrors = true
			res.Errors = append(res.Errors, fmt.Sprintf("internal scan fault: %v", r))
			if res.Widgets == nil {
				res.Widgets = []*widget.Node{}
			}
		}
	}()

	s := newScanner()
	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if isImportLine(trimmed) {
			res.Imports = append(res.Imports, trimmed)
			continue
		}
		s.scanLine(trimmed, i+1)
	}

	res.Widgets = s.assemble()
	return res
}

// scanner accumulates nodes during the statement-classification pass.
type scanner struct {
	nodes  []*widget.Node          // every constructed node, in source order
	byName map[string]*widget.Node // last writer wins for a given name
}

func newScanner() *scanner {
	return &scanner{byName: make(map[string]*widget.Node)}
}

// scanLine classifies a single trimmed source line. Statement shapes are
// tried in priority order and the first match wins; a line matching nothing
// is dropped without diagnostics.
func (s *scanner) scanLine(line string, lineNum int) {
	if s.scanConstruction(line, lineNum) {
		return
	}
	if s.scanMethodCall(line) {
		return
	}
	s.scanSubscript(line)
}

// scanConstruction handles `name = [mod.]Kind(args)` and bare constructor
// calls, optionally followed by a chained layout call on the same line.
func (s *scanner) scanConstruction(line string, lineNum int) bool {
	c, ok := matchConstruction(line)
	if !ok {
		return false
	}
	kind, ok := widget.KindFromName(c.kindName)
	if !ok {
		// Syntactically a constructor, but not an allow-listed widget.
		return false
	}

	node := widget.NewNode(kind)
	node.Name = c.name
	node.SourceLine = lineNum

	positional, props := parseArgs(c.args)
	if len(positional) > 0 {
		node.ParentRef = positional[0]
	}
	node.Props.Merge(props)

	if c.chainMethod != "" {
		if mgr, ok := widget.LayoutManagerFromName(c.chainMethod); ok {
			node.Layout = mgr
			_, opts := parseArgs(c.chainArgs)
			node.LayoutOpts.Merge(opts)
		}
	}

	s.nodes = append(s.nodes, node)
	if node.Name != "" {
		s.byName[node.Name] = node
	}
	return true
}

// scanMethodCall handles `name.method(args)` statements: geometry-manager
// calls, config merges, and the window setters title and geometry. A call on
// a name that is not registered yet is silently dropped.
func (s *scanner) scanMethodCall(line string) bool {
	call, ok := matchMethodCall(line)
	if !ok {
		return false
	}

	if mgr, isLayout := widget.LayoutManagerFromName(call.method); isLayout {
		node, known := s.byName[call.receiver]
		if !known {
			return true // forward reference, dropped
		}
		node.Layout = mgr
		_, opts := parseArgs(call.args)
		node.LayoutOpts.Merge(opts)
		return true
	}

	switch call.method {
	case "config", "configure":
		node, known := s.byName[call.receiver]
		if !known {
			return true
		}
		_, props := parseArgs(call.args)
		node.Props.Merge(props)
		return true
	case "title":
		node, known := s.byName[call.receiver]
		if !known {
			return true
		}
		positional, _ := parseArgs(call.args)
		if len(positional) == 1 {
			node.Props.Set("title", parseLiteral(positional[0]))
		}
		return true
	case "geometry":
		node, known := s.byName[call.receiver]
		if !known {
			return true
		}
		positional, _ := parseArgs(call.args)
		if len(positional) == 1 {
			if w, h, ok := parseGeometry(parseLiteral(positional[0])); ok {
				node.Props.Set("width", widget.Int(w))
				node.Props.Set("height", widget.Int(h))
			}
		}
		return true
	}

	// Unrecognized method (mainloop, bind, grid_columnconfigure, ...).
	return true
}

// scanSubscript handles `name['key'] = value`.
func (s *scanner) scanSubscript(line string) bool {
	sub, ok := matchSubscript(line)
	if !ok {
		return false
	}
	node, known := s.byName[sub.receiver]
	if !known {
		return true
	}
	node.Props.Set(sub.key, parseLiteral(sub.value))
	return true
}

// assemble attaches every node with a resolvable parent reference as the
// last child of that parent. Nodes without a reference, and orphans whose
// reference never resolved, become roots in original encounter order. A
// reference that would close a cycle (the named parent already sits in the
// node's own subtree) demotes the node to a root instead.
func (s *scanner) assemble() []*widget.Node {
	roots := []*widget.Node{}
	for _, node := range s.nodes {
		if node.ParentRef != "" {
			if parent, ok := s.byName[node.ParentRef]; ok && !inSubtree(node, parent) {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// inSubtree reports whether target is root itself or one of its descendants.
func inSubtree(root, target *widget.Node) bool {
	found := false
	root.Walk(func(n *widget.Node) {
		if n == target {
			found = true
		}
	})
	return found
}

// parseGeometry splits a Tk geometry string ("400x300") into a pixel size.
func parseGeometry(v widget.Value) (w, h int, ok bool) {
	text, isStr := v.AsString()
	if !isStr {
		return 0, 0, false
	}
	parts := strings.SplitN(text, "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, ok1 := atoiStrict(parts[0])
	// Trailing "+x+y" position offsets are ignored.
	height := parts[1]
	if i := strings.IndexAny(height, "+-"); i > 0 {
		height = height[:i]
	}
	h, ok2 := atoiStrict(height)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return w, h, true
}
