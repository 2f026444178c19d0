package widget

// Kind identifies a supported widget category.
type Kind uint8

const (
	KindUnknown Kind = iota

	// Container kinds.
	KindWindow     // tk.Tk root window
	KindToplevel   // secondary window
	KindFrame      // plain container
	KindLabelFrame // container with a caption and border

	// Leaf kinds.
	KindLabel
	KindButton
	KindEntry
	KindText
	KindListbox
	KindCheckbutton
	KindRadiobutton
	KindCanvas
	KindScale
	KindScrollbar
	KindSpinbox
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindWindow:
		return "window"
	case KindToplevel:
		return "toplevel"
	case KindFrame:
		return "frame"
	case KindLabelFrame:
		return "labelframe"
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindEntry:
		return "entry"
	case KindText:
		return "text"
	case KindListbox:
		return "listbox"
	case KindCheckbutton:
		return "checkbutton"
	case KindRadiobutton:
		return "radiobutton"
	case KindCanvas:
		return "canvas"
	case KindScale:
		return "scale"
	case KindScrollbar:
		return "scrollbar"
	case KindSpinbox:
		return "spinbox"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// constructorKinds is the closed allow-list of recognized constructor names.
// A call whose callee is not listed here is ignored by the scanner even when
// it is syntactically a constructor.
var constructorKinds = map[string]Kind{
	"Tk":          KindWindow,
	"Toplevel":    KindToplevel,
	"Frame":       KindFrame,
	"LabelFrame":  KindLabelFrame,
	"Label":       KindLabel,
	"Button":      KindButton,
	"Entry":       KindEntry,
	"Text":        KindText,
	"Listbox":     KindListbox,
	"Checkbutton": KindCheckbutton,
	"Radiobutton": KindRadiobutton,
	"Canvas":      KindCanvas,
	"Scale":       KindScale,
	"Scrollbar":   KindScrollbar,
	"Spinbox":     KindSpinbox,
	"Message":     KindMessage,
}

// KindFromName maps a constructor name (without module qualifier) to a Kind.
func KindFromName(name string) (Kind, bool) {
	k, ok := constructorKinds[name]
	return k, ok
}

// IsWindow reports whether the kind is a root or secondary window.
func (k Kind) IsWindow() bool {
	return k == KindWindow || k == KindToplevel
}

// IsContainer reports whether the kind may hold children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindWindow, KindToplevel, KindFrame, KindLabelFrame:
		return true
	default:
		return false
	}
}

// HasText reports whether the kind displays its text property, which makes
// text length usable for width estimation.
func (k Kind) HasText() bool {
	switch k {
	case KindLabel, KindButton, KindCheckbutton, KindRadiobutton, KindMessage:
		return true
	default:
		return false
	}
}

// LayoutManager is one of Tk's three geometry strategies.
type LayoutManager uint8

const (
	LayoutNone  LayoutManager = iota // no layout call seen
	LayoutPack                       // edge-relative stacking
	LayoutGrid                       // row/column placement
	LayoutPlace                      // absolute x/y positioning
)

func (m LayoutManager) String() string {
	switch m {
	case LayoutPack:
		return "pack"
	case LayoutGrid:
		return "grid"
	case LayoutPlace:
		return "place"
	default:
		return "none"
	}
}

// LayoutManagerFromName maps a geometry method name to a LayoutManager.
func LayoutManagerFromName(name string) (LayoutManager, bool) {
	switch name {
	case "pack":
		return LayoutPack, true
	case "grid":
		return LayoutGrid, true
	case "place":
		return LayoutPlace, true
	default:
		return LayoutNone, false
	}
}

// Meta holds annotations produced by the behavior engine. The scanner leaves
// it zero; re-deriving it from the same tree yields the same values.
type Meta struct {
	IsRoot        bool // window flagged as a preview root
	AutoSize      bool // container sizes to its content
	DefaultPad    bool // container received the default padding rule
	GridContainer bool // at least one child is grid-managed
	GridRows      int  // tracked row extent (max over children of row+rowspan)
	GridCols      int  // tracked column extent
	Placed        bool // absolutely positioned via place
	EstWidth      int  // estimated pixel width when no explicit width exists
	EstHeight     int  // estimated pixel height when no explicit height exists
}

// Node is a single widget in the reconstructed tree.
type Node struct {
	Kind       Kind
	Name       string // back-reference key from the assignment, may be empty
	ParentRef  string // name of the parent widget, resolved during assembly
	Props      *Props
	Layout     LayoutManager
	LayoutOpts *Props
	Children   []*Node
	SourceLine int // 1-based originating line, for diagnostics only
	Meta       Meta
}

// NewNode returns a Node of the given kind with empty property bags.
func NewNode(kind Kind) *Node {
	return &Node{
		Kind:       kind,
		Props:      NewProps(),
		LayoutOpts: NewProps(),
	}
}

// Clone returns a structural deep copy of the node and its subtree.
// The behavior engine works on clones so callers' trees are never mutated.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:       n.Kind,
		Name:       n.Name,
		ParentRef:  n.ParentRef,
		Props:      n.Props.Clone(),
		Layout:     n.Layout,
		LayoutOpts: n.LayoutOpts.Clone(),
		SourceLine: n.SourceLine,
		Meta:       n.Meta,
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// CloneForest deep-copies a slice of root nodes.
func CloneForest(roots []*Node) []*Node {
	if roots == nil {
		return nil
	}
	out := make([]*Node, len(roots))
	for i, r := range roots {
		out[i] = r.Clone()
	}
	return out
}

// Walk visits n and every descendant in depth-first source order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
