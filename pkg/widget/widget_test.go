package widget

import "testing"

func TestKindFromName(t *testing.T) {
	type tc struct {
		name     string
		expected Kind
		ok       bool
	}

	tests := map[string]tc{
		"root window":   {name: "Tk", expected: KindWindow, ok: true},
		"toplevel":      {name: "Toplevel", expected: KindToplevel, ok: true},
		"frame":         {name: "Frame", expected: KindFrame, ok: true},
		"label frame":   {name: "LabelFrame", expected: KindLabelFrame, ok: true},
		"label":         {name: "Label", expected: KindLabel, ok: true},
		"button":        {name: "Button", expected: KindButton, ok: true},
		"entry":         {name: "Entry", expected: KindEntry, ok: true},
		"not a widget":  {name: "StringVar", ok: false},
		"lowercase":     {name: "label", ok: false},
		"empty":         {name: "", ok: false},
		"photo image":   {name: "PhotoImage", ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			k, ok := KindFromName(tt.name)
			if ok != tt.ok {
				t.Fatalf("KindFromName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && k != tt.expected {
				t.Errorf("KindFromName(%q) = %v, want %v", tt.name, k, tt.expected)
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	if s, ok := Str("hello").AsString(); !ok || s != "hello" {
		t.Errorf("Str.AsString() = %q, %v", s, ok)
	}
	if n, ok := Int(42).AsInt(); !ok || n != 42 {
		t.Errorf("Int.AsInt() = %d, %v", n, ok)
	}
	if f, ok := Float(2.5).AsFloat(); !ok || f != 2.5 {
		t.Errorf("Float.AsFloat() = %v, %v", f, ok)
	}
	if n, ok := Float(2.9).AsInt(); !ok || n != 2 {
		t.Errorf("Float.AsInt() = %d, %v (want truncation)", n, ok)
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("Bool.AsBool() = %v, %v", b, ok)
	}
	if !Null().IsNull() {
		t.Error("Null().IsNull() = false")
	}
	if _, ok := Str("x").AsInt(); ok {
		t.Error("Str.AsInt() should not succeed")
	}
	if _, ok := Int(1).AsBool(); ok {
		t.Error("Int.AsBool() should not succeed")
	}
}

func TestValue_Text(t *testing.T) {
	type tc struct {
		value    Value
		expected string
	}

	tests := map[string]tc{
		"string":  {value: Str("hi"), expected: "hi"},
		"symbol":  {value: Symbol("side_var"), expected: "side_var"},
		"int":     {value: Int(7), expected: "7"},
		"float":   {value: Float(1.5), expected: "1.5"},
		"true":    {value: Bool(true), expected: "True"},
		"false":   {value: Bool(false), expected: "False"},
		"none":    {value: Null(), expected: "None"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Text(); got != tt.expected {
				t.Errorf("Text() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProps_InsertionOrder(t *testing.T) {
	p := NewProps()
	p.Set("text", Str("OK"))
	p.Set("width", Int(10))
	p.Set("bg", Str("red"))

	// Overwriting must keep the original position.
	p.Set("text", Str("Cancel"))

	keys := p.Keys()
	expected := []string{"text", "width", "bg"}
	if len(keys) != len(expected) {
		t.Fatalf("Keys() = %v, want %v", keys, expected)
	}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], k)
		}
	}

	v, ok := p.Get("text")
	if !ok {
		t.Fatal("Get(text) missing")
	}
	if s, _ := v.AsString(); s != "Cancel" {
		t.Errorf("Get(text) = %q, want %q (last writer wins)", s, "Cancel")
	}
}

func TestProps_Merge(t *testing.T) {
	p := NewProps()
	p.Set("text", Str("old"))
	p.Set("relief", Str("flat"))

	other := NewProps()
	other.Set("text", Str("new"))
	other.Set("bd", Int(2))

	p.Merge(other)

	if v, _ := p.Get("text"); v.Text() != "new" {
		t.Errorf("merged text = %q, want %q", v.Text(), "new")
	}
	if !p.Has("relief") || !p.Has("bd") {
		t.Error("merge dropped a key")
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestNode_Clone(t *testing.T) {
	root := NewNode(KindWindow)
	root.Name = "root"
	root.Props.Set("title", Str("App"))

	child := NewNode(KindLabel)
	child.Name = "label"
	child.ParentRef = "root"
	child.Props.Set("text", Str("Hi"))
	child.Layout = LayoutPack
	child.LayoutOpts.Set("side", Str("top"))
	child.SourceLine = 3
	root.Children = []*Node{child}

	clone := root.Clone()

	// Mutating the clone must not leak into the original.
	clone.Children[0].Props.Set("text", Str("Bye"))
	clone.Children[0].LayoutOpts.Set("side", Str("left"))
	clone.Props.Set("title", Str("Changed"))
	clone.Children = append(clone.Children, NewNode(KindButton))

	if v, _ := root.Props.Get("title"); v.Text() != "App" {
		t.Errorf("original title = %q after clone mutation", v.Text())
	}
	if v, _ := child.Props.Get("text"); v.Text() != "Hi" {
		t.Errorf("original child text = %q after clone mutation", v.Text())
	}
	if v, _ := child.LayoutOpts.Get("side"); v.Text() != "top" {
		t.Errorf("original side = %q after clone mutation", v.Text())
	}
	if len(root.Children) != 1 {
		t.Errorf("original child count = %d, want 1", len(root.Children))
	}
	if clone.Children[0].SourceLine != 3 {
		t.Errorf("clone dropped SourceLine, got %d", clone.Children[0].SourceLine)
	}
}

func TestNode_Walk(t *testing.T) {
	root := NewNode(KindWindow)
	a := NewNode(KindFrame)
	b := NewNode(KindLabel)
	c := NewNode(KindButton)
	a.Children = []*Node{b}
	root.Children = []*Node{a, c}

	var kinds []Kind
	root.Walk(func(n *Node) { kinds = append(kinds, n.Kind) })

	expected := []Kind{KindWindow, KindFrame, KindLabel, KindButton}
	if len(kinds) != len(expected) {
		t.Fatalf("visited %d nodes, want %d", len(kinds), len(expected))
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("visit order[%d] = %v, want %v", i, kinds[i], expected[i])
		}
	}
}
