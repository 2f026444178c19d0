package render

import (
	"strings"
	"testing"

	"github.com/go-tkview/tkview/pkg/pyscan"
	"github.com/go-tkview/tkview/pkg/theme"
)

// Full pipeline: source text through scan and behavior into markup.
func TestPipeline_SimpleProgram(t *testing.T) {
	src := `# Simple Tkinter Example
import tkinter as tk

root = tk.Tk()
root.title("Hello Tkinter")

label = tk.Label(root, text="Hello, World!")
label.pack()

button = tk.Button(root, text="Click Me!")
button.pack()

# root.mainloop() - not needed for preview
`
	parsed := pyscan.Parse(src)
	if parsed.HasErrors {
		t.Fatalf("scan errors: %v", parsed.Errors)
	}

	res := NewConverter(theme.Default()).Convert(parsed.Widgets)
	if res.HasErrors {
		t.Fatalf("render errors: %v", res.Errors)
	}

	for _, want := range []string{"Hello Tkinter", "Hello, World!", "Click Me!", "tk-window", "tk-label", "tk-button"} {
		if !strings.Contains(res.HTML, want) {
			t.Errorf("markup missing %q:\n%s", want, res.HTML)
		}
	}
	if strings.Contains(res.HTML, "mainloop") {
		t.Error("commented code leaked into markup")
	}
}

func TestPipeline_GridProgram(t *testing.T) {
	src := `import tkinter as tk

root = tk.Tk()
root.title("Grid Layout Test")

label1 = tk.Label(root, text="Row 0, Col 0")
label1.grid(row=0, column=0)

button1 = tk.Button(root, text="Row 0, Col 1")
button1.grid(row=0, column=1)

button3 = tk.Button(root, text="Sticky East")
button3.grid(row=2, column=1, sticky="e")

label4 = tk.Label(root, text="Column Span 2")
label4.grid(row=3, column=0, columnspan=2, sticky="ew")
`
	parsed := pyscan.Parse(src)
	res := NewConverter(theme.Default()).Convert(parsed.Widgets)

	for _, want := range []string{
		"tk-grid",
		"grid-template-rows: repeat(4, auto)",
		"grid-template-columns: repeat(2, auto)",
		"grid-column: 1 / span 2", // the spanning label
		"justify-self: end",       // sticky east
		"justify-self: stretch",   // sticky ew
	} {
		if !strings.Contains(res.HTML, want) {
			t.Errorf("markup missing %q:\n%s", want, res.HTML)
		}
	}
}

func TestPipeline_WindowWithGeometry(t *testing.T) {
	src := `import tkinter as tk
root = tk.Tk()
root.title("Complex Grid Layout")
root.geometry("400x300")
`
	parsed := pyscan.Parse(src)
	res := NewConverter(theme.Default()).Convert(parsed.Widgets)

	if !strings.Contains(res.HTML, "width: 400px") || !strings.Contains(res.HTML, "height: 300px") {
		t.Errorf("geometry not applied:\n%s", res.HTML)
	}
	if !strings.Contains(res.HTML, "Complex Grid Layout") {
		t.Errorf("title missing:\n%s", res.HTML)
	}
}

func TestPipeline_DiagnosticsSurface(t *testing.T) {
	src := `import tkinter as tk
root = tk.Tk()
a = tk.Label(root, text="managed")
a.pack(side='diagonal')
b = tk.Button(root, text="unmanaged")
`
	parsed := pyscan.Parse(src)
	res := NewConverter(theme.Default()).Convert(parsed.Widgets)

	if res.HasErrors {
		t.Fatal("warnings must not be hard failures")
	}
	var sawSide, sawSibling bool
	for _, e := range res.Errors {
		if strings.Contains(e, "invalid pack side") {
			sawSide = true
		}
		if strings.Contains(e, "no layout manager") {
			sawSibling = true
		}
	}
	if !sawSide || !sawSibling {
		t.Errorf("expected folded behavior warnings, got: %v", res.Errors)
	}
}
