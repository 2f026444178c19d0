// Package theme holds the document-level look of a rendered preview: fonts
// and chrome colors for the stylesheet the renderer emits. Themes are plain
// data and can be overridden from YAML configuration.
package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Theme configures the preview stylesheet. Empty fields fall back to the
// default theme, so a YAML override only needs to name what it changes.
type Theme struct {
	FontFamily         string `yaml:"fontFamily,omitempty"`
	FontSize           int    `yaml:"fontSize,omitempty"`
	CanvasBackground   string `yaml:"canvasBackground,omitempty"`
	WindowBackground   string `yaml:"windowBackground,omitempty"`
	WindowBorder       string `yaml:"windowBorder,omitempty"`
	TitlebarBackground string `yaml:"titlebarBackground,omitempty"`
	TitlebarForeground string `yaml:"titlebarForeground,omitempty"`
	WidgetForeground   string `yaml:"widgetForeground,omitempty"`
}

// Default returns the stock preview theme, modeled on a classic Tk desktop.
func Default() Theme {
	return Theme{
		FontFamily:         `"Segoe UI", "Helvetica Neue", Arial, sans-serif`,
		FontSize:           13,
		CanvasBackground:   "#2b2b2b",
		WindowBackground:   "#f0f0f0",
		WindowBorder:       "#999999",
		TitlebarBackground: "#dfdfdf",
		TitlebarForeground: "#1f1f1f",
		WidgetForeground:   "#000000",
	}
}

// Merge fills every empty field of t from base and returns the result.
func (t Theme) Merge(base Theme) Theme {
	if t.FontFamily == "" {
		t.FontFamily = base.FontFamily
	}
	if t.FontSize == 0 {
		t.FontSize = base.FontSize
	}
	if t.CanvasBackground == "" {
		t.CanvasBackground = base.CanvasBackground
	}
	if t.WindowBackground == "" {
		t.WindowBackground = base.WindowBackground
	}
	if t.WindowBorder == "" {
		t.WindowBorder = base.WindowBorder
	}
	if t.TitlebarBackground == "" {
		t.TitlebarBackground = base.TitlebarBackground
	}
	if t.TitlebarForeground == "" {
		t.TitlebarForeground = base.TitlebarForeground
	}
	if t.WidgetForeground == "" {
		t.WidgetForeground = base.WidgetForeground
	}
	return t
}

// Decode parses a YAML theme fragment and merges it over the default theme.
func Decode(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("failed to parse theme: %w", err)
	}
	return t.Merge(Default()), nil
}
