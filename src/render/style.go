package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultStyleName is used when no style is requested or the requested name is
// unknown.
const DefaultStyleName = "dark_background"

// Style is a named visual theme: chart chrome colors plus the line palette.
type Style struct {
	Name       string
	Background drawing.Color
	Canvas     drawing.Color
	Text       drawing.Color
	Axis       drawing.Color
	Grid       drawing.Color
	Palette    []drawing.Color
}

var styles = map[string]Style{
	"dark_background": {
		Name:       "dark_background",
		Background: drawing.Color{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
		Canvas:     drawing.Color{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
		Text:       drawing.Color{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
		Axis:       drawing.Color{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
		Grid:       drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0x26},
		Palette: []drawing.Color{
			{R: 0x8a, G: 0xb4, B: 0xf8, A: 0xff},
			{R: 0x81, G: 0xc9, B: 0x95, A: 0xff},
			{R: 0xf2, G: 0x8b, B: 0x82, A: 0xff},
			{R: 0xfd, G: 0xd6, B: 0x63, A: 0xff},
			{R: 0xd7, G: 0xae, B: 0xfb, A: 0xff},
			{R: 0x78, G: 0xd9, B: 0xec, A: 0xff},
		},
	},
	"default": {
		Name:       "default",
		Background: drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Canvas:     drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Text:       drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Axis:       drawing.Color{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
		Grid:       drawing.Color{R: 0x00, G: 0x00, B: 0x00, A: 0x26},
		Palette: []drawing.Color{
			{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
			{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
			{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
		},
	},
	"ggplot": {
		Name:       "ggplot",
		Background: drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Canvas:     drawing.Color{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
		Text:       drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Axis:       drawing.Color{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		Grid:       drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xcc},
		Palette: []drawing.Color{
			{R: 0xe2, G: 0x4a, B: 0x33, A: 0xff},
			{R: 0x34, G: 0x8a, B: 0xbd, A: 0xff},
			{R: 0x98, G: 0x82, B: 0xbd, A: 0xff},
			{R: 0x79, G: 0xa7, B: 0x43, A: 0xff},
			{R: 0xfe, G: 0xc4, B: 0x4f, A: 0xff},
			{R: 0x80, G: 0x58, B: 0x4f, A: 0xff},
		},
	},
}

// ResolveStyle looks up a named style; ok is false when the name is unknown
// and the default style is returned instead.
func ResolveStyle(name string) (Style, bool) {
	if st, ok := styles[name]; ok {
		return st, true
	}
	return styles[DefaultStyleName], false
}

// StyleNames lists the registered style names (for flag help and tests).
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	return names
}
