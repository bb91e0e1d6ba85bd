// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Style contains the display styling for one plot item.
type Style struct {

	// Label is the legend label for this item; empty items get no
	// legend entry.
	Label string `json:"label,omitempty"`

	// Off turns the item off without removing it.
	Off bool `json:"off,omitempty"`

	// Line has the line styling for curves and segments.
	Line LineStyle `json:"line"`

	// Point has the point styling for point markers.
	Point PointStyle `json:"point"`
}

func (st *Style) Defaults() {
	st.Line.Defaults()
	st.Point.Defaults()
}

// LineStyle has the stroke styling for lines and curves.
// Colors are CSS hex strings, which pass through to SVG untouched.
type LineStyle struct {
	Color string    `json:"color,omitempty"`
	Width float32   `json:"width"`
	Dash  []float32 `json:"dash,omitempty"`
}

func (ls *LineStyle) Defaults() {
	ls.Width = 2
}

// PointStyle has the styling for point markers.
type PointStyle struct {
	Color  string  `json:"color,omitempty"`
	Fill   string  `json:"fill,omitempty"`
	Radius float32 `json:"radius"`
}

func (ps *PointStyle) Defaults() {
	ps.Radius = 3.5
}

// TextStyle has the styling for text labels.
type TextStyle struct {
	Color string  `json:"color,omitempty"`
	Size  float32 `json:"size"`
}

func (ts *TextStyle) Defaults() {
	ts.Color = "#444444"
	ts.Size = 11
}

// Palette is the default color cycle assigned to items without an
// explicit color, by item index.
var Palette = []string{
	"#4e79a7",
	"#e15759",
	"#59a14f",
	"#f28e2b",
	"#b07aa1",
	"#76b7b2",
	"#edc948",
	"#9c755f",
}

// PaletteColor returns the default color for the given item index.
func PaletteColor(idx int) string {
	return Palette[idx%len(Palette)]
}

// effectiveStyle returns a copy of the given item style with zero values
// filled in from defaults, using the palette color for the given item
// index. The config itself is never mutated.
func effectiveStyle(st Style, idx int) Style {
	if st.Line.Width == 0 {
		st.Line.Width = 2
	}
	if st.Line.Color == "" {
		st.Line.Color = PaletteColor(idx)
	}
	if st.Point.Radius == 0 {
		st.Point.Radius = 3.5
	}
	if st.Point.Color == "" {
		st.Point.Color = st.Line.Color
	}
	if st.Point.Fill == "" {
		st.Point.Fill = st.Point.Color
	}
	return st
}
