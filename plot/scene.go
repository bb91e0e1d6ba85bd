// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"strings"

	"github.com/funcplot/funcplot/math32"
)

// Scene is the vector scene graph emitted by one draw pass: an ordered
// set of drawable primitives sized to a fixed pixel canvas, suitable for
// SVG serialization or direct retained-mode rendering. It is fully
// rebuilt on every draw.
type Scene struct {

	// Size is the pixel size of the canvas.
	Size image.Point

	// Background is the canvas background color; empty for none.
	Background string

	// Groups are the ordered drawable groups: grid, axes, curves,
	// overlay, legend.
	Groups []Group
}

// Group is a named ordered list of drawables.
type Group struct {
	Name string
	List []Drawable
}

// Drawable is a single vector drawing primitive in pixel coordinates.
type Drawable interface {
	svg(b *strings.Builder)
}

// Line is a single line segment.
type Line struct {
	Start math32.Vector2
	End   math32.Vector2
	Style LineStyle
}

// Polyline is a stroked path of one or more disjoint polyline runs.
// Runs are drawn as independent subpaths, never joined, which is how
// curve discontinuities stay discontinuous.
type Polyline struct {
	Runs  [][]math32.Vector2
	Style LineStyle
}

// Circle is a circle marker.
type Circle struct {
	Center math32.Vector2
	Radius float32
	Style  PointStyle
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min    math32.Vector2
	Size   math32.Vector2
	Fill   string
	Stroke string
}

// TextAnchor is the horizontal anchoring of a text label,
// matching the SVG text-anchor values.
type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// Text is a text label anchored at a pixel position.
type Text struct {
	Pos    math32.Vector2
	Text   string
	Anchor TextAnchor
	Style  TextStyle
}
