// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"github.com/funcplot/funcplot/math32/minmax"
)

// Transform is the pure mapping between the data-space rectangle and the
// padded pixel canvas, recomputed (and then frozen) for each draw.
// Data Y increases upward; screen Y increases downward.
type Transform struct {

	// X and Y are the data bounds, after any equal-aspect correction.
	X minmax.F64
	Y minmax.F64

	// Size is the pixel size of the canvas.
	Size image.Point

	// Pad is the pixel padding inside the canvas edges.
	Pad float32
}

// NewTransform returns the transform for the given data ranges, canvas
// size and padding. With equalAspect, the Y range is recentered around
// its midpoint so that one data unit maps to the same pixel length on
// both axes; this happens before the mapping functions are used.
func NewTransform(x, y minmax.F64, size image.Point, pad float32, equalAspect bool) *Transform {
	tr := &Transform{X: x, Y: y, Size: size, Pad: pad}
	if equalAspect {
		upp := x.Range() / float64(tr.PlotWidth()) // data units per pixel
		half := 0.5 * upp * float64(tr.PlotHeight())
		mid := y.Midpoint()
		tr.Y.Set(mid-half, mid+half)
	}
	return tr
}

// PlotWidth returns the drawable pixel width inside the padding.
func (tr *Transform) PlotWidth() float32 {
	return float32(tr.Size.X) - 2*tr.Pad
}

// PlotHeight returns the drawable pixel height inside the padding.
func (tr *Transform) PlotHeight() float32 {
	return float32(tr.Size.Y) - 2*tr.Pad
}

// PX maps a data-space x to a screen pixel x.
func (tr *Transform) PX(x float64) float32 {
	return tr.Pad + float32((x-tr.X.Min)/tr.X.Range())*tr.PlotWidth()
}

// PY maps a data-space y to a screen pixel y, inverted and anchored at
// the canvas height.
func (tr *Transform) PY(y float64) float32 {
	return float32(tr.Size.Y) - tr.Pad - float32((y-tr.Y.Min)/tr.Y.Range())*tr.PlotHeight()
}

// DataX maps a screen pixel x back to data space; the algebraic inverse
// of [Transform.PX].
func (tr *Transform) DataX(px float32) float64 {
	return tr.X.Min + float64((px-tr.Pad)/tr.PlotWidth())*tr.X.Range()
}

// DataY maps a screen pixel y back to data space; the algebraic inverse
// of [Transform.PY].
func (tr *Transform) DataY(py float32) float64 {
	return tr.Y.Min + float64((float32(tr.Size.Y)-tr.Pad-py)/tr.PlotHeight())*tr.Y.Range()
}
