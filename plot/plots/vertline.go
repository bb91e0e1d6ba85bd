// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/plot"
)

func init() {
	plot.RegisterPlotter(plot.VerticalLine, func(it *plot.Item, idx int) plot.Plotter {
		return &VerticalLine{Item: it, Index: idx}
	})
}

// VerticalLine plots the line x = X, clipped to the visible Y range
// intersected with the item's optional range.
type VerticalLine struct {

	// Item is the configured item being plotted.
	Item *plot.Item

	// Index is the item's index in [plot.Config.Items].
	Index int
}

func (vl *VerticalLine) Plot(pt *plot.Plot) {
	tr := pt.Transform
	if !tr.X.InRange(vl.Item.X) {
		return
	}
	yr := tr.Y
	if vl.Item.Range != nil {
		var ok bool
		yr, ok = yr.Intersect(*vl.Item.Range)
		if !ok {
			return
		}
	}
	px := tr.PX(vl.Item.X)
	run := []math32.Vector2{
		math32.Vec2(px, tr.PY(yr.Max)),
		math32.Vec2(px, tr.PY(yr.Min)),
	}
	st := pt.ItemStyle(vl.Index)
	pt.AddCurve(&plot.Line{Start: run[0], End: run[1], Style: st.Line})
	pt.AddPrimitive(plot.Primitive{
		Item: vl.Index,
		Kind: plot.VerticalLine,
		Runs: [][]math32.Vector2{run},
		Data: [][]plot.Point{{
			{X: vl.Item.X, Y: yr.Max},
			{X: vl.Item.X, Y: yr.Min},
		}},
	})
}
