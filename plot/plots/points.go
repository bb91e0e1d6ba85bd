// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/plot"
)

func init() {
	plot.RegisterPlotter(plot.Points, func(it *plot.Item, idx int) plot.Plotter {
		return &Points{Item: it, Index: idx}
	})
}

// Points plots a discrete point set as filled circles. Points outside
// the visible region are skipped.
type Points struct {

	// Item is the configured item being plotted.
	Item *plot.Item

	// Index is the item's index in [plot.Config.Items].
	Index int
}

func (ps *Points) Plot(pt *plot.Plot) {
	tr := pt.Transform
	st := pt.ItemStyle(ps.Index)
	var run []math32.Vector2
	var data []plot.Point
	for _, p := range ps.Item.Points {
		if !tr.X.InRange(p.X) || !tr.Y.InRange(p.Y) {
			continue
		}
		pos := math32.Vec2(tr.PX(p.X), tr.PY(p.Y))
		pt.AddCurve(&plot.Circle{Center: pos, Radius: st.Point.Radius, Style: st.Point})
		run = append(run, pos)
		data = append(data, p)
	}
	if len(run) == 0 {
		return
	}
	pt.AddPrimitive(plot.Primitive{
		Item:    ps.Index,
		Kind:    plot.Points,
		IsPoint: true,
		Runs:    [][]math32.Vector2{run},
		Data:    [][]plot.Point{data},
	})
}
