// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/plot"
)

func init() {
	plot.RegisterPlotter(plot.Interpolation, func(it *plot.Item, idx int) plot.Plotter {
		return &Interpolation{Item: it, Index: idx}
	})
}

// interpSteps is the number of samples per interpolation segment.
const interpSteps = 24

// Interpolation plots a smooth curve through the item's control points,
// in the order given. Each span is a cubic Hermite segment with
// Catmull-Rom tangents scaled by Smoothness: 0 degenerates to a
// straight polyline, 1 is the standard Catmull-Rom spline.
type Interpolation struct {

	// Item is the configured item being plotted.
	Item *plot.Item

	// Index is the item's index in [plot.Config.Items].
	Index int
}

func (in *Interpolation) Plot(pt *plot.Plot) {
	cps := in.Item.Points
	if len(cps) < 2 {
		pt.Warnf("item %d (interpolation): needs at least 2 points", in.Index)
		return
	}
	tr := pt.Transform
	s := in.Item.Smoothness
	var run []math32.Vector2
	var data []plot.Point
	add := func(p plot.Point) {
		run = append(run, math32.Vec2(tr.PX(p.X), tr.PY(p.Y)))
		data = append(data, p)
	}
	add(cps[0])
	for i := 0; i < len(cps)-1; i++ {
		m0 := tangent(cps, i, s)
		m1 := tangent(cps, i+1, s)
		for k := 1; k <= interpSteps; k++ {
			t := float64(k) / interpSteps
			add(hermite(cps[i], cps[i+1], m0, m1, t))
		}
	}
	st := pt.ItemStyle(in.Index)
	pt.AddCurve(&plot.Polyline{Runs: [][]math32.Vector2{run}, Style: st.Line})
	for _, p := range cps {
		pos := math32.Vec2(tr.PX(p.X), tr.PY(p.Y))
		pt.AddCurve(&plot.Circle{Center: pos, Radius: st.Point.Radius, Style: st.Point})
	}
	pt.AddPrimitive(plot.Primitive{
		Item: in.Index,
		Kind: plot.Interpolation,
		Runs: [][]math32.Vector2{run},
		Data: [][]plot.Point{data},
	})
}

// tangent returns the scaled Catmull-Rom tangent at control point i,
// one-sided at the ends.
func tangent(cps []plot.Point, i int, s float64) plot.Point {
	prev := cps[max(i-1, 0)]
	next := cps[min(i+1, len(cps)-1)]
	d := 2.0
	if i == 0 || i == len(cps)-1 {
		d = 1
	}
	return plot.Point{X: s * (next.X - prev.X) / d, Y: s * (next.Y - prev.Y) / d}
}

// hermite evaluates the cubic Hermite segment from p0 to p1 with
// tangents m0, m1 at parameter t in [0, 1].
func hermite(p0, p1, m0, m1 plot.Point, t float64) plot.Point {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return plot.Point{
		X: h00*p0.X + h10*m0.X + h01*p1.X + h11*m1.X,
		Y: h00*p0.Y + h10*m0.Y + h01*p1.Y + h11*m1.Y,
	}
}
