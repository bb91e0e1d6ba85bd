// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"

	"github.com/funcplot/funcplot/expr"
	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/plot"
)

func init() {
	plot.RegisterPlotter(plot.Implicit, func(it *plot.Item, idx int) plot.Plotter {
		return &Implicit{Item: it, Index: idx}
	})
}

// Implicit plots the zero contour of F(x, y) = 0 by marching squares
// over a uniform grid covering the visible region: each grid cell whose
// corner signs differ contributes line segments whose endpoints are
// placed on the cell edges by linear interpolation of the corner
// values.
type Implicit struct {

	// Item is the configured item being plotted.
	Item *plot.Item

	// Index is the item's index in [plot.Config.Items].
	Index int
}

// Cell edges are numbered 0 bottom, 1 right, 2 top, 3 left; corners 0
// bottom-left, 1 bottom-right, 2 top-right, 3 top-left. A corner bit is
// set when its value is positive. Entries are edge pairs; the two
// saddle cases contribute two segments each.
var squareSegments = [16][][2]int{
	0:  nil,
	1:  {{3, 0}},
	2:  {{0, 1}},
	3:  {{3, 1}},
	4:  {{1, 2}},
	5:  {{3, 0}, {1, 2}},
	6:  {{0, 2}},
	7:  {{3, 2}},
	8:  {{2, 3}},
	9:  {{0, 2}},
	10: {{0, 1}, {2, 3}},
	11: {{1, 2}},
	12: {{3, 1}},
	13: {{0, 1}},
	14: {{3, 0}},
	15: nil,
}

func (im *Implicit) Plot(pt *plot.Plot) {
	f, err := expr.Compile2(im.Item.Expr, pt.Config.ParamValues())
	if err != nil {
		pt.Warnf("item %d (implicit): %v", im.Index, err)
		return
	}
	xr := pt.Transform.X
	yr := pt.Transform.Y
	if im.Item.Domain != nil {
		var ok bool
		xr, ok = xr.Intersect(*im.Item.Domain)
		if !ok {
			return
		}
	}
	if im.Item.Range != nil {
		var ok bool
		yr, ok = yr.Intersect(*im.Item.Range)
		if !ok {
			return
		}
	}
	n := pt.Config.GridN
	if n < 2 {
		n = 2
	}
	dx := xr.Range() / float64(n)
	dy := yr.Range() / float64(n)

	// one evaluation per grid node, shared by the four adjacent cells
	vals := make([][]float64, n+1)
	for j := 0; j <= n; j++ {
		vals[j] = make([]float64, n+1)
		y := yr.Min + dy*float64(j)
		for i := 0; i <= n; i++ {
			vals[j][i] = f(xr.Min+dx*float64(i), y)
		}
	}

	var runs [][]math32.Vector2
	var data [][]plot.Point
	for j := 0; j < n; j++ {
		y0 := yr.Min + dy*float64(j)
		for i := 0; i < n; i++ {
			x0 := xr.Min + dx*float64(i)
			v := [4]float64{vals[j][i], vals[j][i+1], vals[j+1][i+1], vals[j+1][i]}
			if !isFinite(v[0]) || !isFinite(v[1]) || !isFinite(v[2]) || !isFinite(v[3]) {
				continue
			}
			code := 0
			for c := 0; c < 4; c++ {
				if v[c] > 0 {
					code |= 1 << c
				}
			}
			for _, seg := range squareSegments[code] {
				p0 := edgePoint(seg[0], x0, y0, dx, dy, v)
				p1 := edgePoint(seg[1], x0, y0, dx, dy, v)
				runs = append(runs, []math32.Vector2{
					math32.Vec2(pt.Transform.PX(p0.X), pt.Transform.PY(p0.Y)),
					math32.Vec2(pt.Transform.PX(p1.X), pt.Transform.PY(p1.Y)),
				})
				data = append(data, []plot.Point{p0, p1})
			}
		}
	}
	if len(runs) == 0 {
		return
	}
	st := pt.ItemStyle(im.Index)
	pt.AddCurve(&plot.Polyline{Runs: runs, Style: st.Line})
	pt.AddPrimitive(plot.Primitive{Item: im.Index, Kind: plot.Implicit, Runs: runs, Data: data})
}

// edgePoint interpolates the zero crossing along the given cell edge,
// in data space.
func edgePoint(edge int, x0, y0, dx, dy float64, v [4]float64) plot.Point {
	switch edge {
	case 0:
		return plot.Point{X: x0 + dx*crossing(v[0], v[1]), Y: y0}
	case 1:
		return plot.Point{X: x0 + dx, Y: y0 + dy*crossing(v[1], v[2])}
	case 2:
		return plot.Point{X: x0 + dx*crossing(v[3], v[2]), Y: y0 + dy}
	default:
		return plot.Point{X: x0, Y: y0 + dy*crossing(v[0], v[3])}
	}
}

// crossing returns the fraction along an edge, from the first corner to
// the second, at which the linearly interpolated value crosses zero.
func crossing(v0, v1 float64) float64 {
	d := math.Abs(v0) + math.Abs(v1)
	if d == 0 {
		return 0.5
	}
	return math.Abs(v0) / d
}
