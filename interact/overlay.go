// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"fmt"
	"math"
	"strconv"

	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/plot"
)

const anchorRadius = 4

var guideStyle = plot.LineStyle{Color: "#888888", Width: 1, Dash: []float32{4, 4}}

// overlay is the draw hook rendering the current selection: anchor
// markers with coordinate labels, plus the tangent or secant guide line
// for the derivative modes.
func (it *Interactor) overlay(pt *plot.Plot) {
	if it.sel == nil || len(it.sel.Anchors) == 0 {
		return
	}
	switch it.sel.Mode {
	case SelectSlope:
		if len(it.sel.Anchors) == 2 {
			a, b := it.sel.Anchors[0], it.sel.Anchors[1]
			it.guideLine(pt, a.Data, it.sel.Slope())
			mid := a.Pix.Lerp(b.Pix, 0.5)
			it.slopeLabel(pt, mid, it.sel.Slope())
		}
	case SelectTangent:
		a := it.sel.Anchors[len(it.sel.Anchors)-1]
		it.guideLine(pt, a.Data, a.Slope)
		it.slopeLabel(pt, a.Pix.Add(math32.Vec2(8, 20)), a.Slope)
	}
	for _, a := range it.sel.Anchors {
		st := pt.ItemStyle(a.Item)
		pt.AddOverlay(&plot.Circle{
			Center: a.Pix,
			Radius: anchorRadius,
			Style:  plot.PointStyle{Color: st.Line.Color, Fill: "#ffffff", Radius: anchorRadius},
		})
		pt.AddOverlay(&plot.Text{
			Pos:    a.Pix.Add(math32.Vec2(8, -8)),
			Text:   fmt.Sprintf("(%s, %s)", fmtNum(a.Data.X), fmtNum(a.Data.Y)),
			Anchor: plot.AnchorStart,
		})
	}
}

// guideLine draws the dashed line through data point p with slope m
// across the whole view; vertical when m is infinite.
func (it *Interactor) guideLine(pt *plot.Plot, p plot.Point, m float64) {
	tr := pt.Transform
	if math.IsNaN(m) {
		return
	}
	if math.IsInf(m, 0) {
		px := tr.PX(p.X)
		pt.AddOverlay(&plot.Line{
			Start: math32.Vec2(px, tr.PY(tr.Y.Max)),
			End:   math32.Vec2(px, tr.PY(tr.Y.Min)),
			Style: guideStyle,
		})
		return
	}
	x0, x1 := tr.X.Min, tr.X.Max
	y0 := p.Y + m*(x0-p.X)
	y1 := p.Y + m*(x1-p.X)
	pt.AddOverlay(&plot.Line{
		Start: math32.Vec2(tr.PX(x0), tr.PY(y0)),
		End:   math32.Vec2(tr.PX(x1), tr.PY(y1)),
		Style: guideStyle,
	})
}

func (it *Interactor) slopeLabel(pt *plot.Plot, pos math32.Vector2, m float64) {
	txt := "m = ∞"
	if !math.IsInf(m, 0) {
		txt = "m = " + fmtNum(m)
	}
	pt.AddOverlay(&plot.Text{Pos: pos, Text: txt, Anchor: plot.AnchorStart})
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
