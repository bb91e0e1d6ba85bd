// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcplot/funcplot/math32/minmax"
	"github.com/funcplot/funcplot/plot"
)

func testConfig(items ...plot.Item) *plot.Config {
	cf := plot.NewConfig()
	cf.Items = items
	return cf
}

// itemPrims returns the primitives contributed by the given item.
func itemPrims(pt *plot.Plot, item int) []plot.Primitive {
	var prs []plot.Primitive
	for _, pr := range pt.Primitives() {
		if pr.Item == item {
			prs = append(prs, pr)
		}
	}
	return prs
}

func TestFunctionSmooth(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.Function, Expr: "x^2"})
	cf.XLim.Set(-4, 4)
	cf.YLim.Set(-1, 17)
	pt := plot.New(cf)
	pt.Draw()
	assert.Empty(t, pt.Warnings())
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	require.Len(t, prs[0].Runs, 1)

	// every emitted span stays within the curvature tolerance of the chord
	run := prs[0].Runs[0]
	data := prs[0].Data[0]
	for i := 1; i < len(run); i++ {
		xm := 0.5 * (data[i-1].X + data[i].X)
		ym := pt.Transform.PY(xm * xm)
		chord := 0.5 * (run[i-1].Y + run[i].Y)
		assert.InDelta(t, float64(ym), float64(chord), float64(cf.CurveTolerancePx)+1e-3)
	}
}

func TestFunctionAsymptote(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.Function, Expr: "1/x"})
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	require.GreaterOrEqual(t, len(prs[0].Data), 2)

	// the two branches are separate runs; no run straddles x = 0
	for _, run := range prs[0].Data {
		for i := 1; i < len(run); i++ {
			assert.False(t, run[i-1].X < 0 && run[i].X > 0,
				"run crosses the pole between x=%v and x=%v", run[i-1].X, run[i].X)
		}
	}
}

func TestFunctionRemovableHole(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.Function, Expr: "sin(x)/x"})
	cf.XLim.Set(-1, 1)
	cf.YLim.Set(-0.5, 1.5)
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	assert.Len(t, prs[0].Runs, 1, "hole at x=0 should be bridged into one run")
}

func TestFunctionDomain(t *testing.T) {
	dom := minmax.Range(0, 2)
	cf := testConfig(plot.Item{Kind: plot.Function, Expr: "x", Domain: &dom})
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	for _, run := range prs[0].Data {
		for _, p := range run {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.LessOrEqual(t, p.X, 2.0)
		}
	}
}

func TestFunctionSqrtEdge(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.Function, Expr: "sqrt(x)"})
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	require.Len(t, prs[0].Runs, 1)
	for _, p := range prs[0].Data[0] {
		assert.False(t, math.IsNaN(p.Y))
		assert.GreaterOrEqual(t, p.X, 0.0)
	}
}

func TestFunctionBadExpr(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.Function, Expr: "x +"})
	pt := plot.New(cf)
	pt.Draw()
	assert.NotEmpty(t, pt.Warnings())
	assert.Empty(t, itemPrims(pt, 0))
}

func TestImplicitCircle(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.Implicit, Expr: "x^2 + y^2 = 25"})
	cf.XLim.Set(-6, 6)
	cf.YLim.Set(-6, 6)
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	require.NotEmpty(t, prs[0].Runs)

	// every interpolated contour endpoint sits close to the radius
	for _, seg := range prs[0].Data {
		for _, p := range seg {
			r := math.Hypot(p.X, p.Y)
			assert.InDelta(t, 5.0, r, 0.05)
		}
	}
}

func TestImplicitNoContour(t *testing.T) {
	// F = x^2 + y^2 + 1 is strictly positive: no zero crossing
	cf := testConfig(plot.Item{Kind: plot.Implicit, Expr: "x^2 + y^2 + 1"})
	pt := plot.New(cf)
	pt.Draw()
	assert.Empty(t, itemPrims(pt, 0))
}

func TestVerticalLine(t *testing.T) {
	rng := minmax.Range(-2, 3)
	cf := testConfig(plot.Item{Kind: plot.VerticalLine, X: 1.5, Range: &rng})
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	data := prs[0].Data[0]
	require.Len(t, data, 2)
	assert.Equal(t, 1.5, data[0].X)
	assert.Equal(t, 3.0, data[0].Y)
	assert.Equal(t, -2.0, data[1].Y)
}

func TestVerticalLineOffscreen(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.VerticalLine, X: 42})
	pt := plot.New(cf)
	pt.Draw()
	assert.Empty(t, itemPrims(pt, 0))
}

func TestPoints(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.Points, Points: []plot.Point{
		{X: 1, Y: 2}, {X: -3, Y: 4}, {X: 100, Y: 0}, // last one offscreen
	}})
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	assert.True(t, prs[0].IsPoint)
	require.Len(t, prs[0].Data, 1)
	assert.Len(t, prs[0].Data[0], 2)
}

func TestInterpolation(t *testing.T) {
	cps := []plot.Point{{X: -4, Y: 0}, {X: 0, Y: 3}, {X: 4, Y: -1}}
	cf := testConfig(plot.Item{Kind: plot.Interpolation, Points: cps, Smoothness: 1})
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)
	data := prs[0].Data[0]

	// the curve passes exactly through every control point
	for _, cp := range cps {
		found := false
		for _, p := range data {
			if p == cp {
				found = true
				break
			}
		}
		assert.True(t, found, "control point %v not on curve", cp)
	}
}

func TestInterpolationZeroSmoothness(t *testing.T) {
	cps := []plot.Point{{X: -4, Y: 0}, {X: 0, Y: 3}, {X: 4, Y: -1}}
	cf := testConfig(plot.Item{Kind: plot.Interpolation, Points: cps})
	pt := plot.New(cf)
	pt.Draw()
	prs := itemPrims(pt, 0)
	require.Len(t, prs, 1)

	// zero tangents collapse each span onto its chord
	data := prs[0].Data[0]
	for _, p := range data[:len(data)/2] {
		if p.X <= 0 {
			want := (p.X + 4) / 4 * 3
			assert.InDelta(t, want, p.Y, 1e-9)
		}
	}
}

func TestInterpolationTooFewPoints(t *testing.T) {
	cf := testConfig(plot.Item{Kind: plot.Interpolation, Points: []plot.Point{{X: 1, Y: 1}}})
	pt := plot.New(cf)
	pt.Draw()
	assert.NotEmpty(t, pt.Warnings())
}
