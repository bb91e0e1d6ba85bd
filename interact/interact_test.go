// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcplot/funcplot/events"
	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/plot"
	_ "github.com/funcplot/funcplot/plot/plots"
)

func parabola(t *testing.T) (*plot.Plot, *Interactor) {
	t.Helper()
	cf := plot.NewConfig()
	cf.Items = []plot.Item{{Kind: plot.Function, Expr: "x^2"}}
	pt := plot.New(cf)
	pt.Draw()
	return pt, New(pt)
}

func press(it *Interactor, pos math32.Vector2) {
	it.HandleEvent(events.NewMouse(events.MouseDown, events.Left, pos))
}

func release(it *Interactor, pos math32.Vector2) {
	it.HandleEvent(events.NewMouse(events.MouseUp, events.Left, pos))
}

func moveTo(it *Interactor, pos math32.Vector2) {
	it.HandleEvent(events.NewMouse(events.MouseMove, events.NoButton, pos))
}

func TestZoomFocalInvariant(t *testing.T) {
	pt, it := parabola(t)
	pos := math32.Vec2(300, 200)
	fx := pt.Transform.DataX(pos.X)
	fy := pt.Transform.DataY(pos.Y)
	it.ZoomAt(pos, 0.5)
	pt.Draw()
	assert.InDelta(t, fx, pt.Transform.DataX(pos.X), 1e-9)
	assert.InDelta(t, fy, pt.Transform.DataY(pos.Y), 1e-9)
	x, _ := pt.View.Current(pt.Config)
	assert.InDelta(t, 10.0, x.Range(), 1e-9)
}

func TestScrollZoom(t *testing.T) {
	pt, it := parabola(t)
	it.HandleEvent(events.NewScroll(math32.Vec2(400, 300), math32.Vec2(0, -100)))
	x, _ := pt.View.Current(pt.Config)
	assert.Less(t, x.Range(), 20.0, "scroll up should zoom in")
}

func TestMagnify(t *testing.T) {
	pt, it := parabola(t)
	it.HandleEvent(events.NewMagnify(math32.Vec2(400, 300), 2))
	assert.Equal(t, PinchZooming, it.State())
	x, _ := pt.View.Current(pt.Config)
	assert.InDelta(t, 10.0, x.Range(), 1e-6)
}

func TestPan(t *testing.T) {
	pt, it := parabola(t)
	press(it, math32.Vec2(400, 300))
	moveTo(it, math32.Vec2(476, 300)) // 76px is 2 data units at 760px / 20 units
	assert.Equal(t, Panning, it.State())
	x, y := pt.View.Current(pt.Config)
	assert.InDelta(t, -12.0, x.Min, 1e-4)
	assert.InDelta(t, 8.0, x.Max, 1e-4)
	assert.InDelta(t, -10.0, y.Min, 1e-4)
	release(it, math32.Vec2(476, 300))
	assert.Equal(t, Idle, it.State())
}

func TestPanClamped(t *testing.T) {
	cf := plot.NewConfig()
	cf.ClampView = true
	cf.Items = []plot.Item{{Kind: plot.Function, Expr: "x"}}
	pt := plot.New(cf)
	pt.Draw()
	it := New(pt)
	it.ZoomAt(math32.Vec2(400, 300), 0.5)
	pt.Draw()
	it.Pan(math32.Vec2(-10000, 0))
	x, _ := pt.View.Current(pt.Config)
	assert.GreaterOrEqual(t, x.Min, -10.0)
	assert.LessOrEqual(t, x.Max, 10.0)
}

func TestZoomOutClamped(t *testing.T) {
	cf := plot.NewConfig()
	cf.ClampView = true
	cf.Items = []plot.Item{{Kind: plot.Function, Expr: "x"}}
	pt := plot.New(cf)
	pt.Draw()
	it := New(pt)
	it.ZoomAt(math32.Vec2(400, 300), 4)
	x, y := pt.View.Current(pt.Config)
	assert.Equal(t, cf.XLim, x)
	assert.Equal(t, cf.YLim, y)
}

func TestTangentSelection(t *testing.T) {
	pt, it := parabola(t)
	it.SetMode(SelectTangent)
	pos := math32.Vec2(pt.Transform.PX(3), pt.Transform.PY(9))
	press(it, pos)
	require.Equal(t, DraggingSelection, it.State())
	moveTo(it, pos) // drag re-evaluates exactly at the pointer's data x
	sel := it.Selection()
	require.NotNil(t, sel)
	require.Len(t, sel.Anchors, 1)
	assert.InDelta(t, 3.0, sel.Anchors[0].Data.X, 1e-4)
	assert.InDelta(t, 6.0, sel.Anchors[0].Slope, 1e-2)
	release(it, pos)
	assert.NotNil(t, it.Selection(), "pointer-up keeps the selection")
}

func TestSlopeSelection(t *testing.T) {
	pt, it := parabola(t)
	it.SetMode(SelectSlope)
	p1 := math32.Vec2(pt.Transform.PX(1), pt.Transform.PY(1))
	p2 := math32.Vec2(pt.Transform.PX(3), pt.Transform.PY(9))
	press(it, p1)
	moveTo(it, p1)
	release(it, p1)
	press(it, p2)
	moveTo(it, p2)
	release(it, p2)
	sel := it.Selection()
	require.NotNil(t, sel)
	require.Len(t, sel.Anchors, 2)
	// average rate of change of x^2 from 1 to 3
	assert.InDelta(t, 4.0, sel.Slope(), 1e-2)
}

func TestClickDeselect(t *testing.T) {
	pt, it := parabola(t)
	it.SetMode(SelectPoint)
	pos := math32.Vec2(pt.Transform.PX(2), pt.Transform.PY(4))
	press(it, pos)
	release(it, pos)
	require.NotNil(t, it.Selection())

	// click far from any primitive clears the selection
	empty := math32.Vec2(30, 30)
	press(it, empty)
	release(it, empty)
	assert.Nil(t, it.Selection())
}

func TestSnapRadiusMiss(t *testing.T) {
	_, it := parabola(t)
	it.SetMode(SelectPoint)
	press(it, math32.Vec2(30, 30))
	assert.Nil(t, it.Selection())
	assert.Equal(t, Panning, it.State())
}

func TestNonInteractive(t *testing.T) {
	cf := plot.NewConfig()
	cf.Interactive = false
	cf.Items = []plot.Item{{Kind: plot.Function, Expr: "x"}}
	pt := plot.New(cf)
	pt.Draw()
	it := New(pt)
	press(it, math32.Vec2(400, 300))
	moveTo(it, math32.Vec2(500, 300))
	assert.Equal(t, Idle, it.State())
	x, _ := pt.View.Current(pt.Config)
	assert.Equal(t, cf.XLim, x)
}

func TestDerivativeImplicit(t *testing.T) {
	cf := plot.NewConfig()
	cf.Items = []plot.Item{{Kind: plot.Implicit, Expr: "x^2 + y^2 = 25"}}
	// on the circle at (3, 4): dy/dx = -x/y = -0.75
	m := derivativeAt(cf, 0, plot.Point{X: 3, Y: 4})
	assert.InDelta(t, -0.75, m, 1e-4)
}

func TestDerivativeVerticalLine(t *testing.T) {
	cf := plot.NewConfig()
	cf.Items = []plot.Item{{Kind: plot.VerticalLine, X: 2}}
	m := derivativeAt(cf, 0, plot.Point{X: 2, Y: 0})
	assert.True(t, math.IsInf(m, 1), "vertical line slope should be infinite")
}

func TestTraceAndLinkedView(t *testing.T) {
	pt, it := parabola(t)
	it.SetMode(SelectTangent)
	it.Tracing = true
	sec := plot.New(nil)
	lv := NewLinkedView(it, sec)
	require.NotNil(t, lv)

	start := math32.Vec2(pt.Transform.PX(1), pt.Transform.PY(1))
	press(it, start)
	for x := 1.2; x <= 2.0; x += 0.2 {
		moveTo(it, math32.Vec2(pt.Transform.PX(x), pt.Transform.PY(x*x)))
	}
	sel := it.Selection()
	require.NotNil(t, sel)
	assert.NotEmpty(t, sel.Trace)

	// the secondary plot now renders the trace as a point set
	require.NotEmpty(t, sec.Config.Items)
	assert.Equal(t, plot.Points, sec.Config.Items[0].Kind)
	assert.Equal(t, len(sel.Trace), len(sec.Config.Items[0].Points))
}
