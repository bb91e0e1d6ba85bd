// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact implements the pan / zoom / selection state machine
// that drives plot re-evaluation from pointer and scroll events.
package interact

import (
	"math"

	"github.com/funcplot/funcplot/events"
	"github.com/funcplot/funcplot/expr"
	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/math32/minmax"
	"github.com/funcplot/funcplot/plot"
)

// scrollZoomSpeed converts one scroll delta unit into a relative view
// range change.
const scrollZoomSpeed = 0.002

// Interactor owns the interaction state of one [plot.Plot]: it consumes
// [events.Event]s, mutates the plot's view override and the selection,
// and triggers synchronous redraws. It registers a draw hook on the
// plot that renders the selection overlay.
type Interactor struct {

	// Plot is the plot being interacted with.
	Plot *plot.Plot

	// Mode is the armed selection mode; SelectNone means pointer drags
	// pan the view.
	Mode SelectModes

	// Tracing enables accumulation of (x, slope) samples into the
	// selection's trace while dragging a tangent selection.
	Tracing bool

	state    States
	sel      *Selection
	start    math32.Vector2
	last     math32.Vector2
	moved    bool
	dragItem int
}

// New returns an [Interactor] for the given plot and registers its
// selection overlay hook on it.
func New(pt *plot.Plot) *Interactor {
	it := &Interactor{Plot: pt}
	pt.OnDraw(it.overlay)
	return it
}

// Listen attaches the interactor to the given event source.
func (it *Interactor) Listen(sr *events.Source) events.Handle {
	return sr.Attach(it.HandleEvent)
}

// State returns the current interaction state.
func (it *Interactor) State() States {
	return it.state
}

// Selection returns the current selection, or nil when nothing is
// selected.
func (it *Interactor) Selection() *Selection {
	return it.sel
}

// SetMode arms the given selection mode, clearing any existing
// selection made in a different mode.
func (it *Interactor) SetMode(md SelectModes) {
	if it.Mode == md {
		return
	}
	it.Mode = md
	if it.sel != nil && it.sel.Mode != md {
		it.sel = nil
		it.Plot.Draw()
	}
}

// Reset restores the view to the configured limits and redraws.
func (it *Interactor) Reset() {
	it.Plot.View.Reset(it.Plot.Config)
	it.Plot.Draw()
}

// HandleEvent processes one event, updating interaction state and
// redrawing the plot as needed. Non-interactive plots ignore all
// events.
func (it *Interactor) HandleEvent(ev *events.Event) {
	if !it.Plot.Config.Interactive {
		return
	}
	if it.Plot.Transform == nil {
		it.Plot.Draw()
	}
	switch ev.Type {
	case events.MouseDown:
		it.down(ev)
	case events.MouseMove:
		it.move(ev)
	case events.MouseUp:
		it.up(ev)
	case events.Scroll:
		it.ZoomAt(ev.Pos, 1+float64(ev.Delta.Y)*scrollZoomSpeed)
		it.Plot.Draw()
	case events.Magnify:
		if ev.ScaleDelta <= 0 {
			return
		}
		it.state = PinchZooming
		// growing gesture scale shrinks the data range
		it.ZoomAt(ev.Pos, 1/float64(ev.ScaleDelta))
		it.Plot.Draw()
	}
}

func (it *Interactor) down(ev *events.Event) {
	if ev.Button != events.Left {
		return
	}
	it.start = ev.Pos
	it.last = ev.Pos
	it.moved = false
	if it.Mode != SelectNone {
		if hit, ok := it.Plot.ClosestPrimitive(ev.Pos, it.Plot.Config.SnapRadiusPx); ok {
			it.state = DraggingSelection
			it.dragItem = hit.Item
			it.setAnchor(hit)
			it.Plot.Draw()
			return
		}
	}
	it.state = Panning
}

func (it *Interactor) move(ev *events.Event) {
	if it.state == PinchZooming {
		it.state = Idle
	}
	if it.state == Idle {
		return
	}
	if ev.Pos.DistanceTo(it.start) > it.Plot.Config.DragStartPx {
		it.moved = true
	}
	switch it.state {
	case Panning:
		it.Pan(ev.Pos.Sub(it.last))
		it.last = ev.Pos
		it.Plot.Draw()
	case DraggingSelection:
		if it.dragSnap(ev.Pos) {
			it.Plot.Draw()
		}
		it.last = ev.Pos
	}
}

func (it *Interactor) up(ev *events.Event) {
	if !it.moved && it.state != DraggingSelection && it.sel != nil {
		it.sel = nil
		it.Plot.Draw()
	}
	it.state = Idle
}

// setAnchor records a fresh selection anchor from a hit. In slope mode
// a second click on the same item adds the second anchor; any other
// combination starts a new selection. A tangent re-selection on the
// same item keeps the accumulated trace.
func (it *Interactor) setAnchor(hit plot.Hit) {
	a := it.anchorFor(hit)
	switch {
	case it.sel != nil && it.sel.Mode == SelectSlope && it.Mode == SelectSlope &&
		len(it.sel.Anchors) == 1 && it.sel.Anchors[0].Item == hit.Item:
		it.sel.Anchors = append(it.sel.Anchors, a)
	case it.sel != nil && it.sel.Mode == SelectTangent && it.Mode == SelectTangent &&
		len(it.sel.Anchors) > 0 && it.sel.Anchors[0].Item == hit.Item:
		it.sel.Anchors = []Anchor{a}
	default:
		it.sel = &Selection{Mode: it.Mode, Anchors: []Anchor{a}}
	}
	it.trace(a)
}

// dragSnap moves the most recent anchor to follow the pointer.
// Explicit function items re-evaluate exactly at the pointer's data x;
// every other kind re-snaps to the nearest point on the pinned item.
func (it *Interactor) dragSnap(pos math32.Vector2) bool {
	cf := it.Plot.Config
	tr := it.Plot.Transform
	var hit plot.Hit
	if cf.Items[it.dragItem].Kind == plot.Function {
		f, err := expr.Compile1(cf.Items[it.dragItem].Expr, cf.ParamValues())
		if err != nil {
			return false
		}
		x := tr.DataX(pos.X)
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return false
		}
		hit = plot.Hit{
			Item: it.dragItem,
			Kind: plot.Function,
			Pix:  math32.Vec2(tr.PX(x), tr.PY(y)),
			Data: plot.Point{X: x, Y: y},
		}
	} else {
		var ok bool
		hit, ok = it.Plot.ClosestOnItem(it.dragItem, pos, cf.SnapRadiusPx)
		if !ok {
			return false
		}
	}
	a := it.anchorFor(hit)
	it.sel.Anchors[len(it.sel.Anchors)-1] = a
	it.trace(a)
	return true
}

func (it *Interactor) anchorFor(hit plot.Hit) Anchor {
	a := Anchor{Item: hit.Item, Kind: hit.Kind, Pix: hit.Pix, Data: hit.Data}
	if it.Mode == SelectTangent {
		a.Slope = derivativeAt(it.Plot.Config, hit.Item, hit.Data)
	}
	return a
}

func (it *Interactor) trace(a Anchor) {
	if !it.Tracing || it.Mode != SelectTangent || it.sel == nil {
		return
	}
	if math.IsNaN(a.Slope) || math.IsInf(a.Slope, 0) {
		return
	}
	it.sel.Trace = append(it.sel.Trace, plot.Point{X: a.Data.X, Y: a.Slope})
}

// Pan translates the view by the given pixel delta, converted through
// the current transform's scale: dragging right moves the view left.
func (it *Interactor) Pan(delta math32.Vector2) {
	cf := it.Plot.Config
	tr := it.Plot.Transform
	x, y := it.Plot.View.Current(cf)
	dx := float64(delta.X) / float64(tr.PlotWidth()) * x.Range()
	dy := float64(delta.Y) / float64(tr.PlotHeight()) * y.Range()
	x.Min -= dx
	x.Max -= dx
	y.Min += dy // screen y is inverted
	y.Max += dy
	if cf.ClampView {
		x = clampRange(x, cf.XLim)
		y = clampRange(y, cf.YLim)
	}
	it.Plot.View.Set(x, y)
}

// ZoomAt rescales the view around the given pixel position by factor
// (< 1 zooms in), preserving the data-space location under the cursor.
func (it *Interactor) ZoomAt(pos math32.Vector2, factor float64) {
	if factor <= 0 {
		return
	}
	cf := it.Plot.Config
	tr := it.Plot.Transform
	fx := tr.DataX(pos.X)
	fy := tr.DataY(pos.Y)
	x, y := it.Plot.View.Current(cf)
	fracX := (fx - x.Min) / x.Range()
	fracY := (fy - y.Min) / y.Range()
	nrx := x.Range() * factor
	nry := y.Range() * factor
	x.Min = fx - fracX*nrx
	x.Max = x.Min + nrx
	y.Min = fy - fracY*nry
	y.Max = y.Min + nry
	if cf.ClampView {
		x = clampRange(x, cf.XLim)
		y = clampRange(y, cf.YLim)
	}
	it.Plot.View.Set(x, y)
}

// clampRange shifts r back inside lim, or returns lim outright when r
// is at least as wide.
func clampRange(r, lim minmax.F64) minmax.F64 {
	if r.Range() >= lim.Range() {
		return lim
	}
	if r.Min < lim.Min {
		d := lim.Min - r.Min
		r.Min += d
		r.Max += d
	}
	if r.Max > lim.Max {
		d := r.Max - lim.Max
		r.Min -= d
		r.Max -= d
	}
	return r
}
