// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"

	"github.com/funcplot/funcplot/expr"
	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/math32/minmax"
	"github.com/funcplot/funcplot/plot"
)

func init() {
	plot.RegisterPlotter(plot.Function, func(it *plot.Item, idx int) plot.Plotter {
		return &Function{Item: it, Index: idx}
	})
}

// Function plots y = f(x) over the visible range (intersected with the
// item's optional domain) using adaptive sampling: a coarse fixed-step
// pass followed by recursive bisection wherever the curve bends, jumps,
// or changes validity between adjacent samples.
type Function struct {

	// Item is the configured item being plotted.
	Item *plot.Item

	// Index is the item's index in [plot.Config.Items].
	Index int
}

func (fn *Function) Plot(pt *plot.Plot) {
	f, err := expr.Compile1(fn.Item.Expr, pt.Config.ParamValues())
	if err != nil {
		pt.Warnf("item %d (function): %v", fn.Index, err)
		return
	}
	sm := newSampler(pt, f, fn.Item.Domain)
	runs, data := sm.run()
	if len(runs) == 0 {
		return
	}
	st := pt.ItemStyle(fn.Index)
	pt.AddCurve(&plot.Polyline{Runs: runs, Style: st.Line})
	pt.AddPrimitive(plot.Primitive{Item: fn.Index, Kind: plot.Function, Runs: runs, Data: data})
}

// sample is one evaluated point of the curve. A sample is valid when
// its value is finite and its x lies inside the item's domain.
type sample struct {
	x, y   float64
	px, py float32
	valid  bool
}

// sampler holds the state of one adaptive sampling pass; it collects
// pixel polyline runs with the data samples underneath them.
type sampler struct {
	f      expr.Func1
	tr     *plot.Transform
	domain *minmax.F64

	stepPx   float32 // coarse step width in pixels
	tolPx    float32 // chord deviation triggering subdivision
	maxDepth int
	breakPx  float32 // jump beyond which the curve breaks
	bridgePx float32 // jump below which an invalid midpoint is bridged

	runs    [][]math32.Vector2
	data    [][]plot.Point
	cur     []math32.Vector2
	curData []plot.Point
}

func newSampler(pt *plot.Plot, f expr.Func1, domain *minmax.F64) *sampler {
	cf := pt.Config
	ch := float32(pt.Transform.Size.Y)
	return &sampler{
		f:        f,
		tr:       pt.Transform,
		domain:   domain,
		stepPx:   cf.SampleStepPx,
		tolPx:    cf.CurveTolerancePx,
		maxDepth: cf.MaxBisectDepth,
		breakPx:  cf.BreakJumpFrac * ch,
		bridgePx: cf.BridgeJumpFrac * ch,
	}
}

func (sm *sampler) at(x float64) sample {
	y := sm.f(x)
	s := sample{x: x, y: y}
	s.valid = !math.IsNaN(y) && !math.IsInf(y, 0) &&
		(sm.domain == nil || sm.domain.InRange(x))
	s.px = sm.tr.PX(x)
	s.py = sm.tr.PY(y)
	return s
}

// run performs the coarse pass and returns the collected runs.
func (sm *sampler) run() ([][]math32.Vector2, [][]plot.Point) {
	rng := sm.tr.X
	if sm.domain != nil {
		var ok bool
		rng, ok = rng.Intersect(*sm.domain)
		if !ok {
			return nil, nil
		}
	}
	// nudge off domain edges where the function is only defined on the
	// open interval, e.g. ln(x) at 0
	if !isFinite(sm.f(rng.Min)) {
		rng.Min = math.Nextafter(rng.Min, rng.Max)
	}
	if !isFinite(sm.f(rng.Max)) {
		rng.Max = math.Nextafter(rng.Max, rng.Min)
	}
	steps := int(sm.tr.PlotWidth() / sm.stepPx)
	if steps < 1 {
		steps = 1
	}
	dx := rng.Range() / float64(steps)
	prev := sm.at(rng.Min)
	for i := 1; i <= steps; i++ {
		x := rng.Min + dx*float64(i)
		if i == steps {
			x = rng.Max
		}
		next := sm.at(x)
		sm.segment(prev, next, 0)
		prev = next
	}
	sm.closeRun()
	return sm.runs, sm.data
}

// segment recursively refines the span between two samples and emits it
// once it is resolved or the depth budget is exhausted.
func (sm *sampler) segment(s0, s1 sample, depth int) {
	mid := sm.at(0.5 * (s0.x + s1.x))
	if depth < sm.maxDepth && sm.needSplit(s0, mid, s1) {
		sm.segment(s0, mid, depth+1)
		sm.segment(mid, s1, depth+1)
		return
	}
	sm.emit(s0, s1, mid.valid)
}

// needSplit reports whether the span needs refining: a validity edge to
// hunt down, a hole to resolve, a midpoint bending away from the chord,
// or a pixel jump suggesting an asymptote between the samples.
func (sm *sampler) needSplit(s0, mid, s1 sample) bool {
	if s0.valid != s1.valid {
		return true
	}
	if !s0.valid {
		return false
	}
	if !mid.valid {
		return true
	}
	if math32.Abs(mid.py-0.5*(s0.py+s1.py)) > sm.tolPx {
		return true
	}
	return math32.Abs(s1.py-s0.py) > sm.breakPx
}

// emit appends a resolved span to the current run, breaking or starting
// runs as validity and jump size dictate. midValid distinguishes a
// clean span from one whose midpoint could not be resolved: the latter
// is only connected below the tighter bridge threshold, treating the
// invalid point as a removable hole.
func (sm *sampler) emit(s0, s1 sample, midValid bool) {
	switch {
	case s0.valid && s1.valid:
		limit := sm.breakPx
		if !midValid {
			limit = sm.bridgePx
		}
		if math32.Abs(s1.py-s0.py) > limit {
			sm.push(s0)
			sm.closeRun()
			sm.push(s1)
			return
		}
		sm.push(s0)
		sm.push(s1)

	case s0.valid: // entering an invalid region: run ends at s0
		sm.push(s0)
		sm.closeRun()

	case s1.valid: // leaving an invalid region: run resumes at s1
		if sm.bridge(s1) {
			sm.push(s1)
			return
		}
		sm.closeRun()
		sm.push(s1)

	default: // both invalid
		sm.closeRun()
	}
}

// bridge reports whether the curve resuming at s picks up right where
// it left off, treating the invalid gap as a removable hole; if the
// previous run was already closed it is reopened so the bridge joins it.
func (sm *sampler) bridge(s sample) bool {
	last, ok := sm.tail()
	if !ok {
		return false
	}
	if math32.Abs(s.px-last.X) > 2*sm.stepPx || math32.Abs(s.py-last.Y) > sm.bridgePx {
		return false
	}
	if len(sm.cur) == 0 && len(sm.runs) > 0 {
		n := len(sm.runs) - 1
		sm.cur = sm.runs[n]
		sm.curData = sm.data[n]
		sm.runs = sm.runs[:n]
		sm.data = sm.data[:n]
	}
	return true
}

// tail returns the most recently emitted point, in the open run or the
// last closed one.
func (sm *sampler) tail() (math32.Vector2, bool) {
	if n := len(sm.cur); n > 0 {
		return sm.cur[n-1], true
	}
	if n := len(sm.runs); n > 0 {
		run := sm.runs[n-1]
		return run[len(run)-1], true
	}
	return math32.Vector2{}, false
}

// push appends a sample to the current run, skipping an exact repeat of
// the run's last point (adjacent spans share their joint sample).
func (sm *sampler) push(s sample) {
	if n := len(sm.cur); n > 0 {
		last := sm.cur[n-1]
		if last.X == s.px && last.Y == s.py {
			return
		}
	}
	sm.cur = append(sm.cur, math32.Vec2(s.px, s.py))
	sm.curData = append(sm.curData, plot.Point{X: s.x, Y: s.y})
}

// closeRun finishes the current run; runs of fewer than two points are
// dropped.
func (sm *sampler) closeRun() {
	if len(sm.cur) >= 2 {
		sm.runs = append(sm.runs, sm.cur)
		sm.data = append(sm.data, sm.curData)
	}
	sm.cur = nil
	sm.curData = nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
