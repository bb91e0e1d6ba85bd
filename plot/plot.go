// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders mathematical objects (explicit functions,
// implicit relations, point sets, vertical lines, interpolated curves)
// into a vector [Scene], and supports live re-rendering as view bounds
// or named parameters change.
//
// The draw orchestrator is [Plot]: on every [Plot.Draw] it re-runs
// expression compilation, sampling and the coordinate transform, and
// emits a fresh scene graph plus a de-duplicated list of warnings.
// All work is synchronous and single-threaded; a new draw fully
// supersedes the previous one. The item plotters live in the plots
// subpackage, which registers itself via [RegisterPlotter]; import it
// for side effects:
//
//	import _ "github.com/funcplot/funcplot/plot/plots"
package plot

import (
	"fmt"
	"image"
)

// Plotter renders one configured item into the plot's scene and
// hit-test geometry.
type Plotter interface {
	Plot(pt *Plot)
}

// NewPlotterFunc returns a [Plotter] for the given item at the given
// item index.
type NewPlotterFunc func(it *Item, idx int) Plotter

// Plotters is the registry of plotter constructors by item kind,
// populated by the plots subpackage.
var Plotters = map[ItemKind]NewPlotterFunc{}

// RegisterPlotter registers the plotter constructor for an item kind.
func RegisterPlotter(kind ItemKind, fn NewPlotterFunc) {
	Plotters[kind] = fn
}

// DrawHook is called near the end of every draw pass, after the item
// plotters and before the legend, and may add overlay drawables via
// [Plot.AddOverlay]. The interaction layer uses hooks for selection
// overlays and linked-view updates.
type DrawHook func(pt *Plot)

// Plot is the draw orchestrator: it owns the view override, the
// per-draw transform, scene and geometry cache, and the warning list.
// It is the one engine type exposed to the hosting configuration UI.
type Plot struct {

	// Config is the engine's own deep copy of the supplied
	// configuration, immutable during a draw.
	Config *Config

	// View is the pan/zoom override state.
	View View

	// Transform is the data-to-pixel mapping of the current draw.
	Transform *Transform

	// Scene is the output of the most recent draw.
	Scene *Scene

	prims    []Primitive
	warns    []string
	warnSeen map[string]bool
	hooks    []DrawHook
	curves   *Group
	overlay  *Group
	drawing  bool
}

// New returns a new [Plot] for the given configuration;
// nil gets the default configuration.
func New(cf *Config) *Plot {
	pt := &Plot{}
	pt.SetConfig(cf)
	return pt
}

// SetConfig replaces the configuration wholesale with a deep copy of
// the given one. If the configured limits differ from the previous
// ones, the view override is discarded (a hard reconfiguration);
// otherwise the override survives, so parameter-only edits keep the
// user's pan/zoom in place.
func (pt *Plot) SetConfig(cf *Config) {
	if cf == nil {
		cf = NewConfig()
	}
	if pt.Config != nil && (pt.Config.XLim != cf.XLim || pt.Config.YLim != cf.YLim) {
		pt.View.HardReset()
	}
	pt.Config = cf.Clone()
}

// SetParam sets the value of the named parameter. The new value takes
// effect on the next draw, which re-compiles every expression against
// the updated environment. An unknown name is an error.
func (pt *Plot) SetParam(name string, value float64) error {
	pr := pt.Config.Param(name)
	if pr == nil {
		return fmt.Errorf("plot: no parameter named %q", name)
	}
	pr.Value = value
	return nil
}

// OnDraw adds a hook called at the end of every draw pass.
func (pt *Plot) OnDraw(h DrawHook) {
	pt.hooks = append(pt.hooks, h)
}

// Warn records a warning for the current draw. Warnings are
// de-duplicated, preserving first-seen order, and never abort drawing.
func (pt *Plot) Warn(msg string) {
	if pt.warnSeen[msg] {
		return
	}
	if pt.warnSeen == nil {
		pt.warnSeen = map[string]bool{}
	}
	pt.warnSeen[msg] = true
	pt.warns = append(pt.warns, msg)
}

// Warnf records a formatted warning for the current draw.
func (pt *Plot) Warnf(format string, args ...any) {
	pt.Warn(fmt.Sprintf(format, args...))
}

// Warnings returns the warnings accumulated by the most recent draw.
func (pt *Plot) Warnings() []string {
	return pt.warns
}

// ItemStyle returns the effective display style for the item at the
// given index, with defaults and palette colors filled in.
func (pt *Plot) ItemStyle(idx int) Style {
	return effectiveStyle(pt.Config.Items[idx].Style, idx)
}

// AddCurve adds a drawable to the curves group of the current draw.
func (pt *Plot) AddCurve(d Drawable) {
	pt.curves.List = append(pt.curves.List, d)
}

// AddOverlay adds a drawable to the overlay group of the current draw,
// for use by [DrawHook] implementations.
func (pt *Plot) AddOverlay(d Drawable) {
	pt.overlay.List = append(pt.overlay.List, d)
}

// Draw runs one full synchronous draw pass: validate the configuration,
// freeze the transform from the current view, run every item plotter
// inside its own recovery boundary, run the draw hooks, and lay out the
// legend. The scene graph and geometry cache are replaced wholesale;
// identical configuration and view produce an identical scene and
// warning list.
func (pt *Plot) Draw() *Scene {
	if pt.drawing {
		// no reentrancy: an interaction callback must not trigger a
		// draw while one is in progress
		pt.Warn("plot: re-entrant draw ignored")
		return pt.Scene
	}
	pt.drawing = true
	defer func() { pt.drawing = false }()

	pt.warns = nil
	pt.warnSeen = map[string]bool{}
	pt.prims = pt.prims[:0]

	cf := pt.Config
	for _, w := range cf.Validate() {
		pt.Warn(w)
	}

	size := cf.Size
	if size.X <= 0 || size.Y <= 0 {
		size = image.Point{X: 800, Y: 600}
	}
	x, y := pt.View.Current(cf)
	x.Sanitize()
	y.Sanitize()
	pt.Transform = NewTransform(x, y, size, cf.Padding, cf.EqualAspect)

	sc := &Scene{Size: size, Background: "#ffffff"}
	pt.Scene = sc

	if cf.ShowGrid {
		sc.Groups = append(sc.Groups, pt.gridGroup())
	}
	if cf.ShowAxes {
		sc.Groups = append(sc.Groups, pt.axesGroup())
	}

	pt.curves = &Group{Name: "curves"}
	for i := range cf.Items {
		it := &cf.Items[i]
		if it.Style.Off || it.Kind == NoItem {
			continue
		}
		nf := Plotters[it.Kind]
		if nf == nil {
			pt.Warnf("item %d (%s): no plotter registered", i, it.Kind)
			continue
		}
		pt.safePlot(nf(it, i), i)
	}
	sc.Groups = append(sc.Groups, *pt.curves)

	pt.overlay = &Group{Name: "overlay"}
	for _, h := range pt.hooks {
		h(pt)
	}
	if len(pt.overlay.List) > 0 {
		sc.Groups = append(sc.Groups, *pt.overlay)
	}

	if cf.ShowLegend {
		if lg, ok := pt.legendGroup(); ok {
			sc.Groups = append(sc.Groups, lg)
		}
	}
	return sc
}

// safePlot runs one plotter inside a recovery boundary: a failure in
// one item never aborts the rendering of its siblings.
func (pt *Plot) safePlot(pl Plotter, idx int) {
	defer func() {
		if r := recover(); r != nil {
			pt.Warnf("item %d: rendering failed: %v", idx, r)
		}
	}()
	pl.Plot(pt)
}
