// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"strings"

	"github.com/funcplot/funcplot/base/iox/jsonx"
	"github.com/funcplot/funcplot/expr"
	"github.com/funcplot/funcplot/math32/minmax"
	"github.com/jinzhu/copier"
)

// Config is the complete description of what to plot, supplied wholesale
// by the hosting UI on every edit. The engine treats it as immutable per
// draw; the only engine-owned derived state layered on top is the [View]
// pan/zoom override.
type Config struct {

	// XLim and YLim are the static data-space limits of the plot,
	// which apply whenever the view override is unset.
	XLim minmax.F64 `json:"xlim"`
	YLim minmax.F64 `json:"ylim"`

	// Size is the pixel size of the canvas.
	Size image.Point `json:"size"`

	// Padding is the pixel padding inside the canvas edges.
	Padding float32 `json:"padding"`

	// display toggles
	ShowGrid   bool `json:"showGrid"`
	ShowAxes   bool `json:"showAxes"`
	ShowLegend bool `json:"showLegend"`

	// EqualAspect recenters the Y range so one data unit spans the same
	// number of pixels on both axes.
	EqualAspect bool `json:"equalAspect"`

	// ClampView prevents pan and zoom from moving the view outside the
	// configured limits.
	ClampView bool `json:"clampView"`

	// Interactive enables pan / zoom / selection interactions.
	Interactive bool `json:"interactive"`

	// Params are the named parameters available to all item expressions.
	Params []Param `json:"params"`

	// Items are the mathematical objects to render, in draw order.
	Items []Item `json:"items"`

	// SampleStepPx is the pixel width covered by one coarse sampling step
	// of the adaptive curve sampler.
	SampleStepPx float32 `json:"sampleStepPx"`

	// CurveTolerancePx is the maximum pixel deviation of a curve midpoint
	// from its chord before the sampler subdivides.
	CurveTolerancePx float32 `json:"curveTolerancePx"`

	// MaxBisectDepth is the maximum recursive bisection depth of the
	// adaptive curve sampler.
	MaxBisectDepth int `json:"maxBisectDepth"`

	// BreakJumpFrac is the pixel jump between adjacent curve samples,
	// as a fraction of the canvas height, beyond which the curve is
	// broken into separate runs (asymptote suspicion).
	BreakJumpFrac float32 `json:"breakJumpFrac"`

	// BridgeJumpFrac is the tighter fraction of the canvas height below
	// which a jump across an invalid midpoint is still bridged directly
	// (removable discontinuity heuristic).
	BridgeJumpFrac float32 `json:"bridgeJumpFrac"`

	// GridN is the implicit-contour marching squares grid resolution.
	GridN int `json:"gridN"`

	// SnapRadiusPx is the pixel radius for snapping selection queries
	// to the nearest plotted primitive.
	SnapRadiusPx float32 `json:"snapRadiusPx"`

	// DragStartPx is the pixel movement distance that turns a click into
	// a drag, which governs click-to-deselect.
	DragStartPx float32 `json:"dragStartPx"`
}

// Defaults sets default configuration values. The numeric thresholds are
// hand-tuned rendering heuristics, not contracts; override freely.
func (cf *Config) Defaults() {
	cf.XLim.Set(-10, 10)
	cf.YLim.Set(-10, 10)
	cf.Size = image.Point{X: 800, Y: 600}
	cf.Padding = 20
	cf.ShowGrid = true
	cf.ShowAxes = true
	cf.ShowLegend = true
	cf.Interactive = true
	cf.SampleStepPx = 2
	cf.CurveTolerancePx = 0.2
	cf.MaxBisectDepth = 8
	cf.BreakJumpFrac = 1
	cf.BridgeJumpFrac = 0.25
	cf.GridN = 60
	cf.SnapRadiusPx = 40
	cf.DragStartPx = 4
}

// NewConfig returns a new [Config] with defaults applied.
func NewConfig() *Config {
	cf := &Config{}
	cf.Defaults()
	return cf
}

// Clone returns a deep copy of the configuration.
func (cf *Config) Clone() *Config {
	cp := &Config{}
	if err := copier.CopyWithOption(cp, cf, copier.Option{DeepCopy: true}); err != nil {
		*cp = *cf
	}
	return cp
}

// ParamValues returns the current parameter values by name, which is the
// form the expression compiler consumes.
func (cf *Config) ParamValues() map[string]float64 {
	pv := make(map[string]float64, len(cf.Params))
	for _, pr := range cf.Params {
		pv[pr.Name] = pr.Value
	}
	return pv
}

// Param returns the parameter with the given name, or nil.
func (cf *Config) Param(name string) *Param {
	for i := range cf.Params {
		if cf.Params[i].Name == name {
			return &cf.Params[i]
		}
	}
	return nil
}

// Validate checks the configuration for problems that can be worked
// around, returning them as human-readable warnings. Drawing proceeds
// best-effort regardless.
func (cf *Config) Validate() []string {
	var warns []string
	seen := map[string]bool{}
	for _, pr := range cf.Params {
		switch {
		case pr.Name == "":
			warns = append(warns, "param: missing name")
		case pr.Name == "x" || pr.Name == "y":
			warns = append(warns, fmt.Sprintf("param %q: shadows a variable name", pr.Name))
		case expr.Functions[pr.Name] != nil:
			warns = append(warns, fmt.Sprintf("param %q: shadows a function name", pr.Name))
		case seen[pr.Name]:
			warns = append(warns, fmt.Sprintf("param %q: duplicate name", pr.Name))
		}
		seen[pr.Name] = true
		if pr.Min > pr.Max {
			warns = append(warns, fmt.Sprintf("param %q: min is greater than max", pr.Name))
		}
	}
	for i, it := range cf.Items {
		switch it.Kind {
		case NoItem:
			warns = append(warns, fmt.Sprintf("item %d: unknown kind, skipped", i))
		case Function, Implicit:
			if it.Expr == "" {
				warns = append(warns, fmt.Sprintf("item %d (%s): missing expr", i, it.Kind))
			}
		case Points, Interpolation:
			if len(it.Points) == 0 {
				warns = append(warns, fmt.Sprintf("item %d (%s): missing points", i, it.Kind))
			}
		}
	}
	if cf.Size.X <= 0 || cf.Size.Y <= 0 {
		warns = append(warns, "config: non-positive canvas size, using default")
	}
	return warns
}

// DecodeConfig decodes a JSON configuration over defaults. An unknown
// field is reported as a warning, not an error, and decoding proceeds
// leniently, per the best-effort diagnostics policy.
func DecodeConfig(data []byte) (*Config, []string, error) {
	cf := NewConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cf)
	if err == nil {
		return cf, nil, nil
	}
	if !strings.Contains(err.Error(), "unknown field") {
		return nil, nil, err
	}
	warns := []string{"configuration: " + err.Error()}
	cf = NewConfig()
	if err := jsonx.ReadBytes(cf, data); err != nil {
		return nil, warns, err
	}
	return cf, warns, nil
}

// Param is a named value available to every item expression, typically
// bound to a slider in the hosting UI.
type Param struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
}

// Point is a data-space point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ItemKind is the kind of mathematical object a [Item] renders.
type ItemKind int32

const (
	// NoItem is an unrecognized item kind; such items are skipped.
	NoItem ItemKind = iota

	// Function is an explicit curve y = f(x).
	Function

	// Implicit is the zero set of F(x, y), or an equation lhs = rhs.
	Implicit

	// VerticalLine is the line x = constant, optionally restricted in y.
	VerticalLine

	// Points is a set of discrete data-space points.
	Points

	// Interpolation is a smoothed curve through a set of points.
	Interpolation
)

var itemKindNames = map[ItemKind]string{
	NoItem:        "none",
	Function:      "function",
	Implicit:      "implicit",
	VerticalLine:  "vline",
	Points:        "points",
	Interpolation: "interpolation",
}

func (ik ItemKind) String() string {
	return itemKindNames[ik]
}

// MarshalText implements [encoding.TextMarshaler].
func (ik ItemKind) MarshalText() ([]byte, error) {
	return []byte(ik.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. An unrecognized
// kind decodes as NoItem, which surfaces as a validation warning instead
// of aborting the whole configuration.
func (ik *ItemKind) UnmarshalText(text []byte) error {
	s := string(text)
	for k, n := range itemKindNames {
		if n == s {
			*ik = k
			return nil
		}
	}
	*ik = NoItem
	return nil
}

// Item is one mathematical object to render: a tagged union over
// [ItemKind], owned by the [Config] and consumed once per draw.
type Item struct {

	// Kind selects which of the remaining fields apply.
	Kind ItemKind `json:"kind"`

	// Expr is the expression text for Function ("x^2", "a*sin(x)") and
	// Implicit ("x^2 + y^2 = 25") items.
	Expr string `json:"expr,omitempty"`

	// Domain optionally restricts the x range of a Function item.
	Domain *minmax.F64 `json:"domain,omitempty"`

	// X is the position of a VerticalLine item.
	X float64 `json:"x,omitempty"`

	// Range optionally restricts the y range of a VerticalLine item.
	Range *minmax.F64 `json:"range,omitempty"`

	// Points are the data points of Points and Interpolation items.
	Points []Point `json:"points,omitempty"`

	// Smoothness in [0, 1] controls the tangent scaling of an
	// Interpolation item; 0 is piecewise linear.
	Smoothness float64 `json:"smoothness,omitempty"`

	// Style has the display styling for this item.
	Style Style `json:"style"`
}
