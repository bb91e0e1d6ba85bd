// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"fmt"
	"math"

	"github.com/funcplot/funcplot/math32"
	"github.com/funcplot/funcplot/plot"
)

// States is the interaction state of the [Interactor].
type States int32

const (
	// Idle means no gesture is in progress.
	Idle States = iota

	// Panning means a pointer drag is translating the view.
	Panning

	// PinchZooming means a magnify gesture is rescaling the view.
	PinchZooming

	// DraggingSelection means a pointer drag is moving a selection
	// anchor along its pinned item.
	DraggingSelection
)

var stateNames = map[States]string{
	Idle:              "Idle",
	Panning:           "Panning",
	PinchZooming:      "PinchZooming",
	DraggingSelection: "DraggingSelection",
}

func (st States) String() string {
	if nm, ok := stateNames[st]; ok {
		return nm
	}
	return fmt.Sprintf("States(%d)", int32(st))
}

// SelectModes is the armed selection mode: what a pointer-down near a
// plotted item selects.
type SelectModes int32

const (
	// SelectNone disables selection; pointer-down pans.
	SelectNone SelectModes = iota

	// SelectPoint selects a single point on an item.
	SelectPoint

	// SelectSlope selects two anchors on an item and reports the
	// average rate of change between them.
	SelectSlope

	// SelectTangent selects one anchor and reports the instantaneous
	// derivative there.
	SelectTangent
)

var selectModeNames = map[SelectModes]string{
	SelectNone:    "SelectNone",
	SelectPoint:   "SelectPoint",
	SelectSlope:   "SelectSlope",
	SelectTangent: "SelectTangent",
}

func (sm SelectModes) String() string {
	if nm, ok := selectModeNames[sm]; ok {
		return nm
	}
	return fmt.Sprintf("SelectModes(%d)", int32(sm))
}

// Anchor is one selected position on a plotted item.
type Anchor struct {

	// Item is the index of the selected item in [plot.Config.Items].
	Item int

	// Kind is the selected item's kind.
	Kind plot.ItemKind

	// Pix is the anchor position in pixels.
	Pix math32.Vector2

	// Data is the anchor position in data space.
	Data plot.Point

	// Slope is the derivative at the anchor, for tangent selections;
	// infinite for vertical tangents, NaN when unavailable.
	Slope float64
}

// Selection is the current selection: the mode it was made in and its
// anchors (one, or two in slope mode).
type Selection struct {

	// Mode is the selection mode the anchors were made in.
	Mode SelectModes

	// Anchors are the selected positions, most recent last.
	Anchors []Anchor

	// Trace accumulates (x, slope) samples from tangent dragging when
	// tracing is enabled, for a linked derivative display.
	Trace []plot.Point
}

// Slope returns the average rate of change between the two anchors of a
// slope selection; infinite when they share an x, NaN without two
// anchors.
func (sl *Selection) Slope() float64 {
	if len(sl.Anchors) < 2 {
		return math.NaN()
	}
	a, b := sl.Anchors[0], sl.Anchors[len(sl.Anchors)-1]
	dx := b.Data.X - a.Data.X
	if dx == 0 {
		return math.Inf(1)
	}
	return (b.Data.Y - a.Data.Y) / dx
}
