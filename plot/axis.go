// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/funcplot/funcplot/math32"

// the number of ticks to aim for on each axis
const wantTicks = 8

var (
	gridStyle = LineStyle{Color: "#e4e4e4", Width: 1}
	axisStyle = LineStyle{Color: "#444444", Width: 1}
	tickStyle = LineStyle{Color: "#444444", Width: 1}
)

const tickLen = 4

// gridGroup builds the background grid lines at the tick positions.
func (pt *Plot) gridGroup() Group {
	tr := pt.Transform
	gp := Group{Name: "grid"}
	top := tr.Pad
	bot := float32(tr.Size.Y) - tr.Pad
	left := tr.Pad
	right := float32(tr.Size.X) - tr.Pad
	for _, tk := range Ticks(tr.X, wantTicks) {
		px := tr.PX(tk.Value)
		gp.List = append(gp.List, &Line{Start: math32.Vec2(px, top), End: math32.Vec2(px, bot), Style: gridStyle})
	}
	for _, tk := range Ticks(tr.Y, wantTicks) {
		py := tr.PY(tk.Value)
		gp.List = append(gp.List, &Line{Start: math32.Vec2(left, py), End: math32.Vec2(right, py), Style: gridStyle})
	}
	return gp
}

// axesGroup builds the zero axis lines when visible, plus tick marks and
// labels along the bottom and left edges of the plot area.
func (pt *Plot) axesGroup() Group {
	tr := pt.Transform
	gp := Group{Name: "axes"}
	top := tr.Pad
	bot := float32(tr.Size.Y) - tr.Pad
	left := tr.Pad
	right := float32(tr.Size.X) - tr.Pad

	ts := TextStyle{}
	ts.Defaults()

	if tr.X.InRange(0) {
		px := tr.PX(0)
		gp.List = append(gp.List, &Line{Start: math32.Vec2(px, top), End: math32.Vec2(px, bot), Style: axisStyle})
	}
	if tr.Y.InRange(0) {
		py := tr.PY(0)
		gp.List = append(gp.List, &Line{Start: math32.Vec2(left, py), End: math32.Vec2(right, py), Style: axisStyle})
	}

	for _, tk := range Ticks(tr.X, wantTicks) {
		px := tr.PX(tk.Value)
		gp.List = append(gp.List,
			&Line{Start: math32.Vec2(px, bot), End: math32.Vec2(px, bot+tickLen), Style: tickStyle},
			&Text{Pos: math32.Vec2(px, bot+tickLen+ts.Size), Text: tk.Label, Anchor: AnchorMiddle, Style: ts})
	}
	for _, tk := range Ticks(tr.Y, wantTicks) {
		py := tr.PY(tk.Value)
		gp.List = append(gp.List,
			&Line{Start: math32.Vec2(left-tickLen, py), End: math32.Vec2(left, py), Style: tickStyle},
			&Text{Pos: math32.Vec2(left-tickLen-2, py+ts.Size/3), Text: tk.Label, Anchor: AnchorEnd, Style: ts})
	}
	return gp
}
