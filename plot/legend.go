// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/funcplot/funcplot/math32"

// legend layout constants, in pixels
const (
	legendRowHeight = 16
	legendSwatchLen = 18
	legendPad       = 8
	legendCharWidth = 7 // coarse width estimate; consumers do real layout
)

// legendGroup builds the legend block in the top-right corner, one row
// per labeled item, in item order.
func (pt *Plot) legendGroup() (Group, bool) {
	gp := Group{Name: "legend"}
	type entry struct {
		label string
		style Style
	}
	var entries []entry
	maxLen := 0
	for i := range pt.Config.Items {
		it := &pt.Config.Items[i]
		if it.Style.Off || it.Style.Label == "" || it.Kind == NoItem {
			continue
		}
		entries = append(entries, entry{label: it.Style.Label, style: effectiveStyle(it.Style, i)})
		maxLen = max(maxLen, len(it.Style.Label))
	}
	if len(entries) == 0 {
		return gp, false
	}

	tr := pt.Transform
	w := float32(legendPad*3+legendSwatchLen) + float32(maxLen*legendCharWidth)
	h := float32(len(entries)*legendRowHeight + legendPad)
	x0 := float32(tr.Size.X) - tr.Pad - w - 4
	y0 := tr.Pad + 4
	gp.List = append(gp.List, &Rect{
		Min:    math32.Vec2(x0, y0),
		Size:   math32.Vec2(w, h),
		Fill:   "#ffffff",
		Stroke: "#cccccc",
	})

	ts := TextStyle{}
	ts.Defaults()
	for i, en := range entries {
		ry := y0 + float32(legendPad/2+i*legendRowHeight) + legendRowHeight/2
		gp.List = append(gp.List,
			&Line{
				Start: math32.Vec2(x0+legendPad, ry),
				End:   math32.Vec2(x0+legendPad+legendSwatchLen, ry),
				Style: en.style.Line,
			},
			&Text{
				Pos:    math32.Vec2(x0+legendPad*2+legendSwatchLen, ry+ts.Size/3),
				Text:   en.label,
				Anchor: AnchorStart,
				Style:  ts,
			})
	}
	return gp, true
}
