// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/funcplot/funcplot/plot"
)

// parseColor parses a #rrggbb hex color; anything unparseable comes
// back as opaque black.
func parseColor(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// rasterize draws the scene onto an ebiten image, segment by segment.
// Dash patterns are not reproduced; dashed guides draw solid.
func rasterize(dst *ebiten.Image, sc *plot.Scene) {
	if sc.Background != "" {
		dst.Fill(parseColor(sc.Background))
	}
	for _, g := range sc.Groups {
		for _, d := range g.List {
			rasterDrawable(dst, d)
		}
	}
}

func rasterDrawable(dst *ebiten.Image, d plot.Drawable) {
	switch dr := d.(type) {
	case *plot.Line:
		vector.StrokeLine(dst, dr.Start.X, dr.Start.Y, dr.End.X, dr.End.Y,
			lineWidth(dr.Style.Width), parseColor(dr.Style.Color), true)
	case *plot.Polyline:
		clr := parseColor(dr.Style.Color)
		w := lineWidth(dr.Style.Width)
		for _, run := range dr.Runs {
			for i := 1; i < len(run); i++ {
				vector.StrokeLine(dst, run[i-1].X, run[i-1].Y, run[i].X, run[i].Y, w, clr, true)
			}
		}
	case *plot.Circle:
		if dr.Style.Fill != "" {
			vector.DrawFilledCircle(dst, dr.Center.X, dr.Center.Y, dr.Radius,
				parseColor(dr.Style.Fill), true)
		}
		vector.StrokeCircle(dst, dr.Center.X, dr.Center.Y, dr.Radius, 1,
			parseColor(dr.Style.Color), true)
	case *plot.Rect:
		if dr.Fill != "" {
			vector.DrawFilledRect(dst, dr.Min.X, dr.Min.Y, dr.Size.X, dr.Size.Y,
				parseColor(dr.Fill), true)
		}
		if dr.Stroke != "" {
			vector.StrokeRect(dst, dr.Min.X, dr.Min.Y, dr.Size.X, dr.Size.Y, 1,
				parseColor(dr.Stroke), true)
		}
	case *plot.Text:
		rasterText(dst, dr)
	}
}

func rasterText(dst *ebiten.Image, tx *plot.Text) {
	face := basicfont.Face7x13
	x := int(tx.Pos.X)
	w := len(tx.Text) * face.Advance
	switch tx.Anchor {
	case plot.AnchorMiddle:
		x -= w / 2
	case plot.AnchorEnd:
		x -= w
	}
	clr := parseColor(tx.Style.Color)
	if tx.Style.Color == "" {
		clr = parseColor("#444444")
	}
	text.Draw(dst, tx.Text, face, x, int(tx.Pos.Y), clr)
}

func lineWidth(w float32) float32 {
	if w <= 0 {
		return 1
	}
	return w
}
