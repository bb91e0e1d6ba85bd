// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SVGString returns an SVG representation of the scene as a string.
func (sc *Scene) SVGString() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "<svg xmlns=%q width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		"http://www.w3.org/2000/svg", sc.Size.X, sc.Size.Y, sc.Size.X, sc.Size.Y)
	if sc.Background != "" {
		fmt.Fprintf(b, "<rect width=\"%d\" height=\"%d\" fill=%q/>\n", sc.Size.X, sc.Size.Y, sc.Background)
	}
	for _, g := range sc.Groups {
		fmt.Fprintf(b, "<g class=%q>\n", g.Name)
		for _, d := range g.List {
			d.svg(b)
		}
		b.WriteString("</g>\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// WriteSVG writes the SVG representation of the scene to the given writer.
func (sc *Scene) WriteSVG(w io.Writer) error {
	_, err := io.WriteString(w, sc.SVGString())
	return err
}

// SVGToFile saves the SVG representation of the scene to the given file.
func (sc *Scene) SVGToFile(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := sc.WriteSVG(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// ftoa formats a pixel coordinate compactly.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}

func strokeAttrs(b *strings.Builder, ls *LineStyle) {
	fmt.Fprintf(b, " stroke=%q stroke-width=%q fill=\"none\"", ls.Color, ftoa(ls.Width))
	if len(ls.Dash) > 0 {
		ds := make([]string, len(ls.Dash))
		for i, d := range ls.Dash {
			ds[i] = ftoa(d)
		}
		fmt.Fprintf(b, " stroke-dasharray=%q", strings.Join(ds, " "))
	}
}

func (ln *Line) svg(b *strings.Builder) {
	fmt.Fprintf(b, "<line x1=%q y1=%q x2=%q y2=%q", ftoa(ln.Start.X), ftoa(ln.Start.Y), ftoa(ln.End.X), ftoa(ln.End.Y))
	strokeAttrs(b, &ln.Style)
	b.WriteString("/>\n")
}

func (pl *Polyline) svg(b *strings.Builder) {
	d := &strings.Builder{}
	for _, run := range pl.Runs {
		if len(run) < 2 {
			continue
		}
		for i, p := range run {
			if i == 0 {
				d.WriteString("M")
			} else {
				d.WriteString("L")
			}
			d.WriteString(ftoa(p.X))
			d.WriteString(",")
			d.WriteString(ftoa(p.Y))
		}
	}
	if d.Len() == 0 {
		return
	}
	fmt.Fprintf(b, "<path d=%q", d.String())
	strokeAttrs(b, &pl.Style)
	b.WriteString("/>\n")
}

func (cr *Circle) svg(b *strings.Builder) {
	fill := cr.Style.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(b, "<circle cx=%q cy=%q r=%q stroke=%q fill=%q/>\n",
		ftoa(cr.Center.X), ftoa(cr.Center.Y), ftoa(cr.Radius), cr.Style.Color, fill)
}

func (rc *Rect) svg(b *strings.Builder) {
	fill := rc.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(b, "<rect x=%q y=%q width=%q height=%q fill=%q",
		ftoa(rc.Min.X), ftoa(rc.Min.Y), ftoa(rc.Size.X), ftoa(rc.Size.Y), fill)
	if rc.Stroke != "" {
		fmt.Fprintf(b, " stroke=%q", rc.Stroke)
	}
	b.WriteString("/>\n")
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func (tx *Text) svg(b *strings.Builder) {
	anchor := tx.Anchor
	if anchor == "" {
		anchor = AnchorStart
	}
	st := tx.Style
	if st.Size == 0 {
		st.Size = 11
	}
	if st.Color == "" {
		st.Color = "#444444"
	}
	fmt.Fprintf(b, "<text x=%q y=%q text-anchor=%q font-size=%q fill=%q>%s</text>\n",
		ftoa(tx.Pos.X), ftoa(tx.Pos.Y), string(anchor), ftoa(st.Size), st.Color,
		textEscaper.Replace(tx.Text))
}
