// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/funcplot/funcplot/math32"

// Primitive is one hit-testable piece of plotted geometry: the pixel
// polyline runs (or points) of an item together with the data-space
// samples underneath them, produced by the plotters and replaced
// wholesale on every draw.
type Primitive struct {

	// Item is the index of the originating item in [Config.Items].
	Item int

	// Kind is the originating item kind.
	Kind ItemKind

	// IsPoint indicates discrete point geometry, measured by Euclidean
	// distance rather than point-to-segment projection.
	IsPoint bool

	// Runs are the pixel-space polyline runs (for IsPoint, bare points).
	Runs [][]math32.Vector2

	// Data are the data-space samples parallel to Runs.
	Data [][]Point
}

// Hit is the result of a nearest-primitive query.
type Hit struct {

	// Item is the index of the hit item in [Config.Items].
	Item int

	// Kind is the hit item kind.
	Kind ItemKind

	// Dist is the pixel distance from the query position.
	Dist float32

	// Pix is the snapped pixel position on the primitive.
	Pix math32.Vector2

	// Data is the snapped data-space point.
	Data Point
}

// AddPrimitive adds hit-test geometry for the current draw.
// Plotters call this alongside emitting their drawables.
func (pt *Plot) AddPrimitive(pr Primitive) {
	pt.prims = append(pt.prims, pr)
}

// Primitives returns the current hit-test geometry cache.
func (pt *Plot) Primitives() []Primitive {
	return pt.prims
}

// ClosestPrimitive returns the closest primitive point to the given
// pixel position within the given radius. A miss returns ok = false and
// changes nothing.
func (pt *Plot) ClosestPrimitive(pos math32.Vector2, radius float32) (Hit, bool) {
	return pt.closest(pos, radius, -1)
}

// ClosestOnItem is [Plot.ClosestPrimitive] restricted to the primitives
// of a single item, used to pin a drag to the item where it started.
func (pt *Plot) ClosestOnItem(item int, pos math32.Vector2, radius float32) (Hit, bool) {
	return pt.closest(pos, radius, item)
}

func (pt *Plot) closest(pos math32.Vector2, radius float32, item int) (Hit, bool) {
	best := Hit{Dist: radius}
	found := false
	for _, pr := range pt.prims {
		if item >= 0 && pr.Item != item {
			continue
		}
		for ri, run := range pr.Runs {
			if pr.IsPoint {
				for pi, pp := range run {
					d := pos.DistanceTo(pp)
					if d <= best.Dist {
						best = Hit{Item: pr.Item, Kind: pr.Kind, Dist: d, Pix: pp, Data: pr.Data[ri][pi]}
						found = true
					}
				}
				continue
			}
			for pi := 0; pi+1 < len(run); pi++ {
				d, t := pos.DistanceToSegment(run[pi], run[pi+1])
				if d <= best.Dist {
					a, b := pr.Data[ri][pi], pr.Data[ri][pi+1]
					ft := float64(t)
					best = Hit{
						Item: pr.Item, Kind: pr.Kind, Dist: d,
						Pix:  run[pi].Lerp(run[pi+1], t),
						Data: Point{X: a.X + (b.X-a.X)*ft, Y: a.Y + (b.Y-a.Y)*ft},
					}
					found = true
				}
			}
		}
	}
	return best, found
}
