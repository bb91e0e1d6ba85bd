// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the given scalar.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length of this vector.
func (v Vector2) Length() float32 {
	return Hypot(v.X, v.Y)
}

// DistanceTo returns the distance from this point to the other given point.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return Hypot(v.X-other.X, v.Y-other.Y)
}

// Lerp returns a vector linearly interpolated between this vector and
// the other given vector, with the given interpolation factor.
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {
	return Vec2(v.X+(other.X-v.X)*t, v.Y+(other.Y-v.Y)*t)
}

// DistanceToSegment returns the distance from this point to the line
// segment from a to b, and the projection factor t in [0, 1] giving the
// closest point on the segment as a.Lerp(b, t).
func (v Vector2) DistanceToSegment(a, b Vector2) (dist, t float32) {
	ab := b.Sub(a)
	ll := ab.Dot(ab)
	if ll == 0 {
		return v.DistanceTo(a), 0
	}
	t = Clamp(v.Sub(a).Dot(ab)/ll, 0, 1)
	return v.DistanceTo(a.Lerp(b, t)), t
}
