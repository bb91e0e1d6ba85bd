// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Ops(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(4, 6)
	assert.Equal(t, Vec2(5, 8), a.Add(b))
	assert.Equal(t, Vec2(-3, -4), a.Sub(b))
	assert.Equal(t, float32(5), a.DistanceTo(b))
	assert.Equal(t, Vec2(2.5, 4), a.Lerp(b, 0.5))
}

func TestDistanceToSegment(t *testing.T) {
	a := Vec2(0, 0)
	b := Vec2(10, 0)

	d, tt := Vec2(5, 3).DistanceToSegment(a, b)
	assert.InDelta(t, 3, d, 1e-6)
	assert.InDelta(t, 0.5, tt, 1e-6)

	// beyond the ends the parameter clamps
	d, tt = Vec2(-4, 3).DistanceToSegment(a, b)
	assert.InDelta(t, 5, d, 1e-6)
	assert.Equal(t, float32(0), tt)

	d, tt = Vec2(14, 3).DistanceToSegment(a, b)
	assert.InDelta(t, 5, d, 1e-6)
	assert.Equal(t, float32(1), tt)

	// degenerate segment
	d, _ = Vec2(3, 4).DistanceToSegment(a, a)
	assert.InDelta(t, 5, d, 1e-6)
}
