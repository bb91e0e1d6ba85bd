// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funcplot/funcplot/math32/minmax"
)

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransform(minmax.Range(-10, 10), minmax.Range(-5, 5),
		image.Point{X: 800, Y: 600}, 20, false)
	for _, x := range []float64{-10, -3.7, 0, 0.001, 9.99, 10} {
		assert.InDelta(t, x, tr.DataX(tr.PX(x)), 1e-4, "x=%v", x)
	}
	for _, y := range []float64{-5, -1.2, 0, 3.3, 5} {
		assert.InDelta(t, y, tr.DataY(tr.PY(y)), 1e-4, "y=%v", y)
	}
}

func TestTransformOrientation(t *testing.T) {
	tr := NewTransform(minmax.Range(-10, 10), minmax.Range(-10, 10),
		image.Point{X: 800, Y: 600}, 20, false)
	// data y increases upward, screen y downward
	assert.Less(t, tr.PY(5), tr.PY(-5))
	assert.Less(t, tr.PX(-5), tr.PX(5))
	assert.Equal(t, float32(20), tr.PX(-10))
	assert.Equal(t, float32(780), tr.PX(10))
	assert.Equal(t, float32(580), tr.PY(-10))
	assert.Equal(t, float32(20), tr.PY(10))
}

func TestTransformEqualAspect(t *testing.T) {
	tr := NewTransform(minmax.Range(-10, 10), minmax.Range(-10, 10),
		image.Point{X: 800, Y: 600}, 20, true)
	// 20 data units over 760px is 38px per unit on both axes
	uppX := tr.X.Range() / float64(tr.PlotWidth())
	uppY := tr.Y.Range() / float64(tr.PlotHeight())
	assert.InDelta(t, uppX, uppY, 1e-9)
	// recentered about the original midpoint
	assert.InDelta(t, 0, tr.Y.Midpoint(), 1e-9)
}

func TestTicksNice(t *testing.T) {
	ticks := Ticks(minmax.Range(-10, 10), 8)
	assert.NotEmpty(t, ticks)
	for i := 1; i < len(ticks); i++ {
		assert.InDelta(t, 2.5, ticks[i].Value-ticks[i-1].Value, 1e-9)
	}
	for _, tk := range ticks {
		if tk.Value == 0 {
			assert.Equal(t, "0", tk.Label)
		}
	}
}

func TestTicksSmallRange(t *testing.T) {
	ticks := Ticks(minmax.Range(0.001, 0.002), 5)
	assert.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.GreaterOrEqual(t, tk.Value, 0.001-1e-12)
		assert.LessOrEqual(t, tk.Value, 0.002+1e-12)
	}
}

func TestTicksDegenerate(t *testing.T) {
	assert.Empty(t, Ticks(minmax.Range(5, 5), 8))
}
