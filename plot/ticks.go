// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"

	"github.com/funcplot/funcplot/math32/minmax"
)

// Tick is a single axis tick mark with a value and label.
type Tick struct {
	Value float64
	Label string
}

// Ticks returns approximately want nicely-spaced tick marks covering the
// given range, using a 1/2/2.5/5 decimal step ladder.
func Ticks(rng minmax.F64, want int) []Tick {
	if want < 2 {
		want = 2
	}
	r := rng.Range()
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return nil
	}
	step := niceStep(r / float64(want))
	var ticks []Tick
	start := math.Ceil(rng.Min/step) * step
	for v := start; v <= rng.Max+step*1e-9; v += step {
		val := v
		if math.Abs(val) < step*1e-9 {
			val = 0 // avoid -1.2e-16 style zero labels
		}
		ticks = append(ticks, Tick{Value: val, Label: formatTick(val, step)})
	}
	return ticks
}

// niceStep rounds the given raw step up to the nearest value of the form
// {1, 2, 2.5, 5} * 10^k.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	frac := raw / mag
	switch {
	case frac <= 1:
		return mag
	case frac <= 2:
		return 2 * mag
	case frac <= 2.5:
		return 2.5 * mag
	case frac <= 5:
		return 5 * mag
	}
	return 10 * mag
}

func formatTick(v, step float64) string {
	if v == 0 {
		return "0"
	}
	if math.Abs(v) >= 1e6 || step < 1e-6 {
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	dec := 0
	for s := step; s < 0.999999 && dec < 9; s *= 10 {
		dec++
	}
	return strconv.FormatFloat(v, 'f', dec, 64)
}
