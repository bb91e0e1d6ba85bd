// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"math"

	"github.com/funcplot/funcplot/expr"
	"github.com/funcplot/funcplot/plot"
)

// diffStep returns the central-difference step at x, scaled so the
// estimate stays stable away from the origin.
func diffStep(x float64) float64 {
	return 1e-4 * math.Max(1, math.Abs(x))
}

// derivativeAt numerically estimates the slope of the given item at
// data point p: central difference for explicit functions, the implicit
// function theorem (-Fx/Fy from finite differences) for implicit
// curves, infinite for vertical lines, NaN for items without a defined
// tangent.
func derivativeAt(cf *plot.Config, item int, p plot.Point) float64 {
	it := &cf.Items[item]
	switch it.Kind {
	case plot.Function:
		f, err := expr.Compile1(it.Expr, cf.ParamValues())
		if err != nil {
			return math.NaN()
		}
		h := diffStep(p.X)
		return (f(p.X+h) - f(p.X-h)) / (2 * h)

	case plot.Implicit:
		f, err := expr.Compile2(it.Expr, cf.ParamValues())
		if err != nil {
			return math.NaN()
		}
		hx := diffStep(p.X)
		hy := diffStep(p.Y)
		fx := (f(p.X+hx, p.Y) - f(p.X-hx, p.Y)) / (2 * hx)
		fy := (f(p.X, p.Y+hy) - f(p.X, p.Y-hy)) / (2 * hy)
		if fy == 0 {
			return math.Inf(1) // vertical tangent
		}
		return -fx / fy

	case plot.VerticalLine:
		return math.Inf(1)
	}
	return math.NaN()
}
