// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src string
		x   float64
		res float64
	}{
		{"x^2", 3, 9},
		{"x^2", -3, 9},
		{"-x^2", 3, -9},   // unary minus binds below ^
		{"(-x)^2", 3, 9},  //
		{"x^-2", 2, 0.25}, // signed exponent
		{"2^3^2", 0, 512}, // right associative
		{"2x", 4, 8},
		{"2x + 1", 4, 9},
		{"x(x+1)", 3, 12},
		{"(x+1)(x-1)", 3, 8},
		{"x/2/2", 8, 2},
		{"1 - 2 - 3", 0, -4},
		{"2pi", 0, 2 * math.Pi},
		{"pix", 2, 2 * math.Pi}, // pi*x
		{"e", 0, math.E},
		{"2e", 0, 2 * math.E},
		{"1e3", 0, 1000}, // exponent literal, not 1*e*3
		{"sin(0)", 0, 0},
		{"cos(0)", 0, 1},
		{"sqrt(x)", 16, 4},
		{"abs(-x)", 3, 3},
		{"xsin(x)", math.Pi / 2, math.Pi / 2},
		{"min(x, 2)", 5, 2},
		{"atan2(0, x)", 1, 0},
		{"ln(e)", 0, 1},
		{"sign(-x)", 5, -1},
	}
	for _, test := range tests {
		f, err := Compile1(test.src, nil)
		require.NoError(t, err, test.src)
		assert.InDelta(t, test.res, f(test.x), 1e-12, test.src)
	}
}

func TestParams(t *testing.T) {
	params := map[string]float64{"a": 2, "b": -1}
	tests := []struct {
		src string
		x   float64
		res float64
	}{
		{"a*x", 3, 6},
		{"ax", 3, 6}, // parameter adjacency
		{"ax + b", 3, 5},
		{"ab", 0, -2},      // a*b
		{"asin(1)", 0, math.Pi / 2}, // stays arcsine, not a*sin
		{"a^x", 3, 8},
	}
	for _, test := range tests {
		f, err := Compile1(test.src, params)
		require.NoError(t, err, test.src)
		assert.InDelta(t, test.res, f(test.x), 1e-12, test.src)
	}
}

func TestParamEnv(t *testing.T) {
	// one parse, many parameter values: no re-parsing needed
	ex, err := Parse("a*x^2", []string{"x"}, []string{"a"})
	require.NoError(t, err)
	for _, a := range []float64{-2, 0, 0.5, 3} {
		f := ex.Func1(map[string]float64{"a": a})
		assert.InDelta(t, a*25, f(5), 1e-12)
	}
}

func TestEquation(t *testing.T) {
	f, err := Compile2("x^2 + y^2 = 25", map[string]float64{})
	require.NoError(t, err)
	assert.InDelta(t, 0, f(3, 4), 1e-12)
	assert.InDelta(t, -25, f(0, 0), 1e-12)
	assert.InDelta(t, 75, f(10, 0), 1e-12)
}

func TestNaN(t *testing.T) {
	tests := []struct {
		src string
		x   float64
	}{
		{"sqrt(x)", -1},
		{"ln(x)", -1},
		{"asin(x)", 2},
		{"0/0 + x", 0},
	}
	for _, test := range tests {
		f, err := Compile1(test.src, nil)
		require.NoError(t, err, test.src)
		assert.True(t, math.IsNaN(f(test.x)), test.src)
	}

	// division by zero is an infinity, not NaN
	f, err := Compile1("1/x", nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(f(0), 1))
}

func TestCompileErrors(t *testing.T) {
	srcs := []string{
		"",
		"   ",
		"x +",
		"(x",
		"x)",
		"sin(x",
		"sin()",
		"sin(x, 1)",
		"sin",
		"foo(x)",
		"x $ 2",
		"q + 1",     // unknown name
		"x = 1 = 2", // multiple equals
		"y + 1",     // y not allowed in single-variable form
	}
	for _, src := range srcs {
		_, err := Compile1(src, nil)
		assert.Error(t, err, src)
		if err != nil {
			var ee *Error
			assert.ErrorAs(t, err, &ee, src)
		}
	}
}

func TestUsesVar(t *testing.T) {
	ex, err := Parse("x^2 + y", []string{"x", "y"}, nil)
	require.NoError(t, err)
	assert.True(t, ex.UsesVar("x"))
	assert.True(t, ex.UsesVar("y"))

	ex, err = Parse("x^2", []string{"x", "y"}, nil)
	require.NoError(t, err)
	assert.False(t, ex.UsesVar("y"))
}

func TestEvalRecover(t *testing.T) {
	// a panicking function must surface as NaN, never a crash
	Functions["boom"] = &Function{Name: "boom", Arity: 1,
		Call: func(args []float64) float64 { panic("boom") }}
	defer delete(Functions, "boom")

	f, err := Compile1("boom(x)", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f(1)))
}
