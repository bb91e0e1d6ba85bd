// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// Function is a named math function callable from an expression.
type Function struct {
	Name  string
	Arity int
	Call  func(args []float64) float64
}

// Functions is the set of functions recognized in expressions,
// keyed by name. All map onto the standard math package, so domain
// violations yield NaN per its semantics.
var Functions = map[string]*Function{}

// Constants is the set of named constants recognized in expressions.
var Constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func fn1(name string, f func(float64) float64) {
	Functions[name] = &Function{Name: name, Arity: 1,
		Call: func(args []float64) float64 { return f(args[0]) }}
}

func fn2(name string, f func(float64, float64) float64) {
	Functions[name] = &Function{Name: name, Arity: 2,
		Call: func(args []float64) float64 { return f(args[0], args[1]) }}
}

func init() {
	fn1("sin", math.Sin)
	fn1("cos", math.Cos)
	fn1("tan", math.Tan)
	fn1("asin", math.Asin)
	fn1("acos", math.Acos)
	fn1("atan", math.Atan)
	fn1("sinh", math.Sinh)
	fn1("cosh", math.Cosh)
	fn1("tanh", math.Tanh)
	fn1("exp", math.Exp)
	fn1("ln", math.Log)
	fn1("log", math.Log10)
	fn1("log2", math.Log2)
	fn1("sqrt", math.Sqrt)
	fn1("abs", math.Abs)
	fn1("floor", math.Floor)
	fn1("ceil", math.Ceil)
	fn1("round", math.Round)
	fn1("sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return x // preserves 0 and NaN
	})
	fn2("atan2", math.Atan2)
	fn2("min", math.Min)
	fn2("max", math.Max)
	fn2("pow", math.Pow)
}
