// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr compiles textual math expressions such as "a*sin(x) + x^2"
// into callable numeric functions. An expression is parsed once into a
// typed operator tree; named parameter values enter at evaluation time
// through an [Env], so changing a parameter never requires re-parsing.
//
// Equations of the form "lhs = rhs" are normalized at parse time into the
// zero-crossing expression "(lhs) - (rhs)", which is what allows the same
// machinery to serve both explicit functions y=f(x) and implicit
// relations F(x,y)=0.
//
// Evaluation follows math package semantics: domain violations such as
// sqrt(-1) yield NaN rather than an error, and callers are expected to
// treat non-finite results as "no value here".
package expr

import (
	"fmt"
	"math"
)

// Env is the variable environment for evaluating an expression:
// the current variable values plus the named parameter values.
type Env struct {
	X      float64
	Y      float64
	Params map[string]float64
}

// Func1 is a compiled single-variable function y = f(x).
type Func1 func(x float64) float64

// Func2 is a compiled two-variable scalar function F(x, y),
// whose zero set defines an implicit curve.
type Func2 func(x, y float64) float64

// Expr is a parsed expression, ready for repeated evaluation.
type Expr struct {
	// Src is the original expression text.
	Src string

	root node
	used map[string]bool
}

// Eval evaluates the expression in the given environment.
// Any panic during evaluation is recovered and reported as NaN,
// so a malformed runtime condition can never abort a draw.
func (ex *Expr) Eval(ev *Env) (res float64) {
	defer func() {
		if recover() != nil {
			res = math.NaN()
		}
	}()
	return ex.root.eval(ev)
}

// UsesVar reports whether the given variable name appears
// in the expression.
func (ex *Expr) UsesVar(name string) bool {
	return ex.used[name]
}

// Func1 binds the expression to the given parameter values and returns
// a single-variable function of x. The returned function is not safe
// for concurrent use; the engine is single-threaded per draw.
func (ex *Expr) Func1(params map[string]float64) Func1 {
	ev := &Env{Params: params}
	return func(x float64) float64 {
		ev.X = x
		return ex.Eval(ev)
	}
}

// Func2 binds the expression to the given parameter values and returns
// a two-variable function of x and y.
func (ex *Expr) Func2(params map[string]float64) Func2 {
	ev := &Env{Params: params}
	return func(x, y float64) float64 {
		ev.X = x
		ev.Y = y
		return ex.Eval(ev)
	}
}

// Compile1 parses src as a function of x with the given named parameter
// values and returns the bound function. The parameter values are captured
// by the returned closure; a changed parameter value requires re-compiling,
// which re-binds but does not re-parse if the caller retains the [Expr]
// from [Parse] instead.
func Compile1(src string, params map[string]float64) (Func1, error) {
	ex, err := Parse(src, []string{"x"}, paramNames(params))
	if err != nil {
		return nil, err
	}
	return ex.Func1(params), nil
}

// Compile2 parses src as a scalar function of x and y with the given
// named parameter values and returns the bound function. An equation
// "lhs = rhs" compiles to the zero-crossing form.
func Compile2(src string, params map[string]float64) (Func2, error) {
	ex, err := Parse(src, []string{"x", "y"}, paramNames(params))
	if err != nil {
		return nil, err
	}
	return ex.Func2(params), nil
}

func paramNames(params map[string]float64) []string {
	ns := make([]string, 0, len(params))
	for n := range params {
		ns = append(ns, n)
	}
	return ns
}

// Error is a compile-time expression error: structurally invalid input
// such as unbalanced parentheses or an unknown function name.
// Callers surface it as a warning; it is never fatal to a draw.
type Error struct {
	Src string
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("expr: %s at position %d in %q", e.Msg, e.Pos, e.Src)
}

//////// operator tree

type node interface {
	eval(ev *Env) float64
}

type numNode float64

func (n numNode) eval(ev *Env) float64 { return float64(n) }

// varNode indexes into the declared variables: 0 = x, 1 = y.
type varNode int

func (n varNode) eval(ev *Env) float64 {
	if n == 0 {
		return ev.X
	}
	return ev.Y
}

type paramNode string

func (n paramNode) eval(ev *Env) float64 {
	v, ok := ev.Params[string(n)]
	if !ok {
		return math.NaN()
	}
	return v
}

type negNode struct {
	x node
}

func (n *negNode) eval(ev *Env) float64 { return -n.x.eval(ev) }

type binaryNode struct {
	op  byte // one of + - * / ^
	lhs node
	rhs node
}

func (n *binaryNode) eval(ev *Env) float64 {
	a := n.lhs.eval(ev)
	b := n.rhs.eval(ev)
	switch n.op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	case '^':
		return pow(a, b)
	}
	return math.NaN()
}

// pow has an integer fast path: math.Pow(-8, 1/3.) is NaN, but small
// integer exponents are exact and far more common in plotted expressions.
func pow(a, b float64) float64 {
	if b == math.Trunc(b) && math.Abs(b) <= 64 {
		n := int(b)
		if n == 0 {
			return 1
		}
		neg := n < 0
		if neg {
			n = -n
		}
		r := 1.0
		for i := 0; i < n; i++ {
			r *= a
		}
		if neg {
			r = 1 / r
		}
		return r
	}
	return math.Pow(a, b)
}

type callNode struct {
	fn   *Function
	args []node
}

func (n *callNode) eval(ev *Env) float64 {
	var buf [2]float64
	args := buf[:len(n.args)]
	for i, a := range n.args {
		args[i] = a.eval(ev)
	}
	return n.fn.Call(args)
}
