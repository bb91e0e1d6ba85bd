// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses src into an expression tree. vars lists the allowed
// variable names in order (e.g., "x" for a function, "x", "y" for an
// implicit relation), and params lists the declared parameter names.
//
// Multiplication is implicit between adjacent factors: "2x", "a x",
// "x(x+1)", "(x+1)(x-1)" all parse as products. A word such as "ax" is
// resolved against the declared names, so with a parameter a it means
// a*x, while "asin" always means the arcsine function. Unary minus binds
// more loosely than '^', so "-x^2" is -(x^2).
func Parse(src string, vars []string, params []string) (*Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 1 { // EOF only
		return nil, &Error{Src: src, Pos: 0, Msg: "empty expression"}
	}
	p := &parser{src: src, toks: toks, vars: map[string]int{}, params: map[string]bool{}, used: map[string]bool{}}
	for i, v := range vars {
		p.vars[v] = i
	}
	for _, pn := range params {
		p.params[pn] = true
	}
	var root node
	err = p.catch(func() {
		root = p.equation()
		if t := p.peek(); t.kind != tokEOF {
			p.fail(t.pos, "unexpected %s", t.describe())
		}
	})
	if err != nil {
		return nil, err
	}
	return &Expr{Src: src, root: root, used: p.used}, nil
}

//////// lexer

type tokenKind int32

const (
	tokEOF tokenKind = iota
	tokNumber
	tokWord
	tokOp // + - * / ^
	tokLParen
	tokRParen
	tokComma
	tokEquals
)

type token struct {
	kind tokenKind
	pos  int
	op   byte
	num  float64
	word string
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of expression"
	case tokNumber:
		return fmt.Sprintf("number %g", t.num)
	case tokWord:
		return fmt.Sprintf("name %q", t.word)
	case tokOp:
		return fmt.Sprintf("operator %q", string(t.op))
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	case tokComma:
		return `","`
	}
	return `"="`
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			// exponent only when a digit follows, so "2e" stays 2*e
			if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
				j := i + 1
				if j < len(src) && (src[j] == '+' || src[j] == '-') {
					j++
				}
				if j < len(src) && isDigit(src[j]) {
					i = j
					for i < len(src) && isDigit(src[i]) {
						i++
					}
				}
			}
			num, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, &Error{Src: src, Pos: start, Msg: fmt.Sprintf("invalid number %q", src[start:i])}
			}
			toks = append(toks, token{kind: tokNumber, pos: start, num: num})
		case isLetter(c):
			start := i
			for i < len(src) && isLetter(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokWord, pos: start, word: src[start:i]})
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokOp, pos: i, op: c})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, pos: i})
			i++
		case c == '=':
			toks = append(toks, token{kind: tokEquals, pos: i})
			i++
		default:
			return nil, &Error{Src: src, Pos: i, Msg: fmt.Sprintf("invalid character %q", string(c))}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

//////// parser

type parser struct {
	src    string
	toks   []token
	i      int
	vars   map[string]int
	params map[string]bool
	used   map[string]bool
}

// fail panics with a compile error; recovered in catch.
func (p *parser) fail(pos int, format string, args ...any) {
	panic(&Error{Src: p.src, Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

func (p *parser) catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*Error); ok {
				err = ee
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) peekOp(op byte) bool {
	t := p.peek()
	return t.kind == tokOp && t.op == op
}

// equation parses "lhs" or "lhs = rhs", normalizing the latter
// to "(lhs) - (rhs)".
func (p *parser) equation() node {
	lhs := p.add()
	if p.peek().kind != tokEquals {
		return lhs
	}
	p.next()
	rhs := p.add()
	if p.peek().kind == tokEquals {
		p.fail(p.peek().pos, "multiple %q in expression", "=")
	}
	return &binaryNode{op: '-', lhs: lhs, rhs: rhs}
}

func (p *parser) add() node {
	n := p.mul()
	for {
		switch {
		case p.peekOp('+'):
			p.next()
			n = &binaryNode{op: '+', lhs: n, rhs: p.mul()}
		case p.peekOp('-'):
			p.next()
			n = &binaryNode{op: '-', lhs: n, rhs: p.mul()}
		default:
			return n
		}
	}
}

// startsFactor reports whether the token can begin a factor, which is
// what makes adjacency an implicit multiplication.
func startsFactor(t token) bool {
	return t.kind == tokNumber || t.kind == tokWord || t.kind == tokLParen
}

func (p *parser) mul() node {
	n := p.unary()
	for {
		switch {
		case p.peekOp('*'):
			p.next()
			n = &binaryNode{op: '*', lhs: n, rhs: p.unary()}
		case p.peekOp('/'):
			p.next()
			n = &binaryNode{op: '/', lhs: n, rhs: p.unary()}
		case startsFactor(p.peek()):
			n = &binaryNode{op: '*', lhs: n, rhs: p.unary()}
		default:
			return n
		}
	}
}

func (p *parser) unary() node {
	switch {
	case p.peekOp('+'):
		p.next()
		return p.unary()
	case p.peekOp('-'):
		p.next()
		// the recursion parses the full power expression,
		// so -x^2 is -(x^2), not (-x)^2
		return &negNode{x: p.unary()}
	}
	return p.power()
}

func (p *parser) power() node {
	base := p.primary()
	if p.peekOp('^') {
		p.next()
		// right-associative; exponent may carry its own sign: x^-2
		return &binaryNode{op: '^', lhs: base, rhs: p.unary()}
	}
	return base
}

func (p *parser) primary() node {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numNode(t.num)
	case tokLParen:
		n := p.add()
		if p.peek().kind != tokRParen {
			p.fail(t.pos, "missing closing parenthesis")
		}
		p.next()
		return n
	case tokWord:
		return p.word(t)
	case tokRParen:
		p.fail(t.pos, "unbalanced parenthesis")
	}
	p.fail(t.pos, "unexpected %s", t.describe())
	return nil
}

// word resolves an identifier: a variable, parameter, constant, or
// function call, falling back to adjacency splitting for forms like
// "ax" (a*x with a declared parameter a) or "pix" (pi*x).
func (p *parser) word(t token) node {
	w := t.word
	if idx, ok := p.vars[w]; ok {
		p.used[w] = true
		return varNode(idx)
	}
	if p.params[w] {
		return paramNode(w)
	}
	if c, ok := Constants[w]; ok {
		return numNode(c)
	}
	if fn, ok := Functions[w]; ok {
		if p.peek().kind != tokLParen {
			p.fail(t.pos, "missing argument list for function %q", w)
		}
		return p.call(fn, t.pos)
	}
	return p.splitWord(w, t.pos)
}

// splitWord resolves a multi-letter word as a product of declared names,
// e.g. "ax" -> a*x, "pix" -> pi*x, "xsin(x)" -> x*sin(x). Any remainder
// that resolves to nothing is an unknown-name compile error.
func (p *parser) splitWord(w string, pos int) node {
	var parts []node
	i := 0
	for i < len(w) {
		rest := w[i:]

		// longest declared parameter prefix
		best := ""
		for name := range p.params {
			if len(name) > len(best) && strings.HasPrefix(rest, name) {
				best = name
			}
		}
		if best != "" {
			parts = append(parts, paramNode(best))
			i += len(best)
			continue
		}

		// constant prefix, longest first so "pi" beats nothing
		best = ""
		for name := range Constants {
			if len(name) > len(best) && strings.HasPrefix(rest, name) {
				best = name
			}
		}
		if best != "" {
			parts = append(parts, numNode(Constants[best]))
			i += len(best)
			continue
		}

		// variable prefix
		matched := false
		for name, idx := range p.vars {
			if strings.HasPrefix(rest, name) {
				p.used[name] = true
				parts = append(parts, varNode(idx))
				i += len(name)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// trailing function call: "xsin(x)"
		if fn, ok := Functions[rest]; ok && p.peek().kind == tokLParen {
			parts = append(parts, p.call(fn, pos+i))
			i = len(w)
			continue
		}

		p.fail(pos, "unknown name %q", w)
	}
	n := parts[0]
	for _, rhs := range parts[1:] {
		n = &binaryNode{op: '*', lhs: n, rhs: rhs}
	}
	return n
}

func (p *parser) call(fn *Function, pos int) node {
	p.next() // (
	var args []node
	if p.peek().kind != tokRParen {
		for {
			args = append(args, p.add())
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if p.peek().kind != tokRParen {
		p.fail(pos, "missing closing parenthesis in call to %q", fn.Name)
	}
	p.next()
	if len(args) != fn.Arity {
		p.fail(pos, "function %q expects %d argument(s), got %d", fn.Name, fn.Arity, len(args))
	}
	return &callNode{fn: fn, args: args}
}
