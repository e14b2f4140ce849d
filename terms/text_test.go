package terms

import (
	"testing"

	"zappem.net/pub/math/symalg/factor"
)

func TestText(t *testing.T) {
	s, x, y, z := fixture()
	one, two := factor.Int(1), factor.Int(2)
	vs := []struct {
		e                  Expression
		def, latex, parsed string
	}{
		{NewSum(x, y), "x + y", "x + y", "(x + y)"},
		{NewDifference(x, y), "x - y", "x - y", "(x - y)"},
		{NewSum(x, factor.Int(-2)), "x - 2", "x - 2", "(x + -2)"},
		{NewSum(x, NewProduct(factor.Int(-3), y)), "x - 3y", "x - 3y", "(x + (-3 * y))"},
		{NewDifference(x, NewSum(y, z)), "x - (y + z)", `x - \left(y + z\right)`, "(x - (y + z))"},
		{NewDifference(x, NewNegation(y)), "x - (-y)", `x - \left(-y\right)`, "(x - (-1 * y))"},
		{NewProduct(two, x), "2x", "2x", "(2 * x)"},
		{NewProduct(x, y), "x*y", `x \cdot y`, "(x * y)"},
		{NewProduct(factor.Num(0.5), x), "½x", `\frac{1}{2}x`, "(0.5 * x)"},
		{NewNegation(x), "-x", "-x", "(-1 * x)"},
		{NewProduct(two, NewSum(x, one)), "2(x + 1)", `2\left(x + 1\right)`, "(2 * (x + 1))"},
		{NewProduct(two, NewPower(factor.Int(3), x)), "2*3^x", `2 \cdot 3^{x}`, "(2 * (3 ^ x))"},
		{NewQuotient(x, y), "x / y", `\frac{x}{y}`, "(x / y)"},
		{NewQuotient(NewSum(x, y), z), "(x + y) / z", `\frac{x + y}{z}`, "((x + y) / z)"},
		{NewPower(x, two), "x^2", "x^{2}", "(x ^ 2)"},
		{NewPower(x, factor.Int(-1)), "x^-1", "x^{-1}", "(x ^ -1)"},
		{NewPower(NewSum(x, y), two), "(x + y)^2", `\left(x + y\right)^{2}`, "((x + y) ^ 2)"},
		{NewPower(factor.Int(-2), two), "(-2)^2", `\left(-2\right)^{2}`, "((-2) ^ 2)"},
		{NewLog(two, x), "log_2(x)", `\log_{2}\left(x\right)`, "log(2, x)"},
		{NewSet(x, y), "{x, y}", `\left\{x, y\right\}`, "{x, y}"},
		{NewSimplify(x), "simplify(x)", `\operatorname{simplify}\left(x\right)`, "simplify(x)"},
		{NewExpand(NewSum(x, y)), "expand(x + y)", `\operatorname{expand}\left(x + y\right)`, "expand((x + y))"},
		{NewProduct(factor.Pi, x), "π*x", `\pi \cdot x`, "(π * x)"},
	}
	for i, v := range vs {
		if got := v.e.Text(factor.Default); got != v.def {
			t.Errorf("[%d] default got=%q want=%q", i, got, v.def)
		}
		if got := v.e.Text(factor.LaTeX); got != v.latex {
			t.Errorf("[%d] latex got=%q want=%q", i, got, v.latex)
		}
		if got := v.e.Text(factor.Parse); got != v.parsed {
			t.Errorf("[%d] parse got=%q want=%q", i, got, v.parsed)
		}
	}

	anon := s.NewVariable("", factor.WithID("abcdefghij"))
	e := NewSum(anon, x)
	if got, want := e.Text(factor.Default), "#abcde… + x"; got != want {
		t.Errorf("default got=%q want=%q", got, want)
	}
	if got, want := e.Text(factor.FullID), "#abcdefghij + x"; got != want {
		t.Errorf("full got=%q want=%q", got, want)
	}
}
