package parse

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/ident"
	"zappem.net/pub/math/symalg/matherr"
	"zappem.net/pub/math/symalg/terms"
)

func newScope() *factor.Scope {
	return factor.NewScopeWith(&ident.Sequence{Prefix: "id"})
}

func TestParse(t *testing.T) {
	p := New(newScope())
	vs := []struct {
		in, want string
	}{
		{"0 + 0", "0"},
		{"2 + 2", "4"},
		{"x + x", "2x"},
		{"x - x", "0"},
		{"3x + 4x", "7x"},
		{"2*3", "6"},
		{"x*x", "x^2"},
		{"x^2 * x", "x^3"},
		{"-x", "-x"},
		{"-2x", "-2x"},
		{"1/2", "½"},
		{"½x", "½x"},
		{"x + 0", "x"},
		{"log(2, 8)", "3"},
		{"log(x, x)", "1"},
		{"x + ∞", "∞"},
		{"x + Infinity", "∞"},
		{"2π", "2π"},
		{"{x, 1 + 1}", "{x, 2}"},
		{"simplify(x + 0)", "x"},
		{"expand(2(x + 1))", "2x + 2"},
		{"-2^2", "-4"},
		{"(-2)^2", "4"},
		{"x^-1", "x^-1"},
		{"a_1 + a_1", "2a_1"},
	}
	for i, v := range vs {
		e, err := p.Parse(v.in)
		if err != nil {
			t.Errorf("[%d] %q failed: %v", i, v.in, err)
			continue
		}
		if got := e.String(); got != v.want {
			t.Errorf("[%d] %q got=%q want=%q", i, v.in, got, v.want)
		}
	}
}

func TestRawParse(t *testing.T) {
	p := New(newScope(), Raw())
	vs := []struct {
		in, want string
	}{
		{"x + x", "(x + x)"},
		{"2x - 3", "((2 * x) - 3)"},
		{"-x", "(-1 * x)"},
		{"1 + 2 * 3 ^ 4", "(1 + (2 * (3 ^ 4)))"},
		{"2^3^2", "(2 ^ (3 ^ 2))"},
		{"a / b / c", "((a / b) / c)"},
		{"log(2, y)", "log(2, y)"},
		{"{}", "{}"},
	}
	for i, v := range vs {
		e, err := p.Parse(v.in)
		if err != nil {
			t.Errorf("[%d] %q failed: %v", i, v.in, err)
			continue
		}
		if got := e.Text(factor.Parse); got != v.want {
			t.Errorf("[%d] %q got=%q want=%q", i, v.in, got, v.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	s := newScope()
	x, y := s.X(), s.Y()
	theta := s.NewVariable("θ", factor.Subscripted("1"))
	anon := s.NewVariable("")
	es := []terms.Expression{
		terms.NewSum(x, factor.Int(-2)),
		terms.NewDifference(x, terms.NewProduct(factor.Int(-2), y)),
		terms.NewPower(factor.Int(-2), factor.Int(2)),
		terms.NewPower(x, factor.Int(-1)),
		terms.NewQuotient(terms.NewPower(x, y), factor.Num(0.25)),
		terms.NewLog(factor.E, terms.NewProduct(factor.Pi, theta)),
		terms.NewSet(x, anon, factor.GenericC, factor.Infinity),
		terms.NewSimplify(terms.NewExpand(terms.NewNegation(x))),
		terms.NewProduct(factor.I, factor.Num(1e21)),
	}
	p := New(s, Raw())
	for i, e := range es {
		text := e.Text(factor.Parse)
		got, err := p.Parse(text)
		if err != nil {
			t.Errorf("[%d] %q failed: %v", i, text, err)
			continue
		}
		if !terms.Identical(got, e) {
			t.Errorf("[%d] got=%q want=%q", i, got.Text(factor.Parse), text)
		}
	}
}

func TestNewVariables(t *testing.T) {
	s := newScope()
	p := New(s)
	e, err := p.Parse("w_2 + w_2")
	require.NoError(t, err)
	w, ok := s.Lookup("w_2")
	require.True(t, ok)
	require.True(t, terms.Equal(e, terms.Mul(2, w)))
}

func TestParseErrors(t *testing.T) {
	p := New(newScope())
	for i, in := range []string{
		"",
		"x +",
		"(x",
		"x)",
		"log(x",
		"#nosuchid",
		"x $ y",
		"{x, y",
		"log(x)",
	} {
		_, err := p.Parse(in)
		require.Error(t, err, "[%d] %q", i, in)
		require.True(t, errors.Is(err, matherr.ErrMath), "[%d] %q: %v", i, in, err)
	}
}
