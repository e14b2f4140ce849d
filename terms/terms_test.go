package terms

import (
	"testing"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/ident"
)

// fixture returns a scope with sequential identifiers and its x, y and
// z variables.
func fixture() (s *factor.Scope, x, y, z *factor.Variable) {
	s = factor.NewScopeWith(&ident.Sequence{Prefix: "id"})
	return s, s.X(), s.Y(), s.Z()
}

func TestScenarios(t *testing.T) {
	_, x, y, _ := fixture()
	vs := []struct {
		e    Expression
		want string
	}{
		{Add(0, 0), "0"},
		{Add(2, 2), "4"},
		{Add(5, 0), "5"},
		{Add(x, x), "2x"},
		{Sub(x, x), "0"},
		{Add(x, 0), "x"},
		{Add(0, x), "x"},
		{Add(Mul(3, x), Mul(4, x)), "7x"},
		{Add(x, factor.Infinity), "∞"},
		{Add(factor.Infinity, x), "∞"},
		{Sub(x, factor.Infinity), "-∞"},
		{Sub(Mul(3, x), x), "2x"},
		{Sub(x, Mul(3, x)), "-2x"},
		{Mul(x, x), "x^2"},
		{Mul(Pow(x, 2), x), "x^3"},
		{Mul(x, 3), "3x"},
		{Mul(2, Mul(3, x)), "6x"},
		{Mul(0, x), "0"},
		{Neg(Neg(x)), "x"},
		{Mul(Neg(x), Neg(x)), "x^2"},
		{Div(x, x), "1"},
		{Div(1, 4), "¼"},
		{Div(Pow(x, 3), x), "x^2"},
		{Div(Mul(2, x), x), "2"},
		{Div(x, 0), "x / 0"},
		{Pow(x, 0), "1"},
		{Pow(x, 1), "x"},
		{Pow(1, x), "1"},
		{Pow(2, 10), "1024"},
		{Pow(Pow(x, 2), 3), "x^6"},
		{Log(2, 8), "3"},
		{Log(x, Pow(x, 5)), "5"},
		{Log(x, 1), "0"},
		{Log(1, x), "log_1(x)"},
		{Add(Sub(x, y), y), "x"},
		{Add(Add(x, 1), Add(x, 1)), "2(x + 1)"},
		{Expand(Pow(Add(x, 1), 2)), "x^2 + 2x + 1"},
		{Expand(Mul(Sub(x, 1), Add(x, 1))), "x^2 - 1"},
		{Expand(Neg(Add(x, y))), "-x - y"},
		{Simplify(NewSum(NewProduct(x, factor.Int(1)), factor.Int(0))), "x"},
	}
	for i, v := range vs {
		if got := v.e.String(); got != v.want {
			t.Errorf("[%d] got=%q want=%q", i, got, v.want)
		}
	}
	if e := Add(x, factor.Infinity); !Identical(e, factor.Infinity) {
		t.Errorf("x + ∞ got=%v want=∞", e)
	}
}

func TestApplyIsOnePass(t *testing.T) {
	_, x, y, _ := fixture()
	raw := NewSum(x, x)
	if got := raw.Apply().String(); got != "2x" {
		t.Errorf("apply got=%q want=%q", got, "2x")
	}
	if got := raw.String(); got != "x + x" {
		t.Errorf("apply changed its input: %q", got)
	}
	if !NewSum(x, NewProduct(factor.Int(2), factor.Int(3))).CanTransform() {
		t.Error("a foldable operand should be transformable")
	}
	done := NewProduct(factor.Int(2), x)
	if done.CanTransform() {
		t.Errorf("%v should be normal", done)
	}
	if done.Apply() != Expression(done) {
		t.Errorf("normal %v was rebuilt", done)
	}
	if e := NormalizeN(raw, 0); e != Expression(raw) {
		t.Errorf("zero passes changed %v to %v", raw, e)
	}

	chain := NewSum(NewDifference(x, y), y)
	once, ok := chain.Apply().(*Operation)
	if !ok {
		t.Fatalf("one pass over %v left no operation", chain)
	}
	if got := once.String(); got != "x + 0" {
		t.Errorf("one pass got=%q want=%q", got, "x + 0")
	}
	if !once.CanTransform() {
		t.Errorf("%v should need another pass", once)
	}
	if got := once.Apply().String(); got != "x" {
		t.Errorf("two passes got=%q want=%q", got, "x")
	}
	if got := Normalize(chain).String(); got != "x" {
		t.Errorf("normalize got=%q want=%q", got, "x")
	}
}

func TestIndeterminateForms(t *testing.T) {
	inf := factor.Infinity
	zero := factor.Lift(0)
	vs := []struct {
		e, want Expression
	}{
		{Sub(inf, inf), NewDifference(inf, inf)},
		{Add(inf, Neg(inf)), NewSum(inf, Neg(inf))},
		{Add(Neg(inf), inf), NewSum(Neg(inf), inf)},
		{Mul(0, inf), NewProduct(zero, inf)},
		{Mul(inf, 0), NewProduct(inf, zero)},
		{Div(inf, inf), NewQuotient(inf, inf)},
		{Pow(0, 0), NewPower(zero, zero)},
	}
	for i, v := range vs {
		if !Identical(v.e, v.want) {
			t.Errorf("[%d] got=%v want=%v", i, v.e, v.want)
		}
		if isZero(v.e) || isOne(v.e) {
			t.Errorf("[%d] %v was given a value", i, v.e)
		}
	}

	determinate := []struct {
		e, want Expression
	}{
		{Add(inf, inf), inf},
		{Sub(inf, Neg(inf)), inf},
		{Sub(Neg(inf), inf), Neg(inf)},
		{Mul(2, inf), inf},
		{Pow(0, 2), factor.Lift(0)},
		{Pow(2, 0), factor.Lift(1)},
	}
	for i, v := range determinate {
		if !Identical(v.e, v.want) {
			t.Errorf("[%d] got=%v want=%v", i, v.e, v.want)
		}
	}
}

func TestIdempotentWrapper(t *testing.T) {
	_, x, _, _ := fixture()
	e := NewSimplify(NewSimplify(NewSum(x, factor.Int(0))))
	if got := e.Apply().String(); got != "x" {
		t.Errorf("got=%q want=%q", got, "x")
	}
	if got := Simplify(Simplify(Add(x, x))).String(); got != "2x" {
		t.Errorf("got=%q want=%q", got, "2x")
	}
}

func TestSubstitute(t *testing.T) {
	_, x, y, z := fixture()
	e := Add(Mul(2, x), y)
	if got, ok := Substituted(e, z, x); ok || got != e {
		t.Errorf("substituting an absent z: got=%v, %v", got, ok)
	}
	if got := Substitute(e, y, x).String(); got != "3x" {
		t.Errorf("got=%q want=%q", got, "3x")
	}
	if got := Substitute(Pow(x, 2), x, Add(y, 1)).String(); got != "(y + 1)^2" {
		t.Errorf("got=%q want=%q", got, "(y + 1)^2")
	}
}

func TestFoldErrors(t *testing.T) {
	if _, err := AddAll(); err == nil {
		t.Error("summed nothing")
	}
	if _, err := MulAll(); err == nil {
		t.Error("multiplied nothing")
	}
	_, x, y, _ := fixture()
	e, err := MulAll(x, y, x)
	if err != nil {
		t.Fatalf("MulAll failed: %v", err)
	}
	if !Equal(e, Mul(Pow(x, 2), y)) {
		t.Errorf("got=%v want=x^2*y", e)
	}
}

func TestRules(t *testing.T) {
	_, x, y, _ := fixture()
	sum := Rules(factor.KindSum)
	if sum.Label() != "sum" {
		t.Errorf("got label %q", sum.Label())
	}
	if !sum.CanTransform(x, x) {
		t.Error("x+x should match a sum rule")
	}
	if sum.CanTransform(x, y) {
		t.Error("x+y should not match a sum rule")
	}
	if got := sum.Apply(x, y); got.Kind() != factor.KindSet || got.String() != "{x, y}" {
		t.Errorf("unmatched rule set got=%v want={x, y}", got)
	}
	r := sum.Rules()[0]
	if got := r.Apply(x); got != Expression(x) {
		t.Errorf("under-supplied rule got=%v want=x", got)
	}
	if Rules(factor.KindSet) != nil {
		t.Error("sets have no rules")
	}
	arity := map[factor.ArityClass]int{factor.Unary: 1, factor.Binary: 2}
	for _, k := range factor.Kinds() {
		rs := Rules(k)
		if rs == nil {
			continue
		}
		for _, r := range rs.Rules() {
			if want := arity[k.Properties().Class]; r.Arity() != want {
				t.Errorf("%v rule %v has arity %d, want %d", k, r, r.Arity(), want)
			}
		}
	}
}
