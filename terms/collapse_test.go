package terms

import (
	"errors"
	"testing"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
)

func TestCollapseSum(t *testing.T) {
	_, x, y, z := fixture()
	two := factor.Int(2)
	vs := []struct {
		e    Expression
		want string
	}{
		{NewSum(x, y), "sum{x, y}"},
		{NewDifference(x, y), "sum{x, -y}"},
		{NewDifference(x, NewDifference(y, z)), "sum{x, -y, z}"},
		{NewSum(NewSum(x, y), NewSum(z, two)), "sum{x, y, z, 2}"},
		{NewNegation(NewSum(x, y)), "sum{-x, -y}"},
		{NewDifference(x, NewSum(y, two)), "sum{x, -y, -2}"},
	}
	for i, v := range vs {
		c, err := CollapseSum(v.e)
		if err != nil {
			t.Errorf("[%d] collapse %v failed: %v", i, v.e, err)
			continue
		}
		if got := c.String(); got != v.want {
			t.Errorf("[%d] got=%q want=%q", i, got, v.want)
		}
		back, err := c.ToExpression()
		if err != nil {
			t.Errorf("[%d] rebuild failed: %v", i, err)
			continue
		}
		if !Equal(back, v.e) {
			t.Errorf("[%d] rebuilt %v is not equal to %v", i, back, v.e)
		}
	}
}

func TestCollapseProduct(t *testing.T) {
	_, x, y, z := fixture()
	c, err := CollapseProduct(NewQuotient(NewProduct(x, y), z))
	if err != nil {
		t.Fatalf("collapse failed: %v", err)
	}
	if got, want := c.String(), "product{x, y, z^-1}"; got != want {
		t.Errorf("got=%q want=%q", got, want)
	}
	e, err := c.ToExpression()
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if got, want := e.Text(factor.Parse), "(x * (y / z))"; got != want {
		t.Errorf("got=%q want=%q", got, want)
	}
}

func TestCollapseErrors(t *testing.T) {
	_, x, y, _ := fixture()
	if _, err := CollapseSum(x); !errors.Is(err, matherr.ErrCalculation) {
		t.Errorf("collapsing a leaf as a sum: %v", err)
	}
	if _, err := CollapseProduct(NewSum(x, y)); !errors.Is(err, matherr.ErrCalculation) {
		t.Errorf("collapsing a sum as a product: %v", err)
	}
	if _, err := NewCollapsedSum().ToExpression(); !errors.Is(err, matherr.ErrCalculation) {
		t.Errorf("rebuilding an empty chain: %v", err)
	}
	if _, err := NewCollapsedSum(x).Merge(NewCollapsedProduct(y)); err == nil {
		t.Error("merged a sum chain with a product chain")
	}
	m, err := NewCollapsedSum(x).Merge(NewCollapsedSum(y))
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if got := m.String(); got != "sum{x, y}" {
		t.Errorf("merge got=%q", got)
	}
}

func TestReduce(t *testing.T) {
	_, x, y, _ := fixture()
	vs := []struct {
		c    *Collapsed
		want []Expression
	}{
		{NewCollapsedSum(x, x), []Expression{Mul(2, x)}},
		{NewCollapsedSum(x, y, x), []Expression{Mul(2, x), y}},
		{NewCollapsedSum(x, y), []Expression{x, y}},
		{NewCollapsedSum(x, Neg(x), y), []Expression{y}},
		{NewCollapsedProduct(x, y, x), []Expression{Pow(x, 2), y}},
		{NewCollapsedProduct(factor.Int(2), x, factor.Int(3)), []Expression{factor.Int(6), x}},
	}
	for i, v := range vs {
		got := v.c.Reduce().Terms()
		if len(got) != len(v.want) {
			t.Errorf("[%d] got=%v want=%v", i, got, v.want)
			continue
		}
		for j, w := range v.want {
			if !Identical(got[j], w) {
				t.Errorf("[%d] term %d got=%v want=%v", i, j, got[j], w)
			}
		}
	}
}

func TestReduceIsOrderSensitive(t *testing.T) {
	_, x, _, _ := fixture()
	one, minusOne := factor.Int(1), factor.Int(-1)
	// 1 and -1 fold to 0 first, which then swallows -x and strands x.
	early := NewCollapsedSum(one, x, minusOne, Neg(x)).Reduce()
	if got := early.Terms(); len(got) != 2 || !Identical(got[0], Neg(x)) || !Identical(got[1], x) {
		t.Errorf("early got=%v want=[-x x]", got)
	}
	late := NewCollapsedSum(one, minusOne, x, Neg(x)).Reduce()
	if got := late.Terms(); len(got) != 1 || !isZero(got[0]) {
		t.Errorf("late got=%v want=[0]", got)
	}
}

func TestCollapsedEquality(t *testing.T) {
	_, x, y, z := fixture()
	two := factor.Int(2)
	c1, _ := CollapseSum(NewSum(NewSum(x, y), NewSum(z, two)))
	c2, _ := CollapseSum(NewSum(NewSum(two, z), NewSum(y, x)))
	if !c1.TestEquality(c2) || !c2.TestEquality(c1) {
		t.Errorf("%v and %v should be equal", c1, c2)
	}
	c3, _ := CollapseSum(NewSum(NewSum(x, y), z))
	c4, _ := CollapseSum(NewSum(NewSum(x, x), z))
	if c3.TestEquality(c4) {
		t.Errorf("%v and %v should differ", c3, c4)
	}
	// Unequal lengths are compared after reduction.
	if !NewCollapsedSum(x, x, y).TestEquality(NewCollapsedSum(Mul(2, x), y)) {
		t.Error("x+x+y should equal 2x+y")
	}
	if NewCollapsedSum(x, y).TestEquality(NewCollapsedProduct(x, y)) {
		t.Error("a sum chain equals a product chain")
	}

	xs := []Expression{x, y, z, two, Mul(3, x), Pow(y, 2), NewSet(x)}
	for _, a := range xs {
		for _, b := range xs {
			if !NewCollapsedSum(a, b).TestEquality(NewCollapsedSum(b, a)) {
				t.Errorf("%v+%v is not commutative", a, b)
			}
			if !NewCollapsedProduct(a, b).TestEquality(NewCollapsedProduct(b, a)) {
				t.Errorf("%v*%v is not commutative", a, b)
			}
			for _, c := range []Expression{x, two} {
				l, r := NewSum(NewSum(a, b), c), NewSum(a, NewSum(b, c))
				if !Equal(l, r) {
					t.Errorf("(%v)+%v != %v+(%v)", NewSum(a, b), c, a, NewSum(b, c))
				}
			}
		}
	}
}

func TestMatchTerms(t *testing.T) {
	s, _, _, _ := fixture()
	p, q, r, u := s.NewVariable("p"), s.NewVariable("q"), s.NewVariable("r"), s.NewVariable("s")
	related := func(pairs ...[2]Expression) func(a, b Expression) bool {
		return func(a, b Expression) bool {
			for _, x := range pairs {
				if x[0] == a && x[1] == b {
					return true
				}
			}
			return false
		}
	}
	// Pairing p with r first leaves q without a partner; only a
	// search that revisits that choice finds p~s, q~r.
	eq := related([2]Expression{p, r}, [2]Expression{p, u}, [2]Expression{q, r})
	if !matchTerms([]Expression{p, q}, []Expression{r, u}, eq) {
		t.Error("missed the matching p~s, q~r")
	}
	eq = related([2]Expression{p, r}, [2]Expression{q, r})
	if matchTerms([]Expression{p, q}, []Expression{r, u}, eq) {
		t.Error("matched s with nothing related to it")
	}
	if matchTerms([]Expression{p}, []Expression{r, u}, eq) {
		t.Error("matched lists of different lengths")
	}
}
