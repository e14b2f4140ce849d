package terms

import (
	"fmt"
	"strings"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
)

// Chain selects the associative operation a Collapsed list stands for.
type Chain int

const (
	// SumChain flattens sums and differences.
	SumChain Chain = iota
	// ProductChain flattens products and quotients.
	ProductChain
)

func (c Chain) String() string {
	if c == ProductChain {
		return "product"
	}
	return "sum"
}

// kind is the binary operation that joins two terms of the chain.
func (c Chain) kind() factor.Kind {
	if c == ProductChain {
		return factor.KindProduct
	}
	return factor.KindSum
}

// Collapsed is a flat list of the terms of a sum (or the factors of a
// product). Signs and reciprocals are pushed down onto the terms, so
// a - (b - c) collapses to {a, -b, c}. A Collapsed list is transient:
// convert it back with ToExpression before using it as an expression.
type Collapsed struct {
	chain Chain
	terms []Expression
}

// CollapseSum flattens a sum, difference, or negation of either.
func CollapseSum(e Expression) (*Collapsed, error) {
	if !qualifiesSum(e) {
		return nil, matherr.Calculationf("%v is not a sum or difference", e)
	}
	return collapse(SumChain, e), nil
}

// CollapseProduct flattens a product, quotient, or reciprocal of either.
func CollapseProduct(e Expression) (*Collapsed, error) {
	if !qualifiesProduct(e) {
		return nil, matherr.Calculationf("%v is not a product or quotient", e)
	}
	return collapse(ProductChain, e), nil
}

// NewCollapsedSum holds terms as a flat sum.
func NewCollapsedSum(terms ...Expression) *Collapsed {
	return &Collapsed{chain: SumChain, terms: append([]Expression(nil), terms...)}
}

// NewCollapsedProduct holds terms as a flat product.
func NewCollapsedProduct(terms ...Expression) *Collapsed {
	return &Collapsed{chain: ProductChain, terms: append([]Expression(nil), terms...)}
}

// collapse flattens e without checking that it qualifies. Anything
// that is not part of the chain becomes a single term.
func collapse(chain Chain, e Expression) *Collapsed {
	return &Collapsed{chain: chain, terms: flatten(chain, e)}
}

func flatten(chain Chain, e Expression) []Expression {
	op, ok := e.(*Operation)
	if !ok {
		return []Expression{e}
	}
	if chain == SumChain {
		switch {
		case op.kind == factor.KindSum:
			return append(flatten(chain, op.Left()), flatten(chain, op.Right())...)
		case op.kind == factor.KindDifference:
			return append(flatten(chain, op.Left()), mapTerms(negate, flatten(chain, op.Right()))...)
		case isNegation(op) && qualifiesSum(negationOf(op)):
			return mapTerms(negate, flatten(chain, negationOf(op)))
		}
		return []Expression{e}
	}
	switch {
	case op.kind == factor.KindProduct:
		return append(flatten(chain, op.Left()), flatten(chain, op.Right())...)
	case op.kind == factor.KindQuotient:
		return append(flatten(chain, op.Left()), mapTerms(invert, flatten(chain, op.Right()))...)
	case qualifiesProduct(op):
		// (a*b)^-1
		return mapTerms(invert, flatten(chain, op.Left()))
	}
	return []Expression{e}
}

func mapTerms(fn func(Expression) Expression, xs []Expression) []Expression {
	for i, x := range xs {
		xs[i] = fn(x)
	}
	return xs
}

// isNegated holds for negative values and terms with a negative
// numeric coefficient.
func isNegated(e Expression) bool {
	if isNegativeValue(e) {
		return true
	}
	op, ok := e.(*Operation)
	return ok && op.kind == factor.KindProduct && isNegativeValue(op.Left())
}

// negate flips the sign of a term. Negating a negated term removes the
// sign again.
func negate(e Expression) Expression {
	if isNegation(e) {
		return negationOf(e)
	}
	if v, ok := value(e); ok {
		return factor.Num(-v)
	}
	if op, ok := e.(*Operation); ok && op.kind == factor.KindProduct {
		if k, ok := value(op.Left()); ok {
			return NewProduct(factor.Num(-k), op.Right())
		}
	}
	return NewNegation(e)
}

// isInverted holds for powers with a negative numeric exponent.
func isInverted(e Expression) bool {
	op, ok := e.(*Operation)
	return ok && op.kind == factor.KindExponentiation && isNegativeValue(op.Right())
}

// invert takes the reciprocal of a term. Inverting an inverted term
// removes the reciprocal again.
func invert(e Expression) Expression {
	if op, ok := e.(*Operation); ok {
		switch op.kind {
		case factor.KindExponentiation:
			if v, ok := value(op.Right()); ok {
				if v == -1 {
					return op.Left()
				}
				return NewPower(op.Left(), factor.Num(-v))
			}
		case factor.KindQuotient:
			if isOne(op.Left()) {
				return op.Right()
			}
		}
	}
	return NewPower(e, factor.Int(-1))
}

// Chain returns whether c is a sum or a product.
func (c *Collapsed) Chain() Chain { return c.chain }

// Len returns the number of terms.
func (c *Collapsed) Len() int { return len(c.terms) }

// Terms returns a copy of the terms.
func (c *Collapsed) Terms() []Expression {
	return append([]Expression(nil), c.terms...)
}

func (c *Collapsed) String() string {
	var s []string
	for _, t := range c.terms {
		s = append(s, t.String())
	}
	return fmt.Sprintf("%v{%s}", c.chain, strings.Join(s, ", "))
}

// Merge concatenates the terms of c and d, which must be the same kind
// of chain.
func (c *Collapsed) Merge(d *Collapsed) (*Collapsed, error) {
	if c.chain != d.chain {
		return nil, matherr.Calculationf("cannot merge a %v chain with a %v chain", c.chain, d.chain)
	}
	terms := append(c.Terms(), d.terms...)
	return &Collapsed{chain: c.chain, terms: terms}, nil
}

// combine joins two terms with the chain operation. The boolean is
// true when some rule fired, that is when the result differs from the
// plain two term wrapper.
func (c *Collapsed) combine(a, b Expression) (Expression, bool) {
	var x, trivial Expression
	if c.chain == ProductChain {
		x, trivial = Mul(a, b), NewProduct(a, b)
	} else {
		x, trivial = Add(a, b), NewSum(a, b)
	}
	return x, !Identical(x, trivial)
}

// Reduce collects like terms. Each term is combined with the first
// earlier term it combines with, otherwise it is kept as a new term.
// The result depends on the term order.
func (c *Collapsed) Reduce() *Collapsed {
	var out []Expression
	for _, t := range c.terms {
		merged := false
		for i, r := range out {
			if x, ok := c.combine(r, t); ok {
				out[i] = x
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, t)
		}
	}
	return &Collapsed{chain: c.chain, terms: out}
}

// TestEquality reports whether c and d hold the same multiset of terms
// up to symbolic equality. When their lengths differ both are reduced
// first.
func (c *Collapsed) TestEquality(d *Collapsed) bool {
	if c.chain != d.chain {
		return false
	}
	a, b := c.terms, d.terms
	if len(a) != len(b) {
		a, b = c.Reduce().terms, d.Reduce().terms
		if len(a) != len(b) {
			return false
		}
	}
	return matchTerms(a, b, equal)
}

// matchTerms reports whether a perfect matching pairs every element of
// a with a distinct, eq related element of b. Augmenting paths revisit
// earlier choices, so the outcome does not depend on the order.
func matchTerms(a, b []Expression, eq func(x, y Expression) bool) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	adj := make([][]int, n)
	for i := range a {
		for j := range b {
			if eq(a[i], b[j]) {
				adj[i] = append(adj[i], j)
			}
		}
		if len(adj[i]) == 0 {
			return false
		}
	}
	owner := make([]int, n)
	for j := range owner {
		owner[j] = -1
	}
	var augment func(i int, seen []bool) bool
	augment = func(i int, seen []bool) bool {
		for _, j := range adj[i] {
			if seen[j] {
				continue
			}
			seen[j] = true
			if owner[j] < 0 || augment(owner[j], seen) {
				owner[j] = i
				return true
			}
		}
		return false
	}
	for i := 0; i < n; i++ {
		if !augment(i, make([]bool, n)) {
			return false
		}
	}
	return true
}

// ToExpression rebuilds a binary tree from the terms. Pairs with a
// negated (inverted) term become differences (quotients).
func (c *Collapsed) ToExpression() (Expression, error) {
	if len(c.terms) == 0 {
		return nil, matherr.Calculationf("an empty %v chain has no expression", c.chain)
	}
	return c.unflatten(c.terms), nil
}

func (c *Collapsed) unflatten(ts []Expression) Expression {
	if len(ts) == 1 {
		return ts[0]
	}
	return c.pair(ts[0], c.unflatten(ts[1:]))
}

func (c *Collapsed) pair(a, b Expression) Expression {
	if c.chain == SumChain {
		na, nb := isNegated(a), isNegated(b)
		switch {
		case na && nb:
			return NewNegation(NewSum(negate(a), negate(b)))
		case nb:
			return NewDifference(a, negate(b))
		case na:
			return NewDifference(b, negate(a))
		}
		return NewSum(a, b)
	}
	ia, ib := isInverted(a), isInverted(b)
	switch {
	case ia && ib:
		return NewPower(NewProduct(invert(a), invert(b)), factor.Int(-1))
	case ib:
		return NewQuotient(a, invert(b))
	case ia:
		return NewQuotient(b, invert(a))
	}
	return NewProduct(a, b)
}

// collectedExpression reduces the chain of e and rebuilds it. The
// rebuilt tree is not rewritten again, so leftovers of the reduction,
// such as a zero term, wait for the next pass.
func collectedExpression(chain Chain, e Expression) Expression {
	x, err := collapse(chain, e).Reduce().ToExpression()
	if err != nil {
		return e
	}
	return x
}
