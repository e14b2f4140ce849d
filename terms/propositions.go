package terms

import (
	"math"

	"zappem.net/pub/math/symalg/factor"
)

// value returns the number held by a Value leaf.
func value(e Expression) (float64, bool) {
	v, ok := e.(*factor.Value)
	if !ok {
		return 0, false
	}
	return v.Float(), true
}

func isValue(e Expression) bool {
	_, ok := value(e)
	return ok
}

func isInteger(e Expression) bool {
	v, ok := e.(*factor.Value)
	return ok && v.IsInteger()
}

func isZero(e Expression) bool {
	v, ok := value(e)
	return ok && v == 0
}

func isOne(e Expression) bool {
	v, ok := value(e)
	return ok && v == 1
}

func isNegativeValue(e Expression) bool {
	v, ok := value(e)
	return ok && v < 0
}

func isPositiveValue(e Expression) bool {
	v, ok := value(e)
	return ok && v > 0
}

func isVariable(e Expression) bool {
	_, ok := e.(*factor.Variable)
	return ok
}

func isConstant(e Expression) bool {
	_, ok := e.(*factor.Constant)
	return ok
}

func isSpecialConstant(e Expression) bool {
	c, ok := e.(*factor.Constant)
	return ok && c.IsSpecial()
}

func isGenericConstant(e Expression) bool {
	c, ok := e.(*factor.Constant)
	return ok && c.IsGeneric()
}

// isNegation recognizes -1*a.
func isNegation(e Expression) bool {
	op, ok := e.(*Operation)
	if !ok || op.kind != factor.KindProduct {
		return false
	}
	v, ok := value(op.Left())
	return ok && v == -1
}

// negationOf returns a from -1*a.
func negationOf(e Expression) Expression {
	return e.(*Operation).Right()
}

// isInfinity recognizes ∞ and -∞ in any of their spellings.
func isInfinity(e Expression) bool {
	switch v := e.(type) {
	case *factor.Constant:
		return v.IsInfinite()
	case *factor.Value:
		return math.IsInf(v.Float(), 0)
	}
	return isNegation(e) && isInfinity(negationOf(e))
}

// infinitySign is 1 for ∞, -1 for -∞ and 0 for anything finite.
func infinitySign(e Expression) int {
	var f float64
	switch v := e.(type) {
	case *factor.Constant:
		if !v.IsInfinite() {
			return 0
		}
		f = v.Value().Float()
	case *factor.Value:
		f = v.Float()
	default:
		if isNegation(e) {
			return -infinitySign(negationOf(e))
		}
		return 0
	}
	switch {
	case math.IsInf(f, 1):
		return 1
	case math.IsInf(f, -1):
		return -1
	}
	return 0
}

// isCoefficient holds for numbers, generic or plain valued constants and
// arithmetic built purely from them. Variables, the imaginary unit and
// special constants are never coefficients.
func isCoefficient(e Expression) bool {
	switch v := e.(type) {
	case *factor.Value:
		return !math.IsInf(v.Float(), 0) && !math.IsNaN(v.Float())
	case *factor.Constant:
		return !v.IsSpecial()
	case *Operation:
		switch v.kind {
		case factor.KindSum, factor.KindDifference, factor.KindProduct, factor.KindQuotient, factor.KindExponentiation:
			for _, c := range v.operands {
				if !isCoefficient(c) {
					return false
				}
			}
			return true
		}
	}
	return false
}

// termParts splits a term into its coefficient and the remaining
// factor. A bare term has the coefficient 1. Coefficients have no
// remaining factor and ok is false.
func termParts(e Expression) (k, rest Expression, ok bool) {
	if isCoefficient(e) {
		return nil, nil, false
	}
	if op, is := e.(*Operation); is && op.kind == factor.KindProduct {
		a, b := op.Left(), op.Right()
		switch {
		case isCoefficient(a) && !isCoefficient(b):
			return a, b, true
		case isCoefficient(b) && !isCoefficient(a):
			return b, a, true
		}
	}
	return factor.Int(1), e, true
}

// powerParts splits e into base and exponent. Anything that is not a
// power is its own base with exponent 1.
func powerParts(e Expression) (base, exp Expression) {
	if op, ok := e.(*Operation); ok && op.kind == factor.KindExponentiation {
		return op.Left(), op.Right()
	}
	return e, factor.Int(1)
}

// qualifiesSum holds for sums, differences and negations of either.
func qualifiesSum(e Expression) bool {
	op, ok := e.(*Operation)
	if !ok {
		return false
	}
	switch op.kind {
	case factor.KindSum, factor.KindDifference:
		return true
	}
	return isNegation(e) && qualifiesSum(negationOf(e))
}

// qualifiesProduct holds for products, quotients and reciprocals of
// either.
func qualifiesProduct(e Expression) bool {
	op, ok := e.(*Operation)
	if !ok {
		return false
	}
	switch op.kind {
	case factor.KindProduct, factor.KindQuotient:
		return true
	case factor.KindExponentiation:
		v, ok := value(op.Right())
		return ok && v == -1 && qualifiesProduct(op.Left())
	}
	return false
}

// reciprocalOf recognizes 1/a and a^-1.
func reciprocalOf(e Expression) (Expression, bool) {
	op, ok := e.(*Operation)
	if !ok {
		return nil, false
	}
	switch op.kind {
	case factor.KindQuotient:
		if isOne(op.Left()) {
			return op.Right(), true
		}
	case factor.KindExponentiation:
		if v, ok := value(op.Right()); ok && v == -1 {
			return op.Left(), true
		}
	}
	return nil, false
}

func areReciprocals(a, b Expression) bool {
	if r, ok := reciprocalOf(b); ok && equal(a, r) {
		return true
	}
	r, ok := reciprocalOf(a)
	return ok && equal(r, b)
}

func areMultiples(a, b Expression) bool {
	_, ra, ok := termParts(a)
	if !ok {
		return false
	}
	_, rb, ok := termParts(b)
	return ok && equal(ra, rb)
}

func arePowersOfSameBase(a, b Expression) bool {
	ba, _ := powerParts(a)
	bb, _ := powerParts(b)
	if isValue(ba) && isValue(bb) {
		return false
	}
	return equal(ba, bb)
}

// collects reports whether the collapsed chain of a and b loses terms
// when reduced.
func collects(chain Chain, a, b Expression) bool {
	c := collapse(chain, newOp(chain.kind(), a, b))
	return c.Reduce().Len() < c.Len()
}

func areCollectibleSum(a, b Expression) bool {
	return (qualifiesSum(a) || qualifiesSum(b)) && collects(SumChain, a, b)
}

func areCollectibleDifference(a, b Expression) bool {
	if !qualifiesSum(a) && !qualifiesSum(b) {
		return false
	}
	c := collapse(SumChain, NewDifference(a, b))
	return c.Reduce().Len() < c.Len()
}

func areCollectibleProduct(a, b Expression) bool {
	return (qualifiesProduct(a) || qualifiesProduct(b)) && collects(ProductChain, a, b)
}

func areCollectibleQuotient(a, b Expression) bool {
	if !qualifiesProduct(a) && !qualifiesProduct(b) {
		return false
	}
	c := collapse(ProductChain, NewQuotient(a, b))
	return c.Reduce().Len() < c.Len()
}

// The proposition library. Each wraps one of the predicates above so
// that it can guard a rule.
var (
	IsValue           = p1("is a value", isValue)
	IsInteger         = p1("is an integer", isInteger)
	IsZero            = p1("is zero", isZero)
	IsOne             = p1("is one", isOne)
	IsNegativeValue   = p1("is a negative value", isNegativeValue)
	IsPositiveValue   = p1("is a positive value", isPositiveValue)
	IsVariable        = p1("is a variable", isVariable)
	IsConstant        = p1("is a constant", isConstant)
	IsInfinity        = p1("is infinite", isInfinity)
	IsSpecialConstant = p1("is a special constant", isSpecialConstant)
	IsGenericConstant = p1("is a generic constant", isGenericConstant)
	IsNegation        = p1("is a negation", isNegation)
	IsCoefficient     = p1("is a coefficient", isCoefficient)

	QualifiesForSumFlattening     = p1("qualifies for sum flattening", qualifiesSum)
	QualifiesForProductFlattening = p1("qualifies for product flattening", qualifiesProduct)

	IsPolynomialTerm = p1("is a polynomial term", func(e Expression) bool {
		cs, err := Classify(e)
		if err != nil {
			return false
		}
		for _, c := range cs {
			if c.Class >= PolynomialTerm && c.Class <= Coefficient {
				return true
			}
		}
		return false
	})

	AreValues = p2("are values", func(a, b Expression) bool {
		return isValue(a) && isValue(b)
	})
	AreEqual              = p2("are equal", equal)
	AreReciprocals        = p2("are reciprocals", areReciprocals)
	AreMultiples          = p2("are multiples", areMultiples)
	ArePowersOfSameBase   = p2("are powers of the same base", arePowersOfSameBase)
	AreCollectibleSum     = p2("are collectible as a sum", areCollectibleSum)
	AreCollectibleProduct = p2("are collectible as a product", areCollectibleProduct)

	AnyInfinity = p2("either is infinite", func(a, b Expression) bool {
		return isInfinity(a) || isInfinity(b)
	})
	AnyZero = p2("either is zero", func(a, b Expression) bool {
		return isZero(a) || isZero(b)
	})
)
