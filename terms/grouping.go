package terms

import (
	"zappem.net/pub/math/symalg/factor"
)

// maxExpandPower is the largest integer power of a sum that Expand
// multiplies out.
const maxExpandPower = 8

// Simplify returns a normalized to a fixed point. Nested Simplify
// wrappers collapse into one.
func Simplify(a interface{}) Expression {
	return NewSimplify(factor.Lift(a)).Apply()
}

// Expand distributes products over sums and differences in a, multiplies
// out small integer powers of sums, and normalizes the result.
func Expand(a interface{}) Expression {
	return NewExpand(factor.Lift(a)).Apply()
}

func isSumLike(e Expression) bool {
	op, ok := e.(*Operation)
	return ok && (op.kind == factor.KindSum || op.kind == factor.KindDifference)
}

// spread combines the two halves of a distributed sum or difference.
func spread(kind factor.Kind, a, b Expression) Expression {
	if kind == factor.KindDifference {
		return Sub(a, b)
	}
	return Add(a, b)
}

// distribute rewrites e bottom up so that no product, quotient or small
// power has a sum or difference as a factor.
func distribute(e Expression) Expression {
	op, ok := e.(*Operation)
	if !ok {
		return e
	}
	args := op.Children()
	for i, c := range args {
		args[i] = distribute(c)
	}
	switch op.kind {
	case factor.KindProduct:
		a, b := args[0], args[1]
		if isSumLike(a) {
			s := a.(*Operation)
			return spread(s.kind, distribute(NewProduct(s.Left(), b)), distribute(NewProduct(s.Right(), b)))
		}
		if isSumLike(b) {
			s := b.(*Operation)
			return spread(s.kind, distribute(NewProduct(a, s.Left())), distribute(NewProduct(a, s.Right())))
		}
		return Mul(a, b)
	case factor.KindQuotient:
		a, b := args[0], args[1]
		if isSumLike(a) {
			s := a.(*Operation)
			return spread(s.kind, distribute(NewQuotient(s.Left(), b)), distribute(NewQuotient(s.Right(), b)))
		}
		return Div(a, b)
	case factor.KindExponentiation:
		base, exp := args[0], args[1]
		if n, ok := value(exp); ok && isSumLike(base) && isInteger(exp) && n > 1 && n <= maxExpandPower {
			acc := base
			for i := 1; i < int(n); i++ {
				acc = distribute(NewProduct(acc, base))
			}
			return acc
		}
		return Pow(base, exp)
	}
	return newOp(op.kind, args...).Apply()
}
