package terms

import (
	"math"

	"zappem.net/pub/math/symalg/factor"
)

// ruleSets maps each operation kind to its rules. It is filled once by
// init, after every proposition exists, and is read-only afterwards.
var ruleSets map[factor.Kind]*RuleSet

func init() {
	relations = equalityRelations()
	ruleSets = map[factor.Kind]*RuleSet{
		factor.KindSum:            sumRules(),
		factor.KindDifference:     differenceRules(),
		factor.KindProduct:        productRules(),
		factor.KindQuotient:       quotientRules(),
		factor.KindExponentiation: powerRules(),
		factor.KindLogarithm:      logRules(),
		factor.KindSimplify:       simplifyRules(),
		factor.KindExpand:         expandRules(),
	}
}

func first(a, _ Expression) Expression  { return a }
func second(_, b Expression) Expression { return b }

// foldValues evaluates a binary operation on two Values.
func foldValues(fn func(x, y float64) float64) func(a, b Expression) Expression {
	return func(a, b Expression) Expression {
		x, _ := value(a)
		y, _ := value(b)
		return factor.Num(fn(x, y))
	}
}

func sumRules() *RuleSet {
	determinate := p2("not opposite infinities", func(a, b Expression) bool {
		return infinitySign(a)*infinitySign(b) >= 0
	})
	return ruleSet("sum", determinate,
		rule("infinity absorbs the right", p2("b is infinite", func(_, b Expression) bool {
			return isInfinity(b)
		}), t2("b", second)),
		rule("infinity absorbs the left", p2("a is infinite", func(a, _ Expression) bool {
			return isInfinity(a)
		}), t2("a", first)),
		rule("values", AreValues, t2("a+b", foldValues(func(x, y float64) float64 { return x + y }))),
		rule("add zero", p2("b is zero", func(_, b Expression) bool { return isZero(b) }), t2("a", first)),
		rule("zero plus", IsZero, t2("b", second)),
		rule("doubling", AreEqual, t2("2a", func(a, _ Expression) Expression {
			return Mul(2, a)
		})),
		rule("multiples", AreMultiples, t2("(ka+kb)t", func(a, b Expression) Expression {
			ka, t, _ := termParts(a)
			kb, _, _ := termParts(b)
			return Mul(Add(ka, kb), t)
		})),
		rule("collect terms", AreCollectibleSum, t2("reduce", func(a, b Expression) Expression {
			return collectedExpression(SumChain, NewSum(a, b))
		})),
	)
}

func differenceRules() *RuleSet {
	determinate := p2("not like infinities", func(a, b Expression) bool {
		return infinitySign(a)*infinitySign(b) <= 0
	})
	return ruleSet("difference", determinate,
		rule("infinity minus", p2("a is infinite", func(a, _ Expression) bool {
			return isInfinity(a)
		}), t2("a", first)),
		rule("minus infinity", p2("b is infinite", func(_, b Expression) bool {
			return isInfinity(b)
		}), t2("-b", func(_, b Expression) Expression { return Neg(b) })),
		rule("values", AreValues, t2("a-b", foldValues(func(x, y float64) float64 { return x - y }))),
		rule("subtract zero", p2("b is zero", func(_, b Expression) bool { return isZero(b) }), t2("a", first)),
		rule("zero minus", IsZero, t2("-b", func(_, b Expression) Expression { return Neg(b) })),
		rule("cancel", AreEqual, t2("0", func(_, _ Expression) Expression { return factor.Int(0) })),
		rule("multiples", AreMultiples, t2("(ka-kb)t", func(a, b Expression) Expression {
			ka, t, _ := termParts(a)
			kb, _, _ := termParts(b)
			return Mul(Sub(ka, kb), t)
		})),
		rule("collect terms", p2("are collectible as a difference", areCollectibleDifference), t2("reduce", func(a, b Expression) Expression {
			return collectedExpression(SumChain, NewDifference(a, b))
		})),
	)
}

func productRules() *RuleSet {
	determinate := p2("not zero times infinity", func(a, b Expression) bool {
		return !(isZero(a) && isInfinity(b)) && !(isInfinity(a) && isZero(b))
	})
	return ruleSet("product", determinate,
		rule("zero", AnyZero, t2("0", func(_, _ Expression) Expression { return factor.Int(0) })),
		rule("values", AreValues, t2("a*b", foldValues(func(x, y float64) float64 { return x * y }))),
		rule("times one", p2("b is one", func(_, b Expression) bool { return isOne(b) }), t2("a", first)),
		rule("one times", IsOne, t2("b", second)),
		rule("scaled infinity", p2("positive value times infinity", func(a, b Expression) bool {
			return isPositiveValue(a) && isInfinity(b)
		}), t2("b", second)),
		rule("value first", p2("only b is a value", func(a, b Expression) bool {
			return isValue(b) && !isValue(a)
		}), t2("b*a", func(a, b Expression) Expression { return Mul(b, a) })),
		rule("nested coefficient", p2("value times scaled term", func(a, b Expression) bool {
			return isValue(a) && scaled(b)
		}), t2("(k1*k2)t", func(a, b Expression) Expression {
			op := b.(*Operation)
			return Mul(Mul(a, op.Left()), op.Right())
		})),
		rule("hoist left coefficient", p2("a is a scaled term", func(a, b Expression) bool {
			return scaled(a) && !isValue(b)
		}), t2("k(t*b)", func(a, b Expression) Expression {
			op := a.(*Operation)
			return Mul(op.Left(), Mul(op.Right(), b))
		})),
		rule("hoist right coefficient", p2("b is a scaled term", func(a, b Expression) bool {
			return scaled(b) && !isValue(a)
		}), t2("k(a*t)", func(a, b Expression) Expression {
			op := b.(*Operation)
			return Mul(op.Left(), Mul(a, op.Right()))
		})),
		rule("square", AreEqual, t2("a^2", func(a, _ Expression) Expression { return Pow(a, 2) })),
		rule("same base", ArePowersOfSameBase, t2("t^(m+n)", func(a, b Expression) Expression {
			base, m := powerParts(a)
			_, n := powerParts(b)
			return Pow(base, Add(m, n))
		})),
		rule("reciprocals", AreReciprocals, t2("1", func(_, _ Expression) Expression { return factor.Int(1) })),
		rule("collect factors", AreCollectibleProduct, t2("reduce", func(a, b Expression) Expression {
			return collectedExpression(ProductChain, NewProduct(a, b))
		})),
	)
}

// scaled recognizes k*t with a numeric k and a non-numeric t.
func scaled(e Expression) bool {
	op, ok := e.(*Operation)
	return ok && op.kind == factor.KindProduct && isValue(op.Left()) && !isValue(op.Right())
}

func quotientRules() *RuleSet {
	divisor := p2("determinate divisor", func(a, b Expression) bool {
		return !isZero(b) && !(isInfinity(a) && isInfinity(b))
	})
	return ruleSet("quotient", divisor,
		rule("zero dividend", IsZero, t2("0", func(_, _ Expression) Expression { return factor.Int(0) })),
		rule("values", AreValues, t2("a/b", foldValues(func(x, y float64) float64 { return x / y }))),
		rule("over one", p2("b is one", func(_, b Expression) bool { return isOne(b) }), t2("a", first)),
		rule("cancel", AreEqual, t2("1", func(_, _ Expression) Expression { return factor.Int(1) })),
		rule("same base", ArePowersOfSameBase, t2("t^(m-n)", func(a, b Expression) Expression {
			base, m := powerParts(a)
			_, n := powerParts(b)
			return Pow(base, Sub(m, n))
		})),
		rule("collect factors", p2("are collectible as a quotient", areCollectibleQuotient), t2("reduce", func(a, b Expression) Expression {
			return collectedExpression(ProductChain, NewQuotient(a, b))
		})),
	)
}

func powerRules() *RuleSet {
	return ruleSet("exponentiation", nil,
		rule("zero exponent", p2("b is zero and a is not", func(a, b Expression) bool {
			return isZero(b) && !isZero(a)
		}), t2("1", func(_, _ Expression) Expression { return factor.Int(1) })),
		rule("unit exponent", p2("b is one", func(_, b Expression) bool { return isOne(b) }), t2("a", first)),
		rule("one to any power", IsOne, t2("1", func(_, _ Expression) Expression { return factor.Int(1) })),
		rule("zero base", p2("a is zero and b is positive", func(a, b Expression) bool {
			return isZero(a) && isPositiveValue(b)
		}), t2("0", func(_, _ Expression) Expression { return factor.Int(0) })),
		rule("values", p2("values with a real power", func(a, b Expression) bool {
			x, ok1 := value(a)
			y, ok2 := value(b)
			if !ok1 || !ok2 || (x == 0 && y == 0) {
				return false
			}
			r := math.Pow(x, y)
			return !math.IsNaN(r) && !math.IsInf(r, 0)
		}), t2("a^b", foldValues(math.Pow))),
		rule("power of a power", p2("a is a power and b an integer", func(a, b Expression) bool {
			op, ok := a.(*Operation)
			return ok && op.kind == factor.KindExponentiation && isInteger(b)
		}), t2("t^(m*n)", func(a, b Expression) Expression {
			base, m := powerParts(a)
			return Pow(base, Mul(m, b))
		})),
	)
}

func logRules() *RuleSet {
	base := p2("base is not 0 or 1", func(b, _ Expression) bool { return !isZero(b) && !isOne(b) })
	return ruleSet("logarithm", base,
		rule("log of one", p2("arg is one", func(_, a Expression) bool { return isOne(a) }), t2("0", func(_, _ Expression) Expression {
			return factor.Int(0)
		})),
		rule("log of base", AreEqual, t2("1", func(_, _ Expression) Expression { return factor.Int(1) })),
		rule("log of a power of base", p2("arg is a power of base", func(b, a Expression) bool {
			op, ok := a.(*Operation)
			return ok && op.kind == factor.KindExponentiation && equal(b, op.Left())
		}), t2("k", func(_, a Expression) Expression { return a.(*Operation).Right() })),
		rule("integral values", p2("values with an integral logarithm", func(b, a Expression) bool {
			_, ok := integralLog(b, a)
			return ok
		}), t2("log_b(a)", func(b, a Expression) Expression {
			n, _ := integralLog(b, a)
			return factor.Int(n)
		})),
	)
}

// integralLog computes log_b(a) when both are positive values and the
// result is an integer.
func integralLog(b, a Expression) (int64, bool) {
	x, ok1 := value(b)
	y, ok2 := value(a)
	if !ok1 || !ok2 || x <= 0 || y <= 0 || x == 1 {
		return 0, false
	}
	q := math.Log(y) / math.Log(x)
	n := math.Round(q)
	if math.Abs(q-n) > 1e-9 || math.Pow(x, n) != y {
		return 0, false
	}
	return int64(n), true
}

func simplifyRules() *RuleSet {
	always := p1("always", func(Expression) bool { return true })
	return ruleSet("simplify", nil,
		rule("normalize", always, t1("normalized", Normalize)),
	)
}

func expandRules() *RuleSet {
	always := p1("always", func(Expression) bool { return true })
	return ruleSet("expand", nil,
		rule("distribute", always, t1("distributed", func(a Expression) Expression {
			return Normalize(distribute(a))
		})),
	)
}
