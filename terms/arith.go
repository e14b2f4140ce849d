package terms

import (
	log "github.com/sirupsen/logrus"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
)

// MaxPasses bounds the number of Apply passes made by Normalize.
const MaxPasses = 64

// Add returns the normal form of a+b. Go numbers are accepted as operands.
func Add(a, b interface{}) Expression {
	return Normalize(NewSum(factor.Lift(a), factor.Lift(b)))
}

// Sub returns the normal form of a-b.
func Sub(a, b interface{}) Expression {
	return Normalize(NewDifference(factor.Lift(a), factor.Lift(b)))
}

// Mul returns the normal form of a*b.
func Mul(a, b interface{}) Expression {
	return Normalize(NewProduct(factor.Lift(a), factor.Lift(b)))
}

// Div returns the normal form of a/b.
func Div(a, b interface{}) Expression {
	return Normalize(NewQuotient(factor.Lift(a), factor.Lift(b)))
}

// Pow returns the normal form of a^b.
func Pow(a, b interface{}) Expression {
	return Normalize(NewPower(factor.Lift(a), factor.Lift(b)))
}

// Log returns the normal form of the logarithm of arg to base.
func Log(base, arg interface{}) Expression {
	return Normalize(NewLog(factor.Lift(base), factor.Lift(arg)))
}

// Neg returns -a after rewriting.
func Neg(a interface{}) Expression {
	return Mul(-1, a)
}

// Equal reports whether a and b are symbolically equal.
func Equal(a, b interface{}) bool {
	return equal(factor.Lift(a), factor.Lift(b))
}

// AddAll sums a non-empty list of expressions.
func AddAll(xs ...Expression) (Expression, error) {
	return fold("sum", Add, xs)
}

// MulAll multiplies a non-empty list of expressions.
func MulAll(xs ...Expression) (Expression, error) {
	return fold("product", Mul, xs)
}

func fold(what string, fn func(a, b interface{}) Expression, xs []Expression) (Expression, error) {
	if len(xs) == 0 {
		return nil, matherr.Calculationf("cannot form the %s of no operands", what)
	}
	e := xs[0]
	for _, x := range xs[1:] {
		e = fn(e, x)
	}
	return e, nil
}

// Normalize applies rewriting passes until no rule can fire at the
// root, or MaxPasses passes have been made.
func Normalize(e Expression) Expression {
	return NormalizeN(e, MaxPasses)
}

// NormalizeN is Normalize with an explicit pass limit.
func NormalizeN(e Expression, passes int) Expression {
	for i := 0; i < passes; i++ {
		op, ok := e.(*Operation)
		if !ok || !op.CanTransform() {
			return e
		}
		e = op.Apply()
		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("normalize pass %d: %v", i+1, e)
		}
	}
	if op, ok := e.(*Operation); ok && op.CanTransform() {
		log.Warnf("normalization of %v stopped after %d passes", e, passes)
	}
	return e
}

// Substituted replaces every subtree of e identical to target with repl
// and normalizes the rebuilt nodes. If the returned boolean is true,
// then something was substituted.
func Substituted(e, target, repl Expression) (Expression, bool) {
	if Identical(e, target) {
		return repl, true
	}
	op, ok := e.(*Operation)
	if !ok {
		return e, false
	}
	args := op.Children()
	acted := false
	for i, c := range args {
		if x, hit := Substituted(c, target, repl); hit {
			args[i] = x
			acted = true
		}
	}
	if !acted {
		return e, false
	}
	return Normalize(newOp(op.kind, args...)), true
}

// Substitute unconditionally replaces target with repl in e. Consider
// using Substituted() to learn if any change was made.
func Substitute(e, target, repl Expression) Expression {
	e2, _ := Substituted(e, target, repl)
	return e2
}
