package terms

import (
	"sort"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
)

// Class is a category of the classification ladder. Later classes are
// more specific.
type Class int

const (
	Analytical Class = iota
	ClosedForm
	Algebraic
	Arithmetic
	Polynomial
	PolynomialTerm
	CoefficientlessPolynomialTerm
	SingleVariableCoefficientlessPolynomialTerm
	Coefficient
	IntrinsicIrreducible
	numClasses
)

// classes holds the name and level of each Class, in Class order.
var classes = [numClasses]struct {
	name  string
	level int
}{
	{"analytical", 1},
	{"closed form", 2},
	{"algebraic", 3},
	{"arithmetic", 4},
	{"polynomial", 5},
	{"polynomial term", 6},
	{"coefficientless polynomial term", 7},
	{"single variable coefficientless polynomial term", 8},
	{"coefficient", 8},
	{"intrinsic irreducible", 9},
}

func (c Class) String() string {
	if c < 0 || c >= numClasses {
		return "unclassified"
	}
	return classes[c].name
}

// Level is the classification depth of c. It grows with specificity.
func (c Class) Level() int {
	if c < 0 || c >= numClasses {
		return 0
	}
	return classes[c].level
}

// ClassifiedExpression is an expression tagged with one of its classes.
// A negation is classified through its operand with Negated set.
type ClassifiedExpression struct {
	Expression
	Class   Class
	Negated bool
}

// Level is the classification depth.
func (c ClassifiedExpression) Level() int { return c.Class.Level() }

// Classify returns the classes of e, most specific first. A leaf is
// intrinsically irreducible and also sits on the polynomial ladder, so
// it has two classes.
func Classify(e Expression) ([]ClassifiedExpression, error) {
	negated := false
	for isNegation(e) {
		e = negationOf(e)
		negated = !negated
	}
	c, err := ladder(e)
	if err != nil {
		return nil, err
	}
	out := []ClassifiedExpression{{Expression: e, Class: c, Negated: negated}}
	if e.Kind().IsLeaf() {
		out = append(out, ClassifiedExpression{Expression: e, Class: IntrinsicIrreducible, Negated: negated})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Level() > out[j].Level() })
	return out, nil
}

// ladder places e on the polynomial ladder.
func ladder(e Expression) (Class, error) {
	if isCoefficient(e) {
		return Coefficient, nil
	}
	if isNegation(e) {
		return ladder(negationOf(e))
	}
	if coeff, vars, ok := monomial(e); ok {
		switch {
		case coeff:
			return PolynomialTerm, nil
		case len(vars) == 1:
			return SingleVariableCoefficientlessPolynomialTerm, nil
		}
		return CoefficientlessPolynomialTerm, nil
	}
	switch v := e.(type) {
	case *factor.Constant:
		if v.IsInfinite() {
			return Analytical, nil
		}
		return ClosedForm, nil
	case *factor.ImaginaryUnit:
		return Algebraic, nil
	case *Operation:
		return operationClass(v)
	}
	return Analytical, nil
}

func operationClass(op *Operation) (Class, error) {
	switch op.kind {
	case factor.KindSet, factor.KindSimplify, factor.KindExpand:
		return 0, matherr.Classificationf("a %v cannot be classified", op.kind)
	}
	lowest := IntrinsicIrreducible
	for _, x := range op.operands {
		c, err := ladder(x)
		if err != nil {
			return 0, err
		}
		lowest = min(lowest, c)
	}
	switch op.kind {
	case factor.KindSum, factor.KindDifference, factor.KindProduct:
		if lowest >= Polynomial {
			return Polynomial, nil
		}
		return lowest, nil
	case factor.KindQuotient:
		return min(lowest, Arithmetic), nil
	case factor.KindExponentiation:
		base, err := ladder(op.Left())
		if err != nil {
			return 0, err
		}
		exp := op.Right()
		switch {
		case isInteger(exp) && !isNegativeValue(exp) && base >= Polynomial:
			return Polynomial, nil
		case isInteger(exp):
			return min(base, Arithmetic), nil
		case isValue(exp):
			return min(base, Algebraic), nil
		}
		return min(lowest, ClosedForm), nil
	case factor.KindLogarithm:
		return min(lowest, ClosedForm), nil
	}
	return Analytical, nil
}

// monomial recognizes products of coefficients and non-negative integer
// powers of variables. It reports whether a coefficient takes part and
// which variables appear.
func monomial(e Expression) (coeff bool, vars map[string]bool, ok bool) {
	switch v := e.(type) {
	case *factor.Variable:
		return false, map[string]bool{v.ID(): true}, true
	case *Operation:
		if isCoefficient(v) {
			return true, map[string]bool{}, true
		}
		switch v.kind {
		case factor.KindExponentiation:
			base, isVar := v.Left().(*factor.Variable)
			if isVar && isInteger(v.Right()) && !isNegativeValue(v.Right()) {
				return false, map[string]bool{base.ID(): true}, true
			}
		case factor.KindProduct:
			ca, va, oka := monomial(v.Left())
			cb, vb, okb := monomial(v.Right())
			if oka && okb {
				for id := range vb {
					va[id] = true
				}
				return ca || cb, va, true
			}
		}
	default:
		if isCoefficient(e) {
			return true, map[string]bool{}, true
		}
	}
	return false, nil, false
}
