package terms

import (
	"zappem.net/pub/math/symalg/factor"
)

// Identical reports whether a and b have the same structure: the same
// operations in the same order over the same leaves. No algebra is
// involved, so x+y and y+x are not identical.
func Identical(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *factor.Value:
		y, ok := b.(*factor.Value)
		return ok && x.Float() == y.Float()
	case *factor.Variable:
		y, ok := b.(*factor.Variable)
		return ok && x.ID() == y.ID()
	case *factor.Constant:
		y, ok := b.(*factor.Constant)
		return ok && x.ID() == y.ID()
	case *factor.ImaginaryUnit:
		return true
	case *Operation:
		y, ok := b.(*Operation)
		if !ok || len(x.operands) != len(y.operands) {
			return false
		}
		for i, c := range x.operands {
			if !Identical(c, y.operands[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// relation decides equality for the pairs it qualifies.
type relation struct {
	label     string
	qualifies func(a, b Expression) bool
	holds     func(a, b Expression) bool
}

// relations is scanned in order by equal. It is filled by init.
var relations []relation

func equalityRelations() []relation {
	both := func(fn func(Expression) bool) func(a, b Expression) bool {
		return func(a, b Expression) bool { return fn(a) && fn(b) }
	}
	either := func(fn func(Expression) bool) func(a, b Expression) bool {
		return func(a, b Expression) bool { return fn(a) || fn(b) }
	}
	return []relation{
		{"sum chains", either(qualifiesSum), collapsedEqual(SumChain)},
		{"product chains", either(qualifiesProduct), collapsedEqual(ProductChain)},
		{"values", both(isValue), func(a, b Expression) bool {
			x, _ := value(a)
			y, _ := value(b)
			return x == y
		}},
		{"variables", both(isVariable), func(a, b Expression) bool {
			return a.(*factor.Variable).ID() == b.(*factor.Variable).ID()
		}},
		{"constants", both(isConstant), func(a, b Expression) bool {
			return a.(*factor.Constant).ID() == b.(*factor.Constant).ID()
		}},
		{"imaginary units", both(func(e Expression) bool { return e.Kind() == factor.KindImaginaryUnit }), func(_, _ Expression) bool {
			return true
		}},
		{"operations", func(a, b Expression) bool {
			x, ok1 := a.(*Operation)
			y, ok2 := b.(*Operation)
			return ok1 && ok2 && x.kind == y.kind
		}, operandsEqual},
	}
}

// collapsedEqual compares both sides as flattened chains.
func collapsedEqual(chain Chain) func(a, b Expression) bool {
	return func(a, b Expression) bool {
		return collapse(chain, a).TestEquality(collapse(chain, b))
	}
}

// operandsEqual compares two operations of one kind. Commutative kinds
// and sets ignore operand order.
func operandsEqual(a, b Expression) bool {
	x, y := a.(*Operation), b.(*Operation)
	if len(x.operands) != len(y.operands) {
		return false
	}
	if x.kind == factor.KindSet || x.kind.Properties().Commutative {
		return matchTerms(x.operands, y.operands, equal)
	}
	for i, c := range x.operands {
		if !equal(c, y.operands[i]) {
			return false
		}
	}
	return true
}

// equal is symbolic equality: the first relation that qualifies a and b
// decides.
func equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	for _, r := range relations {
		if r.qualifies(a, b) {
			return r.holds(a, b)
		}
	}
	return false
}

// Similar reports whether a and b agree up to their coefficients, that
// is whether their generic forms are identical.
func Similar(a, b Expression) bool {
	ga, err := ToGenericForm(a)
	if err != nil {
		return false
	}
	gb, err := ToGenericForm(b)
	if err != nil {
		return false
	}
	return Identical(ga, gb)
}
