package terms

import (
	"math"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
)

// ToGenericForm replaces every coefficient in e with the generic
// constant C. Variables, exponents, special constants and infinities
// are kept. Sets and grouping wrappers have no generic form.
func ToGenericForm(e Expression) (Expression, error) {
	switch v := e.(type) {
	case *factor.Value:
		if math.IsInf(v.Float(), 0) {
			return v, nil
		}
		return factor.GenericC, nil
	case *factor.Constant:
		if v.IsSpecial() {
			return v, nil
		}
		return factor.GenericC, nil
	case *Operation:
		switch v.kind {
		case factor.KindSet, factor.KindSimplify, factor.KindExpand:
			return nil, matherr.Simplificationf("%v has no generic form", v.kind)
		}
		if isCoefficient(v) {
			return factor.GenericC, nil
		}
		args := v.Children()
		n := len(args)
		if v.kind == factor.KindExponentiation {
			n = 1
		}
		for i := 0; i < n; i++ {
			g, err := ToGenericForm(args[i])
			if err != nil {
				return nil, err
			}
			args[i] = g
		}
		return newOp(v.kind, args...), nil
	}
	return e, nil
}
