package terms

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"zappem.net/pub/math/symalg/factor"
)

// Binding strengths used to decide where parentheses are needed.
const (
	precSum = iota + 1
	precProduct
	precNegation
	precPower
	precAtom
)

// precedence returns how tightly e holds together when rendered.
func precedence(e Expression) int {
	switch v := e.(type) {
	case *factor.Value:
		if v.Float() < 0 {
			return precNegation
		}
	case *Operation:
		switch v.kind {
		case factor.KindSum, factor.KindDifference:
			return precSum
		case factor.KindProduct:
			if isNegativeValue(v.Left()) {
				return precNegation
			}
			return precProduct
		case factor.KindQuotient:
			return precProduct
		case factor.KindExponentiation:
			return precPower
		}
	}
	return precAtom
}

// wrap renders e, parenthesized when it binds looser than min.
func wrap(e Expression, f factor.Format, min int) string {
	s := e.Text(f)
	if precedence(e) >= min {
		return s
	}
	if f == factor.LaTeX {
		return `\left(` + s + `\right)`
	}
	return "(" + s + ")"
}

// signed is true when the rendering of e starts with a minus sign.
func signed(e Expression) bool {
	return precedence(e) == precNegation
}

// unsigned drops the leading minus sign of a signed expression.
func unsigned(e Expression) Expression {
	switch v := e.(type) {
	case *factor.Value:
		return factor.Num(-v.Float())
	case *Operation:
		k, _ := value(v.Left())
		if k == -1 {
			return v.Right()
		}
		return NewProduct(factor.Num(-k), v.Right())
	}
	return e
}

// startsWithDigit checks if s opens with a digit or numeric glyph.
func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r) || unicode.Is(unicode.No, r) || r == '.'
}

// Text renders o in format f.
func (o *Operation) Text(f factor.Format) string {
	if f == factor.Parse {
		return o.parseText()
	}
	latex := f == factor.LaTeX
	switch o.kind {
	case factor.KindSum, factor.KindDifference:
		op := " + "
		if o.kind == factor.KindDifference {
			op = " - "
		}
		l := o.Left().Text(f)
		right := o.Right()
		if o.kind == factor.KindSum && signed(right) {
			op, right = " - ", unsigned(right)
		}
		r := wrap(right, f, precProduct)
		if op == " + " {
			r = wrap(right, f, precSum)
		}
		if signed(right) {
			r = wrap(right, f, precAtom)
		}
		return l + op + r
	case factor.KindProduct:
		return o.productText(f)
	case factor.KindQuotient:
		if latex {
			return `\frac{` + o.Left().Text(f) + "}{" + o.Right().Text(f) + "}"
		}
		return wrap(o.Left(), f, precProduct) + " / " + wrap(o.Right(), f, precNegation)
	case factor.KindExponentiation:
		base := wrap(o.Left(), f, precAtom)
		if latex {
			return base + "^{" + o.Right().Text(f) + "}"
		}
		exp := o.Right()
		if _, ok := exp.(*factor.Value); ok {
			return base + "^" + exp.Text(f)
		}
		return base + "^" + wrap(exp, f, precAtom)
	case factor.KindLogarithm:
		if latex {
			return `\log_{` + o.Left().Text(f) + `}\left(` + o.Right().Text(f) + `\right)`
		}
		return "log_" + wrap(o.Left(), f, precAtom) + "(" + o.Right().Text(f) + ")"
	case factor.KindSet:
		var xs []string
		for _, x := range o.operands {
			xs = append(xs, x.Text(f))
		}
		if latex {
			return `\left\{` + strings.Join(xs, ", ") + `\right\}`
		}
		return "{" + strings.Join(xs, ", ") + "}"
	case factor.KindSimplify, factor.KindExpand:
		name := strings.ToLower(o.kind.String())
		if latex {
			return `\operatorname{` + name + `}\left(` + o.Left().Text(f) + `\right)`
		}
		return name + "(" + o.Left().Text(f) + ")"
	}
	return "[UNKNOWN " + o.kind.String() + "]"
}

// productText renders a product. A leading numeric coefficient is
// juxtaposed with the rest, so 2*x is shown as 2x and -1*x as -x.
func (o *Operation) productText(f factor.Format) string {
	a, b := o.Left(), o.Right()
	mul := "*"
	if f == factor.LaTeX {
		mul = ` \cdot `
	}
	if v, ok := a.(*factor.Value); ok {
		if _, num := b.(*factor.Value); !num {
			prefix := v.Text(f)
			if v.Float() == -1 {
				prefix = "-"
			}
			rest := wrap(b, f, precProduct)
			if signed(b) {
				rest = wrap(b, f, precAtom)
			}
			if !startsWithDigit(rest) || prefix == "-" {
				return prefix + rest
			}
			return prefix + mul + rest
		}
	}
	l := wrap(a, f, precProduct)
	r := wrap(b, f, precProduct)
	if signed(b) {
		r = wrap(b, f, precAtom)
	}
	return l + mul + r
}

// parseText renders o fully parenthesized.
func (o *Operation) parseText() string {
	p := factor.Parse
	switch o.kind {
	case factor.KindSum:
		return "(" + o.Left().Text(p) + " + " + o.Right().Text(p) + ")"
	case factor.KindDifference:
		return "(" + o.Left().Text(p) + " - " + o.Right().Text(p) + ")"
	case factor.KindProduct:
		return "(" + o.Left().Text(p) + " * " + o.Right().Text(p) + ")"
	case factor.KindQuotient:
		return "(" + o.Left().Text(p) + " / " + o.Right().Text(p) + ")"
	case factor.KindExponentiation:
		base := o.Left().Text(p)
		if isNegativeValue(o.Left()) {
			base = "(" + base + ")"
		}
		return "(" + base + " ^ " + o.Right().Text(p) + ")"
	case factor.KindLogarithm:
		return "log(" + o.Left().Text(p) + ", " + o.Right().Text(p) + ")"
	case factor.KindSet:
		var xs []string
		for _, x := range o.operands {
			xs = append(xs, x.Text(p))
		}
		return "{" + strings.Join(xs, ", ") + "}"
	case factor.KindSimplify, factor.KindExpand:
		return strings.ToLower(o.kind.String()) + "(" + o.Left().Text(p) + ")"
	}
	return "[UNKNOWN " + o.kind.String() + "]"
}
