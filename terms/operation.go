// Package terms builds operation nodes over the factor leaves and
// rewrites them with rule tables. It implements the smart arithmetic
// constructors, the normalizer, collapsed sum and product chains used
// for associative reasoning, the equivalence relations, classification
// and generic forms.
package terms

import (
	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
)

// Expression is a node of an expression tree.
type Expression = factor.Expression

// Operation is a node with operands. Its kind fixes the operand count
// and the rule set used to rewrite it.
type Operation struct {
	kind     factor.Kind
	operands []Expression
}

// newOp builds an operation without consulting any rules.
func newOp(kind factor.Kind, xs ...Expression) *Operation {
	return &Operation{kind: kind, operands: append([]Expression(nil), xs...)}
}

// NewOperation builds an operation of kind k without rewriting. The
// number of operands must suit the kind.
func NewOperation(k factor.Kind, xs ...Expression) (*Operation, error) {
	want := -1
	switch k.Properties().Class {
	case factor.Unary:
		want = 1
	case factor.Binary:
		want = 2
	case factor.Variadic:
	default:
		return nil, matherr.Calculationf("%v is not an operation", k)
	}
	if want >= 0 && len(xs) != want {
		return nil, matherr.Calculationf("%v takes %d operands, not %d", k, want, len(xs))
	}
	for i, x := range xs {
		if x == nil {
			return nil, matherr.Calculationf("%v operand %d is nil", k, i)
		}
	}
	return newOp(k, xs...), nil
}

// NewSum builds a+b without rewriting.
func NewSum(a, b Expression) *Operation { return newOp(factor.KindSum, a, b) }

// NewDifference builds a-b without rewriting.
func NewDifference(a, b Expression) *Operation { return newOp(factor.KindDifference, a, b) }

// NewProduct builds a*b without rewriting.
func NewProduct(a, b Expression) *Operation { return newOp(factor.KindProduct, a, b) }

// NewQuotient builds a/b without rewriting.
func NewQuotient(a, b Expression) *Operation { return newOp(factor.KindQuotient, a, b) }

// NewPower builds a^b without rewriting.
func NewPower(a, b Expression) *Operation { return newOp(factor.KindExponentiation, a, b) }

// NewLog builds the logarithm of arg to base without rewriting.
func NewLog(base, arg Expression) *Operation { return newOp(factor.KindLogarithm, base, arg) }

// NewNegation builds -a, represented as the product -1*a.
func NewNegation(a Expression) *Operation { return NewProduct(factor.Int(-1), a) }

// NewSet gathers expressions into an aggregate set node.
func NewSet(xs ...Expression) *Operation { return newOp(factor.KindSet, xs...) }

// NewSimplify wraps a in a simplify grouping.
func NewSimplify(a Expression) *Operation { return newOp(factor.KindSimplify, a) }

// NewExpand wraps a in an expand grouping.
func NewExpand(a Expression) *Operation { return newOp(factor.KindExpand, a) }

// Kind returns the operation kind.
func (o *Operation) Kind() factor.Kind { return o.kind }

// Arity returns the operand count.
func (o *Operation) Arity() int { return len(o.operands) }

// Child returns the i-th operand.
func (o *Operation) Child(i int) Expression { return o.operands[i] }

// Children returns a copy of the operands.
func (o *Operation) Children() []Expression {
	return append([]Expression(nil), o.operands...)
}

// Left returns the first operand.
func (o *Operation) Left() Expression { return o.operands[0] }

// Right returns the second operand.
func (o *Operation) Right() Expression { return o.operands[1] }

// String renders o in the Default format.
func (o *Operation) String() string { return o.Text(factor.Default) }

// rules returns the rule set for the kind of o, if any.
func (o *Operation) rules() *RuleSet {
	return ruleSets[o.kind]
}

// Apply performs one bottom-up rewriting pass. Operands that can be
// rewritten are rewritten first, then the rule set of o is applied to
// the resulting operands. An idempotent wrapper around an operand of
// the same kind defers to that operand.
func (o *Operation) Apply() Expression {
	if o.kind.Properties().Idempotent && len(o.operands) == 1 {
		if inner, ok := o.operands[0].(*Operation); ok && inner.kind == o.kind {
			return inner.Apply()
		}
	}
	args := o.Children()
	changed := false
	for i, c := range args {
		if op, ok := c.(*Operation); ok && op.CanTransform() {
			args[i] = op.Apply()
			changed = true
		}
	}
	if res, ok := o.rules().TryApply(args...); ok {
		return res
	}
	if !changed {
		return o
	}
	return newOp(o.kind, args...)
}

// CanTransform reports whether Apply would rewrite o or any of its
// operands.
func (o *Operation) CanTransform() bool {
	for _, c := range o.operands {
		if op, ok := c.(*Operation); ok && op.CanTransform() {
			return true
		}
	}
	return o.rules().CanTransform(o.operands...)
}
