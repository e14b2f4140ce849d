// Package logic implements guarded rewriting: propositions (boolean
// predicates), transforms (rewrite actions), rules pairing the two, and
// ordered first-match rule sets.
//
// The package is generic in the term type T. Where a rewrite has to
// hand back several inputs as one value, it uses a zero-size collector
// type C to aggregate them.
package logic

import (
	"fmt"

	"zappem.net/pub/math/symalg/matherr"
)

// MaxArity is the largest number of arguments a proposition or
// transform may declare.
const MaxArity = 5

// Proposition is a labelled boolean predicate over 1 to MaxArity terms.
type Proposition[T any] struct {
	label string
	arity int
	fn    func(args ...T) bool
}

// NewProposition binds fn as a proposition taking arity arguments.
func NewProposition[T any](label string, arity int, fn func(args ...T) bool) (*Proposition[T], error) {
	if err := checkArity(label, arity); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, matherr.Logicf("proposition %q has no function", label)
	}
	return &Proposition[T]{label: label, arity: arity, fn: fn}, nil
}

func checkArity(label string, arity int) error {
	if arity < 1 || arity > MaxArity {
		return matherr.Logicf("%q declares arity %d, want 1..%d", label, arity, MaxArity)
	}
	return nil
}

// P1 binds a one argument proposition.
func P1[T any](label string, fn func(a T) bool) *Proposition[T] {
	return &Proposition[T]{label: label, arity: 1, fn: func(x ...T) bool { return fn(x[0]) }}
}

// P2 binds a two argument proposition.
func P2[T any](label string, fn func(a, b T) bool) *Proposition[T] {
	return &Proposition[T]{label: label, arity: 2, fn: func(x ...T) bool { return fn(x[0], x[1]) }}
}

// P3 binds a three argument proposition.
func P3[T any](label string, fn func(a, b, c T) bool) *Proposition[T] {
	return &Proposition[T]{label: label, arity: 3, fn: func(x ...T) bool { return fn(x[0], x[1], x[2]) }}
}

// P4 binds a four argument proposition.
func P4[T any](label string, fn func(a, b, c, d T) bool) *Proposition[T] {
	return &Proposition[T]{label: label, arity: 4, fn: func(x ...T) bool { return fn(x[0], x[1], x[2], x[3]) }}
}

// P5 binds a five argument proposition.
func P5[T any](label string, fn func(a, b, c, d, e T) bool) *Proposition[T] {
	return &Proposition[T]{label: label, arity: 5, fn: func(x ...T) bool { return fn(x[0], x[1], x[2], x[3], x[4]) }}
}

// Label returns the human readable description of p.
func (p *Proposition[T]) Label() string { return p.label }

// Arity returns the number of arguments p consumes.
func (p *Proposition[T]) Arity() int { return p.arity }

// String displays the proposition label and arity.
func (p *Proposition[T]) String() string {
	return fmt.Sprintf("%s/%d", p.label, p.arity)
}

// Evaluate tests the proposition. Supplying fewer than Arity()
// arguments yields false. Extra arguments are ignored.
func (p *Proposition[T]) Evaluate(args ...T) bool {
	if p == nil || len(args) < p.arity {
		return false
	}
	return p.fn(args[:p.arity]...)
}

// Not negates a proposition.
func Not[T any](p *Proposition[T]) *Proposition[T] {
	return &Proposition[T]{
		label: "not " + p.label,
		arity: p.arity,
		fn:    func(x ...T) bool { return !p.Evaluate(x...) },
	}
}

// maxArity returns the widest arity of ps.
func maxArity[T any](ps []*Proposition[T]) int {
	n := 1
	for _, p := range ps {
		if p.arity > n {
			n = p.arity
		}
	}
	return n
}

// And is true when all of ps hold. Its arity is the widest of ps.
func And[T any](label string, ps ...*Proposition[T]) *Proposition[T] {
	return &Proposition[T]{
		label: label,
		arity: maxArity(ps),
		fn: func(x ...T) bool {
			for _, p := range ps {
				if !p.Evaluate(x...) {
					return false
				}
			}
			return true
		},
	}
}

// Or is true when any of ps holds. Its arity is the widest of ps.
func Or[T any](label string, ps ...*Proposition[T]) *Proposition[T] {
	return &Proposition[T]{
		label: label,
		arity: maxArity(ps),
		fn: func(x ...T) bool {
			for _, p := range ps {
				if p.Evaluate(x...) {
					return true
				}
			}
			return false
		},
	}
}
