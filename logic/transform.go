package logic

import (
	"fmt"

	"zappem.net/pub/math/symalg/matherr"
)

// Collector aggregates several terms into one. Implementations are
// zero-size types so that a zero value is ready to use.
type Collector[T any] interface {
	Collect(xs ...T) T
}

// Transform is a labelled rewrite action over 1 to MaxArity terms.
// Transforms must not mutate their inputs.
type Transform[T any, C Collector[T]] struct {
	label string
	arity int
	fn    func(args ...T) T
}

// NewTransform binds fn as a transform taking arity arguments.
func NewTransform[T any, C Collector[T]](label string, arity int, fn func(args ...T) T) (*Transform[T, C], error) {
	if err := checkArity(label, arity); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, matherr.Logicf("transform %q has no function", label)
	}
	return &Transform[T, C]{label: label, arity: arity, fn: fn}, nil
}

// T1 binds a one argument transform.
func T1[T any, C Collector[T]](label string, fn func(a T) T) *Transform[T, C] {
	return &Transform[T, C]{label: label, arity: 1, fn: func(x ...T) T { return fn(x[0]) }}
}

// T2 binds a two argument transform.
func T2[T any, C Collector[T]](label string, fn func(a, b T) T) *Transform[T, C] {
	return &Transform[T, C]{label: label, arity: 2, fn: func(x ...T) T { return fn(x[0], x[1]) }}
}

// T3 binds a three argument transform.
func T3[T any, C Collector[T]](label string, fn func(a, b, c T) T) *Transform[T, C] {
	return &Transform[T, C]{label: label, arity: 3, fn: func(x ...T) T { return fn(x[0], x[1], x[2]) }}
}

// T4 binds a four argument transform.
func T4[T any, C Collector[T]](label string, fn func(a, b, c, d T) T) *Transform[T, C] {
	return &Transform[T, C]{label: label, arity: 4, fn: func(x ...T) T { return fn(x[0], x[1], x[2], x[3]) }}
}

// T5 binds a five argument transform.
func T5[T any, C Collector[T]](label string, fn func(a, b, c, d, e T) T) *Transform[T, C] {
	return &Transform[T, C]{label: label, arity: 5, fn: func(x ...T) T { return fn(x[0], x[1], x[2], x[3], x[4]) }}
}

// Label returns the human readable description of t.
func (t *Transform[T, C]) Label() string { return t.label }

// Arity returns the number of arguments t consumes.
func (t *Transform[T, C]) Arity() int { return t.arity }

// String displays the transform label and arity.
func (t *Transform[T, C]) String() string {
	return fmt.Sprintf("%s/%d", t.label, t.arity)
}

// Apply computes the transform. With fewer than Arity() arguments
// nothing is computed: a unary transform returns its (absent) input and
// a wider one returns the collected inputs.
func (t *Transform[T, C]) Apply(args ...T) T {
	if len(args) < t.arity {
		if t.arity == 1 {
			return unchanged[T, C](args)
		}
		var c C
		return c.Collect(args...)
	}
	return t.fn(args[:t.arity]...)
}

// unchanged returns the input tuple as a single term.
func unchanged[T any, C Collector[T]](args []T) T {
	switch len(args) {
	case 0:
		var zero T
		return zero
	case 1:
		return args[0]
	}
	var c C
	return c.Collect(args...)
}
