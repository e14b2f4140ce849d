package logic

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"zappem.net/pub/math/symalg/matherr"
)

// Rule pairs a guarding proposition with a transform.
type Rule[T any, C Collector[T]] struct {
	label string
	when  *Proposition[T]
	then  *Transform[T, C]
}

// NewRule binds a proposition to a transform. The proposition may
// consume fewer arguments than the transform but never more.
func NewRule[T any, C Collector[T]](label string, when *Proposition[T], then *Transform[T, C]) (*Rule[T, C], error) {
	if when == nil || then == nil {
		return nil, matherr.Logicf("rule %q is missing its proposition or transform", label)
	}
	if when.arity > then.arity {
		return nil, matherr.Logicf("rule %q: proposition %v is wider than transform %v", label, when, then)
	}
	return &Rule[T, C]{label: label, when: when, then: then}, nil
}

// Must unwraps a constructor result, panicking on error. It is meant
// for statically defined rule tables.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

// Label returns the description of r.
func (r *Rule[T, C]) Label() string { return r.label }

// Arity returns the number of arguments the rule's transform consumes.
func (r *Rule[T, C]) Arity() int { return r.then.arity }

// String displays the rule as "label: when => then".
func (r *Rule[T, C]) String() string {
	return fmt.Sprintf("%s: %s => %s", r.label, r.when.label, r.then.label)
}

// Matches evaluates the rule's proposition.
func (r *Rule[T, C]) Matches(args ...T) bool {
	return r.when.Evaluate(args...)
}

// Apply transforms args when the proposition holds. Otherwise the input
// is returned unchanged (collected when there are several inputs).
func (r *Rule[T, C]) Apply(args ...T) T {
	if r.when.Evaluate(args...) {
		return r.then.Apply(args...)
	}
	return unchanged[T, C](args)
}

// RuleSet is an ordered list of rules where the first matching rule
// wins. An optional guard must hold before any rule is considered.
type RuleSet[T any, C Collector[T]] struct {
	label string
	guard *Proposition[T]
	rules []*Rule[T, C]
}

// NewRuleSet validates and assembles a rule set. All rules must share
// an arity, and the guard may not be wider than that arity. Every
// problem found is reported.
func NewRuleSet[T any, C Collector[T]](label string, guard *Proposition[T], rules ...*Rule[T, C]) (*RuleSet[T, C], error) {
	var err error
	arity := 0
	for i, r := range rules {
		if r == nil {
			err = multierr.Append(err, matherr.Logicf("%s: rule [%d] is nil", label, i))
			continue
		}
		if arity == 0 {
			arity = r.Arity()
		} else if r.Arity() != arity {
			err = multierr.Append(err, matherr.Logicf("%s: rule %q has arity %d, want %d", label, r.label, r.Arity(), arity))
		}
	}
	if guard != nil && arity != 0 && guard.arity > arity {
		err = multierr.Append(err, matherr.Logicf("%s: guard %v is wider than its rules (%d)", label, guard, arity))
	}
	if err != nil {
		return nil, err
	}
	return &RuleSet[T, C]{label: label, guard: guard, rules: rules}, nil
}

// Label returns the description of rs.
func (rs *RuleSet[T, C]) Label() string { return rs.label }

// Rules returns a copy of the ordered rules.
func (rs *RuleSet[T, C]) Rules() []*Rule[T, C] {
	return append([]*Rule[T, C](nil), rs.rules...)
}

// String lists the rules one per line.
func (rs *RuleSet[T, C]) String() string {
	var s []string
	for i, r := range rs.rules {
		s = append(s, fmt.Sprintf("%2d. %v", i+1, r))
	}
	return rs.label + ":\n" + strings.Join(s, "\n")
}

// Match returns the first rule whose proposition holds for args.
func (rs *RuleSet[T, C]) Match(args ...T) (*Rule[T, C], bool) {
	if rs == nil {
		return nil, false
	}
	if rs.guard != nil && !rs.guard.Evaluate(args...) {
		return nil, false
	}
	for _, r := range rs.rules {
		if r.Matches(args...) {
			return r, true
		}
	}
	return nil, false
}

// CanTransform reports whether some rule would fire for args.
func (rs *RuleSet[T, C]) CanTransform(args ...T) bool {
	_, ok := rs.Match(args...)
	return ok
}

// TryApply applies the first matching rule. The boolean is false when
// no rule fired.
func (rs *RuleSet[T, C]) TryApply(args ...T) (T, bool) {
	r, ok := rs.Match(args...)
	if !ok {
		var zero T
		return zero, false
	}
	log.Debugf("%s: rule %q fired", rs.label, r.label)
	return r.then.Apply(args...), true
}

// Apply applies the first matching rule, or returns the input
// unchanged when none match.
func (rs *RuleSet[T, C]) Apply(args ...T) T {
	if res, ok := rs.TryApply(args...); ok {
		return res
	}
	return unchanged[T, C](args)
}
