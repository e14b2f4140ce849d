package terms

import (
	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/logic"
)

// collector gathers several expressions into a Set. It is what a
// transform returns when it is handed fewer inputs than it needs.
type collector struct{}

func (collector) Collect(xs ...Expression) Expression { return NewSet(xs...) }

// The rule machinery specialized to expressions.
type (
	Proposition = logic.Proposition[Expression]
	Transform   = logic.Transform[Expression, collector]
	Rule        = logic.Rule[Expression, collector]
	RuleSet     = logic.RuleSet[Expression, collector]
)

func p1(label string, fn func(a Expression) bool) *Proposition {
	return logic.P1(label, fn)
}

func p2(label string, fn func(a, b Expression) bool) *Proposition {
	return logic.P2(label, fn)
}

func t1(label string, fn func(a Expression) Expression) *Transform {
	return logic.T1[Expression, collector](label, fn)
}

func t2(label string, fn func(a, b Expression) Expression) *Transform {
	return logic.T2[Expression, collector](label, fn)
}

func rule(label string, when *Proposition, then *Transform) *Rule {
	return logic.Must(logic.NewRule(label, when, then))
}

func ruleSet(label string, guard *Proposition, rules ...*Rule) *RuleSet {
	return logic.Must(logic.NewRuleSet(label, guard, rules...))
}

// Rules returns the rule set consulted when an operation of kind k is
// applied. Kinds without rules return nil.
func Rules(k factor.Kind) *RuleSet {
	return ruleSets[k]
}
