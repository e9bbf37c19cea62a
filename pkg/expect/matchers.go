package expect

import "github.com/getmockd/reqexpect/pkg/request"

// Matchers is an ordered list of expectation rules. Order is significant:
// diagnostics come back in the order rules were added. Build it up front
// with NewMatchers or Add, then share it freely; evaluation never mutates.
type Matchers struct {
	rules []Matcher
}

// NewMatchers builds an aggregator from the given rules, preserving order.
func NewMatchers(rules ...Matcher) *Matchers {
	return &Matchers{rules: append([]Matcher(nil), rules...)}
}

// Add appends a rule to the end of the list.
func (ms *Matchers) Add(m Matcher) {
	ms.rules = append(ms.rules, m)
}

// Len returns the number of rules.
func (ms *Matchers) Len() int {
	return len(ms.rules)
}

// Rules returns a copy of the rule list in evaluation order.
func (ms *Matchers) Rules() []Matcher {
	return append([]Matcher(nil), ms.rules...)
}

// IsMatched reports whether every rule is satisfied by the request. It is
// always equal to Validate(r) == nil.
func (ms *Matchers) IsMatched(r request.Request) bool {
	for _, rule := range ms.rules {
		if rule.Validate(r) != nil {
			return false
		}
	}
	return true
}

// Validate evaluates every rule against the request, even after the first
// failure, and collects the diagnostics in rule order. It returns nil when
// all rules are satisfied.
func (ms *Matchers) Validate(r request.Request) []Matcher {
	var failures []Matcher
	for _, rule := range ms.rules {
		if diag := rule.Validate(r); diag != nil {
			failures = append(failures, *diag)
		}
	}
	return failures
}
