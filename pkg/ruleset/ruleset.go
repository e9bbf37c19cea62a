package ruleset

import (
	"fmt"

	"github.com/getmockd/reqexpect/pkg/expect"
)

// RuleSet is the file-level shape of an expectation rule list. Rule order is
// significant and carried through to diagnostics.
type RuleSet struct {
	// Name is an optional human-readable label for the rule set.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Rules is the ordered list of expectation rules.
	Rules []expect.Matcher `json:"rules" yaml:"rules"`
}

// keyedKinds are the kinds that are meaningless without a key.
var keyedKinds = map[expect.Kind]bool{
	expect.KindQueryEq:      true,
	expect.KindQueryExists:  true,
	expect.KindQueryMiss:    true,
	expect.KindHeaderEq:     true,
	expect.KindHeaderExists: true,
	expect.KindHeaderMiss:   true,
}

var validKinds = func() map[expect.Kind]bool {
	m := make(map[expect.Kind]bool, len(expect.Kinds))
	for _, k := range expect.Kinds {
		m[k] = true
	}
	return m
}()

// Validate checks every rule for a known kind and a key where one is
// required. Errors carry the zero-based rule index.
func (rs *RuleSet) Validate() error {
	for i, rule := range rs.Rules {
		if rule.Kind == "" {
			return fmt.Errorf("rule %d: missing kind", i)
		}
		if !validKinds[rule.Kind] {
			return fmt.Errorf("rule %d: unknown kind %q", i, rule.Kind)
		}
		if keyedKinds[rule.Kind] && rule.Key == "" {
			return fmt.Errorf("rule %d: kind %q requires a key", i, rule.Kind)
		}
	}
	return nil
}

// Matchers builds the aggregator for this rule set, preserving rule order.
func (rs *RuleSet) Matchers() *expect.Matchers {
	return expect.NewMatchers(rs.Rules...)
}
