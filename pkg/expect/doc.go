// Package expect implements expectation rules over decoded requests.
//
// A Matcher is one rule from a closed set of kinds: method and path
// equality, query/header existence, absence, and equality, and fragment and
// body presence or equality. Validating a Matcher against a request either
// succeeds or yields another Matcher of the same type describing what was
// actually observed. That diagnostic doubles as the corrected expectation:
// validating it against the same request always succeeds.
//
// Matchers is an ordered rule list. It reports a boolean verdict through
// IsMatched and the full ordered diagnostic list through Validate; every
// rule is evaluated, nothing short-circuits, and rule order is preserved in
// the output. Evaluation is pure: neither the rules nor the request are
// mutated, so a built Matchers may be shared across goroutines.
package expect
