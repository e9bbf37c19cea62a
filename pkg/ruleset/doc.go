// Package ruleset loads expectation rule files.
//
// A rule file is YAML or JSON (picked by file extension) holding an optional
// name and an ordered list of kind-tagged rules:
//
//	name: checkout-contract
//	rules:
//	  - kind: method
//	    value: POST
//	  - kind: queryEq
//	    key: step
//	    value: "2"
//	  - kind: fragmentMiss
//
// Loading validates every rule (known kind, key present for query/header
// kinds) so that a bad file fails at load time with the rule index in the
// error, not silently at match time.
package ruleset
