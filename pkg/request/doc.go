// Package request provides the decoded request model that expectation rules
// are evaluated against.
//
// A Request is built either by Parse, which turns a URI-like string into a
// Request and never fails, by the chainable With* builder methods, or from a
// live *http.Request via FromHTTP. Once built, a Request is treated as an
// immutable value: matching reads it, nothing mutates it.
//
// Query values and the fragment/body fields are modeled with Optional so
// that "key present with no value" stays distinct from both "key absent"
// and "key present with empty value".
package request
