package expect

import (
	"fmt"
	"strings"

	"github.com/getmockd/reqexpect/pkg/request"
)

// Kind identifies what a Matcher compares. The set is closed; the ruleset
// loader rejects anything else.
type Kind string

const (
	KindMethod       Kind = "method"
	KindPath         Kind = "path"
	KindQueryEq      Kind = "queryEq"
	KindQueryExists  Kind = "queryExists"
	KindQueryMiss    Kind = "queryMiss"
	KindHeaderEq     Kind = "headerEq"
	KindHeaderExists Kind = "headerExists"
	KindHeaderMiss   Kind = "headerMiss"
	KindFragmentEq   Kind = "fragmentEq"
	KindFragmentMiss Kind = "fragmentMiss"
	KindBodyEq       Kind = "bodyEq"
	KindBodyMiss     Kind = "bodyMiss"
)

// Kinds lists every valid Kind.
var Kinds = []Kind{
	KindMethod, KindPath,
	KindQueryEq, KindQueryExists, KindQueryMiss,
	KindHeaderEq, KindHeaderExists, KindHeaderMiss,
	KindFragmentEq, KindFragmentMiss,
	KindBodyEq, KindBodyMiss,
}

// Matcher is a single expectation rule. The same type carries diagnostics:
// a failed Validate returns a Matcher describing the observed state. Key is
// only meaningful for query and header kinds, Value for equality kinds and
// method/path. The struct is comparable, so rules and diagnostics can be
// compared with ==.
type Matcher struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Key   string `json:"key,omitempty" yaml:"key,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Method expects the request method to equal expected, compared
// case-insensitively.
func Method(expected string) Matcher {
	return Matcher{Kind: KindMethod, Value: expected}
}

// Path expects the request path to equal expected exactly.
func Path(expected string) Matcher {
	return Matcher{Kind: KindPath, Value: expected}
}

// QueryEq expects the query key to be present with exactly the given value.
func QueryEq(key, value string) Matcher {
	return Matcher{Kind: KindQueryEq, Key: key, Value: value}
}

// QueryExists expects the query key to be present, with or without a value.
func QueryExists(key string) Matcher {
	return Matcher{Kind: KindQueryExists, Key: key}
}

// QueryMiss expects the query key to be absent.
func QueryMiss(key string) Matcher {
	return Matcher{Kind: KindQueryMiss, Key: key}
}

// HeaderEq expects the header key to be present with exactly the given
// value. Keys and values are compared verbatim, no case folding.
func HeaderEq(key, value string) Matcher {
	return Matcher{Kind: KindHeaderEq, Key: key, Value: value}
}

// HeaderExists expects the header key to be present.
func HeaderExists(key string) Matcher {
	return Matcher{Kind: KindHeaderExists, Key: key}
}

// HeaderMiss expects the header key to be absent.
func HeaderMiss(key string) Matcher {
	return Matcher{Kind: KindHeaderMiss, Key: key}
}

// FragmentEq expects the fragment to be present and equal to expected.
func FragmentEq(expected string) Matcher {
	return Matcher{Kind: KindFragmentEq, Value: expected}
}

// FragmentMiss expects the request to have no fragment.
func FragmentMiss() Matcher {
	return Matcher{Kind: KindFragmentMiss}
}

// BodyEq expects the body to be present and equal to expected.
func BodyEq(expected string) Matcher {
	return Matcher{Kind: KindBodyEq, Value: expected}
}

// BodyMiss expects the request to have no body.
func BodyMiss() Matcher {
	return Matcher{Kind: KindBodyMiss}
}

// Validate compares the rule against the request. It returns nil when the
// rule is satisfied, otherwise a Matcher describing the observed state:
// a wrong value reports the actual value, a missing key reports the Miss
// kind, a key present without a value reports Exists rather than a value
// mismatch. The returned diagnostic always validates cleanly against the
// same request. Unknown kinds are vacuously satisfied; constructing rules
// through this package or the ruleset loader keeps them out.
func (m Matcher) Validate(r request.Request) *Matcher {
	switch m.Kind {
	case KindMethod:
		if !strings.EqualFold(m.Value, r.Method) {
			// Report the method exactly as received, not upper-cased.
			return ref(Method(r.Method))
		}

	case KindPath:
		if r.Path != m.Value {
			return ref(Path(r.Path))
		}

	case KindQueryEq:
		opt, present := r.Query[m.Key]
		if !present {
			return ref(QueryMiss(m.Key))
		}
		actual, hasValue := opt.Get()
		if !hasValue {
			return ref(QueryExists(m.Key))
		}
		if actual != m.Value {
			return ref(QueryEq(m.Key, actual))
		}

	case KindQueryExists:
		if _, present := r.Query[m.Key]; !present {
			return ref(QueryMiss(m.Key))
		}

	case KindQueryMiss:
		if _, present := r.Query[m.Key]; present {
			return ref(QueryExists(m.Key))
		}

	case KindHeaderEq:
		actual, present := r.Headers[m.Key]
		if !present {
			return ref(HeaderMiss(m.Key))
		}
		if actual != m.Value {
			return ref(HeaderEq(m.Key, actual))
		}

	case KindHeaderExists:
		if _, present := r.Headers[m.Key]; !present {
			return ref(HeaderMiss(m.Key))
		}

	case KindHeaderMiss:
		if _, present := r.Headers[m.Key]; present {
			return ref(HeaderExists(m.Key))
		}

	case KindFragmentEq:
		actual, present := r.Fragment.Get()
		if !present {
			return ref(FragmentMiss())
		}
		if actual != m.Value {
			return ref(FragmentEq(actual))
		}

	case KindFragmentMiss:
		if actual, present := r.Fragment.Get(); present {
			return ref(FragmentEq(actual))
		}

	case KindBodyEq:
		actual, present := r.Body.Get()
		if !present {
			return ref(BodyMiss())
		}
		if actual != m.Value {
			return ref(BodyEq(actual))
		}

	case KindBodyMiss:
		if actual, present := r.Body.Get(); present {
			return ref(BodyEq(actual))
		}
	}

	return nil
}

func ref(m Matcher) *Matcher {
	return &m
}

// String renders the rule as a short human-readable condition, used in CLI
// diagnostics ("expected X, got Y").
func (m Matcher) String() string {
	switch m.Kind {
	case KindMethod:
		return fmt.Sprintf("method is %q", m.Value)
	case KindPath:
		return fmt.Sprintf("path is %q", m.Value)
	case KindQueryEq:
		return fmt.Sprintf("query %q is %q", m.Key, m.Value)
	case KindQueryExists:
		return fmt.Sprintf("query %q exists", m.Key)
	case KindQueryMiss:
		return fmt.Sprintf("query %q absent", m.Key)
	case KindHeaderEq:
		return fmt.Sprintf("header %q is %q", m.Key, m.Value)
	case KindHeaderExists:
		return fmt.Sprintf("header %q exists", m.Key)
	case KindHeaderMiss:
		return fmt.Sprintf("header %q absent", m.Key)
	case KindFragmentEq:
		return fmt.Sprintf("fragment is %q", m.Value)
	case KindFragmentMiss:
		return "fragment absent"
	case KindBodyEq:
		return fmt.Sprintf("body is %q", m.Value)
	case KindBodyMiss:
		return "body absent"
	default:
		return string(m.Kind)
	}
}
