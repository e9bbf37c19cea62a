package request

import (
	"fmt"
	"sort"
	"strings"
)

// Optional is a string value that may be absent. The zero value is absent.
// It exists so that a query key mapped to no value ("?flag") is not confused
// with a key mapped to an empty value or with a missing key.
type Optional struct {
	value string
	set   bool
}

// Some returns an Optional holding s.
func Some(s string) Optional {
	return Optional{value: s, set: true}
}

// None returns an absent Optional.
func None() Optional {
	return Optional{}
}

// Get returns the held value and whether one is set.
func (o Optional) Get() (string, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional) IsSet() bool {
	return o.set
}

// Request is a single decoded request. Method is stored verbatim (matching
// normalizes case where it applies), Path always begins with "/", and query
// keys are unique. Build one with Default, Parse, FromHTTP, or the With*
// methods; treat it as read-only afterwards.
type Request struct {
	Method   string
	Path     string
	Query    map[string]Optional
	Fragment Optional
	Headers  map[string]string
	Body     Optional
}

// Default returns the baseline request: GET /, no query, headers, fragment,
// or body.
func Default() Request {
	return Request{
		Method:  "GET",
		Path:    "/",
		Query:   map[string]Optional{},
		Headers: map[string]string{},
	}
}

// normalizePath guarantees the leading slash invariant.
func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

// clone returns a copy with its own query and header maps, so With* methods
// never alias the receiver's state.
func (r Request) clone() Request {
	out := r
	out.Query = make(map[string]Optional, len(r.Query))
	for k, v := range r.Query {
		out.Query[k] = v
	}
	out.Headers = make(map[string]string, len(r.Headers))
	for k, v := range r.Headers {
		out.Headers[k] = v
	}
	return out
}

// WithMethod returns a copy with the method replaced.
func (r Request) WithMethod(method string) Request {
	out := r.clone()
	out.Method = method
	return out
}

// WithPath returns a copy with the path replaced. The path is normalized to
// begin with "/".
func (r Request) WithPath(path string) Request {
	out := r.clone()
	out.Path = normalizePath(path)
	return out
}

// WithQuery returns a copy with the query key set to the given value.
func (r Request) WithQuery(key, value string) Request {
	out := r.clone()
	out.Query[key] = Some(value)
	return out
}

// WithQueryFlag returns a copy with the query key present but holding no
// value, as produced by a bare "?key" with no "=value".
func (r Request) WithQueryFlag(key string) Request {
	out := r.clone()
	out.Query[key] = None()
	return out
}

// WithFragment returns a copy with the fragment set.
func (r Request) WithFragment(fragment string) Request {
	out := r.clone()
	out.Fragment = Some(fragment)
	return out
}

// WithHeader returns a copy with the header set. Header keys are not case
// folded; matching treats them verbatim.
func (r Request) WithHeader(key, value string) Request {
	out := r.clone()
	out.Headers[key] = value
	return out
}

// WithBody returns a copy with the body set.
func (r Request) WithBody(body string) Request {
	out := r.clone()
	out.Body = Some(body)
	return out
}

// SetMethod replaces the method in place.
func (r *Request) SetMethod(method string) {
	r.Method = method
}

// SetPath replaces the path in place, normalized to begin with "/".
func (r *Request) SetPath(path string) {
	r.Path = normalizePath(path)
}

// SetQuery sets the query key to the given value in place.
func (r *Request) SetQuery(key, value string) {
	if r.Query == nil {
		r.Query = map[string]Optional{}
	}
	r.Query[key] = Some(value)
}

// SetQueryFlag marks the query key present with no value in place.
func (r *Request) SetQueryFlag(key string) {
	if r.Query == nil {
		r.Query = map[string]Optional{}
	}
	r.Query[key] = None()
}

// SetFragment sets the fragment in place.
func (r *Request) SetFragment(fragment string) {
	r.Fragment = Some(fragment)
}

// SetHeader sets the header in place.
func (r *Request) SetHeader(key, value string) {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}
	r.Headers[key] = value
}

// SetBody sets the body in place.
func (r *Request) SetBody(body string) {
	r.Body = Some(body)
}

// String renders the request on a single line:
//
//	[GET /path?key=value&flag#fragment | with headers {"k" = "v"} | with body "..."]
//
// Query pairs and headers are listed in sorted key order so the output is
// stable across runs and safe to snapshot.
func (r Request) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(r.Method)
	b.WriteByte(' ')
	b.WriteString(r.Path)

	if len(r.Query) > 0 {
		keys := make([]string, 0, len(r.Query))
		for k := range r.Query {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('?')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(k)
			if v, ok := r.Query[k].Get(); ok {
				b.WriteByte('=')
				b.WriteString(v)
			}
		}
	}

	if f, ok := r.Fragment.Get(); ok {
		b.WriteByte('#')
		b.WriteString(f)
	}

	if len(r.Headers) > 0 {
		keys := make([]string, 0, len(r.Headers))
		for k := range r.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" | with headers {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q = %q", k, r.Headers[k])
		}
		b.WriteByte('}')
	}

	if body, ok := r.Body.Get(); ok {
		fmt.Fprintf(&b, " | with body %q", body)
	}

	b.WriteByte(']')
	return b.String()
}
