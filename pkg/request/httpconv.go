package request

import "net/http"

// FromHTTP converts a live *http.Request into a Request. The body is passed
// separately because the caller has usually already drained r.Body; an empty
// slice leaves the body absent. The query is re-parsed from the raw request
// URI rather than through url.Values so that a bare "?flag" key keeps its
// "present, no value" state. Only the first value of each header is kept,
// under the canonical name net/http stores it as. Fragments never survive
// the wire, so the result has none.
func FromHTTP(r *http.Request, body []byte) Request {
	req := Parse(r.URL.RequestURI())
	req.Method = r.Method
	for name := range r.Header {
		req.Headers[name] = r.Header.Get(name)
	}
	if len(body) > 0 {
		req.Body = Some(string(body))
	}
	return req
}
