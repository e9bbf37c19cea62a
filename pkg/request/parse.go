package request

import "strings"

// Parse decodes a URI-like string into a Request. It is total: every input,
// including the empty string, yields a valid Request, defaulting any part
// that is missing. The accepted shape is
//
//	['/'] [path] ['?' pair ('&' pair)*] ['#' fragment]
//	pair := key ['=' value]
//
// A trailing "#" with nothing after it leaves the fragment absent, a pair
// without "=value" marks the key present with no value, and when a key
// repeats the last occurrence wins. The method is always the default "GET";
// use WithMethod or SetMethod to change it.
func Parse(text string) Request {
	r := Default()

	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "/")

	s, fragment := cutNonEmpty(s, "#")
	r.Fragment = fragment

	s, query := cutNonEmpty(s, "?")
	r.Path = normalizePath(s)

	if qs, ok := query.Get(); ok {
		for _, pair := range strings.Split(qs, "&") {
			key, value := cutNonEmpty(pair, "=")
			r.Query[key] = value
		}
	}

	return r
}

// cutNonEmpty splits s on the first occurrence of sep. The remainder is
// absent when sep is missing or when nothing follows it, which is what
// collapses a trailing "#" or "?" into "no fragment" / "no query".
func cutNonEmpty(s, sep string) (string, Optional) {
	head, tail, found := strings.Cut(s, sep)
	if !found || tail == "" {
		return head, None()
	}
	return head, Some(tail)
}
