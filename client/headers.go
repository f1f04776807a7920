package client

import "net/http"

// Headers is a case-insensitive header set. Names are stored in canonical
// form, so "content-type" and "Content-Type" address the same entry.
type Headers http.Header

// NewHeaders builds a header set from a plain map.
func NewHeaders(kv map[string]string) Headers {
	h := make(Headers, len(kv))
	for k, v := range kv {
		h.Set(k, v)
	}
	return h
}

func (h Headers) Set(name, value string) { http.Header(h).Set(name, value) }

func (h Headers) Get(name string) string { return http.Header(h).Get(name) }

func (h Headers) Del(name string) { http.Header(h).Del(name) }

func (h Headers) Has(name string) bool {
	_, ok := h[http.CanonicalHeaderKey(name)]
	return ok
}

// Copy returns an independent set; mutating it never touches h.
func (h Headers) Copy() Headers {
	if h == nil {
		return Headers{}
	}
	return Headers(http.Header(h).Clone())
}

// Update merges other into h. Names present in other replace the existing
// values, everything else is left alone. It returns h for chaining.
func (h Headers) Update(other Headers) Headers {
	for name, values := range other {
		key := http.CanonicalHeaderKey(name)
		h[key] = append([]string(nil), values...)
	}
	return h
}
