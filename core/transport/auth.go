package transport

import "net/http"

// Authenticator applies an API key to an outgoing request.
type Authenticator interface {
	Apply(req *http.Request, apiKey string)
}

// NoAuth leaves requests untouched.
type NoAuth struct{}

// Apply implements Authenticator.
func (NoAuth) Apply(_ *http.Request, _ string) {}

// HeaderAuth sends the key in a request header.
type HeaderAuth struct {
	Header string
}

// Apply implements Authenticator.
func (a HeaderAuth) Apply(req *http.Request, apiKey string) {
	req.Header.Set(a.Header, apiKey)
}

// QueryAuth sends the key as a query parameter.
type QueryAuth struct {
	Param string
}

// Apply implements Authenticator.
func (a QueryAuth) Apply(req *http.Request, apiKey string) {
	if req.URL == nil {
		return
	}
	query := req.URL.Query()
	query.Set(a.Param, apiKey)
	req.URL.RawQuery = query.Encode()
}
