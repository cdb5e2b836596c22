package github

import "net/http"

const acceptHeader = "application/vnd.github.v3+json"

// authTransport injects the token Authorization header and the v3 Accept
// header on every outgoing request. It sits below the cache and rate-limit
// transports so cached revalidations are authenticated too.
type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone before mutating; RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "token "+t.token)
	clone.Header.Set("Accept", acceptHeader)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
