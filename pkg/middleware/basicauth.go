package middleware

import (
	"net/http"

	"github.com/plumline/billingd/pkg/httputil"
)

// CredentialChecker decides whether a username/password pair grants access
type CredentialChecker interface {
	Check(username, password string) bool
}

// AcceptAnyChecker accepts every syntactically valid credential pair. It is
// the structurally-required, semantically-unchecked gate on the root
// endpoint; replace it with a real checker to enforce verification.
type AcceptAnyChecker struct{}

// Check always grants access
func (AcceptAnyChecker) Check(username, password string) bool {
	return true
}

// BasicAuthMiddleware gates handlers behind an HTTP Basic credential check
type BasicAuthMiddleware struct {
	checker CredentialChecker
}

// NewBasicAuthMiddleware creates a new BasicAuthMiddleware
func NewBasicAuthMiddleware(checker CredentialChecker) *BasicAuthMiddleware {
	return &BasicAuthMiddleware{checker: checker}
}

// Handler wraps an HTTP handler with the credential check
func (m *BasicAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="billingd"`)
			httputil.WriteUnauthorized(w, "missing or malformed authorization header")
			return
		}

		if !m.checker.Check(username, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="billingd"`)
			httputil.WriteUnauthorized(w, "invalid credentials")
			return
		}

		next.ServeHTTP(w, r)
	})
}
