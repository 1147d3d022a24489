// Package middleware provides HTTP middleware for the billing API.
//
// # Basic Auth
//
// BasicAuthMiddleware requires the caller to present credentials in a
// standard Authorization: Basic header. Whether the pair is accepted is
// delegated to a CredentialChecker, so verification can be swapped in
// without touching the handler chain. The default AcceptAnyChecker accepts
// every syntactically valid pair without consulting any store.
//
//	gate := middleware.NewBasicAuthMiddleware(middleware.AcceptAnyChecker{})
//	router.Handle("/", gate.Handler(rootHandler))
//
// # Related Packages
//
//   - pkg/httputil: Logging and recovery middleware
package middleware
