package billing

import "errors"

// ErrNotFound indicates the requested entity, or an entity referenced by the
// request, does not exist in the store. Callers can test for it with
// errors.Is; the wrapping message carries which lookup failed, except for
// subscriptions where the cause is deliberately not attributable.
var ErrNotFound = errors.New("not found")
