package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type denyAllChecker struct{}

func (denyAllChecker) Check(username, password string) bool { return false }

type recordingChecker struct {
	username string
	password string
}

func (c *recordingChecker) Check(username, password string) bool {
	c.username = username
	c.password = password
	return true
}

func TestBasicAuthMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header returns 401 with challenge", func(t *testing.T) {
		gate := NewBasicAuthMiddleware(AcceptAnyChecker{})

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		gate.Handler(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("WWW-Authenticate"), `Basic realm=`)
	})

	t.Run("any pair passes with AcceptAnyChecker", func(t *testing.T) {
		gate := NewBasicAuthMiddleware(AcceptAnyChecker{})

		req := httptest.NewRequest("GET", "/", nil)
		req.SetBasicAuth("whoever", "whatever")
		w := httptest.NewRecorder()

		gate.Handler(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejecting checker returns 401", func(t *testing.T) {
		gate := NewBasicAuthMiddleware(denyAllChecker{})

		req := httptest.NewRequest("GET", "/", nil)
		req.SetBasicAuth("whoever", "whatever")
		w := httptest.NewRecorder()

		gate.Handler(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("credentials reach the checker decoded", func(t *testing.T) {
		checker := &recordingChecker{}
		gate := NewBasicAuthMiddleware(checker)

		req := httptest.NewRequest("GET", "/", nil)
		req.SetBasicAuth("alice", "s3cret")
		w := httptest.NewRecorder()

		gate.Handler(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", checker.username)
		assert.Equal(t, "s3cret", checker.password)
	})
}
