// Package api provides the HTTP surface of the billing service.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/plumline/billingd/pkg/billing"
	"github.com/plumline/billingd/pkg/httputil"
	"github.com/plumline/billingd/pkg/middleware"
	"github.com/plumline/billingd/pkg/observability"
)

// Server represents our API server
type Server struct {
	billing billing.Service
	router  *mux.Router
	log     *logrus.Logger
	health  *observability.HealthChecker
	metrics *observability.Metrics
}

// NewServer creates a new API server. The credential checker gates the root
// endpoint; health and metrics are optional and their routes are skipped
// when nil.
func NewServer(service billing.Service, checker middleware.CredentialChecker, log *logrus.Logger, health *observability.HealthChecker, metrics *observability.Metrics) *Server {
	if log == nil {
		log = logrus.New()
	}

	s := &Server{
		billing: service,
		router:  mux.NewRouter(),
		log:     log,
		health:  health,
		metrics: metrics,
	}

	s.router.Use(httputil.RecoveryMiddleware(log))
	s.router.Use(httputil.LoggingMiddleware(log))
	if metrics != nil {
		s.router.Use(observability.HTTPMetricsMiddleware(metrics))
	}

	s.setupRoutes(checker)
	return s
}

// setupRoutes configures all the API routes
func (s *Server) setupRoutes(checker middleware.CredentialChecker) {
	// Root endpoint, gated behind the credential-presentation check
	gate := middleware.NewBasicAuthMiddleware(checker)
	s.router.Handle("/", gate.Handler(http.HandlerFunc(s.root))).Methods("GET")

	s.router.HandleFunc("/time", s.currentTime).Methods("GET")

	// Resource handlers
	NewCustomerHandlers(s.billing).RegisterRoutes(s.router)
	NewPlanHandlers(s.billing).RegisterRoutes(s.router)
	NewTransactionHandlers(s.billing).RegisterRoutes(s.router)

	// Invoice endpoint, defined on the server rather than a handler group
	s.router.HandleFunc("/invoices/", s.createInvoice).Methods("POST")

	if s.health != nil {
		s.router.HandleFunc("/healthz", s.health.Liveness).Methods("GET")
		s.router.HandleFunc("/readyz", s.health.Readiness).Methods("GET")
	}
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods("GET")
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// root handles GET /
func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, map[string]string{"message": "Hello World"})
}

// currentTime handles GET /time
func (s *Server) currentTime(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, map[string]string{
		"current_time": time.Now().Format("2006-01-02 15:04:05"),
	})
}

// createInvoice handles POST /invoices/. Invoice references are not checked
// against customers or transactions.
func (s *Server) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req billing.CreateInvoiceRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	invoice, err := s.billing.CreateInvoice(r.Context(), &req)
	if err != nil {
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, invoice)
}
