package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/plumline/billingd/pkg/billing"
	"github.com/plumline/billingd/pkg/httputil"
)

const (
	defaultTransactionSkip  = 0
	defaultTransactionLimit = 10
)

// TransactionHandlers handles transaction-related HTTP requests
type TransactionHandlers struct {
	billing billing.Service
}

// NewTransactionHandlers creates a new TransactionHandlers
func NewTransactionHandlers(service billing.Service) *TransactionHandlers {
	return &TransactionHandlers{billing: service}
}

// RegisterRoutes registers transaction routes
func (h *TransactionHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/transactions/", h.CreateTransaction).Methods("POST")
	router.HandleFunc("/transactions/", h.ListTransactions).Methods("GET")
}

// CreateTransaction handles POST /transactions/. The referenced customer
// must exist; nothing is persisted otherwise.
func (h *TransactionHandlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req billing.CreateTransactionRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	txn, err := h.billing.CreateTransaction(r.Context(), &req)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			httputil.WriteNotFoundError(w, "Customer doesn't exist")
			return
		}
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteCreated(w, txn)
}

// ListTransactions handles GET /transactions/?skip=&limit=. Rows come back
// in store order; callers must not assume insertion order is preserved.
func (h *TransactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	skip, err := httputil.ParseQueryInt(r, "skip", defaultTransactionSkip)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}
	limit, err := httputil.ParseQueryInt(r, "limit", defaultTransactionLimit)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}
	if skip < 0 {
		skip = defaultTransactionSkip
	}
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	txns, err := h.billing.ListTransactions(r.Context(), skip, limit)
	if err != nil {
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, txns)
}
