package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/plumline/billingd/pkg/billing"
	"github.com/plumline/billingd/pkg/httputil"
)

// CustomerHandlers handles customer-related HTTP requests, including the
// customer-plan subscription endpoints
type CustomerHandlers struct {
	billing billing.Service
}

// NewCustomerHandlers creates a new CustomerHandlers
func NewCustomerHandlers(service billing.Service) *CustomerHandlers {
	return &CustomerHandlers{billing: service}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/customers/", h.CreateCustomer).Methods("POST")
	router.HandleFunc("/customers/", h.ListCustomers).Methods("GET")
	router.HandleFunc("/customers/{id}", h.GetCustomer).Methods("GET")
	router.HandleFunc("/customers/{id}", h.UpdateCustomer).Methods("PATCH")
	router.HandleFunc("/customers/{id}", h.DeleteCustomer).Methods("DELETE")

	// Subscriptions
	router.HandleFunc("/customers/{id}/plans/{planId}", h.SubscribeCustomer).Methods("POST")
	router.HandleFunc("/customers/{id}/plans", h.ListCustomerPlans).Methods("GET")
}

// CreateCustomer handles POST /customers/
func (h *CustomerHandlers) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req billing.CreateCustomerRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	customer, err := h.billing.CreateCustomer(r.Context(), &req)
	if err != nil {
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteCreated(w, customer)
}

// ListCustomers handles GET /customers/. The listing is unfiltered and
// unpaginated; that is the contract to preserve.
func (h *CustomerHandlers) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.billing.ListCustomers(r.Context())
	if err != nil {
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, customers)
}

// GetCustomer handles GET /customers/{id}
func (h *CustomerHandlers) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	customer, err := h.billing.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			httputil.WriteNotFoundError(w, "Customer does not exist")
			return
		}
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, customer)
}

// UpdateCustomer handles PATCH /customers/{id}. Only fields present in the
// payload are applied; absent fields keep their stored values.
func (h *CustomerHandlers) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	var req billing.UpdateCustomerRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	customer, err := h.billing.UpdateCustomer(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			httputil.WriteNotFoundError(w, "Customer does not exist")
			return
		}
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, customer)
}

// DeleteCustomer handles DELETE /customers/{id}
func (h *CustomerHandlers) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	if err := h.billing.DeleteCustomer(r.Context(), id); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			httputil.WriteNotFoundError(w, "Customer does not exist")
			return
		}
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]string{"detail": "Customer deleted successfully"})
}

// SubscribeCustomer handles POST /customers/{id}/plans/{planId}. The status
// is a required query parameter, not a body field; only the mutable
// attribute is parameterized.
func (h *CustomerHandlers) SubscribeCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}
	planID, ok := httputil.ParsePathInt64OrError(w, r, "planId")
	if !ok {
		return
	}

	raw := httputil.ParseQueryString(r, "plan_status", "")
	if raw == "" {
		httputil.WriteBadRequest(w, "plan_status is required")
		return
	}
	status, err := billing.ParsePlanStatus(raw)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	link, err := h.billing.SubscribeCustomer(r.Context(), customerID, planID, status)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			// Deliberately generic: callers cannot tell which reference was missing
			httputil.WriteNotFoundError(w, "Customer or Plan not found")
			return
		}
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, link)
}

// ListCustomerPlans handles GET /customers/{id}/plans. The status filter is
// mandatory; there is no all-statuses mode. The parameter is named
// plant_status, kept verbatim for wire compatibility.
func (h *CustomerHandlers) ListCustomerPlans(w http.ResponseWriter, r *http.Request) {
	customerID, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	raw := httputil.ParseQueryString(r, "plant_status", "")
	if raw == "" {
		httputil.WriteBadRequest(w, "plant_status is required")
		return
	}
	status, err := billing.ParsePlanStatus(raw)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	links, err := h.billing.ListCustomerPlans(r.Context(), customerID, status)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			httputil.WriteNotFoundError(w, "Customer not found")
			return
		}
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, links)
}
