package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/plumline/billingd/pkg/billing"
	"github.com/plumline/billingd/pkg/httputil"
)

// PlanHandlers handles plan-related HTTP requests. Plans are create-only;
// the missing read/update/delete surface is intentional.
type PlanHandlers struct {
	billing billing.Service
}

// NewPlanHandlers creates a new PlanHandlers
func NewPlanHandlers(service billing.Service) *PlanHandlers {
	return &PlanHandlers{billing: service}
}

// RegisterRoutes registers plan routes
func (h *PlanHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/plans/", h.CreatePlan).Methods("POST")
}

// CreatePlan handles POST /plans/
func (h *PlanHandlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req billing.CreatePlanRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	plan, err := h.billing.CreatePlan(r.Context(), &req)
	if err != nil {
		httputil.WriteInternalError(w, err)
		return
	}

	httputil.WriteSuccess(w, plan)
}
