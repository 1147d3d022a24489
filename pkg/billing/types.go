package billing

import (
	"fmt"
	"time"
)

// PlanStatus represents the status of a customer-plan subscription
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusInactive  PlanStatus = "inactive"
	PlanStatusCancelled PlanStatus = "cancelled"
)

// Valid reports whether the status is one of the enumerated members
func (s PlanStatus) Valid() bool {
	switch s {
	case PlanStatusActive, PlanStatusInactive, PlanStatusCancelled:
		return true
	}
	return false
}

// ParsePlanStatus parses a status string, rejecting anything outside the enum
func ParsePlanStatus(s string) (PlanStatus, error) {
	status := PlanStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid plan status: %q", s)
	}
	return status, nil
}

// Customer represents a billing customer
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Description string    `json:"description,omitempty"`
	Age         int       `json:"age,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Plan represents a purchasable plan
type Plan struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomerPlan represents one subscription event linking a customer to a plan.
// Multiple rows for the same customer/plan pair are allowed.
type CustomerPlan struct {
	ID         int64      `json:"id"`
	CustomerID int64      `json:"customer_id"`
	PlanID     int64      `json:"plan_id"`
	Status     PlanStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Transaction represents a charge against a customer
type Transaction struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id"`
	AmountCents int64     `json:"amount_cents"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Invoice represents a billing invoice. Its customer and transaction
// references are not validated against the store.
type Invoice struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customer_id"`
	TransactionID int64     `json:"transaction_id"`
	TotalCents    int64     `json:"total_cents"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCustomerRequest represents request to create a customer
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
	Age         int    `json:"age,omitempty"`
}

// Validate checks the required-shape constraints before any store access
func (r *CreateCustomerRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// UpdateCustomerRequest represents a partial customer update. Pointer fields
// distinguish "omitted" from "explicitly set to the zero value"; only fields
// present in the request payload are applied.
type UpdateCustomerRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Description *string `json:"description,omitempty"`
	Age         *int    `json:"age,omitempty"`
}

// CreatePlanRequest represents request to create a plan
type CreatePlanRequest struct {
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Description string `json:"description,omitempty"`
}

// Validate checks the required-shape constraints
func (r *CreatePlanRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.PriceCents < 0 {
		return fmt.Errorf("price_cents must not be negative")
	}
	return nil
}

// CreateTransactionRequest represents request to create a transaction
type CreateTransactionRequest struct {
	CustomerID  int64  `json:"customer_id"`
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description,omitempty"`
}

// Validate checks the required-shape constraints
func (r *CreateTransactionRequest) Validate() error {
	if r.CustomerID <= 0 {
		return fmt.Errorf("customer_id is required")
	}
	return nil
}

// CreateInvoiceRequest represents request to create an invoice
type CreateInvoiceRequest struct {
	CustomerID    int64  `json:"customer_id"`
	TransactionID int64  `json:"transaction_id"`
	TotalCents    int64  `json:"total_cents"`
	Description   string `json:"description,omitempty"`
}

// Validate checks the required-shape constraints
func (r *CreateInvoiceRequest) Validate() error {
	if r.TotalCents < 0 {
		return fmt.Errorf("total_cents must not be negative")
	}
	return nil
}
