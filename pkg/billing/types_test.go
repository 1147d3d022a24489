package billing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanStatusValid(t *testing.T) {
	tests := []struct {
		status PlanStatus
		valid  bool
	}{
		{PlanStatusActive, true},
		{PlanStatusInactive, true},
		{PlanStatusCancelled, true},
		{PlanStatus(""), false},
		{PlanStatus("paused"), false},
		{PlanStatus("ACTIVE"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
		})
	}
}

func TestParsePlanStatus(t *testing.T) {
	t.Run("valid member", func(t *testing.T) {
		status, err := ParsePlanStatus("cancelled")
		require.NoError(t, err)
		assert.Equal(t, PlanStatusCancelled, status)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := ParsePlanStatus("suspended")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid plan status")
	})
}

func TestUpdateCustomerRequestDistinguishesOmittedFromSet(t *testing.T) {
	t.Run("omitted fields stay nil", func(t *testing.T) {
		var req UpdateCustomerRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name":"X"}`), &req))

		require.NotNil(t, req.Name)
		assert.Equal(t, "X", *req.Name)
		assert.Nil(t, req.Email)
		assert.Nil(t, req.Description)
		assert.Nil(t, req.Age)
	})

	t.Run("explicit empty value is present", func(t *testing.T) {
		var req UpdateCustomerRequest
		require.NoError(t, json.Unmarshal([]byte(`{"description":"","age":0}`), &req))

		require.NotNil(t, req.Description)
		assert.Equal(t, "", *req.Description)
		require.NotNil(t, req.Age)
		assert.Equal(t, 0, *req.Age)
		assert.Nil(t, req.Name)
	})
}

func TestCreateRequestValidation(t *testing.T) {
	t.Run("customer requires name and email", func(t *testing.T) {
		assert.Error(t, (&CreateCustomerRequest{Email: "a@b.c"}).Validate())
		assert.Error(t, (&CreateCustomerRequest{Name: "a"}).Validate())
		assert.NoError(t, (&CreateCustomerRequest{Name: "a", Email: "a@b.c"}).Validate())
	})

	t.Run("plan requires name and non-negative price", func(t *testing.T) {
		assert.Error(t, (&CreatePlanRequest{PriceCents: 100}).Validate())
		assert.Error(t, (&CreatePlanRequest{Name: "basic", PriceCents: -1}).Validate())
		assert.NoError(t, (&CreatePlanRequest{Name: "basic", PriceCents: 0}).Validate())
	})

	t.Run("transaction requires customer reference", func(t *testing.T) {
		assert.Error(t, (&CreateTransactionRequest{AmountCents: 100}).Validate())
		assert.NoError(t, (&CreateTransactionRequest{CustomerID: 1}).Validate())
	})

	t.Run("invoice rejects negative total", func(t *testing.T) {
		assert.Error(t, (&CreateInvoiceRequest{TotalCents: -5}).Validate())
		assert.NoError(t, (&CreateInvoiceRequest{}).Validate())
	})
}
