package api

import (
	"context"
	"errors"

	"github.com/plumline/billingd/pkg/billing"
)

// mockBillingService implements billing.Service for testing
type mockBillingService struct {
	createCustomerFunc    func(ctx context.Context, req *billing.CreateCustomerRequest) (*billing.Customer, error)
	listCustomersFunc     func(ctx context.Context) ([]*billing.Customer, error)
	getCustomerFunc       func(ctx context.Context, id int64) (*billing.Customer, error)
	updateCustomerFunc    func(ctx context.Context, id int64, req *billing.UpdateCustomerRequest) (*billing.Customer, error)
	deleteCustomerFunc    func(ctx context.Context, id int64) error
	subscribeCustomerFunc func(ctx context.Context, customerID, planID int64, status billing.PlanStatus) (*billing.CustomerPlan, error)
	listCustomerPlansFunc func(ctx context.Context, customerID int64, status billing.PlanStatus) ([]*billing.CustomerPlan, error)
	createPlanFunc        func(ctx context.Context, req *billing.CreatePlanRequest) (*billing.Plan, error)
	createTransactionFunc func(ctx context.Context, req *billing.CreateTransactionRequest) (*billing.Transaction, error)
	listTransactionsFunc  func(ctx context.Context, skip, limit int) ([]*billing.Transaction, error)
	createInvoiceFunc     func(ctx context.Context, req *billing.CreateInvoiceRequest) (*billing.Invoice, error)
}

func (m *mockBillingService) CreateCustomer(ctx context.Context, req *billing.CreateCustomerRequest) (*billing.Customer, error) {
	if m.createCustomerFunc != nil {
		return m.createCustomerFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) ListCustomers(ctx context.Context) ([]*billing.Customer, error) {
	if m.listCustomersFunc != nil {
		return m.listCustomersFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) GetCustomer(ctx context.Context, id int64) (*billing.Customer, error) {
	if m.getCustomerFunc != nil {
		return m.getCustomerFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) UpdateCustomer(ctx context.Context, id int64, req *billing.UpdateCustomerRequest) (*billing.Customer, error) {
	if m.updateCustomerFunc != nil {
		return m.updateCustomerFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) DeleteCustomer(ctx context.Context, id int64) error {
	if m.deleteCustomerFunc != nil {
		return m.deleteCustomerFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockBillingService) SubscribeCustomer(ctx context.Context, customerID, planID int64, status billing.PlanStatus) (*billing.CustomerPlan, error) {
	if m.subscribeCustomerFunc != nil {
		return m.subscribeCustomerFunc(ctx, customerID, planID, status)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) ListCustomerPlans(ctx context.Context, customerID int64, status billing.PlanStatus) ([]*billing.CustomerPlan, error) {
	if m.listCustomerPlansFunc != nil {
		return m.listCustomerPlansFunc(ctx, customerID, status)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) CreatePlan(ctx context.Context, req *billing.CreatePlanRequest) (*billing.Plan, error) {
	if m.createPlanFunc != nil {
		return m.createPlanFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) CreateTransaction(ctx context.Context, req *billing.CreateTransactionRequest) (*billing.Transaction, error) {
	if m.createTransactionFunc != nil {
		return m.createTransactionFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) ListTransactions(ctx context.Context, skip, limit int) ([]*billing.Transaction, error) {
	if m.listTransactionsFunc != nil {
		return m.listTransactionsFunc(ctx, skip, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBillingService) CreateInvoice(ctx context.Context, req *billing.CreateInvoiceRequest) (*billing.Invoice, error) {
	if m.createInvoiceFunc != nil {
		return m.createInvoiceFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}
