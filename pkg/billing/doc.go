// Package billing provides the core billing domain: customers, plans,
// transactions, invoices, and customer-plan subscriptions.
//
// # Overview
//
// This package defines the persisted entity types, the request shapes used
// for validation, and a SQL-backed Service implementation. All entity ids
// are assigned by the store on insert; callers never supply them.
//
// # Subscriptions
//
// A customer subscribes to a plan by creating a CustomerPlan row carrying a
// status (active, inactive, cancelled). Repeated subscriptions between the
// same customer and plan accumulate rows; there is no uniqueness constraint,
// so the table is a history of subscribe actions rather than an upserted
// link.
//
// # Usage Example
//
// Create a customer and subscribe it to a plan:
//
//	customer, err := service.CreateCustomer(ctx, &billing.CreateCustomerRequest{
//		Name:  "Acme Corp",
//		Email: "ops@acme.example",
//	})
//	sub, err := service.SubscribeCustomer(ctx, customer.ID, planID, billing.PlanStatusActive)
//
// Partial update (only fields present in the request are applied):
//
//	name := "Acme Corporation"
//	customer, err = service.UpdateCustomer(ctx, customer.ID, &billing.UpdateCustomerRequest{
//		Name: &name,
//	})
//
// # Related Packages
//
//   - pkg/api: HTTP handlers over this service
package billing
