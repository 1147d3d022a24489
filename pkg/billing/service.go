package billing

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Service defines the interface for billing operations
type Service interface {
	// Customer management
	CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req *UpdateCustomerRequest) (*Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error

	// Subscription management
	SubscribeCustomer(ctx context.Context, customerID, planID int64, status PlanStatus) (*CustomerPlan, error)
	ListCustomerPlans(ctx context.Context, customerID int64, status PlanStatus) ([]*CustomerPlan, error)

	// Plan management
	CreatePlan(ctx context.Context, req *CreatePlanRequest) (*Plan, error)

	// Transaction management
	CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error)
	ListTransactions(ctx context.Context, skip, limit int) ([]*Transaction, error)

	// Invoice management
	CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error)
}

// Dialect selects the SQL flavor used by SQLService
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// SQLService implements the Service interface over database/sql. It works
// against SQLite (the default single-file store) and PostgreSQL; queries are
// written with ? placeholders and rebound for postgres.
type SQLService struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLService creates a new SQLService
func NewSQLService(db *sql.DB, dialect Dialect) *SQLService {
	return &SQLService{db: db, dialect: dialect}
}

// rebind rewrites ? placeholders to $N for the postgres dialect
func (s *SQLService) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CreateCustomer persists a new customer and returns it with its assigned id
func (s *SQLService) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	customer := &Customer{
		Name:        req.Name,
		Email:       req.Email,
		Description: req.Description,
		Age:         req.Age,
		CreatedAt:   time.Now().UTC(),
	}

	query := s.rebind(`
		INSERT INTO customers (name, email, description, age, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		customer.Name, customer.Email, customer.Description, customer.Age, customer.CreatedAt).
		Scan(&customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// ListCustomers returns every customer row, unfiltered and unpaginated
func (s *SQLService) ListCustomers(ctx context.Context) ([]*Customer, error) {
	query := `
		SELECT id, name, email, description, age, created_at
		FROM customers
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*Customer, 0)
	for rows.Next() {
		c := &Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Description, &c.Age, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// GetCustomer retrieves a customer by id
func (s *SQLService) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	query := s.rebind(`
		SELECT id, name, email, description, age, created_at
		FROM customers
		WHERE id = ?
	`)
	c := &Customer{}
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Description, &c.Age, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}

// UpdateCustomer applies only the fields present in the request onto the
// stored customer and returns the updated entity
func (s *SQLService) UpdateCustomer(ctx context.Context, id int64, req *UpdateCustomerRequest) (*Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Description != nil {
		customer.Description = *req.Description
	}
	if req.Age != nil {
		customer.Age = *req.Age
	}

	query := s.rebind(`
		UPDATE customers
		SET name = ?, email = ?, description = ?, age = ?
		WHERE id = ?
	`)
	if _, err := s.db.ExecContext(ctx, query,
		customer.Name, customer.Email, customer.Description, customer.Age, id); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// DeleteCustomer removes a customer by id. Dependent subscription and
// transaction rows are left to the store's default referential behavior.
func (s *SQLService) DeleteCustomer(ctx context.Context, id int64) error {
	query := s.rebind(`DELETE FROM customers WHERE id = ?`)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}

	return nil
}

// SubscribeCustomer creates a new customer-plan association with the given
// status. The returned ErrNotFound does not distinguish whether the customer
// or the plan was missing.
func (s *SQLService) SubscribeCustomer(ctx context.Context, customerID, planID int64, status PlanStatus) (*CustomerPlan, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid plan status: %q", status)
	}

	customerExists, err := s.exists(ctx, "customers", customerID)
	if err != nil {
		return nil, err
	}
	planExists, err := s.exists(ctx, "plans", planID)
	if err != nil {
		return nil, err
	}
	if !customerExists || !planExists {
		return nil, fmt.Errorf("customer or plan: %w", ErrNotFound)
	}

	link := &CustomerPlan{
		CustomerID: customerID,
		PlanID:     planID,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	query := s.rebind(`
		INSERT INTO customer_plans (customer_id, plan_id, status, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err = s.db.QueryRowContext(ctx, query,
		link.CustomerID, link.PlanID, link.Status, link.CreatedAt).
		Scan(&link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return link, nil
}

// ListCustomerPlans returns the customer's subscription rows matching the
// status exactly. The filter is mandatory; there is no all-statuses mode.
func (s *SQLService) ListCustomerPlans(ctx context.Context, customerID int64, status PlanStatus) ([]*CustomerPlan, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid plan status: %q", status)
	}

	customerExists, err := s.exists(ctx, "customers", customerID)
	if err != nil {
		return nil, err
	}
	if !customerExists {
		return nil, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
	}

	query := s.rebind(`
		SELECT id, customer_id, plan_id, status, created_at
		FROM customer_plans
		WHERE customer_id = ? AND status = ?
	`)
	rows, err := s.db.QueryContext(ctx, query, customerID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	links := make([]*CustomerPlan, 0)
	for rows.Next() {
		link := &CustomerPlan{}
		if err := rows.Scan(&link.ID, &link.CustomerID, &link.PlanID, &link.Status, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return links, nil
}

// CreatePlan persists a new plan and returns it with its assigned id
func (s *SQLService) CreatePlan(ctx context.Context, req *CreatePlanRequest) (*Plan, error) {
	plan := &Plan{
		Name:        req.Name,
		PriceCents:  req.PriceCents,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	query := s.rebind(`
		INSERT INTO plans (name, price_cents, description, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		plan.Name, plan.PriceCents, plan.Description, plan.CreatedAt).
		Scan(&plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	return plan, nil
}

// CreateTransaction persists a new transaction after verifying the referenced
// customer exists
func (s *SQLService) CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error) {
	customerExists, err := s.exists(ctx, "customers", req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customerExists {
		return nil, fmt.Errorf("customer %d: %w", req.CustomerID, ErrNotFound)
	}

	txn := &Transaction{
		CustomerID:  req.CustomerID,
		AmountCents: req.AmountCents,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	query := s.rebind(`
		INSERT INTO transactions (customer_id, amount_cents, description, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err = s.db.QueryRowContext(ctx, query,
		txn.CustomerID, txn.AmountCents, txn.Description, txn.CreatedAt).
		Scan(&txn.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return txn, nil
}

// ListTransactions returns a window of transactions in store order, skipping
// skip rows and returning at most limit
func (s *SQLService) ListTransactions(ctx context.Context, skip, limit int) ([]*Transaction, error) {
	query := s.rebind(`
		SELECT id, customer_id, amount_cents, description, created_at
		FROM transactions
		LIMIT ? OFFSET ?
	`)
	rows, err := s.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]*Transaction, 0)
	for rows.Next() {
		txn := &Transaction{}
		if err := rows.Scan(&txn.ID, &txn.CustomerID, &txn.AmountCents, &txn.Description, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, nil
}

// CreateInvoice persists a new invoice. Its customer and transaction
// references are intentionally not checked against the store.
func (s *SQLService) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	invoice := &Invoice{
		CustomerID:    req.CustomerID,
		TransactionID: req.TransactionID,
		TotalCents:    req.TotalCents,
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
	}

	query := s.rebind(`
		INSERT INTO invoices (customer_id, transaction_id, total_cents, description, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		invoice.CustomerID, invoice.TransactionID, invoice.TotalCents, invoice.Description, invoice.CreatedAt).
		Scan(&invoice.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return invoice, nil
}

// exists reports whether a row with the given id exists in the table. The
// table name is always a compile-time constant from this package.
func (s *SQLService) exists(ctx context.Context, table string, id int64) (bool, error) {
	query := s.rebind(fmt.Sprintf(`SELECT 1 FROM %s WHERE id = ?`, table))
	var one int
	err := s.db.QueryRowContext(ctx, query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return true, nil
}
