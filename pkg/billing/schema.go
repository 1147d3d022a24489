package billing

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the billing tables if they do not exist. It is
// idempotent and safe to run on every boot. Foreign keys carry no ON DELETE
// clause; delete behavior for dependent rows is the store's default.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if dialect == DialectPostgres {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS customers (
				id %s,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				age INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL
			)`, pk),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS plans (
				id %s,
				name TEXT NOT NULL,
				price_cents BIGINT NOT NULL DEFAULT 0,
				description TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL
			)`, pk),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS customer_plans (
				id %s,
				customer_id BIGINT NOT NULL REFERENCES customers(id),
				plan_id BIGINT NOT NULL REFERENCES plans(id),
				status TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL
			)`, pk),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS transactions (
				id %s,
				customer_id BIGINT NOT NULL REFERENCES customers(id),
				amount_cents BIGINT NOT NULL DEFAULT 0,
				description TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL
			)`, pk),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS invoices (
				id %s,
				customer_id BIGINT NOT NULL DEFAULT 0,
				transaction_id BIGINT NOT NULL DEFAULT 0,
				total_cents BIGINT NOT NULL DEFAULT 0,
				description TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL
			)`, pk),
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}
