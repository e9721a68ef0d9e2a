// Package postgres opens a Postgres-backed storage.Store through the pgx
// database/sql driver and applies the schema on startup.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"github.com/mmynk/supermarket/internal/storage/sqlstore"
)

const driverName = "pgx"

// schema mirrors the SQLite layout. BIGSERIAL sequences never hand out a
// purchase ID twice.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    price NUMERIC(10, 2) NOT NULL,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS supermarkets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    work_hours TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS supermarket_items (
    supermarket_id TEXT NOT NULL REFERENCES supermarkets(id) ON DELETE CASCADE,
    item_id TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    PRIMARY KEY (supermarket_id, item_id)
);

CREATE TABLE IF NOT EXISTS purchases (
    id BIGSERIAL PRIMARY KEY,
    supermarket_id TEXT NOT NULL,
    payment_type TEXT NOT NULL,
    cash_amount NUMERIC(12, 2),
    price NUMERIC(12, 2) NOT NULL,
    change_amount NUMERIC(12, 2) NOT NULL,
    time_of_payment TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS purchase_items (
    purchase_id BIGINT NOT NULL REFERENCES purchases(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    item_id TEXT NOT NULL,
    PRIMARY KEY (purchase_id, position)
);

CREATE INDEX IF NOT EXISTS idx_supermarkets_name ON supermarkets(name);
CREATE INDEX IF NOT EXISTS idx_supermarket_items_item_id ON supermarket_items(item_id)
`

var sqlOpen = sql.Open

// New connects to the database at dsn, applies the schema and returns a store.
func New(ctx context.Context, dsn string) (*sqlstore.Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("open postgres: empty DSN")
	}
	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return Open(ctx, db)
}

// Open applies the schema to an already connected database.
func Open(ctx context.Context, db *sql.DB) (*sqlstore.Store, error) {
	if err := applySchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return sqlstore.New(db, sqlstore.Postgres), nil
}

func applySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute ddl: %w", err)
		}
	}
	return nil
}
