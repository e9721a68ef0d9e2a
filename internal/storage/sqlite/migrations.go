package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Prices and amounts are stored as decimal strings so no precision is lost.
// AUTOINCREMENT keeps purchase IDs from being reused after deletion.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    price TEXT NOT NULL,
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
    supermarket_id TEXT NOT NULL,
    item_id TEXT NOT NULL,
    PRIMARY KEY (supermarket_id, item_id),
    FOREIGN KEY (supermarket_id) REFERENCES supermarkets(id) ON DELETE CASCADE,
    FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS purchases (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    supermarket_id TEXT NOT NULL,
    payment_type TEXT NOT NULL,
    cash_amount TEXT,
    price TEXT NOT NULL,
    change_amount TEXT NOT NULL,
    time_of_payment TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS purchase_items (
    purchase_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    item_id TEXT NOT NULL,
    PRIMARY KEY (purchase_id, position),
    FOREIGN KEY (purchase_id) REFERENCES purchases(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_supermarkets_name ON supermarkets(name);
CREATE INDEX IF NOT EXISTS idx_supermarket_items_item_id ON supermarket_items(item_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
