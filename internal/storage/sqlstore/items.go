package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/supermarket/internal/models"
)

// GetItem retrieves an item by ID.
func (s *Store) GetItem(ctx context.Context, id string) (*models.Item, error) {
	item := &models.Item{}
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT id, name, price, type FROM items WHERE id = ?"),
		id,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Item not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// PutItem inserts or overwrites an item, generating its ID if needed.
func (s *Store) PutItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO items (id, name, price, type) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, price = excluded.price, type = excluded.type`),
		item.ID, item.Name, item.Price.String(), string(item.Type),
	)
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}
	return nil
}

// DeleteItem removes an item. Its supermarket associations go with it.
func (s *Store) DeleteItem(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "items", id)
}

// ItemExists reports whether an item with the ID exists.
func (s *Store) ItemExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "items", id)
}

// ListItems returns all items ordered by name.
func (s *Store) ListItems(ctx context.Context) ([]*models.Item, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, price, type FROM items ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Type); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}
