package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/supermarket/internal/models"
)

const supermarketColumns = "id, name, address, phone_number, work_hours"

// GetSupermarket retrieves a supermarket by ID, including its item IDs.
func (s *Store) GetSupermarket(ctx context.Context, id string) (*models.Supermarket, error) {
	sm := &models.Supermarket{}
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT "+supermarketColumns+" FROM supermarkets WHERE id = ?"),
		id,
	).Scan(&sm.ID, &sm.Name, &sm.Address, &sm.PhoneNumber, &sm.WorkHours)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Supermarket not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get supermarket: %w", err)
	}

	if sm.ItemIDs, err = s.supermarketItemIDs(ctx, sm.ID); err != nil {
		return nil, err
	}
	return sm, nil
}

// FindSupermarketByName retrieves the first supermarket with the exact name.
func (s *Store) FindSupermarketByName(ctx context.Context, name string) (*models.Supermarket, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT id FROM supermarkets WHERE name = ? ORDER BY id LIMIT 1"),
		name,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find supermarket by name: %w", err)
	}
	return s.GetSupermarket(ctx, id)
}

// PutSupermarket upserts the supermarket row and replaces its association rows
// in a single transaction.
func (s *Store) PutSupermarket(ctx context.Context, sm *models.Supermarket) error {
	if sm.ID == "" {
		sm.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.rebind(`
		INSERT INTO supermarkets (`+supermarketColumns+`) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			address = excluded.address,
			phone_number = excluded.phone_number,
			work_hours = excluded.work_hours`),
		sm.ID, sm.Name, sm.Address, sm.PhoneNumber, sm.WorkHours,
	)
	if err != nil {
		return fmt.Errorf("failed to put supermarket: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		s.rebind("DELETE FROM supermarket_items WHERE supermarket_id = ?"),
		sm.ID,
	); err != nil {
		return fmt.Errorf("failed to clear supermarket items: %w", err)
	}

	for _, itemID := range sm.ItemIDs {
		if _, err := tx.ExecContext(ctx,
			s.rebind("INSERT INTO supermarket_items (supermarket_id, item_id) VALUES (?, ?) ON CONFLICT DO NOTHING"),
			sm.ID, itemID,
		); err != nil {
			return fmt.Errorf("failed to insert supermarket item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteSupermarket removes a supermarket and its association rows.
func (s *Store) DeleteSupermarket(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "supermarkets", id)
}

// SupermarketExists reports whether a supermarket with the ID exists.
func (s *Store) SupermarketExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "supermarkets", id)
}

// ListSupermarkets returns all supermarkets ordered by name.
func (s *Store) ListSupermarkets(ctx context.Context) ([]*models.Supermarket, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+supermarketColumns+" FROM supermarkets ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list supermarkets: %w", err)
	}
	defer rows.Close()

	supermarkets := []*models.Supermarket{}
	for rows.Next() {
		sm := &models.Supermarket{}
		if err := rows.Scan(&sm.ID, &sm.Name, &sm.Address, &sm.PhoneNumber, &sm.WorkHours); err != nil {
			return nil, fmt.Errorf("failed to scan supermarket: %w", err)
		}
		supermarkets = append(supermarkets, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate supermarkets: %w", err)
	}
	rows.Close()

	// Load associations once the row cursor is released.
	for _, sm := range supermarkets {
		if sm.ItemIDs, err = s.supermarketItemIDs(ctx, sm.ID); err != nil {
			return nil, err
		}
	}
	return supermarkets, nil
}

func (s *Store) supermarketItemIDs(ctx context.Context, supermarketID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT item_id FROM supermarket_items WHERE supermarket_id = ? ORDER BY item_id"),
		supermarketID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get supermarket items: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan supermarket item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate supermarket items: %w", err)
	}
	return ids, nil
}
