package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/supermarket/internal/models"
)

const purchaseColumns = "id, supermarket_id, payment_type, cash_amount, price, change_amount, time_of_payment"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPurchase(row rowScanner) (*models.Purchase, error) {
	p := &models.Purchase{}
	var paidOn string
	if err := row.Scan(&p.ID, &p.SupermarketID, &p.PaymentType, &p.CashAmount, &p.Price, &p.ChangeAmount, &paidOn); err != nil {
		return nil, err
	}
	t, err := time.Parse(models.DateLayout, paidOn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse time of payment %q: %w", paidOn, err)
	}
	p.TimeOfPayment = t
	return p, nil
}

// GetPurchase retrieves a purchase by ID, including its item IDs in order.
func (s *Store) GetPurchase(ctx context.Context, id int64) (*models.Purchase, error) {
	p, err := scanPurchase(s.db.QueryRowContext(ctx,
		s.rebind("SELECT "+purchaseColumns+" FROM purchases WHERE id = ?"),
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Purchase not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	if p.ItemIDs, err = s.purchaseItemIDs(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// PutPurchase inserts a new purchase when p.ID is zero and overwrites the
// stored one otherwise. Item IDs are rewritten in order.
func (s *Store) PutPurchase(ctx context.Context, p *models.Purchase) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	paidOn := p.TimeOfPayment.Format(models.DateLayout)
	var cash any
	if p.CashAmount.Valid {
		cash = p.CashAmount.Decimal.String()
	}

	if p.ID == 0 {
		err = tx.QueryRowContext(ctx, s.rebind(`
			INSERT INTO purchases (supermarket_id, payment_type, cash_amount, price, change_amount, time_of_payment)
			VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
			p.SupermarketID, string(p.PaymentType), cash, p.Price.String(), p.ChangeAmount.String(), paidOn,
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("failed to insert purchase: %w", err)
		}
	} else {
		_, err = tx.ExecContext(ctx, s.rebind(`
			INSERT INTO purchases (`+purchaseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				supermarket_id = excluded.supermarket_id,
				payment_type = excluded.payment_type,
				cash_amount = excluded.cash_amount,
				price = excluded.price,
				change_amount = excluded.change_amount,
				time_of_payment = excluded.time_of_payment`),
			p.ID, p.SupermarketID, string(p.PaymentType), cash, p.Price.String(), p.ChangeAmount.String(), paidOn,
		)
		if err != nil {
			return fmt.Errorf("failed to put purchase: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			s.rebind("DELETE FROM purchase_items WHERE purchase_id = ?"),
			p.ID,
		); err != nil {
			return fmt.Errorf("failed to clear purchase items: %w", err)
		}
	}

	for i, itemID := range p.ItemIDs {
		if _, err := tx.ExecContext(ctx,
			s.rebind("INSERT INTO purchase_items (purchase_id, position, item_id) VALUES (?, ?, ?)"),
			p.ID, i, itemID,
		); err != nil {
			return fmt.Errorf("failed to insert purchase item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeletePurchase removes a purchase and its item rows.
func (s *Store) DeletePurchase(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "purchases", id)
}

// PurchaseExists reports whether a purchase with the ID exists.
func (s *Store) PurchaseExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "purchases", id)
}

// ListPurchases returns all purchases ordered by ID.
func (s *Store) ListPurchases(ctx context.Context) ([]*models.Purchase, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+purchaseColumns+" FROM purchases ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	purchases := []*models.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}
	rows.Close()

	for _, p := range purchases {
		if p.ItemIDs, err = s.purchaseItemIDs(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return purchases, nil
}

func (s *Store) purchaseItemIDs(ctx context.Context, purchaseID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT item_id FROM purchase_items WHERE purchase_id = ? ORDER BY position"),
		purchaseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase items: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan purchase item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchase items: %w", err)
	}
	return ids, nil
}
