package market

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mmynk/supermarket/internal/checkout"
	"github.com/mmynk/supermarket/internal/merge"
	"github.com/mmynk/supermarket/internal/models"
	"github.com/mmynk/supermarket/internal/storage"
)

const entityPurchase = "Purchase"

// PurchaseObserver is notified of every purchase made.
type PurchaseObserver interface {
	ObservePurchase(p *models.Purchase)
}

// PurchaseService records and manages purchases.
type PurchaseService struct {
	store     storage.PurchaseStore
	engine    *checkout.Engine
	observers []PurchaseObserver
}

// NewPurchaseService creates a new PurchaseService. Purchases are made
// through engine and persisted to store.
func NewPurchaseService(store storage.PurchaseStore, engine *checkout.Engine, observers ...PurchaseObserver) *PurchaseService {
	return &PurchaseService{store: store, engine: engine, observers: observers}
}

// MakePurchase runs a checkout. Supermarket and item IDs are not checked
// against their stores.
func (s *PurchaseService) MakePurchase(ctx context.Context, req checkout.Request) (*models.Purchase, error) {
	p, err := s.engine.MakePurchase(ctx, req)
	if err != nil {
		slog.Warn("Purchase rejected", "supermarket_id", req.SupermarketID, "error", err)
		return nil, err
	}
	slog.Info("Purchase made",
		"purchase_id", p.ID,
		"supermarket_id", p.SupermarketID,
		"payment_type", p.PaymentType,
		"price", p.Price.String(),
	)
	for _, o := range s.observers {
		o.ObservePurchase(p)
	}
	return p, nil
}

func (s *PurchaseService) Get(ctx context.Context, id int64) (*models.Purchase, error) {
	p, err := s.store.GetPurchase(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	if p == nil {
		return nil, notFound(entityPurchase, strconv.FormatInt(id, 10))
	}
	return p, nil
}

func (s *PurchaseService) List(ctx context.Context) ([]*models.Purchase, error) {
	ps, err := s.store.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return ps, nil
}

// Replace overwrites every mutable field of the purchase. The price is kept
// and the change recomputed from it.
func (s *PurchaseService) Replace(ctx context.Context, id int64, patch models.PurchasePatch) (*models.Purchase, error) {
	return s.update(ctx, id, patch, merge.Full)
}

// Patch overwrites only the fields present in patch.
func (s *PurchaseService) Patch(ctx context.Context, id int64, patch models.PurchasePatch) (*models.Purchase, error) {
	return s.update(ctx, id, patch, merge.Partial)
}

func (s *PurchaseService) update(ctx context.Context, id int64, patch models.PurchasePatch, mode merge.Mode) (*models.Purchase, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := merge.Purchase(*existing, patch, mode)
	if err != nil {
		slog.Warn("Purchase update rejected", "purchase_id", id, "mode", mode, "error", err)
		return nil, err
	}
	checkout.Reprice(&next)
	if err := s.store.PutPurchase(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}
	slog.Info("Purchase updated", "purchase_id", id, "mode", mode)
	return &next, nil
}

func (s *PurchaseService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeletePurchase(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if !deleted {
		return notFound(entityPurchase, strconv.FormatInt(id, 10))
	}
	slog.Info("Purchase deleted", "purchase_id", id)
	return nil
}
