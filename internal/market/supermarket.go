package market

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/supermarket/internal/merge"
	"github.com/mmynk/supermarket/internal/models"
	"github.com/mmynk/supermarket/internal/storage"
	"github.com/mmynk/supermarket/internal/validation"
)

const entitySupermarket = "Supermarket"

// SupermarketStore is what SupermarketService needs from storage: supermarkets
// plus item lookups for associations.
type SupermarketStore interface {
	storage.SupermarketStore
	storage.ItemStore
}

// SupermarketService manages supermarkets and their item associations.
type SupermarketService struct {
	store SupermarketStore
}

// NewSupermarketService creates a new SupermarketService with the given storage backend.
func NewSupermarketService(store SupermarketStore) *SupermarketService {
	return &SupermarketService{store: store}
}

// Create validates every field of in, rejects a taken name and stores a new
// supermarket with an empty association set.
func (s *SupermarketService) Create(ctx context.Context, in models.SupermarketPatch) (*models.Supermarket, error) {
	if err := validation.First(
		validation.SupermarketName(in.Name),
		validation.SupermarketAddress(in.Address),
		validation.PhoneNumber(in.PhoneNumber),
		validation.WorkingHours(in.WorkHours),
	); err != nil {
		slog.Warn("Supermarket rejected", "error", err)
		return nil, err
	}

	existing, err := s.store.FindSupermarketByName(ctx, *in.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up supermarket name: %w", err)
	}
	if existing != nil {
		slog.Warn("Supermarket name taken", "name", *in.Name, "supermarket_id", existing.ID)
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, *in.Name)
	}

	sm := &models.Supermarket{
		Name:        *in.Name,
		Address:     *in.Address,
		PhoneNumber: *in.PhoneNumber,
		WorkHours:   *in.WorkHours,
		ItemIDs:     []string{},
	}
	if err := s.store.PutSupermarket(ctx, sm); err != nil {
		return nil, fmt.Errorf("failed to save supermarket: %w", err)
	}
	slog.Info("Supermarket created", "supermarket_id", sm.ID, "name", sm.Name)
	return sm, nil
}

func (s *SupermarketService) Get(ctx context.Context, id string) (*models.Supermarket, error) {
	sm, err := s.store.GetSupermarket(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get supermarket: %w", err)
	}
	if sm == nil {
		return nil, notFound(entitySupermarket, id)
	}
	return sm, nil
}

// Info returns the supermarket with its associated items resolved.
// Associations whose item can no longer be found are omitted.
func (s *SupermarketService) Info(ctx context.Context, id string) (*models.SupermarketInfo, error) {
	sm, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	info := &models.SupermarketInfo{
		Name:        sm.Name,
		Address:     sm.Address,
		PhoneNumber: sm.PhoneNumber,
		WorkHours:   sm.WorkHours,
		Items:       make([]models.Item, 0, len(sm.ItemIDs)),
	}
	for _, itemID := range sm.ItemIDs {
		item, err := s.store.GetItem(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to get item: %w", err)
		}
		if item != nil {
			info.Items = append(info.Items, *item)
		}
	}
	return info, nil
}

func (s *SupermarketService) List(ctx context.Context) ([]*models.Supermarket, error) {
	sms, err := s.store.ListSupermarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list supermarkets: %w", err)
	}
	return sms, nil
}

// Replace overwrites every mutable field; all four must be present.
// Name uniqueness is not rechecked.
func (s *SupermarketService) Replace(ctx context.Context, id string, patch models.SupermarketPatch) (*models.Supermarket, error) {
	return s.update(ctx, id, patch, merge.Full)
}

// Patch overwrites only the fields present in patch.
func (s *SupermarketService) Patch(ctx context.Context, id string, patch models.SupermarketPatch) (*models.Supermarket, error) {
	return s.update(ctx, id, patch, merge.Partial)
}

func (s *SupermarketService) update(ctx context.Context, id string, patch models.SupermarketPatch, mode merge.Mode) (*models.Supermarket, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := merge.Supermarket(*existing, patch, mode)
	if err != nil {
		slog.Warn("Supermarket update rejected", "supermarket_id", id, "mode", mode, "error", err)
		return nil, err
	}
	if err := s.store.PutSupermarket(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to save supermarket: %w", err)
	}
	slog.Info("Supermarket updated", "supermarket_id", id, "mode", mode)
	return &next, nil
}

func (s *SupermarketService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteSupermarket(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete supermarket: %w", err)
	}
	if !deleted {
		return notFound(entitySupermarket, id)
	}
	slog.Info("Supermarket deleted", "supermarket_id", id)
	return nil
}

// AddItems associates the given items with a supermarket.
//
// IDs that do not resolve to an item are skipped. An item already associated
// is not stored twice, but its name is reported every time its ID resolves.
// The association set is written back even when nothing was added.
func (s *SupermarketService) AddItems(ctx context.Context, supermarketID string, itemIDs []string) (*models.AddItemsResult, error) {
	sm, err := s.Get(ctx, supermarketID)
	if err != nil {
		return nil, err
	}

	result := &models.AddItemsResult{
		SupermarketID:  sm.ID,
		AddedItemNames: []string{},
	}
	var skipped int
	for _, itemID := range itemIDs {
		item, err := s.store.GetItem(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to get item: %w", err)
		}
		if item == nil {
			skipped++
			continue
		}
		if !sm.HasItem(item.ID) {
			sm.ItemIDs = append(sm.ItemIDs, item.ID)
		}
		result.AddedItemNames = append(result.AddedItemNames, item.Name)
	}

	if err := s.store.PutSupermarket(ctx, sm); err != nil {
		return nil, fmt.Errorf("failed to save supermarket items: %w", err)
	}
	slog.Info("Items added to supermarket",
		"supermarket_id", sm.ID,
		"added", len(result.AddedItemNames),
		"skipped", skipped,
	)
	return result, nil
}
