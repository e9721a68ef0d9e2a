package market

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/supermarket/internal/merge"
	"github.com/mmynk/supermarket/internal/models"
	"github.com/mmynk/supermarket/internal/storage"
)

const entityItem = "Item"

// ItemService manages the item catalog.
type ItemService struct {
	store storage.ItemStore
}

// NewItemService creates a new ItemService with the given storage backend.
func NewItemService(store storage.ItemStore) *ItemService {
	return &ItemService{store: store}
}

// Create validates every field of in and stores a new item.
func (s *ItemService) Create(ctx context.Context, in models.ItemPatch) (*models.Item, error) {
	item, err := merge.Item(models.Item{}, in, merge.Full)
	if err != nil {
		slog.Warn("Item rejected", "error", err)
		return nil, err
	}
	if err := s.store.PutItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	slog.Info("Item created", "item_id", item.ID, "name", item.Name, "type", item.Type)
	return &item, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, notFound(entityItem, id)
	}
	return item, nil
}

func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Replace overwrites every mutable field of the item.
func (s *ItemService) Replace(ctx context.Context, id string, patch models.ItemPatch) (*models.Item, error) {
	return s.update(ctx, id, patch, merge.Full)
}

// Patch overwrites only the fields present in patch.
func (s *ItemService) Patch(ctx context.Context, id string, patch models.ItemPatch) (*models.Item, error) {
	return s.update(ctx, id, patch, merge.Partial)
}

func (s *ItemService) update(ctx context.Context, id string, patch models.ItemPatch, mode merge.Mode) (*models.Item, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := merge.Item(*existing, patch, mode)
	if err != nil {
		slog.Warn("Item update rejected", "item_id", id, "mode", mode, "error", err)
		return nil, err
	}
	if err := s.store.PutItem(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	slog.Info("Item updated", "item_id", id, "mode", mode)
	return &next, nil
}

// Delete removes the item and its supermarket associations.
// Purchases referencing the item are left untouched.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if !deleted {
		return notFound(entityItem, id)
	}
	slog.Info("Item deleted", "item_id", id)
	return nil
}
