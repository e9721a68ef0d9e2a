// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/supermarket/internal/models"
)

// ItemStore is keyed storage for items.
type ItemStore interface {
	// GetItem returns nil and no error if the item does not exist.
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// PutItem inserts or overwrites an item.
	// An empty item.ID is populated by the store.
	PutItem(ctx context.Context, item *models.Item) error

	// DeleteItem reports whether an item existed and was removed.
	DeleteItem(ctx context.Context, id string) (bool, error)

	ItemExists(ctx context.Context, id string) (bool, error)
	ListItems(ctx context.Context) ([]*models.Item, error)
}

// SupermarketStore is keyed storage for supermarkets and their item associations.
type SupermarketStore interface {
	// GetSupermarket returns nil and no error if the supermarket does not exist.
	GetSupermarket(ctx context.Context, id string) (*models.Supermarket, error)

	// PutSupermarket inserts or overwrites a supermarket, replacing its
	// association set with s.ItemIDs. An empty s.ID is populated by the store.
	PutSupermarket(ctx context.Context, s *models.Supermarket) error

	DeleteSupermarket(ctx context.Context, id string) (bool, error)
	SupermarketExists(ctx context.Context, id string) (bool, error)
	ListSupermarkets(ctx context.Context) ([]*models.Supermarket, error)

	// FindSupermarketByName returns nil and no error if no supermarket has the name.
	FindSupermarketByName(ctx context.Context, name string) (*models.Supermarket, error)
}

// PurchaseStore is keyed storage for purchases.
type PurchaseStore interface {
	GetPurchase(ctx context.Context, id int64) (*models.Purchase, error)

	// PutPurchase inserts or overwrites a purchase.
	// A zero p.ID is populated by the store; IDs are never reused.
	PutPurchase(ctx context.Context, p *models.Purchase) error

	DeletePurchase(ctx context.Context, id int64) (bool, error)
	PurchaseExists(ctx context.Context, id int64) (bool, error)
	ListPurchases(ctx context.Context) ([]*models.Purchase, error)
}

// Store combines all entity stores.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	ItemStore
	SupermarketStore
	PurchaseStore

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
