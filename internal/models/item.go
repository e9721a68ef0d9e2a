package models

import "github.com/shopspring/decimal"

// ItemType is the category tag of an item.
type ItemType string

const (
	ItemTypeFood       ItemType = "FOOD"
	ItemTypeTechnology ItemType = "TECHNOLOGY"
	ItemTypeHousehold  ItemType = "HOUSEHOLD"
	ItemTypeDrinks     ItemType = "DRINKS"
)

// ItemTypes lists every recognized item type tag.
var ItemTypes = []ItemType{ItemTypeFood, ItemTypeTechnology, ItemTypeHousehold, ItemTypeDrinks}

// Item represents a product that supermarkets can stock.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	// Assigned by the store when the item is created.
	ID string `json:"id"`

	// Name is the display name, at most 64 characters.
	Name string `json:"name"`

	// Price is the unit price, between 0.01 and 9999.99 inclusive.
	Price decimal.Decimal `json:"price"`

	// Type is one of FOOD, TECHNOLOGY, HOUSEHOLD or DRINKS.
	Type ItemType `json:"type"`
}

// ItemPatch carries the fields of an item update.
// Nil fields were not supplied by the caller.
type ItemPatch struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Type  *ItemType        `json:"type,omitempty"`
}
