// Package models defines the core domain models for the supermarket API.
//
// # Models
//
//   - Item: A product that can be stocked by supermarkets
//   - Supermarket: A store with contact details and a set of associated items
//   - Purchase: A checkout transaction with computed price and change
//
// Each model has a matching patch type (ItemPatch, SupermarketPatch, PurchasePatch)
// used by full and partial updates. A nil field in a patch means the field was
// absent from the request.
//
// # Design Principles
//
//  1. **Loose references**: Purchases store supermarket and item IDs as plain strings.
//     They are never dereferenced or validated against their stores.
//  2. **Explicit association**: Supermarket items are a set of item IDs, persisted as a
//     join relation rather than embedded item records.
//  3. **Exact money**: Amounts use decimal.Decimal so 0.01 and 9999.99 bounds hold exactly.
package models
