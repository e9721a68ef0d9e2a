package models

// Supermarket represents a store and the items associated with it.
type Supermarket struct {
	// ID is the unique identifier for the supermarket (UUID format).
	ID string `json:"id"`

	// Name is unique across supermarkets at creation time, at most 64 characters.
	Name string `json:"name"`

	// Address is at most 128 characters.
	Address string `json:"address"`

	// PhoneNumber matches 08[7-9] followed by 7 digits.
	PhoneNumber string `json:"phoneNumber"`

	// WorkHours is an "HH:MM-HH:MM" range with opening before closing.
	WorkHours string `json:"workHours"`

	// ItemIDs is the set of associated item IDs.
	// The association is non-owning: an item can belong to many supermarkets.
	// Order carries no meaning and IDs are unique.
	ItemIDs []string `json:"itemIds"`
}

// HasItem reports whether itemID is in the association set.
func (s *Supermarket) HasItem(itemID string) bool {
	for _, id := range s.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// SupermarketPatch carries the fields of a supermarket update.
type SupermarketPatch struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	WorkHours   *string `json:"workHours,omitempty"`
}

// SupermarketInfo is a supermarket with its associated items resolved.
type SupermarketInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	WorkHours   string `json:"workHours"`
	Items       []Item `json:"items"`
}

// AddItemsResult reports the outcome of associating items with a supermarket.
type AddItemsResult struct {
	SupermarketID string `json:"supermarketId"`

	// AddedItemNames holds one entry per requested ID that resolved to an item,
	// in request order. A repeated ID is reported each time it resolves.
	AddedItemNames []string `json:"addedItemsNames"`
}
