// Package merge combines a stored record with a full or partial update.
//
// Every touched field is validated before anything is applied, and the stored
// record passed in is never modified: a failed merge leaves no trace.
package merge

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/supermarket/internal/models"
	"github.com/mmynk/supermarket/internal/validation"
)

// Mode selects how a patch is applied.
type Mode int

const (
	// Full replaces every mutable field, including with absent values.
	Full Mode = iota
	// Partial replaces only the fields present in the patch.
	Partial
)

func (m Mode) String() string {
	if m == Full {
		return "full"
	}
	return "partial"
}

// Item returns existing with patch applied.
func Item(existing models.Item, patch models.ItemPatch, mode Mode) (models.Item, error) {
	if mode == Full {
		if err := validation.First(
			validation.ItemName(patch.Name),
			validation.ItemPrice(patch.Price),
			validation.ItemType(patch.Type),
		); err != nil {
			return existing, err
		}
	} else {
		var errs []error
		if patch.Name != nil {
			errs = append(errs, validation.ItemName(patch.Name))
		}
		if patch.Price != nil {
			errs = append(errs, validation.ItemPrice(patch.Price))
		}
		if patch.Type != nil {
			errs = append(errs, validation.ItemType(patch.Type))
		}
		if err := validation.First(errs...); err != nil {
			return existing, err
		}
	}

	next := existing
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Price != nil {
		next.Price = *patch.Price
	}
	if patch.Type != nil {
		next.Type = *patch.Type
	}
	return next, nil
}

// Supermarket returns existing with patch applied. The association set is
// not part of the patch and is carried over unchanged.
func Supermarket(existing models.Supermarket, patch models.SupermarketPatch, mode Mode) (models.Supermarket, error) {
	if mode == Full {
		if patch.Name == nil || patch.Address == nil || patch.PhoneNumber == nil || patch.WorkHours == nil {
			return existing, validation.Invalid("There is a missing field while updating the supermarket!")
		}
	}

	var errs []error
	if patch.Name != nil {
		errs = append(errs, validation.SupermarketName(patch.Name))
	}
	if patch.Address != nil {
		errs = append(errs, validation.SupermarketAddress(patch.Address))
	}
	if patch.PhoneNumber != nil {
		errs = append(errs, validation.PhoneNumber(patch.PhoneNumber))
	}
	if patch.WorkHours != nil {
		errs = append(errs, validation.WorkingHours(patch.WorkHours))
	}
	if err := validation.First(errs...); err != nil {
		return existing, err
	}

	next := existing
	next.ItemIDs = slices.Clone(existing.ItemIDs)
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Address != nil {
		next.Address = *patch.Address
	}
	if patch.PhoneNumber != nil {
		next.PhoneNumber = *patch.PhoneNumber
	}
	if patch.WorkHours != nil {
		next.WorkHours = *patch.WorkHours
	}
	return next, nil
}

// Purchase returns existing with patch applied. The payment type is only
// re-validated when the patch carries one; in Full mode it is required.
// Price and change are left for the caller to recompute.
func Purchase(existing models.Purchase, patch models.PurchasePatch, mode Mode) (models.Purchase, error) {
	paymentType := existing.PaymentType
	if patch.PaymentType != nil || mode == Full {
		pt, err := validation.PaymentType(patch.PaymentType)
		if err != nil {
			return existing, err
		}
		paymentType = pt
	}

	next := existing
	next.ItemIDs = slices.Clone(existing.ItemIDs)
	next.PaymentType = paymentType

	switch mode {
	case Full:
		next.SupermarketID = ""
		if patch.SupermarketID != nil {
			next.SupermarketID = *patch.SupermarketID
		}
		next.ItemIDs = slices.Clone(patch.ItemIDs)
		next.CashAmount = decimal.NullDecimal{}
		if patch.CashAmount != nil {
			next.CashAmount = decimal.NewNullDecimal(*patch.CashAmount)
		}
	case Partial:
		if patch.SupermarketID != nil {
			next.SupermarketID = *patch.SupermarketID
		}
		if patch.ItemIDs != nil {
			next.ItemIDs = slices.Clone(patch.ItemIDs)
		}
		if patch.CashAmount != nil {
			next.CashAmount = decimal.NewNullDecimal(*patch.CashAmount)
		}
	}

	if patch.TimeOfPayment != nil {
		next.TimeOfPayment = *patch.TimeOfPayment
	}
	return next, nil
}
