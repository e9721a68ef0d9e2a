package market

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/supermarket/internal/checkout"
	"github.com/mmynk/supermarket/internal/models"
	"github.com/mmynk/supermarket/internal/validation"
)

// PurchaseInput is a purchase body as sent by clients, used both for checkout
// and for updates. TimeOfPayment is only honoured on updates.
type PurchaseInput struct {
	SupermarketID *string          `json:"supermarketId,omitempty"`
	ItemIDs       []string         `json:"itemIDs,omitempty"`
	Type          *string          `json:"type,omitempty"`
	CashAmount    *decimal.Decimal `json:"cashAmount,omitempty"`
	TimeOfPayment *string          `json:"timeOfPayment,omitempty"`
}

// Checkout converts the input into a checkout request.
func (in PurchaseInput) Checkout() checkout.Request {
	req := checkout.Request{
		ItemIDs:     in.ItemIDs,
		PaymentType: in.Type,
		CashAmount:  in.CashAmount,
	}
	if in.SupermarketID != nil {
		req.SupermarketID = *in.SupermarketID
	}
	return req
}

// Patch converts the input into a purchase patch, parsing the payment date.
func (in PurchaseInput) Patch() (models.PurchasePatch, error) {
	date, err := validation.PaymentDate(in.TimeOfPayment)
	if err != nil {
		return models.PurchasePatch{}, err
	}
	return models.PurchasePatch{
		SupermarketID: in.SupermarketID,
		ItemIDs:       in.ItemIDs,
		PaymentType:   in.Type,
		CashAmount:    in.CashAmount,
		TimeOfPayment: date,
	}, nil
}
