package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is the payment method label of a purchase.
type PaymentType string

const (
	PaymentTypeCash PaymentType = "CASH"
	PaymentTypeCard PaymentType = "CARD"
)

// DateLayout is the wire and storage format of TimeOfPayment.
const DateLayout = "2006-01-02"

// Purchase represents a checkout transaction.
type Purchase struct {
	// ID is assigned by the store and never reused.
	ID int64 `json:"id"`

	// SupermarketID references a supermarket. It is not validated.
	SupermarketID string `json:"supermarketId"`

	// ItemIDs references items in purchase order. Duplicates are allowed
	// and IDs are not validated.
	ItemIDs []string `json:"itemIds"`

	PaymentType PaymentType `json:"paymentType"`

	// CashAmount is required when PaymentType is CASH.
	CashAmount decimal.NullDecimal `json:"cashAmount"`

	// Price is computed at checkout.
	Price decimal.Decimal `json:"price"`

	// ChangeAmount is CashAmount minus Price for cash payments, zero otherwise.
	ChangeAmount decimal.Decimal `json:"changeAmount"`

	// TimeOfPayment is the calendar date of the purchase (midnight UTC).
	TimeOfPayment time.Time `json:"timeOfPayment"`
}

// PurchasePatch carries the fields of a purchase update.
// PaymentType is kept as raw input so it can be validated case-insensitively.
type PurchasePatch struct {
	SupermarketID *string          `json:"supermarketId,omitempty"`
	ItemIDs       []string         `json:"itemIds,omitempty"`
	PaymentType   *string          `json:"type,omitempty"`
	CashAmount    *decimal.Decimal `json:"cashAmount,omitempty"`
	TimeOfPayment *time.Time       `json:"timeOfPayment,omitempty"`
}
